package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

// GameID is the one game the fake server has a box score for.
const GameID = "401547602"

type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Route("/apis/site/v2/sports/football/nfl", func(r chi.Router) {
		r.Get("/scoreboard", scoreboardHandler)
		r.Get("/summary", summaryHandler)
		r.Get("/teams", teamsHandler)
		r.Get("/teams/{abbr}/roster", rosterHandler)
	})

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

func scoreboardHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "scoreboard.json")
}

func summaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("event") == GameID {
		serveFile(w, "summary.json")
	} else {
		w.WriteHeader(http.StatusNotFound)
	}
}

func teamsHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "teams.json")
}

func rosterHandler(w http.ResponseWriter, r *http.Request) {
	abbr := strings.ToLower(chi.URLParam(r, "abbr"))
	serveFile(w, fmt.Sprintf("roster_%s.json", abbr))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
