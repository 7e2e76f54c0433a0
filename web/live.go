package web

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/dkush22/nfl-playoff-draft/feed"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// liveHandler upgrades the connection and streams the league's accepted
// picks as JSON messages until the client disconnects.
func liveHandler(picks *feed.Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
		if err != nil {
			http.Error(w, "error parsing league id", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("error upgrading live connection: %v", err)
			return
		}

		sub := picks.Subscribe(int32(id))
		go writeLoop(conn, picks, sub)
		readLoop(conn)
	}
}

// readLoop discards inbound messages but notices disconnects and pongs.
// Closing the connection makes the write loop's WriteMessage fail, which
// unsubscribes and cleans everything up.
func readLoop(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeLoop(conn *websocket.Conn, picks *feed.Feed, sub chan feed.PickEvent) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		picks.Unsubscribe(sub)
		conn.Close()
	}()

	// Events are merged into a keyed store before delivery. A replayed or
	// redundant publish of a pick already applied is dropped here, so the
	// client sees each pick exactly once.
	seen := feed.NewStore[feed.PickEvent]()

	for {
		select {
		case event, ok := <-sub:
			if !ok {
				conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(writeWait))
				return
			}
			if !seen.Apply(event.Key(), event) {
				continue
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
