package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/dkush22/nfl-playoff-draft/containers"
	"github.com/dkush22/nfl-playoff-draft/db"
	"github.com/dkush22/nfl-playoff-draft/model"
)

var (
	TylerLockett = &model.Player{
		ID:        "2577327",
		AthleteID: "2577327",
		FirstName: "Tyler",
		LastName:  "Lockett",
		Position:  model.POS_WR,
		Team:      model.ParseTeam("SEA"),
	}
	JalenHurts = &model.Player{
		ID:        "4040715",
		AthleteID: "4040715",
		FirstName: "Jalen",
		LastName:  "Hurts",
		Position:  model.POS_QB,
		Team:      model.ParseTeam("PHI"),
	}
	CeeDeeLamb = &model.Player{
		ID:        "4241389",
		AthleteID: "4241389",
		FirstName: "CeeDee",
		LastName:  "Lamb",
		Position:  model.POS_WR,
		Team:      model.ParseTeam("DAL"),
	}
	TJHockenson = &model.Player{
		ID:        "4036133",
		AthleteID: "4036133",
		FirstName: "T.J.",
		LastName:  "Hockenson",
		Position:  model.POS_TE,
		Team:      model.ParseTeam("MIN"),
	}
	BreeceHall = &model.Player{
		ID:        "4427366",
		AthleteID: "4427366",
		FirstName: "Breece",
		LastName:  "Hall",
		Position:  model.POS_RB,
		Team:      model.ParseTeam("NYJ"),
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestPlayers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		TylerLockett,
		JalenHurts,
		CeeDeeLamb,
		TJHockenson,
		BreeceHall,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}
