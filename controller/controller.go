package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/dkush22/nfl-playoff-draft/db"
	"github.com/dkush22/nfl-playoff-draft/feed"
	"github.com/dkush22/nfl-playoff-draft/model"
	"github.com/dkush22/nfl-playoff-draft/platforms/espn"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	// Sync the player catalog from the provider's rosters.
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	AddLeague(ctx context.Context, name, year string, teamCount, rounds int) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
	AddLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error

	// SetDraftOrder replaces the league's draft order. Only legal in
	// pre_draft; the order must be exactly teamCount contiguous slots.
	SetDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error
	StartDraft(ctx context.Context, leagueID int32) error
	ResetDraft(ctx context.Context, leagueID int32) error

	// GetDraftState reports picks made and who is on the clock. The state
	// is advisory for display; MakePick revalidates everything inside the
	// transaction.
	GetDraftState(ctx context.Context, leagueID int32) (*model.DraftState, error)
	MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error)
	ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error)

	// ScoreGame runs the full scoring pipeline for one game: fetch the box
	// score, persist stat lines and per-athlete points, then roll totals
	// up for every league. A fetch failure aborts before anything is
	// written.
	ScoreGame(ctx context.Context, gameID string) error
	// ScoreCurrentGames scores every game on the provider's current
	// scoreboard. One game failing doesn't stop the others.
	ScoreCurrentGames(ctx context.Context) error
	GetTeamScores(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error)
	RunPeriodicScoring(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	espn  espn.Client
	db    db.DB
	picks *feed.Feed
}

func New(clock clock.Clock, espn espn.Client, db db.DB, picks *feed.Feed) (C, error) {
	c := &controller{
		clock: clock,
		espn:  espn,
		db:    db,
		picks: picks,
	}
	return c, nil
}
