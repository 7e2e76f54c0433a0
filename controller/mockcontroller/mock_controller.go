package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dkush22/nfl-playoff-draft/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) AddLeague(ctx context.Context, name, year string, teamCount, rounds int) (*model.League, error) {
	args := c.Called(ctx, name, year, teamCount, rounds)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) AddLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error {
	args := c.Called(ctx, leagueID, manager)
	return args.Error(0)
}

func (c *C) SetDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error {
	args := c.Called(ctx, leagueID, order)
	return args.Error(0)
}

func (c *C) StartDraft(ctx context.Context, leagueID int32) error {
	args := c.Called(ctx, leagueID)
	return args.Error(0)
}

func (c *C) ResetDraft(ctx context.Context, leagueID int32) error {
	args := c.Called(ctx, leagueID)
	return args.Error(0)
}

func (c *C) GetDraftState(ctx context.Context, leagueID int32) (*model.DraftState, error) {
	args := c.Called(ctx, leagueID)

	var s *model.DraftState
	if args.Get(0) != nil {
		s = args.Get(0).(*model.DraftState)
	}
	return s, args.Error(1)
}

func (c *C) MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error) {
	args := c.Called(ctx, leagueID, managerID, playerID)

	var p *model.Pick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pick)
	}
	return p, args.Error(1)
}

func (c *C) ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	args := c.Called(ctx, leagueID)

	var r []model.Pick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pick)
	}
	return r, args.Error(1)
}

func (c *C) ScoreGame(ctx context.Context, gameID string) error {
	args := c.Called(ctx, gameID)
	return args.Error(0)
}

func (c *C) ScoreCurrentGames(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) GetTeamScores(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error) {
	args := c.Called(ctx, gameID, leagueID)

	var r []model.TeamEventPoints
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TeamEventPoints)
	}
	return r, args.Error(1)
}

func (c *C) RunPeriodicScoring(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
