package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dkush22/nfl-playoff-draft/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) Search(ctx context.Context, query string, pos model.Position, team *model.NFLTeam) ([]model.Player, error) {
	args := db.Called(ctx, query, pos, team)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*model.Player, error) {
	args := db.Called(ctx, ids)

	var r map[string]*model.Player
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]*model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, league *model.League) error {
	args := db.Called(ctx, league)
	return args.Error(0)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) ArchiveLeague(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SaveLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error {
	args := db.Called(ctx, leagueID, manager)
	return args.Error(0)
}

func (db *DB) GetLeagueManagers(ctx context.Context, leagueID int32) ([]model.LeagueManager, error) {
	args := db.Called(ctx, leagueID)

	var r []model.LeagueManager
	if args.Get(0) != nil {
		r = args.Get(0).([]model.LeagueManager)
	}
	return r, args.Error(1)
}

func (db *DB) UpdateLeagueStatus(ctx context.Context, leagueID int32, status model.DraftStatus) error {
	args := db.Called(ctx, leagueID, status)
	return args.Error(0)
}

func (db *DB) SaveDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error {
	args := db.Called(ctx, leagueID, order)
	return args.Error(0)
}

func (db *DB) GetDraftOrder(ctx context.Context, leagueID int32) ([]model.DraftSlot, error) {
	args := db.Called(ctx, leagueID)

	var r []model.DraftSlot
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftSlot)
	}
	return r, args.Error(1)
}

func (db *DB) MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error) {
	args := db.Called(ctx, leagueID, managerID, playerID)

	var p *model.Pick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pick)
	}
	return p, args.Error(1)
}

func (db *DB) ResetDraft(ctx context.Context, leagueID int32) error {
	args := db.Called(ctx, leagueID)
	return args.Error(0)
}

func (db *DB) ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	args := db.Called(ctx, leagueID)

	var r []model.Pick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pick)
	}
	return r, args.Error(1)
}

func (db *DB) SaveGameStats(ctx context.Context, lines []model.GameStatLine) error {
	args := db.Called(ctx, lines)
	return args.Error(0)
}

func (db *DB) GetGameStats(ctx context.Context, gameID string) ([]model.GameStatLine, error) {
	args := db.Called(ctx, gameID)

	var r []model.GameStatLine
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GameStatLine)
	}
	return r, args.Error(1)
}

func (db *DB) SavePlayerEventPoints(ctx context.Context, points []model.PlayerEventPoints) error {
	args := db.Called(ctx, points)
	return args.Error(0)
}

func (db *DB) GetPlayerEventPoints(ctx context.Context, gameID string) ([]model.PlayerEventPoints, error) {
	args := db.Called(ctx, gameID)

	var r []model.PlayerEventPoints
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerEventPoints)
	}
	return r, args.Error(1)
}

func (db *DB) ReplaceTeamEventPoints(ctx context.Context, gameID string, leagueID int32, rows []model.TeamEventPoints) error {
	args := db.Called(ctx, gameID, leagueID, rows)
	return args.Error(0)
}

func (db *DB) GetTeamEventPoints(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error) {
	args := db.Called(ctx, gameID, leagueID)

	var r []model.TeamEventPoints
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TeamEventPoints)
	}
	return r, args.Error(1)
}
