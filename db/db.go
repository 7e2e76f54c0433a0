package db

import (
	"context"

	"github.com/dkush22/nfl-playoff-draft/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	Search(ctx context.Context, query string, pos model.Position, team *model.NFLTeam) ([]model.Player, error)
	// Look up players by their provider athlete IDs. Players without a match
	// are simply absent from the result.
	GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*model.Player, error)

	AddLeague(ctx context.Context, league *model.League) error
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
	SaveLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error
	GetLeagueManagers(ctx context.Context, leagueID int32) ([]model.LeagueManager, error)
	UpdateLeagueStatus(ctx context.Context, leagueID int32, status model.DraftStatus) error

	// SaveDraftOrder replaces a league's entire draft order. Only legal
	// while the league is in pre_draft.
	SaveDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error
	GetDraftOrder(ctx context.Context, leagueID int32) ([]model.DraftSlot, error)

	// MakePick is the only write path for draft picks. It validates the
	// draft status, turn ownership and player uniqueness inside a single
	// transaction holding the league row lock, so two managers can never
	// pick on the same turn. Rejections come back as ErrDraftNotActive,
	// ErrNotYourTurn or ErrPlayerTaken.
	MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error)
	// ResetDraft deletes all of a league's picks and returns it to
	// pre_draft in one transaction.
	ResetDraft(ctx context.Context, leagueID int32) error
	ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error)

	// Stat lines and player points are keyed by (game, athlete) and
	// upserted, so re-ingesting a game overwrites rather than duplicates.
	SaveGameStats(ctx context.Context, lines []model.GameStatLine) error
	GetGameStats(ctx context.Context, gameID string) ([]model.GameStatLine, error)
	SavePlayerEventPoints(ctx context.Context, points []model.PlayerEventPoints) error
	GetPlayerEventPoints(ctx context.Context, gameID string) ([]model.PlayerEventPoints, error)

	// ReplaceTeamEventPoints deletes and reinserts the rows for one
	// (game, league) pair so a scoring run can be repeated safely.
	ReplaceTeamEventPoints(ctx context.Context, gameID string, leagueID int32, rows []model.TeamEventPoints) error
	GetTeamEventPoints(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error)
}
