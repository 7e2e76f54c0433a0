package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func (db *postgresDB) SaveGameStats(ctx context.Context, lines []model.GameStatLine) error {
	const query = `INSERT INTO game_stats (
		game_id, athlete_id, pass_yd, pass_td, pass_int,
		rush_yd, rush_td, rec_yd, rec_td, receptions,
		fumbles_lost, kick_ret_td, punt_ret_td
	) VALUES (
		@gameID, @athleteID, @passYd, @passTd, @passInt,
		@rushYd, @rushTd, @recYd, @recTd, @receptions,
		@fumblesLost, @kickRetTd, @puntRetTd
	) ON CONFLICT (game_id, athlete_id) DO UPDATE SET
		pass_yd=@passYd, pass_td=@passTd, pass_int=@passInt,
		rush_yd=@rushYd, rush_td=@rushTd, rec_yd=@recYd, rec_td=@recTd,
		receptions=@receptions, fumbles_lost=@fumblesLost,
		kick_ret_td=@kickRetTd, punt_ret_td=@puntRetTd`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, l := range lines {
		args := pgx.NamedArgs{
			"gameID":      l.GameID,
			"athleteID":   l.AthleteID,
			"passYd":      l.PassingYards,
			"passTd":      l.PassingTDs,
			"passInt":     l.Interceptions,
			"rushYd":      l.RushingYards,
			"rushTd":      l.RushingTDs,
			"recYd":       l.ReceivingYards,
			"recTd":       l.ReceivingTDs,
			"receptions":  l.Receptions,
			"fumblesLost": l.FumblesLost,
			"kickRetTd":   l.KickReturnTDs,
			"puntRetTd":   l.PuntReturnTDs,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving stat line for athlete %s: %w", l.AthleteID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing game stats: %w", err)
	}
	return nil
}

func (db *postgresDB) GetGameStats(ctx context.Context, gameID string) ([]model.GameStatLine, error) {
	const query = `SELECT game_id, athlete_id, pass_yd, pass_td, pass_int,
						rush_yd, rush_td, rec_yd, rec_td, receptions,
						fumbles_lost, kick_ret_td, punt_ret_td
					FROM game_stats WHERE game_id=@gameID ORDER BY athlete_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, fmt.Errorf("error querying game stats: %w", err)
	}
	defer rows.Close()

	results := make([]model.GameStatLine, 0, 64)
	for rows.Next() {
		var l model.GameStatLine
		err := rows.Scan(&l.GameID, &l.AthleteID, &l.PassingYards, &l.PassingTDs,
			&l.Interceptions, &l.RushingYards, &l.RushingTDs, &l.ReceivingYards,
			&l.ReceivingTDs, &l.Receptions, &l.FumblesLost, &l.KickReturnTDs,
			&l.PuntReturnTDs)
		if err != nil {
			return nil, fmt.Errorf("error scanning stat line: %w", err)
		}
		results = append(results, l)
	}

	return results, nil
}

func (db *postgresDB) SavePlayerEventPoints(ctx context.Context, points []model.PlayerEventPoints) error {
	const query = `INSERT INTO player_event_points (game_id, athlete_id, points)
					VALUES (@gameID, @athleteID, @points)
					ON CONFLICT (game_id, athlete_id) DO UPDATE SET points=@points`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, p := range points {
		args := pgx.NamedArgs{
			"gameID":    p.GameID,
			"athleteID": p.AthleteID,
			"points":    p.Points,
		}
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error saving points for athlete %s: %w", p.AthleteID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing player event points: %w", err)
	}
	return nil
}

func (db *postgresDB) GetPlayerEventPoints(ctx context.Context, gameID string) ([]model.PlayerEventPoints, error) {
	const query = `SELECT game_id, athlete_id, points
					FROM player_event_points WHERE game_id=@gameID
					ORDER BY athlete_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, fmt.Errorf("error querying player event points: %w", err)
	}
	defer rows.Close()

	results := make([]model.PlayerEventPoints, 0, 64)
	for rows.Next() {
		var p model.PlayerEventPoints
		if err := rows.Scan(&p.GameID, &p.AthleteID, &p.Points); err != nil {
			return nil, fmt.Errorf("error scanning player event points: %w", err)
		}
		results = append(results, p)
	}

	return results, nil
}

// ReplaceTeamEventPoints rewrites the totals for one (game, league) pair.
// The league row lock serializes concurrent scoring runs of the same game
// against the same league so the delete and insert can't interleave.
func (db *postgresDB) ReplaceTeamEventPoints(ctx context.Context, gameID string, leagueID int32, rows []model.TeamEventPoints) error {
	const lockLeague = `SELECT id FROM leagues WHERE id=@leagueID FOR UPDATE`
	const del = `DELETE FROM team_event_points WHERE game_id=@gameID AND league_id=@leagueID`
	const ins = `INSERT INTO team_event_points (game_id, league_id, manager_id, points)
					VALUES (@gameID, @leagueID, @managerID, @points)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var id int32
	row := tx.QueryRow(ctx, lockLeague, pgx.NamedArgs{"leagueID": leagueID})
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrLeagueNotFound
		}
		return fmt.Errorf("error locking league %d: %w", leagueID, err)
	}

	args := pgx.NamedArgs{"gameID": gameID, "leagueID": leagueID}
	if _, err := tx.Exec(ctx, del, args); err != nil {
		return fmt.Errorf("error clearing team event points: %w", err)
	}

	for _, r := range rows {
		args := pgx.NamedArgs{
			"gameID":    gameID,
			"leagueID":  leagueID,
			"managerID": r.ManagerID,
			"points":    r.Points,
		}
		if _, err := tx.Exec(ctx, ins, args); err != nil {
			return fmt.Errorf("error inserting team event points for %s: %w", r.ManagerID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing team event points: %w", err)
	}
	return nil
}

func (db *postgresDB) GetTeamEventPoints(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error) {
	const query = `SELECT t.game_id, t.league_id, t.manager_id, m.team_name, t.points
					FROM team_event_points t
					JOIN league_managers m
						ON t.league_id = m.league_id AND t.manager_id = m.manager_id
					WHERE t.game_id=@gameID AND t.league_id=@leagueID
					ORDER BY t.points DESC, t.manager_id`

	args := pgx.NamedArgs{"gameID": gameID, "leagueID": leagueID}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying team event points: %w", err)
	}
	defer rows.Close()

	results := make([]model.TeamEventPoints, 0, 12)
	for rows.Next() {
		var t model.TeamEventPoints
		if err := rows.Scan(&t.GameID, &t.LeagueID, &t.ManagerID, &t.TeamName, &t.Points); err != nil {
			return nil, fmt.Errorf("error scanning team event points: %w", err)
		}
		results = append(results, t)
	}

	return results, nil
}
