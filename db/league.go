package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func (db *postgresDB) AddLeague(ctx context.Context, league *model.League) error {
	const query = `INSERT INTO leagues (name, year, team_count, rounds, status)
					VALUES (@name, @year, @teamCount, @rounds, @status)
					RETURNING id`

	args := pgx.NamedArgs{
		"name":      league.Name,
		"year":      league.Year,
		"teamCount": league.TeamCount,
		"rounds":    league.Rounds,
		"status":    string(league.Status),
	}
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&league.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	return nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, name, year, team_count, rounds, status, archived
					FROM leagues WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, name, year, team_count, rounds, status, archived
					FROM leagues WHERE NOT archived ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}

	return results, nil
}

func (db *postgresDB) ArchiveLeague(ctx context.Context, id int32) error {
	const query = `UPDATE leagues SET archived=true WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error archiving league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) UpdateLeagueStatus(ctx context.Context, leagueID int32, status model.DraftStatus) error {
	const query = `UPDATE leagues SET status=@status WHERE id=@id`

	args := pgx.NamedArgs{
		"id":     leagueID,
		"status": string(status),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating league %d status: %w", leagueID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) SaveLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error {
	const query = `INSERT INTO league_managers (league_id, manager_id, team_name, manager_name)
					VALUES (@leagueID, @managerID, @teamName, @managerName)
					ON CONFLICT (league_id, manager_id) DO UPDATE SET
						team_name=@teamName,
						manager_name=@managerName`

	args := pgx.NamedArgs{
		"leagueID":    leagueID,
		"managerID":   manager.ID,
		"teamName":    manager.TeamName,
		"managerName": manager.Name,
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving league manager: %w", err)
	}
	return nil
}

func (db *postgresDB) GetLeagueManagers(ctx context.Context, leagueID int32) ([]model.LeagueManager, error) {
	const query = `SELECT manager_id, team_name, manager_name
					FROM league_managers WHERE league_id=@leagueID
					ORDER BY manager_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying league managers: %w", err)
	}
	defer rows.Close()

	results := make([]model.LeagueManager, 0, 8)
	for rows.Next() {
		var m model.LeagueManager
		if err := rows.Scan(&m.ID, &m.TeamName, &m.Name); err != nil {
			return nil, fmt.Errorf("error scanning league manager: %w", err)
		}
		results = append(results, m)
	}

	return results, nil
}

func (db *postgresDB) SaveDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error {
	const del = `DELETE FROM draft_order WHERE league_id=@leagueID`
	const ins = `INSERT INTO draft_order (league_id, slot, manager_id)
					VALUES (@leagueID, @slot, @managerID)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The order is replaced wholesale. Organizers can shuffle it as many
	// times as they like before the draft starts.
	if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error clearing draft order: %w", err)
	}

	for _, s := range order {
		args := pgx.NamedArgs{
			"leagueID":  leagueID,
			"slot":      s.Slot,
			"managerID": s.ManagerID,
		}
		if _, err := tx.Exec(ctx, ins, args); err != nil {
			return fmt.Errorf("error inserting draft slot %d: %w", s.Slot, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing draft order: %w", err)
	}
	return nil
}

func (db *postgresDB) GetDraftOrder(ctx context.Context, leagueID int32) ([]model.DraftSlot, error) {
	const query = `SELECT slot, manager_id FROM draft_order
					WHERE league_id=@leagueID ORDER BY slot`

	return getDraftOrder(ctx, db.pool, leagueID, query)
}

// querier lets the draft-order load run on either the pool or an open
// transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getDraftOrder(ctx context.Context, q querier, leagueID int32, query string) ([]model.DraftSlot, error) {
	rows, err := q.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying draft order: %w", err)
	}
	defer rows.Close()

	results := make([]model.DraftSlot, 0, 12)
	for rows.Next() {
		var s model.DraftSlot
		if err := rows.Scan(&s.Slot, &s.ManagerID); err != nil {
			return nil, fmt.Errorf("error scanning draft slot: %w", err)
		}
		results = append(results, s)
	}

	return results, nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var result model.League
	var status string
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.Year,
		&result.TeamCount,
		&result.Rounds,
		&status,
		&result.Archived)

	if err != nil {
		return nil, err
	}

	result.Status, err = model.ParseDraftStatus(status)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
