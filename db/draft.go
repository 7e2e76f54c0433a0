package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dkush22/nfl-playoff-draft/model"
)

// MakePick validates and records a single draft selection. The league row is
// locked for the duration of the transaction so only one pick can be
// evaluated at a time per league; the turn check and the uniqueness check
// therefore can't race with another manager's pick.
func (db *postgresDB) MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error) {
	const lockLeague = `SELECT team_count, rounds, status FROM leagues
						WHERE id=@leagueID FOR UPDATE`
	const countPicks = `SELECT COUNT(*) FROM picks WHERE league_id=@leagueID`
	const orderQuery = `SELECT slot, manager_id FROM draft_order
						WHERE league_id=@leagueID ORDER BY slot`
	const playerTaken = `SELECT EXISTS(
							SELECT 1 FROM picks
							WHERE league_id=@leagueID AND player_id=@playerID)`
	const insertPick = `INSERT INTO picks (league_id, pick_num, manager_id, player_id, made)
						VALUES (@leagueID, @pickNum, @managerID, @playerID, @made)`
	const closeDraft = `UPDATE leagues SET status=@status WHERE id=@leagueID`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var teamCount, rounds int
	var status string
	row := tx.QueryRow(ctx, lockLeague, pgx.NamedArgs{"leagueID": leagueID})
	if err := row.Scan(&teamCount, &rounds, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error locking league %d: %w", leagueID, err)
	}

	if status != string(model.StatusDraft) {
		return nil, ErrDraftNotActive
	}

	var made int
	row = tx.QueryRow(ctx, countPicks, pgx.NamedArgs{"leagueID": leagueID})
	if err := row.Scan(&made); err != nil {
		return nil, fmt.Errorf("error counting picks for league %d: %w", leagueID, err)
	}

	pickNum := made + 1
	if pickNum > teamCount*rounds {
		return nil, ErrDraftComplete
	}

	order, err := getDraftOrder(ctx, tx, leagueID, orderQuery)
	if err != nil {
		return nil, err
	}

	onTheClock, ok := model.ResolveTurn(pickNum, teamCount, order)
	if !ok {
		return nil, ErrOrderNotConfigured
	}
	if onTheClock != managerID {
		return nil, ErrNotYourTurn
	}

	var taken bool
	args := pgx.NamedArgs{"leagueID": leagueID, "playerID": playerID}
	row = tx.QueryRow(ctx, playerTaken, args)
	if err := row.Scan(&taken); err != nil {
		return nil, fmt.Errorf("error checking if player %s is taken: %w", playerID, err)
	}
	if taken {
		return nil, ErrPlayerTaken
	}

	now := db.clock.Now().UTC()
	args = pgx.NamedArgs{
		"leagueID":  leagueID,
		"pickNum":   pickNum,
		"managerID": managerID,
		"playerID":  playerID,
		"made": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := tx.Exec(ctx, insertPick, args); err != nil {
		return nil, fmt.Errorf("error inserting pick %d: %w", pickNum, err)
	}

	// The last pick of the last round ends the draft.
	if pickNum == teamCount*rounds {
		args := pgx.NamedArgs{
			"leagueID": leagueID,
			"status":   string(model.StatusPostDraft),
		}
		if _, err := tx.Exec(ctx, closeDraft, args); err != nil {
			return nil, fmt.Errorf("error closing draft for league %d: %w", leagueID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing pick: %w", err)
	}

	return &model.Pick{
		PickNum:   pickNum,
		ManagerID: managerID,
		PlayerID:  playerID,
		Made:      now,
	}, nil
}

func (db *postgresDB) ResetDraft(ctx context.Context, leagueID int32) error {
	const lockLeague = `SELECT id FROM leagues WHERE id=@leagueID FOR UPDATE`
	const deletePicks = `DELETE FROM picks WHERE league_id=@leagueID`
	const resetStatus = `UPDATE leagues SET status=@status WHERE id=@leagueID`

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

	if _, err := tx.Exec(ctx, deletePicks, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error deleting picks for league %d: %w", leagueID, err)
	}

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"status":   string(model.StatusPreDraft),
	}
	if _, err := tx.Exec(ctx, resetStatus, args); err != nil {
		return fmt.Errorf("error resetting league %d status: %w", leagueID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing draft reset: %w", err)
	}
	return nil
}

func (db *postgresDB) ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	const query = `SELECT p.pick_num, p.manager_id, p.player_id, p.made,
						pl.name_first, pl.name_last, pl.position
					FROM picks p JOIN players pl ON p.player_id = pl.id
					WHERE p.league_id=@leagueID
					ORDER BY p.pick_num`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying picks: %w", err)
	}
	defer rows.Close()

	results := make([]model.Pick, 0, 32)
	for rows.Next() {
		var p model.Pick
		var pos DBPosition
		var made pgtype.Timestamptz
		err := rows.Scan(&p.PickNum, &p.ManagerID, &p.PlayerID, &made,
			&p.FirstName, &p.LastName, &pos)
		if err != nil {
			return nil, fmt.Errorf("error scanning pick: %w", err)
		}
		p.Made = made.Time
		p.Position = pos.position
		results = append(results, p)
	}

	return results, nil
}
