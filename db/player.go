package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, athlete_id, name_first, name_last, position,
						team, jersey_num, active, created, updated
					FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("SavePlayer - player is nil")
	}

	const query = `INSERT INTO players (
		id,
		athlete_id,
		name_first,
		name_last,
		position,
		team,
		jersey_num,
		active
	) VALUES (
		@id,
		@athleteID,
		@nameFirst,
		@nameLast,
		@position,
		@team,
		@jerseyNum,
		@active
	) ON CONFLICT (id) DO UPDATE SET
		athlete_id=@athleteID,
		name_first=@nameFirst,
		name_last=@nameLast,
		position=@position,
		team=@team,
		jersey_num=@jerseyNum,
		active=@active,
		updated=@updated`

	args := pgx.NamedArgs{
		"id": p.ID,
		"athleteID": sql.NullString{
			String: p.AthleteID,
			Valid:  p.AthleteID != "",
		},
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  &DBPosition{position: p.Position},
		"team":      &DBNFLTeam{team: p.Team},
		"jerseyNum": p.Jersey,
		"active":    p.Active,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error saving player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) Search(ctx context.Context, q string, pos model.Position, team *model.NFLTeam) ([]model.Player, error) {
	const query = `SELECT id, athlete_id, name_first, name_last, position,
						team, jersey_num, active, created, updated
					FROM players
					WHERE (name_first ILIKE @q OR name_last ILIKE @q)
						AND team ILIKE @team
						AND position ILIKE @pos
					ORDER BY name_last, name_first`

	teamQ := "%"
	if team != nil {
		teamQ = team.String()
	}
	posQ := "%"
	if pos != model.POS_UNKNOWN {
		posQ = string(pos)
	}

	args := pgx.NamedArgs{
		"q":    fmt.Sprintf("%%%s%%", q),
		"team": teamQ,
		"pos":  posQ,
	}

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func (db *postgresDB) GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*model.Player, error) {
	const query = `SELECT id, athlete_id, name_first, name_last, position,
						team, jersey_num, active, created, updated
					FROM players WHERE id = ANY(@ids)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("error querying players by ids: %w", err)
	}
	defer rows.Close()

	results := make(map[string]*model.Player, len(ids))
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results[p.ID] = p
	}

	return results, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var pos DBPosition
	var team DBNFLTeam
	var athleteID sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&athleteID,
		&result.FirstName,
		&result.LastName,
		&pos,
		&team,
		&result.Jersey,
		&result.Active,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Position = pos.position
	result.Team = team.team
	result.AthleteID = valueOrEmpty(athleteID)
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
