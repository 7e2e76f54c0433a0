package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkush22/nfl-playoff-draft/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrLeagueNotFound error = errors.New("league not found")

	// Pick rejections. These are surfaced verbatim to the user as the
	// reason a pick was refused.
	ErrDraftNotActive     error = errors.New("draft not active")
	ErrNotYourTurn        error = errors.New("not your turn")
	ErrPlayerTaken        error = errors.New("player already drafted")
	ErrOrderNotConfigured error = errors.New("draft order not configured")
	ErrDraftComplete      error = errors.New("draft is complete")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

type DBNFLTeam struct {
	team *model.NFLTeam
}

func (t *DBNFLTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBNFLTeam) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: t.team.String(),
		Valid:  true,
	}, nil
}
