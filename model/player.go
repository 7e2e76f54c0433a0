package model

import (
	"fmt"
	"time"
)

// Player is a league-independent catalog entry synced from the provider's
// roster data. AthleteID is the provider's identifier and is what joins a
// drafted player to live game statistics. It may be empty for players the
// provider has not published stats for; those players simply score 0.
type Player struct {
	ID        string
	AthleteID string
	FirstName string
	LastName  string
	Position  Position
	Team      *NFLTeam
	Jersey    int
	Active    bool
	Created   time.Time
	Updated   time.Time
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}
