package controller

import (
	"context"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

var (
	teamRegex = regexp.MustCompile(`team:(?P<team>\w+)`)
	posRegex  = regexp.MustCompile(`pos:(?P<pos>\w+)`)
)

// Search accepts a free-form name with optional "team:SEA" and "pos:WR"
// filters mixed into the query string.
func (c *controller) Search(ctx context.Context, query string) ([]model.Player, error) {
	var team *model.NFLTeam
	if m := teamRegex.FindStringSubmatch(query); m != nil {
		team = model.ParseTeam(m[teamRegex.SubexpIndex("team")])
		query = teamRegex.ReplaceAllString(query, "")
	}

	pos := model.POS_UNKNOWN
	if m := posRegex.FindStringSubmatch(query); m != nil {
		pos = model.ParsePosition(m[posRegex.SubexpIndex("pos")])
		query = posRegex.ReplaceAllString(query, "")
	}

	return c.db.Search(ctx, strings.TrimSpace(query), pos, team)
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	players, err := c.espn.LoadPlayers()
	if err != nil {
		return err
	}

	for i := range players {
		if err := c.db.SavePlayer(ctx, &players[i]); err != nil {
			return err
		}
	}
	log.Printf("updated %d players", len(players))
	return nil
}

func (c *controller) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			log.Printf("shutting down periodic player updates")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if err := c.UpdatePlayers(ctx); err != nil {
				log.Printf("error updating players: %v", err)
			}
			cancel()
		}
	}
}
