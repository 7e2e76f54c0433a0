package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/dkush22/nfl-playoff-draft/model"
)

// ScoreGame runs the scoring pipeline for a single game. The fetch happens
// before any write, so a provider failure leaves everything previously
// persisted for this and every other game untouched.
func (c *controller) ScoreGame(ctx context.Context, gameID string) error {
	lines, err := c.espn.GetBoxScore(gameID)
	if err != nil {
		return fmt.Errorf("error fetching box score for game %s: %w", gameID, err)
	}

	if err := c.db.SaveGameStats(ctx, lines); err != nil {
		return fmt.Errorf("error saving stats for game %s: %w", gameID, err)
	}

	points := make([]model.PlayerEventPoints, 0, len(lines))
	for _, l := range lines {
		points = append(points, model.PlayerEventPoints{
			GameID:    gameID,
			AthleteID: l.AthleteID,
			Points:    l.FantasyPoints(),
		})
	}
	if err := c.db.SavePlayerEventPoints(ctx, points); err != nil {
		return fmt.Errorf("error saving player points for game %s: %w", gameID, err)
	}

	leagues, err := c.db.ListLeagues(ctx)
	if err != nil {
		return fmt.Errorf("error listing leagues for rollup: %w", err)
	}

	for _, l := range leagues {
		if err := c.rollupLeague(ctx, gameID, l.ID, points); err != nil {
			return fmt.Errorf("error rolling up league %d for game %s: %w", l.ID, gameID, err)
		}
	}

	return nil
}

func (c *controller) ScoreCurrentGames(ctx context.Context) error {
	gameIDs, err := c.espn.GetScoreboard()
	if err != nil {
		return fmt.Errorf("error fetching scoreboard: %w", err)
	}

	// Each game's run is independent. One failing game must not stop the
	// others or disturb their persisted results.
	var errs []error
	for _, gameID := range gameIDs {
		if err := c.ScoreGame(ctx, gameID); err != nil {
			log.Printf("scoring game %s failed: %v", gameID, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *controller) rollupLeague(ctx context.Context, gameID string, leagueID int32, points []model.PlayerEventPoints) error {
	picks, err := c.db.ListPicks(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error listing picks: %w", err)
	}
	if len(picks) == 0 {
		log.Printf("league %d has no picks yet, skipping rollup for game %s", leagueID, gameID)
		return nil
	}

	playerIDs := make([]string, 0, len(picks))
	for _, p := range picks {
		playerIDs = append(playerIDs, p.PlayerID)
	}
	players, err := c.db.GetPlayersByIDs(ctx, playerIDs)
	if err != nil {
		return fmt.Errorf("error loading drafted players: %w", err)
	}

	rows := rollupTeamPoints(gameID, leagueID, picks, players, points)
	return c.db.ReplaceTeamEventPoints(ctx, gameID, leagueID, rows)
}

// rollupTeamPoints totals one game's player points per manager. Every
// manager with at least one pick gets a row, even at 0. A drafted player
// with no athlete ID or no points in this game contributes 0 and never
// fails the rollup.
func rollupTeamPoints(gameID string, leagueID int32, picks []model.Pick,
	players map[string]*model.Player, points []model.PlayerEventPoints) []model.TeamEventPoints {

	byAthlete := make(map[string]float64, len(points))
	for _, p := range points {
		byAthlete[p.AthleteID] = p.Points
	}

	totals := make(map[string]float64)
	managers := make([]string, 0, 12)
	for _, pick := range picks {
		if _, ok := totals[pick.ManagerID]; !ok {
			totals[pick.ManagerID] = 0
			managers = append(managers, pick.ManagerID)
		}

		player := players[pick.PlayerID]
		if player == nil || player.AthleteID == "" {
			log.Printf("player %s in league %d has no athlete id, contributes 0", pick.PlayerID, leagueID)
			continue
		}
		totals[pick.ManagerID] += byAthlete[player.AthleteID]
	}

	rows := make([]model.TeamEventPoints, 0, len(managers))
	for _, m := range managers {
		rows = append(rows, model.TeamEventPoints{
			GameID:    gameID,
			LeagueID:  leagueID,
			ManagerID: m,
			Points:    math.Round(totals[m]*100) / 100,
		})
	}
	return rows
}

func (c *controller) GetTeamScores(ctx context.Context, gameID string, leagueID int32) ([]model.TeamEventPoints, error) {
	return c.db.GetTeamEventPoints(ctx, gameID, leagueID)
}

func (c *controller) RunPeriodicScoring(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			log.Printf("shutting down periodic scoring")
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if err := c.ScoreCurrentGames(ctx); err != nil {
				log.Printf("error in periodic scoring: %v", err)
			}
			cancel()
		}
	}
}
