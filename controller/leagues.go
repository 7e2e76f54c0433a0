package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dkush22/nfl-playoff-draft/model"
)

const yearOnlyFormat = "2006"

func (c *controller) AddLeague(ctx context.Context, name, year string, teamCount, rounds int) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}

	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	if teamCount < 2 {
		return nil, fmt.Errorf("team count must be at least 2, got %d", teamCount)
	}
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got %d", rounds)
	}

	l := &model.League{
		Name:      name,
		Year:      year,
		TeamCount: teamCount,
		Rounds:    rounds,
		Status:    model.StatusPreDraft,
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	l.Managers, err = c.db.GetLeagueManagers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league managers: %w", err)
	}

	l.Order, err = c.db.GetDraftOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up draft order: %w", err)
	}

	return l, nil
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}

func (c *controller) AddLeagueManager(ctx context.Context, leagueID int32, manager *model.LeagueManager) error {
	if manager == nil || strings.TrimSpace(manager.ID) == "" {
		return errors.New("manager id must be provided")
	}
	if strings.TrimSpace(manager.TeamName) == "" {
		return errors.New("team name must be provided")
	}

	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}
	if l.Status != model.StatusPreDraft {
		return errors.New("managers can only be added before the draft starts")
	}

	managers, err := c.db.GetLeagueManagers(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up league managers: %w", err)
	}
	exists := false
	for _, m := range managers {
		if m.ID == manager.ID {
			exists = true
			break
		}
	}
	if !exists && len(managers) >= l.TeamCount {
		return fmt.Errorf("league is full, has %d of %d managers", len(managers), l.TeamCount)
	}

	return c.db.SaveLeagueManager(ctx, leagueID, manager)
}

func (c *controller) SetDraftOrder(ctx context.Context, leagueID int32, order []model.DraftSlot) error {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}
	if l.Status != model.StatusPreDraft {
		return errors.New("draft order can only be changed before the draft starts")
	}

	if err := model.ValidateDraftOrder(order, l.TeamCount); err != nil {
		return err
	}

	return c.db.SaveDraftOrder(ctx, leagueID, order)
}

func (c *controller) StartDraft(ctx context.Context, leagueID int32) error {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up league: %w", err)
	}
	if l.Status != model.StatusPreDraft {
		return fmt.Errorf("league is already in status %s", l.Status)
	}

	order, err := c.db.GetDraftOrder(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("error looking up draft order: %w", err)
	}
	if err := model.ValidateDraftOrder(order, l.TeamCount); err != nil {
		return fmt.Errorf("draft order is not ready: %w", err)
	}

	return c.db.UpdateLeagueStatus(ctx, leagueID, model.StatusDraft)
}

func (c *controller) ResetDraft(ctx context.Context, leagueID int32) error {
	return c.db.ResetDraft(ctx, leagueID)
}
