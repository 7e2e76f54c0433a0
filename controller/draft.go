package controller

import (
	"context"
	"fmt"

	"github.com/dkush22/nfl-playoff-draft/feed"
	"github.com/dkush22/nfl-playoff-draft/model"
)

func (c *controller) GetDraftState(ctx context.Context, leagueID int32) (*model.DraftState, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}

	picks, err := c.db.ListPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error listing picks: %w", err)
	}

	order, err := c.db.GetDraftOrder(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("error looking up draft order: %w", err)
	}

	return buildDraftState(l, len(picks), order), nil
}

// buildDraftState resolves the turn fresh from the current order and pick
// count. Nothing is cached: the order can be replaced wholesale while the
// league is still in pre_draft.
func buildDraftState(l *model.League, picksMade int, order []model.DraftSlot) *model.DraftState {
	state := &model.DraftState{
		LeagueID:   l.ID,
		Status:     l.Status,
		PicksMade:  picksMade,
		TotalPicks: l.TotalPicks(),
	}

	if l.Status == model.StatusPostDraft || picksMade >= l.TotalPicks() {
		return state
	}

	state.NextPick = picksMade + 1
	if l.Status != model.StatusDraft {
		return state
	}

	// An unresolvable turn leaves OnTheClock empty and the UI shows
	// "waiting". It must never fall back to some default manager.
	if manager, ok := model.ResolveTurn(state.NextPick, l.TeamCount, order); ok {
		state.OnTheClock = manager
	}
	return state
}

func (c *controller) MakePick(ctx context.Context, leagueID int32, managerID, playerID string) (*model.Pick, error) {
	pick, err := c.db.MakePick(ctx, leagueID, managerID, playerID)
	if err != nil {
		return nil, err
	}

	if p, err := c.db.GetPlayer(ctx, playerID); err == nil {
		pick.FirstName = p.FirstName
		pick.LastName = p.LastName
		pick.Position = p.Position
	}

	c.picks.Publish(feed.PickEvent{LeagueID: leagueID, Pick: *pick})
	return pick, nil
}

func (c *controller) ListPicks(ctx context.Context, leagueID int32) ([]model.Pick, error) {
	return c.db.ListPicks(ctx, leagueID)
}
