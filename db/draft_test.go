package db

import (
	"context"
	"errors"
	"testing"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func TestDB_makePick(t *testing.T) {
	ctx := context.Background()
	l, players := setupDraft(t, 2, 2)

	// The draft has not started yet.
	_, err := testDB.MakePick(ctx, l.ID, "mgr-a", players[0].ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrDraftNotActive))

	err = testDB.UpdateLeagueStatus(ctx, l.ID, model.StatusDraft)
	assertFatalf(t, err == nil, "error starting draft: %v", err)

	// mgr-b is not on the clock for pick 1.
	_, err = testDB.MakePick(ctx, l.ID, "mgr-b", players[0].ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrNotYourTurn))

	pick, err := testDB.MakePick(ctx, l.ID, "mgr-a", players[0].ID)
	assertFatalf(t, err == nil, "error making pick 1: %v", err)
	assertEquals(t, "PickNum", 1, pick.PickNum)
	assertEquals(t, "ManagerID", "mgr-a", pick.ManagerID)
	if pick.Made.IsZero() {
		t.Error("expected the pick timestamp to be set")
	}

	// The same player can't be picked twice.
	_, err = testDB.MakePick(ctx, l.ID, "mgr-b", players[0].ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerTaken))

	_, err = testDB.MakePick(ctx, l.ID, "mgr-b", players[1].ID)
	assertFatalf(t, err == nil, "error making pick 2: %v", err)

	// The snake turns around: mgr-b picks again in round two.
	_, err = testDB.MakePick(ctx, l.ID, "mgr-a", players[2].ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrNotYourTurn))

	_, err = testDB.MakePick(ctx, l.ID, "mgr-b", players[2].ID)
	assertFatalf(t, err == nil, "error making pick 3: %v", err)

	pick, err = testDB.MakePick(ctx, l.ID, "mgr-a", players[3].ID)
	assertFatalf(t, err == nil, "error making pick 4: %v", err)
	assertEquals(t, "PickNum", 4, pick.PickNum)

	// The last pick closed the draft.
	res, err := testDB.GetLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league: %v", err)
	assertEquals(t, "Status", model.StatusPostDraft, res.Status)

	_, err = testDB.MakePick(ctx, l.ID, "mgr-a", players[4].ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrDraftNotActive))

	picks, err := testDB.ListPicks(ctx, l.ID)
	assertFatalf(t, err == nil, "error listing picks: %v", err)
	assertEquals(t, "len(picks)", 4, len(picks))
	for i, p := range picks {
		assertEquals(t, "PickNum", i+1, p.PickNum)
	}
	// ListPicks joins in the player names.
	assertEquals(t, "LastName", players[0].LastName, picks[0].LastName)
}

func TestDB_makePick_withoutOrder(t *testing.T) {
	ctx := context.Background()
	l := addTestLeague(t, 2, 2)
	p := getPlayer()
	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	err = testDB.UpdateLeagueStatus(ctx, l.ID, model.StatusDraft)
	assertFatalf(t, err == nil, "error starting draft: %v", err)

	_, err = testDB.MakePick(ctx, l.ID, "mgr-a", p.ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrOrderNotConfigured))
}

func TestDB_makePick_leagueNotFound(t *testing.T) {
	_, err := testDB.MakePick(context.Background(), 999999, "mgr-a", "1")
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
}

func TestDB_resetDraft(t *testing.T) {
	ctx := context.Background()
	l, players := setupDraft(t, 2, 1)

	err := testDB.UpdateLeagueStatus(ctx, l.ID, model.StatusDraft)
	assertFatalf(t, err == nil, "error starting draft: %v", err)

	_, err = testDB.MakePick(ctx, l.ID, "mgr-a", players[0].ID)
	assertFatalf(t, err == nil, "error making pick: %v", err)
	_, err = testDB.MakePick(ctx, l.ID, "mgr-b", players[1].ID)
	assertFatalf(t, err == nil, "error making pick: %v", err)

	err = testDB.ResetDraft(ctx, l.ID)
	assertFatalf(t, err == nil, "error resetting draft: %v", err)

	picks, err := testDB.ListPicks(ctx, l.ID)
	assertFatalf(t, err == nil, "error listing picks: %v", err)
	assertEquals(t, "len(picks)", 0, len(picks))

	res, err := testDB.GetLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league: %v", err)
	assertEquals(t, "Status", model.StatusPreDraft, res.Status)

	// The draft can be run again after a reset.
	err = testDB.UpdateLeagueStatus(ctx, l.ID, model.StatusDraft)
	assertFatalf(t, err == nil, "error restarting draft: %v", err)
	pick, err := testDB.MakePick(ctx, l.ID, "mgr-a", players[0].ID)
	assertFatalf(t, err == nil, "error making pick after reset: %v", err)
	assertEquals(t, "PickNum", 1, pick.PickNum)
}

// setupDraft creates a pre_draft league with two managers, a saved order
// and enough players to draft with a few to spare.
func setupDraft(t *testing.T, teamCount, rounds int) (*model.League, []*model.Player) {
	t.Helper()
	ctx := context.Background()

	l := addTestLeague(t, teamCount, rounds)

	managers := []model.LeagueManager{
		{ID: "mgr-a", TeamName: "Team A", Name: "Alice"},
		{ID: "mgr-b", TeamName: "Team B", Name: "Bob"},
	}
	for i := range managers {
		if err := testDB.SaveLeagueManager(ctx, l.ID, &managers[i]); err != nil {
			t.Fatalf("error saving league manager: %v", err)
		}
	}

	order := []model.DraftSlot{
		{Slot: 1, ManagerID: "mgr-a"},
		{Slot: 2, ManagerID: "mgr-b"},
	}
	if err := testDB.SaveDraftOrder(ctx, l.ID, order); err != nil {
		t.Fatalf("error saving draft order: %v", err)
	}

	players := make([]*model.Player, 0, teamCount*rounds+1)
	for i := 0; i < teamCount*rounds+1; i++ {
		p := getPlayer()
		if err := testDB.SavePlayer(ctx, p); err != nil {
			t.Fatalf("error saving player: %v", err)
		}
		players = append(players, p)
	}

	return l, players
}
