package db

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func TestDB_leagueLifecycle(t *testing.T) {
	ctx := context.Background()

	l := &model.League{
		Name:      "Playoff Pool",
		Year:      "2024",
		TeamCount: 4,
		Rounds:    3,
		Status:    model.StatusPreDraft,
	}
	err := testDB.AddLeague(ctx, l)
	assertFatalf(t, err == nil, "error adding league: %v", err)
	assertFatalf(t, l.ID > 0, "expected the league id to be assigned, got %d", l.ID)

	res, err := testDB.GetLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league: %v", err)
	assertEquals(t, "Name", l.Name, res.Name)
	assertEquals(t, "Year", l.Year, res.Year)
	assertEquals(t, "TeamCount", l.TeamCount, res.TeamCount)
	assertEquals(t, "Rounds", l.Rounds, res.Rounds)
	assertEquals(t, "Status", model.StatusPreDraft, res.Status)
	assertEquals(t, "Archived", false, res.Archived)

	err = testDB.UpdateLeagueStatus(ctx, l.ID, model.StatusDraft)
	assertFatalf(t, err == nil, "error updating league status: %v", err)

	res, err = testDB.GetLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league after status update: %v", err)
	assertEquals(t, "Status", model.StatusDraft, res.Status)

	// Archived leagues disappear from the list but can still be loaded.
	err = testDB.ArchiveLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error archiving league: %v", err)

	leagues, err := testDB.ListLeagues(ctx)
	assertFatalf(t, err == nil, "error listing leagues: %v", err)
	for _, listed := range leagues {
		if listed.ID == l.ID {
			t.Errorf("archived league %d still listed", l.ID)
		}
	}

	res, err = testDB.GetLeague(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting archived league: %v", err)
	assertEquals(t, "Archived", true, res.Archived)

	// Operations on a league that doesn't exist.
	_, err = testDB.GetLeague(ctx, 999999)
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
	err = testDB.ArchiveLeague(ctx, 999999)
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
	err = testDB.UpdateLeagueStatus(ctx, 999999, model.StatusDraft)
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
}

func TestDB_leagueManagers(t *testing.T) {
	ctx := context.Background()
	l := addTestLeague(t, 4, 3)

	managers := []model.LeagueManager{
		{ID: "mgr-a", TeamName: "Team A", Name: "Alice"},
		{ID: "mgr-b", TeamName: "Team B", Name: "Bob"},
	}
	for i := range managers {
		err := testDB.SaveLeagueManager(ctx, l.ID, &managers[i])
		assertFatalf(t, err == nil, "error saving league manager: %v", err)
	}

	res, err := testDB.GetLeagueManagers(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league managers: %v", err)
	if !reflect.DeepEqual(managers, res) {
		t.Errorf("managers round trip mismatch, got: %v", res)
	}

	// Saving with an existing manager id updates instead of duplicating.
	renamed := &model.LeagueManager{ID: "mgr-a", TeamName: "Renamed", Name: "Alice"}
	err = testDB.SaveLeagueManager(ctx, l.ID, renamed)
	assertFatalf(t, err == nil, "error renaming league manager: %v", err)

	res, err = testDB.GetLeagueManagers(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting league managers: %v", err)
	assertEquals(t, "len(res)", 2, len(res))
	assertEquals(t, "TeamName", "Renamed", res[0].TeamName)
}

func TestDB_draftOrder(t *testing.T) {
	ctx := context.Background()
	l := addTestLeague(t, 2, 2)

	first := []model.DraftSlot{
		{Slot: 1, ManagerID: "mgr-a"},
		{Slot: 2, ManagerID: "mgr-b"},
	}
	err := testDB.SaveDraftOrder(ctx, l.ID, first)
	assertFatalf(t, err == nil, "error saving draft order: %v", err)

	res, err := testDB.GetDraftOrder(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting draft order: %v", err)
	if !reflect.DeepEqual(first, res) {
		t.Errorf("draft order round trip mismatch, got: %v", res)
	}

	// Saving again replaces the whole order.
	swapped := []model.DraftSlot{
		{Slot: 1, ManagerID: "mgr-b"},
		{Slot: 2, ManagerID: "mgr-a"},
	}
	err = testDB.SaveDraftOrder(ctx, l.ID, swapped)
	assertFatalf(t, err == nil, "error replacing draft order: %v", err)

	res, err = testDB.GetDraftOrder(ctx, l.ID)
	assertFatalf(t, err == nil, "error getting replaced draft order: %v", err)
	if !reflect.DeepEqual(swapped, res) {
		t.Errorf("replaced draft order mismatch, got: %v", res)
	}
}

func addTestLeague(t *testing.T, teamCount, rounds int) *model.League {
	t.Helper()

	l := &model.League{
		Name:      "Test League",
		Year:      "2024",
		TeamCount: teamCount,
		Rounds:    rounds,
		Status:    model.StatusPreDraft,
	}
	if err := testDB.AddLeague(context.Background(), l); err != nil {
		t.Fatalf("error adding test league: %v", err)
	}
	return l
}
