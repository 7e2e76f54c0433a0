package controller

import (
	"context"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"

	"github.com/dkush22/nfl-playoff-draft/db/mockdb"
	"github.com/dkush22/nfl-playoff-draft/feed"
	"github.com/dkush22/nfl-playoff-draft/model"
	"github.com/dkush22/nfl-playoff-draft/platforms/espn/mockespn"
)

func newTestController(t *testing.T, mockDB *mockdb.DB) C {
	t.Helper()
	ctrl, err := New(clock.New(), &mockespn.Client{}, mockDB, feed.New())
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return ctrl
}

func TestAddLeague_validation(t *testing.T) {
	tests := map[string]struct {
		name      string
		year      string
		teamCount int
		rounds    int
		exErrMsg  string
	}{
		"success":    {name: "My League", year: "2024", teamCount: 4, rounds: 3},
		"no name":    {name: "  ", year: "2024", teamCount: 4, rounds: 3, exErrMsg: "league name must be provided"},
		"bad year":   {name: "My League", year: "24", teamCount: 4, rounds: 3, exErrMsg: "year parameter must be in the YYYY format, got: 24"},
		"one team":   {name: "My League", year: "2024", teamCount: 1, rounds: 3, exErrMsg: "team count must be at least 2, got 1"},
		"zero round": {name: "My League", year: "2024", teamCount: 4, rounds: 0, exErrMsg: "rounds must be at least 1, got 0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			mockDB.On("AddLeague", mock.Anything, mock.Anything).Return(nil)
			ctrl := newTestController(t, mockDB)

			l, err := ctrl.AddLeague(context.Background(), tc.name, tc.year, tc.teamCount, tc.rounds)
			if tc.exErrMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if l.Status != model.StatusPreDraft {
					t.Errorf("new leagues must start in pre_draft, got %s", l.Status)
				}
			} else {
				if err == nil || err.Error() != tc.exErrMsg {
					t.Errorf("expected error '%s', got: %v", tc.exErrMsg, err)
				}
				mockDB.AssertNotCalled(t, "AddLeague", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSetDraftOrder(t *testing.T) {
	order := []model.DraftSlot{
		{Slot: 1, ManagerID: "A"},
		{Slot: 2, ManagerID: "B"},
	}

	t.Run("saves a valid order", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		mockDB.On("SaveDraftOrder", mock.Anything, int32(7), order).Return(nil)
		ctrl := newTestController(t, mockDB)

		if err := ctrl.SetDraftOrder(context.Background(), 7, order); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mockDB.AssertExpectations(t)
	})

	t.Run("rejected once the draft started", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusDraft,
		}, nil)
		ctrl := newTestController(t, mockDB)

		err := ctrl.SetDraftOrder(context.Background(), 7, order)
		if err == nil || err.Error() != "draft order can only be changed before the draft starts" {
			t.Errorf("unexpected error: %v", err)
		}
		mockDB.AssertNotCalled(t, "SaveDraftOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected when the order is incomplete", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 4, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		ctrl := newTestController(t, mockDB)

		err := ctrl.SetDraftOrder(context.Background(), 7, order)
		if err == nil || err.Error() != "draft order has 2 slots, need exactly 4" {
			t.Errorf("unexpected error: %v", err)
		}
		mockDB.AssertNotCalled(t, "SaveDraftOrder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStartDraft(t *testing.T) {
	order := []model.DraftSlot{
		{Slot: 1, ManagerID: "A"},
		{Slot: 2, ManagerID: "B"},
	}

	t.Run("starts with a complete order", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		mockDB.On("GetDraftOrder", mock.Anything, int32(7)).Return(order, nil)
		mockDB.On("UpdateLeagueStatus", mock.Anything, int32(7), model.StatusDraft).Return(nil)
		ctrl := newTestController(t, mockDB)

		if err := ctrl.StartDraft(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mockDB.AssertExpectations(t)
	})

	t.Run("refuses without a full order", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 4, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		mockDB.On("GetDraftOrder", mock.Anything, int32(7)).Return(order, nil)
		ctrl := newTestController(t, mockDB)

		if err := ctrl.StartDraft(context.Background(), 7); err == nil {
			t.Fatal("expected an error starting a draft without a full order")
		}
		mockDB.AssertNotCalled(t, "UpdateLeagueStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("refuses to restart", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusPostDraft,
		}, nil)
		ctrl := newTestController(t, mockDB)

		err := ctrl.StartDraft(context.Background(), 7)
		if err == nil || err.Error() != "league is already in status post_draft" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestAddLeagueManager(t *testing.T) {
	t.Run("rejects when league is full", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		mockDB.On("GetLeagueManagers", mock.Anything, int32(7)).Return([]model.LeagueManager{
			{ID: "A", TeamName: "Team A"},
			{ID: "B", TeamName: "Team B"},
		}, nil)
		ctrl := newTestController(t, mockDB)

		err := ctrl.AddLeagueManager(context.Background(), 7, &model.LeagueManager{ID: "C", TeamName: "Team C"})
		if err == nil || err.Error() != "league is full, has 2 of 2 managers" {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("allows updating an existing manager", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetLeague", mock.Anything, int32(7)).Return(&model.League{
			ID: 7, TeamCount: 2, Rounds: 2, Status: model.StatusPreDraft,
		}, nil)
		mockDB.On("GetLeagueManagers", mock.Anything, int32(7)).Return([]model.LeagueManager{
			{ID: "A", TeamName: "Team A"},
			{ID: "B", TeamName: "Team B"},
		}, nil)
		mockDB.On("SaveLeagueManager", mock.Anything, int32(7), mock.Anything).Return(nil)
		ctrl := newTestController(t, mockDB)

		err := ctrl.AddLeagueManager(context.Background(), 7, &model.LeagueManager{ID: "A", TeamName: "Renamed"})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		mockDB.AssertExpectations(t)
	})
}
