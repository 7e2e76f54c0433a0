package db

import (
	"context"
	"reflect"
	"testing"

	"github.com/dkush22/nfl-playoff-draft/model"
)

func TestDB_gameStats(t *testing.T) {
	ctx := context.Background()

	lines := []model.GameStatLine{
		{GameID: "stats-g1", AthleteID: "a1", PassingYards: 300, PassingTDs: 3, Interceptions: 1},
		{GameID: "stats-g1", AthleteID: "a2", Receptions: 7, ReceivingYards: 102, ReceivingTDs: 1},
	}
	err := testDB.SaveGameStats(ctx, lines)
	assertFatalf(t, err == nil, "error saving game stats: %v", err)

	res, err := testDB.GetGameStats(ctx, "stats-g1")
	assertFatalf(t, err == nil, "error getting game stats: %v", err)
	if !reflect.DeepEqual(lines, res) {
		t.Errorf("game stats round trip mismatch, got: %v", res)
	}

	// Re-ingesting the same game overwrites the lines.
	lines[0].PassingYards = 312
	err = testDB.SaveGameStats(ctx, lines)
	assertFatalf(t, err == nil, "error re-saving game stats: %v", err)

	res, err = testDB.GetGameStats(ctx, "stats-g1")
	assertFatalf(t, err == nil, "error getting game stats: %v", err)
	assertEquals(t, "len(res)", 2, len(res))
	assertEquals(t, "PassingYards", 312, res[0].PassingYards)
}

func TestDB_playerEventPoints(t *testing.T) {
	ctx := context.Background()

	points := []model.PlayerEventPoints{
		{GameID: "points-g1", AthleteID: "a1", Points: 22.0},
		{GameID: "points-g1", AthleteID: "a2", Points: 19.7},
	}
	err := testDB.SavePlayerEventPoints(ctx, points)
	assertFatalf(t, err == nil, "error saving player event points: %v", err)

	res, err := testDB.GetPlayerEventPoints(ctx, "points-g1")
	assertFatalf(t, err == nil, "error getting player event points: %v", err)
	if !reflect.DeepEqual(points, res) {
		t.Errorf("player points round trip mismatch, got: %v", res)
	}

	// A corrected stat feed updates the points in place.
	points[1].Points = 25.7
	err = testDB.SavePlayerEventPoints(ctx, points)
	assertFatalf(t, err == nil, "error re-saving player event points: %v", err)

	res, err = testDB.GetPlayerEventPoints(ctx, "points-g1")
	assertFatalf(t, err == nil, "error getting player event points: %v", err)
	assertEquals(t, "len(res)", 2, len(res))
	assertEquals(t, "Points", 25.7, res[1].Points)
}

func TestDB_replaceTeamEventPoints(t *testing.T) {
	ctx := context.Background()
	l, _ := setupDraft(t, 2, 1)

	rows := []model.TeamEventPoints{
		{GameID: "team-g1", LeagueID: l.ID, ManagerID: "mgr-a", Points: 22.0},
		{GameID: "team-g1", LeagueID: l.ID, ManagerID: "mgr-b", Points: 3.5},
	}
	err := testDB.ReplaceTeamEventPoints(ctx, "team-g1", l.ID, rows)
	assertFatalf(t, err == nil, "error replacing team event points: %v", err)

	res, err := testDB.GetTeamEventPoints(ctx, "team-g1", l.ID)
	assertFatalf(t, err == nil, "error getting team event points: %v", err)
	assertEquals(t, "len(res)", 2, len(res))

	// Results come back highest points first with the team name joined in.
	assertEquals(t, "ManagerID", "mgr-a", res[0].ManagerID)
	assertEquals(t, "TeamName", "Team A", res[0].TeamName)
	assertEquals(t, "Points", 22.0, res[0].Points)
	assertEquals(t, "ManagerID", "mgr-b", res[1].ManagerID)

	// Re-running the rollup with new totals replaces, never duplicates.
	rows = []model.TeamEventPoints{
		{GameID: "team-g1", LeagueID: l.ID, ManagerID: "mgr-a", Points: 22.0},
		{GameID: "team-g1", LeagueID: l.ID, ManagerID: "mgr-b", Points: 31.2},
	}
	err = testDB.ReplaceTeamEventPoints(ctx, "team-g1", l.ID, rows)
	assertFatalf(t, err == nil, "error re-replacing team event points: %v", err)

	res, err = testDB.GetTeamEventPoints(ctx, "team-g1", l.ID)
	assertFatalf(t, err == nil, "error getting team event points: %v", err)
	assertEquals(t, "len(res)", 2, len(res))
	assertEquals(t, "ManagerID", "mgr-b", res[0].ManagerID)
	assertEquals(t, "Points", 31.2, res[0].Points)
}

func TestDB_replaceTeamEventPoints_leagueNotFound(t *testing.T) {
	err := testDB.ReplaceTeamEventPoints(context.Background(), "team-g1", 999999, nil)
	assertEquals(t, "error", ErrLeagueNotFound, err)
}
