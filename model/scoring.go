package model

import "math"

// GameStatLine holds the raw counting stats for one athlete in one game,
// accumulated from the provider's box score. Keyed by (GameID, AthleteID);
// re-ingesting a game overwrites the line rather than duplicating it.
type GameStatLine struct {
	GameID    string
	AthleteID string

	PassingYards   int
	PassingTDs     int
	Interceptions  int
	RushingYards   int
	RushingTDs     int
	ReceivingYards int
	ReceivingTDs   int
	Receptions     int
	FumblesLost    int
	KickReturnTDs  int
	PuntReturnTDs  int
}

// FantasyPoints computes the half-PPR fantasy value of a stat line and
// rounds it to 2 decimal places. The coefficients are a fixed league
// contract and must not drift.
func (s *GameStatLine) FantasyPoints() float64 {
	pts := 0.04*float64(s.PassingYards) +
		4*float64(s.PassingTDs) -
		2*float64(s.Interceptions) +
		0.1*float64(s.RushingYards) +
		6*float64(s.RushingTDs) +
		0.1*float64(s.ReceivingYards) +
		6*float64(s.ReceivingTDs) +
		0.5*float64(s.Receptions) -
		2*float64(s.FumblesLost) +
		6*float64(s.KickReturnTDs+s.PuntReturnTDs)

	return math.Round(pts*100) / 100
}

// PlayerEventPoints is the computed fantasy value for one athlete in one
// game. Derived from GameStatLine and overwritten whenever the line changes.
type PlayerEventPoints struct {
	GameID    string
	AthleteID string
	Points    float64
}

// TeamEventPoints is one manager's total for one game in one league: the sum
// of PlayerEventPoints over every player they drafted that has a resolvable
// athlete ID. Keyed by (GameID, LeagueID, ManagerID).
type TeamEventPoints struct {
	GameID    string
	LeagueID  int32
	ManagerID string
	TeamName  string
	Points    float64
}
