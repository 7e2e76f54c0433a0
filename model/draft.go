package model

import "time"

// Pick is one completed selection in a league's draft. PickNum starts at 1
// and is contiguous within a league. A player appears in at most one pick
// per league.
type Pick struct {
	PickNum   int
	ManagerID string
	PlayerID  string
	// Typically populated from the players table when listing picks.
	FirstName string
	LastName  string
	Position  Position
	Made      time.Time
}

// Round returns the 1-indexed draft round for a pick, given the league's
// team count.
func (p *Pick) Round(teamCount int) int {
	if teamCount < 1 {
		return 0
	}
	return (p.PickNum-1)/teamCount + 1
}

// DraftState is a read-only snapshot of where a league's draft stands,
// used to gate the pick button in the UI. It is advisory only; the pick
// write path re-validates the turn.
type DraftState struct {
	LeagueID   int32
	Status     DraftStatus
	PicksMade  int
	TotalPicks int
	// NextPick is 1 + picks made, or 0 once the draft is complete.
	NextPick int
	// OnTheClock is empty when the turn can't be resolved yet (order not
	// configured, draft not started) or when the draft is over.
	OnTheClock string
}

// ResolveTurn answers which manager is on the clock for pick number pickNum
// in a snake draft. Rounds alternate direction: slots 1..N in odd rounds,
// N..1 in even rounds.
//
// The second return is false when the turn cannot be resolved yet, which
// happens when teamCount is not positive or the order has no entry for the
// target slot. Callers treat that as "waiting", never as a default manager.
// pickNum must be >= 1; it is always derived as 1 + picks made so far.
func ResolveTurn(pickNum, teamCount int, order []DraftSlot) (string, bool) {
	if teamCount < 1 || pickNum < 1 {
		return "", false
	}

	round := (pickNum-1)/teamCount + 1
	idx := (pickNum-1)%teamCount + 1

	slot := idx
	if round%2 == 0 {
		slot = teamCount - idx + 1
	}

	for _, s := range order {
		if s.Slot == slot && s.ManagerID != "" {
			return s.ManagerID, true
		}
	}
	return "", false
}
