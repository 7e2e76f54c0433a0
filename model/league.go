package model

import "fmt"

// DraftStatus is the lifecycle of a league's draft. A league starts in
// pre_draft, moves to draft once the organizer starts it, and ends in
// post_draft when every roster slot is filled.
type DraftStatus string

const (
	StatusPreDraft  DraftStatus = "pre_draft"
	StatusDraft     DraftStatus = "draft"
	StatusPostDraft DraftStatus = "post_draft"
)

func ParseDraftStatus(s string) (DraftStatus, error) {
	switch s {
	case string(StatusPreDraft):
		return StatusPreDraft, nil
	case string(StatusDraft):
		return StatusDraft, nil
	case string(StatusPostDraft):
		return StatusPostDraft, nil
	default:
		return "", fmt.Errorf("unknown draft status: %s", s)
	}
}

type League struct {
	ID        int32
	Name      string
	Year      string
	TeamCount int
	Rounds    int
	Status    DraftStatus
	Archived  bool
	Order     []DraftSlot
	Managers  []LeagueManager
}

// TotalPicks is the number of picks in a complete draft.
func (l *League) TotalPicks() int {
	return l.TeamCount * l.Rounds
}

// DraftSlot assigns one draft position to a manager. Slots run 1..TeamCount
// with no gaps and no repeated managers.
type DraftSlot struct {
	Slot      int
	ManagerID string
}

type LeagueManager struct {
	ID       string
	TeamName string
	Name     string
}

// ValidateDraftOrder checks that slots are exactly 1..teamCount, contiguous
// and unique, with a distinct manager in each slot. The draft must never
// start until this holds.
func ValidateDraftOrder(order []DraftSlot, teamCount int) error {
	if teamCount < 2 {
		return fmt.Errorf("team count must be at least 2, got %d", teamCount)
	}
	if len(order) != teamCount {
		return fmt.Errorf("draft order has %d slots, need exactly %d", len(order), teamCount)
	}

	slots := make(map[int]bool, len(order))
	managers := make(map[string]bool, len(order))
	for _, s := range order {
		if s.Slot < 1 || s.Slot > teamCount {
			return fmt.Errorf("slot %d is out of range 1..%d", s.Slot, teamCount)
		}
		if slots[s.Slot] {
			return fmt.Errorf("slot %d appears more than once", s.Slot)
		}
		if s.ManagerID == "" {
			return fmt.Errorf("slot %d has no manager", s.Slot)
		}
		if managers[s.ManagerID] {
			return fmt.Errorf("manager %s holds more than one slot", s.ManagerID)
		}
		slots[s.Slot] = true
		managers[s.ManagerID] = true
	}
	return nil
}
