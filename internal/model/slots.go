package model

// SlotCount is the fixed size of the ready list and the lineup:
// one goalie slot plus three lines of five field players.
const SlotCount = 16

const (
	// GoalieSlot is the only slot a goalie may occupy
	GoalieSlot = 0
	// LineSize is the number of field players per line
	LineSize = 5
	// LineForwards is how many of a line's slots are forward-labeled;
	// the remaining slots are defender-labeled. Labels are display
	// hints only, not placement constraints.
	LineForwards = 3
	// LineCount is the number of field lines
	LineCount = 3
)

// SlotList is a fixed sequence of 16 player snapshot slots.
// Slot 0 is reserved for a goalie; slots 1-15 hold field players.
// All writes go through Place so the goalie rule cannot be bypassed.
type SlotList [SlotCount]*Player

// ValidSlot reports whether i is within slot bounds
func ValidSlot(i int) bool {
	return i >= 0 && i < SlotCount
}

// SlotAllows reports whether a player of the given position may occupy slot i
func SlotAllows(i int, pos Position) bool {
	if i == GoalieSlot {
		return pos == PositionGoalie
	}
	return pos != PositionGoalie
}

// At returns the snapshot at slot i, or nil if empty or out of bounds
func (s *SlotList) At(i int) *Player {
	if !ValidSlot(i) {
		return nil
	}
	return s[i]
}

// Place stores a player snapshot at slot i, enforcing bounds and the
// goalie reservation. The target slot must be empty.
func (s *SlotList) Place(i int, p *Player) error {
	if !ValidSlot(i) {
		return ErrInvalidSlot
	}
	if !SlotAllows(i, p.Position) {
		return ErrPositionMismatch
	}
	if s[i] != nil {
		return ErrSlotOccupied
	}
	s[i] = p
	return nil
}

// Clear empties slot i and returns the snapshot that occupied it, if any
func (s *SlotList) Clear(i int) *Player {
	if !ValidSlot(i) {
		return nil
	}
	p := s[i]
	s[i] = nil
	return p
}

// IndexOf returns the slot occupied by the given player id, or -1
func (s *SlotList) IndexOf(id PlayerID) int {
	for i, p := range s {
		if p != nil && p.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether the given player id occupies any slot
func (s *SlotList) Contains(id PlayerID) bool {
	return s.IndexOf(id) >= 0
}

// FirstFree returns the first empty slot a player of the given position may
// occupy: the goalie slot for goalies, the lowest empty field slot otherwise.
// Returns -1 when no eligible slot is free.
func (s *SlotList) FirstFree(pos Position) int {
	if pos == PositionGoalie {
		if s[GoalieSlot] == nil {
			return GoalieSlot
		}
		return -1
	}
	for i := GoalieSlot + 1; i < SlotCount; i++ {
		if s[i] == nil {
			return i
		}
	}
	return -1
}

// Filled returns the number of occupied slots
func (s *SlotList) Filled() int {
	count := 0
	for _, p := range s {
		if p != nil {
			count++
		}
	}
	return count
}

// ReplaceSnapshots overwrites every slot holding the given player id with a
// fresh snapshot, returning true if any slot changed
func (s *SlotList) ReplaceSnapshots(p *Player) bool {
	changed := false
	for i, cur := range s {
		if cur != nil && cur.ID == p.ID {
			s[i] = p.Snapshot()
			changed = true
		}
	}
	return changed
}

// Remove clears every slot holding the given player id, returning true if
// any slot changed
func (s *SlotList) Remove(id PlayerID) bool {
	changed := false
	for i, cur := range s {
		if cur != nil && cur.ID == id {
			s[i] = nil
			changed = true
		}
	}
	return changed
}

// LineForSlot returns the 1-based line a field slot belongs to, or 0 for
// the goalie slot or an invalid index. Line membership is derived purely
// from slot arithmetic; there is no stored line entity.
func LineForSlot(i int) int {
	if i <= GoalieSlot || i >= SlotCount {
		return 0
	}
	return (i-1)/LineSize + 1
}

// LineSlots returns the slot index range [first, last] of the 1-based line n
func LineSlots(n int) (first, last int) {
	first = (n-1)*LineSize + 1
	last = first + LineSize - 1
	return first, last
}

// ForwardSlot reports whether a field slot carries the forward display label
// (the first three slots of its line)
func ForwardSlot(i int) bool {
	if LineForSlot(i) == 0 {
		return false
	}
	return (i-1)%LineSize < LineForwards
}
