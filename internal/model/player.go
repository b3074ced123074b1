package model

import "time"

// PlayerID uniquely identifies a roster player across the system
type PlayerID string

// Position is a player's fixed field position
type Position string

const (
	PositionGoalie   Position = "goalie"
	PositionForward  Position = "forward"
	PositionDefender Position = "defender"
)

// ValidPosition reports whether p is one of the known positions
func ValidPosition(p Position) bool {
	switch p {
	case PositionGoalie, PositionForward, PositionDefender:
		return true
	}
	return false
}

// Player represents a team roster member.
// Game records hold snapshots of this struct, not references; roster edits
// are re-propagated into every game as an explicit step.
type Player struct {
	ID        PlayerID  `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"` // 0 = unknown, rendered as "?"
	Position  Position  `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a copy of the player for embedding in a game record
func (p *Player) Snapshot() *Player {
	copied := *p
	return &copied
}
