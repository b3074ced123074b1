package model

import "time"

// GameID uniquely identifies a game record
type GameID string

// Status is a player's per-game availability classification.
// Absence of an entry in PlayerStatuses means "no status yet".
type Status string

const (
	StatusReady    Status = "ready"
	StatusNotReady Status = "not_ready"
	StatusDoubtful Status = "doubtful"
	StatusSurvey   Status = "survey"
)

// StatusNone requests clearing a player's status. It is accepted by the
// availability service but never stored in PlayerStatuses.
const StatusNone Status = "none"

// ValidStatus reports whether s is one of the known statuses
func ValidStatus(s Status) bool {
	switch s {
	case StatusReady, StatusNotReady, StatusDoubtful, StatusSurvey:
		return true
	}
	return false
}

// GameRecord is a single planned game: descriptive fields, per-player
// availability statuses, the 16-slot ready list and the 16-slot lineup.
//
// The ready list and lineup hold player snapshots taken at assignment time.
// Invariants maintained by the services:
//   - slot 0 of both lists is goalie-only, slots 1-15 are field-only
//   - a player id appears at most once per list
//   - every lineup player is also in the ready list
//   - PlayerStatuses[id] == StatusReady iff id occupies a ready slot
type GameRecord struct {
	ID      GameID `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"` // ISO date, 2006-01-02
	Time    string `json:"time"`
	Weekday string `json:"weekday"`
	Stadium string `json:"stadium"`
	Score   string `json:"score"`
	Points  string `json:"points"`
	Color   string `json:"color"`

	PlayerStatuses map[PlayerID]Status `json:"player_statuses"`
	Ready          SlotList            `json:"ready_players"`
	Lineup         SlotList            `json:"lineup"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameRecord creates an empty game record with the given id
func NewGameRecord(id GameID, now time.Time) *GameRecord {
	return &GameRecord{
		ID:             id,
		PlayerStatuses: make(map[PlayerID]Status),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Status returns the player's status and whether one is set
func (g *GameRecord) Status(id PlayerID) (Status, bool) {
	s, ok := g.PlayerStatuses[id]
	return s, ok
}
