package request

// AddPlayerRequest is the request body for adding a roster player
type AddPlayerRequest struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// EditPlayerRequest is the request body for editing a roster player
type EditPlayerRequest struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// UpdateGameRequest is the request body for a partial game info update.
// Absent fields are left unchanged.
type UpdateGameRequest struct {
	Title   *string `json:"title,omitempty"`
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Weekday *string `json:"weekday,omitempty"`
	Stadium *string `json:"stadium,omitempty"`
	Score   *string `json:"score,omitempty"`
	Points  *string `json:"points,omitempty"`
	Color   *string `json:"color,omitempty"`
}

// SetStatusRequest is the request body for setting a player's game status
type SetStatusRequest struct {
	Status string `json:"status"`
}

// AssignSlotRequest is the request body for assigning a lineup slot
type AssignSlotRequest struct {
	PlayerID string `json:"player_id"`
}

// MoveReadyRequest is the request body for moving a player between ready slots
type MoveReadyRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}
