package response

import (
	"time"

	"github.com/jkorhonen/rinkroster/internal/model"
)

// Player represents a roster player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		Number:    p.Number,
		Position:  string(p.Position),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerFromModel(p))
	}
	return out
}

// Game represents a game record in API responses. The ready list and lineup
// keep their 16-element array-with-nulls shape.
type Game struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Weekday        string            `json:"weekday"`
	Stadium        string            `json:"stadium"`
	Score          string            `json:"score"`
	Points         string            `json:"points"`
	Color          string            `json:"color"`
	PlayerStatuses map[string]string `json:"player_statuses"`
	Ready          []*Player         `json:"ready_players"`
	Lineup         []*Player         `json:"lineup"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// GameFromModel converts a model.GameRecord to a response Game
func GameFromModel(g *model.GameRecord) Game {
	statuses := make(map[string]string, len(g.PlayerStatuses))
	for id, status := range g.PlayerStatuses {
		statuses[string(id)] = string(status)
	}
	return Game{
		ID:             string(g.ID),
		Title:          g.Title,
		Date:           g.Date,
		Time:           g.Time,
		Weekday:        g.Weekday,
		Stadium:        g.Stadium,
		Score:          g.Score,
		Points:         g.Points,
		Color:          g.Color,
		PlayerStatuses: statuses,
		Ready:          slotsFromModel(&g.Ready),
		Lineup:         slotsFromModel(&g.Lineup),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// GamesFromModel converts a slice of game records
func GamesFromModel(games []*model.GameRecord) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		out = append(out, GameFromModel(g))
	}
	return out
}

func slotsFromModel(slots *model.SlotList) []*Player {
	out := make([]*Player, model.SlotCount)
	for i := 0; i < model.SlotCount; i++ {
		if p := slots.At(i); p != nil {
			converted := PlayerFromModel(p)
			out[i] = &converted
		}
	}
	return out
}
