package storage

import (
	"sort"

	"github.com/jkorhonen/rinkroster/internal/model"
)

// SortPlayers orders roster players by creation time, then ID for stability
func SortPlayers(players []*model.Player) {
	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})
}

// SortGames orders game records newest date first, with creation time as a
// tiebreaker. Dates are ISO strings so lexical comparison is chronological.
func SortGames(games []*model.GameRecord) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].Date != games[j].Date {
			return games[i].Date > games[j].Date
		}
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
}
