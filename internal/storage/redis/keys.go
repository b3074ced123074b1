package redis

import (
	"fmt"

	"github.com/jkorhonen/rinkroster/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "rinkroster"

// playerKey returns the Redis key for a roster Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a GameRecord
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// teamIndexKey returns the Redis key for the SET of roster player keys
func teamIndexKey() string {
	return fmt.Sprintf("%s:idx:team", keyPrefix)
}

// gamesIndexKey returns the Redis key for the SET of game record keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
