package storage

import (
	"context"

	"github.com/jkorhonen/rinkroster/internal/model"
)

// Storage defines the interface for data persistence.
//
// Entities are read and written whole; there are no partial updates. List
// methods return stable orderings: players by creation time, games by date
// descending (newest first).
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.GameRecord) error
	GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error)
	ListGames(ctx context.Context) ([]*model.GameRecord, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	CountGames(ctx context.Context) (int, error)

	// ReplaceAll atomically replaces the entire team and game set.
	// Used by backup restore; on error the previous state is preserved.
	ReplaceAll(ctx context.Context, players []*model.Player, games []*model.GameRecord) error
}
