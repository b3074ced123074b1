package availability

import (
	"context"
	"log/slog"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// Service owns per-game status transitions and keeps the ready list in
// lockstep with the status map: a player is StatusReady exactly when they
// occupy a ready slot.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new availability service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// SetStatus transitions a player's status for one game. Target may be any of
// the stored statuses or StatusNone to clear the entry. Capacity failure on a
// Ready transition leaves the record untouched.
func (s *Service) SetStatus(ctx context.Context, gameID model.GameID, playerID model.PlayerID, target model.Status) (*model.GameRecord, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	switch target {
	case model.StatusReady:
		if game.Ready.Contains(playerID) {
			// Already seated, nothing to move
			return game, nil
		}
		slot := game.Ready.FirstFree(player.Position)
		if slot < 0 {
			return nil, model.ErrReadyListFull
		}
		if err := game.Ready.Place(slot, player.Snapshot()); err != nil {
			return nil, err
		}
		game.PlayerStatuses[playerID] = model.StatusReady

	case model.StatusNotReady, model.StatusDoubtful, model.StatusSurvey:
		s.unseat(game, playerID)
		game.PlayerStatuses[playerID] = target

	case model.StatusNone:
		s.unseat(game, playerID)
		delete(game.PlayerStatuses, playerID)

	default:
		return nil, model.ErrInvalidStatus
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("status set",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("status", string(target)),
	)

	return game, nil
}

// unseat removes the player from the ready list and, cascading, the lineup
func (s *Service) unseat(game *model.GameRecord, playerID model.PlayerID) {
	game.Ready.Remove(playerID)
	game.Lineup.Remove(playerID)
}

// Interface for dependency injection
type ServiceInterface interface {
	SetStatus(ctx context.Context, gameID model.GameID, playerID model.PlayerID, target model.Status) (*model.GameRecord, error)
}

var _ ServiceInterface = (*Service)(nil)
