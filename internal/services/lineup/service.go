package lineup

import (
	"context"
	"log/slog"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// Service owns tactical slot assignment. The lineup is a constrained
// sub-assignment of the ready list: only seated ready players may be placed,
// and clearing a ready slot cascades into the lineup and status map.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new lineup service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// AssignSlot places a ready player into a lineup slot. The target slot must
// be empty; occupied slots require an explicit ClearSlot first. Assigning a
// player to the slot they already hold is a no-op.
func (s *Service) AssignSlot(ctx context.Context, gameID model.GameID, slot int, playerID model.PlayerID) (*model.GameRecord, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !model.ValidSlot(slot) {
		return nil, model.ErrInvalidSlot
	}

	readySlot := game.Ready.IndexOf(playerID)
	if readySlot < 0 {
		return nil, model.ErrNotInReadyList
	}

	if current := game.Lineup.IndexOf(playerID); current >= 0 {
		if current == slot {
			return game, nil
		}
		return nil, model.ErrAlreadyInLineup
	}

	// The lineup copies the ready-slot snapshot, not the live roster record
	snapshot := game.Ready.At(readySlot).Snapshot()
	if err := game.Lineup.Place(slot, snapshot); err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("lineup slot assigned",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("slot", slot),
	)

	return game, nil
}

// ClearSlot empties a lineup slot. Clearing an already-empty slot succeeds.
func (s *Service) ClearSlot(ctx context.Context, gameID model.GameID, slot int) (*model.GameRecord, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !model.ValidSlot(slot) {
		return nil, model.ErrInvalidSlot
	}

	cleared := game.Lineup.Clear(slot)
	if cleared == nil {
		return game, nil
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("lineup slot cleared",
		slog.String("game_id", string(gameID)),
		slog.Int("slot", slot),
	)

	return game, nil
}

// MoveWithinReady relocates a seated player to another ready slot. The
// destination must be empty and must allow the player's position. Moving a
// slot onto itself is a no-op.
func (s *Service) MoveWithinReady(ctx context.Context, gameID model.GameID, from, to int) (*model.GameRecord, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !model.ValidSlot(from) || !model.ValidSlot(to) {
		return nil, model.ErrInvalidSlot
	}
	if from == to {
		return game, nil
	}

	player := game.Ready.At(from)
	if player == nil {
		return nil, model.ErrSlotEmpty
	}
	if !model.SlotAllows(to, player.Position) {
		return nil, model.ErrPositionMismatch
	}
	if game.Ready.At(to) != nil {
		return nil, model.ErrSlotOccupied
	}

	game.Ready.Clear(from)
	if err := game.Ready.Place(to, player); err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("ready slot moved",
		slog.String("game_id", string(gameID)),
		slog.Int("from", from),
		slog.Int("to", to),
	)

	return game, nil
}

// RemoveFromReady clears a ready slot and cascades in one step: the player
// leaves the lineup wherever present and their status entry is deleted.
func (s *Service) RemoveFromReady(ctx context.Context, gameID model.GameID, slot int) (*model.GameRecord, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !model.ValidSlot(slot) {
		return nil, model.ErrInvalidSlot
	}

	player := game.Ready.Clear(slot)
	if player == nil {
		return nil, model.ErrSlotEmpty
	}
	game.Lineup.Remove(player.ID)
	delete(game.PlayerStatuses, player.ID)

	game.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("removed from ready list",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(player.ID)),
		slog.Int("slot", slot),
	)

	return game, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	AssignSlot(ctx context.Context, gameID model.GameID, slot int, playerID model.PlayerID) (*model.GameRecord, error)
	ClearSlot(ctx context.Context, gameID model.GameID, slot int) (*model.GameRecord, error)
	MoveWithinReady(ctx context.Context, gameID model.GameID, from, to int) (*model.GameRecord, error)
	RemoveFromReady(ctx context.Context, gameID model.GameID, slot int) (*model.GameRecord, error)
}

var _ ServiceInterface = (*Service)(nil)
