package backup

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// Version identifies the backup file format
const Version = "1.0"

// File is the serialized backup document
type File struct {
	Team       []*model.Player     `json:"team"`
	Games      []*model.GameRecord `json:"games"`
	ExportDate string              `json:"exportDate"`
	Version    string              `json:"version"`
}

// Service exports and restores the whole dataset as a single JSON document
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new backup service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Export snapshots the roster and all game records
func (s *Service) Export(ctx context.Context) (*File, error) {
	team, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	return &File{
		Team:       team,
		Games:      games,
		ExportDate: s.clock.Now().Format(time.RFC3339),
		Version:    Version,
	}, nil
}

// Import validates a backup document and wholesale-replaces the stored
// roster and games. Any structural failure aborts before touching storage.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return model.ErrInvalidBackup
	}
	// Both aggregates must be present and array-typed; a wrong-typed field
	// already failed above, absent or null fields land here as nil
	if file.Team == nil || file.Games == nil {
		return model.ErrInvalidBackup
	}

	for _, game := range file.Games {
		if game.PlayerStatuses == nil {
			game.PlayerStatuses = make(map[model.PlayerID]model.Status)
		}
	}

	if err := s.storage.ReplaceAll(ctx, file.Team, file.Games); err != nil {
		return err
	}

	s.logger.Info("backup imported",
		slog.Int("player_count", len(file.Team)),
		slog.Int("game_count", len(file.Games)),
		slog.String("version", file.Version),
	)

	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Export(ctx context.Context) (*File, error)
	Import(ctx context.Context, raw []byte) error
}

var _ ServiceInterface = (*Service)(nil)
