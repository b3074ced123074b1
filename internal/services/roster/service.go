package roster

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/dependencies/random"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// Service manages the team roster. Game records hold snapshots of roster
// players, so edits and removals fan out across every stored game here.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// AddPlayer validates and appends a new player to the roster
func (s *Service) AddPlayer(ctx context.Context, name string, number int, position model.Position) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if number < 0 {
		return nil, model.ErrInvalidNumber
	}
	if !model.ValidPosition(position) {
		return nil, model.ErrInvalidPosition
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:        model.PlayerID(random.ID(s.random)),
		Name:      name,
		Number:    number,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
		slog.String("position", string(player.Position)),
	)

	return player, nil
}

// EditPlayer updates a roster player and propagates the fresh snapshot into
// every game record slot currently holding that player
func (s *Service) EditPlayer(ctx context.Context, id model.PlayerID, name string, number int, position model.Position) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrNameRequired
	}
	if number < 0 {
		return nil, model.ErrInvalidNumber
	}
	if !model.ValidPosition(position) {
		return nil, model.ErrInvalidPosition
	}

	player.Name = name
	player.Number = number
	player.Position = position
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	if err := s.propagateSnapshot(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player edited",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)

	return player, nil
}

// propagateSnapshot refreshes the player's snapshot in every game that holds one
func (s *Service) propagateSnapshot(ctx context.Context, player *model.Player) error {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return err
	}

	for _, game := range games {
		inReady := game.Ready.ReplaceSnapshots(player)
		inLineup := game.Lineup.ReplaceSnapshots(player)
		if !inReady && !inLineup {
			continue
		}
		game.UpdatedAt = s.clock.Now()
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return err
		}
	}
	return nil
}

// RemovePlayer deletes a roster player and purges them from the ready list,
// lineup and status map of every game record
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return err
	}

	for _, game := range games {
		inReady := game.Ready.Remove(id)
		inLineup := game.Lineup.Remove(id)
		_, hasStatus := game.PlayerStatuses[id]
		if !inReady && !inLineup && !hasStatus {
			continue
		}
		delete(game.PlayerStatuses, id)
		game.UpdatedAt = s.clock.Now()
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return err
		}
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player removed", slog.String("player_id", string(id)))
	return nil
}

// GetPlayer retrieves a roster player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns the roster in creation order
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Seed populates the default roster when the store holds no team yet.
// It is idempotent: a non-empty roster is returned unchanged.
func (s *Service) Seed(ctx context.Context) ([]*model.Player, error) {
	existing, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	now := s.clock.Now()
	players := make([]*model.Player, 0, len(defaultRoster))
	for i, d := range defaultRoster {
		// Stagger creation times so roster order survives sorting
		ts := now.Add(time.Duration(i) * time.Millisecond)
		player := &model.Player{
			ID:        model.PlayerID(random.ID(s.random)),
			Name:      d.name,
			Number:    d.number,
			Position:  d.position,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		if err := s.storage.SavePlayer(ctx, player); err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	s.logger.Info("default roster seeded", slog.Int("player_count", len(players)))
	return players, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	AddPlayer(ctx context.Context, name string, number int, position model.Position) (*model.Player, error)
	EditPlayer(ctx context.Context, id model.PlayerID, name string, number int, position model.Position) (*model.Player, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	Seed(ctx context.Context) ([]*model.Player, error)
}

var _ ServiceInterface = (*Service)(nil)
