package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, teamIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	values, err := s.membersOf(ctx, teamIndexKey())
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		var player model.Player
		if err := json.Unmarshal([]byte(val), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	storage.SortPlayers(players)
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	key := playerKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, teamIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.GameRecord) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	key := gameKey(game.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, gamesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.GameRecord
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.GameRecord, error) {
	values, err := s.membersOf(ctx, gamesIndexKey())
	if err != nil {
		return nil, err
	}

	games := make([]*model.GameRecord, 0, len(values))
	for _, val := range values {
		var game model.GameRecord
		if err := json.Unmarshal([]byte(val), &game); err != nil {
			continue // Skip invalid data
		}
		games = append(games, &game)
	}

	storage.SortGames(games)
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	key := gameKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, gamesIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) CountGames(ctx context.Context) (int, error) {
	n, err := s.client.SCard(ctx, gamesIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReplaceAll rewrites both aggregates in a single pipeline

func (s *Storage) ReplaceAll(ctx context.Context, players []*model.Player, games []*model.GameRecord) error {
	oldPlayerKeys, err := s.client.SMembers(ctx, teamIndexKey()).Result()
	if err != nil {
		return err
	}
	oldGameKeys, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return err
	}

	// Marshal everything up front so a bad record aborts before any write
	playerData := make(map[string][]byte, len(players))
	for _, p := range players {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		playerData[playerKey(p.ID)] = data
	}
	gameData := make(map[string][]byte, len(games))
	for _, g := range games {
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		gameData[gameKey(g.ID)] = data
	}

	pipe := s.client.TxPipeline()
	for _, key := range oldPlayerKeys {
		pipe.Del(ctx, key)
	}
	for _, key := range oldGameKeys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, teamIndexKey())
	pipe.Del(ctx, gamesIndexKey())

	for key, data := range playerData {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, teamIndexKey(), key)
	}
	for key, data := range gameData {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, gamesIndexKey(), key)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// membersOf fetches all values referenced by an index set via MGET
func (s *Storage) membersOf(ctx context.Context, indexKey string) ([]string, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Entry removed since the index was read
		}
		result = append(result, val.(string))
	}
	return result, nil
}
