package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/dependencies/random"
	"github.com/jkorhonen/rinkroster/internal/services/availability"
	"github.com/jkorhonen/rinkroster/internal/services/backup"
	"github.com/jkorhonen/rinkroster/internal/services/games"
	"github.com/jkorhonen/rinkroster/internal/services/lineup"
	"github.com/jkorhonen/rinkroster/internal/services/roster"
	"github.com/jkorhonen/rinkroster/internal/services/sheet"
	"github.com/jkorhonen/rinkroster/internal/storage"
	"github.com/jkorhonen/rinkroster/internal/storage/memory"
	redisstorage "github.com/jkorhonen/rinkroster/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	RosterService       *roster.Service
	GamesController     *games.Controller
	AvailabilityService *availability.Service
	LineupService       *lineup.Service
	BackupService       *backup.Service
	SheetService        *sheet.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	rosterService := roster.New(store, clk, rnd, logger)
	gamesController := games.NewController(store, clk, rnd, logger)
	availabilityService := availability.New(store, clk, logger)
	lineupService := lineup.New(store, clk, logger)
	backupService := backup.New(store, clk, logger)
	sheetService := sheet.New(store, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		RosterService:       rosterService,
		GamesController:     gamesController,
		AvailabilityService: availabilityService,
		LineupService:       lineupService,
		BackupService:       backupService,
		SheetService:        sheetService,
	}
}
