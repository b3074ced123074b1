package games

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jkorhonen/rinkroster/internal/dependencies/clock"
	"github.com/jkorhonen/rinkroster/internal/dependencies/random"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// dateLayout is the ISO form all game dates are stored in
const dateLayout = "2006-01-02"

// Controller manages game record lifecycle and descriptive fields.
// Availability and lineup state on the records is owned by their services.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new games controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Info carries a partial update of a game's descriptive fields.
// Nil fields are left unchanged.
type Info struct {
	Title   *string
	Date    *string
	Time    *string
	Weekday *string
	Stadium *string
	Score   *string
	Points  *string
	Color   *string
}

// Create initializes a new game with generated title and today's date
func (c *Controller) Create(ctx context.Context) (*model.GameRecord, error) {
	count, err := c.storage.CountGames(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := model.NewGameRecord(model.GameID(random.ID(c.random)), now)
	game.Title = fmt.Sprintf("Game %d", count+1)
	game.Date = now.Format(dateLayout)
	game.Weekday = now.Weekday().String()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("title", game.Title),
		slog.String("date", game.Date),
	)

	return game, nil
}

// Get retrieves a game record by id
func (c *Controller) Get(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	return c.storage.GetGame(ctx, id)
}

// List returns all game records, newest date first
func (c *Controller) List(ctx context.Context) ([]*model.GameRecord, error) {
	return c.storage.ListGames(ctx)
}

// UpdateInfo applies a partial update of descriptive fields. A blank title or
// date falls back to a generated default rather than persisting empty.
func (c *Controller) UpdateInfo(ctx context.Context, id model.GameID, info Info) (*model.GameRecord, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	dateChanged := false
	if info.Title != nil {
		game.Title = strings.TrimSpace(*info.Title)
	}
	if info.Date != nil {
		game.Date = strings.TrimSpace(*info.Date)
		dateChanged = true
	}
	if info.Time != nil {
		game.Time = *info.Time
	}
	if info.Weekday != nil {
		game.Weekday = *info.Weekday
	}
	if info.Stadium != nil {
		game.Stadium = *info.Stadium
	}
	if info.Score != nil {
		game.Score = *info.Score
	}
	if info.Points != nil {
		game.Points = *info.Points
	}
	if info.Color != nil {
		game.Color = *info.Color
	}

	now := c.clock.Now()
	if game.Title == "" {
		count, err := c.storage.CountGames(ctx)
		if err != nil {
			return nil, err
		}
		game.Title = fmt.Sprintf("Game %d", count)
	}
	if game.Date == "" {
		game.Date = now.Format(dateLayout)
		game.Weekday = now.Weekday().String()
	} else if dateChanged && info.Weekday == nil {
		// Keep the weekday in step with an edited date when it parses
		if d, err := time.Parse(dateLayout, game.Date); err == nil {
			game.Weekday = d.Weekday().String()
		}
	}

	game.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game info updated", slog.String("game_id", string(game.ID)))
	return game, nil
}

// Delete removes a game record
func (c *Controller) Delete(ctx context.Context, id model.GameID) error {
	if _, err := c.storage.GetGame(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context) (*model.GameRecord, error)
	Get(ctx context.Context, id model.GameID) (*model.GameRecord, error)
	List(ctx context.Context) ([]*model.GameRecord, error)
	UpdateInfo(ctx context.Context, id model.GameID, info Info) (*model.GameRecord, error)
	Delete(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
