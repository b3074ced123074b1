package games

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jkorhonen/rinkroster/internal/dependencies/mocks"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage/memory"
	"github.com/jkorhonen/rinkroster/internal/testutil"
)

func ptr(s string) *string {
	return &s
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	// A Monday
	s.clock = mocks.NewMockClock(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// Create tests

func (s *ControllerSuite) TestCreateFillsDefaults() {
	s.random.QueueString("GAME00000001")

	game, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME00000001"), game.ID)
	s.Equal("Game 1", game.Title)
	s.Equal("2025-09-01", game.Date)
	s.Equal("Monday", game.Weekday)
	s.NotNil(game.PlayerStatuses)
	s.Equal(0, game.Ready.Filled())
	s.Equal(0, game.Lineup.Filled())
}

func (s *ControllerSuite) TestCreateNumbersTitlesSequentially() {
	first, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)

	s.Equal("Game 1", first.Title)
	s.Equal("Game 2", second.Title)
}

func (s *ControllerSuite) TestCreateIsPersisted() {
	game, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)

	retrieved, err := s.controller.Get(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.Title, retrieved.Title)
}

// List tests

func (s *ControllerSuite) TestListOrdersNewestDateFirst() {
	older, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)
	_, err = s.controller.UpdateInfo(s.ctx, older.ID, Info{Date: ptr("2025-08-01")})
	s.Require().NoError(err)

	newer, err := s.controller.Create(s.ctx)
	s.Require().NoError(err)
	_, err = s.controller.UpdateInfo(s.ctx, newer.ID, Info{Date: ptr("2025-10-01")})
	s.Require().NoError(err)

	games, err := s.controller.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(newer.ID, games[0].ID)
	s.Equal(older.ID, games[1].ID)
}

// UpdateInfo tests

func (s *ControllerSuite) TestUpdateInfoAppliesProvidedFields() {
	game, _ := s.controller.Create(s.ctx)

	updated, err := s.controller.UpdateInfo(s.ctx, game.ID, Info{
		Title:   ptr("Home opener"),
		Stadium: ptr("Ice Hall"),
		Score:   ptr("3-2"),
		Points:  ptr("2"),
		Color:   ptr("#ff0000"),
	})
	s.Require().NoError(err)

	s.Equal("Home opener", updated.Title)
	s.Equal("Ice Hall", updated.Stadium)
	s.Equal("3-2", updated.Score)
	s.Equal("2", updated.Points)
	s.Equal("#ff0000", updated.Color)
	// Untouched fields survive
	s.Equal("2025-09-01", updated.Date)
}

func (s *ControllerSuite) TestUpdateInfoBlankTitleFallsBack() {
	game, _ := s.controller.Create(s.ctx)

	updated, err := s.controller.UpdateInfo(s.ctx, game.ID, Info{Title: ptr("  ")})
	s.Require().NoError(err)
	s.Equal("Game 1", updated.Title)
}

func (s *ControllerSuite) TestUpdateInfoBlankDateFallsBackToToday() {
	game, _ := s.controller.Create(s.ctx)
	s.clock.Set(time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC))

	updated, err := s.controller.UpdateInfo(s.ctx, game.ID, Info{Date: ptr("")})
	s.Require().NoError(err)
	s.Equal("2025-09-02", updated.Date)
	s.Equal("Tuesday", updated.Weekday)
}

func (s *ControllerSuite) TestUpdateInfoDerivesWeekdayFromEditedDate() {
	game, _ := s.controller.Create(s.ctx)

	updated, err := s.controller.UpdateInfo(s.ctx, game.ID, Info{Date: ptr("2025-09-06")})
	s.Require().NoError(err)
	s.Equal("Saturday", updated.Weekday)
}

func (s *ControllerSuite) TestUpdateInfoExplicitWeekdayWins() {
	game, _ := s.controller.Create(s.ctx)

	updated, err := s.controller.UpdateInfo(s.ctx, game.ID, Info{
		Date:    ptr("2025-09-06"),
		Weekday: ptr("Matchday"),
	})
	s.Require().NoError(err)
	s.Equal("Matchday", updated.Weekday)
}

func (s *ControllerSuite) TestUpdateInfoFailsForUnknownGame() {
	_, err := s.controller.UpdateInfo(s.ctx, "NOPE", Info{Title: ptr("x")})
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Delete tests

func (s *ControllerSuite) TestDeleteRemovesGame() {
	game, _ := s.controller.Create(s.ctx)

	s.Require().NoError(s.controller.Delete(s.ctx, game.ID))

	_, err := s.controller.Get(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteFailsForUnknownGame() {
	s.ErrorIs(s.controller.Delete(s.ctx, "NOPE"), model.ErrGameNotFound)
}
