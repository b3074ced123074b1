package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/storage"
)

// emptyMark renders an unoccupied slot
const emptyMark = "--"

// Service renders a game record as a printable text sheet: header, goalie
// panel, the ordered ready list and the three-line tactical diagram. It is a
// pure read projection and never mutates the record.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new sheet service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Render produces the text sheet for one game
func (s *Service) Render(ctx context.Context, gameID model.GameID) (string, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", game.Title)
	if game.Date != "" {
		fmt.Fprintf(&b, "Date:    %s", game.Date)
		if game.Weekday != "" {
			fmt.Fprintf(&b, " (%s)", game.Weekday)
		}
		if game.Time != "" {
			fmt.Fprintf(&b, " %s", game.Time)
		}
		b.WriteString("\n")
	}
	if game.Stadium != "" {
		fmt.Fprintf(&b, "Stadium: %s\n", game.Stadium)
	}
	if game.Score != "" {
		fmt.Fprintf(&b, "Score:   %s", game.Score)
		if game.Points != "" {
			fmt.Fprintf(&b, " (%s)", game.Points)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Goalie: %s\n\n", formatSlot(game.Lineup.At(model.GoalieSlot)))

	fmt.Fprintf(&b, "Ready (%d/%d):\n", game.Ready.Filled(), model.SlotCount)
	fmt.Fprintf(&b, "   G %s\n", formatSlot(game.Ready.At(model.GoalieSlot)))
	for i := model.GoalieSlot + 1; i < model.SlotCount; i++ {
		fmt.Fprintf(&b, "  %2d %s\n", i, formatSlot(game.Ready.At(i)))
	}
	b.WriteString("\n")

	b.WriteString("Lineup:\n")
	for line := 1; line <= model.LineCount; line++ {
		first, last := model.LineSlots(line)
		var forwards, defenders []string
		for i := first; i <= last; i++ {
			entry := formatSlot(game.Lineup.At(i))
			if model.ForwardSlot(i) {
				forwards = append(forwards, entry)
			} else {
				defenders = append(defenders, entry)
			}
		}
		fmt.Fprintf(&b, "Line %d\n", line)
		fmt.Fprintf(&b, "  F: %s\n", strings.Join(forwards, " | "))
		fmt.Fprintf(&b, "  D: %s\n", strings.Join(defenders, " | "))
	}

	return b.String(), nil
}

// formatSlot renders a slot occupant as "#7 Name", with "?" for an unset number
func formatSlot(p *model.Player) string {
	if p == nil {
		return emptyMark
	}
	number := "?"
	if p.Number > 0 {
		number = fmt.Sprintf("%d", p.Number)
	}
	return fmt.Sprintf("#%s %s", number, p.Name)
}

// Interface for dependency injection
type ServiceInterface interface {
	Render(ctx context.Context, gameID model.GameID) (string, error)
}

var _ ServiceInterface = (*Service)(nil)
