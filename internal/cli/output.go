package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case BackupFile:
		o.printBackup(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// Game response type
type Game struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Weekday        string            `json:"weekday"`
	Stadium        string            `json:"stadium"`
	Score          string            `json:"score"`
	Points         string            `json:"points"`
	PlayerStatuses map[string]string `json:"player_statuses"`
	Ready          []*Player         `json:"ready_players"`
	Lineup         []*Player         `json:"lineup"`
}

// BackupFile response type
type BackupFile struct {
	Team       []Player          `json:"team"`
	Games      []json.RawMessage `json:"games"`
	ExportDate string            `json:"exportDate"`
	Version    string            `json:"version"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func formatNumber(n int) string {
	if n <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d", n)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("#%s %s - %s (%s)\n", formatNumber(p.Number), p.Name, p.Position, p.ID)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Roster (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  #%-3s %-24s %-9s %s\n", formatNumber(p.Number), p.Name, p.Position, p.ID)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Title, g.ID)
	if g.Date != "" {
		fmt.Printf("Date: %s", g.Date)
		if g.Weekday != "" {
			fmt.Printf(" (%s)", g.Weekday)
		}
		if g.Time != "" {
			fmt.Printf(" %s", g.Time)
		}
		fmt.Println()
	}
	if g.Stadium != "" {
		fmt.Printf("Stadium: %s\n", g.Stadium)
	}
	if g.Score != "" {
		fmt.Printf("Score: %s", g.Score)
		if g.Points != "" {
			fmt.Printf(" (%s points)", g.Points)
		}
		fmt.Println()
	}

	fmt.Println("Ready:")
	o.printSlots(g.Ready)
	fmt.Println("Lineup:")
	o.printSlots(g.Lineup)

	if len(g.PlayerStatuses) > 0 {
		fmt.Printf("Statuses (%d):\n", len(g.PlayerStatuses))
		for id, status := range g.PlayerStatuses {
			fmt.Printf("  %s: %s\n", id, status)
		}
	}
}

func (o *Output) printSlots(slots []*Player) {
	for i, p := range slots {
		if p == nil {
			continue
		}
		label := fmt.Sprintf("%d", i)
		if i == 0 {
			label = "G"
		}
		fmt.Printf("  %2s: #%s %s\n", label, formatNumber(p.Number), p.Name)
	}
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s  %-24s %s\n", g.Date, g.Title, g.ID)
	}
}

func (o *Output) printBackup(b BackupFile) {
	fmt.Printf("Backup version %s from %s\n", b.Version, b.ExportDate)
	fmt.Printf("Players: %d\n", len(b.Team))
	fmt.Printf("Games: %d\n", len(b.Games))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
