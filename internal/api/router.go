package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jkorhonen/rinkroster/internal/api/handler"
	apimiddleware "github.com/jkorhonen/rinkroster/internal/api/middleware"
	"github.com/jkorhonen/rinkroster/internal/middleware"
	"github.com/jkorhonen/rinkroster/internal/services/availability"
	"github.com/jkorhonen/rinkroster/internal/services/backup"
	"github.com/jkorhonen/rinkroster/internal/services/games"
	"github.com/jkorhonen/rinkroster/internal/services/lineup"
	"github.com/jkorhonen/rinkroster/internal/services/roster"
	"github.com/jkorhonen/rinkroster/internal/services/sheet"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	RosterService       *roster.Service
	GamesController     *games.Controller
	AvailabilityService *availability.Service
	LineupService       *lineup.Service
	BackupService       *backup.Service
	SheetService        *sheet.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	teamHandler := handler.NewTeamHandler(cfg.RosterService)
	gameHandler := handler.NewGameHandler(cfg.GamesController, cfg.AvailabilityService, cfg.LineupService, cfg.SheetService)
	backupHandler := handler.NewBackupHandler(cfg.BackupService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Roster routes
	api.HandleFunc("/team", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/team", teamHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/team/seed", teamHandler.Seed).Methods(http.MethodPost)
	api.HandleFunc("/team/{player_id}", teamHandler.Edit).Methods(http.MethodPatch)
	api.HandleFunc("/team/{player_id}", teamHandler.Remove).Methods(http.MethodDelete)

	// Game record routes
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Availability and lineup routes
	api.HandleFunc("/games/{id}/status/{player_id}", gameHandler.SetStatus).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/lineup/{slot}", gameHandler.AssignSlot).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/lineup/{slot}", gameHandler.ClearSlot).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/ready/move", gameHandler.MoveReady).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/ready/{slot}", gameHandler.RemoveReady).Methods(http.MethodDelete)

	// Export routes
	api.HandleFunc("/games/{id}/sheet", gameHandler.Sheet).Methods(http.MethodGet)
	api.HandleFunc("/backup", backupHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/backup/restore", backupHandler.Restore).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
