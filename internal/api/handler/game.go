package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jkorhonen/rinkroster/internal/api/request"
	"github.com/jkorhonen/rinkroster/internal/api/response"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/services/availability"
	"github.com/jkorhonen/rinkroster/internal/services/games"
	"github.com/jkorhonen/rinkroster/internal/services/lineup"
	"github.com/jkorhonen/rinkroster/internal/services/sheet"
)

// GameHandler handles game record, availability and lineup endpoints
type GameHandler struct {
	gamesController     *games.Controller
	availabilityService *availability.Service
	lineupService       *lineup.Service
	sheetService        *sheet.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gamesController *games.Controller,
	availabilityService *availability.Service,
	lineupService *lineup.Service,
	sheetService *sheet.Service,
) *GameHandler {
	return &GameHandler{
		gamesController:     gamesController,
		availabilityService: availabilityService,
		lineupService:       lineupService,
		sheetService:        sheetService,
	}
}

// slotVar parses a slot path variable; range checking is left to the services
func slotVar(r *http.Request, name string) (int, error) {
	slot, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		return 0, model.ErrInvalidSlot
	}
	return slot, nil
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.gamesController.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(records))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	game, err := h.gamesController.Create(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	game, err := h.gamesController.Get(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Update handles PATCH /api/v1/games/{id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.gamesController.UpdateInfo(r.Context(), gameID, games.Info{
		Title:   req.Title,
		Date:    req.Date,
		Time:    req.Time,
		Weekday: req.Weekday,
		Stadium: req.Stadium,
		Score:   req.Score,
		Points:  req.Points,
		Color:   req.Color,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	if err := h.gamesController.Delete(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetStatus handles PUT /api/v1/games/{id}/status/{player_id}
func (h *GameHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.availabilityService.SetStatus(r.Context(), gameID, playerID, model.Status(req.Status))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// AssignSlot handles PUT /api/v1/games/{id}/lineup/{slot}
func (h *GameHandler) AssignSlot(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])
	slot, err := slotVar(r, "slot")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AssignSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.lineupService.AssignSlot(r.Context(), gameID, slot, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// ClearSlot handles DELETE /api/v1/games/{id}/lineup/{slot}
func (h *GameHandler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])
	slot, err := slotVar(r, "slot")
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.lineupService.ClearSlot(r.Context(), gameID, slot)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// MoveReady handles POST /api/v1/games/{id}/ready/move
func (h *GameHandler) MoveReady(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.MoveReadyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	game, err := h.lineupService.MoveWithinReady(r.Context(), gameID, req.From, req.To)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// RemoveReady handles DELETE /api/v1/games/{id}/ready/{slot}
func (h *GameHandler) RemoveReady(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])
	slot, err := slotVar(r, "slot")
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.lineupService.RemoveFromReady(r.Context(), gameID, slot)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Sheet handles GET /api/v1/games/{id}/sheet
func (h *GameHandler) Sheet(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	rendered, err := h.sheetService.Render(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, rendered)
}
