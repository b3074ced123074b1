package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jkorhonen/rinkroster/internal/api/request"
	"github.com/jkorhonen/rinkroster/internal/api/response"
	"github.com/jkorhonen/rinkroster/internal/model"
	"github.com/jkorhonen/rinkroster/internal/services/roster"
)

// TeamHandler handles roster endpoints
type TeamHandler struct {
	rosterService *roster.Service
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(rosterService *roster.Service) *TeamHandler {
	return &TeamHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/team
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Add handles POST /api/v1/team
func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.AddPlayer(r.Context(), req.Name, req.Number, model.Position(req.Position))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Edit handles PATCH /api/v1/team/{player_id}
func (h *TeamHandler) Edit(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.EditPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.EditPlayer(r.Context(), playerID, req.Name, req.Number, model.Position(req.Position))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/team/{player_id}
func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.rosterService.RemovePlayer(r.Context(), playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Seed handles POST /api/v1/team/seed
func (h *TeamHandler) Seed(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.Seed(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}
