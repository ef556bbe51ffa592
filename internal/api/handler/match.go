package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/casualfc/matchday/internal/api/request"
	"github.com/casualfc/matchday/internal/api/response"
	"github.com/casualfc/matchday/internal/model"
	"github.com/casualfc/matchday/internal/services/session"
)

// MatchHandler handles match rotation endpoints
type MatchHandler struct {
	controller session.ControllerInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(controller session.ControllerInterface) *MatchHandler {
	return &MatchHandler{controller: controller}
}

// Generate handles POST /api/v1/sessions/{id}/matches
func (h *MatchHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	m, err := h.controller.GenerateMatch(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(m))
}

// Get handles GET /api/v1/sessions/{id}/matches/{matchId}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	matchID := model.MatchID(vars["matchId"])

	s, err := h.controller.GetSession(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	m := s.MatchByID(matchID)
	if m == nil {
		WriteError(w, model.ErrMatchNotFound)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Finish handles POST /api/v1/sessions/{id}/matches/{matchId}/finish
func (h *MatchHandler) Finish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	matchID := model.MatchID(vars["matchId"])

	var req request.FinishMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.controller.FinishMatch(r.Context(), sessionID, matchID, model.TeamID(req.WinnerTeamID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// RecordGoal handles POST /api/v1/sessions/{id}/matches/{matchId}/goals
func (h *MatchHandler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	matchID := model.MatchID(vars["matchId"])

	var req request.RecordGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	m, err := h.controller.RecordGoal(r.Context(), sessionID, matchID,
		model.PlayerID(req.PlayerID), model.TeamID(req.TeamID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(m))
}

// Delete handles DELETE /api/v1/sessions/{id}/matches/{matchId}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	matchID := model.MatchID(vars["matchId"])

	if err := h.controller.DeleteMatch(r.Context(), sessionID, matchID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
