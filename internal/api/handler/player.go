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

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	controller session.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller session.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// CheckIn handles POST /api/v1/sessions/{id}/players
func (h *PlayerHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["id"])

	var req request.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	params := session.CheckInParams{
		Name:       req.Name,
		Position:   model.Position(req.Position),
		SkillLevel: req.SkillLevel,
		AgeGroup:   model.AgeGroup(req.AgeGroup),
		Tier:       model.MembershipTier(req.Tier),
	}

	p, err := h.controller.CheckIn(r.Context(), sessionID, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// Update handles PATCH /api/v1/sessions/{id}/players/{playerId}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	playerID := model.PlayerID(vars["playerId"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var update session.PlayerUpdate
	if req.Position != nil {
		pos := model.Position(*req.Position)
		update.Position = &pos
	}
	if req.SkillLevel != nil {
		update.SkillLevel = req.SkillLevel
	}
	if req.AgeGroup != nil {
		ag := model.AgeGroup(*req.AgeGroup)
		update.AgeGroup = &ag
	}
	if req.Tier != nil {
		tier := model.MembershipTier(*req.Tier)
		update.Tier = &tier
	}

	p, err := h.controller.UpdatePlayer(r.Context(), sessionID, playerID, update)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Remove handles DELETE /api/v1/sessions/{id}/players/{playerId}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := model.SessionID(vars["id"])
	playerID := model.PlayerID(vars["playerId"])

	if err := h.controller.RemovePlayer(r.Context(), sessionID, playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
