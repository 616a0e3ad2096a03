// internal/handler/team.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
	dev         bool
}

func NewTeamHandler(teamService *service.TeamService, dev bool) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		dev:         dev,
	}
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	teams, err := h.teamService.List(r.Context(), principal)
	if err != nil {
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}

	team, err := h.teamService.Get(r.Context(), principal, id)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			respondWithError(w, http.StatusNotFound, "Team not found")
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var input service.CreateTeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Create(r.Context(), principal, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}

	var input service.UpdateTeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Update(r.Context(), principal, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			respondWithError(w, http.StatusNotFound, "Team not found")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondInternalError(w, r, h.dev, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}

	if err := h.teamService.Delete(r.Context(), principal, id); err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			respondWithError(w, http.StatusNotFound, "Team not found")
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
}

type assignRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (h *TeamHandler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(chi.URLParam(r, "teamId"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}

	if err := h.teamService.Assign(r.Context(), principal, teamID, employeeID); err != nil {
		h.respondAssignmentError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"message": "Employee assigned to team successfully"})
}

func (h *TeamHandler) UnassignEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(chi.URLParam(r, "teamId"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Team not found")
		return
	}

	employeeID, err := uuid.Parse(chi.URLParam(r, "employeeId"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}

	if err := h.teamService.Unassign(r.Context(), principal, teamID, employeeID); err != nil {
		h.respondAssignmentError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee removed from team successfully"})
}

func (h *TeamHandler) respondAssignmentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrTeamNotFound):
		respondWithError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondWithError(w, http.StatusNotFound, "Employee not found")
	case errors.Is(err, domain.ErrAssignmentNotFound):
		respondWithError(w, http.StatusNotFound, "Assignment not found")
	case errors.Is(err, domain.ErrAlreadyAssigned):
		respondWithError(w, http.StatusConflict, "Employee is already assigned to this team")
	default:
		respondInternalError(w, r, h.dev, err)
	}
}
