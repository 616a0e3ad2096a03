// internal/handler/employee.go
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

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	dev             bool
}

func NewEmployeeHandler(employeeService *service.EmployeeService, dev bool) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
		dev:             dev,
	}
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	employees, err := h.employeeService.List(r.Context(), principal)
	if err != nil {
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	// A malformed id cannot exist in any organization, so it reads the same
	// as a tenant-scoped miss.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}

	employee, err := h.employeeService.Get(r.Context(), principal, id)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			respondWithError(w, http.StatusNotFound, "Employee not found")
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var input service.CreateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employeeService.Create(r.Context(), principal, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}

	var input service.UpdateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employeeService.Update(r.Context(), principal, id, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondWithError(w, http.StatusNotFound, "Employee not found")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondInternalError(w, r, h.dev, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Employee not found")
		return
	}

	if err := h.employeeService.Delete(r.Context(), principal, id); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			respondWithError(w, http.StatusNotFound, "Employee not found")
			return
		}
		respondInternalError(w, r, h.dev, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
