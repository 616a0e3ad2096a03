// internal/service/employee.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/audit"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/middleware"
	"github.com/opshrm/hrms/internal/model"
	"github.com/opshrm/hrms/internal/repository"
)

type EmployeeService struct {
	repo     repository.EmployeeRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewEmployeeService(repo repository.EmployeeRepositoryIface, recorder audit.Recorder) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		recorder: recorder,
		validate: validator.New(),
	}
}

func (s *EmployeeService) List(ctx context.Context, principal middleware.Principal) ([]*model.Employee, error) {
	return s.repo.FindByOrganization(ctx, principal.OrganizationID)
}

func (s *EmployeeService) Get(ctx context.Context, principal middleware.Principal, id uuid.UUID) (*model.Employee, error) {
	return s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
}

type CreateEmployeeInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"position"`
}

func (s *EmployeeService) Create(ctx context.Context, principal middleware.Principal, input CreateEmployeeInput) (*model.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationDetail(err))
	}

	employee := &model.Employee{
		Name:           input.Name,
		Email:          normalizeEmail(input.Email),
		OrganizationID: principal.OrganizationID,
	}
	if input.Position != "" {
		employee.Position = &input.Position
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' added a new employee with ID %s", principal.UserID, employee.ID),
		model.JSONMap{
			"employee_id": employee.ID.String(),
			"name":        employee.Name,
			"email":       employee.Email,
			"position":    input.Position,
		})

	return employee, nil
}

// UpdateEmployeeInput carries partial update semantics: nil means "leave
// untouched". An empty position is applied (clears the field); an empty name
// or email is treated as not supplied.
type UpdateEmployeeInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
}

func (s *EmployeeService) Update(ctx context.Context, principal middleware.Principal, id uuid.UUID, input UpdateEmployeeInput) (*model.Employee, error) {
	employee, err := s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" {
		fields["name"] = *input.Name
	}
	if input.Email != nil && *input.Email != "" {
		email := normalizeEmail(*input.Email)
		if err := s.validate.Var(email, "email"); err != nil {
			return nil, fmt.Errorf("%w: email (email)", domain.ErrInvalidInput)
		}
		fields["email"] = email
	}
	if input.Position != nil {
		fields["position"] = *input.Position
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, employee, fields); err != nil {
			return nil, err
		}
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' updated employee %s", principal.UserID, id),
		model.JSONMap{
			"employee_id": id.String(),
			"updates":     fields,
		})

	return s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
}

func (s *EmployeeService) Delete(ctx context.Context, principal middleware.Principal, id uuid.UUID) error {
	employee, err := s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, employee.ID); err != nil {
		return err
	}

	// Snapshot captured before deletion
	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' deleted employee %s", principal.UserID, id),
		model.JSONMap{
			"employee_id": id.String(),
			"name":        employee.Name,
		})

	return nil
}
