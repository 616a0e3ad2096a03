// internal/service/team.go
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

type TeamService struct {
	repo      repository.TeamRepositoryIface
	employees repository.EmployeeRepositoryIface
	recorder  audit.Recorder
	validate  *validator.Validate
}

func NewTeamService(
	repo repository.TeamRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	recorder audit.Recorder,
) *TeamService {
	return &TeamService{
		repo:      repo,
		employees: employees,
		recorder:  recorder,
		validate:  validator.New(),
	}
}

func (s *TeamService) List(ctx context.Context, principal middleware.Principal) ([]*model.Team, error) {
	return s.repo.FindByOrganization(ctx, principal.OrganizationID)
}

func (s *TeamService) Get(ctx context.Context, principal middleware.Principal, id uuid.UUID) (*model.Team, error) {
	return s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
}

type CreateTeamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *TeamService) Create(ctx context.Context, principal middleware.Principal, input CreateTeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validationDetail(err))
	}

	team := &model.Team{
		Name:           input.Name,
		OrganizationID: principal.OrganizationID,
	}
	if input.Description != "" {
		team.Description = &input.Description
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' created a new team with ID %s", principal.UserID, team.ID),
		model.JSONMap{
			"team_id":     team.ID.String(),
			"name":        team.Name,
			"description": input.Description,
		})

	return team, nil
}

// UpdateTeamInput carries partial update semantics: nil means "leave
// untouched". An empty description is applied; an empty name is treated as
// not supplied.
type UpdateTeamInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *TeamService) Update(ctx context.Context, principal middleware.Principal, id uuid.UUID, input UpdateTeamInput) (*model.Team, error) {
	team, err := s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}

	if len(fields) > 0 {
		if err := s.repo.Update(ctx, team, fields); err != nil {
			return nil, err
		}
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' updated team %s", principal.UserID, id),
		model.JSONMap{
			"team_id": id.String(),
			"updates": fields,
		})

	return s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
}

func (s *TeamService) Delete(ctx context.Context, principal middleware.Principal, id uuid.UUID) error {
	team, err := s.repo.FindByIDInOrganization(ctx, id, principal.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, team.ID); err != nil {
		return err
	}

	// Snapshot captured before deletion
	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' deleted team %s", principal.UserID, id),
		model.JSONMap{
			"team_id": id.String(),
			"name":    team.Name,
		})

	return nil
}

// Assign adds an employee to a team. Both sides must pass the tenant-scoped
// existence check; the database constraint decides duplicate races.
func (s *TeamService) Assign(ctx context.Context, principal middleware.Principal, teamID, employeeID uuid.UUID) error {
	team, err := s.repo.FindByIDInOrganization(ctx, teamID, principal.OrganizationID)
	if err != nil {
		return err
	}

	employee, err := s.employees.FindByIDInOrganization(ctx, employeeID, principal.OrganizationID)
	if err != nil {
		return err
	}

	assignment := &model.TeamEmployee{
		EmployeeID: employee.ID,
		TeamID:     team.ID,
	}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		return err
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' assigned employee %s to team %s", principal.UserID, employeeID, teamID),
		model.JSONMap{
			"employee_id":   employee.ID.String(),
			"team_id":       team.ID.String(),
			"employee_name": employee.Name,
			"team_name":     team.Name,
		})

	return nil
}

func (s *TeamService) Unassign(ctx context.Context, principal middleware.Principal, teamID, employeeID uuid.UUID) error {
	team, err := s.repo.FindByIDInOrganization(ctx, teamID, principal.OrganizationID)
	if err != nil {
		return err
	}

	employee, err := s.employees.FindByIDInOrganization(ctx, employeeID, principal.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAssignment(ctx, team.ID, employee.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, principal.UserID, principal.OrganizationID,
		fmt.Sprintf("User '%s' removed employee %s from team %s", principal.UserID, employeeID, teamID),
		model.JSONMap{
			"employee_id":   employee.ID.String(),
			"team_id":       team.ID.String(),
			"employee_name": employee.Name,
			"team_name":     team.Name,
		})

	return nil
}
