// internal/repository/team.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/domain"
	"github.com/opshrm/hrms/internal/model"
	"gorm.io/gorm"
)

type TeamRepositoryIface interface {
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Team, error)
	FindByIDInOrganization(ctx context.Context, id, orgID uuid.UUID) (*model.Team, error)
	Create(ctx context.Context, team *model.Team) error
	Update(ctx context.Context, team *model.Team, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateAssignment(ctx context.Context, assignment *model.TeamEmployee) error
	DeleteAssignment(ctx context.Context, teamID, employeeID uuid.UUID) error
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// FindByOrganization returns the organization's teams, newest first, with
// member employees preloaded.
func (r *TeamRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Team, error) {
	var teams []*model.Team
	result := r.db.WithContext(ctx).
		Preload("Employees").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&teams)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find teams: %w", result.Error)
	}
	return teams, nil
}

func (r *TeamRepository) FindByIDInOrganization(ctx context.Context, id, orgID uuid.UUID) (*model.Team, error) {
	var team model.Team
	result := r.db.WithContext(ctx).
		Preload("Employees").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&team)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", result.Error)
	}
	return &team, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	result := r.db.WithContext(ctx).Create(team)
	if result.Error != nil {
		return fmt.Errorf("failed to create team: %w", result.Error)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, team *model.Team, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(team).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update team: %w", result.Error)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete assignments first
		if err := tx.Where("team_id = ?", id).Delete(&model.TeamEmployee{}).Error; err != nil {
			return fmt.Errorf("deleting team assignments: %w", err)
		}

		if err := tx.Delete(&model.Team{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting team: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// CreateAssignment inserts the join row. The composite unique index on
// (employee_id, team_id) decides races between concurrent assigns: exactly
// one insert wins, the rest surface as ErrAlreadyAssigned.
func (r *TeamRepository) CreateAssignment(ctx context.Context, assignment *model.TeamEmployee) error {
	result := r.db.WithContext(ctx).Create(assignment)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrAlreadyAssigned
		}
		return fmt.Errorf("failed to create assignment: %w", result.Error)
	}
	return nil
}

func (r *TeamRepository) DeleteAssignment(ctx context.Context, teamID, employeeID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND employee_id = ?", teamID, employeeID).
		Delete(&model.TeamEmployee{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}
