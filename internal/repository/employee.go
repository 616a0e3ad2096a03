// internal/repository/employee.go
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

type EmployeeRepositoryIface interface {
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Employee, error)
	FindByIDInOrganization(ctx context.Context, id, orgID uuid.UUID) (*model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindByOrganization returns the organization's employees, newest first,
// with their teams preloaded.
func (r *EmployeeRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Employee, error) {
	var employees []*model.Employee
	result := r.db.WithContext(ctx).
		Preload("Teams").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&employees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employees: %w", result.Error)
	}
	return employees, nil
}

// FindByIDInOrganization is the tenant-scoped existence check: an id that
// exists in another organization behaves exactly like one that does not
// exist at all.
func (r *EmployeeRepository) FindByIDInOrganization(ctx context.Context, id, orgID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).
		Preload("Teams").
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		return fmt.Errorf("failed to create employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(employee).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete assignments first
		if err := tx.Where("employee_id = ?", id).Delete(&model.TeamEmployee{}).Error; err != nil {
			return fmt.Errorf("deleting employee assignments: %w", err)
		}

		if err := tx.Delete(&model.Employee{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting employee: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
