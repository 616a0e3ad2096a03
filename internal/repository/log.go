// internal/repository/log.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opshrm/hrms/internal/model"
	"gorm.io/gorm"
)

// DefaultLogLimit caps log listings when the caller supplies no limit.
const DefaultLogLimit = 100

type LogRepositoryIface interface {
	Create(ctx context.Context, log *model.Log) error
	FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Log, error)
}

type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create appends an audit log entry. Rows are never updated or deleted.
func (r *LogRepository) Create(ctx context.Context, log *model.Log) error {
	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create log: %w", result.Error)
	}
	return nil
}

// FindByOrganization returns the organization's audit trail, newest first,
// with the acting user preloaded.
func (r *LogRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]model.Log, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	var logs []model.Log
	result := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "organization_id")
		}).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find logs: %w", result.Error)
	}
	return logs, nil
}
