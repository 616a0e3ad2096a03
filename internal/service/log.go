// internal/service/log.go
package service

import (
	"context"

	"github.com/opshrm/hrms/internal/middleware"
	"github.com/opshrm/hrms/internal/model"
	"github.com/opshrm/hrms/internal/repository"
)

type LogService struct {
	repo repository.LogRepositoryIface
}

func NewLogService(repo repository.LogRepositoryIface) *LogService {
	return &LogService{repo: repo}
}

// List returns the principal's organization audit trail, newest first. A
// non-positive limit falls back to the repository default cap.
func (s *LogService) List(ctx context.Context, principal middleware.Principal, limit int) ([]model.Log, error) {
	return s.repo.FindByOrganization(ctx, principal.OrganizationID, limit)
}
