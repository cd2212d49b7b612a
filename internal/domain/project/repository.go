package project

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	// Find and Count accept employee_id and the keys in AllowedFilters.
	Find(ctx context.Context, filter query.Filter, skip, limit int) ([]Project, error)
	Count(ctx context.Context, filter query.Filter) (int64, error)
}
