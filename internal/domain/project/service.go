package project

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[ProjectResponse], error)
}
