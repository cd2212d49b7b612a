package employee

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[EmployeeResponse], error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
