package department

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// listConcurrency bounds the per-department queries List runs at once.
const listConcurrency = 4

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.checkName(ctx, req.Name, ""); err != nil {
		return department.DepartmentResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to generate department id: %w", err)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{ID: id.String(), Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(created), nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	current, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	if err := s.checkName(ctx, req.Name, id); err != nil {
		return department.DepartmentResponse{}, err
	}

	current.Name = req.Name
	updated, err := s.departmentRepo.Update(ctx, current)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(updated), nil
}

// GetByID implements department.DepartmentService. Every employee of the
// department is included.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentDetailResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentDetailResponse{}, err
	}
	return s.detail(ctx, d, 0)
}

// List implements department.DepartmentService. Each department carries its
// head count and its first department.PreviewSize employees.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentDetailResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]department.DepartmentDetailResponse, len(departments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, d := range departments {
		g.Go(func() error {
			detail, err := s.detail(gctx, d, department.PreviewSize)
			if err != nil {
				return err
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// detail loads the head count and up to limit employees of d. A limit of 0 loads all.
func (s *DepartmentServiceImpl) detail(ctx context.Context, d department.Department, limit int) (department.DepartmentDetailResponse, error) {
	filter := query.Filter{"department": d.ID}

	total, err := s.employeeRepo.Count(ctx, filter)
	if err != nil {
		return department.DepartmentDetailResponse{}, fmt.Errorf("failed to count employees of department %s: %w", d.ID, err)
	}
	employees, err := s.employeeRepo.Find(ctx, filter, 0, limit)
	if err != nil {
		return department.DepartmentDetailResponse{}, fmt.Errorf("failed to list employees of department %s: %w", d.ID, err)
	}

	summaries := make([]employee.EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		summaries = append(summaries, employee.NewEmployeeSummary(e))
	}

	return department.DepartmentDetailResponse{
		DepartmentResponse: department.NewDepartmentResponse(d),
		TotalEmployees:     total,
		Employees:          summaries,
	}, nil
}

func (s *DepartmentServiceImpl) checkName(ctx context.Context, name, excludeID string) error {
	exists, err := s.departmentRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.ErrDepartmentNameExists
	}
	return nil
}
