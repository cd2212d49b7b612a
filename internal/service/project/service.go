package project

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type ProjectServiceImpl struct {
	tx           postgresql.Transactor
	projectRepo  project.ProjectRepository
	employeeRepo employee.EmployeeRepository
}

func NewProjectService(tx postgresql.Transactor, projectRepo project.ProjectRepository, employeeRepo employee.EmployeeRepository) project.ProjectService {
	return &ProjectServiceImpl{
		tx:           tx,
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return project.ProjectResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return project.ProjectResponse{}, fmt.Errorf("failed to generate project id: %w", err)
	}
	newProject := req.ToEntity()
	newProject.ID = id.String()

	created, err := s.projectRepo.Create(ctx, newProject)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(created), nil
}

// ListByEmployee implements project.ProjectService. An employee without any
// matching project yields project.ErrNoProjectsFound.
func (s *ProjectServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[project.ProjectResponse], error) {
	var result pagination.PageResult[project.Project]

	err := s.tx.WithSnapshot(ctx, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByID(txCtx, employeeID); err != nil {
			return err
		}

		var err error
		result, err = pagination.Paginate[project.Project](txCtx, s.projectRepo, filter.With("employee_id", employeeID), page)
		return err
	})
	if err != nil {
		return pagination.PageResult[project.ProjectResponse]{}, err
	}
	if result.TotalItems == 0 {
		return pagination.PageResult[project.ProjectResponse]{}, project.ErrNoProjectsFound
	}

	return pagination.Map(result, project.NewProjectResponse), nil
}
