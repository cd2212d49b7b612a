package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

const projectColumns = "id, project_name, start_date, finish_date, status, employee_id, created_at, updated_at"

type projectRepositoryImpl struct {
	table[project.Project]
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{
		table: table[project.Project]{
			db:      db,
			name:    "projects",
			columns: projectColumns,
			filters: map[string]string{
				"employee_id": "employee_id::text = $%d",
				"status":      "status = $%d",
			},
		},
	}
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	query := `
		INSERT INTO projects (id, project_name, start_date, finish_date, status, employee_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + projectColumns

	created, err := r.one(ctx, nil, query, p.ID, p.ProjectName, p.StartDate, p.FinishDate, p.Status, p.EmployeeID)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Find implements project.ProjectRepository.
func (r *projectRepositoryImpl) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]project.Project, error) {
	return r.find(ctx, filter, skip, limit)
}

// Count implements project.ProjectRepository.
func (r *projectRepositoryImpl) Count(ctx context.Context, filter query.Filter) (int64, error) {
	return r.count(ctx, filter)
}
