package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
)

const departmentColumns = "id, name, created_at, updated_at"

type departmentRepositoryImpl struct {
	table[department.Department]
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{
		table: table[department.Department]{db: db, name: "departments", columns: departmentColumns},
	}
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	query := "SELECT " + departmentColumns + " FROM departments WHERE id = $1"
	d, err := r.one(ctx, department.ErrDepartmentNotFound, query, id)
	if err != nil && !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, err
}

// ExistsByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	return r.exists(ctx, "name = $1 AND ($2 = '' OR id::text <> $2)", name, excludeID)
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	query := `
		INSERT INTO departments (id, name)
		VALUES ($1, $2)
		RETURNING ` + departmentColumns

	created, err := r.one(ctx, department.ErrDepartmentNotFound, query, d.ID, d.Name)
	if err != nil {
		return department.Department{}, departmentWriteError("create", err)
	}
	return created, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	query := `
		UPDATE departments
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + departmentColumns

	updated, err := r.one(ctx, department.ErrDepartmentNotFound, query, d.Name, d.ID)
	if errors.Is(err, department.ErrDepartmentNotFound) {
		return department.Department{}, err
	}
	if err != nil {
		return department.Department{}, departmentWriteError("update", err)
	}
	return updated, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, "SELECT "+departmentColumns+" FROM departments ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return collect[department.Department](rows)
}

func departmentWriteError(op string, err error) error {
	if constraint, ok := uniqueViolation(err); ok && constraint == "departments_name_key" {
		return department.ErrDepartmentNameExists
	}
	return fmt.Errorf("failed to %s department: %w", op, err)
}
