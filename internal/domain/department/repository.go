package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	// ExistsByName ignores the department with excludeID, which may be empty.
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	Create(ctx context.Context, d Department) (Department, error)
	Update(ctx context.Context, d Department) (Department, error)
	// List returns every department, newest first.
	List(ctx context.Context) ([]Department, error)
}
