package employee

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ExistsByEmployeeID reports whether an 8-digit employee id is already used.
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)

	// ExistsByEmail and ExistsByPhoneNumber ignore the employee with excludeID,
	// which may be empty.
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID string) (bool, error)

	// Create inserts an employee. A taken employee id is reported as ErrEmployeeIDExists,
	// a taken email or phone number as ErrEmailExists or ErrPhoneNumberExists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)

	// Find and Count accept the keys in AllowedFilters.
	Find(ctx context.Context, filter query.Filter, skip, limit int) ([]Employee, error)
	Count(ctx context.Context, filter query.Filter) (int64, error)
}
