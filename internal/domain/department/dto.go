package department

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// PreviewSize is how many employees the department list embeds per department.
const PreviewSize = 5

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateName(r.Name)
}

type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validateName(r.Name)
}

func validateName(name string) error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(name) {
		errs.Add("name", "Department name is required")
	} else if len(name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}
	return errs.Err()
}

type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// DepartmentDetailResponse is a department with its head count and employees.
// In list views Employees holds at most PreviewSize entries.
type DepartmentDetailResponse struct {
	DepartmentResponse
	TotalEmployees int64                      `json:"total_employees"`
	Employees      []employee.EmployeeSummary `json:"employees"`
}
