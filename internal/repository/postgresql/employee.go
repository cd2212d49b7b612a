package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

const employeeColumns = `id, employee_id, avatar_url, first_name, last_name, email, work_email, phone_number,
	date_of_birth, marital_status, gender, nationality, address, city, state, department_id,
	job_status, role_type, join_date, documents, created_at, updated_at`

type employeeRepositoryImpl struct {
	table[employee.Employee]
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		table: table[employee.Employee]{
			db:      db,
			name:    "employees",
			columns: employeeColumns,
			filters: map[string]string{
				"department":     "department_id::text = $%d",
				"job_status":     "job_status = $%d",
				"role_type":      "role_type = $%d",
				"gender":         "gender = $%d",
				"marital_status": "marital_status = $%d",
				"nationality":    "nationality = $%d",
				"city":           "city = $%d",
				"state":          "state = $%d",
			},
		},
	}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"
	e, err := r.one(ctx, employee.ErrEmployeeNotFound, query, id)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, err
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return r.exists(ctx, "employee_id = $1", employeeID)
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	return r.exists(ctx, "email = $1 AND ($2 = '' OR id::text <> $2)", email, excludeID)
}

// ExistsByPhoneNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID string) (bool, error) {
	return r.exists(ctx, "phone_number = $1 AND ($2 = '' OR id::text <> $2)", phoneNumber, excludeID)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			id, employee_id, avatar_url, first_name, last_name, email, work_email, phone_number,
			date_of_birth, marital_status, gender, nationality, address, city, state, department_id,
			job_status, role_type, join_date, documents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + employeeColumns

	created, err := r.one(ctx, employee.ErrEmployeeNotFound, query,
		newEmployee.ID,
		newEmployee.EmployeeID,
		newEmployee.AvatarURL,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.WorkEmail,
		newEmployee.PhoneNumber,
		newEmployee.DateOfBirth,
		newEmployee.MaritalStatus,
		newEmployee.Gender,
		newEmployee.Nationality,
		newEmployee.Address,
		newEmployee.City,
		newEmployee.State,
		newEmployee.DepartmentID,
		newEmployee.JobStatus,
		newEmployee.RoleType,
		newEmployee.JoinDate,
		documents(newEmployee.Documents),
	)
	if err != nil {
		return employee.Employee{}, employeeWriteError("create", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	query := `
		UPDATE employees
		SET avatar_url = $1, first_name = $2, last_name = $3, email = $4, work_email = $5,
			phone_number = $6, date_of_birth = $7, marital_status = $8, gender = $9,
			nationality = $10, address = $11, city = $12, state = $13, department_id = $14,
			job_status = $15, role_type = $16, join_date = $17, documents = $18, updated_at = NOW()
		WHERE id = $19
		RETURNING ` + employeeColumns

	updated, err := r.one(ctx, employee.ErrEmployeeNotFound, query,
		e.AvatarURL,
		e.FirstName,
		e.LastName,
		e.Email,
		e.WorkEmail,
		e.PhoneNumber,
		e.DateOfBirth,
		e.MaritalStatus,
		e.Gender,
		e.Nationality,
		e.Address,
		e.City,
		e.State,
		e.DepartmentID,
		e.JobStatus,
		e.RoleType,
		e.JoinDate,
		documents(e.Documents),
		e.ID,
	)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, err
	}
	if err != nil {
		return employee.Employee{}, employeeWriteError("update", err)
	}
	return updated, nil
}

// Find implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]employee.Employee, error) {
	return r.find(ctx, filter, skip, limit)
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context, filter query.Filter) (int64, error) {
	return r.count(ctx, filter)
}

func employeeWriteError(op string, err error) error {
	constraint, ok := uniqueViolation(err)
	if ok {
		switch constraint {
		case "employees_employee_id_key":
			return employee.ErrEmployeeIDExists
		case "employees_email_key":
			return employee.ErrEmailExists
		case "employees_phone_number_key":
			return employee.ErrPhoneNumberExists
		}
	}
	return fmt.Errorf("failed to %s employee: %w", op, err)
}

// documents keeps the NOT NULL column from receiving a nil slice.
func documents(docs []string) []string {
	if docs == nil {
		return []string{}
	}
	return docs
}
