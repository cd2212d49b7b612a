package employee

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/identifier"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

// maxCreateAttempts bounds how often a create is retried after losing an
// employee id race on the unique index.
const maxCreateAttempts = 5

type EmployeeServiceImpl struct {
	tx             postgresql.Transactor
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	idGenerator    *identifier.Generator
}

func NewEmployeeService(
	tx postgresql.Transactor,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	idGenerator *identifier.Generator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		idGenerator:    idGenerator,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.checkContactConflicts(ctx, req.Email, req.PhoneNumber, ""); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee uuid: %w", err)
	}
	newEmployee := req.ToEntity()
	newEmployee.ID = id.String()

	var created employee.Employee
	_, err = s.idGenerator.CreateWithUniqueID(ctx, maxCreateAttempts, func(ctx context.Context, employeeID string) error {
		newEmployee.EmployeeID = employeeID
		var err error
		created, err = s.employeeRepo.Create(ctx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[employee.EmployeeResponse], error) {
	var result pagination.PageResult[employee.Employee]

	err := s.tx.WithSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		result, err = pagination.Paginate[employee.Employee](txCtx, s.employeeRepo, filter, page)
		return err
	})
	if err != nil {
		return pagination.PageResult[employee.EmployeeResponse]{}, err
	}

	return pagination.Map(result, employee.NewEmployeeResponse), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.DepartmentID != nil && *req.DepartmentID != current.DepartmentID {
			if _, err := s.departmentRepo.GetByID(txCtx, *req.DepartmentID); err != nil {
				return err
			}
		}

		var email, phone string
		if req.Email != nil && *req.Email != current.Email {
			email = *req.Email
		}
		if req.PhoneNumber != nil && *req.PhoneNumber != current.PhoneNumber {
			phone = *req.PhoneNumber
		}
		if err := s.checkContactConflicts(txCtx, email, phone, id); err != nil {
			return err
		}

		req.Apply(&current)
		updated, err = s.employeeRepo.Update(txCtx, current)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

// checkContactConflicts reports a taken email or phone number. Empty values are skipped.
func (s *EmployeeServiceImpl) checkContactConflicts(ctx context.Context, email, phoneNumber, excludeID string) error {
	if email != "" {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, email, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}
	}
	if phoneNumber != "" {
		exists, err := s.employeeRepo.ExistsByPhoneNumber(ctx, phoneNumber, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check phone number: %w", err)
		}
		if exists {
			return employee.ErrPhoneNumberExists
		}
	}
	return nil
}
