package employee

import (
	"errors"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/identifier"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("an employee with this email already exists")
	ErrPhoneNumberExists = errors.New("an employee with this phone number already exists")
	ErrEmployeeIDExists  = identifier.ErrDuplicateID
)
