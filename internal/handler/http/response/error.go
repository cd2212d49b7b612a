package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/identifier"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrDateNotToday):
		BadRequest(w, "Only today's date is allowed", nil)
	case errors.Is(err, attendance.ErrCheckOutNotAfterIn):
		BadRequest(w, "Check-out time must be greater than check-in time", nil)
	case errors.Is(err, attendance.ErrInvalidClock):
		BadRequest(w, "Time must be in HH:mm format", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token not found")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "An employee with this email already exists")
	case errors.Is(err, employee.ErrPhoneNumberExists):
		Conflict(w, "An employee with this phone number already exists")
	case errors.Is(err, identifier.ErrAttemptsExhausted):
		ServiceUnavailable(w, "Could not allocate a unique employee ID, please retry")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department already exists")

	// Project domain errors
	case errors.Is(err, project.ErrNoProjectsFound):
		NotFound(w, "No projects found for this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
