package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{validator.ValidationErrors{{Field: "date", Message: "required"}}, http.StatusUnprocessableEntity, "Validation failed"},
		{attendance.ErrDateNotToday, http.StatusBadRequest, "Only today's date is allowed"},
		{attendance.ErrCheckOutNotAfterIn, http.StatusBadRequest, "Check-out time must be greater than check-in time"},
		{fmt.Errorf("wrapped: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, "Employee not found"},
		{employee.ErrEmailExists, http.StatusConflict, "An employee with this email already exists"},
		{department.ErrDepartmentNameExists, http.StatusConflict, "Department already exists"},
		{project.ErrNoProjectsFound, http.StatusNotFound, "No projects found for this employee"},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{errors.New("boom"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "check_in_time", Message: "Time must be in HH:mm format"}})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Time must be in HH:mm format", body.Error.Details["check_in_time"])
}

func TestPaginated_WritesMetaWithoutOmittingZeroes(t *testing.T) {
	rec := httptest.NewRecorder()
	Paginated(rec, pagination.PageResult[string]{
		Data:        []string{},
		CurrentPage: 1,
		PageSize:    10,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(0), meta["total_items"])
	assert.Equal(t, false, meta["has_next"])
	assert.Equal(t, float64(1), meta["current_page"])
}
