package project

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateProjectRequest {
	return CreateProjectRequest{
		ProjectName: "Payroll revamp",
		StartDate:   "2026-01-01",
		FinishDate:  "2026-06-30",
		Status:      "In Progress",
		EmployeeID:  "0192f1c4-8d1e-7a6b-9c2d-3e4f5a6b7c8d",
	}
}

func TestCreateProjectRequest_Validate_OK(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())

	p := req.ToEntity()
	assert.Equal(t, StatusInProgress, p.Status)
	assert.Equal(t, "2026-06-30", p.FinishDate.Format(validator.DateLayout))
}

func TestCreateProjectRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateProjectRequest)
		field  string
		msg    string
	}{
		{"short name", func(r *CreateProjectRequest) { r.ProjectName = "  ab " }, "project_name", "project_name must be at least 3 characters long"},
		{"bad status", func(r *CreateProjectRequest) { r.Status = "Done" }, "status", "Status must be one of 'Pending', 'In Progress', or 'Completed'"},
		{"missing status", func(r *CreateProjectRequest) { r.Status = "" }, "status", "status is required"},
		{"bad date", func(r *CreateProjectRequest) { r.StartDate = "01-01-2026" }, "start_date", "start_date must be in YYYY-MM-DD format"},
		{"finish before start", func(r *CreateProjectRequest) { r.FinishDate = "2025-12-31" }, "finish_date", "finish_date must not be before start_date"},
		{"bad employee", func(r *CreateProjectRequest) { r.EmployeeID = "42" }, "employee_id", "employee_id must be a valid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			var errs validator.ValidationErrors
			require.True(t, errors.As(req.Validate(), &errs))
			assert.Equal(t, tt.msg, errs.ToMap()[tt.field])
		})
	}
}
