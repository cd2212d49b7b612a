package project

import (
	"errors"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// AllowedFilters are the query parameters a project listing may filter on.
var AllowedFilters = []string{"status"}

type CreateProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required,min=3,max=100"`
	StartDate   string `json:"start_date" validate:"required,date"`
	FinishDate  string `json:"finish_date" validate:"required,date"`
	Status      string `json:"status" validate:"required"`
	EmployeeID  string `json:"employee_id" validate:"required,uuid"`
}

func (r *CreateProjectRequest) Validate() error {
	r.ProjectName = strings.TrimSpace(r.ProjectName)

	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil && !errors.As(err, &errs) {
		return err
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses) {
		errs.Add("status", "Status must be one of 'Pending', 'In Progress', or 'Completed'")
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	finish, finishOK := validator.IsValidDate(r.FinishDate)
	if startOK && finishOK && finish.Before(start) {
		errs.Add("finish_date", "finish_date must not be before start_date")
	}

	return errs.Err()
}

func (r CreateProjectRequest) ToEntity() Project {
	start, _ := validator.IsValidDate(r.StartDate)
	finish, _ := validator.IsValidDate(r.FinishDate)
	return Project{
		ProjectName: r.ProjectName,
		StartDate:   start,
		FinishDate:  finish,
		Status:      Status(r.Status),
		EmployeeID:  r.EmployeeID,
	}
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	StartDate   string    `json:"start_date"`
	FinishDate  string    `json:"finish_date"`
	Status      Status    `json:"status"`
	EmployeeID  string    `json:"employee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		StartDate:   p.StartDate.Format(validator.DateLayout),
		FinishDate:  p.FinishDate.Format(validator.DateLayout),
		Status:      p.Status,
		EmployeeID:  p.EmployeeID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
