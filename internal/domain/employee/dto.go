package employee

import (
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// AllowedFilters are the query parameters an employee listing may filter on.
var AllowedFilters = []string{
	"department",
	"job_status",
	"role_type",
	"gender",
	"marital_status",
	"nationality",
	"city",
	"state",
}

type CreateEmployeeRequest struct {
	AvatarURL     *string  `json:"avatar_url" validate:"omitempty,url"`
	FirstName     string   `json:"first_name" validate:"required,min=1,max=50"`
	LastName      string   `json:"last_name" validate:"required,min=1,max=50"`
	Email         string   `json:"email" validate:"required,email"`
	WorkEmail     *string  `json:"work_email" validate:"omitempty,email"`
	PhoneNumber   string   `json:"phone_number" validate:"required,phone"`
	DateOfBirth   string   `json:"date_of_birth" validate:"required,date"`
	MaritalStatus *string  `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
	Gender        string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Nationality   string   `json:"nationality" validate:"required,max=60"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"required,max=60"`
	State         string   `json:"state" validate:"required,max=60"`
	DepartmentID  string   `json:"department_id" validate:"required,uuid"`
	JobStatus     string   `json:"job_status" validate:"required,oneof=Permanent Contract"`
	RoleType      string   `json:"role_type" validate:"required,oneof=Onsite Hybrid Remote"`
	JoinDate      string   `json:"join_date" validate:"required,date"`
	Documents     []string `json:"documents" validate:"omitempty,dive,url"`
}

func (r *CreateEmployeeRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateDateOfBirth(&r.DateOfBirth)
}

// UpdateEmployeeRequest changes only the fields that are present.
type UpdateEmployeeRequest struct {
	AvatarURL     *string   `json:"avatar_url" validate:"omitempty,url"`
	FirstName     *string   `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName      *string   `json:"last_name" validate:"omitempty,min=1,max=50"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	WorkEmail     *string   `json:"work_email" validate:"omitempty,email"`
	PhoneNumber   *string   `json:"phone_number" validate:"omitempty,phone"`
	DateOfBirth   *string   `json:"date_of_birth" validate:"omitempty,date"`
	MaritalStatus *string   `json:"marital_status" validate:"omitempty,oneof=Single Married Divorced Widowed"`
	Gender        *string   `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Nationality   *string   `json:"nationality" validate:"omitempty,max=60"`
	Address       *string   `json:"address" validate:"omitempty"`
	City          *string   `json:"city" validate:"omitempty,max=60"`
	State         *string   `json:"state" validate:"omitempty,max=60"`
	DepartmentID  *string   `json:"department_id" validate:"omitempty,uuid"`
	JobStatus     *string   `json:"job_status" validate:"omitempty,oneof=Permanent Contract"`
	RoleType      *string   `json:"role_type" validate:"omitempty,oneof=Onsite Hybrid Remote"`
	JoinDate      *string   `json:"join_date" validate:"omitempty,date"`
	Documents     *[]string `json:"documents" validate:"omitempty,dive,url"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	return validateDateOfBirth(r.DateOfBirth)
}

func validateDateOfBirth(dob *string) error {
	if dob == nil {
		return nil
	}
	date, ok := validator.IsValidDate(*dob)
	if ok && date.After(time.Now()) {
		return validator.ValidationErrors{{Field: "date_of_birth", Message: "date_of_birth cannot be in the future"}}
	}
	return nil
}

// Apply copies the present fields of r onto e. Dates must already be validated.
func (r UpdateEmployeeRequest) Apply(e *Employee) {
	if r.AvatarURL != nil {
		e.AvatarURL = r.AvatarURL
	}
	if r.FirstName != nil {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		e.LastName = *r.LastName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.WorkEmail != nil {
		e.WorkEmail = r.WorkEmail
	}
	if r.PhoneNumber != nil {
		e.PhoneNumber = *r.PhoneNumber
	}
	if r.DateOfBirth != nil {
		e.DateOfBirth, _ = validator.IsValidDate(*r.DateOfBirth)
	}
	if r.MaritalStatus != nil {
		status := MaritalStatus(*r.MaritalStatus)
		e.MaritalStatus = &status
	}
	if r.Gender != nil {
		e.Gender = Gender(*r.Gender)
	}
	if r.Nationality != nil {
		e.Nationality = *r.Nationality
	}
	if r.Address != nil {
		e.Address = *r.Address
	}
	if r.City != nil {
		e.City = *r.City
	}
	if r.State != nil {
		e.State = *r.State
	}
	if r.DepartmentID != nil {
		e.DepartmentID = *r.DepartmentID
	}
	if r.JobStatus != nil {
		e.JobStatus = JobStatus(*r.JobStatus)
	}
	if r.RoleType != nil {
		e.RoleType = RoleType(*r.RoleType)
	}
	if r.JoinDate != nil {
		e.JoinDate, _ = validator.IsValidDate(*r.JoinDate)
	}
	if r.Documents != nil {
		e.Documents = *r.Documents
	}
}

// ToEntity builds a new employee without id, employee id or timestamps.
func (r CreateEmployeeRequest) ToEntity() Employee {
	dob, _ := validator.IsValidDate(r.DateOfBirth)
	joinDate, _ := validator.IsValidDate(r.JoinDate)

	var marital *MaritalStatus
	if r.MaritalStatus != nil {
		status := MaritalStatus(*r.MaritalStatus)
		marital = &status
	}
	documents := r.Documents
	if documents == nil {
		documents = []string{}
	}

	return Employee{
		AvatarURL:     r.AvatarURL,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		WorkEmail:     r.WorkEmail,
		PhoneNumber:   r.PhoneNumber,
		DateOfBirth:   dob,
		MaritalStatus: marital,
		Gender:        Gender(r.Gender),
		Nationality:   r.Nationality,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		DepartmentID:  r.DepartmentID,
		JobStatus:     JobStatus(r.JobStatus),
		RoleType:      RoleType(r.RoleType),
		JoinDate:      joinDate,
		Documents:     documents,
	}
}

type EmployeeResponse struct {
	ID            string         `json:"id"`
	EmployeeID    string         `json:"employee_id"`
	AvatarURL     *string        `json:"avatar_url"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `json:"email"`
	WorkEmail     *string        `json:"work_email"`
	PhoneNumber   string         `json:"phone_number"`
	DateOfBirth   string         `json:"date_of_birth"`
	MaritalStatus *MaritalStatus `json:"marital_status"`
	Gender        Gender         `json:"gender"`
	Nationality   string         `json:"nationality"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	DepartmentID  string         `json:"department_id"`
	JobStatus     JobStatus      `json:"job_status"`
	RoleType      RoleType       `json:"role_type"`
	JoinDate      string         `json:"join_date"`
	Documents     []string       `json:"documents"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	documents := e.Documents
	if documents == nil {
		documents = []string{}
	}
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		AvatarURL:     e.AvatarURL,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		WorkEmail:     e.WorkEmail,
		PhoneNumber:   e.PhoneNumber,
		DateOfBirth:   e.DateOfBirth.Format(validator.DateLayout),
		MaritalStatus: e.MaritalStatus,
		Gender:        e.Gender,
		Nationality:   e.Nationality,
		Address:       e.Address,
		City:          e.City,
		State:         e.State,
		DepartmentID:  e.DepartmentID,
		JobStatus:     e.JobStatus,
		RoleType:      e.RoleType,
		JoinDate:      e.JoinDate.Format(validator.DateLayout),
		Documents:     documents,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// EmployeeSummary is the short form embedded in department views.
type EmployeeSummary struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	RoleType    RoleType  `json:"role_type"`
	JobStatus   JobStatus `json:"job_status"`
}

func NewEmployeeSummary(e Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		RoleType:    e.RoleType,
		JobStatus:   e.JobStatus,
	}
}
