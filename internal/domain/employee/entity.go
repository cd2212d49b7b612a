package employee

import (
	"time"
)

type Employee struct {
	ID            string         `db:"id"`
	EmployeeID    string         `db:"employee_id"`
	AvatarURL     *string        `db:"avatar_url"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	Email         string         `db:"email"`
	WorkEmail     *string        `db:"work_email"`
	PhoneNumber   string         `db:"phone_number"`
	DateOfBirth   time.Time      `db:"date_of_birth"`
	MaritalStatus *MaritalStatus `db:"marital_status"`
	Gender        Gender         `db:"gender"`
	Nationality   string         `db:"nationality"`
	Address       string         `db:"address"`
	City          string         `db:"city"`
	State         string         `db:"state"`
	DepartmentID  string         `db:"department_id"`
	JobStatus     JobStatus      `db:"job_status"`
	RoleType      RoleType       `db:"role_type"`
	JoinDate      time.Time      `db:"join_date"`
	Documents     []string       `db:"documents"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type MaritalStatus string

const (
	MaritalStatusSingle   MaritalStatus = "Single"
	MaritalStatusMarried  MaritalStatus = "Married"
	MaritalStatusDivorced MaritalStatus = "Divorced"
	MaritalStatusWidowed  MaritalStatus = "Widowed"
)

type JobStatus string

const (
	JobStatusPermanent JobStatus = "Permanent"
	JobStatusContract  JobStatus = "Contract"
)

type RoleType string

const (
	RoleTypeOnsite RoleType = "Onsite"
	RoleTypeHybrid RoleType = "Hybrid"
	RoleTypeRemote RoleType = "Remote"
)
