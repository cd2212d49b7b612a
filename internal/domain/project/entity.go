package project

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

var Statuses = []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}

type Project struct {
	ID          string    `db:"id"`
	ProjectName string    `db:"project_name"`
	StartDate   time.Time `db:"start_date"`
	FinishDate  time.Time `db:"finish_date"`
	Status      Status    `db:"status"`
	EmployeeID  string    `db:"employee_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
