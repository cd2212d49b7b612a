package attendance

import (
	"time"
)

type Status string

const (
	StatusOnTime Status = "On time"
	StatusLate   Status = "Late"
)

// Attendance is one check-in/check-out submission. It is never updated.
type Attendance struct {
	ID           string    `db:"id" json:"id"`
	EmployeeID   string    `db:"employee_id" json:"employee_id"`
	Date         time.Time `db:"date" json:"date"`
	CheckInTime  time.Time `db:"check_in_time" json:"check_in_time"`
	CheckOutTime time.Time `db:"check_out_time" json:"check_out_time"`
	WorkingHours float64   `db:"working_hours" json:"working_hours"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
