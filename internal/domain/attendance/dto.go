package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// AllowedFilters are the query parameters an attendance listing may filter on.
var AllowedFilters = []string{"status", "date"}

type RecordAttendanceRequest struct {
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"date":           r.Date,
		"check_in_time":  r.CheckInTime,
		"check_out_time": r.CheckOutTime,
	}
	for _, field := range []string{"date", "check_in_time", "check_out_time"} {
		if validator.IsEmpty(required[field]) {
			errs.Add(field, msgRequired)
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if !validator.IsValidClock(r.CheckInTime) {
		errs.Add("check_in_time", msgInvalidClock)
	}
	if !validator.IsValidClock(r.CheckOutTime) {
		errs.Add("check_out_time", msgInvalidClock)
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	return errs.Err()
}

type AttendanceResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"`
	CheckInTime  time.Time `json:"check_in_time"`
	CheckOutTime time.Time `json:"check_out_time"`
	WorkingHours float64   `json:"working_hours"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format(validator.DateLayout),
		CheckInTime:  a.CheckInTime.UTC(),
		CheckOutTime: a.CheckOutTime.UTC(),
		WorkingHours: a.WorkingHours,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}
