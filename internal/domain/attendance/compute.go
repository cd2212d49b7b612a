package attendance

import (
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
)

// Workday bounds, as offsets from midnight UTC of the attendance date.
const (
	LateAfter       = 9 * time.Hour
	WorkdayEnd      = 17 * time.Hour
	FullDayMinHours = 8.0
)

// Computation is the derived part of an attendance record.
type Computation struct {
	Date         time.Time
	CheckIn      time.Time
	CheckOut     time.Time
	IsLate       bool
	WorkingHours float64
	Status       Status
}

// Compute derives check-in/check-out instants, lateness, working hours and
// status for date (any instant on that UTC calendar day) and two HH:mm times.
//
// Check-out is clamped to 17:00 UTC before being compared with check-in, so a
// check-in after 17:00 always fails. Status is "On time" only when check-in is
// at or before 09:00 and the clamped interval is at least eight hours.
func Compute(date time.Time, checkInTime, checkOutTime string) (Computation, error) {
	day := StartOfDay(date)

	checkIn, err := ParseClock(day, checkInTime)
	if err != nil {
		return Computation{}, err
	}
	checkOut, err := ParseClock(day, checkOutTime)
	if err != nil {
		return Computation{}, err
	}

	isLate := checkIn.After(day.Add(LateAfter))

	if end := day.Add(WorkdayEnd); checkOut.After(end) {
		checkOut = end
	}
	if !checkOut.After(checkIn) {
		return Computation{}, ErrCheckOutNotAfterIn
	}

	hours := checkOut.Sub(checkIn).Hours()

	status := StatusLate
	if !isLate && hours >= FullDayMinHours {
		status = StatusOnTime
	}

	return Computation{
		Date:         day,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		IsLate:       isLate,
		WorkingHours: hours,
		Status:       status,
	}, nil
}

// ParseClock combines an HH:mm string with the UTC day containing day.
func ParseClock(day time.Time, clock string) (time.Time, error) {
	if !validator.IsValidClock(clock) {
		return time.Time{}, ErrInvalidClock
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return StartOfDay(day).Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// StartOfDay truncates t to midnight of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}
