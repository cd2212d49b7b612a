package attendance

import (
	"context"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

type AttendanceRepository interface {
	// Create persists a new attendance record and returns it with its timestamps.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// Find returns attendance records matching filter ordered by creation.
	// Filter keys: employee_id, status, date.
	Find(ctx context.Context, filter query.Filter, skip, limit int) ([]Attendance, error)

	// Count returns the number of attendance records matching filter.
	Count(ctx context.Context, filter query.Filter) (int64, error)
}
