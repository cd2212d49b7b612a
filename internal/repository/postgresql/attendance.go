package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
)

const attendanceColumns = "id, employee_id, date, check_in_time, check_out_time, working_hours, status, created_at"

type attendanceRepositoryImpl struct {
	table[attendance.Attendance]
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{
		table: table[attendance.Attendance]{
			db:      db,
			name:    "attendances",
			columns: attendanceColumns,
			filters: map[string]string{
				"employee_id": "employee_id::text = $%d",
				"status":      "status = $%d",
				"date":        "date::text = $%d",
			},
		},
	}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendances (id, employee_id, date, check_in_time, check_out_time, working_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attendanceColumns

	created, err := r.one(ctx, nil, query,
		a.ID,
		a.EmployeeID,
		a.Date,
		a.CheckInTime,
		a.CheckOutTime,
		a.WorkingHours,
		a.Status,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// Find implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]attendance.Attendance, error) {
	return r.find(ctx, filter, skip, limit)
}

// Count implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Count(ctx context.Context, filter query.Filter) (int64, error) {
	return r.count(ctx, filter)
}
