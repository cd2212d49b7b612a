package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

type AttendanceServiceImpl struct {
	tx             postgresql.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	recorded       *prometheus.CounterVec
	now            func() time.Time
}

type Option func(*AttendanceServiceImpl)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) {
		s.now = now
	}
}

// WithRecordCounter counts stored records by status.
func WithRecordCounter(c *prometheus.CounterVec) Option {
	return func(s *AttendanceServiceImpl) {
		s.recorded = c
	}
}

func NewAttendanceService(
	tx postgresql.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	opts ...Option,
) attendance.AttendanceService {
	s := &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, employeeID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	if !attendance.SameDay(date, s.now()) {
		return attendance.AttendanceResponse{}, attendance.ErrDateNotToday
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	computed, err := attendance.Compute(date, req.CheckInTime, req.CheckOutTime)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:           id.String(),
		EmployeeID:   employeeID,
		Date:         computed.Date,
		CheckInTime:  computed.CheckIn,
		CheckOutTime: computed.CheckOut,
		WorkingHours: computed.WorkingHours,
		Status:       computed.Status,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if s.recorded != nil {
		s.recorded.WithLabelValues(string(created.Status)).Inc()
	}

	return attendance.NewAttendanceResponse(created), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[attendance.AttendanceResponse], error) {
	var result pagination.PageResult[attendance.Attendance]

	err := s.tx.WithSnapshot(ctx, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByID(txCtx, employeeID); err != nil {
			return err
		}

		var err error
		result, err = pagination.Paginate[attendance.Attendance](txCtx, s.attendanceRepo, filter.With("employee_id", employeeID), page)
		return err
	})
	if err != nil {
		return pagination.PageResult[attendance.AttendanceResponse]{}, err
	}

	return pagination.Map(result, attendance.NewAttendanceResponse), nil
}
