package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	service        *AttendanceServiceImpl
	attendanceRepo *mocks.AttendanceRepository
	employeeRepo   *mocks.EmployeeRepository
	recorded       *prometheus.CounterVec
}

func newFixture() fixture {
	f := fixture{
		attendanceRepo: &mocks.AttendanceRepository{},
		employeeRepo:   &mocks.EmployeeRepository{},
		recorded:       prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_attendance_records_total"}, []string{"status"}),
	}
	f.service = NewAttendanceService(mocks.Transactor{}, f.attendanceRepo, f.employeeRepo,
		WithClock(func() time.Time { return fixedNow }),
		WithRecordCounter(f.recorded),
	).(*AttendanceServiceImpl)
	return f
}

func (f fixture) expectEmployee() {
	f.employeeRepo.On("GetByID", mock.Anything, "emp-1").Return(employee.Employee{ID: "emp-1"}, nil)
}

func (f fixture) expectCreate() {
	f.attendanceRepo.On("Create", mock.Anything, mock.AnythingOfType("attendance.Attendance")).
		Return(attendance.Attendance{ID: "att-1", EmployeeID: "emp-1", Date: fixedNow, Status: attendance.StatusOnTime}, nil)
}

func (f fixture) stored(t *testing.T) attendance.Attendance {
	t.Helper()
	require.Len(t, f.attendanceRepo.Calls, 1)
	return f.attendanceRepo.Calls[0].Arguments.Get(1).(attendance.Attendance)
}

func TestRecordAttendance_OnTimeWithClampedCheckout(t *testing.T) {
	f := newFixture()
	f.expectEmployee()
	f.expectCreate()

	resp, err := f.service.RecordAttendance(context.Background(), "emp-1", attendance.RecordAttendanceRequest{
		Date:         "2026-03-10",
		CheckInTime:  "08:30",
		CheckOutTime: "17:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "att-1", resp.ID)

	stored := f.stored(t)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "emp-1", stored.EmployeeID)
	assert.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), stored.CheckInTime)
	assert.Equal(t, time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC), stored.CheckOutTime)
	assert.InDelta(t, 8.5, stored.WorkingHours, 1e-9)
	assert.Equal(t, attendance.StatusOnTime, stored.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.recorded.WithLabelValues("On time")))
}

func TestRecordAttendance_LateArrival(t *testing.T) {
	f := newFixture()
	f.expectEmployee()
	f.expectCreate()

	_, err := f.service.RecordAttendance(context.Background(), "emp-1", attendance.RecordAttendanceRequest{
		Date:         "2026-03-10",
		CheckInTime:  "09:15",
		CheckOutTime: "18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, f.stored(t).Status)
}

func TestRecordAttendance_DateNotToday(t *testing.T) {
	f := newFixture()

	_, err := f.service.RecordAttendance(context.Background(), "emp-1", attendance.RecordAttendanceRequest{
		Date:         "2026-03-09",
		CheckInTime:  "08:00",
		CheckOutTime: "17:00",
	})
	assert.ErrorIs(t, err, attendance.ErrDateNotToday)
	f.employeeRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordAttendance_InvalidClock(t *testing.T) {
	f := newFixture()

	_, err := f.service.RecordAttendance(context.Background(), "emp-1", attendance.RecordAttendanceRequest{
		Date:         "2026-03-10",
		CheckInTime:  "8:00",
		CheckOutTime: "17:00",
	})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "Time must be in HH:mm format", validationErrs.ToMap()["check_in_time"])
}

func TestRecordAttendance_EmployeeNotFound(t *testing.T) {
	f := newFixture()
	f.employeeRepo.On("GetByID", mock.Anything, "missing").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := f.service.RecordAttendance(context.Background(), "missing", attendance.RecordAttendanceRequest{
		Date:         "2026-03-10",
		CheckInTime:  "08:00",
		CheckOutTime: "17:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	f.attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordAttendance_CheckoutNotAfterCheckin(t *testing.T) {
	f := newFixture()
	f.expectEmployee()

	_, err := f.service.RecordAttendance(context.Background(), "emp-1", attendance.RecordAttendanceRequest{
		Date:         "2026-03-10",
		CheckInTime:  "10:00",
		CheckOutTime: "09:30",
	})
	assert.ErrorIs(t, err, attendance.ErrCheckOutNotAfterIn)
	f.attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 0, testutil.CollectAndCount(f.recorded))
}

func TestListByEmployee_ScopesFilterToEmployee(t *testing.T) {
	f := newFixture()
	f.expectEmployee()

	want := query.Filter{"status": "Late", "employee_id": "emp-1"}
	records := []attendance.Attendance{{ID: "a1", EmployeeID: "emp-1", Status: attendance.StatusLate, Date: fixedNow}}
	f.attendanceRepo.On("Find", mock.Anything, want, 10, 10).Return(records, nil)
	f.attendanceRepo.On("Count", mock.Anything, want).Return(int64(11), nil)

	page, err := f.service.ListByEmployee(context.Background(), "emp-1", query.Filter{"status": "Late"}, pagination.PageRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "2026-03-10", page.Data[0].Date)
	assert.Equal(t, int64(11), page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestListByEmployee_EmployeeNotFound(t *testing.T) {
	f := newFixture()
	f.employeeRepo.On("GetByID", mock.Anything, "missing").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := f.service.ListByEmployee(context.Background(), "missing", nil, pagination.PageRequest{})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
