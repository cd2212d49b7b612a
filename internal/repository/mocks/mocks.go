// Package mocks provides testify mocks of the repository interfaces for service tests.
package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly on the caller's context.
type Transactor struct{}

func (Transactor) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (Transactor) WithSnapshot(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string, excludeID string) (bool, error) {
	args := m.Called(ctx, phoneNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]employee.Employee, error) {
	args := m.Called(ctx, filter, skip, limit)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) Count(ctx context.Context, filter query.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *DepartmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) Update(ctx context.Context, d department.Department) (department.Department, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(department.Department), args.Error(1)
}

func (m *DepartmentRepository) List(ctx context.Context) ([]department.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]department.Department), args.Error(1)
}

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]attendance.Attendance, error) {
	args := m.Called(ctx, filter, skip, limit)
	return args.Get(0).([]attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) Count(ctx context.Context, filter query.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(project.Project), args.Error(1)
}

func (m *ProjectRepository) Find(ctx context.Context, filter query.Filter, skip, limit int) ([]project.Project, error) {
	args := m.Called(ctx, filter, skip, limit)
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *ProjectRepository) Count(ctx context.Context, filter query.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID string) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	return m.Called(ctx, userID, token, expiresAt, sessionReq).Error(0)
}

func (m *RefreshTokenRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (string, bool, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *RefreshTokenRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *RefreshTokenRepository) DeleteStaleRefreshTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type AccessTokenDenylist struct {
	mock.Mock
}

func (m *AccessTokenDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	return m.Called(ctx, token, ttl).Error(0)
}

func (m *AccessTokenDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
