package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
	handler "github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/query"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const employeeUUID = "0192f3a4-5b6c-7d8e-9f01-23456789abcd"

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req auth.RegisterRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	args := m.Called(ctx, req, session)
	return args.Get(0).(auth.TokenResponse), args.Error(1)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.AccessTokenResponse), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, req auth.LogoutRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthService) Me(ctx context.Context, userID string) (user.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(user.UserResponse), args.Error(1)
}

type mockEmployeeService struct{ mock.Mock }

func (m *mockEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *mockEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *mockEmployeeService) List(ctx context.Context, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[employee.EmployeeResponse], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(pagination.PageResult[employee.EmployeeResponse]), args.Error(1)
}

func (m *mockEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

type mockDepartmentService struct{ mock.Mock }

func (m *mockDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(department.DepartmentResponse), args.Error(1)
}

func (m *mockDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(department.DepartmentResponse), args.Error(1)
}

func (m *mockDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentDetailResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(department.DepartmentDetailResponse), args.Error(1)
}

func (m *mockDepartmentService) List(ctx context.Context) ([]department.DepartmentDetailResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]department.DepartmentDetailResponse), args.Error(1)
}

type mockAttendanceService struct{ mock.Mock }

func (m *mockAttendanceService) RecordAttendance(ctx context.Context, employeeID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, employeeID, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *mockAttendanceService) ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[attendance.AttendanceResponse], error) {
	args := m.Called(ctx, employeeID, filter, page)
	return args.Get(0).(pagination.PageResult[attendance.AttendanceResponse]), args.Error(1)
}

type mockProjectService struct{ mock.Mock }

func (m *mockProjectService) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(project.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) ListByEmployee(ctx context.Context, employeeID string, filter query.Filter, page pagination.PageRequest) (pagination.PageResult[project.ProjectResponse], error) {
	args := m.Called(ctx, employeeID, filter, page)
	return args.Get(0).(pagination.PageResult[project.ProjectResponse]), args.Error(1)
}

type testServer struct {
	handler    http.Handler
	jwtService *jwt.JWTService
	denylist   *mocks.AccessTokenDenylist
	auth       *mockAuthService
	employees  *mockEmployeeService
	depts      *mockDepartmentService
	attendance *mockAttendanceService
	projects   *mockProjectService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	jwtService, err := jwt.NewJWTService("router-test-secret", "15m", "24h", false)
	require.NoError(t, err)

	s := &testServer{
		jwtService: jwtService,
		denylist:   new(mocks.AccessTokenDenylist),
		auth:       new(mockAuthService),
		employees:  new(mockEmployeeService),
		depts:      new(mockDepartmentService),
		attendance: new(mockAttendanceService),
		projects:   new(mockProjectService),
	}
	s.handler = handler.NewRouter(handler.RouterOptions{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		AllowedOrigins: []string{"http://localhost:3000"},
		JWTService:     jwtService,
		Denylist:       s.denylist,
	}, handler.Handlers{
		Auth:       handler.NewAuthHandler(jwtService, s.auth),
		Employee:   handler.NewEmployeeHandler(s.employees),
		Department: handler.NewDepartmentHandler(s.depts),
		Attendance: handler.NewAttendanceHandler(s.attendance),
		Project:    handler.NewProjectHandler(s.projects),
	})
	return s
}

// accessToken issues a token for user-1 that the deny-list lets through.
func (s *testServer) accessToken(t *testing.T) (string, int64) {
	t.Helper()
	token, exp, err := s.jwtService.GenerateAccessToken("user-1", "alice@example.com", "alice")
	require.NoError(t, err)
	s.denylist.On("IsDenied", mock.Anything, token).Return(false, nil)
	return token, exp
}

func (s *testServer) do(method, target, body, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_Heartbeat(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/employees", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	s.employees.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeHandler_ListBuildsFilterAndPage(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)

	page := pagination.PageResult[employee.EmployeeResponse]{
		Data:        []employee.EmployeeResponse{{ID: employeeUUID, EmployeeID: "12345678"}},
		TotalItems:  6,
		TotalPages:  2,
		CurrentPage: 2,
		PageSize:    5,
		HasPrev:     true,
	}
	s.employees.On("List", mock.Anything,
		query.Filter{"department": "dept-1", "job_status": "Active"},
		pagination.PageRequest{Page: 2, PageSize: 5},
	).Return(page, nil)

	rec := s.do(http.MethodGet, "/api/v1/employees?department=dept-1&job_status=Active&gender=&salary=1000&page=2&page_size=5", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 2, body.Meta.CurrentPage)
	assert.Equal(t, int64(6), body.Meta.TotalItems)
	assert.True(t, body.Meta.HasPrev)
	assert.False(t, body.Meta.HasNext)
	s.employees.AssertExpectations(t)
}

func TestEmployeeHandler_GetRejectsMalformedID(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)

	rec := s.do(http.MethodGet, "/api/v1/employees/not-a-uuid", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid employee ID", decode(t, rec).Error.Message)
}

func TestEmployeeHandler_GetNotFound(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.employees.On("GetByID", mock.Anything, employeeUUID).Return(employee.EmployeeResponse{}, employee.ErrEmployeeNotFound)

	rec := s.do(http.MethodGet, "/api/v1/employees/"+employeeUUID, "", token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeHandler_CreateRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)

	rec := s.do(http.MethodPost, "/api/v1/employees", "{", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request format", decode(t, rec).Error.Message)
}

func TestAttendanceHandler_Record(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	req := attendance.RecordAttendanceRequest{Date: "2026-10-15", CheckInTime: "09:00", CheckOutTime: "17:30"}
	s.attendance.On("RecordAttendance", mock.Anything, employeeUUID, req).Return(attendance.AttendanceResponse{
		EmployeeID:   employeeUUID,
		Date:         "2026-10-15",
		WorkingHours: 8.5,
		Status:       attendance.StatusOnTime,
	}, nil)

	rec := s.do(http.MethodPost, "/api/v1/attendance/"+employeeUUID,
		`{"date":"2026-10-15","check_in_time":"09:00","check_out_time":"17:30"}`, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec).Data.(map[string]any)
	assert.Equal(t, 8.5, data["working_hours"])
	s.attendance.AssertExpectations(t)
}

func TestAttendanceHandler_RecordRejectsPastDate(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.attendance.On("RecordAttendance", mock.Anything, employeeUUID, mock.Anything).
		Return(attendance.AttendanceResponse{}, attendance.ErrDateNotToday)

	rec := s.do(http.MethodPost, "/api/v1/attendance/"+employeeUUID,
		`{"date":"2020-01-01","check_in_time":"09:00","check_out_time":"17:00"}`, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Only today's date is allowed", decode(t, rec).Error.Message)
}

func TestAttendanceHandler_ListPassesStatusFilter(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.attendance.On("ListByEmployee", mock.Anything, employeeUUID,
		query.Filter{"status": "Late"},
		pagination.PageRequest{Page: 1, PageSize: 10},
	).Return(pagination.PageResult[attendance.AttendanceResponse]{
		Data:        []attendance.AttendanceResponse{},
		CurrentPage: 1,
		PageSize:    10,
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/attendance/"+employeeUUID+"?status=Late&employee_id=other&page=abc", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	s.attendance.AssertExpectations(t)
}

func TestProjectHandler_ListWithoutProjects(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.projects.On("ListByEmployee", mock.Anything, employeeUUID, query.Filter{}, pagination.PageRequest{Page: 1, PageSize: 10}).
		Return(pagination.PageResult[project.ProjectResponse]{}, project.ErrNoProjectsFound)

	rec := s.do(http.MethodGet, "/api/v1/projects/employee/"+employeeUUID, "", token)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No projects found for this employee", decode(t, rec).Error.Message)
}

func TestDepartmentHandler_CreateConflict(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.depts.On("Create", mock.Anything, department.CreateDepartmentRequest{Name: "Engineering"}).
		Return(department.DepartmentResponse{}, department.ErrDepartmentNameExists)

	rec := s.do(http.MethodPost, "/api/v1/departments", `{"name":"Engineering"}`, token)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Department already exists", decode(t, rec).Error.Message)
}

func TestAuthHandler_LoginSetsRefreshCookie(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("Login", mock.Anything, auth.LoginRequest{Email: "alice@example.com", Password: "Secret123!"}, mock.Anything).
		Return(auth.TokenResponse{
			AccessToken:           "access",
			RefreshToken:          "refresh",
			RefreshTokenExpiresIn: 1893456000,
			User:                  user.UserResponse{ID: "user-1"},
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"Secret123!"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), jwt.RefreshTokenCookieName+"=refresh")
}

func TestAuthHandler_RefreshPrefersCookie(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("RefreshToken", mock.Anything, auth.RefreshTokenRequest{RefreshToken: "from-cookie"}).
		Return(auth.AccessTokenResponse{AccessToken: "new-access"}, nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"from-body"}`, "",
		&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "from-cookie"})

	assert.Equal(t, http.StatusOK, rec.Code)
	s.auth.AssertExpectations(t)
}

func TestAuthHandler_RefreshFallsBackToBody(t *testing.T) {
	s := newTestServer(t)
	s.auth.On("RefreshToken", mock.Anything, auth.RefreshTokenRequest{RefreshToken: "from-body"}).
		Return(auth.AccessTokenResponse{AccessToken: "new-access"}, nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"from-body"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	s.auth.AssertExpectations(t)
}

func TestAuthHandler_LogoutRevokesBothTokens(t *testing.T) {
	s := newTestServer(t)
	token, exp := s.accessToken(t)
	s.auth.On("Logout", mock.Anything, auth.LogoutRequest{
		RefreshToken:         "refresh",
		AccessToken:          token,
		AccessTokenExpiresAt: exp,
	}).Return(nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/logout", "", token,
		&http.Cookie{Name: jwt.RefreshTokenCookieName, Value: "refresh"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	s.auth.AssertExpectations(t)
}

func TestAuthHandler_MeUsesTokenSubject(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.accessToken(t)
	s.auth.On("Me", mock.Anything, "user-1").Return(user.UserResponse{ID: "user-1", Username: "alice"}, nil)

	rec := s.do(http.MethodGet, "/api/v1/auth/me", "", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode(t, rec).Data.(map[string]any)["username"])
}
