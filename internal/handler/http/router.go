package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	JWTService     jwt.Service
	Denylist       auth.AccessTokenDenylist
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
	Attendance AttendanceHandler
	Project    ProjectHandler
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	authenticated := func(r chi.Router) {
		r.Use(jwtauth.Verifier(opts.JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(opts.Denylist))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)

			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Put("/me", h.Auth.UpdateMe)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			authenticated(r)

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.ListDepartments)
				r.Post("/", h.Department.CreateDepartment)
				r.Get("/{id}", h.Department.GetDepartment)
				r.Put("/{id}", h.Department.UpdateDepartment)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/{employeeID}", h.Attendance.RecordAttendance)
				r.Get("/{employeeID}", h.Attendance.ListAttendance)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.Project.CreateProject)
				r.Get("/employee/{employeeID}", h.Project.ListEmployeeProjects)
			})
		})
	})

	return r
}
