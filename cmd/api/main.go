package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-records-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/identifier"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/cache"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hr-records-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hr-records-backend-go/internal/service/auth"
	departmentService "github.com/cmlabs-hris/hr-records-backend-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hr-records-backend-go/internal/service/employee"
	projectService "github.com/cmlabs-hris/hr-records-backend-go/internal/service/project"
)

const (
	shutdownTimeout       = 15 * time.Second
	cronJobTimeout        = 5 * time.Minute
	refreshTokenRetention = 7 * 24 * time.Hour
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logCloser, err := logger.Setup(logger.Options{
		App:     "hr-records",
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		File:    cfg.App.LogFile,
		Console: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logCloser.Close()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		slog.Info("Database schema applied")
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	m := metrics.New()

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	denylist := cache.NewAccessTokenDenylist(redisClient)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, !cfg.IsDevelopment())
	if err != nil {
		return err
	}
	idGenerator := identifier.NewGenerator(employeeRepo, identifier.WithAttemptCounter(m.EmployeeIDAttempts))

	authService := serviceAuth.NewAuthService(tx, userRepo, JWTService, refreshTokenRepo, denylist)
	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo, departmentRepo, idGenerator)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(tx, attendanceRepo, employeeRepo,
		attendanceService.WithRecordCounter(m.AttendanceRecords))
	projectSvc := projectService.NewProjectService(tx, projectRepo, employeeRepo)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
		Metrics:        m,
		JWTService:     JWTService,
		Denylist:       denylist,
	}, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
	})

	scheduler := cron.NewScheduler(cronJobTimeout)
	cron.NewSessionJobs(refreshTokenRepo, refreshTokenRetention).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
