package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/database"
	"github.com/campushq/campuscore-backend/internal/handler"
	"github.com/campushq/campuscore-backend/internal/logger"
	"github.com/campushq/campuscore-backend/internal/repository"
	"github.com/campushq/campuscore-backend/internal/router"
	"github.com/campushq/campuscore-backend/internal/service"
	"github.com/campushq/campuscore-backend/internal/validator"
	"github.com/campushq/campuscore-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("session", cfg.CurrentSession).
		Msg("Starting CampusCore Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	academicRepo := repository.NewAcademicRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	hostelRepo := repository.NewHostelRepository(pool)
	quizRepo := repository.NewQuizRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	clearanceRepo := repository.NewClearanceRepository(pool)
	scholarshipRepo := repository.NewScholarshipRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	studentService := service.NewStudentService(studentRepo)
	staffService := service.NewStaffService(staffRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo)
	academicService := service.NewAcademicService(academicRepo)
	courseService := service.NewCourseService(courseRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, cfg)
	resultService := service.NewResultService(resultRepo, enrollmentRepo)
	notificationService := service.NewNotificationService(notificationRepo, studentRepo, rdb)
	paymentService := service.NewPaymentService(paymentRepo, notificationService, cfg)
	hostelService := service.NewHostelService(hostelRepo, studentRepo, notificationService, cfg)
	quizService := service.NewQuizService(quizRepo, enrollmentRepo, rdb)
	messageService := service.NewMessageService(messageRepo, notificationService)
	clearanceService := service.NewClearanceService(clearanceRepo, notificationService, cfg)
	scholarshipService := service.NewScholarshipService(scholarshipRepo, notificationService, cfg)
	reportService := service.NewReportService(reportRepo, rdb, cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, studentService, staffService),
		StudentMgmt:  handler.NewStudentManagementHandler(studentService, authService),
		Staff:        handler.NewStaffHandler(staffService, authService),
		Role:         handler.NewRoleHandler(roleService),
		Academic:     handler.NewAcademicHandler(academicService),
		Course:       handler.NewCourseHandler(courseService, studentService),
		Enrollment:   handler.NewEnrollmentHandler(enrollmentService),
		Result:       handler.NewResultHandler(resultService),
		Payment:      handler.NewPaymentHandler(paymentService),
		Hostel:       handler.NewHostelHandler(hostelService),
		Quiz:         handler.NewQuizHandler(quizService),
		Message:      handler.NewMessageHandler(messageService),
		Notification: handler.NewNotificationHandler(notificationService),
		Clearance:    handler.NewClearanceHandler(clearanceService),
		Scholarship:  handler.NewScholarshipHandler(scholarshipService),
		Report:       handler.NewReportHandler(reportService, cfg),
		WS:           handler.NewWSHandler(rdb, notificationService, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	notificationWorker := worker.NewNotificationWorker(notificationRepo, pool, rdb, log)
	scoringWorker := worker.NewQuizScoringWorker(pool, rdb, log)

	go notificationWorker.Start(workerCtx)
	go scoringWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for queues to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
