package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/handler"
	"github.com/campushq/campuscore-backend/internal/middleware"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/response"
	"github.com/campushq/campuscore-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	StudentMgmt  *handler.StudentManagementHandler
	Staff        *handler.StaffHandler
	Role         *handler.RoleHandler
	Academic     *handler.AcademicHandler
	Course       *handler.CourseHandler
	Enrollment   *handler.EnrollmentHandler
	Result       *handler.ResultHandler
	Payment      *handler.PaymentHandler
	Hostel       *handler.HostelHandler
	Quiz         *handler.QuizHandler
	Message      *handler.MessageHandler
	Notification *handler.NotificationHandler
	Clearance    *handler.ClearanceHandler
	Scholarship  *handler.ScholarshipHandler
	Report       *handler.ReportHandler
	WS           *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/student/login", handlers.Auth.StudentLogin)
		auth.POST("/staff/login", handlers.Auth.StaffLogin)

		// Authenticated profile routes
		auth.POST("/student/logout", middleware.RequireStudentJWT(authService), handlers.Auth.StudentLogout)
		auth.GET("/student/me", middleware.RequireStudentJWT(authService), handlers.Auth.GetStudentProfile)
		auth.GET("/staff/me", middleware.RequireStaffJWT(authService), handlers.Auth.GetStaffProfile)
	}

	// ─── 2. Public Group (No Auth) ─────────────────────────────────────
	// Hostel listings are browsable by applicants before they log in.
	publicAPI := router.Group("/api/v1")
	publicAPI.Use(middleware.CacheControl(300))
	{
		publicAPI.GET("/hostels", handlers.Hostel.List)
		publicAPI.GET("/hostels/:id", handlers.Hostel.Get)
	}

	// ─── 3. Student Group (JWT + Single Device) ────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(
		middleware.RequireStudentJWT(authService),
		middleware.CheckSingleDeviceSession(authService),
	)
	{
		studentAPI.GET("/courses", handlers.Course.Catalogue)
		studentAPI.GET("/courses/:id/quizzes", handlers.Quiz.CourseQuizzes)

		studentAPI.POST("/enrollments", handlers.Enrollment.Enroll)
		studentAPI.GET("/enrollments", handlers.Enrollment.MyEnrollments)
		studentAPI.POST("/enrollments/:id/drop", handlers.Enrollment.Drop)

		studentAPI.GET("/transcript", handlers.Result.MyTranscript)

		studentAPI.POST("/payments", handlers.Payment.Initiate)
		studentAPI.GET("/payments", handlers.Payment.MyPayments)
		studentAPI.GET("/payments/:reference/receipt", handlers.Payment.StudentReceipt)

		studentAPI.POST("/hostel/applications", handlers.Hostel.Apply)
		studentAPI.GET("/hostel/applications/me", handlers.Hostel.MyApplication)

		studentAPI.GET("/quizzes/:id/questions", handlers.Quiz.Questions)
		studentAPI.POST("/quizzes/:id/attempts", handlers.Quiz.SubmitAttempt)

		studentAPI.POST("/messages", handlers.Message.Send)
		studentAPI.GET("/messages", handlers.Message.Inbox)
		studentAPI.POST("/messages/:id/read", handlers.Message.MarkRead)

		studentAPI.GET("/notifications", handlers.Notification.List)
		studentAPI.GET("/notifications/unread-count", handlers.Notification.UnreadCount)
		studentAPI.POST("/notifications/:id/read", handlers.Notification.MarkRead)
		studentAPI.POST("/notifications/read-all", handlers.Notification.MarkAllRead)

		studentAPI.POST("/clearance", handlers.Clearance.Open)
		studentAPI.GET("/clearance", handlers.Clearance.GetMine)

		studentAPI.GET("/scholarships", handlers.Scholarship.ListOpen)
		studentAPI.POST("/scholarships/:id/apply", handlers.Scholarship.Apply)
		studentAPI.GET("/scholarships/applications", handlers.Scholarship.MyApplications)
	}

	// ─── 4. WebSocket Group (Student WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireStudentWSAuth(authService))
	{
		ws.GET("/student/notifications", handlers.WS.NotificationStream)
	}

	// ─── 5. Admin Group (JWT + RBAC) ───────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireStaffJWT(authService))
	{
		// Student management
		adminAPI.GET("/students",
			middleware.RequirePermission(string(model.PermissionStudentsRead)),
			handlers.StudentMgmt.List,
		)
		adminAPI.GET("/students/:id",
			middleware.RequirePermission(string(model.PermissionStudentsRead)),
			handlers.StudentMgmt.Get,
		)
		adminAPI.POST("/students",
			middleware.RequirePermission(string(model.PermissionStudentsWrite)),
			handlers.StudentMgmt.Create,
		)
		adminAPI.PUT("/students/:id",
			middleware.RequirePermission(string(model.PermissionStudentsWrite)),
			handlers.StudentMgmt.Update,
		)
		adminAPI.DELETE("/students/:id",
			middleware.RequirePermission(string(model.PermissionStudentsWrite)),
			handlers.StudentMgmt.Delete,
		)
		adminAPI.POST("/students/:id/reset-session",
			middleware.RequirePermission(string(model.PermissionStudentsResetSession)),
			handlers.StudentMgmt.ResetSession,
		)

		// Staff management
		adminAPI.GET("/staff",
			middleware.RequirePermission(string(model.PermissionStaffRead)),
			handlers.Staff.List,
		)
		adminAPI.GET("/staff/:id",
			middleware.RequirePermission(string(model.PermissionStaffRead)),
			handlers.Staff.Get,
		)
		adminAPI.POST("/staff",
			middleware.RequirePermission(string(model.PermissionStaffWrite)),
			handlers.Staff.Create,
		)
		adminAPI.PUT("/staff/:id",
			middleware.RequirePermission(string(model.PermissionStaffWrite)),
			handlers.Staff.Update,
		)
		adminAPI.DELETE("/staff/:id",
			middleware.RequirePermission(string(model.PermissionStaffWrite)),
			handlers.Staff.Delete,
		)

		// Role management
		adminAPI.GET("/roles",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.List,
		)
		adminAPI.GET("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.Get,
		)
		adminAPI.GET("/permissions",
			middleware.RequirePermission(string(model.PermissionRolesRead)),
			handlers.Role.ListPermissions,
		)
		adminAPI.POST("/roles",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Create,
		)
		adminAPI.PUT("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Update,
		)
		adminAPI.DELETE("/roles/:id",
			middleware.RequirePermission(string(model.PermissionRolesWrite)),
			handlers.Role.Delete,
		)

		// Faculties and departments
		academicsGroup := adminAPI.Group("")
		{
			academicsGroup.GET("/faculties",
				middleware.RequirePermission(string(model.PermissionAcademicsRead)),
				handlers.Academic.ListFaculties,
			)
			academicsGroup.POST("/faculties",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.CreateFaculty,
			)
			academicsGroup.PUT("/faculties/:id",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.UpdateFaculty,
			)
			academicsGroup.DELETE("/faculties/:id",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.DeleteFaculty,
			)
			academicsGroup.GET("/departments",
				middleware.RequirePermission(string(model.PermissionAcademicsRead)),
				handlers.Academic.ListDepartments,
			)
			academicsGroup.POST("/departments",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.CreateDepartment,
			)
			academicsGroup.PUT("/departments/:id",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.UpdateDepartment,
			)
			academicsGroup.DELETE("/departments/:id",
				middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
				handlers.Academic.DeleteDepartment,
			)
		}

		// Course management
		adminAPI.GET("/courses",
			middleware.RequirePermission(string(model.PermissionAcademicsRead)),
			handlers.Course.List,
		)
		adminAPI.GET("/courses/:id",
			middleware.RequirePermission(string(model.PermissionAcademicsRead)),
			handlers.Course.Get,
		)
		adminAPI.POST("/courses",
			middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
			handlers.Course.Create,
		)
		adminAPI.PUT("/courses/:id",
			middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
			handlers.Course.Update,
		)
		adminAPI.DELETE("/courses/:id",
			middleware.RequirePermission(string(model.PermissionAcademicsWrite)),
			handlers.Course.Delete,
		)

		// Enrollments
		adminAPI.POST("/enrollments",
			middleware.RequirePermission(string(model.PermissionEnrollmentsWrite)),
			handlers.Enrollment.AdminEnroll,
		)
		adminAPI.GET("/courses/:id/enrollments",
			middleware.RequirePermission(string(model.PermissionEnrollmentsRead)),
			handlers.Enrollment.ListByCourse,
		)

		// Results
		adminAPI.POST("/results",
			middleware.RequirePermission(string(model.PermissionResultsWrite)),
			handlers.Result.Enter,
		)
		adminAPI.GET("/courses/:id/results",
			middleware.RequirePermission(string(model.PermissionResultsRead)),
			handlers.Result.ListByCourse,
		)

		// Payments
		adminAPI.GET("/payments",
			middleware.RequirePermission(string(model.PermissionPaymentsRead)),
			handlers.Payment.List,
		)
		adminAPI.POST("/payments/:id/decide",
			middleware.RequirePermission(string(model.PermissionPaymentsConfirm)),
			handlers.Payment.Decide,
		)
		adminAPI.GET("/payments/:id/receipt",
			middleware.RequirePermission(string(model.PermissionPaymentsRead)),
			handlers.Payment.AdminReceipt,
		)

		// Hostels and allocations
		adminAPI.POST("/hostels",
			middleware.RequirePermission(string(model.PermissionHostelsWrite)),
			handlers.Hostel.Create,
		)
		adminAPI.PUT("/hostels/:id",
			middleware.RequirePermission(string(model.PermissionHostelsWrite)),
			handlers.Hostel.Update,
		)
		adminAPI.DELETE("/hostels/:id",
			middleware.RequirePermission(string(model.PermissionHostelsWrite)),
			handlers.Hostel.Delete,
		)
		adminAPI.POST("/hostels/:id/rooms",
			middleware.RequirePermission(string(model.PermissionHostelsWrite)),
			handlers.Hostel.CreateRoom,
		)
		adminAPI.DELETE("/rooms/:id",
			middleware.RequirePermission(string(model.PermissionHostelsWrite)),
			handlers.Hostel.DeleteRoom,
		)
		adminAPI.GET("/hostels/:id/applications",
			middleware.RequirePermission(string(model.PermissionHostelsRead)),
			handlers.Hostel.ListApplications,
		)
		adminAPI.POST("/hostel/applications/:id/allocate",
			middleware.RequirePermission(string(model.PermissionHostelsAllocate)),
			handlers.Hostel.Allocate,
		)
		adminAPI.POST("/hostel/applications/:id/reject",
			middleware.RequirePermission(string(model.PermissionHostelsAllocate)),
			handlers.Hostel.Reject,
		)

		// Quizzes
		adminAPI.POST("/quizzes",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.Create,
		)
		adminAPI.GET("/quizzes/:id",
			middleware.RequirePermission(string(model.PermissionQuizzesRead)),
			handlers.Quiz.Get,
		)
		adminAPI.GET("/courses/:id/quizzes",
			middleware.RequirePermission(string(model.PermissionQuizzesRead)),
			handlers.Quiz.ListByCourse,
		)
		adminAPI.DELETE("/quizzes/:id",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.Delete,
		)
		adminAPI.POST("/quizzes/:id/questions",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.AddQuestion,
		)
		adminAPI.DELETE("/quizzes/:id/questions/:question_id",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.DeleteQuestion,
		)
		adminAPI.POST("/quizzes/:id/publish",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.Publish,
		)
		adminAPI.POST("/quizzes/:id/close",
			middleware.RequirePermission(string(model.PermissionQuizzesWrite)),
			handlers.Quiz.Close,
		)
		adminAPI.GET("/quizzes/:id/attempts",
			middleware.RequirePermission(string(model.PermissionQuizzesRead)),
			handlers.Quiz.ListAttempts,
		)

		// Messages and notifications (open to all staff)
		adminAPI.POST("/messages", handlers.Message.Send)
		adminAPI.GET("/messages", handlers.Message.Inbox)
		adminAPI.POST("/messages/:id/read", handlers.Message.MarkRead)
		adminAPI.GET("/notifications", handlers.Notification.List)
		adminAPI.GET("/notifications/unread-count", handlers.Notification.UnreadCount)
		adminAPI.POST("/notifications/:id/read", handlers.Notification.MarkRead)
		adminAPI.POST("/notifications/read-all", handlers.Notification.MarkAllRead)
		adminAPI.POST("/notifications/broadcast",
			middleware.RequirePermission(string(model.PermissionNotificationsBroadcast)),
			handlers.Notification.Broadcast,
		)

		// Clearance
		adminAPI.GET("/clearances/pending",
			middleware.RequirePermission(string(model.PermissionClearanceRead)),
			handlers.Clearance.PendingForUnit,
		)
		adminAPI.GET("/clearances/:id",
			middleware.RequirePermission(string(model.PermissionClearanceRead)),
			handlers.Clearance.Get,
		)
		adminAPI.POST("/clearances/:id/items/:unit/decide",
			middleware.RequirePermission(string(model.PermissionClearanceAct)),
			handlers.Clearance.DecideItem,
		)

		// Scholarships
		adminAPI.GET("/scholarships",
			middleware.RequirePermission(string(model.PermissionScholarshipsRead)),
			handlers.Scholarship.List,
		)
		adminAPI.POST("/scholarships",
			middleware.RequirePermission(string(model.PermissionScholarshipsWrite)),
			handlers.Scholarship.Create,
		)
		adminAPI.PUT("/scholarships/:id",
			middleware.RequirePermission(string(model.PermissionScholarshipsWrite)),
			handlers.Scholarship.Update,
		)
		adminAPI.POST("/scholarships/:id/close",
			middleware.RequirePermission(string(model.PermissionScholarshipsWrite)),
			handlers.Scholarship.Close,
		)
		adminAPI.DELETE("/scholarships/:id",
			middleware.RequirePermission(string(model.PermissionScholarshipsWrite)),
			handlers.Scholarship.Delete,
		)
		adminAPI.GET("/scholarships/:id/applications",
			middleware.RequirePermission(string(model.PermissionScholarshipsRead)),
			handlers.Scholarship.ListApplications,
		)
		adminAPI.POST("/scholarships/applications/:id/decide",
			middleware.RequirePermission(string(model.PermissionScholarshipsWrite)),
			handlers.Scholarship.Decide,
		)

		// Bursary reports
		reportsGroup := adminAPI.Group("/reports")
		{
			reportsGroup.GET("/bursary", middleware.RequirePermission(string(model.PermissionReportsRead)), handlers.Report.Bursary)
			reportsGroup.GET("/bursary/export", middleware.RequirePermission(string(model.PermissionReportsRead)), handlers.Report.BursaryXLSX)
		}
	}

	return router
}
