package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindlink/dashboard-api/internal/api/handler"
	"github.com/mindlink/dashboard-api/internal/api/middleware"
	"github.com/mindlink/dashboard-api/internal/core/domain"
	"github.com/mindlink/dashboard-api/internal/core/service"
	mongodb "github.com/mindlink/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mindlink/dashboard-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. Portal
// groups carry their own role allow-lists; admins additionally hold the
// doctor, caregiver, and patient surfaces for support work.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mindlink"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	alertRepo := mongodb.NewAlertRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, jwtSecret, sessionTTL, log)
	directoryService := service.NewDirectoryService(userRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, log)
	alertService := service.NewAlertService(alertRepo, log)
	patientService := service.NewPatientService(patientRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directoryService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	alertHandler := handler.NewAlertHandler(alertService)
	patientHandler := handler.NewPatientHandler(patientService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authed := middleware.Auth(jwtSecret, sessionStore)

	// --- Unauthenticated surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)

	// --- Session surface, any authenticated role ---
	auth := v1.Group("/auth", authed)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	// --- Admin portal ---
	admin := v1.Group("/admin", authed, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/users", userHandler.CreateUser)
	admin.PATCH("/users/:id/status", userHandler.UpdateUserStatus)
	admin.DELETE("/users/:id", userHandler.DeleteUser)

	// --- Doctor portal ---
	doctor := v1.Group("/doctor", authed, middleware.RBAC(domain.RoleDoctor, domain.RoleAdmin))
	doctor.GET("/patients", patientHandler.ListPatients)
	doctor.GET("/patients/:id", patientHandler.PatientOverview)
	doctor.GET("/appointments", appointmentHandler.ListAppointments)
	doctor.POST("/appointments", appointmentHandler.CreateAppointment)
	doctor.PATCH("/appointments/:id/status", appointmentHandler.UpdateAppointmentStatus)

	// --- Caregiver portal ---
	caregiver := v1.Group("/caregiver", authed, middleware.RBAC(domain.RoleCaregiver, domain.RoleAdmin))
	caregiver.GET("/alerts", alertHandler.ListAlerts)
	caregiver.POST("/alerts/:id/respond", alertHandler.RespondToAlert)
	caregiver.POST("/alerts/:id/read", alertHandler.MarkAlertRead)
	caregiver.GET("/patients/:id", patientHandler.PatientOverview)
	caregiver.GET("/patients/:id/timeline", patientHandler.Timeline)

	// --- Patient portal ---
	patient := v1.Group("/patient", authed, middleware.RBAC(domain.RolePatient, domain.RoleDoctor, domain.RoleAdmin))
	patient.GET("/overview", patientHandler.MyOverview)
	patient.GET("/alerts", alertHandler.MyAlerts)
	patient.GET("/patients/:id/timeline", patientHandler.Timeline)

	return e
}
