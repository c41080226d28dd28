package routes

import (
	"CarePulse/cache"
	"CarePulse/config"
	"CarePulse/controllers"
	"CarePulse/forms"
	"CarePulse/handlers"
	"CarePulse/middlewares"
	"CarePulse/repositories"
	"CarePulse/services"
	"CarePulse/templates"
	"CarePulse/utils"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Router bundles what NewRouter needs besides the configuration.
type Router struct {
	Tokens      *utils.TokenMaker
	Users       handlers.UserService
	Patients    handlers.PatientService
	Appointment handlers.AppointmentService
	Guard       forms.Guard
	Metrics     *middlewares.Metrics
	Checks      map[string]controllers.HealthCheck
	Logger      zerolog.Logger
}

// SetupRoutes wires repositories, services and handlers onto a gin engine.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB, redisClient *redis.Client, logger zerolog.Logger) (http.Handler, error) {
	tokens, err := utils.NewTokenMaker(config.SymmetricKey)
	if err != nil {
		return nil, err
	}

	locker := repositories.NewLocker(redisClient)
	userRepo := repositories.NewUserRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache, locker)
	documentRepo := repositories.NewDocumentRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache, locker)

	notifier := services.NewNotifier(config.SMTP)
	if _, ok := notifier.(services.NopNotifier); ok {
		logger.Info().Msg("SMTP_HOST not set, appointment emails are disabled")
	}

	return NewRouter(config, Router{
		Tokens:      tokens,
		Users:       services.NewUserService(userRepo),
		Patients:    services.NewPatientService(patientRepo, documentRepo),
		Appointment: services.NewAppointmentService(appointmentRepo, patientRepo, notifier, logger),
		Guard:       forms.NewRedisGuard(redisClient, config.SubmissionLockTTL, logger),
		Metrics:     middlewares.NewMetrics("carepulse"),
		Checks: map[string]controllers.HealthCheck{
			"postgres": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
		Logger: logger,
	})
}

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(config *config.AppConfig, r Router) (*gin.Engine, error) {
	if config.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = 8 << 20

	tmpl, err := templates.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(middlewares.LoggingMiddleware(r.Logger))
	if r.Metrics != nil {
		router.Use(r.Metrics.Middleware())
		router.GET("/metrics", r.Metrics.Handler())
	}

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RequestsPerSecond,
		Burst:             config.Burst,
	}))

	if config.AssetsDir != "" {
		router.Static("/assets", config.AssetsDir)
	}

	var observer handlers.SubmissionObserver
	if r.Metrics != nil {
		observer = r.Metrics
	}
	appointmentSubmitter := forms.NewAppointmentSubmitter(r.Appointment, r.Guard, r.Logger)
	registrationSubmitter := forms.NewRegistrationSubmitter(r.Patients, r.Guard, r.Logger)

	authHandler := handlers.NewAuthHandler(r.Users, r.Tokens, config.AdminPasskeyHash, r.Logger)
	patientHandler := handlers.NewPatientHandler(r.Users, r.Patients, registrationSubmitter, observer)
	appointmentHandler := handlers.NewAppointmentHandler(r.Patients, r.Appointment, appointmentSubmitter, observer)
	adminHandler := handlers.NewAdminHandler(r.Appointment, appointmentSubmitter, observer)
	apiHandler := handlers.NewAPIHandler(r.Patients, r.Appointment)
	doctorHandler := handlers.NewDoctorHandler()

	controllers.SetupPatientRoutes(router, r.Tokens, patientHandler, appointmentHandler)
	controllers.SetupAPIRoutes(router, config.GetBearerToken(), apiHandler, doctorHandler)

	authController := controllers.NewAuthController(authHandler, adminHandler, patientHandler, r.Tokens)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router, authHandler, r.Checks)

	return router, nil
}
