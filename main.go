package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	appointmentRepo "doctorsportal/database/repository/appointment"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/tasks"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.Connect(rootCtx, cfg.DatabaseURL, cfg.DatabaseName, logger)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}

	// repositories.
	optionRepo := appointmentRepo.NewMongoAppointmentOptionRepo(db.Database())
	bookRepo := bookingRepo.NewMongoBookingRepo(db.Database())
	userRepo := userRepoPkg.NewMongoUserRepo(db.Database())
	docRepo := doctorRepo.NewMongoDoctorRepo(db.Database())
	payRepo := paymentRepo.NewMongoPaymentRepo(db.Database())

	for name, ensure := range map[string]func(context.Context) error{
		"appointmentOptions": optionRepo.EnsureIndexes,
		"bookings":           bookRepo.EnsureIndexes,
		"users":              userRepo.EnsureIndexes,
	} {
		if err := ensure(rootCtx); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// redis: admission lock and confirmation queue are optional.
	lockClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisLockDB)
	lockUp := err == nil
	if !lockUp {
		logger.Warn("main: admission lock disabled", zap.Error(err))
	}
	queueClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB)
	queueUp := err == nil
	if !queueUp {
		logger.Warn("main: confirmation queue disabled", zap.Error(err))
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Options:  optionRepo,
		Bookings: bookRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		Availability: availabilityService,
		Logger:       logger,
	}
	if lockUp {
		bookingService.Lock = booking.NewRedisAdmissionLock(lockClient, cfg.AdmissionLockTTL())
	}

	var confirmationWorker *cron.ConfirmationWorker
	var confirmationQueue *tasks.Queue
	if queueUp {
		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		confirmationQueue = tasks.NewQueue(redisOpts)
		bookingService.Queue = confirmationQueue

		confirmationWorker = cron.StartConfirmationWorker(rootCtx, redisOpts, logger)
	}

	tokens := utils.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL())
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Tokens: tokens,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: docRepo}

	paymentHandler := &handlers.PaymentHandler{}
	if cfg.StripeKey != "" {
		stripe.Key = cfg.StripeKey
		paymentHandler.PaymentService = &payment.DefaultPaymentService{
			Gateway:  payment.NewStripeGateway(),
			Payments: payRepo,
			Bookings: bookRepo,
			Logger:   logger,
		}
	} else {
		logger.Warn("main: STRIPE_SECRET_KEY not set, payments disabled")
	}

	monitor := utils.NewHealthMonitor(db.Mongo(), lockClient, queueClient)
	monitor.Start(rootCtx, 30*time.Second)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:      tokens,
		Admins:      userService,
		Appointment: &handlers.AppointmentHandler{Availability: availabilityService},
		Booking:     &handlers.BookingHandler{BookingService: bookingService},
		User:        &handlers.UserHandler{UserService: userService},
		Doctor:      &handlers.DoctorHandler{DoctorService: doctorService},
		Payment:     paymentHandler,
		Health:      &handlers.HealthHandler{Monitor: monitor},
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("doctors portal running on port %s", port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if confirmationWorker != nil {
		confirmationWorker.Wait()
	}
	if confirmationQueue != nil {
		if err := confirmationQueue.Close(); err != nil {
			logger.Warn("main: failed to close confirmation queue", zap.Error(err))
		}
	}
	utils.CloseRedis(lockClient, queueClient)
	if err := db.Close(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
