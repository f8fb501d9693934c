package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docportal/config"
	"docportal/cron"
	"docportal/database"
	bookingRepoPkg "docportal/database/repository/booking"
	catalogRepoPkg "docportal/database/repository/catalog"
	doctorRepoPkg "docportal/database/repository/doctor"
	paymentRepoPkg "docportal/database/repository/payment"
	userRepoPkg "docportal/database/repository/user"
	"docportal/handlers"
	"docportal/middleware"
	"docportal/routes"
	"docportal/services/availability"
	"docportal/services/booking"
	"docportal/services/doctor"
	"docportal/services/payment"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	cacheClient := utils.GetCacheClient()
	availabilityService := &availability.DefaultService{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Cache:    cacheClient,
		CacheTTL: time.Duration(config.AppConfig.AvailabilityTTL) * time.Second,
	}
	admissionService := &booking.DefaultAdmissionService{
		Repo:      bookingRepo,
		Cache:     cacheClient,
		Reminders: cron.NewReminderScheduler(),
	}
	userService := &user.DefaultUserService{Repo: userRepo}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}
	paymentService := &payment.DefaultService{
		Payments: paymentRepo,
		Bookings: bookingRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService:  userService,
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(admissionService),
		User:         handlers.NewUserHandler(userService),
		Doctor:       handlers.NewDoctorHandler(doctorService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Auth:         handlers.NewAuthHandler(userService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(bookingRepo)
	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
