package routes

import (
	"net/http"
	"time"

	"docportal/handlers"
	"docportal/middleware"
	"docportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public catalog endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Availability.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", hb.Availability.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", hb.Availability.GetSpecialties)
}

// RegisterBookingRoutes registers the booking endpoints. Listing a patient's
// bookings is the only token-scoped endpoint; submission and single-booking
// lookup are open.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.Booking.ListBookings)
	r.GET("/bookings/:id", hb.Booking.GetBooking)
	r.POST("/bookings", hb.Booking.CreateBooking)
}

// RegisterUserRoutes registers user endpoints. Granting the admin role
// requires an authenticated admin.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/users", hb.User.ListUsers)
	r.POST("/users", hb.User.CreateUser)
	r.GET("/users/admin/:email", hb.User.CheckAdmin)
	r.PUT("/users/admin/:id",
		middleware.JWTAuthMiddleware(),
		middleware.RequireAdmin(hb.UserService),
		hb.User.GrantAdmin)
}

// RegisterDoctorRoutes registers the admin-gated doctor roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	doctors.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin(hb.UserService))
	{
		doctors.GET("", hb.Doctor.ListDoctors)
		doctors.POST("", hb.Doctor.CreateDoctor)
		doctors.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterPaymentRoutes registers payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.Payment.CreatePaymentIntent)
	r.POST("/payments", hb.Payment.RecordPayment)
}

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/jwt", hb.Auth.GetToken)
}

// RegisterHealthRoute registers the banner and health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Doctors Portal Server"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
