package routes

import (
	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers the liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.RootHandler)
	r.GET("/health", hb.Health.HealthCheckHandler)
}

// RegisterAppointmentRoutes registers the public availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Appointment.GetAppointmentOptionsHandler)
	r.GET("/v2/appointmentOptions", hb.Appointment.GetAppointmentOptionsV2Handler)
	r.GET("/appointmentSpecialty", hb.Appointment.GetSpecialtiesHandler)
}

// RegisterBookingRoutes registers booking admission and lookup.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)

	r.POST("/bookings", hb.Booking.CreateBookingHandler)
	r.GET("/bookings", verify, middleware.RequireQueryEmail("email"), hb.Booking.ListBookingsHandler)
	r.GET("/bookings/:id", verify, hb.Booking.GetBookingHandler)
}

// RegisterUserRoutes registers sign-up, token issuance and role management.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)
	admin := middleware.VerifyAdmin(hb.Admins)

	r.GET("/jwt", hb.User.IssueTokenHandler)
	r.POST("/users", hb.User.CreateUserHandler)
	r.GET("/users", verify, admin, hb.User.GetAllUsersHandler)
	r.GET("/users/admin/:email", hb.User.IsAdminHandler)
	r.PUT("/users/admin/:id", verify, admin, hb.User.MakeAdminHandler)
}

// RegisterDoctorRoutes registers the admin-only doctor roster.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.Use(middleware.VerifyJWT(hb.Tokens), middleware.VerifyAdmin(hb.Admins))
		doctors.POST("", hb.Doctor.AddDoctorHandler)
		doctors.GET("", hb.Doctor.GetDoctorsHandler)
		doctors.DELETE("/:id", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterPaymentRoutes registers card payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)

	r.POST("/create-payment-intent", verify, hb.Payment.CreatePaymentIntentHandler)
	r.POST("/payments", verify, hb.Payment.RecordPaymentHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	corsConfig.AddExposeHeaders(middleware.RequestIDHeader)
	r.Use(cors.New(corsConfig))

	RegisterHealthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
