package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilanovabarber/booking-api/internal/config"
	"github.com/vilanovabarber/booking-api/internal/handlers"
	infraRepo "github.com/vilanovabarber/booking-api/internal/infra/repository"
	"github.com/vilanovabarber/booking-api/internal/middleware"
	"github.com/vilanovabarber/booking-api/internal/notification"
	ucAppointment "github.com/vilanovabarber/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	mailer := notification.NewMailer(cfg.SMTP)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(bookingRepo)
	listMineUC := ucAppointment.NewListMyAppointments(bookingRepo)
	listBarberUC := ucAppointment.NewListBarberAppointments(bookingRepo)
	cancelUC := ucAppointment.NewCancelAppointment(bookingRepo)
	completeUC := ucAppointment.NewCompleteAppointment(bookingRepo)
	markNoShowUC := ucAppointment.NewMarkNoShow(bookingRepo, mailer)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		listMineUC,
		listBarberUC,
		cancelUC,
		completeUC,
		markNoShowUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.ResolveIdentity(cfg))
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.GET("/auth/me", authHandler.Me)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/oauth/callback", authHandler.OAuthCallback)

		// ------------------------------
		// CATALOG (public)
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers/login", barberHandler.Login)
		api.GET("/barbers/me", barberHandler.Me)
		api.GET("/services", serviceHandler.List)

		// Public read of a barber's schedule. Lives under /appointments
		// because the router cannot mix :id with the static /barbers/me.
		api.GET("/appointments/barber/:id", appointmentHandler.ForBarber)

		// ------------------------------
		// APPOINTMENTS — client side
		// ------------------------------
		client := api.Group("/appointments")
		client.Use(middleware.RequireUser())
		{
			client.POST("", appointmentHandler.Create)
			client.GET("/mine", appointmentHandler.Mine)
			client.POST("/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// APPOINTMENTS — barber dashboard
		// ------------------------------
		dashboard := api.Group("/appointments")
		dashboard.Use(middleware.RequireBarber())
		{
			dashboard.POST("/:id/complete", appointmentHandler.Complete)
			dashboard.POST("/:id/no-show", appointmentHandler.MarkNoShow)
		}
	}
}
