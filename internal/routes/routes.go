package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/audit"
	"github.com/sharpfade/barbershop-api/internal/clock"
	"github.com/sharpfade/barbershop-api/internal/config"
	"github.com/sharpfade/barbershop-api/internal/handlers"
	infraRepo "github.com/sharpfade/barbershop-api/internal/infra/repository"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/storage"
	ucBarber "github.com/sharpfade/barbershop-api/internal/usecase/barber"
	ucBooking "github.com/sharpfade/barbershop-api/internal/usecase/booking"
	"github.com/sharpfade/barbershop-api/internal/verification"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	barberRegistry := infraRepo.NewBarberGormRegistry(db)

	clk := clock.NewSystem(cfg.Timezone)
	uploader := storage.NewS3(cfg)

	store := verification.NewStore(rdb)
	mailer := verification.NewLogMailer(log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	resolver := ucBarber.NewResolver(barberRegistry)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, resolver, clk, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, resolver, clk, auditDispatcher)
	setStatusUC := ucBooking.NewSetBookingStatus(bookingRepo, auditDispatcher)
	removeBookingUC := ucBooking.NewRemoveBooking(bookingRepo, auditDispatcher)
	approveBookingUC := ucBooking.NewApproveBooking(bookingRepo, auditDispatcher)
	declineBookingUC := ucBooking.NewDeclineBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, resolver, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	listBarberBookingsUC := ucBooking.NewListBarberBookings(bookingRepo, resolver)
	availableSlotsUC := ucBooking.NewGetAvailableSlots(bookingRepo, resolver, clk)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, store, mailer, uploader)
	serviceHandler := handlers.NewServiceHandler(db, uploader)
	barberHandler := handlers.NewBarberHandler(db, uploader, listBarberBookingsUC, completeBookingUC)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		setStatusUC,
		removeBookingUC,
		listBookingsUC,
		availableSlotsUC,
	)
	adminHandler := handlers.NewAdminHandler(db, listBookingsUC, approveBookingUC, declineBookingUC)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/verify-code", authHandler.VerifyEmail)
		api.POST("/auth/resend", authHandler.ResendVerify)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password/send-otp", authHandler.SendResetOTP)
		api.POST("/auth/forgot-password/verify-otp", authHandler.VerifyResetOTP)
		api.POST("/auth/forgot-password/reset", authHandler.ResetWithOTP)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Show)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Show)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, store))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/users/me", authHandler.Me)
			secured.PUT("/users/me", authHandler.UpdateMe)
			secured.POST("/users/me/password", authHandler.ChangePassword)
			secured.POST("/users/me/avatar", authHandler.AvatarUpload)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/my", bookingHandler.My)
			secured.GET("/bookings/:id", bookingHandler.Show)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PUT("/bookings/:id", bookingHandler.Update)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			secured.GET("/available-slots", bookingHandler.AvailableSlots)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.PATCH("/appointments/:id/approve", adminHandler.ApproveAppointment)
				admin.PATCH("/appointments/:id/decline", adminHandler.DeclineAppointment)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/barbers", barberHandler.Create)
				admin.PUT("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/users", adminHandler.CreateUser)
				admin.PUT("/users/:id", adminHandler.UpdateUser)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
			}

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireBarber())
			{
				barber.GET("/appointments", barberHandler.MyAppointments)
				barber.PATCH("/appointments/:id/complete", barberHandler.MarkComplete)

				barber.GET("/profile", barberHandler.GetProfile)
				barber.POST("/profile", barberHandler.UpdateProfile)
				barber.POST("/profile/image", barberHandler.UploadProfileImage)
				barber.POST("/credentials", barberHandler.UpdateCredentials)
			}
		}
	}
}
