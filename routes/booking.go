package routes

import (
	"github.com/gin-gonic/gin"

	"resortly/handlers"
	"resortly/middleware"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/chalets/:id/quote", hb.Booking.QuoteChalet)
		booking.POST("/chalets/:id/commit", hb.Booking.CommitChalet)
		booking.POST("/sessions/:id/quote", hb.Booking.QuoteSession)
		booking.POST("/sessions/:id/commit", hb.Booking.CommitSession)
		booking.GET("/sessions/:id/capacity", hb.Booking.GetCapacity)

		booking.GET("/reservations/:id", hb.Booking.GetReservation)
		booking.DELETE("/reservations/:id", hb.Booking.CancelReservation)
		booking.PUT("/reservations/:id/stay", hb.Booking.RescheduleReservation)
	}

	staff := r.Group("/api/admin/booking")
	{
		staff.Use(middleware.StaffAuthMiddleware())
		staff.POST("/reservations/:id/status", hb.Booking.TransitionReservation)
	}
}
