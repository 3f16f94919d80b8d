package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"resortly/cron"
	reservationRepo "resortly/database/repository/reservation"
	"resortly/models"
	"resortly/services/booking"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine       booking.Engine
	Reservations reservationRepo.ReservationRepository
	Reminders    *asynq.Client // nil disables reminder scheduling
	Logger       *zap.Logger
}

func NewBookingHandler(engine booking.Engine, reservations reservationRepo.ReservationRepository, reminders *asynq.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Reservations: reservations, Reminders: reminders, Logger: logger}
}

// writeBookingError translates engine errors into HTTP responses carrying
// the programmatic rejection code.
func writeBookingError(c *gin.Context, err error) {
	rej, ok := booking.AsRejection(err)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": string(booking.CodeStoreUnavailable), "error": err.Error()})
		return
	}

	body := gin.H{"code": string(rej.Code), "error": rej.Message}
	switch rej.Code {
	case booking.CodeConflict:
		body["conflicts"] = rej.Conflicts
		c.JSON(http.StatusConflict, body)
	case booking.CodeCapacityExceeded:
		body["available"] = rej.Available
		c.JSON(http.StatusConflict, body)
	case booking.CodeInvalidInput, booking.CodeInvalidBasePrice, booking.CodeInvalidRange:
		c.JSON(http.StatusBadRequest, body)
	case booking.CodeRuleAmbiguous:
		// Configuration defect; admins must fix the overlapping rules.
		c.JSON(http.StatusInternalServerError, body)
	default:
		c.JSON(http.StatusServiceUnavailable, body)
	}
}

type stayRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type commitStayRequest struct {
	stayRequest
	GuestID   string `json:"guest_id" binding:"required"`
	GuestName string `json:"guest_name"`
}

func parseStay(req stayRequest) (models.Day, models.Day, error) {
	checkIn, err := models.ParseDay(req.CheckIn)
	if err != nil {
		return "", "", err
	}
	checkOut, err := models.ParseDay(req.CheckOut)
	if err != nil {
		return "", "", err
	}
	return checkIn, checkOut, nil
}

// QuoteChalet handles POST /api/booking/chalets/:id/quote.
func (h *BookingHandler) QuoteChalet(c *gin.Context) {
	var req stayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.Engine.QuoteExclusive(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CommitChalet handles POST /api/booking/chalets/:id/commit.
func (h *BookingHandler) CommitChalet(c *gin.Context) {
	var req commitStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStay(req.stayRequest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Engine.CommitExclusive(c.Request.Context(), c.Param("id"), checkIn, checkOut,
		models.BookingMeta{GuestID: req.GuestID, GuestName: req.GuestName})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	h.scheduleReminder(res)
	c.JSON(http.StatusCreated, res)
}

type sessionRequest struct {
	Date      string `json:"date" binding:"required"`
	PartySize int    `json:"party_size" binding:"required"`
}

type commitSessionRequest struct {
	sessionRequest
	GuestID   string `json:"guest_id" binding:"required"`
	GuestName string `json:"guest_name"`
}

// QuoteSession handles POST /api/booking/sessions/:id/quote.
func (h *BookingHandler) QuoteSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := models.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.Engine.QuoteShared(c.Request.Context(), c.Param("id"), date, req.PartySize)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CommitSession handles POST /api/booking/sessions/:id/commit.
func (h *BookingHandler) CommitSession(c *gin.Context) {
	var req commitSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := models.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Engine.CommitShared(c.Request.Context(), c.Param("id"), date, req.PartySize,
		models.BookingMeta{GuestID: req.GuestID, GuestName: req.GuestName})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	h.scheduleReminder(res)
	c.JSON(http.StatusCreated, res)
}

// GetCapacity handles GET /api/booking/sessions/:id/capacity?date=YYYY-MM-DD.
func (h *BookingHandler) GetCapacity(c *gin.Context) {
	date, err := models.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.Engine.Snapshot(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetReservation handles GET /api/booking/reservations/:id.
func (h *BookingHandler) GetReservation(c *gin.Context) {
	res, err := h.Reservations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservation handles DELETE /api/booking/reservations/:id.
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	if err := h.Engine.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.StatusCancelled)})
}

// RescheduleReservation handles PUT /api/booking/reservations/:id/stay.
func (h *BookingHandler) RescheduleReservation(c *gin.Context) {
	var req stayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	checkIn, checkOut, err := parseStay(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.Engine.Reschedule(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// TransitionReservation handles POST /api/admin/booking/reservations/:id/status.
func (h *BookingHandler) TransitionReservation(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Engine.Transition(c.Request.Context(), c.Param("id"), models.ReservationStatus(req.Status)); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *BookingHandler) scheduleReminder(res *models.Reservation) {
	if h.Reminders == nil {
		return
	}
	if err := cron.EnqueueStayReminder(h.Reminders, res); err != nil {
		h.Logger.Warn("failed to enqueue stay reminder",
			zap.String("reservationID", res.ID), zap.Error(err))
	}
}
