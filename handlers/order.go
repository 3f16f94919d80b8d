package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resortly/models"
	"resortly/services/order"
)

// OrderHandler exposes dining orders.
type OrderHandler struct {
	Service order.OrderService
}

func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{Service: svc}
}

// PlaceOrder handles POST /api/orders.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		GuestID string            `json:"guest_id" binding:"required"`
		TableNo string            `json:"table_no"`
		Lines   []order.LineInput `json:"lines" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	placed, err := h.Service.Place(c.Request.Context(), req.GuestID, req.TableNo, req.Lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, placed)
}

// GetOrder handles GET /api/orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// ListGuestOrders handles GET /api/orders?guest_id=.
func (h *OrderHandler) ListGuestOrders(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return
	}
	orders, err := h.Service.ListByGuest(c.Request.Context(), guestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// OrderBoard handles GET /api/admin/orders?status= for the kitchen view.
func (h *OrderHandler) OrderBoard(c *gin.Context) {
	status := models.OrderStatus(c.DefaultQuery("status", string(models.OrderPlaced)))
	orders, err := h.Service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AdvanceOrder handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.Advance(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status)); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
