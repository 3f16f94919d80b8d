package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	guestRepo "resortly/database/repository/guest"
	"resortly/models"
)

// GuestHandler exposes guest profiles and notification preferences.
type GuestHandler struct {
	Guests guestRepo.GuestRepository
}

func NewGuestHandler(guests guestRepo.GuestRepository) *GuestHandler {
	return &GuestHandler{Guests: guests}
}

// CreateGuest handles POST /api/guests.
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	guest := &models.Guest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Prefs: models.DefaultNotificationPrefs(),
	}
	if err := h.Guests.Create(c.Request.Context(), guest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create guest"})
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// GetGuest handles GET /api/guests/:id.
func (h *GuestHandler) GetGuest(c *gin.Context) {
	guest, err := h.Guests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, guestRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch guest"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdateGuest handles PUT /api/guests/:id.
func (h *GuestHandler) UpdateGuest(c *gin.Context) {
	guest, err := h.Guests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, guestRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch guest"})
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Name != "" {
		guest.Name = req.Name
	}
	if req.Email != "" {
		guest.Email = req.Email
	}
	if req.Phone != "" {
		guest.Phone = req.Phone
	}
	if err := h.Guests.Update(c.Request.Context(), guest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update guest"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdatePrefs handles PUT /api/guests/:id/prefs.
func (h *GuestHandler) UpdatePrefs(c *gin.Context) {
	var prefs models.NotificationPrefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Guests.UpdatePrefs(c.Request.Context(), c.Param("id"), prefs); err != nil {
		if errors.Is(err, guestRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
