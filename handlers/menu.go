package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resortly/models"
	"resortly/services/menu"
)

// MenuHandler exposes the restaurant menu catalog.
type MenuHandler struct {
	Service menu.MenuService
}

func NewMenuHandler(svc menu.MenuService) *MenuHandler {
	return &MenuHandler{Service: svc}
}

// ListMenu handles GET /api/menu. Guests see only available items; staff
// can pass ?all=1.
func (h *MenuHandler) ListMenu(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context(), c.Query("category"), c.Query("all") == "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/admin/menu.
func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.Create(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMenuItem handles PUT /api/admin/menu/:id.
func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	existing, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	updated, err := h.Service.Update(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMenuItem handles DELETE /api/admin/menu/:id.
func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
