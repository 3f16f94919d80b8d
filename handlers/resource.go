package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resourceRepo "resortly/database/repository/resource"
	"resortly/models"
)

// ResourceHandler exposes administrative management of chalets and shared
// sessions, plus the public browse endpoints.
type ResourceHandler struct {
	Repo resourceRepo.ResourceRepository
}

func NewResourceHandler(repo resourceRepo.ResourceRepository) *ResourceHandler {
	return &ResourceHandler{Repo: repo}
}

// ListChalets handles GET /api/resources/chalets.
func (h *ResourceHandler) ListChalets(c *gin.Context) {
	chalets, err := h.Repo.ListChalets(c.Request.Context(), c.Query("all") == "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list chalets"})
		return
	}
	c.JSON(http.StatusOK, chalets)
}

// GetChalet handles GET /api/resources/chalets/:id.
func (h *ResourceHandler) GetChalet(c *gin.Context) {
	chalet, err := h.Repo.GetChalet(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chalet not found"})
		return
	}
	c.JSON(http.StatusOK, chalet)
}

// CreateChalet handles POST /api/admin/resources/chalets.
func (h *ResourceHandler) CreateChalet(c *gin.Context) {
	var chalet models.Chalet
	if err := c.ShouldBindJSON(&chalet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if chalet.Name == "" || chalet.BaseRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chalet needs a name and a positive base_rate"})
		return
	}
	if err := h.Repo.CreateChalet(c.Request.Context(), &chalet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create chalet"})
		return
	}
	c.JSON(http.StatusCreated, chalet)
}

// UpdateChalet handles PUT /api/admin/resources/chalets/:id.
func (h *ResourceHandler) UpdateChalet(c *gin.Context) {
	var chalet models.Chalet
	if err := c.ShouldBindJSON(&chalet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	existing, err := h.Repo.GetChalet(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "chalet not found"})
		return
	}
	chalet.ID = existing.ID
	chalet.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateChalet(c.Request.Context(), &chalet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update chalet"})
		return
	}
	c.JSON(http.StatusOK, chalet)
}

// ListSessions handles GET /api/resources/sessions.
func (h *ResourceHandler) ListSessions(c *gin.Context) {
	sessions, err := h.Repo.ListSessions(c.Request.Context(), c.Query("all") == "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sessions"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession handles GET /api/resources/sessions/:id.
func (h *ResourceHandler) GetSession(c *gin.Context) {
	session, err := h.Repo.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateSession handles POST /api/admin/resources/sessions.
func (h *ResourceHandler) CreateSession(c *gin.Context) {
	var session models.SharedSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if session.Name == "" || session.MaxCapacity <= 0 || session.UnitPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session needs a name, a positive max_capacity, and a positive unit_price"})
		return
	}
	if err := h.Repo.CreateSession(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSession handles PUT /api/admin/resources/sessions/:id. Capacity edits only
// affect dates whose sale ledger has not been instantiated yet.
func (h *ResourceHandler) UpdateSession(c *gin.Context) {
	var session models.SharedSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	existing, err := h.Repo.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	session.ID = existing.ID
	session.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateSession(c.Request.Context(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update session"})
		return
	}
	c.JSON(http.StatusOK, session)
}
