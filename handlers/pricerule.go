package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	priceruleRepo "resortly/database/repository/pricerule"
	"resortly/models"
)

// PriceRuleHandler exposes administrative price rule management. The engine
// only ever reads rules; all writes come through here.
type PriceRuleHandler struct {
	Repo priceruleRepo.PriceRuleRepository
}

func NewPriceRuleHandler(repo priceruleRepo.PriceRuleRepository) *PriceRuleHandler {
	return &PriceRuleHandler{Repo: repo}
}

type priceRuleInput struct {
	Name          string        `json:"name" binding:"required"`
	ResourceID    string        `json:"resource_id"`
	ResourceType  string        `json:"resource_type" binding:"required"`
	StartDate     string        `json:"start_date" binding:"required"`
	EndDate       string        `json:"end_date" binding:"required"`
	Multiplier    float64       `json:"multiplier"`
	OverridePrice *models.Cents `json:"override_price"`
	Priority      int           `json:"priority"`
	Active        bool          `json:"active"`
}

func (in priceRuleInput) toModel() (*models.PriceRule, error) {
	start, err := models.ParseDay(in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseDay(in.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.PriceRule{
		Name:          in.Name,
		ResourceID:    in.ResourceID,
		ResourceType:  models.ResourceType(in.ResourceType),
		StartDate:     start,
		EndDate:       end,
		Multiplier:    in.Multiplier,
		OverridePrice: in.OverridePrice,
		Priority:      in.Priority,
		Active:        in.Active,
	}, nil
}

func validateRule(rule *models.PriceRule) string {
	if rule.ResourceType != models.ResourceExclusive && rule.ResourceType != models.ResourceShared {
		return "resource_type must be exclusive or shared"
	}
	if rule.EndDate.Before(rule.StartDate) {
		return "end_date must not precede start_date"
	}
	if rule.OverridePrice == nil && rule.Multiplier <= 0 {
		return "rule needs a positive multiplier or an override_price"
	}
	if rule.OverridePrice != nil && *rule.OverridePrice <= 0 {
		return "override_price must be positive"
	}
	return ""
}

// CreateRule handles POST /api/admin/price-rules.
func (h *PriceRuleHandler) CreateRule(c *gin.Context) {
	var in priceRuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule, err := in.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateRule(rule); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := h.Repo.Create(c.Request.Context(), rule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create price rule"})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// ListRules handles GET /api/admin/price-rules.
func (h *PriceRuleHandler) ListRules(c *gin.Context) {
	rules, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list price rules"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// UpdateRule handles PUT /api/admin/price-rules/:id.
func (h *PriceRuleHandler) UpdateRule(c *gin.Context) {
	var in priceRuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	rule, err := in.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateRule(rule); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	existing, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "price rule not found"})
		return
	}
	rule.ID = existing.ID
	rule.CreatedAt = existing.CreatedAt
	if err := h.Repo.Update(c.Request.Context(), rule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update price rule"})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeactivateRule handles DELETE /api/admin/price-rules/:id. Rules are never
// hard-deleted so historical pricing stays explainable.
func (h *PriceRuleHandler) DeactivateRule(c *gin.Context) {
	if err := h.Repo.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "price rule not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": false})
}
