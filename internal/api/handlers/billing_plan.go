package handlers

import (
	"errors"
	"net/http"

	apperrors "nexus-hub-backend/internal/errors"
	"nexus-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingPlanHandler handles HTTP requests for billing plans
type BillingPlanHandler struct {
	service service.BillingPlanServiceInterface
}

// NewBillingPlanHandler creates a new billing plan handler
func NewBillingPlanHandler(service service.BillingPlanServiceInterface) *BillingPlanHandler {
	return &BillingPlanHandler{service: service}
}

// ListBillingPlans handles GET /api/billing-plans
// @Summary List billing plans
// @Description Get all billing plan and term combinations with their rates and feature defaults
// @Tags billing-plans
// @Accept json
// @Produce json
// @Success 200 {array} models.BillingPlan "Successfully retrieved billing plans"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /billing-plans [get]
func (h *BillingPlanHandler) ListBillingPlans(c *gin.Context) {
	plans, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list billing plans", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetBillingPlan handles GET /api/billing-plans/:plan_name
// @Summary Get a billing plan
// @Description Get a billing plan by name and term length
// @Tags billing-plans
// @Accept json
// @Produce json
// @Param plan_name path string true "Billing plan name"
// @Param term_length query string false "Contract term length" default(Month to Month)
// @Success 200 {object} models.BillingPlan "Successfully retrieved billing plan"
// @Failure 404 {object} map[string]interface{} "Billing plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /billing-plans/{plan_name} [get]
func (h *BillingPlanHandler) GetBillingPlan(c *gin.Context) {
	planName := c.Param("plan_name")
	termLength := c.DefaultQuery("term_length", "Month to Month")

	plan, err := h.service.Get(planName, termLength)
	if err != nil {
		if errors.Is(err, apperrors.ErrBillingPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get billing plan", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlanNames handles GET /api/billing-plans/names
// @Summary List billing plan names
// @Description Get the distinct billing plan names
// @Tags billing-plans
// @Accept json
// @Produce json
// @Success 200 {array} string "Successfully retrieved plan names"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /billing-plans/names [get]
func (h *BillingPlanHandler) ListPlanNames(c *gin.Context) {
	names, err := h.service.PlanNames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list plan names", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, names)
}

// ListFeatureOptions handles GET /api/feature-options
// @Summary List feature options
// @Description Get selectable feature options, optionally filtered by type
// @Tags billing-plans
// @Accept json
// @Produce json
// @Param type query string false "Feature type (email or phone)"
// @Success 200 {array} models.FeatureOption "Successfully retrieved feature options"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /feature-options [get]
func (h *BillingPlanHandler) ListFeatureOptions(c *gin.Context) {
	options, err := h.service.FeatureOptions(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list feature options", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}
