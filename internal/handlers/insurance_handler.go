package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartcare/smartcare-api/internal/models"
	"github.com/smartcare/smartcare-api/internal/store"
)

type InsurancePlanRequest struct {
	ProviderName    string             `json:"provider_name" binding:"required"`
	PlanName        string             `json:"plan_name" binding:"required"`
	PlanType        string             `json:"plan_type" binding:"required"`
	CoverageDetails map[string]string  `json:"coverage_details" binding:"required"`
	CostSharing     map[string]string  `json:"cost_sharing" binding:"required"`
	NetworkType     string             `json:"network_type" binding:"required"`
	AnnualPremium   float64            `json:"annual_premium"`
	Deductible      float64            `json:"deductible"`
	Copay           map[string]float64 `json:"copay" binding:"required"`
	Coinsurance     float64            `json:"coinsurance"`
	OutOfPocketMax  float64            `json:"out_of_pocket_max"`

	PrescriptionCoverage bool `json:"prescription_coverage"`
	MentalHealthCoverage bool `json:"mental_health_coverage"`
	DentalCoverage       bool `json:"dental_coverage"`
	VisionCoverage       bool `json:"vision_coverage"`
}

func (r *InsurancePlanRequest) toModel() *models.InsurancePlan {
	return &models.InsurancePlan{
		ProviderName:         r.ProviderName,
		PlanName:             r.PlanName,
		PlanType:             r.PlanType,
		CoverageDetails:      r.CoverageDetails,
		CostSharing:          r.CostSharing,
		NetworkType:          r.NetworkType,
		AnnualPremium:        r.AnnualPremium,
		Deductible:           r.Deductible,
		Copay:                r.Copay,
		Coinsurance:          r.Coinsurance,
		OutOfPocketMax:       r.OutOfPocketMax,
		PrescriptionCoverage: r.PrescriptionCoverage,
		MentalHealthCoverage: r.MentalHealthCoverage,
		DentalCoverage:       r.DentalCoverage,
		VisionCoverage:       r.VisionCoverage,
	}
}

// ListInsurancePlans returns the catalog, optionally filtered by insurer
// name and plan type (both case-insensitive substring matches).
func (h *Handler) ListInsurancePlans(c *gin.Context) {
	plans, err := h.Store.ListInsurancePlans(c.Request.Context(), c.Query("provider_name"), c.Query("plan_type"))
	if err != nil {
		h.Logger.Error().Err(err).Msg("list insurance plans failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetInsurancePlan returns one catalog entry by id.
func (h *Handler) GetInsurancePlan(c *gin.Context) {
	plan, err := h.Store.GetInsurancePlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Insurance plan not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("get insurance plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateInsurancePlan adds a catalog entry.
func (h *Handler) CreateInsurancePlan(c *gin.Context) {
	var req InsurancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := req.toModel()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if err := h.Store.CreateInsurancePlan(c.Request.Context(), plan); err != nil {
		h.Logger.Error().Err(err).Msg("create insurance plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info().Str("provider", plan.ProviderName).Str("plan", plan.PlanName).Msg("insurance plan created")
	c.JSON(http.StatusCreated, plan)
}

// UpdateInsurancePlan replaces a catalog entry's fields.
func (h *Handler) UpdateInsurancePlan(c *gin.Context) {
	planID := c.Param("id")

	var req InsurancePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.UpdateInsurancePlan(c.Request.Context(), planID, req.toModel()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Insurance plan not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("update insurance plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	updated, err := h.Store.GetInsurancePlan(c.Request.Context(), planID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("update insurance plan: reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info().Str("plan_id", planID).Msg("insurance plan updated")
	c.JSON(http.StatusOK, updated)
}

// DeleteInsurancePlan removes a catalog entry.
func (h *Handler) DeleteInsurancePlan(c *gin.Context) {
	planID := c.Param("id")

	if err := h.Store.DeleteInsurancePlan(c.Request.Context(), planID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Insurance plan not found"})
			return
		}
		h.Logger.Error().Err(err).Msg("delete insurance plan failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Logger.Info().Str("plan_id", planID).Msg("insurance plan deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Insurance plan deleted successfully"})
}

// GetPlansByProvider lists all plans offered by one insurer.
func (h *Handler) GetPlansByProvider(c *gin.Context) {
	plans, err := h.Store.ListInsurancePlans(c.Request.Context(), c.Param("provider_name"), "")
	if err != nil {
		h.Logger.Error().Err(err).Msg("list plans by provider failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, plans)
}
