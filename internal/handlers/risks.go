package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/risk"
	"isms-center/internal/service"
	"isms-center/internal/tenancy"

	"github.com/gin-gonic/gin"
)

type riskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Probability int    `json:"probability"`
	Impact      int    `json:"impact"`

	// residual assessment after treatment, optional
	ResidualProbability int `json:"residual_probability"`
	ResidualImpact      int `json:"residual_impact"`

	AssetID *uint `json:"asset_id"`
}

// zero means not yet assessed; assessed values must land in 1..5
func validRating(v int) bool { return v >= 0 && v <= 5 }

func CreateRisk(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}

	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if len(req.Title) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "risk title must be at least 3 characters"})
		return
	}
	if !validRating(req.Probability) || !validRating(req.Impact) ||
		!validRating(req.ResidualProbability) || !validRating(req.ResidualImpact) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "probability and impact must be between 0 and 5"})
		return
	}

	status := models.RiskStatus(req.Status)
	if status == "" {
		status = models.RiskStatusActive
	}
	switch status {
	case models.RiskStatusActive, models.RiskStatusMitigated, models.RiskStatusAccepted, models.RiskStatusClosed:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk status"})
		return
	}

	r := models.Risk{
		TenantID:            tenant.ID,
		AssetID:             req.AssetID,
		Title:               req.Title,
		Description:         req.Description,
		Status:              status,
		Probability:         req.Probability,
		Impact:              req.Impact,
		ResidualProbability: req.ResidualProbability,
		ResidualImpact:      req.ResidualImpact,
	}

	if err := database.DB.Create(&r).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save risk"})
		return
	}

	if user, ok := currentUser(c); ok {
		database.CreateAuditLog(user.ID, tenant.ID, "risk", r.ID, "create", "created risk: "+r.Title)
	}

	c.JSON(http.StatusCreated, riskView(r))
}

func UpdateRisk(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk id"})
			return
		}

		var r models.Risk
		if err := database.DB.First(&r, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk not found"})
			return
		}

		// records outside the visible set are indistinguishable from absent
		// ones; 403 is reserved for visible-but-inherited records
		visible, err := canViewRecord(reg, tenant, models.ScopeRisk, r.TenantID)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		if !visible {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk not found"})
			return
		}

		// inherited records are read-only for the viewing tenant
		if !tenancy.CanEdit(r, tenant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "inherited records are read-only"})
			return
		}

		var req riskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		if len(req.Title) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "risk title must be at least 3 characters"})
			return
		}
		if !validRating(req.Probability) || !validRating(req.Impact) ||
			!validRating(req.ResidualProbability) || !validRating(req.ResidualImpact) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "probability and impact must be between 0 and 5"})
			return
		}

		if req.Status != "" {
			status := models.RiskStatus(req.Status)
			switch status {
			case models.RiskStatusActive, models.RiskStatusMitigated, models.RiskStatusAccepted, models.RiskStatusClosed:
				r.Status = status
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk status"})
				return
			}
		}

		r.Title = req.Title
		r.Description = req.Description
		r.Probability = req.Probability
		r.Impact = req.Impact
		r.ResidualProbability = req.ResidualProbability
		r.ResidualImpact = req.ResidualImpact
		r.AssetID = req.AssetID

		if err := database.DB.Save(&r).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save risk"})
			return
		}

		if user, ok := currentUser(c); ok {
			database.CreateAuditLog(user.ID, tenant.ID, "risk", r.ID, "update", "updated risk: "+r.Title)
		}

		c.JSON(http.StatusOK, riskView(r))
	}
}

// riskView decorates a risk with its derived scores and levels for API output.
func riskView(r models.Risk) gin.H {
	view := gin.H{
		"risk":           r,
		"score":          r.Score(),
		"level":          risk.LevelOf(r.Probability, r.Impact),
		"residual_score": r.ResidualScore(),
	}
	if r.ResidualProbability > 0 && r.ResidualImpact > 0 {
		view["residual_level"] = risk.LevelOf(r.ResidualProbability, r.ResidualImpact)
	}
	return view
}

// RiskMatrix serves the aggregated 5x5 matrix over the tenant's visible
// risks.
func RiskMatrix(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		risks, err := reg.Risks.Visible(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, risk.BuildMatrix(risks))
	}
}

// RiskHeatmap serves chart-ready points, one per matrix cell.
func RiskHeatmap(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		risks, err := reg.Risks.Visible(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"points": risk.HeatmapPoints(risks)})
	}
}
