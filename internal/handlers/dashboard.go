package handlers

import (
	"net/http"
	"time"

	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/risk"
	"isms-center/internal/service"

	"github.com/gin-gonic/gin"
)

// Dashboard aggregates inheritance stats for all five scopes with the review
// workload and the tenant's high-risk assets.
func Dashboard(reg *service.Registry, reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		assetStats, err := reg.Assets.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		controlStats, err := reg.Controls.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		documentStats, err := reg.Documents.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		riskStats, err := reg.Risks.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		supplierStats, err := reg.Suppliers.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		reviewStats, err := reviews.Statistics(tenant, time.Now())
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		highRisk, err := highRiskAssets(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"assets":           assetStats,
			"controls":         controlStats,
			"documents":        documentStats,
			"risks":            riskStats,
			"suppliers":        supplierStats,
			"reviews":          reviewStats,
			"high_risk_assets": highRisk,
		})
	}
}

type assetSummary struct {
	ID               uint                  `json:"id"`
	Name             string                `json:"name"`
	RiskScore        float64               `json:"risk_score"`
	ProtectionStatus risk.ProtectionStatus `json:"protection_status"`
}

func highRiskAssets(tenant *models.Tenant) ([]assetSummary, error) {
	var assets []models.Asset
	err := database.DB.
		Preload("Risks").
		Preload("Incidents").
		Preload("ProtectingControls").
		Where("tenant_id = ?", tenant.ID).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := []assetSummary{}
	for i := range assets {
		if !risk.IsHighRisk(&assets[i], now) {
			continue
		}
		summaries = append(summaries, assetSummary{
			ID:               assets[i].ID,
			Name:             assets[i].Name,
			RiskScore:        risk.ScoreAsset(&assets[i], now),
			ProtectionStatus: risk.ProtectionStatusOf(&assets[i]),
		})
	}
	return summaries, nil
}
