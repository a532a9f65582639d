package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/risk"
	"isms-center/internal/service"

	"github.com/gin-gonic/gin"
)

type assetRequest struct {
	Name                 string `json:"name"`
	AssetType            string `json:"asset_type"`
	Owner                string `json:"owner"`
	Description          string `json:"description"`
	ConfidentialityValue int    `json:"confidentiality_value"`
	IntegrityValue       int    `json:"integrity_value"`
	AvailabilityValue    int    `json:"availability_value"`
}

func validCIA(v int) bool { return v >= 0 && v <= 5 }

func validAssetType(t models.AssetType) bool {
	switch t {
	case models.AssetServer, models.AssetDatabase, models.AssetNetwork,
		models.AssetApplication, models.AssetCloudService,
		models.AssetWorkstation, models.AssetMobileDevice:
		return true
	}
	return false
}

func CreateAsset(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}

	var req assetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset name must be at least 3 characters"})
		return
	}
	if req.AssetType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset type is required"})
		return
	}
	if !validAssetType(models.AssetType(req.AssetType)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset type"})
		return
	}
	if !validCIA(req.ConfidentialityValue) || !validCIA(req.IntegrityValue) || !validCIA(req.AvailabilityValue) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CIA values must be between 0 and 5"})
		return
	}

	asset := models.Asset{
		TenantID:             tenant.ID,
		Name:                 req.Name,
		AssetType:            models.AssetType(req.AssetType),
		Owner:                req.Owner,
		Description:          req.Description,
		ConfidentialityValue: req.ConfidentialityValue,
		IntegrityValue:       req.IntegrityValue,
		AvailabilityValue:    req.AvailabilityValue,
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save asset"})
		return
	}

	if user, ok := currentUser(c); ok {
		database.CreateAuditLog(user.ID, tenant.ID, "asset", asset.ID, "create", "created asset: "+asset.Name)
	}

	c.JSON(http.StatusCreated, asset)
}

// AssetRiskProfile reports the composite exposure score and protection
// status of one asset visible to the tenant.
func AssetRiskProfile(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
			return
		}

		var asset models.Asset
		if err := database.DB.
			Preload("Risks").
			Preload("Incidents").
			Preload("ProtectingControls").
			First(&asset, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
			return
		}

		visible, err := canViewRecord(reg, tenant, models.ScopeAsset, asset.TenantID)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		if !visible {
			c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
			return
		}

		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"id":                asset.ID,
			"name":              asset.Name,
			"total_value":       asset.TotalValue(),
			"active_risks":      risk.ActiveRiskCount(&asset),
			"risk_score":        risk.ScoreAsset(&asset, now),
			"high_risk":         risk.IsHighRisk(&asset, now),
			"protection_status": risk.ProtectionStatusOf(&asset),
		})
	}
}

// canViewRecord checks whether a record owned by ownerTenantID is inside the
// tenant's visible set for the scope: own always, the parent's only under
// hierarchical governance.
func canViewRecord(reg *service.Registry, tenant *models.Tenant, scope models.GovernanceScope, ownerTenantID uint) (bool, error) {
	if ownerTenantID == tenant.ID {
		return true, nil
	}
	if tenant.Parent == nil || reg.Resolver == nil || ownerTenantID != tenant.Parent.ID {
		return false, nil
	}
	model, err := reg.Resolver.Resolve(tenant, scope)
	if err != nil {
		return false, err
	}
	return model == models.GovernanceHierarchical, nil
}
