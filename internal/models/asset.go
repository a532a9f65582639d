package models

import "gorm.io/gorm"

type AssetType string

const (
	AssetServer       AssetType = "server"
	AssetDatabase     AssetType = "database"
	AssetNetwork      AssetType = "network"
	AssetApplication  AssetType = "application"
	AssetCloudService AssetType = "cloud_service"
	AssetWorkstation  AssetType = "workstation"
	AssetMobileDevice AssetType = "mobile_device"
)

type Asset struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Name        string    `gorm:"size:255;not null"`
	AssetType   AssetType `gorm:"type:varchar(50);not null"`
	Owner       string    `gorm:"size:255"`
	Description string    `gorm:"type:text"`

	// CIA ratings, 0..5 each
	ConfidentialityValue int
	IntegrityValue       int
	AvailabilityValue    int

	Risks              []Risk
	Incidents          []Incident `gorm:"many2many:asset_incidents"`
	ProtectingControls []Control  `gorm:"many2many:asset_controls"`
}

func (a Asset) OwnerTenantID() uint { return a.TenantID }

// TotalValue is the summed CIA baseline (0..15).
func (a Asset) TotalValue() int {
	return a.ConfidentialityValue + a.IntegrityValue + a.AvailabilityValue
}

// HighestValue is the single highest CIA rating.
func (a Asset) HighestValue() int {
	v := a.ConfidentialityValue
	if a.IntegrityValue > v {
		v = a.IntegrityValue
	}
	if a.AvailabilityValue > v {
		v = a.AvailabilityValue
	}
	return v
}

// IsHighRiskEntity is a quick classification for collection filtering: any CIA
// rating at 4 or above, or at least one active risk. Full composite scoring
// lives in internal/risk.
func (a Asset) IsHighRiskEntity() bool {
	if a.HighestValue() >= 4 {
		return true
	}
	for _, r := range a.Risks {
		if r.Status == RiskStatusActive {
			return true
		}
	}
	return false
}
