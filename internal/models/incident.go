package models

import (
	"time"

	"gorm.io/gorm"
)

type IncidentSeverity string

const (
	IncidentLow      IncidentSeverity = "low"
	IncidentMedium   IncidentSeverity = "medium"
	IncidentHigh     IncidentSeverity = "high"
	IncidentCritical IncidentSeverity = "critical"
)

type Incident struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Title       string           `gorm:"size:255;not null"`
	Severity    IncidentSeverity `gorm:"type:varchar(32);not null"`
	Status      string           `gorm:"size:32;not null;default:'open'"`
	Description string           `gorm:"type:text"`

	DetectedAt *time.Time

	AffectedAssets []Asset `gorm:"many2many:asset_incidents"`
}

func (i Incident) OwnerTenantID() uint { return i.TenantID }
