package models

import (
	"time"

	"gorm.io/gorm"
)

type RiskStatus string

const (
	RiskStatusActive    RiskStatus = "active"
	RiskStatusMitigated RiskStatus = "mitigated"
	RiskStatusAccepted  RiskStatus = "accepted"
	RiskStatusClosed    RiskStatus = "closed"
)

type Risk struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	AssetID *uint
	Asset   *Asset

	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Status      RiskStatus `gorm:"type:varchar(32);not null;default:'active'"`

	// 1..5, zero means not yet assessed
	Probability int
	Impact      int

	// residual assessment after treatment, same range
	ResidualProbability int
	ResidualImpact      int

	ReviewDate *time.Time
}

func (r Risk) OwnerTenantID() uint { return r.TenantID }

// Score is the raw probability x impact product without defaults; callers that
// need defaults for unassessed risks apply their own (see internal/risk).
func (r Risk) Score() int { return r.Probability * r.Impact }

func (r Risk) ResidualScore() int { return r.ResidualProbability * r.ResidualImpact }
