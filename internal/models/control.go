package models

import "gorm.io/gorm"

type ControlStatus string

const (
	ControlPlanned       ControlStatus = "planned"
	ControlImplemented   ControlStatus = "implemented"
	ControlNotApplicable ControlStatus = "not_applicable"
)

// Control is a safeguard from the tenant's statement of applicability
// (Annex A reference or custom).
type Control struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Code        string        `gorm:"size:32"`
	Name        string        `gorm:"size:255;not null"`
	Status      ControlStatus `gorm:"type:varchar(32);not null;default:'planned'"`
	Description string        `gorm:"type:text"`

	ProtectedAssets []Asset `gorm:"many2many:asset_controls"`
}

func (c Control) OwnerTenantID() uint { return c.TenantID }
