package models

import "gorm.io/gorm"

type SupplierStatus string

const (
	SupplierActive     SupplierStatus = "active"
	SupplierOnboarding SupplierStatus = "onboarding"
	SupplierTerminated SupplierStatus = "terminated"
)

type Supplier struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Name         string         `gorm:"size:255;not null"`
	Status       SupplierStatus `gorm:"type:varchar(32);not null;default:'active'"`
	ServiceType  string         `gorm:"size:100"`
	ContactEmail string         `gorm:"size:255"`
	Notes        string         `gorm:"type:text"`
}

func (s Supplier) OwnerTenantID() uint { return s.TenantID }
