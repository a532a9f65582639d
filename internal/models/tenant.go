package models

import "gorm.io/gorm"

// Tenant is an organizational unit owning a private set of compliance records.
// Subsidiaries point at their parent, forming the corporate hierarchy.
type Tenant struct {
	gorm.Model
	Code string `gorm:"size:32;uniqueIndex"`
	Name string `gorm:"size:255;not null"`

	ParentID *uint
	Parent   *Tenant

	IsActive          bool `gorm:"default:true"`
	IsCorporateParent bool

	Subsidiaries []Tenant `gorm:"foreignKey:ParentID"`
}

// RootParent walks up the parent chain to the top of the corporate group.
// Assumes the chain is acyclic (enforced by tenancy.ValidateStructure).
func (t *Tenant) RootParent() *Tenant {
	current := t
	for current.Parent != nil {
		current = current.Parent
	}
	return current
}
