package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCISO    UserRole = "ciso"
	RoleAuditor UserRole = "auditor"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Username     string   `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
}
