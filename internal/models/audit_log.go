package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	TenantID uint `gorm:"index"`

	Entity   string `gorm:"size:50;not null"` // "asset", "risk", "governance" etc.
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "update", "schedule_review" etc.
	Details  string `gorm:"type:text"`
}
