package models

import "gorm.io/gorm"

type DocumentStatus string

const (
	DocumentDraft     DocumentStatus = "draft"
	DocumentInReview  DocumentStatus = "in_review"
	DocumentApproved  DocumentStatus = "approved"
	DocumentPublished DocumentStatus = "published"
)

// Document is a managed ISMS document (policy, procedure, record).
type Document struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant

	Title    string         `gorm:"size:255;not null"`
	DocType  string         `gorm:"size:64"`
	Status   DocumentStatus `gorm:"type:varchar(32);not null;default:'draft'"`
	Version  string         `gorm:"size:32"`
	FilePath string         `gorm:"size:512"`
}

func (d Document) OwnerTenantID() uint { return d.TenantID }
