package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"isms-center/internal/models"
)

// GovernanceRepository is the gorm-backed tenancy.GovernanceStore. A missing
// configuration row is reported as nil, not as an error.
type GovernanceRepository struct {
	db *gorm.DB
}

func NewGovernanceRepository(db *gorm.DB) *GovernanceRepository {
	return &GovernanceRepository{db: db}
}

func (r *GovernanceRepository) GovernanceForScope(tenantID uint, scope models.GovernanceScope) (*models.CorporateGovernance, error) {
	return r.find(tenantID, scope)
}

// DefaultGovernance returns the tenant-wide default (stored with empty scope).
func (r *GovernanceRepository) DefaultGovernance(tenantID uint) (*models.CorporateGovernance, error) {
	return r.find(tenantID, "")
}

func (r *GovernanceRepository) find(tenantID uint, scope models.GovernanceScope) (*models.CorporateGovernance, error) {
	var gov models.CorporateGovernance
	err := r.db.Where("tenant_id = ? AND scope = ?", tenantID, scope).First(&gov).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load governance for tenant %d scope %q: %w", tenantID, scope, err)
	}
	return &gov, nil
}

// SetGovernance creates or updates the governance record for a tenant and
// scope (empty scope sets the tenant default).
func (r *GovernanceRepository) SetGovernance(tenantID uint, scope models.GovernanceScope, model models.GovernanceModel) (*models.CorporateGovernance, error) {
	existing, err := r.find(tenantID, scope)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.GovernanceModel = model
		if err := r.db.Save(existing).Error; err != nil {
			return nil, fmt.Errorf("update governance for tenant %d scope %q: %w", tenantID, scope, err)
		}
		return existing, nil
	}

	gov := models.CorporateGovernance{
		TenantID:        tenantID,
		Scope:           scope,
		GovernanceModel: model,
	}
	if err := r.db.Create(&gov).Error; err != nil {
		return nil, fmt.Errorf("create governance for tenant %d scope %q: %w", tenantID, scope, err)
	}
	return &gov, nil
}
