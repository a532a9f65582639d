package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"isms-center/internal/models"
)

// ErrTenantNotFound marks lookups for tenants that do not exist, as opposed
// to the store being unavailable.
var ErrTenantNotFound = errors.New("tenant not found")

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// WithAncestry loads a tenant and its full parent chain. The chain is loaded
// iteratively; cycles are the concern of tenancy.ValidateStructure, but the
// loader still refuses to loop forever.
func (r *TenantRepository) WithAncestry(id uint) (*models.Tenant, error) {
	tenant, err := r.byID(id)
	if err != nil {
		return nil, err
	}

	current := tenant
	seen := map[uint]bool{tenant.ID: true}
	for current.ParentID != nil && !seen[*current.ParentID] {
		parent, err := r.byID(*current.ParentID)
		if err != nil {
			return nil, err
		}
		seen[parent.ID] = true
		current.Parent = parent
		current = parent
	}

	return tenant, nil
}

// Subtree loads a tenant with all its subsidiaries, recursively.
func (r *TenantRepository) Subtree(id uint) (*models.Tenant, error) {
	tenant, err := r.byID(id)
	if err != nil {
		return nil, err
	}
	if err := r.loadSubsidiaries(tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) loadSubsidiaries(tenant *models.Tenant) error {
	var children []models.Tenant
	err := r.db.Where("parent_id = ?", tenant.ID).Order("name asc").Find(&children).Error
	if err != nil {
		return fmt.Errorf("load subsidiaries of tenant %d: %w", tenant.ID, err)
	}
	for i := range children {
		if err := r.loadSubsidiaries(&children[i]); err != nil {
			return err
		}
	}
	tenant.Subsidiaries = children
	return nil
}

func (r *TenantRepository) byID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("tenant %d: %w", id, ErrTenantNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load tenant %d: %w", id, err)
	}
	return &tenant, nil
}
