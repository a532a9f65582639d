// Package tenancy decides which records a tenant can see and edit inside a
// parent/subsidiary corporate hierarchy. All decisions are driven by the
// per-tenant governance configuration; the package itself holds no state.
package tenancy

import (
	"fmt"

	"isms-center/internal/models"
)

// GovernanceStore is the read side of governance configuration. Lookups
// return nil (not an error) when nothing is configured.
type GovernanceStore interface {
	GovernanceForScope(tenantID uint, scope models.GovernanceScope) (*models.CorporateGovernance, error)
	DefaultGovernance(tenantID uint) (*models.CorporateGovernance, error)
}

// Resolver resolves the effective governance model for a tenant and scope.
type Resolver struct {
	store GovernanceStore
}

func NewResolver(store GovernanceStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve checks the scope-specific override first, then the tenant default.
// A fully unconfigured tenant resolves to independent: no inheritance, and
// never an error.
func (r *Resolver) Resolve(tenant *models.Tenant, scope models.GovernanceScope) (models.GovernanceModel, error) {
	gov, err := r.store.GovernanceForScope(tenant.ID, scope)
	if err != nil {
		return "", fmt.Errorf("governance lookup for tenant %d scope %s: %w", tenant.ID, scope, err)
	}
	if gov == nil {
		gov, err = r.store.DefaultGovernance(tenant.ID)
		if err != nil {
			return "", fmt.Errorf("default governance lookup for tenant %d: %w", tenant.ID, err)
		}
	}
	if gov == nil {
		return models.GovernanceIndependent, nil
	}
	return gov.GovernanceModel, nil
}

// InheritanceInfo describes whether a tenant can inherit records for a scope.
type InheritanceInfo struct {
	HasParent  bool                   `json:"has_parent"`
	CanInherit bool                   `json:"can_inherit"`
	Model      models.GovernanceModel `json:"governance_model,omitempty"`
}

// InheritanceInfo reports the effective inheritance posture for one scope.
// The resolver may be nil when the corporate-structure capability is disabled.
func (r *Resolver) InheritanceInfo(tenant *models.Tenant, scope models.GovernanceScope) (InheritanceInfo, error) {
	if tenant.Parent == nil || r == nil {
		return InheritanceInfo{}, nil
	}
	model, err := r.Resolve(tenant, scope)
	if err != nil {
		return InheritanceInfo{}, err
	}
	return InheritanceInfo{
		HasParent:  true,
		CanInherit: model == models.GovernanceHierarchical,
		Model:      model,
	}, nil
}
