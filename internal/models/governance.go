package models

import "gorm.io/gorm"

type GovernanceModel string

const (
	GovernanceHierarchical GovernanceModel = "hierarchical"
	GovernanceShared       GovernanceModel = "shared"
	GovernanceIndependent  GovernanceModel = "independent"
)

// GovernanceScope names a resource kind that governance can be configured for.
type GovernanceScope string

const (
	ScopeAsset    GovernanceScope = "asset"
	ScopeControl  GovernanceScope = "control"
	ScopeDocument GovernanceScope = "document"
	ScopeRisk     GovernanceScope = "risk"
	ScopeSupplier GovernanceScope = "supplier"
)

// AllScopes lists every configurable resource scope.
func AllScopes() []GovernanceScope {
	return []GovernanceScope{ScopeAsset, ScopeControl, ScopeDocument, ScopeRisk, ScopeSupplier}
}

// CorporateGovernance pins a governance model to a tenant, either for a single
// resource scope or as the tenant-wide default (empty scope).
type CorporateGovernance struct {
	gorm.Model
	TenantID uint `gorm:"index:idx_governance_tenant_scope,unique"`
	Tenant   Tenant

	Scope           GovernanceScope `gorm:"size:32;index:idx_governance_tenant_scope,unique"`
	GovernanceModel GovernanceModel `gorm:"type:varchar(20);not null"`
}
