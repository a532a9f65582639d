// Package service wires the tenancy and risk engines to the gorm
// repositories. The five resource scopes share one generic inventory type
// instead of five near-identical services.
package service

import (
	"isms-center/internal/models"
	"isms-center/internal/tenancy"
)

// Inventory binds one resource scope to the visibility resolver and its
// fetch pair. Resolver is nil when the corporate-structure capability is
// disabled; visibility then degrades to own records only.
type Inventory[T tenancy.TenantOwned] struct {
	Scope      models.GovernanceScope
	Resolver   *tenancy.Resolver
	Own        tenancy.FetchOwn[T]
	WithParent tenancy.FetchWithParent[T]
	Stats      tenancy.FetchStats
}

// Visible returns the tenant's effective record set for this scope.
func (inv *Inventory[T]) Visible(tenant *models.Tenant) ([]T, error) {
	return tenancy.VisibleRecords(inv.Resolver, tenant, inv.Scope, inv.Own, inv.WithParent)
}

// CollectStats returns own/inherited counts plus the scope's domain
// breakdown.
func (inv *Inventory[T]) CollectStats(tenant *models.Tenant) (tenancy.InheritanceStats, error) {
	return tenancy.CollectStats(inv.Resolver, tenant, inv.Scope, inv.Own, inv.WithParent, inv.Stats)
}

// InheritanceInfo reports whether this tenant can inherit records for the
// scope.
func (inv *Inventory[T]) InheritanceInfo(tenant *models.Tenant) (tenancy.InheritanceInfo, error) {
	return inv.Resolver.InheritanceInfo(tenant, inv.Scope)
}

// Annotated pairs a record with its ownership classification for API output.
type Annotated[T tenancy.TenantOwned] struct {
	Record    T    `json:"record"`
	Inherited bool `json:"inherited"`
	Editable  bool `json:"editable"`
}

// VisibleAnnotated returns the visible set with per-record inherited and
// editable flags from the viewing tenant's perspective.
func (inv *Inventory[T]) VisibleAnnotated(tenant *models.Tenant) ([]Annotated[T], error) {
	records, err := inv.Visible(tenant)
	if err != nil {
		return nil, err
	}

	annotated := make([]Annotated[T], 0, len(records))
	for _, record := range records {
		inherited := tenancy.IsInherited(record, tenant)
		annotated = append(annotated, Annotated[T]{
			Record:    record,
			Inherited: inherited,
			Editable:  !inherited,
		})
	}
	return annotated, nil
}
