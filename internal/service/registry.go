package service

import (
	"gorm.io/gorm"

	"isms-center/internal/models"
	"isms-center/internal/repository"
	"isms-center/internal/tenancy"
)

// Registry holds the per-scope inventories and the shared resolver.
type Registry struct {
	Resolver   *tenancy.Resolver
	Governance *repository.GovernanceRepository
	Tenants    *repository.TenantRepository

	Assets    *Inventory[models.Asset]
	Controls  *Inventory[models.Control]
	Documents *Inventory[models.Document]
	Risks     *Inventory[models.Risk]
	Suppliers *Inventory[models.Supplier]
}

// NewRegistry wires the five scopes to their gorm fetch pairs. When
// governanceEnabled is false the resolver stays nil and every scope serves
// own records only, which keeps single-tenant deployments inert.
func NewRegistry(db *gorm.DB, governanceEnabled bool) *Registry {
	governance := repository.NewGovernanceRepository(db)

	var resolver *tenancy.Resolver
	if governanceEnabled {
		resolver = tenancy.NewResolver(governance)
	}

	return &Registry{
		Resolver:   resolver,
		Governance: governance,
		Tenants:    repository.NewTenantRepository(db),

		Assets:    newInventory[models.Asset](db, resolver, models.ScopeAsset, "asset_type"),
		Controls:  newInventory[models.Control](db, resolver, models.ScopeControl, "status"),
		Documents: newInventory[models.Document](db, resolver, models.ScopeDocument, "status"),
		Risks:     newInventory[models.Risk](db, resolver, models.ScopeRisk, "status"),
		Suppliers: newInventory[models.Supplier](db, resolver, models.ScopeSupplier, "status"),
	}
}

func newInventory[T tenancy.TenantOwned](db *gorm.DB, resolver *tenancy.Resolver, scope models.GovernanceScope, breakdownColumn string) *Inventory[T] {
	return &Inventory[T]{
		Scope:    scope,
		Resolver: resolver,
		Own: func(tenant *models.Tenant) ([]T, error) {
			return repository.ByTenant[T](db, tenant)
		},
		WithParent: func(tenant, parent *models.Tenant) ([]T, error) {
			return repository.ByTenantIncludingParent[T](db, tenant, parent)
		},
		Stats: func(tenant *models.Tenant) (map[string]int, error) {
			return repository.ColumnBreakdown[T](db, tenant, breakdownColumn)
		},
	}
}
