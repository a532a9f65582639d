package tenancy

import "isms-center/internal/models"

// FetchOwn loads the records owned by the tenant itself.
type FetchOwn[T any] func(tenant *models.Tenant) ([]T, error)

// FetchWithParent loads the tenant's records plus the parent's. The own set
// must be a subset of the result; the stats aggregation relies on that.
type FetchWithParent[T any] func(tenant, parent *models.Tenant) ([]T, error)

// VisibleRecords returns the tenant's effective record set for one scope.
//
// The same decision procedure serves assets, controls, documents, risks and
// suppliers; only the scope name and the fetch pair differ per resource type:
//
//  1. no parent, or no resolver (corporate-structure capability disabled)
//     -> own records only
//  2. resolved governance is hierarchical -> own + parent records
//  3. shared / independent -> own records only
//
// A childless tenant therefore always gets exactly the own fetch, whatever
// governance is configured. Fetch errors propagate so callers can tell
// "no records" from "store unavailable".
func VisibleRecords[T any](
	resolver *Resolver,
	tenant *models.Tenant,
	scope models.GovernanceScope,
	own FetchOwn[T],
	withParent FetchWithParent[T],
) ([]T, error) {
	if tenant.Parent == nil || resolver == nil {
		return own(tenant)
	}

	model, err := resolver.Resolve(tenant, scope)
	if err != nil {
		return nil, err
	}

	if model == models.GovernanceHierarchical {
		return withParent(tenant, tenant.Parent)
	}

	// shared and independent both see own records only
	return own(tenant)
}
