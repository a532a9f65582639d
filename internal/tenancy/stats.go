package tenancy

import "isms-center/internal/models"

// InheritanceStats splits a tenant's visible record set into own and
// inherited counts, with optional domain subtotals merged in.
type InheritanceStats struct {
	Total     int            `json:"total"`
	Own       int            `json:"own"`
	Inherited int            `json:"inherited"`
	Breakdown map[string]int `json:"breakdown,omitempty"`
}

// FetchStats loads domain-specific subtotals (status breakdowns etc.).
type FetchStats func(tenant *models.Tenant) (map[string]int, error)

// CollectStats computes total/own/inherited for one scope. Inherited is
// total minus own, which stays non-negative as long as the own fetch is a
// subset of the parent-inclusive fetch (true by construction of the
// repository query pair).
func CollectStats[T any](
	resolver *Resolver,
	tenant *models.Tenant,
	scope models.GovernanceScope,
	own FetchOwn[T],
	withParent FetchWithParent[T],
	stats FetchStats,
) (InheritanceStats, error) {
	all, err := VisibleRecords(resolver, tenant, scope, own, withParent)
	if err != nil {
		return InheritanceStats{}, err
	}
	owned, err := own(tenant)
	if err != nil {
		return InheritanceStats{}, err
	}

	result := InheritanceStats{
		Total:     len(all),
		Own:       len(owned),
		Inherited: len(all) - len(owned),
	}

	if stats != nil {
		breakdown, err := stats(tenant)
		if err != nil {
			return InheritanceStats{}, err
		}
		result.Breakdown = breakdown
	}

	return result, nil
}
