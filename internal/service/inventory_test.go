package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isms-center/internal/models"
	"isms-center/internal/tenancy"
)

func testInventory(resolver *tenancy.Resolver) *Inventory[models.Risk] {
	return &Inventory[models.Risk]{
		Scope:    models.ScopeRisk,
		Resolver: resolver,
		Own: func(tenant *models.Tenant) ([]models.Risk, error) {
			return []models.Risk{{TenantID: tenant.ID, Title: "own"}}, nil
		},
		WithParent: func(tenant, parent *models.Tenant) ([]models.Risk, error) {
			return []models.Risk{
				{TenantID: tenant.ID, Title: "own"},
				{TenantID: parent.ID, Title: "inherited"},
			}, nil
		},
		Stats: func(*models.Tenant) (map[string]int, error) {
			return map[string]int{"active": 1}, nil
		},
	}
}

func subsidiary() *models.Tenant {
	parent := &models.Tenant{}
	parent.ID = 1
	child := &models.Tenant{Parent: parent, ParentID: &parent.ID}
	child.ID = 2
	return child
}

type stubStore struct {
	model models.GovernanceModel
}

func (s *stubStore) GovernanceForScope(uint, models.GovernanceScope) (*models.CorporateGovernance, error) {
	return nil, nil
}

func (s *stubStore) DefaultGovernance(tenantID uint) (*models.CorporateGovernance, error) {
	if s.model == "" {
		return nil, nil
	}
	return &models.CorporateGovernance{TenantID: tenantID, GovernanceModel: s.model}, nil
}

func TestInventoryVisibleFollowsGovernance(t *testing.T) {
	tenant := subsidiary()

	t.Run("hierarchical", func(t *testing.T) {
		inv := testInventory(tenancy.NewResolver(&stubStore{model: models.GovernanceHierarchical}))
		records, err := inv.Visible(tenant)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("independent", func(t *testing.T) {
		inv := testInventory(tenancy.NewResolver(&stubStore{}))
		records, err := inv.Visible(tenant)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("capability disabled", func(t *testing.T) {
		inv := testInventory(nil)
		records, err := inv.Visible(tenant)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestInventoryVisibleAnnotated(t *testing.T) {
	tenant := subsidiary()
	inv := testInventory(tenancy.NewResolver(&stubStore{model: models.GovernanceHierarchical}))

	annotated, err := inv.VisibleAnnotated(tenant)
	require.NoError(t, err)
	require.Len(t, annotated, 2)

	assert.False(t, annotated[0].Inherited)
	assert.True(t, annotated[0].Editable)
	assert.True(t, annotated[1].Inherited)
	assert.False(t, annotated[1].Editable)
}

func TestInventoryCollectStats(t *testing.T) {
	tenant := subsidiary()
	inv := testInventory(tenancy.NewResolver(&stubStore{model: models.GovernanceHierarchical}))

	stats, err := inv.CollectStats(tenant)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Own)
	assert.Equal(t, 1, stats.Inherited)
	assert.Equal(t, map[string]int{"active": 1}, stats.Breakdown)
}

func TestInventoryInheritanceInfoWithDisabledCapability(t *testing.T) {
	tenant := subsidiary()
	inv := testInventory(nil)

	info, err := inv.InheritanceInfo(tenant)
	require.NoError(t, err)
	assert.False(t, info.CanInherit)
}
