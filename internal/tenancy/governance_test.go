package tenancy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isms-center/internal/models"
)

// fakeGovernanceStore serves governance records from memory.
type fakeGovernanceStore struct {
	overrides map[string]models.GovernanceModel // "tenantID/scope"
	defaults  map[uint]models.GovernanceModel
	err       error
}

func scopeKey(tenantID uint, scope models.GovernanceScope) string {
	return fmt.Sprintf("%d/%s", tenantID, scope)
}

func (f *fakeGovernanceStore) GovernanceForScope(tenantID uint, scope models.GovernanceScope) (*models.CorporateGovernance, error) {
	if f.err != nil {
		return nil, f.err
	}
	if model, ok := f.overrides[scopeKey(tenantID, scope)]; ok {
		return &models.CorporateGovernance{TenantID: tenantID, Scope: scope, GovernanceModel: model}, nil
	}
	return nil, nil
}

func (f *fakeGovernanceStore) DefaultGovernance(tenantID uint) (*models.CorporateGovernance, error) {
	if f.err != nil {
		return nil, f.err
	}
	if model, ok := f.defaults[tenantID]; ok {
		return &models.CorporateGovernance{TenantID: tenantID, GovernanceModel: model}, nil
	}
	return nil, nil
}

func tenantWithParent(id, parentID uint) *models.Tenant {
	parent := &models.Tenant{}
	parent.ID = parentID
	child := &models.Tenant{Parent: parent, ParentID: &parentID}
	child.ID = id
	return child
}

func TestResolveScopeOverrideWins(t *testing.T) {
	store := &fakeGovernanceStore{
		overrides: map[string]models.GovernanceModel{
			scopeKey(2, models.ScopeRisk): models.GovernanceHierarchical,
		},
		defaults: map[uint]models.GovernanceModel{2: models.GovernanceIndependent},
	}
	resolver := NewResolver(store)
	tenant := tenantWithParent(2, 1)

	model, err := resolver.Resolve(tenant, models.ScopeRisk)
	require.NoError(t, err)
	assert.Equal(t, models.GovernanceHierarchical, model)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	store := &fakeGovernanceStore{
		defaults: map[uint]models.GovernanceModel{2: models.GovernanceShared},
	}
	resolver := NewResolver(store)
	tenant := tenantWithParent(2, 1)

	model, err := resolver.Resolve(tenant, models.ScopeAsset)
	require.NoError(t, err)
	assert.Equal(t, models.GovernanceShared, model)
}

func TestResolveUnconfiguredTenantIsIndependent(t *testing.T) {
	resolver := NewResolver(&fakeGovernanceStore{})
	tenant := tenantWithParent(2, 1)

	model, err := resolver.Resolve(tenant, models.ScopeDocument)
	require.NoError(t, err)
	assert.Equal(t, models.GovernanceIndependent, model)
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := NewResolver(&fakeGovernanceStore{err: storeErr})
	tenant := tenantWithParent(2, 1)

	_, err := resolver.Resolve(tenant, models.ScopeRisk)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestInheritanceInfo(t *testing.T) {
	store := &fakeGovernanceStore{
		defaults: map[uint]models.GovernanceModel{2: models.GovernanceHierarchical},
	}
	resolver := NewResolver(store)

	t.Run("no parent", func(t *testing.T) {
		tenant := &models.Tenant{}
		tenant.ID = 1

		info, err := resolver.InheritanceInfo(tenant, models.ScopeRisk)
		require.NoError(t, err)
		assert.False(t, info.HasParent)
		assert.False(t, info.CanInherit)
	})

	t.Run("hierarchical child", func(t *testing.T) {
		tenant := tenantWithParent(2, 1)

		info, err := resolver.InheritanceInfo(tenant, models.ScopeRisk)
		require.NoError(t, err)
		assert.True(t, info.HasParent)
		assert.True(t, info.CanInherit)
		assert.Equal(t, models.GovernanceHierarchical, info.Model)
	})

	t.Run("independent child", func(t *testing.T) {
		tenant := tenantWithParent(3, 1)

		info, err := resolver.InheritanceInfo(tenant, models.ScopeRisk)
		require.NoError(t, err)
		assert.True(t, info.HasParent)
		assert.False(t, info.CanInherit)
		assert.Equal(t, models.GovernanceIndependent, info.Model)
	})
}
