package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isms-center/internal/models"
	"isms-center/internal/service"
	"isms-center/internal/tenancy"
)

type stubGovernanceStore struct {
	model models.GovernanceModel
}

func (s *stubGovernanceStore) GovernanceForScope(uint, models.GovernanceScope) (*models.CorporateGovernance, error) {
	return nil, nil
}

func (s *stubGovernanceStore) DefaultGovernance(tenantID uint) (*models.CorporateGovernance, error) {
	if s.model == "" {
		return nil, nil
	}
	return &models.CorporateGovernance{TenantID: tenantID, GovernanceModel: s.model}, nil
}

func registryWith(model models.GovernanceModel) *service.Registry {
	return &service.Registry{Resolver: tenancy.NewResolver(&stubGovernanceStore{model: model})}
}

func subsidiaryTenant(id, parentID uint) *models.Tenant {
	parent := &models.Tenant{}
	parent.ID = parentID
	tenant := &models.Tenant{Parent: parent, ParentID: &parentID}
	tenant.ID = id
	return tenant
}

// Records owned by tenants outside the visible set must be reported exactly
// like absent ones; handlers rely on this check before any 403.
func TestCanViewRecord(t *testing.T) {
	tenant := subsidiaryTenant(2, 1)

	t.Run("own record", func(t *testing.T) {
		ok, err := canViewRecord(registryWith(""), tenant, models.ScopeRisk, 2)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("parent record under hierarchical", func(t *testing.T) {
		ok, err := canViewRecord(registryWith(models.GovernanceHierarchical), tenant, models.ScopeRisk, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("parent record under independent", func(t *testing.T) {
		ok, err := canViewRecord(registryWith(""), tenant, models.ScopeRisk, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("sibling record even under hierarchical", func(t *testing.T) {
		// tenant 3 is a peer subsidiary, not the parent
		ok, err := canViewRecord(registryWith(models.GovernanceHierarchical), tenant, models.ScopeRisk, 3)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unrelated tenant record", func(t *testing.T) {
		ok, err := canViewRecord(registryWith(models.GovernanceHierarchical), tenant, models.ScopeRisk, 9)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("capability disabled", func(t *testing.T) {
		ok, err := canViewRecord(&service.Registry{}, tenant, models.ScopeRisk, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
