package tenancy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"isms-center/internal/models"
)

func TestIsInherited(t *testing.T) {
	viewer := &models.Tenant{}
	viewer.ID = 2

	t.Run("own record", func(t *testing.T) {
		assert.False(t, IsInherited(models.Risk{TenantID: 2}, viewer))
	})

	t.Run("foreign record", func(t *testing.T) {
		assert.True(t, IsInherited(models.Risk{TenantID: 1}, viewer))
	})

	t.Run("unsaved record is never inherited", func(t *testing.T) {
		assert.False(t, IsInherited(models.Risk{}, viewer))
	})

	t.Run("unsaved viewer", func(t *testing.T) {
		assert.False(t, IsInherited(models.Risk{TenantID: 1}, &models.Tenant{}))
	})

	t.Run("nil viewer", func(t *testing.T) {
		assert.False(t, IsInherited(models.Risk{TenantID: 1}, nil))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.False(t, IsInherited(nil, viewer))
	})
}

func TestCanEditIsInverseOfInherited(t *testing.T) {
	viewer := &models.Tenant{}
	viewer.ID = 2

	assert.True(t, CanEdit(models.Asset{TenantID: 2}, viewer))
	assert.False(t, CanEdit(models.Asset{TenantID: 1}, viewer))
	assert.True(t, CanEdit(models.Asset{}, viewer))
}
