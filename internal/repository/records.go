// Package repository implements the tenant-filtered and parent-inclusive
// queries the visibility resolver is parameterized with, plus the governance
// configuration store. All functions wrap gorm errors so callers can tell an
// empty result from an unavailable store.
package repository

import (
	"fmt"

	"gorm.io/gorm"

	"isms-center/internal/models"
)

// ByTenant loads the records of one resource type owned by the tenant itself.
func ByTenant[T any](db *gorm.DB, tenant *models.Tenant) ([]T, error) {
	var records []T
	err := db.Where("tenant_id = ?", tenant.ID).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load records for tenant %d: %w", tenant.ID, err)
	}
	return records, nil
}

// ByTenantIncludingParent loads the tenant's records plus the parent's. The
// own set is a subset of the result by construction, which the inheritance
// stats rely on.
func ByTenantIncludingParent[T any](db *gorm.DB, tenant, parent *models.Tenant) ([]T, error) {
	tenantIDs := []uint{tenant.ID}
	if parent != nil {
		tenantIDs = append(tenantIDs, parent.ID)
	}

	var records []T
	err := db.Where("tenant_id IN ?", tenantIDs).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load records for tenant %d including parent: %w", tenant.ID, err)
	}
	return records, nil
}

// ColumnBreakdown counts a tenant's rows of one resource type grouped by the
// given column. Callers pass a fixed column name ("status", "asset_type");
// never user input.
func ColumnBreakdown[T any](db *gorm.DB, tenant *models.Tenant, column string) (map[string]int, error) {
	var model T
	var rows []struct {
		Value string
		Count int
	}

	err := db.Model(&model).
		Select(column+" as value, count(*) as count").
		Where("tenant_id = ?", tenant.ID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("breakdown by %s for tenant %d: %w", column, tenant.ID, err)
	}

	breakdown := make(map[string]int, len(rows))
	for _, row := range rows {
		breakdown[row.Value] = row.Count
	}
	return breakdown, nil
}
