package tenancy

import "isms-center/internal/models"

// TenantOwned is the capability a record needs for ownership classification.
type TenantOwned interface {
	OwnerTenantID() uint
}

// IsInherited reports whether the record belongs to a tenant other than the
// viewer. Ownership is decided by id equality only. Records without a
// persisted owner, or viewers without a persisted id, are never inherited:
// an unsaved entity cannot yet be foreign.
func IsInherited(record TenantOwned, viewer *models.Tenant) bool {
	if record == nil || viewer == nil {
		return false
	}
	recordTenantID := record.OwnerTenantID()
	if recordTenantID == 0 || viewer.ID == 0 {
		return false
	}
	return recordTenantID != viewer.ID
}

// CanEdit is the write-side of the same classification: inherited records are
// read-only for the viewing tenant.
func CanEdit(record TenantOwned, viewer *models.Tenant) bool {
	return !IsInherited(record, viewer)
}
