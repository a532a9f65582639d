package database

import "isms-center/internal/models"

// helper for writing the audit trail
func CreateAuditLog(userID, tenantID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		TenantID: tenantID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
