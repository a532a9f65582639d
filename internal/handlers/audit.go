package handlers

import (
	"net/http"

	"isms-center/internal/database"
	"isms-center/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}

	var logs []models.AuditLog
	if err := database.DB.
		Preload("User").
		Where("tenant_id = ?", tenant.ID).
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error; err != nil {
		abortDataUnavailable(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
