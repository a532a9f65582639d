package handlers

import (
	"net/http"

	"isms-center/internal/service"
	"isms-center/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// ListRecords serves the visible record set for one scope: own records plus,
// under hierarchical governance, the parent's. Each record carries its
// inherited/editable flags; the stats block splits own from inherited.
func ListRecords[T tenancy.TenantOwned](inv *service.Inventory[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		records, err := inv.VisibleAnnotated(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		stats, err := inv.CollectStats(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		info, err := inv.InheritanceInfo(tenant)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"scope":       inv.Scope,
			"records":     records,
			"stats":       stats,
			"inheritance": info,
		})
	}
}
