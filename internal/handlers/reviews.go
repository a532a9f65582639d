package handlers

import (
	"net/http"
	"strconv"
	"time"

	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/risk"
	"isms-center/internal/service"
	"isms-center/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// review workflow endpoints; all operate on the tenant's own risks only

func OverdueReviews(reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		risks, err := reviews.Overdue(tenant, time.Now())
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"risks": risks, "count": len(risks)})
	}
}

func UpcomingReviews(reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		daysAhead := 30
		if raw := c.Query("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
				return
			}
			daysAhead = parsed
		}

		risks, err := reviews.Upcoming(tenant, time.Now(), daysAhead)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"risks": risks, "count": len(risks), "days_ahead": daysAhead})
	}
}

func ScheduleReview(reg *service.Registry, reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk id"})
			return
		}

		var r models.Risk
		if err := database.DB.First(&r, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk not found"})
			return
		}

		// records outside the visible set are indistinguishable from absent
		// ones; 403 is reserved for visible-but-inherited records
		visible, err := canViewRecord(reg, tenant, models.ScopeRisk, r.TenantID)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		if !visible {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk not found"})
			return
		}

		if !tenancy.CanEdit(r, tenant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "inherited records are read-only"})
			return
		}

		next, err := reviews.ScheduleNext(&r, time.Now())
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		if user, ok := currentUser(c); ok {
			database.CreateAuditLog(user.ID, tenant.ID, "risk", r.ID, "schedule_review",
				"next review on "+next.Format("2006-01-02"))
		}

		c.JSON(http.StatusOK, gin.H{
			"risk_id":     r.ID,
			"level":       risk.ReviewLevel(&r),
			"next_review": next.Format("2006-01-02"),
		})
	}
}

// BulkScheduleReviews assigns review dates to every risk without one, in a
// single transaction.
func BulkScheduleReviews(reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		count, err := reviews.BulkSchedule(tenant, time.Now())
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		if user, ok := currentUser(c); ok {
			database.CreateAuditLog(user.ID, tenant.ID, "risk", 0, "bulk_schedule_reviews",
				"scheduled "+strconv.Itoa(count)+" risks")
		}

		c.JSON(http.StatusOK, gin.H{"scheduled": count})
	}
}

func ReviewStatistics(reviews *service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		stats, err := reviews.Statistics(tenant, time.Now())
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
