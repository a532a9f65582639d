package handlers

import (
	"log"
	"net/http"

	"isms-center/internal/models"

	"github.com/gin-gonic/gin"
)

// session context helpers; middleware.InjectUser fills both keys

func currentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

func currentTenant(c *gin.Context) (*models.Tenant, bool) {
	val, ok := c.Get("CurrentTenant")
	if !ok {
		return nil, false
	}
	tenant, ok := val.(*models.Tenant)
	return tenant, ok && tenant != nil
}

func requireTenant(c *gin.Context) (*models.Tenant, bool) {
	tenant, ok := currentTenant(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no tenant context"})
		return nil, false
	}
	return tenant, true
}

// abortDataUnavailable keeps "store down" distinguishable from an empty
// result set: 503 with no record payload, never a silent empty list.
func abortDataUnavailable(c *gin.Context, err error) {
	log.Printf("data unavailable: %v", err)
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "data unavailable"})
}
