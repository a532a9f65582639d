package middleware

import (
	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session user and their tenant (with the full
// parent chain, so visibility decisions downstream see the hierarchy).
func InjectUser(tenants *repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)

					if tenant, err := tenants.WithAncestry(user.TenantID); err == nil {
						c.Set("CurrentTenant", tenant)
					}
				}
			}
		}

		c.Next()
	}
}
