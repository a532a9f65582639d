package handlers

import (
	"net/http"

	"isms-center/internal/database"
	"isms-center/internal/models"
	"isms-center/internal/service"
	"isms-center/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// GetGovernance reports the effective governance model per scope for the
// current tenant, plus the inheritance posture of each scope.
func GetGovernance(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		if reg.Resolver == nil {
			c.JSON(http.StatusOK, gin.H{"enabled": false})
			return
		}

		scopes := gin.H{}
		for _, scope := range models.AllScopes() {
			model, err := reg.Resolver.Resolve(tenant, scope)
			if err != nil {
				abortDataUnavailable(c, err)
				return
			}
			info, err := reg.Resolver.InheritanceInfo(tenant, scope)
			if err != nil {
				abortDataUnavailable(c, err)
				return
			}
			scopes[string(scope)] = gin.H{"effective_model": model, "inheritance": info}
		}

		c.JSON(http.StatusOK, gin.H{"enabled": true, "tenant_id": tenant.ID, "scopes": scopes})
	}
}

type governanceRequest struct {
	Scope string `json:"scope"` // empty sets the tenant default
	Model string `json:"model"`
}

// SetGovernance creates or updates a governance record for the current
// tenant (admin only, enforced at the router).
func SetGovernance(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		var req governanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		scope := models.GovernanceScope(req.Scope)
		if scope != "" {
			valid := false
			for _, s := range models.AllScopes() {
				if s == scope {
					valid = true
					break
				}
			}
			if !valid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scope"})
				return
			}
		}

		model := models.GovernanceModel(req.Model)
		switch model {
		case models.GovernanceHierarchical, models.GovernanceShared, models.GovernanceIndependent:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid governance model"})
			return
		}

		gov, err := reg.Governance.SetGovernance(tenant.ID, scope, model)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		if user, ok := currentUser(c); ok {
			database.CreateAuditLog(user.ID, tenant.ID, "governance", gov.ID, "update",
				"scope="+string(scope)+" model="+string(model))
		}

		c.JSON(http.StatusOK, gov)
	}
}

// StructureTree renders the corporate group of the current tenant from its
// root parent down.
func StructureTree(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		root, err := reg.Tenants.Subtree(tenant.RootParent().ID)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		tree, err := tenancy.BuildStructureTree(reg.Governance, root)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, tree)
	}
}

// ValidateStructure reports structural problems with the current tenant's
// position in the corporate hierarchy.
func ValidateStructure(reg *service.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := requireTenant(c)
		if !ok {
			return
		}

		subtree, err := reg.Tenants.Subtree(tenant.ID)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}
		subtree.Parent = tenant.Parent

		problems, err := tenancy.ValidateStructure(reg.Governance, subtree)
		if err != nil {
			abortDataUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"valid": len(problems) == 0, "problems": problems})
	}
}
