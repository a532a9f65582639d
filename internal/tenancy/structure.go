package tenancy

import "isms-center/internal/models"

// Corporate structure helpers. These operate on tenant graphs whose Parent
// chain and Subsidiaries are already loaded (see repository.TenantRepository).

// IsParentOf reports whether parent is a direct or indirect parent of child.
func IsParentOf(parent, child *models.Tenant) bool {
	current := child.Parent
	for current != nil {
		if current.ID == parent.ID {
			return true
		}
		current = current.Parent
	}
	return false
}

// SameCorporateGroup reports whether two tenants share a root parent.
func SameCorporateGroup(a, b *models.Tenant) bool {
	return a.RootParent().ID == b.RootParent().ID
}

// CanAccessTenant checks cross-tenant access within the corporate structure:
// a tenant always reaches itself, parents reach their subsidiaries, and group
// peers reach each other only when the target's default governance is shared.
func CanAccessTenant(store GovernanceStore, userTenant, target *models.Tenant) (bool, error) {
	if userTenant.ID == target.ID {
		return true, nil
	}
	if IsParentOf(userTenant, target) {
		return true, nil
	}
	if SameCorporateGroup(userTenant, target) {
		gov, err := store.DefaultGovernance(target.ID)
		if err != nil {
			return false, err
		}
		return gov != nil && gov.GovernanceModel == models.GovernanceShared, nil
	}
	return false, nil
}

// HasCircularReference walks the parent chain and reports whether any tenant
// appears twice.
func HasCircularReference(tenant *models.Tenant) bool {
	visited := map[uint]bool{}
	current := tenant
	for current != nil {
		if visited[current.ID] {
			return true
		}
		visited[current.ID] = true
		current = current.Parent
	}
	return false
}

// ValidateStructure returns human-readable problems with a tenant's position
// in the corporate structure. An empty slice means the structure is sound.
func ValidateStructure(store GovernanceStore, tenant *models.Tenant) ([]string, error) {
	var problems []string

	if HasCircularReference(tenant) {
		problems = append(problems, "circular reference detected in corporate structure")
	}

	if tenant.Parent != nil {
		gov, err := store.DefaultGovernance(tenant.ID)
		if err != nil {
			return nil, err
		}
		if gov == nil {
			problems = append(problems, "subsidiaries must have a default governance model defined")
		}
	}

	if len(tenant.Subsidiaries) > 0 && !tenant.IsCorporateParent {
		problems = append(problems, "tenant with subsidiaries should be marked as corporate parent")
	}

	return problems, nil
}

// StructureNode is one tenant in the governance tree view.
type StructureNode struct {
	ID              uint                   `json:"id"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	GovernanceModel models.GovernanceModel `json:"governance_model,omitempty"`
	CorporateParent bool                   `json:"is_corporate_parent"`
	Depth           int                    `json:"depth"`
	Children        []StructureNode        `json:"children"`
}

// BuildStructureTree renders the corporate group below root, annotating each
// tenant with its default governance model.
func BuildStructureTree(store GovernanceStore, root *models.Tenant) (StructureNode, error) {
	return buildTreeNode(store, root, 0)
}

func buildTreeNode(store GovernanceStore, tenant *models.Tenant, depth int) (StructureNode, error) {
	node := StructureNode{
		ID:              tenant.ID,
		Code:            tenant.Code,
		Name:            tenant.Name,
		CorporateParent: tenant.IsCorporateParent,
		Depth:           depth,
		Children:        []StructureNode{},
	}

	gov, err := store.DefaultGovernance(tenant.ID)
	if err != nil {
		return StructureNode{}, err
	}
	if gov != nil {
		node.GovernanceModel = gov.GovernanceModel
	}

	for i := range tenant.Subsidiaries {
		child, err := buildTreeNode(store, &tenant.Subsidiaries[i], depth+1)
		if err != nil {
			return StructureNode{}, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}
