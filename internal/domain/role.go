package domain

import (
	"encoding/json"
	"fmt"
)

// Permission is a grantable "<Resource>:<Action>" capability. The backend
// serializes role permissions either as bare strings or as objects carrying
// a name field; both shapes normalize into Permission at the decoding
// boundary.
type Permission struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts "Tickets:View" and {"name": "Tickets:View"}.
func (p *Permission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("permission must be a string or a {name} object: %w", err)
	}
	p.Name = obj.Name
	return nil
}

// MarshalJSON always writes the bare string form, which is what role
// submission expects.
func (p Permission) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// Role groups permissions under a name.
type Role struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the role grants the named capability.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}

// PermissionGroup is one resource category of the editor catalog.
type PermissionGroup struct {
	Resource string
	Actions  []string
}

// permission catalog resources and actions; fixed, never fetched.
var permissionCatalog = []PermissionGroup{
	{Resource: "Inventory", Actions: []string{"View", "Create", "Edit", "Delete", "Assign"}},
	{Resource: "Users", Actions: []string{"View", "Create", "Edit", "Delete", "Assign"}},
	{Resource: "Tickets", Actions: []string{"View", "Create", "Edit", "Delete", "Assign"}},
}

// PermissionCatalog returns the hardcoded grantable capabilities grouped by
// resource.
func PermissionCatalog() []PermissionGroup {
	out := make([]PermissionGroup, len(permissionCatalog))
	copy(out, permissionCatalog)
	return out
}

// PermissionName builds the canonical "<Resource>:<Action>" token.
func PermissionName(resource, action string) string {
	return resource + ":" + action
}
