package domain

import (
	"encoding/json"
	"testing"
)

func TestPermissionUnmarshalBothShapes(t *testing.T) {
	payload := []byte(`{"id":3,"name":"agent","permissions":["Tickets:View",{"name":"Users:Edit"}]}`)

	var role Role
	if err := json.Unmarshal(payload, &role); err != nil {
		t.Fatalf("decoding role: %v", err)
	}
	if len(role.Permissions) != 2 {
		t.Fatalf("expected 2 permissions, got %d", len(role.Permissions))
	}
	if !role.HasPermission("Tickets:View") {
		t.Fatal("string-shaped permission must be granted")
	}
	if !role.HasPermission("Users:Edit") {
		t.Fatal("object-shaped permission must be granted")
	}
	if role.HasPermission("Inventory:Delete") {
		t.Fatal("ungranted permission must not be reported")
	}
}

func TestPermissionUnmarshalRejectsOtherShapes(t *testing.T) {
	var p Permission
	if err := json.Unmarshal([]byte(`42`), &p); err == nil {
		t.Fatal("numeric permission must fail to decode")
	}
}

func TestPermissionMarshalIsBareString(t *testing.T) {
	out, err := json.Marshal(Permission{Name: "Tickets:Assign"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"Tickets:Assign"` {
		t.Fatalf("expected bare string form, got %s", out)
	}
}

func TestPermissionCatalogShape(t *testing.T) {
	groups := PermissionCatalog()
	if len(groups) != 3 {
		t.Fatalf("expected 3 resource groups, got %d", len(groups))
	}
	seen := map[string]bool{}
	for _, g := range groups {
		seen[g.Resource] = true
		if len(g.Actions) != 5 {
			t.Fatalf("resource %s: expected 5 actions, got %d", g.Resource, len(g.Actions))
		}
	}
	for _, r := range []string{"Inventory", "Users", "Tickets"} {
		if !seen[r] {
			t.Fatalf("missing resource group %s", r)
		}
	}
	if PermissionName("Tickets", "View") != "Tickets:View" {
		t.Fatal("unexpected permission token format")
	}
}
