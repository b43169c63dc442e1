package authz

import "testing"

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role Role
		area Area
		want bool
	}{
		// general is a superset over every area.
		{RoleGeneral, AreaFinance, true},
		{RoleGeneral, AreaMedia, true},
		// finance and custodian manage members and the store, not posts.
		{RoleFinance, AreaFinance, true},
		{RoleFinance, AreaMedia, false},
		{RoleCustodian, AreaFinance, true},
		{RoleCustodian, AreaMedia, false},
		// media manages posts only.
		{RoleMedia, AreaMedia, true},
		{RoleMedia, AreaFinance, false},
		// no role reaches no protected area.
		{NoRole, AreaFinance, false},
		{NoRole, AreaMedia, false},
		// public and login are open to everyone.
		{NoRole, AreaPublic, true},
		{NoRole, AreaLogin, true},
		{RoleMedia, AreaPublic, true},
	}
	for _, tt := range tests {
		if got := CanAccess(tt.role, tt.area); got != tt.want {
			t.Errorf("CanAccess(%q, %q) = %v, want %v", tt.role, tt.area, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"general", RoleGeneral},
		{"finance", RoleFinance},
		{"media", RoleMedia},
		{"custodian", RoleCustodian},
		{" general ", RoleGeneral},
		{"superadmin", NoRole},
		{"", NoRole},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		path string
		want Area
	}{
		{"/api/auth/login", AreaLogin},
		{"/api/auth/register", AreaLogin},
		{"/api/admin/scouts", AreaFinance},
		{"/api/admin/scouts/101", AreaFinance},
		{"/api/admin/products/abc", AreaFinance},
		{"/api/admin/roster/import", AreaFinance},
		{"/api/admin/posts", AreaMedia},
		{"/api/scouts", AreaPublic},
		{"/api/posts", AreaPublic},
		{"/", AreaPublic},
	}
	for _, tt := range tests {
		if got := ClassifyRoute(tt.path); got != tt.want {
			t.Errorf("ClassifyRoute(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDefaultLanding(t *testing.T) {
	tests := []struct {
		role Role
		want Area
	}{
		{RoleGeneral, AreaFinance},
		{RoleFinance, AreaFinance},
		{RoleCustodian, AreaFinance},
		{RoleMedia, AreaMedia},
		{NoRole, AreaPublic},
	}
	for _, tt := range tests {
		if got := DefaultLanding(tt.role); got != tt.want {
			t.Errorf("DefaultLanding(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
