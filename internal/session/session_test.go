package session

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/veeda241/DAC-website/internal/entity"
)

func TestCanManageContentPerRole(t *testing.T) {
	perms := NewPermissionChecker()

	for _, role := range entity.AllRoles {
		u := &entity.User{ID: "u1", Role: role}
		want := role != entity.RoleMember
		if got := perms.CanManageContent(u); got != want {
			t.Fatalf("CanManageContent(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestPermissionsNilUser(t *testing.T) {
	perms := NewPermissionChecker()
	if perms.CanManageContent(nil) {
		t.Fatal("nil user must not manage content")
	}
	if perms.IsAdmin(nil) {
		t.Fatal("nil user must not be admin")
	}
}

func TestIsAdminOnlyForAdminRole(t *testing.T) {
	perms := NewPermissionChecker()
	for _, role := range entity.AllRoles {
		u := &entity.User{ID: "u1", Role: role}
		want := role == entity.RoleAdmin
		if got := perms.IsAdmin(u); got != want {
			t.Fatalf("IsAdmin(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestDemoProviderAdminNeedsExactPassword(t *testing.T) {
	p := DemoProvider{AdminEmail: "admin@dacportal.club", AdminPassword: "admin123"}
	admin := entity.User{ID: "admin_dac", Email: "Admin@DACportal.club", Role: entity.RoleAdmin}

	if !p.Verify(admin, "admin123") {
		t.Fatal("admin with configured password should verify")
	}
	if p.Verify(admin, "wrong") {
		t.Fatal("admin with wrong password must not verify")
	}
	if p.Verify(admin, "") {
		t.Fatal("admin with empty password must not verify")
	}
}

func TestDemoProviderMemberAcceptsAnyNonEmptyPassword(t *testing.T) {
	p := DemoProvider{AdminEmail: "admin@dacportal.club", AdminPassword: "admin123"}
	member := entity.User{ID: "u1", Email: "dev@dacportal.club", Role: entity.RoleMember}

	if !p.Verify(member, "anything") {
		t.Fatal("non-admin with non-empty password should verify")
	}
	if p.Verify(member, "") {
		t.Fatal("empty password must never verify")
	}
}

func TestBcryptProvider(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	p := BcryptProvider{Hashes: map[string]string{"u1": string(hash)}}

	if !p.Verify(entity.User{ID: "u1"}, "s3cret") {
		t.Fatal("correct password should verify")
	}
	if p.Verify(entity.User{ID: "u1"}, "nope") {
		t.Fatal("wrong password must not verify")
	}
	if p.Verify(entity.User{ID: "ghost"}, "s3cret") {
		t.Fatal("unknown user must not verify")
	}
}
