package member

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway/gatewaytest"
	"github.com/veeda241/DAC-website/internal/modules/member/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

func newTestService(fail bool) (*memberService, *state.Club, *notify.Notifier) {
	club := state.New()
	club.Load(
		[]entity.User{
			{ID: "admin_dac", Name: "Admin", Email: "admin@dacportal.club", Role: entity.RoleAdmin},
			{ID: "u1", Name: "Dev", Email: "dev@dacportal.club", Role: entity.RoleMember},
		},
		nil,
		[]entity.Task{
			{ID: "t1", Title: "Book venue", AssigneeID: "u1", Status: entity.TaskPending},
			{ID: "t2", Title: "Design poster", AssigneeID: "admin_dac", Status: entity.TaskPending},
		},
		nil, nil,
	)

	notifier := notify.New(time.Minute, nil)
	svc := &memberService{
		gw:       &gatewaytest.Fake{Fail: fail},
		club:     club,
		perms:    session.NewPermissionChecker(),
		notifier: notifier,
	}
	return svc, club, notifier
}

func admin() *entity.User {
	return &entity.User{ID: "admin_dac", Name: "Admin", Role: entity.RoleAdmin}
}

func TestUpdateOwnProfile(t *testing.T) {
	svc, club, notifier := newTestService(false)
	actor := &entity.User{ID: "u1", Name: "Dev", Role: entity.RoleMember}

	updated, err := svc.UpdateProfile(context.Background(), actor, "u1", dto.UpdateProfileRequest{
		Name: "Devi", Email: "devi@dacportal.club",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Devi" {
		t.Fatalf("name not updated: %q", updated.Name)
	}

	acts := club.Activity()
	if len(acts) != 1 || acts[0].Action != "Updated Profile" || acts[0].Details != "Changed account details" {
		t.Fatalf("expected Updated Profile entry, got %+v", acts)
	}

	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifySuccess {
		t.Fatalf("self update should toast success, got %+v", toasts)
	}
}

func TestAdminUpdatingOthersToastsInfoWithoutActivity(t *testing.T) {
	svc, club, notifier := newTestService(false)

	_, err := svc.UpdateProfile(context.Background(), admin(), "u1", dto.UpdateProfileRequest{
		Name: "Dev", Email: "dev@dacportal.club",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(club.Activity()) != 0 {
		t.Fatal("editing another profile does not log Updated Profile")
	}
	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifyInfo {
		t.Fatalf("expected info toast, got %+v", toasts)
	}
}

func TestMemberCannotEditOthers(t *testing.T) {
	svc, _, _ := newTestService(false)
	actor := &entity.User{ID: "u1", Role: entity.RoleMember}

	_, err := svc.UpdateProfile(context.Background(), actor, "admin_dac", dto.UpdateProfileRequest{
		Name: "Hax", Email: "hax@dacportal.club",
	})
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestChangeRoleAdminOnly(t *testing.T) {
	svc, club, _ := newTestService(false)

	president := &entity.User{ID: "u1", Role: entity.RolePresident}
	if _, err := svc.ChangeRole(context.Background(), president, "u1", entity.RoleAdmin); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("non-admin role change should be forbidden, got %v", err)
	}

	updated, err := svc.ChangeRole(context.Background(), admin(), "u1", entity.RoleVicePresident)
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if updated.Role != entity.RoleVicePresident {
		t.Fatalf("role not applied: %s", updated.Role)
	}

	acts := club.Activity()
	if len(acts) != 1 || acts[0].Action != "Updated Role" {
		t.Fatalf("expected Updated Role entry, got %+v", acts)
	}
	if acts[0].Details != "Changed Dev's role to Vice President" {
		t.Fatalf("role should be humanized in details, got %q", acts[0].Details)
	}
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newTestService(false)
	if _, err := svc.ChangeRole(context.Background(), admin(), "u1", "SUPERUSER"); err == nil {
		t.Fatal("unknown role must be rejected")
	}
}

func TestDeleteUserUnassignsTasks(t *testing.T) {
	svc, club, notifier := newTestService(false)

	if err := svc.DeleteUser(context.Background(), admin(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := club.UserByID("u1"); ok {
		t.Fatal("user should be gone")
	}
	t1, _ := club.TaskByID("t1")
	if t1.AssigneeID != "" {
		t.Fatalf("deleted user's task should be unassigned, got %q", t1.AssigneeID)
	}
	t2, _ := club.TaskByID("t2")
	if t2.AssigneeID != "admin_dac" {
		t.Fatal("other assignments must be untouched")
	}

	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Message != "User removed and tasks unassigned" {
		t.Fatalf("expected removal toast, got %+v", toasts)
	}
}

func TestDeleteUserFailureIsAtomic(t *testing.T) {
	svc, club, notifier := newTestService(true)

	err := svc.DeleteUser(context.Background(), admin(), "u1")
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}

	if _, ok := club.UserByID("u1"); !ok {
		t.Fatal("failed delete must keep the user")
	}
	t1, _ := club.TaskByID("t1")
	if t1.AssigneeID != "u1" {
		t.Fatal("failed delete must not unassign tasks")
	}
	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifyError {
		t.Fatalf("expected exactly one error toast, got %+v", toasts)
	}
}

func TestTeamAndMentorsComeFromCatalog(t *testing.T) {
	svc, _, _ := newTestService(false)

	team := svc.Team()
	if len(team) == 0 {
		t.Fatal("team listing should never be empty")
	}
	mentors := svc.Mentors()
	if len(mentors) == 0 {
		t.Fatal("mentor listing should never be empty")
	}

	// The catalog hands out copies.
	team[0].Name = "Vandal"
	if svc.Team()[0].Name == "Vandal" {
		t.Fatal("mutating a listing must not touch the catalog")
	}
}
