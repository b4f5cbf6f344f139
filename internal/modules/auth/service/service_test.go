package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway/gatewaytest"
	"github.com/veeda241/DAC-website/internal/modules/auth/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

func newTestService(fail bool) (*authService, *state.Club, *notify.Notifier, *gatewaytest.Fake) {
	club := state.New()
	club.Load(
		[]entity.User{
			{ID: "admin_dac", Name: "Admin", Email: "admin@dacportal.club", Role: entity.RoleAdmin},
			{ID: "u1", Name: "Dev", Email: "dev@dacportal.club", Role: entity.RoleMember},
		},
		nil, nil, nil, nil,
	)

	fake := &gatewaytest.Fake{Fail: fail}
	notifier := notify.New(time.Minute, nil)
	provider := session.DemoProvider{AdminEmail: "admin@dacportal.club", AdminPassword: "admin123"}

	svc := &authService{
		gw:       fake,
		club:     club,
		provider: provider,
		notifier: notifier,
		secret:   "test-secret",
		tokenTTL: time.Hour,
		now:      time.Now,
	}
	return svc, club, notifier, fake
}

func TestLoginSetsSessionAndToast(t *testing.T) {
	svc, club, notifier, _ := newTestService(false)

	resp, err := svc.Login(context.Background(), dto.LoginInput{Email: "DEV@dacportal.club", Password: "whatever"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.TokenType != "Bearer" {
		t.Fatalf("bad token response: %+v", resp)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("wrong user in response: %+v", resp.User)
	}

	current := club.CurrentUser()
	if current == nil || current.ID != "u1" {
		t.Fatalf("current user not set: %+v", current)
	}

	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Message != "Welcome back, Dev!" {
		t.Fatalf("expected welcome toast, got %+v", toasts)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, club, _, _ := newTestService(false)

	if _, err := svc.Login(context.Background(), dto.LoginInput{Email: "nobody@dacportal.club", Password: "x"}); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Fatalf("unknown email should fail, got %v", err)
	}
	if _, err := svc.Login(context.Background(), dto.LoginInput{Email: "admin@dacportal.club", Password: "wrong"}); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Fatalf("bad admin password should fail, got %v", err)
	}
	if club.CurrentUser() != nil {
		t.Fatal("failed logins must not set a session")
	}
}

func TestRegisterDuplicateEmailSkipsGateway(t *testing.T) {
	svc, club, _, fake := newTestService(false)

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Imposter", Email: "DEV@dacportal.club", Password: "passw0rd",
	})
	if err == nil {
		t.Fatal("duplicate email must be rejected")
	}
	if fake.Calls != 0 {
		t.Fatalf("duplicate check must run before the remote call, saw %d calls", fake.Calls)
	}
	if len(club.Users()) != 2 {
		t.Fatal("rejected registration must not change state")
	}
}

func TestRegisterSuccess(t *testing.T) {
	svc, club, notifier, _ := newTestService(false)

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Newbie", Email: "new@dacportal.club", Password: "passw0rd",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Role != entity.RoleMember {
		t.Fatalf("new accounts must be plain members, got %s", resp.User.Role)
	}
	if resp.User.Avatar == "" {
		t.Fatal("new accounts get a generated avatar")
	}

	if len(club.Users()) != 3 {
		t.Fatal("registered user should be in state")
	}
	if current := club.CurrentUser(); current == nil || current.ID != resp.User.ID {
		t.Fatal("registration should log the new member in")
	}

	acts := club.Activity()
	if len(acts) != 1 || acts[0].Action != "New Member Joined" {
		t.Fatalf("expected join activity, got %+v", acts)
	}
	if len(notifier.List()) != 1 {
		t.Fatal("expected a single welcome toast")
	}
}

func TestRegisterGatewayFailureIsAtomic(t *testing.T) {
	svc, club, notifier, _ := newTestService(true)

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Name: "Newbie", Email: "new@dacportal.club", Password: "passw0rd",
	})
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}
	if len(club.Users()) != 2 || club.CurrentUser() != nil {
		t.Fatal("failed registration must not change state")
	}
	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifyError {
		t.Fatalf("expected exactly one error toast, got %+v", toasts)
	}
}

func TestLogoutClearsSessionAndToasts(t *testing.T) {
	svc, club, notifier, _ := newTestService(false)

	if _, err := svc.Login(context.Background(), dto.LoginInput{Email: "dev@dacportal.club", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	club.RecordActivity("u1", "Created Event", "Query Quest")

	actor, _ := club.UserByID("u1")
	svc.Logout(&actor)

	if club.CurrentUser() != nil {
		t.Fatal("logout must clear the session")
	}
	if len(notifier.List()) != 0 {
		t.Fatal("logout must drop pending toasts")
	}
	if len(club.Activity()) != 1 {
		t.Fatal("logout must keep the activity feed")
	}
}
