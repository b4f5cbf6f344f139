package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway/gatewaytest"
	"github.com/veeda241/DAC-website/internal/modules/event/dto"
	search "github.com/veeda241/DAC-website/internal/modules/search/service"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

func newTestService(fail bool) (*eventService, *state.Club, *notify.Notifier) {
	club := state.New()
	club.Load(
		[]entity.User{{ID: "lead1", Name: "Lead", Email: "lead@dacportal.club", Role: entity.RolePresident}},
		[]entity.ClubEvent{{ID: "e1", Title: "Query Quest", Date: "2025-01-10", ImageURL: "img"}},
		nil, nil, nil,
	)

	notifier := notify.New(time.Minute, nil)
	svc := &eventService{
		gw:       &gatewaytest.Fake{Fail: fail},
		club:     club,
		perms:    session.NewPermissionChecker(),
		notifier: notifier,
		index:    search.NewIndexService(nil),
		now:      func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
	return svc, club, notifier
}

func manager() *entity.User {
	return &entity.User{ID: "lead1", Name: "Lead", Role: entity.RolePresident}
}

func TestCreateEventSuccess(t *testing.T) {
	svc, club, notifier := newTestService(false)

	created, err := svc.Create(context.Background(), manager(), dto.CreateEventRequest{
		Title: "Impact-AI-Thon", Date: "2025-09-01", Description: "Hackathon",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created event should carry the store-assigned id")
	}
	if created.Location != "TBD" {
		t.Fatalf("empty location should default to TBD, got %q", created.Location)
	}

	if len(club.Events()) != 2 {
		t.Fatalf("expected event spliced into state, have %d", len(club.Events()))
	}

	acts := club.Activity()
	if len(acts) != 1 || acts[0].Action != "Created Event" {
		t.Fatalf("expected one Created Event entry, got %+v", acts)
	}

	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifySuccess {
		t.Fatalf("expected one success toast, got %+v", toasts)
	}
}

func TestCreateEventFailureIsAtomic(t *testing.T) {
	svc, club, notifier := newTestService(true)

	_, err := svc.Create(context.Background(), manager(), dto.CreateEventRequest{
		Title: "Impact-AI-Thon", Date: "2025-09-01",
	})
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}

	if len(club.Events()) != 1 {
		t.Fatal("failed create must not change state")
	}
	if len(club.Activity()) != 0 {
		t.Fatal("failed create must not log activity")
	}

	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifyError {
		t.Fatalf("expected exactly one error toast, got %+v", toasts)
	}
}

func TestUpdateEventFailureIsAtomic(t *testing.T) {
	svc, club, notifier := newTestService(true)

	_, err := svc.Update(context.Background(), manager(), "e1", dto.UpdateEventRequest{
		Title: "Renamed", Date: "2025-01-10",
	})
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}

	e, _ := club.EventByID("e1")
	if e.Title != "Query Quest" {
		t.Fatalf("failed update must leave the event untouched, got %q", e.Title)
	}
	if len(club.Activity()) != 0 {
		t.Fatal("failed update must not log activity")
	}
	if got := len(notifier.List()); got != 1 {
		t.Fatalf("expected exactly one error toast, got %d", got)
	}
}

func TestDeleteEventFailureIsAtomic(t *testing.T) {
	svc, club, _ := newTestService(true)

	err := svc.Delete(context.Background(), manager(), "e1")
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}
	if _, ok := club.EventByID("e1"); !ok {
		t.Fatal("failed delete must keep the event in state")
	}
}

func TestMemberCannotMutateEvents(t *testing.T) {
	svc, club, notifier := newTestService(false)
	member := &entity.User{ID: "m1", Role: entity.RoleMember}

	if _, err := svc.Create(context.Background(), member, dto.CreateEventRequest{Title: "X", Date: "2025-09-01"}); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("member create should be forbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), member, "e1"); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("member delete should be forbidden, got %v", err)
	}
	if len(club.Events()) != 1 || len(notifier.List()) != 0 {
		t.Fatal("forbidden calls must leave state and toasts untouched")
	}
}

func TestUpdateEventKeepsExistingImageWhenOmitted(t *testing.T) {
	svc, club, _ := newTestService(false)

	updated, err := svc.Update(context.Background(), manager(), "e1", dto.UpdateEventRequest{
		Title: "Query Quest", Date: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ImageURL != "img" {
		t.Fatalf("omitted image should fall back to stored one, got %q", updated.ImageURL)
	}

	e, _ := club.EventByID("e1")
	if e.ImageURL != "img" {
		t.Fatalf("state image changed unexpectedly: %q", e.ImageURL)
	}
}

func TestListPartitionsAndFilters(t *testing.T) {
	svc, club, _ := newTestService(false)
	club.AppendEvent(entity.ClubEvent{ID: "e2", Title: "Future Fest", Date: "2099-01-01"})

	resp := svc.List("")
	if len(resp.Past) != 1 || len(resp.Upcoming) != 1 {
		t.Fatalf("bad partition: past=%d upcoming=%d", len(resp.Past), len(resp.Upcoming))
	}

	resp = svc.List("query")
	if len(resp.Events) != 1 || resp.Events[0].ID != "e1" {
		t.Fatalf("filter should be case-insensitive on title, got %+v", resp.Events)
	}
}
