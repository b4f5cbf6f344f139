package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway/gatewaytest"
	"github.com/veeda241/DAC-website/internal/modules/task/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

func newTestService(fail bool) (*taskService, *state.Club, *notify.Notifier) {
	club := state.New()
	club.Load(
		[]entity.User{{ID: "lead1", Name: "Lead", Email: "lead@dacportal.club", Role: entity.RoleTechnicalLead}},
		nil,
		[]entity.Task{{ID: "t1", Title: "Book venue", AssigneeID: "lead1", Status: entity.TaskPending}},
		nil, nil,
	)

	notifier := notify.New(time.Minute, nil)
	svc := &taskService{
		gw:       &gatewaytest.Fake{Fail: fail},
		club:     club,
		perms:    session.NewPermissionChecker(),
		notifier: notifier,
	}
	return svc, club, notifier
}

func lead() *entity.User {
	return &entity.User{ID: "lead1", Name: "Lead", Role: entity.RoleTechnicalLead}
}

func TestCreateTaskStartsPending(t *testing.T) {
	svc, club, _ := newTestService(false)

	created, err := svc.Create(context.Background(), lead(), dto.CreateTaskRequest{
		Title: "Design poster", AssigneeID: "lead1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != entity.TaskPending {
		t.Fatalf("new tasks must start pending, got %s", created.Status)
	}

	acts := club.Activity()
	if len(acts) != 1 || acts[0].Action != "Assigned Task" {
		t.Fatalf("expected Assigned Task entry, got %+v", acts)
	}
	if acts[0].Details != "Design poster to Lead" {
		t.Fatalf("details should name the assignee, got %q", acts[0].Details)
	}
}

func TestCreateTaskUnassigned(t *testing.T) {
	svc, club, _ := newTestService(false)

	if _, err := svc.Create(context.Background(), lead(), dto.CreateTaskRequest{Title: "Sweep lab"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	acts := club.Activity()
	if acts[0].Details != "Sweep lab to Unassigned" {
		t.Fatalf("unassigned tasks should say so, got %q", acts[0].Details)
	}
}

func TestUpdateStatusLegalSteps(t *testing.T) {
	svc, club, _ := newTestService(false)

	updated, err := svc.UpdateStatus(context.Background(), lead(), "t1", entity.TaskInProgress)
	if err != nil {
		t.Fatalf("pending -> in progress: %v", err)
	}
	if updated.Status != entity.TaskInProgress {
		t.Fatalf("unexpected status %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), lead(), "t1", entity.TaskCompleted); err != nil {
		t.Fatalf("in progress -> completed: %v", err)
	}

	acts := club.Activity()
	if len(acts) != 2 || acts[0].Action != "Started Task" || acts[1].Action != "Completed Task" {
		t.Fatalf("unexpected activity trail: %+v", acts)
	}
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	svc, club, notifier := newTestService(false)

	_, err := svc.UpdateStatus(context.Background(), lead(), "t1", entity.TaskCompleted)
	if err == nil {
		t.Fatal("pending -> completed must be rejected")
	}

	task, _ := club.TaskByID("t1")
	if task.Status != entity.TaskPending {
		t.Fatalf("rejected transition must not change state, got %s", task.Status)
	}
	if len(club.Activity()) != 0 || len(notifier.List()) != 0 {
		t.Fatal("rejected transition must not log or toast")
	}
}

func TestUpdateStatusFailureIsAtomic(t *testing.T) {
	svc, club, notifier := newTestService(true)

	_, err := svc.UpdateStatus(context.Background(), lead(), "t1", entity.TaskInProgress)
	if !errors.Is(err, apperror.ErrGatewayFailed) {
		t.Fatalf("expected gateway failure, got %v", err)
	}

	task, _ := club.TaskByID("t1")
	if task.Status != entity.TaskPending {
		t.Fatal("failed update must keep the old status")
	}
	toasts := notifier.List()
	if len(toasts) != 1 || toasts[0].Kind != entity.NotifyError {
		t.Fatalf("expected exactly one error toast, got %+v", toasts)
	}
}

func TestDeleteTask(t *testing.T) {
	svc, club, _ := newTestService(false)

	if err := svc.Delete(context.Background(), lead(), "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := club.TaskByID("t1"); ok {
		t.Fatal("task should be gone")
	}
	if err := svc.Delete(context.Background(), lead(), "t1"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}

func TestMemberCannotTouchTasks(t *testing.T) {
	svc, _, _ := newTestService(false)
	member := &entity.User{ID: "m1", Role: entity.RoleMember}

	if _, err := svc.Create(context.Background(), member, dto.CreateTaskRequest{Title: "X"}); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("member create should be forbidden, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), member, "t1", entity.TaskInProgress); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("member status change should be forbidden, got %v", err)
	}
}
