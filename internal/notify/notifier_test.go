package notify

import (
	"testing"
	"time"

	"github.com/veeda241/DAC-website/internal/entity"
)

func TestPushAndList(t *testing.T) {
	n := New(time.Minute, nil)

	n.Success("saved")
	n.Error("boom")

	list := n.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(list))
	}
	if list[0].Kind != entity.NotifySuccess || list[1].Kind != entity.NotifyError {
		t.Fatalf("kinds out of order: %s, %s", list[0].Kind, list[1].Kind)
	}
	if list[0].ID == list[1].ID {
		t.Fatal("notification ids must be unique")
	}
}

func TestNotificationsExpire(t *testing.T) {
	n := New(20*time.Millisecond, nil)

	n.Info("fleeting")
	if len(n.List()) != 1 {
		t.Fatal("notification should be visible before expiry")
	}

	deadline := time.Now().Add(2 * time.Second)
	for len(n.List()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("notification did not expire")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDismiss(t *testing.T) {
	n := New(time.Minute, nil)

	kept := n.Push(entity.NotifyInfo, "keep me")
	gone := n.Push(entity.NotifyInfo, "dismiss me")

	n.Dismiss(gone.ID)

	list := n.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 notification after dismissal, got %d", len(list))
	}
	if list[0].ID != kept.ID {
		t.Fatalf("wrong notification dismissed, left with %s", list[0].ID)
	}
}

func TestClearEmptiesQueue(t *testing.T) {
	n := New(time.Minute, nil)

	n.Success("one")
	n.Info("two")
	n.Clear()

	if got := len(n.List()); got != 0 {
		t.Fatalf("expected empty queue after clear, got %d", got)
	}

	// Queue stays usable after a clear.
	n.Error("three")
	if got := len(n.List()); got != 1 {
		t.Fatalf("expected 1 notification after re-push, got %d", got)
	}
}
