package entity

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to TaskStatus
		want     bool
	}{
		{TaskPending, TaskInProgress, true},
		{TaskInProgress, TaskCompleted, true},
		{TaskPending, TaskCompleted, false},
		{TaskCompleted, TaskInProgress, false},
		{TaskCompleted, TaskPending, true},
		{TaskInProgress, TaskPending, true},
		{TaskPending, TaskPending, true},
		{TaskInProgress, TaskInProgress, true},
		{TaskCompleted, TaskCompleted, true},
		{TaskPending, "ARCHIVED", false},
		{"ARCHIVED", TaskPending, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, role := range AllRoles {
		if !role.Valid() {
			t.Fatalf("role %s should be valid", role)
		}
	}
	if UserRole("SUPERUSER").Valid() {
		t.Fatal("unknown role must be invalid")
	}
	if UserRole("").Valid() {
		t.Fatal("empty role must be invalid")
	}
}
