package entity

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

// Valid reports whether s is one of the three task states.
func (s TaskStatus) Valid() bool {
	return s == TaskPending || s == TaskInProgress || s == TaskCompleted
}

// CanTransition reports whether moving from one status to next is a legal
// step: Pending -> InProgress, InProgress -> Completed, and any state back
// to Pending (reset). The transition to the same state is a no-op and
// allowed.
func CanTransition(from, to TaskStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to || to == TaskPending {
		return true
	}
	switch from {
	case TaskPending:
		return to == TaskInProgress
	case TaskInProgress:
		return to == TaskCompleted
	default:
		return false
	}
}

// Task references its event and assignee by id only; neither reference is
// enforced. AssigneeID is empty when the task is unassigned.
type Task struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	Status      TaskStatus `json:"status"`
	Deadline    string     `json:"deadline"`
}
