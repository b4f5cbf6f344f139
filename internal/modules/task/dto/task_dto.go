package dto

type CreateTaskRequest struct {
	EventID     string `json:"eventId"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	AssigneeID  string `json:"assigneeId"`
	Deadline    string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}
