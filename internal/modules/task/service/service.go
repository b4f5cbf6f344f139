package task

import (
	"context"
	"fmt"

	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/task/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

type TaskService interface {
	List() []entity.Task
	Create(ctx context.Context, actor *entity.User, req dto.CreateTaskRequest) (*entity.Task, error)
	UpdateStatus(ctx context.Context, actor *entity.User, id string, status entity.TaskStatus) (*entity.Task, error)
	Delete(ctx context.Context, actor *entity.User, id string) error
}

type taskService struct {
	gw       gateway.Gateway
	club     *state.Club
	perms    session.PermissionChecker
	notifier *notify.Notifier
}

func NewTaskService(gw gateway.Gateway, club *state.Club, perms session.PermissionChecker, notifier *notify.Notifier) TaskService {
	return &taskService{
		gw:       gw,
		club:     club,
		perms:    perms,
		notifier: notifier,
	}
}

func (s *taskService) List() []entity.Task {
	return s.club.Tasks()
}

func (s *taskService) Create(ctx context.Context, actor *entity.User, req dto.CreateTaskRequest) (*entity.Task, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	candidate := entity.Task{
		EventID:     req.EventID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      entity.TaskPending,
		Deadline:    req.Deadline,
	}

	created := s.gw.CreateTask(ctx, candidate)
	if created == nil {
		s.notifier.Error("Failed to create task.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.AppendTask(*created)
	s.club.RecordActivity(actor.ID, "Assigned Task", fmt.Sprintf("%s to %s", created.Title, s.assigneeName(created.AssigneeID)))
	s.notifier.Success("Task created successfully!")
	return created, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, actor *entity.User, id string, status entity.TaskStatus) (*entity.Task, error) {
	if !s.perms.CanManageContent(actor) {
		return nil, apperror.ErrForbidden
	}

	existing, ok := s.club.TaskByID(id)
	if !ok {
		return nil, apperror.ErrNotFound
	}
	if !entity.CanTransition(existing.Status, status) {
		return nil, apperror.New(400, fmt.Sprintf("cannot move task from %s to %s", existing.Status, status), nil)
	}

	updated := s.gw.UpdateTaskStatus(ctx, id, status)
	if updated == nil {
		s.notifier.Error("Failed to update task status")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.ReplaceTask(*updated)

	action := "Updated Task"
	switch status {
	case entity.TaskInProgress:
		action = "Started Task"
	case entity.TaskCompleted:
		action = "Completed Task"
	}
	s.club.RecordActivity(actor.ID, action, updated.Title)
	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, actor *entity.User, id string) error {
	if !s.perms.CanManageContent(actor) {
		return apperror.ErrForbidden
	}

	if _, ok := s.club.TaskByID(id); !ok {
		return apperror.ErrNotFound
	}

	if !s.gw.DeleteTask(ctx, id) {
		s.notifier.Error("Failed to delete task")
		return apperror.ErrGatewayFailed
	}

	s.club.RemoveTask(id)
	s.club.RecordActivity(actor.ID, "Deleted Task", fmt.Sprintf("Task with ID %s removed.", id))
	return nil
}

func (s *taskService) assigneeName(id string) string {
	if id == "" {
		return "Unassigned"
	}
	if u, ok := s.club.UserByID(id); ok {
		return u.Name
	}
	return "Unassigned"
}
