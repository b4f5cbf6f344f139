package member

import (
	"context"
	"fmt"
	"strings"

	"github.com/veeda241/DAC-website/internal/catalog"
	"github.com/veeda241/DAC-website/internal/entity"
	"github.com/veeda241/DAC-website/internal/gateway"
	"github.com/veeda241/DAC-website/internal/modules/member/dto"
	"github.com/veeda241/DAC-website/internal/notify"
	"github.com/veeda241/DAC-website/internal/session"
	"github.com/veeda241/DAC-website/internal/state"
	"github.com/veeda241/DAC-website/pkg/apperror"
)

type MemberService interface {
	ListUsers() []entity.User
	Team() []entity.TeamMember
	Mentors() []entity.TeamMember
	UpdateProfile(ctx context.Context, actor *entity.User, targetID string, req dto.UpdateProfileRequest) (*entity.User, error)
	ChangeRole(ctx context.Context, actor *entity.User, targetID string, role entity.UserRole) (*entity.User, error)
	DeleteUser(ctx context.Context, actor *entity.User, targetID string) error
}

type memberService struct {
	gw       gateway.Gateway
	club     *state.Club
	perms    session.PermissionChecker
	notifier *notify.Notifier
}

func NewMemberService(gw gateway.Gateway, club *state.Club, perms session.PermissionChecker, notifier *notify.Notifier) MemberService {
	return &memberService{
		gw:       gw,
		club:     club,
		perms:    perms,
		notifier: notifier,
	}
}

func (s *memberService) ListUsers() []entity.User {
	return s.club.Users()
}

// Team and Mentors come from the curated catalog, not from the remote
// store; they have no mutation surface.
func (s *memberService) Team() []entity.TeamMember {
	return catalog.Team()
}

func (s *memberService) Mentors() []entity.TeamMember {
	return catalog.Mentors()
}

func (s *memberService) UpdateProfile(ctx context.Context, actor *entity.User, targetID string, req dto.UpdateProfileRequest) (*entity.User, error) {
	if actor == nil {
		return nil, apperror.ErrUnauthorized
	}
	if actor.ID != targetID && !s.perms.IsAdmin(actor) {
		return nil, apperror.ErrForbidden
	}

	target, ok := s.club.UserByID(targetID)
	if !ok {
		return nil, apperror.ErrNotFound
	}

	target.Name = req.Name
	target.Email = req.Email
	if req.Avatar != "" {
		target.Avatar = req.Avatar
	}

	updated := s.gw.UpdateUser(ctx, target)
	if updated == nil {
		s.notifier.Error("Failed to update user.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.ReplaceUser(*updated)

	if actor.ID == updated.ID {
		s.notifier.Success("Profile updated successfully")
		s.club.RecordActivity(actor.ID, "Updated Profile", "Changed account details")
	} else {
		s.notifier.Info(fmt.Sprintf("User %s's profile updated.", updated.Name))
	}
	return updated, nil
}

func (s *memberService) ChangeRole(ctx context.Context, actor *entity.User, targetID string, role entity.UserRole) (*entity.User, error) {
	if !s.perms.IsAdmin(actor) {
		return nil, apperror.ErrForbidden
	}
	if !role.Valid() {
		return nil, apperror.New(400, fmt.Sprintf("unknown role %q", role), nil)
	}

	target, ok := s.club.UserByID(targetID)
	if !ok {
		return nil, apperror.ErrNotFound
	}

	target.Role = role
	updated := s.gw.UpdateUser(ctx, target)
	if updated == nil {
		s.notifier.Error("Failed to update user.")
		return nil, apperror.ErrGatewayFailed
	}

	s.club.ReplaceUser(*updated)
	s.club.RecordActivity(actor.ID, "Updated Role", fmt.Sprintf("Changed %s's role to %s", updated.Name, formatRole(role)))
	s.notifier.Info(fmt.Sprintf("User %s's profile updated.", updated.Name))
	return updated, nil
}

func (s *memberService) DeleteUser(ctx context.Context, actor *entity.User, targetID string) error {
	if !s.perms.IsAdmin(actor) {
		return apperror.ErrForbidden
	}

	if _, ok := s.club.UserByID(targetID); !ok {
		return apperror.ErrNotFound
	}

	if !s.gw.DeleteUser(ctx, targetID) {
		s.notifier.Error("Failed to delete user.")
		return apperror.ErrGatewayFailed
	}

	// RemoveUser also unassigns the user's tasks.
	s.club.RemoveUser(targetID)
	s.club.RecordActivity(actor.ID, "Removed User", "Deleted user account")
	s.notifier.Info("User removed and tasks unassigned")
	return nil
}

// formatRole turns VICE_PRESIDENT into "Vice President" for activity
// details.
func formatRole(role entity.UserRole) string {
	words := strings.Split(strings.ToLower(string(role)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
