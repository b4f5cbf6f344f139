package session

import "github.com/veeda241/DAC-website/internal/entity"

// PermissionChecker is the single seam for capability checks. The dashboard
// enforces it at the handler boundary; keeping it behind one interface means
// moving the checks elsewhere later is a one-seam change.
type PermissionChecker interface {
	// CanManageContent gates every content mutation: events, tasks,
	// reports, photos. False for an absent user.
	CanManageContent(u *entity.User) bool
	// IsAdmin gates team administration (role changes, user removal),
	// stricter than CanManageContent.
	IsAdmin(u *entity.User) bool
}

// managerRoles is the fixed allow-list: every role except Member.
var managerRoles = map[entity.UserRole]struct{}{
	entity.RoleAdmin:              {},
	entity.RoleFounder:            {},
	entity.RolePresident:          {},
	entity.RoleVicePresident:      {},
	entity.RoleEventCoordinator:   {},
	entity.RoleCoEventCoordinator: {},
	entity.RoleTechnicalLead:      {},
	entity.RoleContentWriter:      {},
	entity.RoleSocialMediaLead:    {},
	entity.RoleDatasetManager:     {},
}

type roleChecker struct{}

// NewPermissionChecker returns the role-based checker used across the app.
func NewPermissionChecker() PermissionChecker {
	return roleChecker{}
}

func (roleChecker) CanManageContent(u *entity.User) bool {
	if u == nil {
		return false
	}
	_, ok := managerRoles[u.Role]
	return ok
}

func (roleChecker) IsAdmin(u *entity.User) bool {
	return u != nil && u.Role == entity.RoleAdmin
}
