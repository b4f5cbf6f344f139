package entity

// UserRole is the closed set of club roles. Every role except Member can
// manage dashboard content; team administration is Admin only.
type UserRole string

const (
	RoleAdmin              UserRole = "ADMIN"
	RoleFounder            UserRole = "FOUNDER"
	RolePresident          UserRole = "PRESIDENT"
	RoleVicePresident      UserRole = "VICE_PRESIDENT"
	RoleEventCoordinator   UserRole = "EVENT_COORDINATOR"
	RoleCoEventCoordinator UserRole = "CO_EVENT_COORDINATOR"
	RoleTechnicalLead      UserRole = "TECHNICAL_LEAD"
	RoleContentWriter      UserRole = "CONTENT_WRITER"
	RoleSocialMediaLead    UserRole = "SOCIAL_MEDIA_LEAD"
	RoleDatasetManager     UserRole = "DATASET_MANAGER"
	RoleMember             UserRole = "MEMBER"
)

// AllRoles lists every valid role, in display order.
var AllRoles = []UserRole{
	RoleAdmin,
	RoleFounder,
	RolePresident,
	RoleVicePresident,
	RoleEventCoordinator,
	RoleCoEventCoordinator,
	RoleTechnicalLead,
	RoleContentWriter,
	RoleSocialMediaLead,
	RoleDatasetManager,
	RoleMember,
}

// Valid reports whether r is one of the enumerated roles.
func (r UserRole) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}
