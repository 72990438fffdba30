package permissions

import "sportsday/models"

// Roles, ordered from most to least privileged
const (
	ADMIN        = "ADMIN"
	ORGANIZER    = "ORGANIZER"
	TEAM_MANAGER = "TEAM_MANAGER"
	USER         = "USER"
)

var roleLevels = map[string]int{
	ADMIN:        4,
	ORGANIZER:    3,
	TEAM_MANAGER: 2,
	USER:         1,
}

// IsValidRole reports whether role is a known role name
func IsValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// HasRole checks if the user's role is one of the given roles
func HasRole(user *models.User, roles ...string) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}

// AtLeast checks if the user's role is at least as privileged as role
func AtLeast(user *models.User, role string) bool {
	if user == nil {
		return false
	}
	return roleLevels[user.Role] >= roleLevels[role]
}

// IsStaff checks if the user can manage the sports day (admins and organizers)
func IsStaff(user *models.User) bool {
	return AtLeast(user, ORGANIZER)
}

// CanManageColor checks if the user may act on behalf of the given color.
// Staff manage every color, team managers only their own.
func CanManageColor(user *models.User, colorID string) bool {
	if IsStaff(user) {
		return true
	}
	if HasRole(user, TEAM_MANAGER) && user.ColorID != nil {
		return *user.ColorID == colorID
	}
	return false
}
