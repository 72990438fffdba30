package permissions

import (
	"testing"

	"sportsday/models"

	"github.com/stretchr/testify/assert"
)

func TestCanManageColor(t *testing.T) {
	red, blue := "red", "blue"

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"admin", &models.User{Role: ADMIN}, true},
		{"organizer", &models.User{Role: ORGANIZER}, true},
		{"own color", &models.User{Role: TEAM_MANAGER, ColorID: &red}, true},
		{"other color", &models.User{Role: TEAM_MANAGER, ColorID: &blue}, false},
		{"manager without color", &models.User{Role: TEAM_MANAGER}, false},
		{"viewer", &models.User{Role: USER, ColorID: &red}, false},
		{"anonymous", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManageColor(tt.user, red))
		})
	}
}

func TestRoleChecks(t *testing.T) {
	organizer := &models.User{Role: ORGANIZER}

	assert.True(t, IsStaff(organizer))
	assert.False(t, IsStaff(&models.User{Role: TEAM_MANAGER}))
	assert.True(t, AtLeast(organizer, TEAM_MANAGER))
	assert.False(t, AtLeast(organizer, ADMIN))
	assert.True(t, HasRole(organizer, ADMIN, ORGANIZER))
	assert.False(t, HasRole(nil, ADMIN))
	assert.True(t, IsValidRole(USER))
	assert.False(t, IsValidRole("SUPERUSER"))
}
