package users

import (
	"net/http"
	"testing"

	"sportsday/models"
	"sportsday/testutil"
	"sportsday/utils"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamManager(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")

	req := CreateUserRequest{Username: "red-manager", Password: "password123", Role: permissions.TEAM_MANAGER}
	w := testutil.Request(t, r, http.MethodPost, "/api/v1/users", req, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrColorRequired, testutil.ErrorMessage(t, w))

	req.ColorID = &red.ID
	w = testutil.Request(t, r, http.MethodPost, "/api/v1/users", req, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.User
	testutil.Decode(t, w, &user)
	assert.Equal(t, permissions.TEAM_MANAGER, user.Role)
	assert.NotContains(t, w.Body.String(), "password123")

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, utils.CheckPasswordHash("password123", stored.Password))

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/users", req, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	user := testutil.CreateUser(t, db, permissions.USER, nil)

	role := permissions.ORGANIZER
	password := "new-password"
	w := testutil.Request(t, r, http.MethodPut, "/api/v1/users/"+user.ID, UpdateUserRequest{Role: &role, Password: &password}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, permissions.ORGANIZER, stored.Role)
	assert.True(t, utils.CheckPasswordHash(password, stored.Password))

	manager := permissions.TEAM_MANAGER
	w = testutil.Request(t, r, http.MethodPut, "/api/v1/users/"+user.ID, UpdateUserRequest{Role: &manager}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrColorRequired, testutil.ErrorMessage(t, w))

	w = testutil.Request(t, r, http.MethodPut, "/api/v1/users/missing", UpdateUserRequest{Role: &role}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	admin := testutil.CreateUser(t, db, permissions.ADMIN, nil)
	token := testutil.Token(t, admin)
	user := testutil.CreateUser(t, db, permissions.USER, nil)

	w := testutil.Request(t, r, http.MethodDelete, "/api/v1/users/"+admin.ID, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCannotDeleteSelf, testutil.ErrorMessage(t, w))

	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/users/"+user.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/users/"+user.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersAdminOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	organizer := testutil.Token(t, testutil.CreateUser(t, db, permissions.ORGANIZER, nil))

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/users", nil, organizer)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
