package logs

import (
	"net/http"
	"testing"

	"sportsday/services"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	admin := testutil.CreateUser(t, db, permissions.ADMIN, nil)
	token := testutil.Token(t, admin)

	for i := 0; i < 3; i++ {
		services.LogActivity(db, services.ActivityEntry{
			UserID: &admin.ID, Username: admin.Username,
			Action: services.ActionCreate, EntityType: "athlete", EntityID: "a",
		})
	}
	services.LogActivity(db, services.ActivityEntry{Action: services.ActionDelete, EntityType: "color", EntityID: "c"})

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/logs?limit=2", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var page LogsPage
	testutil.Decode(t, w, &page)
	assert.EqualValues(t, 4, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/logs?entity_type=athlete&user_id="+admin.ID+"&page=0&limit=500", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &page)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
}

func TestLogsAdminOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	organizer := testutil.Token(t, testutil.CreateUser(t, db, permissions.ORGANIZER, nil))

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/logs", nil, organizer)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/logs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
