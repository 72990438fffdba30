package majors

import (
	"net/http"
	"testing"

	"sportsday/models"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")

	missing := "missing"
	w := testutil.Request(t, r, http.MethodPost, "/api/v1/majors", MajorRequest{Name: "Computer Science", ColorID: &missing}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrColorNotFound, testutil.ErrorMessage(t, w))

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/majors", MajorRequest{Name: "Computer Science", ColorID: &red.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var major models.Major
	testutil.Decode(t, w, &major)

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/majors", MajorRequest{Name: "Computer Science"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Request(t, r, http.MethodPut, "/api/v1/majors/"+major.ID, MajorRequest{Name: "Software Engineering"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &major)
	assert.Equal(t, "Software Engineering", major.Name)
	assert.Nil(t, major.ColorID)

	var majors []models.Major
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/majors?color_id="+red.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &majors)
	assert.Empty(t, majors)

	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/majors/"+major.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/majors/"+major.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMajorInUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")
	athlete := testutil.CreateAthlete(t, db, red.ID)

	w := testutil.Request(t, r, http.MethodDelete, "/api/v1/majors/"+athlete.MajorID, nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrMajorInUse, testutil.ErrorMessage(t, w))
}
