package sporttypes

import (
	"net/http"
	"testing"

	"sportsday/models"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportTypeCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ORGANIZER, nil))

	req := SportTypeRequest{Name: "Football", Category: models.CategoryTeam, MaxParticipants: 11}
	w := testutil.Request(t, r, http.MethodPost, "/api/v1/sport-types", req, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var sportType models.SportType
	testutil.Decode(t, w, &sportType)

	req.Category = "RELAY"
	w = testutil.Request(t, r, http.MethodPost, "/api/v1/sport-types", req, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category ต้องเป็นหนึ่งใน INDIVIDUAL TEAM", testutil.ErrorMessage(t, w))

	req = SportTypeRequest{Name: "Football 7", Category: models.CategoryTeam, MaxParticipants: 7}
	w = testutil.Request(t, r, http.MethodPut, "/api/v1/sport-types/"+sportType.ID, req, token)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &sportType)
	assert.Equal(t, 7, sportType.MaxParticipants)

	testutil.CreateSportType(t, db, models.CategoryIndividual, 1)
	var list []models.SportType
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/sport-types?category=TEAM", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Football 7", list[0].Name)

	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/sport-types/"+sportType.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/sport-types/"+sportType.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSportTypeInUse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	event := testutil.CreateEvent(t, db)

	w := testutil.Request(t, r, http.MethodDelete, "/api/v1/sport-types/"+event.SportTypeID, nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrSportTypeInUse, testutil.ErrorMessage(t, w))
}
