package athletes

import (
	"net/http"
	"testing"

	"sportsday/models"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthleteCRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	admin := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")
	major := testutil.CreateMajor(t, db, &red.ID)

	req := AthleteRequest{
		StudentCode: "65001234",
		FirstName:   "Somchai",
		LastName:    "Jaidee",
		Nickname:    "Chai",
		Gender:      "MALE",
		MajorID:     major.ID,
		ColorID:     red.ID,
	}
	w := testutil.Request(t, r, http.MethodPost, "/api/v1/athletes", req, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	var athlete models.Athlete
	testutil.Decode(t, w, &athlete)
	assert.NotEmpty(t, athlete.ID)

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/athletes", req, admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	req.Nickname = "Chai-chai"
	w = testutil.Request(t, r, http.MethodPut, "/api/v1/athletes/"+athlete.ID, req, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/athletes/"+athlete.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &athlete)
	assert.Equal(t, "Chai-chai", athlete.Nickname)
	require.NotNil(t, athlete.Color)
	assert.Equal(t, "Red", athlete.Color.Name)

	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/athletes/"+athlete.ID, nil, admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = testutil.Request(t, r, http.MethodGet, "/api/v1/athletes/"+athlete.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrAthleteNotFound, testutil.ErrorMessage(t, w))
}

func TestAthleteReferencesMustExist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	admin := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")
	major := testutil.CreateMajor(t, db, &red.ID)

	w := testutil.Request(t, r, http.MethodPost, "/api/v1/athletes", AthleteRequest{
		StudentCode: "65000001", FirstName: "A", LastName: "B", MajorID: "missing", ColorID: red.ID,
	}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrMajorNotFound, testutil.ErrorMessage(t, w))

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/athletes", AthleteRequest{
		StudentCode: "65000001", FirstName: "A", LastName: "B", MajorID: major.ID, ColorID: red.ID, Gender: "X",
	}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeamManagerLimitedToOwnColor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	red := testutil.CreateColor(t, db, "Red")
	blue := testutil.CreateColor(t, db, "Blue")
	manager := testutil.Token(t, testutil.CreateUser(t, db, permissions.TEAM_MANAGER, &red.ID))
	blueMajor := testutil.CreateMajor(t, db, &blue.ID)

	w := testutil.Request(t, r, http.MethodPost, "/api/v1/athletes", AthleteRequest{
		StudentCode: "65000002", FirstName: "A", LastName: "B", MajorID: blueMajor.ID, ColorID: blue.ID,
	}, manager)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, ErrNotYourColor, testutil.ErrorMessage(t, w))

	theirs := testutil.CreateAthlete(t, db, blue.ID)
	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/athletes/"+theirs.ID, nil, manager)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Moving an own athlete into another color is refused too
	ours := testutil.CreateAthlete(t, db, red.ID)
	w = testutil.Request(t, r, http.MethodPut, "/api/v1/athletes/"+ours.ID, AthleteRequest{
		StudentCode: ours.StudentCode, FirstName: ours.FirstName, LastName: ours.LastName,
		MajorID: blueMajor.ID, ColorID: blue.ID,
	}, manager)
	assert.Equal(t, http.StatusForbidden, w.Code)

	viewer := testutil.Token(t, testutil.CreateUser(t, db, permissions.USER, nil))
	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/athletes/"+ours.ID, nil, viewer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Request(t, r, http.MethodDelete, "/api/v1/athletes/"+ours.ID, nil, manager)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSearchAthletes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	red := testutil.CreateColor(t, db, "Red")
	blue := testutil.CreateColor(t, db, "Blue")

	somchai := testutil.CreateAthlete(t, db, red.ID)
	require.NoError(t, db.Model(somchai).Update("first_name", "Somchai").Error)
	testutil.CreateAthlete(t, db, red.ID)
	testutil.CreateAthlete(t, db, blue.ID)

	var athletes []models.Athlete
	w := testutil.Request(t, r, http.MethodGet, "/api/v1/athletes?search=SOMCH", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &athletes)
	require.Len(t, athletes, 1)
	assert.Equal(t, somchai.ID, athletes[0].ID)

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/athletes?color_id="+red.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &athletes)
	assert.Len(t, athletes, 2)
}

func TestDeleteAthleteWithResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	admin := testutil.Token(t, testutil.CreateUser(t, db, permissions.ADMIN, nil))
	red := testutil.CreateColor(t, db, "Red")
	athlete := testutil.CreateAthlete(t, db, red.ID)
	event := testutil.CreateEvent(t, db)

	require.NoError(t, db.Create(&models.EventResult{
		EventID: event.ID, ColorID: red.ID, AthleteID: &athlete.ID, Rank: 1, Points: 10,
	}).Error)

	w := testutil.Request(t, r, http.MethodDelete, "/api/v1/athletes/"+athlete.ID, nil, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, ErrAthleteInUse, testutil.ErrorMessage(t, w))
}
