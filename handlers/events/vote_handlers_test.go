package events

import (
	"bytes"
	"image/png"
	"net/http"
	"testing"
	"time"

	"sportsday/models"
	"sportsday/services"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	organizer := testutil.Token(t, testutil.CreateUser(t, db, permissions.ORGANIZER, nil))
	event := testutil.CreateEvent(t, db)
	path := "/api/v1/events/" + event.ID + "/vote-settings"

	w := testutil.Request(t, r, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var setting models.VoteSetting
	testutil.Decode(t, w, &setting)
	assert.False(t, setting.Enabled)

	start := time.Now().Add(time.Hour)
	end := start.Add(-2 * time.Hour)
	w = testutil.Request(t, r, http.MethodPut, path, services.VoteSettingInput{
		Enabled: true, StartAt: &start, EndAt: &end, MaxVotesPerUser: 1,
	}, organizer)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Request(t, r, http.MethodPut, path, services.VoteSettingInput{Enabled: true, MaxVotesPerUser: 3}, organizer)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &setting)
	assert.True(t, setting.Enabled)
	assert.Equal(t, 3, setting.MaxVotesPerUser)

	w = testutil.Request(t, r, http.MethodPut, path, services.VoteSettingInput{Enabled: true, MaxVotesPerUser: 3}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/events/missing/vote-settings", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCastVoteAnonymousAndSignedIn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	red := testutil.CreateColor(t, db, "Red")
	event := testutil.CreateEvent(t, db)
	testutil.EnableVoting(t, db, event.ID, 1)
	first := testutil.CreateAthlete(t, db, red.ID)
	second := testutil.CreateAthlete(t, db, red.ID)
	path := "/api/v1/events/" + event.ID + "/votes"

	w := testutil.Request(t, r, http.MethodPost, path, CastVoteRequest{AthleteID: first.ID}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var cast CastVoteResponse
	testutil.Decode(t, w, &cast)
	assert.NotEmpty(t, cast.VoteID)
	assert.Zero(t, cast.Remaining)

	w = testutil.Request(t, r, http.MethodPost, path, CastVoteRequest{AthleteID: second.ID}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "คุณใช้สิทธิ์โหวตครบแล้ว", testutil.ErrorMessage(t, w))

	// Signed-in voters are counted by account, not by address
	token := testutil.Token(t, testutil.CreateUser(t, db, permissions.USER, nil))
	w = testutil.Request(t, r, http.MethodGet, path+"/remaining", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var remaining RemainingVotesResponse
	testutil.Decode(t, w, &remaining)
	assert.Equal(t, 1, remaining.Remaining)

	w = testutil.Request(t, r, http.MethodPost, path, CastVoteRequest{AthleteID: second.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var vote models.Vote
	require.NoError(t, db.First(&vote, "id = ?", cast.VoteID).Error)
	assert.Nil(t, vote.UserID)
	assert.NotEmpty(t, vote.IPAddress)

	w = testutil.Request(t, r, http.MethodGet, path+"/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary []models.AthleteVoteSummary
	testutil.Decode(t, w, &summary)
	require.Len(t, summary, 2)
	for _, s := range summary {
		assert.Equal(t, 1, s.VoteCount)
	}
}

func TestCastVoteClosed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	red := testutil.CreateColor(t, db, "Red")
	event := testutil.CreateEvent(t, db)
	athlete := testutil.CreateAthlete(t, db, red.ID)

	w := testutil.Request(t, r, http.MethodPost, "/api/v1/events/"+event.ID+"/votes", CastVoteRequest{AthleteID: athlete.ID}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "รายการนี้ยังไม่เปิดให้โหวต", testutil.ErrorMessage(t, w))

	w = testutil.Request(t, r, http.MethodPost, "/api/v1/events/"+event.ID+"/votes", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "กรุณาระบุ AthleteID", testutil.ErrorMessage(t, w))
}

func TestVoteQRCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	event := testutil.CreateEvent(t, db)

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/events/"+event.ID+"/vote-qrcode?size=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, minQRCodeSize, img.Bounds().Dx())

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/events/missing/vote-qrcode", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
