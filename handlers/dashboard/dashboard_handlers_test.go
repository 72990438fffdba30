package dashboard

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sportsday/config"
	"sportsday/models"
	"sportsday/realtime"
	"sportsday/services"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestScoreboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	red := testutil.CreateColor(t, db, "Red")
	blue := testutil.CreateColor(t, db, "Blue")
	event := testutil.CreateEvent(t, db)

	_, err := services.RecordEventResults(db, event.ID, []services.ResultInput{
		{ColorID: blue.ID, Rank: 1, Points: 10},
		{ColorID: red.ID, Rank: 2, Points: 7},
	})
	require.NoError(t, err)

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/scoreboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []services.ScoreboardEntry
	testutil.Decode(t, w, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, "Blue", entries[0].Name)
	assert.Equal(t, 10, entries[0].TotalScore)
	assert.Equal(t, 1, entries[0].Gold)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 1, entries[1].Silver)
}

func TestExportScoreboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	testutil.CreateColor(t, db, "Red")

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/scoreboard/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "scoreboard-")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "Red")
}

func TestStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)
	organizer := testutil.Token(t, testutil.CreateUser(t, db, permissions.ORGANIZER, nil))
	red := testutil.CreateColor(t, db, "Red")
	testutil.CreateAthlete(t, db, red.ID)
	event := testutil.CreateEvent(t, db)
	cancelled := testutil.CreateEvent(t, db)
	require.NoError(t, db.Model(cancelled).Update("status", models.EventCancelled).Error)
	require.NoError(t, db.Create(&models.Match{EventID: event.ID, Round: 1, MatchNumber: 1, Status: models.MatchLive}).Error)

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/dashboard/stats", nil, organizer)
	require.Equal(t, http.StatusOK, w.Code)
	var stats Stats
	testutil.Decode(t, w, &stats)
	assert.EqualValues(t, 1, stats.Colors)
	assert.EqualValues(t, 1, stats.Majors)
	assert.EqualValues(t, 1, stats.Athletes)
	assert.EqualValues(t, 1, stats.LiveMatches)
	assert.EqualValues(t, 1, stats.EventsByStatus[models.EventUpcoming])
	assert.EqualValues(t, 1, stats.EventsByStatus[models.EventCancelled])
	assert.Zero(t, stats.EventsByStatus[models.EventCompleted])

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/dashboard/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScoreboardWebSocket(t *testing.T) {
	testutil.SetupTestDB(t)
	server := httptest.NewServer(testutil.NewRouter(RegisterRoutes))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws/scoreboard"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return realtime.ClientCount(realtime.ChannelScoreboard) == 1
	}, time.Second, 10*time.Millisecond)

	realtime.Publish(realtime.Update{Channel: realtime.ChannelScoreboard, UpdateType: realtime.UpdateScoreboard})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var update realtime.Update
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, realtime.UpdateScoreboard, update.UpdateType)
}

func TestEventWebSocketUnknownEvent(t *testing.T) {
	testutil.SetupTestDB(t)
	r := testutil.NewRouter(RegisterRoutes)

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/ws/events/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckOrigin(t *testing.T) {
	testutil.SetupTestDB(t)
	config.Current.AllowedOrigins = []string{"http://sportsday.test"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws/scoreboard", nil)
	assert.True(t, checkOrigin(req))

	req.Header.Set("Origin", "http://sportsday.test")
	assert.True(t, checkOrigin(req))

	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, checkOrigin(req))
}
