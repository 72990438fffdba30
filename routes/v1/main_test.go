package v1

import (
	"net/http"
	"testing"

	"sportsday/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMountsEveryRoute(t *testing.T) {
	testutil.SetupTestDB(t)
	r := gin.New()
	require.NotPanics(t, func() { Register(r) })

	routes := map[string]bool{}
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/ping",
		"GET /api/v1/metrics",
		"POST /api/v1/auth/login",
		"PUT /api/v1/events/:id/results",
		"POST /api/v1/events/:id/votes",
		"GET /api/v1/events/:id/bracket",
		"PATCH /api/v1/matches/:id/score",
		"PATCH /api/v1/votes/:id/invalidate",
		"GET /api/v1/ws/scoreboard",
		"GET /api/v1/logs",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestPing(t *testing.T) {
	testutil.SetupTestDB(t)
	r := gin.New()
	Register(r)

	w := testutil.Request(t, r, http.MethodGet, "/api/v1/ping", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var health HealthResponse
	testutil.Decode(t, w, &health)
	assert.Equal(t, "pong", health.Message)
	assert.Equal(t, "up", health.Database)
	assert.Equal(t, "disabled", health.Cache)

	w = testutil.Request(t, r, http.MethodGet, "/api/v1/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sportsday_http_requests_total")
}
