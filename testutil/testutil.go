// Package testutil provides a throwaway sqlite database, fixtures and request helpers for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"sportsday/config"
	"sportsday/database"
	"sportsday/models"
	"sportsday/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const JWTSecret = "test-secret"

var sequence atomic.Int64

// SetupTestDB opens a migrated sqlite database and installs it as database.DB
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.JWTSecret = JWTSecret
	cfg.ClientURL = "http://sportsday.test"
	config.Current = cfg

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func next() int64 {
	return sequence.Add(1)
}

// CreateUser stores a user whose password is "password123"
func CreateUser(t *testing.T, db *gorm.DB, role string, colorID *string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Username:    fmt.Sprintf("user%d", next()),
		DisplayName: "Test User",
		Password:    hashed,
		Role:        role,
		ColorID:     colorID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// Token signs a session token for user
func Token(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(JWTSecret, user.ID, user.Username, user.Role, time.Hour)
	require.NoError(t, err)
	return token
}

func CreateColor(t *testing.T, db *gorm.DB, name string) *models.Color {
	t.Helper()
	color := &models.Color{Name: name, HexCode: "#FF0000"}
	require.NoError(t, db.Create(color).Error)
	return color
}

func CreateMajor(t *testing.T, db *gorm.DB, colorID *string) *models.Major {
	t.Helper()
	major := &models.Major{Name: fmt.Sprintf("Major %d", next()), ColorID: colorID}
	require.NoError(t, db.Create(major).Error)
	return major
}

// CreateAthlete stores an athlete of colorID, creating a major for it
func CreateAthlete(t *testing.T, db *gorm.DB, colorID string) *models.Athlete {
	t.Helper()
	major := CreateMajor(t, db, &colorID)
	n := next()
	athlete := &models.Athlete{
		StudentCode: fmt.Sprintf("6500%04d", n),
		FirstName:   fmt.Sprintf("First%d", n),
		LastName:    "Last",
		MajorID:     major.ID,
		ColorID:     colorID,
	}
	require.NoError(t, db.Create(athlete).Error)
	return athlete
}

func CreateSportType(t *testing.T, db *gorm.DB, category string, maxParticipants int) *models.SportType {
	t.Helper()
	sportType := &models.SportType{
		Name:            fmt.Sprintf("Sport %d", next()),
		Category:        category,
		MaxParticipants: maxParticipants,
	}
	require.NoError(t, db.Create(sportType).Error)
	return sportType
}

// CreateEvent stores an UPCOMING event with its own sport type
func CreateEvent(t *testing.T, db *gorm.DB) *models.Event {
	t.Helper()
	sportType := CreateSportType(t, db, models.CategoryTeam, 10)
	event := &models.Event{
		Name:        fmt.Sprintf("Event %d", next()),
		SportTypeID: sportType.ID,
		StartTime:   time.Now().Add(time.Hour),
		Status:      models.EventUpcoming,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

// EnableVoting opens voting on an event with the given cap
func EnableVoting(t *testing.T, db *gorm.DB, eventID string, maxVotes int) *models.VoteSetting {
	t.Helper()
	setting := &models.VoteSetting{EventID: eventID, Enabled: true, MaxVotesPerUser: maxVotes}
	require.NoError(t, db.Create(setting).Error)
	return setting
}

// NewRouter returns a test engine with the given routes mounted under /api/v1
func NewRouter(register ...func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	for _, fn := range register {
		fn(v1)
	}
	return r
}

// Request performs a JSON request, authenticated when token is not empty
func Request(t *testing.T, r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into v
func Decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// ErrorMessage returns the error field of a response body
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	Decode(t, w, &body)
	return body.Error
}
