package services

import (
	"time"

	"sportsday/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Audit actions
const (
	ActionCreate        = "CREATE"
	ActionUpdate        = "UPDATE"
	ActionDelete        = "DELETE"
	ActionLogin         = "LOGIN"
	ActionRecordResults = "RECORD_RESULTS"
	ActionClearResults  = "CLEAR_RESULTS"
	ActionUpdateScore   = "UPDATE_SCORE"
	ActionInvalidate    = "INVALIDATE_VOTE"
)

// ActivityEntry describes one audited action
type ActivityEntry struct {
	UserID     *string
	Username   string
	Action     string
	EntityType string
	EntityID   string
	Details    string
	IPAddress  string
}

// LogActivity appends an entry to the audit trail.
// A failed write is logged and never fails the audited request.
func LogActivity(db *gorm.DB, entry ActivityEntry) {
	record := models.ActivityLog{
		ID:         uuid.NewString(),
		UserID:     entry.UserID,
		Username:   entry.Username,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		IPAddress:  entry.IPAddress,
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&record).Error; err != nil {
		log.WithError(err).WithFields(log.Fields{
			"action": entry.Action,
			"entity": entry.EntityType,
		}).Error("failed to write activity log")
	}
}

// ActivityFilter narrows an activity log listing
type ActivityFilter struct {
	EntityType string
	Action     string
	UserID     string
	Page       int
	Limit      int
}

// Normalize replaces an out of range page or page size with the defaults
func (f *ActivityFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

// ListActivity returns one page of the audit trail, newest first, with the total count
func ListActivity(db *gorm.DB, filter ActivityFilter) ([]models.ActivityLog, int64, error) {
	filter.Normalize()

	query := db.Model(&models.ActivityLog{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	// A new session lets the count and the page query share the filters
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ActivityLog
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&logs).Error
	return logs, total, err
}
