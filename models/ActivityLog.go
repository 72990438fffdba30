package models

import "time"

// ActivityLog is one entry of the administrative audit trail.
// The username is copied so entries survive the deletion of their author.
type ActivityLog struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *string   `gorm:"type:uuid;index" json:"userId"`
	Username   string    `gorm:"type:varchar(100)" json:"username"`
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string    `gorm:"type:varchar(50);not null;index" json:"entityType"`
	EntityID   string    `gorm:"type:varchar(64)" json:"entityId"`
	Details    string    `gorm:"type:text" json:"details"`
	IPAddress  string    `gorm:"type:varchar(64)" json:"ipAddress"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}
