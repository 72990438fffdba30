package models

import "time"

// User is an account able to sign in to the dashboards
type User struct {
	Base
	Username    string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	DisplayName string     `gorm:"type:varchar(150)" json:"displayName"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null;default:USER" json:"role"`
	ColorID     *string    `gorm:"type:uuid;index" json:"colorId"`
	Color       *Color     `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	LastLogin   *time.Time `json:"lastLogin"`
}
