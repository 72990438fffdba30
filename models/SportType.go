package models

const (
	CategoryIndividual = "INDIVIDUAL"
	CategoryTeam       = "TEAM"
)

// SportType is the category of competition an event belongs to
type SportType struct {
	Base
	Name            string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Category        string `gorm:"type:varchar(20);not null" json:"category"`
	MaxParticipants int    `gorm:"not null;default:1" json:"maxParticipants"`
	Description     string `gorm:"type:varchar(255)" json:"description"`
}
