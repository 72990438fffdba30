package models

import "time"

const (
	EventUpcoming  = "UPCOMING"
	EventOngoing   = "ONGOING"
	EventCompleted = "COMPLETED"
	EventCancelled = "CANCELLED"
)

// Event is one scheduled competition of a sport type
type Event struct {
	Base
	Name          string              `gorm:"type:varchar(150);not null" json:"name"`
	Description   string              `gorm:"type:text" json:"description"`
	Location      string              `gorm:"type:varchar(150)" json:"location"`
	SportTypeID   string              `gorm:"type:uuid;not null;index" json:"sportTypeId"`
	StartTime     time.Time           `gorm:"not null" json:"startTime"`
	EndTime       *time.Time          `json:"endTime"`
	Status        string              `gorm:"type:varchar(20);not null;default:UPCOMING;index" json:"status"`
	SportType     *SportType          `gorm:"foreignKey:SportTypeID" json:"sportType,omitempty"`
	Registrations []EventRegistration `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"registrations,omitempty"`
	Results       []EventResult       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"results,omitempty"`
	Matches       []Match             `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"matches,omitempty"`
	VoteSetting   *VoteSetting        `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"voteSetting,omitempty"`
}

// IsValidEventStatus reports whether status is one of the known event statuses
func IsValidEventStatus(status string) bool {
	switch status {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// EventRegistration enrolls an athlete in an event on behalf of a color
type EventRegistration struct {
	Base
	EventID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_event_athlete" json:"eventId"`
	AthleteID string   `gorm:"type:uuid;not null;uniqueIndex:idx_event_athlete" json:"athleteId"`
	ColorID   string   `gorm:"type:uuid;not null;index" json:"colorId"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
	Color     *Color   `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}
