package models

// EventResult is the rank and points a color (and optionally one athlete) earned in an event
type EventResult struct {
	Base
	EventID   string   `gorm:"type:uuid;not null;index" json:"eventId"`
	ColorID   string   `gorm:"type:uuid;not null;index" json:"colorId"`
	AthleteID *string  `gorm:"type:uuid;index" json:"athleteId"`
	Rank      int      `gorm:"not null" json:"rank"`
	Points    int      `gorm:"not null;default:0" json:"points"`
	Note      string   `gorm:"type:varchar(255)" json:"note"`
	Event     *Event   `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Color     *Color   `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}
