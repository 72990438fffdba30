package models

// Award is a named prize, optionally attached to an event
type Award struct {
	Base
	Name        string        `gorm:"type:varchar(150);not null" json:"name"`
	Description string        `gorm:"type:varchar(255)" json:"description"`
	EventID     *string       `gorm:"type:uuid;index" json:"eventId"`
	Event       *Event        `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Winners     []AwardWinner `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE" json:"winners,omitempty"`
}

// AwardWinner assigns an award to an athlete
type AwardWinner struct {
	Base
	AwardID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_award_athlete" json:"awardId"`
	AthleteID string   `gorm:"type:uuid;not null;uniqueIndex:idx_award_athlete" json:"athleteId"`
	Note      string   `gorm:"type:varchar(255)" json:"note"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}
