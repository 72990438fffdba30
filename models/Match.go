package models

import "time"

const (
	MatchScheduled = "SCHEDULED"
	MatchLive      = "LIVE"
	MatchCompleted = "COMPLETED"
	MatchCancelled = "CANCELLED"
)

const (
	SideHome = "HOME"
	SideAway = "AWAY"
)

// Match is one bracketed pairing between two colors inside an event
type Match struct {
	Base
	EventID      string             `gorm:"type:uuid;not null;index" json:"eventId"`
	HomeColorID  *string            `gorm:"type:uuid" json:"homeColorId"`
	AwayColorID  *string            `gorm:"type:uuid" json:"awayColorId"`
	Round        int                `gorm:"not null;default:1" json:"round"`
	MatchNumber  int                `gorm:"not null;default:1" json:"matchNumber"`
	HomeScore    int                `gorm:"not null;default:0" json:"homeScore"`
	AwayScore    int                `gorm:"not null;default:0" json:"awayScore"`
	Status       string             `gorm:"type:varchar(20);not null;default:SCHEDULED" json:"status"`
	ScheduledAt  *time.Time         `json:"scheduledAt"`
	Venue        string             `gorm:"type:varchar(150)" json:"venue"`
	NextMatchID  *string            `gorm:"type:uuid" json:"nextMatchId"`
	HomeColor    *Color             `gorm:"foreignKey:HomeColorID" json:"homeColor,omitempty"`
	AwayColor    *Color             `gorm:"foreignKey:AwayColorID" json:"awayColor,omitempty"`
	Participants []MatchParticipant `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// IsValidMatchStatus reports whether status is one of the known match statuses
func IsValidMatchStatus(status string) bool {
	switch status {
	case MatchScheduled, MatchLive, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// MatchParticipant assigns an athlete to one side of a match
type MatchParticipant struct {
	Base
	MatchID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_match_athlete" json:"matchId"`
	AthleteID string   `gorm:"type:uuid;not null;uniqueIndex:idx_match_athlete" json:"athleteId"`
	Side      string   `gorm:"type:varchar(4);not null" json:"side"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}
