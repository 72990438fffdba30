package models

import "time"

// VoteSetting controls popular-vote balloting for one event
type VoteSetting struct {
	Base
	EventID         string     `gorm:"type:uuid;not null;uniqueIndex" json:"eventId"`
	Enabled         bool       `gorm:"not null;default:false" json:"enabled"`
	StartAt         *time.Time `json:"startAt"`
	EndAt           *time.Time `json:"endAt"`
	MaxVotesPerUser int        `gorm:"not null;default:1" json:"maxVotesPerUser"`
}

// Vote is a ballot cast for a favourite athlete
type Vote struct {
	Base
	EventID   string   `gorm:"type:uuid;not null;index:idx_vote_voter" json:"eventId"`
	MatchID   *string  `gorm:"type:uuid;index" json:"matchId"`
	AthleteID string   `gorm:"type:uuid;not null;index" json:"athleteId"`
	UserID    *string  `gorm:"type:uuid;index:idx_vote_voter" json:"userId"`
	IPAddress string   `gorm:"type:varchar(64);index:idx_vote_voter" json:"ipAddress"`
	IsValid   bool     `gorm:"not null;default:true" json:"isValid"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}

// AthleteVoteSummary is the running count of valid votes per athlete per event
type AthleteVoteSummary struct {
	Base
	EventID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_summary_event_athlete" json:"eventId"`
	AthleteID string   `gorm:"type:uuid;not null;uniqueIndex:idx_summary_event_athlete" json:"athleteId"`
	VoteCount int      `gorm:"not null;default:0" json:"voteCount"`
	Athlete   *Athlete `gorm:"foreignKey:AthleteID" json:"athlete,omitempty"`
}
