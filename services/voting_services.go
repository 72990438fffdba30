package services

import (
	"errors"
	"time"

	"sportsday/metrics"
	"sportsday/models"
	"sportsday/realtime"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Voter identifies who casts a ballot: the signed-in user, or the client IP for anonymous viewers
type Voter struct {
	UserID *string
	IP     string
}

// CastVoteInput describes one ballot
type CastVoteInput struct {
	EventID   string
	AthleteID string
	MatchID   *string
	Voter     Voter
}

// VoteSettingInput is the editable part of an event's vote setting
type VoteSettingInput struct {
	Enabled         bool       `json:"enabled"`
	StartAt         *time.Time `json:"startAt"`
	EndAt           *time.Time `json:"endAt"`
	MaxVotesPerUser int        `json:"maxVotesPerUser" binding:"required,min=1,max=100"`
}

// voterScope restricts a vote query to the ballots of one voter
func voterScope(v Voter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v.UserID != nil && *v.UserID != "" {
			return db.Where("user_id = ?", *v.UserID)
		}
		return db.Where("user_id IS NULL AND ip_address = ?", v.IP)
	}
}

// CastVote records one ballot after checking the voting window and the voter's cap.
// The vote setting row is locked for the whole transaction so concurrent ballots of an event are counted one at a time.
func CastVote(db *gorm.DB, in CastVoteInput, now time.Time) (*models.Vote, error) {
	if (in.Voter.UserID == nil || *in.Voter.UserID == "") && in.Voter.IP == "" {
		return nil, ErrNoVoterIdentity
	}

	var vote models.Vote
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEvent(tx, in.EventID); err != nil {
			return err
		}

		var setting models.VoteSetting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("event_id = ?", in.EventID).First(&setting).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVotingClosed
			}
			return err
		}
		if err := checkVotingWindow(setting, now); err != nil {
			return err
		}

		if err := ensureVotableAthlete(tx, in.EventID, in.AthleteID); err != nil {
			return err
		}
		if in.MatchID != nil && *in.MatchID != "" {
			var count int64
			if err := tx.Model(&models.Match{}).
				Where("id = ? AND event_id = ?", *in.MatchID, in.EventID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrMatchNotFound
			}
		}

		var cast int64
		if err := tx.Model(&models.Vote{}).Scopes(voterScope(in.Voter)).
			Where("event_id = ? AND is_valid = ?", in.EventID, true).
			Count(&cast).Error; err != nil {
			return err
		}
		if int(cast) >= setting.MaxVotesPerUser {
			return ErrVoteLimitReached
		}

		var sameAthlete int64
		if err := tx.Model(&models.Vote{}).Scopes(voterScope(in.Voter)).
			Where("event_id = ? AND athlete_id = ? AND is_valid = ?", in.EventID, in.AthleteID, true).
			Count(&sameAthlete).Error; err != nil {
			return err
		}
		if sameAthlete > 0 {
			return ErrAlreadyVoted
		}

		vote = models.Vote{
			EventID:   in.EventID,
			MatchID:   in.MatchID,
			AthleteID: in.AthleteID,
			UserID:    in.Voter.UserID,
			IPAddress: in.Voter.IP,
			IsValid:   true,
		}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		summary := models.AthleteVoteSummary{
			EventID:   in.EventID,
			AthleteID: in.AthleteID,
			VoteCount: 1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "event_id"}, {Name: "athlete_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"vote_count": gorm.Expr("athlete_vote_summaries.vote_count + 1"),
				"updated_at": now,
			}),
		}).Create(&summary).Error
	})
	if err != nil {
		metrics.VotesCast.WithLabelValues(voteOutcome(err)).Inc()
		return nil, err
	}

	metrics.VotesCast.WithLabelValues("accepted").Inc()
	votesChanged(in.EventID)
	return &vote, nil
}

// InvalidateVote marks a vote invalid and takes it out of the athlete's running count
func InvalidateVote(db *gorm.DB, voteID string) (*models.Vote, error) {
	var vote models.Vote
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vote, "id = ?", voteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVoteNotFound
			}
			return err
		}
		if !vote.IsValid {
			return ErrVoteAlreadyInvalid
		}

		if err := tx.Model(&vote).Update("is_valid", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.AthleteVoteSummary{}).
			Where("event_id = ? AND athlete_id = ? AND vote_count > 0", vote.EventID, vote.AthleteID).
			UpdateColumn("vote_count", gorm.Expr("vote_count - 1")).Error
	})
	if err != nil {
		return nil, err
	}

	votesChanged(vote.EventID)
	return &vote, nil
}

// SaveVoteSetting creates or updates the vote setting of an event
func SaveVoteSetting(db *gorm.DB, eventID string, in VoteSettingInput) (*models.VoteSetting, error) {
	if in.MaxVotesPerUser < 1 {
		return nil, ErrInvalidVoteSetting
	}
	if in.StartAt != nil && in.EndAt != nil && !in.EndAt.After(*in.StartAt) {
		return nil, ErrInvalidVoteSetting
	}

	var setting models.VoteSetting
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadEvent(tx, eventID); err != nil {
			return err
		}

		err := tx.Where("event_id = ?", eventID).First(&setting).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		setting.EventID = eventID
		setting.Enabled = in.Enabled
		setting.StartAt = in.StartAt
		setting.EndAt = in.EndAt
		setting.MaxVotesPerUser = in.MaxVotesPerUser
		return tx.Save(&setting).Error
	})
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetVoteSetting returns the vote setting of an event, or a disabled default when none was saved
func GetVoteSetting(db *gorm.DB, eventID string) (*models.VoteSetting, error) {
	if _, err := loadEvent(db, eventID); err != nil {
		return nil, err
	}

	var setting models.VoteSetting
	err := db.Where("event_id = ?", eventID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.VoteSetting{EventID: eventID, Enabled: false, MaxVotesPerUser: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// VoteSummary returns the running counts of an event, most voted first
func VoteSummary(db *gorm.DB, eventID string) ([]models.AthleteVoteSummary, error) {
	var summaries []models.AthleteVoteSummary
	err := db.Preload("Athlete.Color").
		Where("event_id = ?", eventID).
		Order("vote_count DESC").
		Find(&summaries).Error
	return summaries, err
}

// VotesRemaining returns how many more ballots a voter may cast in an event
func VotesRemaining(db *gorm.DB, eventID string, voter Voter) (int, error) {
	setting, err := GetVoteSetting(db, eventID)
	if err != nil {
		return 0, err
	}

	var cast int64
	if err := db.Model(&models.Vote{}).Scopes(voterScope(voter)).
		Where("event_id = ? AND is_valid = ?", eventID, true).
		Count(&cast).Error; err != nil {
		return 0, err
	}

	remaining := setting.MaxVotesPerUser - int(cast)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func checkVotingWindow(setting models.VoteSetting, now time.Time) error {
	if !setting.Enabled {
		return ErrVotingClosed
	}
	if setting.StartAt != nil && now.Before(*setting.StartAt) {
		return ErrVotingNotStarted
	}
	if setting.EndAt != nil && now.After(*setting.EndAt) {
		return ErrVotingEnded
	}
	return nil
}

// ensureVotableAthlete checks the athlete exists and, when the event has registrations, is one of them
func ensureVotableAthlete(tx *gorm.DB, eventID, athleteID string) error {
	var count int64
	if err := tx.Model(&models.Athlete{}).Where("id = ?", athleteID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAthleteNotFound
	}

	var registrations int64
	if err := tx.Model(&models.EventRegistration{}).Where("event_id = ?", eventID).Count(&registrations).Error; err != nil {
		return err
	}
	if registrations == 0 {
		return nil
	}

	var registered int64
	if err := tx.Model(&models.EventRegistration{}).
		Where("event_id = ? AND athlete_id = ?", eventID, athleteID).
		Count(&registered).Error; err != nil {
		return err
	}
	if registered == 0 {
		return ErrAthleteNotRegistered
	}
	return nil
}

func voteOutcome(err error) string {
	switch {
	case errors.Is(err, ErrVoteLimitReached):
		return "limit_reached"
	case errors.Is(err, ErrAlreadyVoted):
		return "duplicate"
	case errors.Is(err, ErrVotingClosed), errors.Is(err, ErrVotingNotStarted), errors.Is(err, ErrVotingEnded):
		return "closed"
	case errors.Is(err, ErrEventNotFound), errors.Is(err, ErrAthleteNotFound),
		errors.Is(err, ErrMatchNotFound), errors.Is(err, ErrAthleteNotRegistered):
		return "invalid"
	default:
		return "error"
	}
}

func votesChanged(eventID string) {
	realtime.Publish(realtime.Update{
		Channel:    realtime.EventChannel(eventID),
		UpdateType: realtime.UpdateVotes,
		Payload:    map[string]string{"eventId": eventID},
	})
}
