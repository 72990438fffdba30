package services_test

import (
	"errors"
	"testing"
	"time"

	"sportsday/models"
	"sportsday/services"
	"sportsday/testutil"
	"sportsday/utils/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func now() time.Time {
	return time.Now()
}

type votingFixture struct {
	db       *gorm.DB
	event    *models.Event
	athletes []*models.Athlete
}

func setupVoting(t *testing.T, maxVotes int) votingFixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	red := testutil.CreateColor(t, db, "Red")
	event := testutil.CreateEvent(t, db)
	testutil.EnableVoting(t, db, event.ID, maxVotes)

	athletes := []*models.Athlete{
		testutil.CreateAthlete(t, db, red.ID),
		testutil.CreateAthlete(t, db, red.ID),
		testutil.CreateAthlete(t, db, red.ID),
	}
	return votingFixture{db: db, event: event, athletes: athletes}
}

func (f votingFixture) vote(athlete *models.Athlete, voter services.Voter) error {
	_, err := services.CastVote(f.db, services.CastVoteInput{
		EventID:   f.event.ID,
		AthleteID: athlete.ID,
		Voter:     voter,
	}, now())
	return err
}

func voteCount(t *testing.T, db *gorm.DB, eventID, athleteID string) int {
	t.Helper()
	var summary models.AthleteVoteSummary
	err := db.Where("event_id = ? AND athlete_id = ?", eventID, athleteID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return summary.VoteCount
}

func TestCastVoteCountsAndSummary(t *testing.T) {
	f := setupVoting(t, 2)

	require.NoError(t, f.vote(f.athletes[0], services.Voter{IP: "10.0.0.1"}))
	require.NoError(t, f.vote(f.athletes[0], services.Voter{IP: "10.0.0.2"}))
	require.NoError(t, f.vote(f.athletes[1], services.Voter{IP: "10.0.0.1"}))

	assert.Equal(t, 2, voteCount(t, f.db, f.event.ID, f.athletes[0].ID))
	assert.Equal(t, 1, voteCount(t, f.db, f.event.ID, f.athletes[1].ID))

	summaries, err := services.VoteSummary(f.db, f.event.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, f.athletes[0].ID, summaries[0].AthleteID)
	assert.NotNil(t, summaries[0].Athlete)
}

func TestCastVoteEnforcesCapPerVoter(t *testing.T) {
	f := setupVoting(t, 2)
	anonymous := services.Voter{IP: "10.0.0.1"}

	require.NoError(t, f.vote(f.athletes[0], anonymous))
	require.NoError(t, f.vote(f.athletes[1], anonymous))
	assert.ErrorIs(t, f.vote(f.athletes[2], anonymous), services.ErrVoteLimitReached)

	remaining, err := services.VotesRemaining(f.db, f.event.ID, anonymous)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// A signed-in user behind the same address has a cap of their own
	user := testutil.CreateUser(t, f.db, permissions.USER, nil)
	member := services.Voter{UserID: &user.ID, IP: "10.0.0.1"}
	require.NoError(t, f.vote(f.athletes[2], member))

	remaining, err = services.VotesRemaining(f.db, f.event.ID, member)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	var total int64
	require.NoError(t, f.db.Model(&models.Vote{}).Where("event_id = ?", f.event.ID).Count(&total).Error)
	assert.Equal(t, int64(3), total)
}

func TestCastVoteRejectsSameAthleteTwice(t *testing.T) {
	f := setupVoting(t, 5)
	voter := services.Voter{IP: "10.0.0.1"}

	require.NoError(t, f.vote(f.athletes[0], voter))
	assert.ErrorIs(t, f.vote(f.athletes[0], voter), services.ErrAlreadyVoted)
	assert.Equal(t, 1, voteCount(t, f.db, f.event.ID, f.athletes[0].ID))
}

func TestCastVoteWindow(t *testing.T) {
	f := setupVoting(t, 1)
	voter := services.Voter{IP: "10.0.0.1"}

	var setting models.VoteSetting
	require.NoError(t, f.db.Where("event_id = ?", f.event.ID).First(&setting).Error)

	future := time.Now().Add(time.Hour)
	require.NoError(t, f.db.Model(&setting).Update("start_at", future).Error)
	assert.ErrorIs(t, f.vote(f.athletes[0], voter), services.ErrVotingNotStarted)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, f.db.Model(&setting).Updates(map[string]interface{}{
		"start_at": past.Add(-time.Hour),
		"end_at":   past,
	}).Error)
	assert.ErrorIs(t, f.vote(f.athletes[0], voter), services.ErrVotingEnded)

	require.NoError(t, f.db.Model(&setting).Updates(map[string]interface{}{
		"start_at": nil,
		"end_at":   nil,
		"enabled":  false,
	}).Error)
	assert.ErrorIs(t, f.vote(f.athletes[0], voter), services.ErrVotingClosed)

	assert.Zero(t, voteCount(t, f.db, f.event.ID, f.athletes[0].ID))
}

func TestCastVoteWithoutSetting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	red := testutil.CreateColor(t, db, "Red")
	event := testutil.CreateEvent(t, db)
	athlete := testutil.CreateAthlete(t, db, red.ID)

	_, err := services.CastVote(db, services.CastVoteInput{
		EventID:   event.ID,
		AthleteID: athlete.ID,
		Voter:     services.Voter{IP: "10.0.0.1"},
	}, now())
	assert.ErrorIs(t, err, services.ErrVotingClosed)

	_, err = services.CastVote(db, services.CastVoteInput{EventID: event.ID, AthleteID: athlete.ID}, now())
	assert.ErrorIs(t, err, services.ErrNoVoterIdentity)
}

func TestCastVoteRequiresRegisteredAthlete(t *testing.T) {
	f := setupVoting(t, 3)
	require.NoError(t, f.db.Create(&models.EventRegistration{
		EventID:   f.event.ID,
		AthleteID: f.athletes[0].ID,
		ColorID:   f.athletes[0].ColorID,
	}).Error)
	voter := services.Voter{IP: "10.0.0.1"}

	require.NoError(t, f.vote(f.athletes[0], voter))
	assert.ErrorIs(t, f.vote(f.athletes[1], voter), services.ErrAthleteNotRegistered)
	assert.ErrorIs(t, f.vote(&models.Athlete{Base: models.Base{ID: "missing"}}, voter), services.ErrAthleteNotFound)
}

func TestCastVoteChecksMatchBelongsToEvent(t *testing.T) {
	f := setupVoting(t, 3)
	other := testutil.CreateEvent(t, f.db)
	match := models.Match{EventID: other.ID, Round: 1, MatchNumber: 1}
	require.NoError(t, f.db.Create(&match).Error)

	_, err := services.CastVote(f.db, services.CastVoteInput{
		EventID:   f.event.ID,
		AthleteID: f.athletes[0].ID,
		MatchID:   &match.ID,
		Voter:     services.Voter{IP: "10.0.0.1"},
	}, now())
	assert.ErrorIs(t, err, services.ErrMatchNotFound)
}

func TestInvalidateVote(t *testing.T) {
	f := setupVoting(t, 1)
	voter := services.Voter{IP: "10.0.0.1"}

	vote, err := services.CastVote(f.db, services.CastVoteInput{
		EventID:   f.event.ID,
		AthleteID: f.athletes[0].ID,
		Voter:     voter,
	}, now())
	require.NoError(t, err)
	assert.ErrorIs(t, f.vote(f.athletes[1], voter), services.ErrVoteLimitReached)

	invalidated, err := services.InvalidateVote(f.db, vote.ID)
	require.NoError(t, err)
	assert.False(t, invalidated.IsValid)
	assert.Zero(t, voteCount(t, f.db, f.event.ID, f.athletes[0].ID))

	_, err = services.InvalidateVote(f.db, vote.ID)
	assert.ErrorIs(t, err, services.ErrVoteAlreadyInvalid)
	_, err = services.InvalidateVote(f.db, "missing")
	assert.ErrorIs(t, err, services.ErrVoteNotFound)

	// The invalid ballot no longer counts toward the cap
	require.NoError(t, f.vote(f.athletes[1], voter))
}

func TestSaveVoteSetting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	event := testutil.CreateEvent(t, db)

	setting, err := services.GetVoteSetting(db, event.ID)
	require.NoError(t, err)
	assert.False(t, setting.Enabled)
	assert.Equal(t, 1, setting.MaxVotesPerUser)

	start := time.Now()
	end := start.Add(2 * time.Hour)
	saved, err := services.SaveVoteSetting(db, event.ID, services.VoteSettingInput{
		Enabled: true, StartAt: &start, EndAt: &end, MaxVotesPerUser: 3,
	})
	require.NoError(t, err)
	assert.True(t, saved.Enabled)

	// Saving again updates the same row
	_, err = services.SaveVoteSetting(db, event.ID, services.VoteSettingInput{Enabled: false, MaxVotesPerUser: 2})
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&models.VoteSetting{}).Where("event_id = ?", event.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = services.SaveVoteSetting(db, event.ID, services.VoteSettingInput{
		Enabled: true, StartAt: &end, EndAt: &start, MaxVotesPerUser: 1,
	})
	assert.ErrorIs(t, err, services.ErrInvalidVoteSetting)
	_, err = services.SaveVoteSetting(db, event.ID, services.VoteSettingInput{MaxVotesPerUser: 0})
	assert.ErrorIs(t, err, services.ErrInvalidVoteSetting)
	_, err = services.SaveVoteSetting(db, "missing", services.VoteSettingInput{MaxVotesPerUser: 1})
	assert.ErrorIs(t, err, services.ErrEventNotFound)
}
