package events

import (
	"net/http"
	"strconv"
	"time"

	"sportsday/config"
	"sportsday/handlers/common"
	"sportsday/middleware"
	"sportsday/services"
	"sportsday/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	minQRCodeSize = 128
	maxQRCodeSize = 1024
)

// GetVoteSettings returns the vote setting of an event
// @Summary Get vote settings
// @Tags Votes
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.VoteSetting
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/vote-settings [get]
func GetVoteSettings(c *gin.Context) {
	setting, err := services.GetVoteSetting(common.DB(c), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateVoteSettings opens, closes or reschedules voting for an event
// @Summary Update vote settings
// @Tags Votes
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param setting body services.VoteSettingInput true "Vote setting"
// @Success 200 {object} models.VoteSetting
// @Failure 400,404 {object} response.ErrorResponse
// @Router /events/{id}/vote-settings [put]
// @Security Bearer
func UpdateVoteSettings(c *gin.Context) {
	var req services.VoteSettingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	setting, err := services.SaveVoteSetting(common.DB(c), c.Param("id"), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.Audit(c, services.ActionUpdate, "vote_setting", setting.EventID, "")
	c.JSON(http.StatusOK, setting)
}

// CastVote records a ballot for an athlete.
// Signed-in users are counted by account, anonymous viewers by IP address.
// @Summary Cast a vote
// @Tags Votes
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param vote body CastVoteRequest true "Ballot"
// @Success 201 {object} CastVoteResponse
// @Failure 400,404,409,429 {object} response.ErrorResponse
// @Router /events/{id}/votes [post]
func CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	voter := voterFromRequest(c)
	vote, err := services.CastVote(common.DB(c), services.CastVoteInput{
		EventID:   c.Param("id"),
		AthleteID: req.AthleteID,
		MatchID:   req.MatchID,
		Voter:     voter,
	}, time.Now())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	remaining, err := services.VotesRemaining(common.DB(c), vote.EventID, voter)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CastVoteResponse{VoteID: vote.ID, Remaining: remaining})
}

// GetRemainingVotes tells the caller how many ballots they may still cast
// @Summary Get remaining votes
// @Tags Votes
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} RemainingVotesResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/votes/remaining [get]
func GetRemainingVotes(c *gin.Context) {
	eventID := c.Param("id")
	remaining, err := services.VotesRemaining(common.DB(c), eventID, voterFromRequest(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RemainingVotesResponse{EventID: eventID, Remaining: remaining})
}

// GetVoteSummary returns the running vote counts of an event
// @Summary Get vote summary
// @Tags Votes
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} models.AthleteVoteSummary
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/votes/summary [get]
func GetVoteSummary(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	summaries, err := services.VoteSummary(common.DB(c), event.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetVoteQRCode renders a QR code pointing at the voting page of an event
// @Summary Get the voting QR code
// @Tags Votes
// @Produce png
// @Param id path string true "Event ID"
// @Param size query int false "Image size in pixels"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse
// @Router /events/{id}/vote-qrcode [get]
func GetVoteQRCode(c *gin.Context) {
	event, ok := findEvent(c, common.DB(c))
	if !ok {
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil {
		size = 256
	}
	size = min(max(size, minQRCodeSize), maxQRCodeSize)

	png, err := services.GenerateVoteQRCode(config.Current.ClientURL, event.ID, size)
	if err != nil {
		log.WithError(err).WithField("event_id", event.ID).Error("qr code generation failed")
		response.Error(c, http.StatusInternalServerError, ErrQRCodeFailed)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func voterFromRequest(c *gin.Context) services.Voter {
	voter := services.Voter{IP: c.ClientIP()}
	if user := middleware.GetOptionalUser(c); user != nil {
		voter.UserID = &user.ID
	}
	return voter
}
