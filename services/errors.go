package services

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrEventCancelled       = errors.New("event is cancelled")
	ErrColorNotFound        = errors.New("color not found")
	ErrAthleteNotFound      = errors.New("athlete not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrVoteNotFound         = errors.New("vote not found")
	ErrNoResults            = errors.New("no results provided")
	ErrInvalidResult        = errors.New("invalid result entry")
	ErrVotingClosed         = errors.New("voting is not enabled for this event")
	ErrVotingNotStarted     = errors.New("voting has not started yet")
	ErrVotingEnded          = errors.New("voting has ended")
	ErrVoteLimitReached     = errors.New("vote limit reached")
	ErrAlreadyVoted         = errors.New("already voted for this athlete")
	ErrAthleteNotRegistered = errors.New("athlete is not registered in this event")
	ErrVoteAlreadyInvalid   = errors.New("vote already invalidated")
	ErrInvalidVoteSetting   = errors.New("invalid vote setting")
	ErrNoVoterIdentity      = errors.New("voter has neither user id nor ip address")
)
