package matches

import "time"

const (
	ErrMatchNotFound       = "ไม่พบคู่การแข่งขัน"
	ErrEventNotFound       = "ไม่พบรายการแข่งขันที่ระบุ"
	ErrColorNotFound       = "ไม่พบสีที่ระบุ"
	ErrSameColors          = "ทั้งสองฝั่งต้องเป็นคนละสี"
	ErrInvalidNextMatch    = "คู่ถัดไปต้องอยู่ในรายการแข่งขันเดียวกัน"
	ErrInvalidStatus       = "สถานะคู่การแข่งขันไม่ถูกต้อง"
	ErrAthleteNotFound     = "ไม่พบนักกีฬา"
	ErrParticipantNotFound = "ไม่พบผู้เข้าแข่งขัน"
	ErrWrongSide           = "นักกีฬาไม่ได้อยู่ในสีของฝั่งนี้"
	ErrAlreadyParticipant  = "นักกีฬาคนนี้อยู่ในคู่การแข่งขันนี้แล้ว"
)

// MatchRequest model for creating or replacing a match
type MatchRequest struct {
	EventID     string     `json:"eventId" binding:"required"`
	HomeColorID *string    `json:"homeColorId"`
	AwayColorID *string    `json:"awayColorId"`
	Round       int        `json:"round" binding:"required,min=1"`
	MatchNumber int        `json:"matchNumber" binding:"required,min=1"`
	Status      string     `json:"status" binding:"omitempty,oneof=SCHEDULED LIVE COMPLETED CANCELLED"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Venue       string     `json:"venue" binding:"max=150"`
	NextMatchID *string    `json:"nextMatchId"`
}

// ScoreRequest model for live score updates
type ScoreRequest struct {
	HomeScore int    `json:"homeScore" binding:"min=0"`
	AwayScore int    `json:"awayScore" binding:"min=0"`
	Status    string `json:"status" binding:"omitempty,oneof=SCHEDULED LIVE COMPLETED CANCELLED"`
}

// ParticipantRequest assigns an athlete to one side of a match
type ParticipantRequest struct {
	AthleteID string `json:"athleteId" binding:"required"`
	Side      string `json:"side" binding:"required,oneof=HOME AWAY"`
}
