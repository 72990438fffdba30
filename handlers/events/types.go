package events

import (
	"time"

	"sportsday/services"
)

const (
	ErrEventNotFound        = "ไม่พบรายการแข่งขัน"
	ErrSportTypeNotFound    = "ไม่พบประเภทกีฬาที่ระบุ"
	ErrInvalidStatus        = "สถานะรายการแข่งขันไม่ถูกต้อง"
	ErrInvalidTimeRange     = "เวลาสิ้นสุดต้องอยู่หลังเวลาเริ่ม"
	ErrRegistrationNotFound = "ไม่พบการลงทะเบียน"
	ErrAlreadyRegistered    = "นักกีฬาคนนี้ลงทะเบียนในรายการนี้แล้ว"
	ErrEventFull            = "จำนวนผู้เข้าแข่งขันของสีนี้ครบแล้ว"
	ErrEventClosed          = "รายการแข่งขันนี้ไม่เปิดรับการลงทะเบียน"
	ErrNotYourColor         = "คุณจัดการได้เฉพาะนักกีฬาในสีของคุณ"
	ErrExportFailed         = "ไม่สามารถสร้างไฟล์ส่งออกได้"
	ErrQRCodeFailed         = "ไม่สามารถสร้าง QR code ได้"
	MsgResultsCleared       = "ล้างผลการแข่งขันเรียบร้อยแล้ว"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EventRequest model for creating or replacing an event
type EventRequest struct {
	Name        string     `json:"name" binding:"required,max=150"`
	Description string     `json:"description"`
	Location    string     `json:"location" binding:"max=150"`
	SportTypeID string     `json:"sportTypeId" binding:"required"`
	StartTime   time.Time  `json:"startTime" binding:"required"`
	EndTime     *time.Time `json:"endTime"`
}

// StatusRequest model for moving an event to another status
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
}

// RegistrationRequest enrolls an athlete; the color is taken from the athlete
type RegistrationRequest struct {
	AthleteID string `json:"athleteId" binding:"required"`
}

// ResultsRequest replaces every result of an event
type ResultsRequest struct {
	Results []services.ResultInput `json:"results" binding:"required,min=1,dive"`
}

// CastVoteRequest model for casting a ballot
type CastVoteRequest struct {
	AthleteID string  `json:"athleteId" binding:"required"`
	MatchID   *string `json:"matchId"`
}

// CastVoteResponse is returned once a ballot is accepted
type CastVoteResponse struct {
	VoteID    string `json:"voteId"`
	Remaining int    `json:"remaining"`
}

// RemainingVotesResponse tells a voter how many ballots they have left
type RemainingVotesResponse struct {
	EventID   string `json:"eventId"`
	Remaining int    `json:"remaining"`
}

// BracketResponse is the bracket view of an event's matches
type BracketResponse struct {
	EventID string                  `json:"eventId"`
	Rounds  []services.BracketRound `json:"rounds"`
}
