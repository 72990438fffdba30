package awards

const (
	ErrAwardNotFound   = "ไม่พบรางวัล"
	ErrEventNotFound   = "ไม่พบรายการแข่งขันที่ระบุ"
	ErrAthleteNotFound = "ไม่พบนักกีฬา"
	ErrWinnerNotFound  = "ไม่พบผู้ได้รับรางวัล"
	ErrAlreadyWinner   = "นักกีฬาคนนี้ได้รับรางวัลนี้แล้ว"
)

// AwardRequest model for creating or replacing an award
type AwardRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description string  `json:"description" binding:"max=255"`
	EventID     *string `json:"eventId"`
}

// WinnerRequest model for granting an award to an athlete
type WinnerRequest struct {
	AthleteID string `json:"athleteId" binding:"required"`
	Note      string `json:"note" binding:"max=255"`
}
