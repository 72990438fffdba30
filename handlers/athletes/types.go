package athletes

const (
	ErrAthleteNotFound = "ไม่พบนักกีฬา"
	ErrMajorNotFound   = "ไม่พบสาขาวิชาที่ระบุ"
	ErrColorNotFound   = "ไม่พบสีที่ระบุ"
	ErrNotYourColor    = "คุณจัดการได้เฉพาะนักกีฬาในสีของคุณ"
	ErrAthleteInUse    = "ไม่สามารถลบนักกีฬาที่มีผลการแข่งขันหรือรางวัลอยู่"
)

// AthleteRequest model for creating or replacing an athlete
type AthleteRequest struct {
	StudentCode string `json:"studentCode" binding:"required,max=20"`
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Nickname    string `json:"nickname" binding:"max=50"`
	Gender      string `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	PhotoURL    string `json:"photoUrl" binding:"omitempty,url,max=255"`
	MajorID     string `json:"majorId" binding:"required"`
	ColorID     string `json:"colorId" binding:"required"`
}
