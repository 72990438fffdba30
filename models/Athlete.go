package models

// Athlete is a student competing for a color
type Athlete struct {
	Base
	StudentCode string `gorm:"type:varchar(20);uniqueIndex;not null" json:"studentCode"`
	FirstName   string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName    string `gorm:"type:varchar(100);not null" json:"lastName"`
	Nickname    string `gorm:"type:varchar(50)" json:"nickname"`
	Gender      string `gorm:"type:varchar(10)" json:"gender"`
	PhotoURL    string `gorm:"type:varchar(255)" json:"photoUrl"`
	MajorID     string `gorm:"type:uuid;not null;index" json:"majorId"`
	ColorID     string `gorm:"type:uuid;not null;index" json:"colorId"`
	Major       *Major `gorm:"foreignKey:MajorID" json:"major,omitempty"`
	Color       *Color `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}
