package models

// Color represents a competing team, distinguished by its hue
type Color struct {
	Base
	Name       string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	HexCode    string        `gorm:"type:varchar(7);not null" json:"hexCode"`
	TotalScore int           `gorm:"not null;default:0" json:"totalScore"`
	Majors     []Major       `gorm:"foreignKey:ColorID" json:"majors,omitempty"`
	Results    []EventResult `gorm:"foreignKey:ColorID" json:"results,omitempty"`
}
