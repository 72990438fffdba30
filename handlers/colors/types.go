package colors

import "sportsday/models"

// Constants for error messages
const (
	ErrColorNotFound = "ไม่พบสี"
	ErrColorInUse    = "ไม่สามารถลบสีที่มีนักกีฬาหรือผลการแข่งขันอยู่"
)

// CreateColorRequest model for creating a color
type CreateColorRequest struct {
	Name    string `json:"name" binding:"required,max=50"`
	HexCode string `json:"hexCode" binding:"required,hexcolor,len=7"`
}

// UpdateColorRequest model for updating a color.
// The total score is derived from results and cannot be edited here.
type UpdateColorRequest struct {
	Name    string `json:"name" binding:"omitempty,max=50"`
	HexCode string `json:"hexCode" binding:"omitempty,hexcolor,len=7"`
}

// ColorDetail is a color with its majors and athlete count
type ColorDetail struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	HexCode      string         `json:"hexCode"`
	TotalScore   int            `json:"totalScore"`
	AthleteCount int64          `json:"athleteCount"`
	Majors       []models.Major `json:"majors"`
}
