package models

// Major is an academic grouping of athletes, optionally tied to a color
type Major struct {
	Base
	Name    string  `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	ColorID *string `gorm:"type:uuid;index" json:"colorId"`
	Color   *Color  `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}
