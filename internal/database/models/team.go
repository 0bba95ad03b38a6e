package models

// Team represents a sports team. AverageRating and RatingCount are derived
// from the team's ratings and are only written by the rating recomputation.
type Team struct {
	BaseModel
	Name             string    `json:"name" gorm:"size:255;not null"` // unique on LOWER(name), see database.Migrate
	CreatedBy        uint      `json:"created_by" gorm:"not null;index"`
	SportTypeID      uint      `json:"sport_type_id" gorm:"not null;index"`
	Description      string    `json:"description" gorm:"size:1000"`
	Logo             string    `json:"logo" gorm:"size:500"`
	PrimaryColor     string    `json:"primary_color" gorm:"size:7"`
	SecondaryColor   string    `json:"secondary_color" gorm:"size:7"`
	City             string    `json:"city" gorm:"size:100"`
	Level            TeamLevel `json:"level,omitempty" gorm:"type:varchar(20)"`
	MaxMembers       int       `json:"max_members" gorm:"not null"`
	RequiresApproval bool      `json:"requires_approval" gorm:"not null"`
	AverageRating    float64   `json:"average_rating" gorm:"type:numeric(3,2);not null;default:0"`
	RatingCount      int       `json:"rating_count" gorm:"not null;default:0"`
	Active           bool      `json:"active" gorm:"not null;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
