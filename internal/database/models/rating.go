package models

// Rating is a score given by one user to one team, optionally for a match.
// NULL match ids are distinct in Postgres so only match ratings collide.
type Rating struct {
	BaseModel
	TeamID       uint    `json:"team_id" gorm:"not null;index;uniqueIndex:idx_team_ratings_match_evaluator_team,priority:3"`
	EvaluatorID  uint    `json:"evaluator_id" gorm:"not null;index;uniqueIndex:idx_team_ratings_match_evaluator_team,priority:2"`
	MatchID      *uint   `json:"match_id,omitempty" gorm:"uniqueIndex:idx_team_ratings_match_evaluator_team,priority:1"`
	Score        float64 `json:"score" gorm:"type:numeric(2,1);not null"`
	Strengths    string  `json:"strengths" gorm:"size:1000"`
	Improvements string  `json:"improvements" gorm:"size:1000"`
	Comment      string  `json:"comment" gorm:"size:500"`
	Anonymous    bool    `json:"anonymous" gorm:"not null"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "team_ratings"
}
