package models

import "time"

// Score is a single reviewer evaluation for one category of one
// application. At most one row exists per (application, reviewer,
// category); repeated submissions overwrite the value.
type Score struct {
	ScoreID       int       `gorm:"primaryKey;column:score_id" json:"score_id"`
	ApplicationID int       `gorm:"column:application_id;uniqueIndex:idx_score_identity" json:"application_id"`
	ReviewerID    int       `gorm:"column:reviewer_id;uniqueIndex:idx_score_identity" json:"reviewer_id"`
	Category      string    `gorm:"column:category;size:64;uniqueIndex:idx_score_identity" json:"category"`
	Value         int       `gorm:"column:value" json:"value"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (Score) TableName() string {
	return "scores"
}

// Note is a free-text reviewer annotation. Immutable once created.
type Note struct {
	NoteID        int       `gorm:"primaryKey;column:note_id" json:"note_id"`
	ApplicationID int       `gorm:"column:application_id;index" json:"application_id"`
	ReviewerID    int       `gorm:"column:reviewer_id" json:"reviewer_id"`
	Content       string    `gorm:"column:content" json:"content"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
