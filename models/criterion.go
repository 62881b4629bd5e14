package models

import "time"

// CriterionKind distinguishes eligibility gates from weighted preferences.
type CriterionKind string

const (
	// KindMustHave criteria are unweighted; an applicant must select all of
	// them to be eligible.
	KindMustHave CriterionKind = "MUST_HAVE"
	// KindNiceToHave criteria carry a weight and contribute
	// weight * years-of-experience to the applicant's score.
	KindNiceToHave CriterionKind = "NICE_TO_HAVE"
)

func (k CriterionKind) IsValid() bool {
	return k == KindMustHave || k == KindNiceToHave
}

// Criterion is one evaluation criterion managed by administrators.
// Weight is NULL for MUST_HAVE and required for NICE_TO_HAVE.
type Criterion struct {
	CriterionID int           `gorm:"primaryKey;column:criterion_id" json:"criterion_id"`
	Kind        CriterionKind `gorm:"column:kind" json:"kind"`
	Label       string        `gorm:"column:label" json:"label"`
	Weight      *float64      `gorm:"column:weight" json:"weight"`
	CreatedAt   time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

func (Criterion) TableName() string {
	return "criteria"
}
