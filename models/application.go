package models

import "time"

// ApplicationStatus is the lifecycle state of an application. Reviewers may
// move an application from any status to any other; the initial status is
// derived from the eligibility check at submission time.
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "APPLIED"
	StatusRejected           ApplicationStatus = "REJECTED"
	StatusShortlisted        ApplicationStatus = "SHORTLISTED"
	StatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	StatusHired              ApplicationStatus = "HIRED"
)

var statusLabels = map[ApplicationStatus]string{
	StatusApplied:            "Applied",
	StatusRejected:           "Rejected",
	StatusShortlisted:        "Shortlisted",
	StatusInterviewScheduled: "Interview Scheduled",
	StatusHired:              "Hired",
}

func (s ApplicationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable form shown to clients.
func (s ApplicationStatus) Label() string {
	return statusLabels[s]
}

// Application is the single application record owned by one applicant
// account. Score and MandatoryMet are always recomputed from the live
// criteria on (re)submission, never edited directly. Version backs the
// optimistic-concurrency check on resubmission.
type Application struct {
	ApplicationID  int               `gorm:"primaryKey;column:application_id" json:"application_id"`
	UserID         int               `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	FullName       string            `gorm:"column:full_name" json:"full_name"`
	Email          string            `gorm:"column:email" json:"email"`
	Phone          string            `gorm:"column:phone" json:"phone"`
	Location       string            `gorm:"column:location" json:"location"`
	ExperienceText string            `gorm:"column:experience_text" json:"experience_text"`
	Status         ApplicationStatus `gorm:"column:status" json:"status"`
	Score          float64           `gorm:"column:score" json:"score"`
	MandatoryMet   bool              `gorm:"column:mandatory_met" json:"mandatory_met"`
	CVPath         string            `gorm:"column:cv_path" json:"cv_path"`
	Version        int               `gorm:"column:version" json:"-"`
	CreatedAt      time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	User                User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MandatorySelections []MandatorySelection `gorm:"foreignKey:ApplicationID" json:"mandatory_selections,omitempty"`
	PreferredSelections []PreferredSelection `gorm:"foreignKey:ApplicationID" json:"preferred_selections,omitempty"`
	Scores              []Score              `gorm:"foreignKey:ApplicationID" json:"scores,omitempty"`
	Notes               []Note               `gorm:"foreignKey:ApplicationID" json:"notes,omitempty"`
	Events              []EventLog           `gorm:"foreignKey:ApplicationID" json:"events,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// MandatorySelection is one selected must-have criterion, one row per
// selection (normalized, not a JSON blob).
type MandatorySelection struct {
	SelectionID   int `gorm:"primaryKey;column:selection_id" json:"selection_id"`
	ApplicationID int `gorm:"column:application_id;index" json:"application_id"`
	CriterionID   int `gorm:"column:criterion_id" json:"criterion_id"`
}

func (MandatorySelection) TableName() string {
	return "application_mandatory_selections"
}

// PreferredSelection is one selected nice-to-have criterion together with
// the applicant's years of experience for it.
type PreferredSelection struct {
	SelectionID     int     `gorm:"primaryKey;column:selection_id" json:"selection_id"`
	ApplicationID   int     `gorm:"column:application_id;index" json:"application_id"`
	CriterionID     int     `gorm:"column:criterion_id" json:"criterion_id"`
	YearsExperience float64 `gorm:"column:years_experience" json:"years_experience"`
}

func (PreferredSelection) TableName() string {
	return "application_preferred_selections"
}
