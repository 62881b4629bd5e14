package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"recruiting-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationService owns the application lifecycle: submission and
// resubmission, reviewer evaluations, notes, status transitions and the
// audit trail they emit. Every state-changing operation writes its audit
// event in the same transaction as the state itself.
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// SubmissionInput carries the applicant-provided fields of a submission.
// CVPath is the stored path of a freshly uploaded résumé; empty means
// keep the existing one (resubmission only).
type SubmissionInput struct {
	FullName       string
	Email          string
	Phone          string
	Location       string
	ExperienceText string
	MandatoryIDs   []int
	Preferred      []PreferredSelectionInput
	CVPath         string
}

// ScoreInput is one category/value pair in a reviewer score batch.
type ScoreInput struct {
	Category string `json:"category" binding:"required,min=1,max=64"`
	Value    int    `json:"value" binding:"required,min=1,max=5"`
}

// ListFilters narrows and orders the reviewer listing. Nil fields are
// ignored. Sort is one of score_desc, score_asc, created_desc,
// created_asc; empty defaults to score_desc.
type ListFilters struct {
	Status       *models.ApplicationStatus
	MinScore     *float64
	MaxScore     *float64
	MandatoryMet *bool
	Sort         string
}

// ApplicationSummary is one row of the reviewer listing.
type ApplicationSummary struct {
	ApplicationID   int                      `json:"application_id"`
	UserID          int                      `json:"user_id"`
	FullName        string                   `json:"full_name"`
	Email           string                   `json:"email"`
	Location        string                   `json:"location"`
	Status          models.ApplicationStatus `json:"status"`
	StatusLabel     string                   `json:"status_label"`
	Score           float64                  `json:"score"`
	MandatoryMet    bool                     `json:"mandatory_met"`
	ReviewerAverage *float64                 `json:"reviewer_average"`
	CreatedAt       string                   `json:"created_at"`
}

var listOrderings = map[string]string{
	"score_desc":   "score DESC",
	"score_asc":    "score ASC",
	"created_desc": "created_at DESC",
	"created_asc":  "created_at ASC",
}

// Submit creates the applicant's application or, when one already exists,
// resubmits it: contact fields are overwritten, selections are replaced,
// and eligibility, score and status are recomputed from the live criteria.
// The returned bool reports whether a new record was created.
func (s *ApplicationService) Submit(userID int, in SubmissionInput) (*models.Application, bool, error) {
	var existing *models.Application
	var found models.Application
	err := s.db.Where("user_id = ?", userID).First(&found).Error
	switch {
	case err == nil:
		existing = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		existing = nil
	default:
		return nil, false, err
	}

	if existing == nil && in.CVPath == "" {
		return nil, false, NewValidationError("CV file is required")
	}

	var mustHave, niceToHave []models.Criterion
	if err := s.db.Where("kind = ?", models.KindMustHave).Find(&mustHave).Error; err != nil {
		return nil, false, err
	}
	if err := s.db.Where("kind = ?", models.KindNiceToHave).Find(&niceToHave).Error; err != nil {
		return nil, false, err
	}

	result, err := Evaluate(in.MandatoryIDs, in.Preferred, mustHave, niceToHave)
	if err != nil {
		return nil, false, err
	}

	cvPath := in.CVPath
	if cvPath == "" {
		cvPath = existing.CVPath
	}

	var saved models.Application
	created := existing == nil

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if existing != nil {
			previousStatus := existing.Status

			updates := map[string]interface{}{
				"full_name":       in.FullName,
				"email":           strings.ToLower(in.Email),
				"phone":           in.Phone,
				"location":        in.Location,
				"experience_text": in.ExperienceText,
				"mandatory_met":   result.MandatoryMet,
				"score":           result.Score,
				"status":          result.Status,
				"cv_path":         cvPath,
				"version":         existing.Version + 1,
			}

			// Version check guards against a concurrent resubmission of
			// the same application racing this one.
			res := tx.Model(&models.Application{}).
				Where("application_id = ? AND version = ?", existing.ApplicationID, existing.Version).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrConflict
			}

			if err := tx.Where("application_id = ?", existing.ApplicationID).
				Delete(&models.MandatorySelection{}).Error; err != nil {
				return err
			}
			if err := tx.Where("application_id = ?", existing.ApplicationID).
				Delete(&models.PreferredSelection{}).Error; err != nil {
				return err
			}

			if err := tx.First(&saved, existing.ApplicationID).Error; err != nil {
				return err
			}

			event := models.EventLog{
				ApplicationID: saved.ApplicationID,
				ActorID:       userID,
				Action:        fmt.Sprintf("Application resubmitted (%s -> %s)", previousStatus, result.Status),
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		} else {
			saved = models.Application{
				UserID:         userID,
				FullName:       in.FullName,
				Email:          strings.ToLower(in.Email),
				Phone:          in.Phone,
				Location:       in.Location,
				ExperienceText: in.ExperienceText,
				Status:         result.Status,
				Score:          result.Score,
				MandatoryMet:   result.MandatoryMet,
				CVPath:         cvPath,
				Version:        1,
			}
			if err := tx.Create(&saved).Error; err != nil {
				return err
			}

			event := models.EventLog{
				ApplicationID: saved.ApplicationID,
				ActorID:       userID,
				Action:        fmt.Sprintf("Application submitted with status %s", result.Status),
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}

		for _, id := range result.MandatoryIDs {
			selection := models.MandatorySelection{ApplicationID: saved.ApplicationID, CriterionID: id}
			if err := tx.Create(&selection).Error; err != nil {
				return err
			}
		}
		for _, selection := range result.PreferredSelections {
			row := models.PreferredSelection{
				ApplicationID:   saved.ApplicationID,
				CriterionID:     selection.CriterionID,
				YearsExperience: selection.YearsExperience,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if !result.MandatoryMet {
			event := models.EventLog{
				ApplicationID: saved.ApplicationID,
				ActorID:       userID,
				Action:        "Auto rejected: mandatory criteria not met",
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, false, txErr
	}

	return &saved, created, nil
}

// detailQuery preloads the full record: selections, scores with
// reviewers, notes and the audit trail in their display order.
func (s *ApplicationService) detailQuery() *gorm.DB {
	return s.db.
		Preload("MandatorySelections").
		Preload("PreferredSelections").
		Preload("Scores", func(db *gorm.DB) *gorm.DB {
			return db.Order("category ASC").Order("created_at DESC")
		}).
		Preload("Scores.Reviewer").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Notes.Reviewer").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Events.Actor").
		Preload("User")
}

// GetByUser returns the full application owned by the given applicant.
func (s *ApplicationService) GetByUser(userID int) (*models.Application, error) {
	var application models.Application
	if err := s.detailQuery().Where("user_id = ?", userID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// GetDetail returns the full application by id.
func (s *ApplicationService) GetDetail(applicationID int) (*models.Application, error) {
	var application models.Application
	if err := s.detailQuery().First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// List returns application summaries filtered and sorted server-side.
// Queries always run against the persisted record set, so every call
// reflects the latest writes.
func (s *ApplicationService) List(filters ListFilters) ([]ApplicationSummary, error) {
	sortKey := filters.Sort
	if sortKey == "" {
		sortKey = "score_desc"
	}
	ordering, ok := listOrderings[sortKey]
	if !ok {
		return nil, NewValidationError("Invalid sort key",
			FieldError{Path: "sort", Message: "must be one of score_desc, score_asc, created_desc, created_asc"})
	}

	query := s.db.Model(&models.Application{}).Preload("Scores").Preload("User")
	if filters.Status != nil {
		if !filters.Status.IsValid() {
			return nil, NewValidationError("Invalid status filter",
				FieldError{Path: "status", Message: "unknown status"})
		}
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.MandatoryMet != nil {
		query = query.Where("mandatory_met = ?", *filters.MandatoryMet)
	}
	if filters.MinScore != nil {
		query = query.Where("score >= ?", *filters.MinScore)
	}
	if filters.MaxScore != nil {
		query = query.Where("score <= ?", *filters.MaxScore)
	}

	var applications []models.Application
	if err := query.Order(ordering).Find(&applications).Error; err != nil {
		return nil, err
	}

	summaries := make([]ApplicationSummary, 0, len(applications))
	for _, application := range applications {
		summaries = append(summaries, ApplicationSummary{
			ApplicationID:   application.ApplicationID,
			UserID:          application.UserID,
			FullName:        application.FullName,
			Email:           application.Email,
			Location:        application.Location,
			Status:          application.Status,
			StatusLabel:     application.Status.Label(),
			Score:           application.Score,
			MandatoryMet:    application.MandatoryMet,
			ReviewerAverage: AverageScore(application.Scores),
			CreatedAt:       application.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// UpdateStatus moves an application to the given status and records the
// transition in the audit trail, both in one transaction. Any status is
// reachable from any other.
func (s *ApplicationService) UpdateStatus(applicationID, actorID int, status models.ApplicationStatus) (*models.Application, models.ApplicationStatus, error) {
	if !status.IsValid() {
		return nil, "", NewValidationError("Invalid status",
			FieldError{Path: "status", Message: "unknown status"})
	}

	var application models.Application
	if err := s.db.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	previousStatus := application.Status

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&application).Update("status", status).Error; err != nil {
			return err
		}
		event := models.EventLog{
			ApplicationID: applicationID,
			ActorID:       actorID,
			Action:        fmt.Sprintf("Status changed from %s to %s", previousStatus, status),
		}
		return tx.Create(&event).Error
	})
	if txErr != nil {
		return nil, "", txErr
	}

	application.Status = status
	return &application, previousStatus, nil
}

// UpsertScores writes a batch of category scores for one reviewer.
// A repeated (application, reviewer, category) triple overwrites the prior
// value instead of adding a row. Duplicate categories within one batch are
// rejected before anything is written.
func (s *ApplicationService) UpsertScores(applicationID, reviewerID int, inputs []ScoreInput) error {
	if len(inputs) == 0 {
		return NewValidationError("At least one score is required")
	}

	seen := make(map[string]bool, len(inputs))
	categories := make([]string, 0, len(inputs))
	for _, in := range inputs {
		category := strings.TrimSpace(in.Category)
		if category == "" || utf8.RuneCountInString(category) > 64 {
			return NewValidationError("Invalid score category",
				FieldError{Path: "category", Message: "must be 1-64 characters"})
		}
		if in.Value < 1 || in.Value > 5 {
			return NewValidationError("Score value out of range",
				FieldError{Path: "value", Message: "must be between 1 and 5"})
		}
		key := strings.ToLower(category)
		if seen[key] {
			return NewValidationError("Duplicate score categories are not allowed")
		}
		seen[key] = true
		categories = append(categories, category)
	}

	var application models.Application
	if err := s.db.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			score := models.Score{
				ApplicationID: applicationID,
				ReviewerID:    reviewerID,
				Category:      strings.TrimSpace(in.Category),
				Value:         in.Value,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "application_id"},
					{Name: "reviewer_id"},
					{Name: "category"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&score).Error; err != nil {
				return err
			}
		}

		event := models.EventLog{
			ApplicationID: applicationID,
			ActorID:       reviewerID,
			Action:        fmt.Sprintf("Reviewer updated scores (%s)", strings.Join(categories, ", ")),
		}
		return tx.Create(&event).Error
	})
}

// AddNote attaches an immutable reviewer note to an application.
func (s *ApplicationService) AddNote(applicationID, reviewerID int, content string) (*models.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > 2000 {
		return nil, NewValidationError("Note content must be 1-2000 characters",
			FieldError{Path: "content", Message: "must be 1-2000 characters"})
	}

	var application models.Application
	if err := s.db.First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	note := models.Note{
		ApplicationID: applicationID,
		ReviewerID:    reviewerID,
		Content:       content,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&note).Error; err != nil {
			return err
		}
		event := models.EventLog{
			ApplicationID: applicationID,
			ActorID:       reviewerID,
			Action:        "Reviewer added an internal note",
		}
		return tx.Create(&event).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.db.Preload("Reviewer").First(&note, note.NoteID).Error; err != nil {
		return nil, err
	}
	return &note, nil
}
