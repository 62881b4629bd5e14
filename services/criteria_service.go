package services

import (
	"errors"

	"recruiting-api/models"

	"gorm.io/gorm"
)

// CriteriaService owns the evaluation criteria and enforces the
// kind/weight invariant at every write.
type CriteriaService struct {
	db *gorm.DB
}

func NewCriteriaService(db *gorm.DB) *CriteriaService {
	return &CriteriaService{db: db}
}

// CriteriaSet is the partitioned listing returned to clients.
type CriteriaSet struct {
	MustHave   []models.Criterion `json:"must_have"`
	NiceToHave []models.Criterion `json:"nice_to_have"`
}

// CriterionInput is the write payload for create and update.
type CriterionInput struct {
	Kind   models.CriterionKind `json:"kind" binding:"required"`
	Label  string               `json:"label" binding:"required,min=2,max=255"`
	Weight *float64             `json:"weight"`
}

// validate enforces the invariant: NICE_TO_HAVE requires a weight in
// [0,100], MUST_HAVE never carries one regardless of input.
func (in *CriterionInput) validate() (*float64, error) {
	if !in.Kind.IsValid() {
		return nil, NewValidationError("Invalid criterion kind",
			FieldError{Path: "kind", Message: "must be MUST_HAVE or NICE_TO_HAVE"})
	}
	if in.Kind == models.KindMustHave {
		return nil, nil
	}
	if in.Weight == nil {
		return nil, NewValidationError("Weight is required for NICE_TO_HAVE criteria",
			FieldError{Path: "weight", Message: "required"})
	}
	if *in.Weight < 0 || *in.Weight > 100 {
		return nil, NewValidationError("Weight must be between 0 and 100",
			FieldError{Path: "weight", Message: "out of range"})
	}
	weight := *in.Weight
	return &weight, nil
}

// List returns all criteria partitioned by kind, each partition sorted by
// label for deterministic output.
func (s *CriteriaService) List() (*CriteriaSet, error) {
	set := &CriteriaSet{
		MustHave:   []models.Criterion{},
		NiceToHave: []models.Criterion{},
	}

	if err := s.db.Where("kind = ?", models.KindMustHave).
		Order("label ASC").Find(&set.MustHave).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("kind = ?", models.KindNiceToHave).
		Order("label ASC").Find(&set.NiceToHave).Error; err != nil {
		return nil, err
	}
	return set, nil
}

func (s *CriteriaService) Create(in CriterionInput) (*models.Criterion, error) {
	weight, err := in.validate()
	if err != nil {
		return nil, err
	}

	criterion := models.Criterion{
		Kind:   in.Kind,
		Label:  in.Label,
		Weight: weight,
	}
	if err := s.db.Create(&criterion).Error; err != nil {
		return nil, err
	}
	return &criterion, nil
}

func (s *CriteriaService) Update(id int, in CriterionInput) (*models.Criterion, error) {
	weight, err := in.validate()
	if err != nil {
		return nil, err
	}

	var criterion models.Criterion
	if err := s.db.First(&criterion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	criterion.Kind = in.Kind
	criterion.Label = in.Label
	criterion.Weight = weight

	// Updates with a map so a NULL weight is written through.
	if err := s.db.Model(&criterion).Updates(map[string]interface{}{
		"kind":   criterion.Kind,
		"label":  criterion.Label,
		"weight": criterion.Weight,
	}).Error; err != nil {
		return nil, err
	}
	return &criterion, nil
}

// Delete removes a criterion, refusing when any application selection
// still references it. Dangling selection ids would silently change
// historical eligibility on resubmission, so the restrict policy wins.
func (s *CriteriaService) Delete(id int) error {
	var criterion models.Criterion
	if err := s.db.First(&criterion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var refs int64
	if criterion.Kind == models.KindMustHave {
		if err := s.db.Model(&models.MandatorySelection{}).
			Where("criterion_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
	} else {
		if err := s.db.Model(&models.PreferredSelection{}).
			Where("criterion_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
	}
	if refs > 0 {
		return ErrConflict
	}

	return s.db.Delete(&models.Criterion{}, id).Error
}
