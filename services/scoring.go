package services

import (
	"fmt"
	"math"
	"sort"

	"recruiting-api/models"
)

// PreferredSelectionInput is one nice-to-have selection as submitted by an
// applicant.
type PreferredSelectionInput struct {
	CriterionID     int     `json:"criterion_id"`
	YearsExperience float64 `json:"years_experience"`
}

// EvaluationResult is the outcome of running an applicant's selections
// against the live criteria.
type EvaluationResult struct {
	MandatoryMet        bool
	Score               float64
	Status              models.ApplicationStatus
	MandatoryIDs        []int
	PreferredSelections []PreferredSelectionInput
}

// NormalizeMandatoryIDs deduplicates the submitted must-have ids,
// preserving a deterministic ascending order. Non-positive ids are a hard
// validation error, never dropped.
func NormalizeMandatoryIDs(ids []int) ([]int, error) {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, NewValidationError("Mandatory criteria ids must be positive integers")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Ints(out)
	return out, nil
}

// NormalizePreferredSelections validates and deduplicates nice-to-have
// selections. Each selection must reference an existing NICE_TO_HAVE
// criterion and carry a finite years-of-experience >= 0; anything else is
// rejected outright. A duplicate criterion id keeps the first occurrence.
func NormalizePreferredSelections(selections []PreferredSelectionInput, niceToHave []models.Criterion) ([]PreferredSelectionInput, error) {
	allowed := make(map[int]bool, len(niceToHave))
	for _, criterion := range niceToHave {
		allowed[criterion.CriterionID] = true
	}

	seen := make(map[int]bool, len(selections))
	out := make([]PreferredSelectionInput, 0, len(selections))
	for _, selection := range selections {
		if selection.CriterionID <= 0 || !allowed[selection.CriterionID] {
			return nil, NewValidationError("Preferred criteria contain invalid selections",
				FieldError{Path: "preferred_criteria", Message: fmt.Sprintf("unknown criterion id %d", selection.CriterionID)})
		}
		if math.IsNaN(selection.YearsExperience) || math.IsInf(selection.YearsExperience, 0) || selection.YearsExperience < 0 {
			return nil, NewValidationError("Preferred criteria contain invalid selections",
				FieldError{Path: "preferred_criteria", Message: "years of experience must be a finite number >= 0"})
		}
		if seen[selection.CriterionID] {
			continue
		}
		seen[selection.CriterionID] = true
		out = append(out, selection)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CriterionID < out[j].CriterionID })
	return out, nil
}

// ComputeMandatoryMet reports whether every configured must-have criterion
// is present in the applicant's selected ids. With no must-have criteria
// configured the applicant is trivially eligible.
func ComputeMandatoryMet(selectedIDs []int, mustHave []models.Criterion) bool {
	selected := make(map[int]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	for _, criterion := range mustHave {
		if !selected[criterion.CriterionID] {
			return false
		}
	}
	return true
}

// ComputePreferredScore sums weight * years-of-experience over the valid
// selections, rounded to two decimals. A criterion without a weight
// contributes zero.
func ComputePreferredScore(selections []PreferredSelectionInput, niceToHave []models.Criterion) float64 {
	weights := make(map[int]float64, len(niceToHave))
	for _, criterion := range niceToHave {
		if criterion.Weight != nil {
			weights[criterion.CriterionID] = *criterion.Weight
		}
	}

	var total float64
	for _, selection := range selections {
		total += weights[selection.CriterionID] * selection.YearsExperience
	}
	return round2(total)
}

// Evaluate runs the full eligibility and scoring pass over raw applicant
// selections and the live criteria, deriving the resulting status.
func Evaluate(mandatoryIDs []int, preferred []PreferredSelectionInput, mustHave, niceToHave []models.Criterion) (*EvaluationResult, error) {
	normalizedIDs, err := NormalizeMandatoryIDs(mandatoryIDs)
	if err != nil {
		return nil, err
	}

	normalizedSelections, err := NormalizePreferredSelections(preferred, niceToHave)
	if err != nil {
		return nil, err
	}

	result := &EvaluationResult{
		MandatoryMet:        ComputeMandatoryMet(normalizedIDs, mustHave),
		Score:               ComputePreferredScore(normalizedSelections, niceToHave),
		MandatoryIDs:        normalizedIDs,
		PreferredSelections: normalizedSelections,
	}

	if result.MandatoryMet {
		result.Status = models.StatusApplied
	} else {
		result.Status = models.StatusRejected
	}
	return result, nil
}

// AverageScore returns the mean of all reviewer score values rounded to
// two decimals, or nil when no scores exist.
func AverageScore(scores []models.Score) *float64 {
	if len(scores) == 0 {
		return nil
	}
	var total int
	for _, score := range scores {
		total += score.Value
	}
	avg := round2(float64(total) / float64(len(scores)))
	return &avg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
