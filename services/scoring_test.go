package services

import (
	"math"
	"testing"

	"recruiting-api/models"
)

func weightOf(v float64) *float64 {
	return &v
}

func mustHaveCriteria(ids ...int) []models.Criterion {
	criteria := make([]models.Criterion, 0, len(ids))
	for _, id := range ids {
		criteria = append(criteria, models.Criterion{CriterionID: id, Kind: models.KindMustHave})
	}
	return criteria
}

func TestComputeMandatoryMet(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		mustHave []models.Criterion
		want     bool
	}{
		{"all selected", []int{1, 2, 3}, mustHaveCriteria(1, 2, 3), true},
		{"superset selected", []int{1, 2, 3, 4}, mustHaveCriteria(1, 2, 3), true},
		{"missing one", []int{1, 2}, mustHaveCriteria(1, 2, 3), false},
		{"nothing selected", nil, mustHaveCriteria(1), false},
		{"no criteria configured", nil, nil, true},
		{"no criteria with selections", []int{9}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeMandatoryMet(tt.selected, tt.mustHave); got != tt.want {
				t.Fatalf("ComputeMandatoryMet(%v) = %v, want %v", tt.selected, got, tt.want)
			}
		})
	}
}

func TestComputePreferredScore(t *testing.T) {
	niceToHave := []models.Criterion{
		{CriterionID: 10, Kind: models.KindNiceToHave, Weight: weightOf(2.2)},
		{CriterionID: 11, Kind: models.KindNiceToHave, Weight: weightOf(1.9)},
		{CriterionID: 12, Kind: models.KindNiceToHave, Weight: nil},
	}

	selections := []PreferredSelectionInput{
		{CriterionID: 10, YearsExperience: 2},
		{CriterionID: 11, YearsExperience: 3},
	}

	// 2.2*2 + 1.9*3 = 10.1
	if got := ComputePreferredScore(selections, niceToHave); got != 10.1 {
		t.Fatalf("score = %v, want 10.1", got)
	}

	// No selections scores zero.
	if got := ComputePreferredScore(nil, niceToHave); got != 0 {
		t.Fatalf("empty selections scored %v, want 0", got)
	}

	// A criterion without a weight contributes zero.
	withNilWeight := []PreferredSelectionInput{{CriterionID: 12, YearsExperience: 8}}
	if got := ComputePreferredScore(withNilWeight, niceToHave); got != 0 {
		t.Fatalf("nil-weight selection scored %v, want 0", got)
	}
}

func TestComputePreferredScoreRounding(t *testing.T) {
	niceToHave := []models.Criterion{
		{CriterionID: 1, Kind: models.KindNiceToHave, Weight: weightOf(0.1)},
	}
	selections := []PreferredSelectionInput{{CriterionID: 1, YearsExperience: 0.333}}

	got := ComputePreferredScore(selections, niceToHave)
	if got != 0.03 {
		t.Fatalf("score = %v, want 0.03", got)
	}
}

func TestNormalizeMandatoryIDs(t *testing.T) {
	got, err := NormalizeMandatoryIDs([]int{3, 1, 3, 2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if _, err := NormalizeMandatoryIDs([]int{1, 0}); err == nil {
		t.Fatal("expected error for non-positive id")
	}
	if _, err := NormalizeMandatoryIDs([]int{-4}); err == nil {
		t.Fatal("expected error for negative id")
	}
}

func TestNormalizePreferredSelectionsRejectsInvalid(t *testing.T) {
	niceToHave := []models.Criterion{
		{CriterionID: 5, Kind: models.KindNiceToHave, Weight: weightOf(1)},
	}

	tests := []struct {
		name      string
		selection PreferredSelectionInput
	}{
		{"unknown criterion", PreferredSelectionInput{CriterionID: 99, YearsExperience: 1}},
		{"non-positive id", PreferredSelectionInput{CriterionID: 0, YearsExperience: 1}},
		{"negative years", PreferredSelectionInput{CriterionID: 5, YearsExperience: -1}},
		{"NaN years", PreferredSelectionInput{CriterionID: 5, YearsExperience: math.NaN()}},
		{"infinite years", PreferredSelectionInput{CriterionID: 5, YearsExperience: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePreferredSelections([]PreferredSelectionInput{tt.selection}, niceToHave)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := AsValidationError(err); !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestNormalizePreferredSelectionsDeduplicates(t *testing.T) {
	niceToHave := []models.Criterion{
		{CriterionID: 5, Kind: models.KindNiceToHave, Weight: weightOf(1)},
	}

	got, err := NormalizePreferredSelections([]PreferredSelectionInput{
		{CriterionID: 5, YearsExperience: 4},
		{CriterionID: 5, YearsExperience: 9},
	}, niceToHave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 selection after dedup, got %d", len(got))
	}
	if got[0].YearsExperience != 4 {
		t.Fatalf("expected first occurrence to win, got years %v", got[0].YearsExperience)
	}
}

func TestEvaluateDerivesStatus(t *testing.T) {
	mustHave := mustHaveCriteria(1, 2)
	niceToHave := []models.Criterion{
		{CriterionID: 10, Kind: models.KindNiceToHave, Weight: weightOf(2.5)},
	}

	eligible, err := Evaluate([]int{1, 2}, []PreferredSelectionInput{{CriterionID: 10, YearsExperience: 2}}, mustHave, niceToHave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eligible.MandatoryMet || eligible.Status != models.StatusApplied {
		t.Fatalf("expected eligible APPLIED, got met=%v status=%s", eligible.MandatoryMet, eligible.Status)
	}
	if eligible.Score != 5 {
		t.Fatalf("score = %v, want 5", eligible.Score)
	}

	// Ineligible submissions are rejected regardless of score.
	ineligible, err := Evaluate([]int{1}, []PreferredSelectionInput{{CriterionID: 10, YearsExperience: 20}}, mustHave, niceToHave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ineligible.MandatoryMet || ineligible.Status != models.StatusRejected {
		t.Fatalf("expected ineligible REJECTED, got met=%v status=%s", ineligible.MandatoryMet, ineligible.Status)
	}
	if ineligible.Score != 50 {
		t.Fatalf("score = %v, want 50", ineligible.Score)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	mustHave := mustHaveCriteria(1, 2, 3)
	niceToHave := []models.Criterion{
		{CriterionID: 10, Kind: models.KindNiceToHave, Weight: weightOf(2.2)},
		{CriterionID: 11, Kind: models.KindNiceToHave, Weight: weightOf(1.9)},
	}
	selections := []PreferredSelectionInput{
		{CriterionID: 10, YearsExperience: 2},
		{CriterionID: 11, YearsExperience: 3},
	}

	first, err := Evaluate([]int{1, 2, 3}, selections, mustHave, niceToHave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Evaluate([]int{1, 2, 3}, selections, mustHave, niceToHave)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Score != second.Score || first.MandatoryMet != second.MandatoryMet || first.Status != second.Status {
		t.Fatalf("evaluation not idempotent: %+v vs %+v", first, second)
	}
	if first.Score != 10.1 {
		t.Fatalf("score = %v, want 10.1", first.Score)
	}
}

func TestAverageScore(t *testing.T) {
	if got := AverageScore(nil); got != nil {
		t.Fatalf("expected nil sentinel for empty scores, got %v", *got)
	}

	scores := []models.Score{{Value: 5}, {Value: 4}, {Value: 5}}
	got := AverageScore(scores)
	if got == nil {
		t.Fatal("expected average, got nil")
	}
	if *got != 4.67 {
		t.Fatalf("average = %v, want 4.67", *got)
	}
}
