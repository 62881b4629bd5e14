package services

import (
	"errors"
	"testing"

	"recruiting-api/models"
)

func TestCreateCriterionEnforcesWeightInvariant(t *testing.T) {
	db := newTestDB(t)
	svc := NewCriteriaService(db)

	// NICE_TO_HAVE without a weight is rejected.
	_, err := svc.Create(CriterionInput{Kind: models.KindNiceToHave, Label: "React experience"})
	if _, ok := AsValidationError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Out-of-range weights are rejected.
	negative := -1.0
	if _, err := svc.Create(CriterionInput{Kind: models.KindNiceToHave, Label: "React experience", Weight: &negative}); err == nil {
		t.Fatal("expected validation error for negative weight")
	}
	huge := 101.0
	if _, err := svc.Create(CriterionInput{Kind: models.KindNiceToHave, Label: "React experience", Weight: &huge}); err == nil {
		t.Fatal("expected validation error for weight above 100")
	}

	// MUST_HAVE always stores a NULL weight, even when one is supplied.
	ignored := 3.5
	criterion, err := svc.Create(CriterionInput{Kind: models.KindMustHave, Label: "Degree", Weight: &ignored})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if criterion.Weight != nil {
		t.Fatalf("MUST_HAVE weight = %v, want nil", *criterion.Weight)
	}

	// Valid NICE_TO_HAVE keeps its weight.
	weight := 2.2
	criterion, err = svc.Create(CriterionInput{Kind: models.KindNiceToHave, Label: "React experience", Weight: &weight})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if criterion.Weight == nil || *criterion.Weight != 2.2 {
		t.Fatalf("NICE_TO_HAVE weight = %v, want 2.2", criterion.Weight)
	}

	// Unknown kinds never reach the database.
	if _, err := svc.Create(CriterionInput{Kind: "OPTIONAL", Label: "Whatever"}); err == nil {
		t.Fatal("expected validation error for unknown kind")
	}
}

func TestListPartitionsAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCriteriaService(db)

	createCriterion(t, db, models.KindMustHave, "Work authorization", nil)
	createCriterion(t, db, models.KindMustHave, "Degree", nil)
	createCriterion(t, db, models.KindNiceToHave, "React experience", weightOf(2.2))
	createCriterion(t, db, models.KindNiceToHave, "Cloud platform experience", weightOf(1.5))

	set, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(set.MustHave) != 2 || len(set.NiceToHave) != 2 {
		t.Fatalf("partition sizes = %d/%d, want 2/2", len(set.MustHave), len(set.NiceToHave))
	}
	if set.MustHave[0].Label != "Degree" {
		t.Fatalf("must-have not sorted by label: %q first", set.MustHave[0].Label)
	}
	if set.NiceToHave[0].Label != "Cloud platform experience" {
		t.Fatalf("nice-to-have not sorted by label: %q first", set.NiceToHave[0].Label)
	}
}

func TestUpdateCriterion(t *testing.T) {
	db := newTestDB(t)
	svc := NewCriteriaService(db)

	criterion := createCriterion(t, db, models.KindNiceToHave, "React experience", weightOf(2.2))

	// Converting to MUST_HAVE clears the stored weight.
	updated, err := svc.Update(criterion.CriterionID, CriterionInput{Kind: models.KindMustHave, Label: "React required"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Weight != nil {
		t.Fatal("weight should be cleared when converting to MUST_HAVE")
	}

	var reloaded models.Criterion
	if err := db.First(&reloaded, criterion.CriterionID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Weight != nil || reloaded.Label != "React required" {
		t.Fatalf("update not persisted: %+v", reloaded)
	}

	if _, err := svc.Update(999, CriterionInput{Kind: models.KindMustHave, Label: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCriterionRestrictsWhenReferenced(t *testing.T) {
	db := newTestDB(t)
	svc := NewCriteriaService(db)
	appSvc := NewApplicationService(db)

	mustHave, niceToHave := seedStandardCriteria(t, db)
	applicant := createUser(t, db, "del", models.RoleApplicant)

	if _, _, err := appSvc.Submit(applicant.UserID, standardSubmission(mustHave, niceToHave)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// Both kinds of referenced criteria refuse deletion.
	if err := svc.Delete(mustHave[0].CriterionID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for referenced must-have, got %v", err)
	}
	if err := svc.Delete(niceToHave[0].CriterionID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for referenced nice-to-have, got %v", err)
	}

	// An unreferenced criterion deletes cleanly.
	orphan := createCriterion(t, db, models.KindNiceToHave, "Rust experience", weightOf(1.0))
	if err := svc.Delete(orphan.CriterionID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := svc.Delete(orphan.CriterionID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
