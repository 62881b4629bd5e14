package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"recruiting-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Criterion{},
		&models.Application{},
		&models.MandatorySelection{},
		&models.PreferredSelection{},
		&models.Score{},
		&models.Note{},
		&models.EventLog{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@test.local", name),
		Password: "x",
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createCriterion(t *testing.T, db *gorm.DB, kind models.CriterionKind, label string, weight *float64) models.Criterion {
	t.Helper()
	criterion := models.Criterion{Kind: kind, Label: label, Weight: weight}
	if err := db.Create(&criterion).Error; err != nil {
		t.Fatalf("failed to create criterion: %v", err)
	}
	return criterion
}

// seedStandardCriteria creates three must-have and two weighted
// nice-to-have criteria, returning them in creation order.
func seedStandardCriteria(t *testing.T, db *gorm.DB) (mustHave, niceToHave []models.Criterion) {
	t.Helper()
	mustHave = []models.Criterion{
		createCriterion(t, db, models.KindMustHave, "Work authorization", nil),
		createCriterion(t, db, models.KindMustHave, "Degree", nil),
		createCriterion(t, db, models.KindMustHave, "Full-time availability", nil),
	}
	niceToHave = []models.Criterion{
		createCriterion(t, db, models.KindNiceToHave, "React experience", weightOf(2.2)),
		createCriterion(t, db, models.KindNiceToHave, "Node.js experience", weightOf(1.9)),
	}
	return mustHave, niceToHave
}

func countEvents(t *testing.T, db *gorm.DB, applicationID int) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.EventLog{}).
		Where("application_id = ?", applicationID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	return count
}

func lastEventAction(t *testing.T, db *gorm.DB, applicationID int) string {
	t.Helper()
	var event models.EventLog
	if err := db.Where("application_id = ?", applicationID).
		Order("event_id DESC").First(&event).Error; err != nil {
		t.Fatalf("failed to load last event: %v", err)
	}
	return event.Action
}
