// Seeds a fresh database with default criteria and accounts.
// cmd/seed/main.go
package main

import (
	"log"

	"recruiting-api/config"
	"recruiting-api/models"
	"recruiting-api/utils"

	"github.com/joho/godotenv"
)

func weightOf(v float64) *float64 {
	return &v
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Criterion{},
		&models.Application{},
		&models.MandatorySelection{},
		&models.PreferredSelection{},
		&models.Score{},
		&models.Note{},
		&models.EventLog{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	criteria := []models.Criterion{
		{Kind: models.KindMustHave, Label: "Authorized to work in target region"},
		{Kind: models.KindMustHave, Label: "Bachelor degree in relevant field"},
		{Kind: models.KindMustHave, Label: "Available for full-time commitment"},
		{Kind: models.KindNiceToHave, Label: "React experience", Weight: weightOf(2.2)},
		{Kind: models.KindNiceToHave, Label: "Node.js experience", Weight: weightOf(1.9)},
		{Kind: models.KindNiceToHave, Label: "Cloud platform experience", Weight: weightOf(1.5)},
		{Kind: models.KindNiceToHave, Label: "Stakeholder communication", Weight: weightOf(1.2)},
	}
	for i := range criteria {
		var existing models.Criterion
		if err := config.DB.Where("label = ?", criteria[i].Label).First(&existing).Error; err == nil {
			log.Printf("Criterion %q already exists, skipping", criteria[i].Label)
			continue
		}
		if err := config.DB.Create(&criteria[i]).Error; err != nil {
			log.Fatalf("Failed to create criterion %q: %v", criteria[i].Label, err)
		}
	}

	password, err := utils.HashPassword("1234")
	if err != nil {
		log.Fatal("Failed to hash default password:", err)
	}

	users := []models.User{
		{Name: "System Admin", Email: "admin@system.com", Password: password, Role: models.RoleAdmin},
		{Name: "Main Reviewer", Email: "reviewer@system.com", Password: password, Role: models.RoleReviewer},
		{Name: "Alex Applicant", Email: "alex@applicant.com", Password: password, Role: models.RoleApplicant},
	}
	for i := range users {
		var existing models.User
		if err := config.DB.Where("email = ?", users[i].Email).First(&existing).Error; err == nil {
			log.Printf("User %s already exists, skipping", users[i].Email)
			continue
		}
		if err := config.DB.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", users[i].Email, err)
		}
	}

	log.Println("Seed completed!")
}
