package services

import (
	"fmt"
	"log"

	"recruiting-api/config"
	"recruiting-api/models"
)

// NotifyStatusChange emails the applicant about a status transition.
// Mail failures are logged and never surfaced to the caller; the
// transition itself has already been committed.
func NotifyStatusChange(application *models.Application, previous models.ApplicationStatus) {
	if application.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your application is now %s", application.Status.Label())
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your application status changed from <b>%s</b> to <b>%s</b>.</p>",
		application.FullName, previous.Label(), application.Status.Label(),
	)

	if err := config.SendMail([]string{application.Email}, subject, body); err != nil {
		log.Printf("Failed to send status notification to %s: %v", application.Email, err)
	}
}

// SendReviewerWelcome emails a newly created reviewer account.
func SendReviewerWelcome(name, email string) {
	subject := "Reviewer account created"
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>A reviewer account has been created for this address. You can now sign in and start reviewing applications.</p>",
		name,
	)

	if err := config.SendMail([]string{email}, subject, body); err != nil {
		log.Printf("Failed to send reviewer welcome mail to %s: %v", email, err)
	}
}
