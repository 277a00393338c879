// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"templeconnect-api/config"
	"templeconnect-api/models"
)

// EmailService sends review-decision notifications to submitters.
// When no SMTP credentials are configured every send becomes a logged no-op,
// so local development and tests never need a mail server.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPUsername != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

// SendBusinessDecision notifies the business owner about an approval or rejection
func (es *EmailService) SendBusinessDecision(submission *models.BusinessSubmission) error {
	if submission.OwnerEmail == "" {
		return nil
	}

	var subject, body string
	switch submission.Status {
	case models.StatusApproved:
		subject = fmt.Sprintf("Your business listing %q has been approved", submission.Name)
		body = fmt.Sprintf(`
			<h2>Congratulations, %s!</h2>
			<p>Your business <strong>%s</strong> is now listed in the TempleConnect directory.</p>
			<p>You can request changes to your listing at any time by contacting us.</p>
		`, submission.OwnerName, submission.Name)
	case models.StatusRejected:
		subject = fmt.Sprintf("Update on your business listing %q", submission.Name)
		body = fmt.Sprintf(`
			<h2>Hello %s,</h2>
			<p>We reviewed your submission for <strong>%s</strong> and cannot list it at this time.</p>
			<p>Reviewer notes: %s</p>
			<p>You are welcome to submit again after addressing the notes above.</p>
		`, submission.OwnerName, submission.Name, submission.ReviewNotes)
	default:
		// No mail for pending; it only moves back to the review queue
		return nil
	}

	return es.send(submission.OwnerEmail, subject, body)
}

// SendEventDecision notifies the organizer about an approval or rejection
func (es *EmailService) SendEventDecision(submission *models.EventSubmission) error {
	if submission.OrganizerEmail == "" {
		return nil
	}

	var subject, body string
	switch submission.Status {
	case models.StatusApproved:
		subject = fmt.Sprintf("Your event %q has been approved", submission.Title)
		body = fmt.Sprintf(`
			<h2>Congratulations, %s!</h2>
			<p>Your event <strong>%s</strong> is now published on the TempleConnect events calendar.</p>
		`, submission.OrganizerName, submission.Title)
	case models.StatusRejected:
		subject = fmt.Sprintf("Update on your event %q", submission.Title)
		body = fmt.Sprintf(`
			<h2>Hello %s,</h2>
			<p>We reviewed your event <strong>%s</strong> and cannot publish it at this time.</p>
			<p>Reviewer notes: %s</p>
		`, submission.OrganizerName, submission.Title, submission.ReviewNotes)
	default:
		return nil
	}

	return es.send(submission.OrganizerEmail, subject, body)
}

func (es *EmailService) send(to, subject, body string) error {
	if es.dialer == nil {
		fmt.Printf("Email disabled, skipping notification to %s: %s\n", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return es.dialer.DialAndSend(m)
}
