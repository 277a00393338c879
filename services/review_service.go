// File: /services/review_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"templeconnect-api/models"
	"templeconnect-api/repositories"
	"templeconnect-api/utils"
)

// ErrTooManyImages carries the exact message the admin console displays inline
var ErrTooManyImages = errors.New("Maximum 3 images allowed")

// ReviewService owns the submission lifecycle: intake with status forced to
// pending, the pending -> approved/rejected transitions, mark-pending, and
// field edits on approved records. All writes funnel through here so the
// status/is_active invariants hold everywhere.
type ReviewService struct {
	businesses   *repositories.BusinessRepository
	events       *repositories.EventRepository
	emailService *EmailService
}

func NewReviewService(businesses *repositories.BusinessRepository, events *repositories.EventRepository, emailService *EmailService) *ReviewService {
	return &ReviewService{
		businesses:   businesses,
		events:       events,
		emailService: emailService,
	}
}

// ===== Intake =====

// SubmitBusiness registers a new business submission in the review queue.
// Server owns identity, timestamps and status; client-supplied values for
// those fields are ignored.
func (s *ReviewService) SubmitBusiness(submission *models.BusinessSubmission) error {
	if submission.Name == "" {
		return errors.New("business name is required")
	}
	if submission.Category == "" {
		return errors.New("business category is required")
	}
	if submission.Email != "" && !utils.IsValidEmail(submission.Email) {
		return errors.New("invalid business email address")
	}
	if submission.OwnerEmail != "" && !utils.IsValidEmail(submission.OwnerEmail) {
		return errors.New("invalid owner email address")
	}
	if submission.Website != "" && !utils.IsValidURL(submission.Website) {
		return errors.New("website must start with http:// or https://")
	}
	if len(submission.ImageURLs) > models.MaxImagesPerListing {
		return ErrTooManyImages
	}

	submission.ID = uuid.New().String()
	submission.Status = models.StatusPending
	submission.IsActive = false
	submission.SubmittedAt = time.Now()
	submission.ReviewedAt = nil
	submission.ReviewedBy = nil
	submission.ReviewNotes = ""
	submission.Services = utils.DedupeStrings(submission.Services)
	submission.SyncPrimaryImage()

	return s.businesses.Create(submission)
}

// SubmitEvent registers a new event submission in the review queue
func (s *ReviewService) SubmitEvent(submission *models.EventSubmission) error {
	if submission.Title == "" {
		return errors.New("event title is required")
	}
	if submission.EventType == "" {
		return errors.New("event type is required")
	}
	if submission.OrganizerName == "" {
		return errors.New("organizer name is required")
	}
	if submission.OrganizerEmail != "" && !utils.IsValidEmail(submission.OrganizerEmail) {
		return errors.New("invalid organizer email address")
	}
	if submission.StartDate.IsZero() || submission.EndDate.IsZero() {
		return errors.New("event start and end dates are required")
	}
	if submission.EndDate.Before(submission.StartDate) {
		return errors.New("event end date cannot be before start date")
	}
	if err := normalizeEventPricing(submission); err != nil {
		return err
	}
	if len(submission.ImageURLs) > models.MaxImagesPerListing {
		return ErrTooManyImages
	}

	submission.ID = uuid.New().String()
	submission.Status = models.StatusPending
	submission.SubmittedAt = time.Now()
	submission.ReviewedAt = nil
	submission.ReviewedBy = nil
	submission.ReviewNotes = ""
	submission.CurrentParticipants = 0
	submission.Features = utils.DedupeStrings(submission.Features)
	submission.SyncPrimaryImage()

	return s.events.Create(submission)
}

// ===== Status transitions =====

// ReviewBusiness applies one status transition and records the review metadata.
// Approve and reject are only valid while the submission is pending; marking a
// record pending again is valid from any status and clears the metadata.
func (s *ReviewService) ReviewBusiness(id, newStatus, notes, adminID string) (*models.BusinessSubmission, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, fmt.Errorf("invalid status %q", newStatus)
	}

	submission, err := s.businesses.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := applyTransition(&submission.Status, &submission.IsActive, newStatus); err != nil {
		return nil, err
	}
	stampReview(newStatus, notes, adminID, &submission.ReviewedAt, &submission.ReviewNotes, &submission.ReviewedBy)

	if err := s.businesses.Save(submission); err != nil {
		return nil, err
	}

	s.notifyBusiness(submission)
	return submission, nil
}

// ReviewEvent applies one status transition to an event submission
func (s *ReviewService) ReviewEvent(id, newStatus, notes, adminID string) (*models.EventSubmission, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, fmt.Errorf("invalid status %q", newStatus)
	}

	submission, err := s.events.FindByID(id)
	if err != nil {
		return nil, err
	}

	// Events carry no active flag; reuse the guard with a throwaway bool
	var unused bool
	if err := applyTransition(&submission.Status, &unused, newStatus); err != nil {
		return nil, err
	}
	stampReview(newStatus, notes, adminID, &submission.ReviewedAt, &submission.ReviewNotes, &submission.ReviewedBy)

	if err := s.events.Save(submission); err != nil {
		return nil, err
	}

	s.notifyEvent(submission)
	return submission, nil
}

// applyTransition enforces the lifecycle. The active flag is always derived
// from the status, so approved records can never be stored with an undefined
// listing state.
func applyTransition(status *string, isActive *bool, newStatus string) error {
	switch newStatus {
	case models.StatusApproved, models.StatusRejected:
		if *status != models.StatusPending {
			return fmt.Errorf("submission is not pending (current status: %s)", *status)
		}
	case models.StatusPending:
		// Allowed from any status; puts the record back in the review queue
	}

	*status = newStatus
	*isActive = newStatus == models.StatusApproved
	return nil
}

func stampReview(newStatus, notes, adminID string, reviewedAt **time.Time, reviewNotes *string, reviewedBy **string) {
	if newStatus == models.StatusPending {
		*reviewedAt = nil
		*reviewNotes = ""
		*reviewedBy = nil
		return
	}

	now := time.Now()
	*reviewedAt = &now
	*reviewNotes = notes
	if adminID != "" {
		*reviewedBy = &adminID
	}
}

func (s *ReviewService) notifyBusiness(submission *models.BusinessSubmission) {
	if s.emailService == nil {
		return
	}
	sub := *submission
	go func() {
		if err := s.emailService.SendBusinessDecision(&sub); err != nil {
			fmt.Printf("Failed to send business decision email: %v\n", err)
		}
	}()
}

func (s *ReviewService) notifyEvent(submission *models.EventSubmission) {
	if s.emailService == nil {
		return
	}
	sub := *submission
	go func() {
		if err := s.emailService.SendEventDecision(&sub); err != nil {
			fmt.Printf("Failed to send event decision email: %v\n", err)
		}
	}()
}

func normalizeEventPricing(submission *models.EventSubmission) error {
	if submission.IsFree {
		submission.RegistrationFee = nil
		return nil
	}
	if submission.RegistrationFee == nil || *submission.RegistrationFee <= 0 {
		return errors.New("registration fee is required for paid events")
	}
	return nil
}
