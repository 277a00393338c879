// File: /services/listing_editor.go
package services

import (
	"errors"

	"templeconnect-api/models"
	"templeconnect-api/utils"
)

// BusinessUpdate is a partial edit of a business record. Nil fields are left
// untouched; set fields replace the stored value.
type BusinessUpdate struct {
	Name        *string            `json:"name"`
	Category    *string            `json:"category"`
	Description *string            `json:"description"`
	Address     *string            `json:"address"`
	City        *string            `json:"city"`
	Phone       *string            `json:"phone"`
	Email       *string            `json:"email"`
	Website     *string            `json:"website"`
	OwnerName   *string            `json:"owner_name"`
	OwnerEmail  *string            `json:"owner_email"`
	OwnerPhone  *string            `json:"owner_phone"`
	Services    *[]string          `json:"services"`
	SocialMedia *map[string]string `json:"social_media"`
	ImageURLs   *[]string          `json:"image_urls"`
	IsActive    *bool              `json:"is_active"`
}

// EventUpdate is a partial edit of an event record
type EventUpdate struct {
	Title           *string   `json:"title"`
	EventType       *string   `json:"event_type"`
	Description     *string   `json:"description"`
	Venue           *string   `json:"venue"`
	Address         *string   `json:"address"`
	City            *string   `json:"city"`
	OrganizerName   *string   `json:"organizer_name"`
	OrganizerEmail  *string   `json:"organizer_email"`
	OrganizerPhone  *string   `json:"organizer_phone"`
	StartTime       *string   `json:"start_time"`
	EndTime         *string   `json:"end_time"`
	IsFree          *bool     `json:"is_free"`
	RegistrationFee *float64  `json:"registration_fee"`
	MaxParticipants *int      `json:"max_participants"`
	Features        *[]string `json:"features"`
	ImageURLs       *[]string `json:"image_urls"`
}

// ApplyBusinessUpdate merges an update into a copy of the record. The caller's
// record is never touched, so a failed edit leaves the original intact and the
// admin can retry from unmodified state.
func ApplyBusinessUpdate(submission models.BusinessSubmission, update BusinessUpdate) (models.BusinessSubmission, error) {
	setString(&submission.Name, update.Name)
	setString(&submission.Category, update.Category)
	setString(&submission.Description, update.Description)
	setString(&submission.Address, update.Address)
	setString(&submission.City, update.City)
	setString(&submission.Phone, update.Phone)
	setString(&submission.Email, update.Email)
	setString(&submission.Website, update.Website)
	setString(&submission.OwnerName, update.OwnerName)
	setString(&submission.OwnerEmail, update.OwnerEmail)
	setString(&submission.OwnerPhone, update.OwnerPhone)

	if update.Services != nil {
		submission.Services = utils.DedupeStrings(*update.Services)
	}
	if update.SocialMedia != nil {
		submission.SocialMedia = models.StringMap(*update.SocialMedia)
	}
	if update.ImageURLs != nil {
		if len(*update.ImageURLs) > models.MaxImagesPerListing {
			return submission, ErrTooManyImages
		}
		submission.ImageURLs = append(models.StringSlice{}, *update.ImageURLs...)
	}
	submission.SyncPrimaryImage()

	if update.IsActive != nil {
		if submission.Status != models.StatusApproved {
			return submission, errors.New("only approved businesses can be listed or delisted")
		}
		submission.IsActive = *update.IsActive
	}

	if submission.Name == "" {
		return submission, errors.New("business name cannot be empty")
	}
	if submission.Email != "" && !utils.IsValidEmail(submission.Email) {
		return submission, errors.New("invalid business email address")
	}
	if submission.Website != "" && !utils.IsValidURL(submission.Website) {
		return submission, errors.New("website must start with http:// or https://")
	}

	return submission, nil
}

// ApplyEventUpdate merges an update into a copy of the event record
func ApplyEventUpdate(submission models.EventSubmission, update EventUpdate) (models.EventSubmission, error) {
	setString(&submission.Title, update.Title)
	setString(&submission.EventType, update.EventType)
	setString(&submission.Description, update.Description)
	setString(&submission.Venue, update.Venue)
	setString(&submission.Address, update.Address)
	setString(&submission.City, update.City)
	setString(&submission.OrganizerName, update.OrganizerName)
	setString(&submission.OrganizerEmail, update.OrganizerEmail)
	setString(&submission.OrganizerPhone, update.OrganizerPhone)
	setString(&submission.StartTime, update.StartTime)
	setString(&submission.EndTime, update.EndTime)

	if update.IsFree != nil {
		submission.IsFree = *update.IsFree
	}
	if update.RegistrationFee != nil {
		submission.RegistrationFee = update.RegistrationFee
	}
	if err := normalizeEventPricing(&submission); err != nil {
		return submission, err
	}

	if update.MaxParticipants != nil {
		if *update.MaxParticipants < 0 {
			return submission, errors.New("max participants cannot be negative")
		}
		submission.MaxParticipants = *update.MaxParticipants
	}

	if update.Features != nil {
		submission.Features = utils.DedupeStrings(*update.Features)
	}
	if update.ImageURLs != nil {
		if len(*update.ImageURLs) > models.MaxImagesPerListing {
			return submission, ErrTooManyImages
		}
		submission.ImageURLs = append(models.StringSlice{}, *update.ImageURLs...)
	}
	submission.SyncPrimaryImage()

	if submission.Title == "" {
		return submission, errors.New("event title cannot be empty")
	}
	if submission.OrganizerEmail != "" && !utils.IsValidEmail(submission.OrganizerEmail) {
		return submission, errors.New("invalid organizer email address")
	}

	return submission, nil
}

// UpdateBusiness loads a record, applies the edit to a draft copy and persists it
func (s *ReviewService) UpdateBusiness(id string, update BusinessUpdate) (*models.BusinessSubmission, error) {
	submission, err := s.businesses.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := ApplyBusinessUpdate(*submission, update)
	if err != nil {
		return nil, err
	}

	if err := s.businesses.Save(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateEvent loads a record, applies the edit to a draft copy and persists it
func (s *ReviewService) UpdateEvent(id string, update EventUpdate) (*models.EventSubmission, error) {
	submission, err := s.events.FindByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := ApplyEventUpdate(*submission, update)
	if err != nil {
		return nil, err
	}

	if err := s.events.Save(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
