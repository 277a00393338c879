// File: /models/event_submission.go
package models

import (
	"time"
)

type EventSubmission struct {
	ID          string `json:"id" gorm:"primaryKey;size:191"`
	Title       string `json:"title" gorm:"not null;size:255"`
	EventType   string `json:"event_type" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`

	Venue   string `json:"venue" gorm:"size:255"`
	Address string `json:"address" gorm:"size:500"`
	City    string `json:"city" gorm:"size:100"`

	OrganizerName  string `json:"organizer_name" gorm:"not null;size:255"`
	OrganizerEmail string `json:"organizer_email" gorm:"size:255"`
	OrganizerPhone string `json:"organizer_phone" gorm:"size:50"`

	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
	StartTime string    `json:"start_time" gorm:"size:20"`
	EndTime   string    `json:"end_time" gorm:"size:20"`

	// A free event carries no fee; a paid event must carry one
	IsFree          bool     `json:"is_free" gorm:"default:true"`
	RegistrationFee *float64 `json:"registration_fee"`

	MaxParticipants     int `json:"max_participants" gorm:"default:0"`
	CurrentParticipants int `json:"current_participants" gorm:"default:0"`

	Features  StringSlice `json:"features" gorm:"type:json"`
	ImageURLs StringSlice `json:"image_urls" gorm:"type:json"`
	ImageURL  *string     `json:"image_url" gorm:"size:500"`

	Status string `json:"status" gorm:"not null;default:'pending';size:20;index"`

	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewNotes string     `json:"review_notes" gorm:"type:text"`
	ReviewedBy  *string    `json:"reviewed_by" gorm:"size:191"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SyncPrimaryImage keeps the singular image_url equal to image_urls[0],
// or nil when the array is empty
func (e *EventSubmission) SyncPrimaryImage() {
	if len(e.ImageURLs) == 0 {
		e.ImageURL = nil
		return
	}
	first := e.ImageURLs[0]
	e.ImageURL = &first
}

// IsUpcoming reports whether the event has not yet ended
func (e *EventSubmission) IsUpcoming(now time.Time) bool {
	return !e.EndDate.Before(now.Truncate(24 * time.Hour))
}
