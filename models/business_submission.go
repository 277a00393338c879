// File: /models/business_submission.go
package models

import (
	"time"
)

// Submission review statuses. These are the only three values status may hold.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// MaxImagesPerListing caps how many images a single listing may carry
const MaxImagesPerListing = 3

type BusinessSubmission struct {
	ID          string `json:"id" gorm:"primaryKey;size:191"`
	Name        string `json:"name" gorm:"not null;size:255"`
	Category    string `json:"category" gorm:"not null;size:100"`
	Description string `json:"description" gorm:"type:text"`

	Address string `json:"address" gorm:"size:500"`
	City    string `json:"city" gorm:"size:100"`

	Phone   string `json:"phone" gorm:"size:50"`
	Email   string `json:"email" gorm:"size:255"`
	Website string `json:"website" gorm:"size:500"`

	OwnerName  string `json:"owner_name" gorm:"size:255"`
	OwnerEmail string `json:"owner_email" gorm:"size:255"`
	OwnerPhone string `json:"owner_phone" gorm:"size:50"`

	Services    StringSlice `json:"services" gorm:"type:json"`
	SocialMedia StringMap   `json:"social_media" gorm:"type:json"`
	ImageURLs   StringSlice `json:"image_urls" gorm:"type:json"`
	ImageURL    *string     `json:"image_url" gorm:"size:500"`

	Status   string `json:"status" gorm:"not null;default:'pending';size:20;index"`
	IsActive bool   `json:"is_active" gorm:"default:false"`

	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewNotes string     `json:"review_notes" gorm:"type:text"`
	ReviewedBy  *string    `json:"reviewed_by" gorm:"size:191"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsListed reports whether the record shows up in the public directory
func (b *BusinessSubmission) IsListed() bool {
	return b.Status == StatusApproved && b.IsActive
}

// SyncPrimaryImage keeps the singular image_url equal to image_urls[0],
// or nil when the array is empty
func (b *BusinessSubmission) SyncPrimaryImage() {
	if len(b.ImageURLs) == 0 {
		b.ImageURL = nil
		return
	}
	first := b.ImageURLs[0]
	b.ImageURL = &first
}

// IsValidStatus reports whether s is one of the three review statuses
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
