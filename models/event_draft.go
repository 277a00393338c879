// File: /models/event_draft.go
package models

import (
	"time"
)

// EventDraft holds one admin's autosaved event form. The payload is the raw
// JSON of the form fields; file attachments are never included.
type EventDraft struct {
	AdminID   string    `json:"admin_id" gorm:"primaryKey;size:191"`
	Payload   string    `json:"payload" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}
