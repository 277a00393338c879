// File: /repositories/event_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"templeconnect-api/models"
)

func newEvent(status string, endDate time.Time) *models.EventSubmission {
	return &models.EventSubmission{
		ID:            uuid.New().String(),
		Title:         "Diwali Mela",
		EventType:     "festival",
		OrganizerName: "Cultural Committee",
		StartDate:     endDate.AddDate(0, 0, -1),
		EndDate:       endDate,
		IsFree:        true,
		Status:        status,
		SubmittedAt:   time.Now(),
	}
}

func TestEventStatsAtFixedInstant(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	records := []*models.EventSubmission{
		newEvent(models.StatusPending, now.AddDate(0, 0, 7)),
		newEvent(models.StatusApproved, now.AddDate(0, 0, 7)),
		newEvent(models.StatusApproved, now.AddDate(0, 0, -7)),
		newEvent(models.StatusRejected, now.AddDate(0, 0, 7)),
	}
	for _, e := range records {
		if err := repo.Create(e); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	stats, err := repo.Stats(now)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.Pending != 1 {
		t.Errorf("expected 1 pending, got %d", stats.Pending)
	}
	if stats.Approved != 2 {
		t.Errorf("expected 2 approved, got %d", stats.Approved)
	}
	if stats.Rejected != 1 {
		t.Errorf("expected 1 rejected, got %d", stats.Rejected)
	}
	// Only the approved event that has not ended counts as active
	if stats.Active != 1 {
		t.Errorf("expected 1 active, got %d", stats.Active)
	}

	// A day after the second event ends, no events remain active
	later := now.AddDate(0, 0, 8)
	stats, err = repo.Stats(later)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Active != 0 {
		t.Errorf("expected 0 active at the later instant, got %d", stats.Active)
	}
}

func TestListUpcomingOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)

	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	near := newEvent(models.StatusApproved, now.AddDate(0, 0, 3))
	far := newEvent(models.StatusApproved, now.AddDate(0, 0, 30))
	far.Title = "Summer Camp"
	past := newEvent(models.StatusApproved, now.AddDate(0, 0, -3))
	past.Title = "Holi Celebration"

	for _, e := range []*models.EventSubmission{far, near, past} {
		if err := repo.Create(e); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	events, total, err := repo.ListUpcoming(now, 0, 10)
	if err != nil {
		t.Fatalf("ListUpcoming failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 upcoming events, got %d", total)
	}
	if len(events) != 2 || events[0].ID != near.ID || events[1].ID != far.ID {
		t.Error("expected upcoming events ordered by start date")
	}
}
