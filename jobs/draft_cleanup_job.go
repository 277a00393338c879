// File: /jobs/draft_cleanup_job.go
package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"templeconnect-api/models"
)

// DraftCleanupJob periodically removes event drafts nobody has touched within
// the retention window
type DraftCleanupJob struct {
	db     *gorm.DB
	maxAge time.Duration
	ticker *time.Ticker
	done   chan bool
}

// NewDraftCleanupJob creates a new draft cleanup job
func NewDraftCleanupJob(db *gorm.DB, interval, maxAge time.Duration) *DraftCleanupJob {
	return &DraftCleanupJob{
		db:     db,
		maxAge: maxAge,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the cleanup job
func (j *DraftCleanupJob) Start() {
	fmt.Println("Draft cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Draft cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *DraftCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *DraftCleanupJob) cleanup() {
	cutoff := time.Now().Add(-j.maxAge)

	result := j.db.Delete(&models.EventDraft{}, "updated_at < ?", cutoff)
	if result.Error != nil {
		fmt.Printf("Draft cleanup failed: %v\n", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		fmt.Printf("Draft cleanup removed %d stale draft(s)\n", result.RowsAffected)
	}
}
