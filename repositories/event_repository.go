// File: /repositories/event_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"templeconnect-api/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(submission *models.EventSubmission) error {
	return r.db.Create(submission).Error
}

func (r *EventRepository) FindByID(id string) (*models.EventSubmission, error) {
	var submission models.EventSubmission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindByStatus returns submissions in one status bucket, newest first.
// An empty status returns everything.
func (r *EventRepository) FindByStatus(status string) ([]models.EventSubmission, error) {
	var submissions []models.EventSubmission
	query := r.db.Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListUpcoming returns approved events whose end date has not passed yet
func (r *EventRepository) ListUpcoming(now time.Time, offset, limit int) ([]models.EventSubmission, int64, error) {
	today := now.Truncate(24 * time.Hour)
	query := r.db.Model(&models.EventSubmission{}).
		Where("status = ? AND end_date >= ?", models.StatusApproved, today)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.EventSubmission
	if err := query.Order("start_date ASC").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *EventRepository) Stats(now time.Time) (*SubmissionStats, error) {
	stats := &SubmissionStats{}

	if err := r.db.Model(&models.EventSubmission{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		status string
		target *int64
	}{
		{models.StatusPending, &stats.Pending},
		{models.StatusApproved, &stats.Approved},
		{models.StatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := r.db.Model(&models.EventSubmission{}).
			Where("status = ?", c.status).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	// Approved events still in their date range count as active
	if err := r.db.Model(&models.EventSubmission{}).
		Where("status = ? AND end_date >= ?", models.StatusApproved, now.Truncate(24*time.Hour)).
		Count(&stats.Active).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *EventRepository) Save(submission *models.EventSubmission) error {
	return r.db.Save(submission).Error
}

func (r *EventRepository) Delete(id string) error {
	result := r.db.Delete(&models.EventSubmission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
