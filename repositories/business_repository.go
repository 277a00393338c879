// File: /repositories/business_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"templeconnect-api/models"
)

// SubmissionStats is the stats block the admin dashboard renders next to the lists
type SubmissionStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Active   int64 `json:"active"`
}

type BusinessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

func (r *BusinessRepository) Create(submission *models.BusinessSubmission) error {
	return r.db.Create(submission).Error
}

func (r *BusinessRepository) FindByID(id string) (*models.BusinessSubmission, error) {
	var submission models.BusinessSubmission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// FindByStatus returns submissions in one status bucket, newest first.
// An empty status returns everything.
func (r *BusinessRepository) FindByStatus(status string) ([]models.BusinessSubmission, error) {
	var submissions []models.BusinessSubmission
	query := r.db.Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListApproved returns the publicly listed businesses: approved and active
func (r *BusinessRepository) ListApproved(category, city string, offset, limit int) ([]models.BusinessSubmission, int64, error) {
	query := r.db.Model(&models.BusinessSubmission{}).
		Where("status = ? AND is_active = ?", models.StatusApproved, true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businesses []models.BusinessSubmission
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&businesses).Error; err != nil {
		return nil, 0, err
	}

	return businesses, total, nil
}

func (r *BusinessRepository) Stats() (*SubmissionStats, error) {
	stats := &SubmissionStats{}
	model := r.db.Model(&models.BusinessSubmission{})

	if err := model.Count(&stats.Total).Error; err != nil {
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
		if err := r.db.Model(&models.BusinessSubmission{}).
			Where("status = ?", c.status).Count(c.target).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Model(&models.BusinessSubmission{}).
		Where("status = ? AND is_active = ?", models.StatusApproved, true).
		Count(&stats.Active).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *BusinessRepository) Save(submission *models.BusinessSubmission) error {
	return r.db.Save(submission).Error
}

func (r *BusinessRepository) Delete(id string) error {
	result := r.db.Delete(&models.BusinessSubmission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delist flips an approved business to inactive without deleting the record
func (r *BusinessRepository) Delist(id string) error {
	submission, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if submission.Status != models.StatusApproved {
		return errors.New("only approved businesses can be delisted")
	}
	return r.db.Model(submission).Update("is_active", false).Error
}
