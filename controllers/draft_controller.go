// File: /controllers/draft_controller.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"templeconnect-api/models"
	"templeconnect-api/utils"
)

// DraftController is the persistence port for the event form autosave:
// one draft per admin with explicit load/save/clear operations
type DraftController struct {
	db *gorm.DB
}

func NewDraftController(db *gorm.DB) *DraftController {
	return &DraftController{db: db}
}

// Load returns the admin's saved draft, or an empty data object if none exists
func (dc *DraftController) Load(c *gin.Context) {
	adminID := c.GetString("admin_id")

	var draft models.EventDraft
	if err := dc.db.First(&draft, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendSuccess(c, gin.H{"draft": nil})
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to load draft")
		return
	}

	utils.SendSuccess(c, gin.H{
		"draft":      json.RawMessage(draft.Payload),
		"updated_at": draft.UpdatedAt,
	})
}

// Save upserts the admin's draft. The body is stored verbatim, so the form
// can round-trip whatever field set it currently has.
func (dc *DraftController) Save(c *gin.Context) {
	adminID := c.GetString("admin_id")

	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		utils.SendError(c, http.StatusBadRequest, "Draft body is required")
		return
	}
	if !json.Valid(payload) {
		utils.SendError(c, http.StatusBadRequest, "Draft body must be valid JSON")
		return
	}

	draft := models.EventDraft{
		AdminID:   adminID,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	if err := dc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&draft).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save draft")
		return
	}

	utils.SendMessage(c, "Draft saved")
}

// Clear removes the admin's draft, typically after a successful submit
func (dc *DraftController) Clear(c *gin.Context) {
	adminID := c.GetString("admin_id")

	if err := dc.db.Delete(&models.EventDraft{}, "admin_id = ?", adminID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to clear draft")
		return
	}

	utils.SendMessage(c, "Draft cleared")
}
