// File: /controllers/business_submission_controller.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"templeconnect-api/models"
	"templeconnect-api/repositories"
	"templeconnect-api/services"
	"templeconnect-api/utils"
)

type BusinessSubmissionController struct {
	repo          *repositories.BusinessRepository
	reviewService *services.ReviewService
}

func NewBusinessSubmissionController(repo *repositories.BusinessRepository, reviewService *services.ReviewService) *BusinessSubmissionController {
	return &BusinessSubmissionController{
		repo:          repo,
		reviewService: reviewService,
	}
}

type SubmitBusinessRequest struct {
	Name        string            `json:"name" binding:"required"`
	Category    string            `json:"category" binding:"required"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	City        string            `json:"city"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Website     string            `json:"website"`
	OwnerName   string            `json:"owner_name"`
	OwnerEmail  string            `json:"owner_email"`
	OwnerPhone  string            `json:"owner_phone"`
	Services    []string          `json:"services"`
	SocialMedia map[string]string `json:"social_media"`
	ImageURLs   []string          `json:"image_urls"`
}

// Submit handles the public business submission form
func (bc *BusinessSubmissionController) Submit(c *gin.Context) {
	var req SubmitBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	submission := models.BusinessSubmission{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		OwnerName:   req.OwnerName,
		OwnerEmail:  req.OwnerEmail,
		OwnerPhone:  req.OwnerPhone,
		Services:    models.StringSlice(req.Services),
		SocialMedia: models.StringMap(req.SocialMedia),
		ImageURLs:   models.StringSlice(req.ImageURLs),
	}

	if err := bc.reviewService.SubmitBusiness(&submission); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendCreated(c, gin.H{"submission": submission})
}

// List returns all submissions plus the stats block for the admin dashboard.
// An optional ?status= narrows the result to one bucket.
func (bc *BusinessSubmissionController) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		utils.SendError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	submissions, err := bc.repo.FindByStatus(status)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	stats, err := bc.repo.Stats()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch submission stats")
		return
	}

	utils.SendSuccess(c, gin.H{
		"submissions": submissions,
		"stats":       stats,
	})
}

// Get returns one submission with its full detail for the review dialog
func (bc *BusinessSubmissionController) Get(c *gin.Context) {
	submission, err := bc.repo.FindByID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Submission not found")
		return
	}
	utils.SendSuccess(c, gin.H{"submission": submission})
}

// Update handles PUT with a multipart form: action=approved|rejected|update
// plus an optional reason and, for update, the edited fields. Array fields
// arrive JSON-stringified the way the admin console sends them.
func (bc *BusinessSubmissionController) Update(c *gin.Context) {
	id := c.Param("id")
	action := c.PostForm("action")

	switch action {
	case "approved", "rejected":
		reason := c.PostForm("reason")
		submission, err := bc.reviewService.ReviewBusiness(id, action, reason, c.GetString("admin_id"))
		if err != nil {
			sendReviewError(c, err)
			return
		}
		utils.SendSuccess(c, gin.H{"submission": submission})

	case "update":
		update, err := businessUpdateFromForm(c)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
		submission, err := bc.reviewService.UpdateBusiness(id, update)
		if err != nil {
			sendReviewError(c, err)
			return
		}
		utils.SendSuccess(c, gin.H{"submission": submission})

	default:
		utils.SendError(c, http.StatusBadRequest, "Unknown action")
	}
}

// ReviewStatusRequest is the JSON body of the alternate PATCH review flow
type ReviewStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	ReviewNotes string `json:"reviewNotes"`
}

// Patch handles the JSON {status, reviewNotes} review flow
func (bc *BusinessSubmissionController) Patch(c *gin.Context) {
	var req ReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := bc.reviewService.ReviewBusiness(c.Param("id"), req.Status, req.ReviewNotes, c.GetString("admin_id"))
	if err != nil {
		sendReviewError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{"submission": submission})
}

// Delete removes a submission record entirely
func (bc *BusinessSubmissionController) Delete(c *gin.Context) {
	if err := bc.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Submission not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	utils.SendMessage(c, "Submission deleted")
}

// businessUpdateFromForm builds a partial update from the multipart fields
// actually present in the request
func businessUpdateFromForm(c *gin.Context) (services.BusinessUpdate, error) {
	var update services.BusinessUpdate

	formString(c, "name", &update.Name)
	formString(c, "category", &update.Category)
	formString(c, "description", &update.Description)
	formString(c, "address", &update.Address)
	formString(c, "city", &update.City)
	formString(c, "phone", &update.Phone)
	formString(c, "email", &update.Email)
	formString(c, "website", &update.Website)
	formString(c, "owner_name", &update.OwnerName)
	formString(c, "owner_email", &update.OwnerEmail)
	formString(c, "owner_phone", &update.OwnerPhone)

	if raw, ok := c.GetPostForm("services"); ok {
		services, err := parseStringList(raw)
		if err != nil {
			return update, errors.New("services must be a JSON array or a comma separated list")
		}
		update.Services = &services
	}
	if raw, ok := c.GetPostForm("image_urls"); ok {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return update, errors.New("image_urls must be a JSON array of strings")
		}
		update.ImageURLs = &urls
	}
	if raw, ok := c.GetPostForm("social_media"); ok {
		var social map[string]string
		if err := json.Unmarshal([]byte(raw), &social); err != nil {
			return update, errors.New("social_media must be a JSON object of strings")
		}
		update.SocialMedia = &social
	}
	if raw, ok := c.GetPostForm("is_active"); ok {
		active := raw == "true" || raw == "1"
		update.IsActive = &active
	}

	return update, nil
}

func formString(c *gin.Context, field string, target **string) {
	if value, ok := c.GetPostForm(field); ok {
		*target = &value
	}
}

// parseStringList accepts either a JSON-stringified array (the console's edit
// dialog) or a comma separated list (the submission form textareas)
func parseStringList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	return utils.SplitCommaList(raw), nil
}

// sendReviewError maps service failures onto the status codes the console
// expects while preserving the original message in the error body
func sendReviewError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusNotFound, "Submission not found")
		return
	}
	utils.SendError(c, http.StatusBadRequest, err.Error())
}
