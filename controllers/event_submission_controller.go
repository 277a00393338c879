// File: /controllers/event_submission_controller.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"templeconnect-api/models"
	"templeconnect-api/repositories"
	"templeconnect-api/services"
	"templeconnect-api/utils"
)

type EventSubmissionController struct {
	repo          *repositories.EventRepository
	reviewService *services.ReviewService
}

func NewEventSubmissionController(repo *repositories.EventRepository, reviewService *services.ReviewService) *EventSubmissionController {
	return &EventSubmissionController{
		repo:          repo,
		reviewService: reviewService,
	}
}

type SubmitEventRequest struct {
	Title           string   `json:"title" binding:"required"`
	EventType       string   `json:"event_type" binding:"required"`
	Description     string   `json:"description"`
	Venue           string   `json:"venue"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	OrganizerName   string   `json:"organizer_name" binding:"required"`
	OrganizerEmail  string   `json:"organizer_email"`
	OrganizerPhone  string   `json:"organizer_phone"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	IsFree          bool     `json:"is_free"`
	RegistrationFee *float64 `json:"registration_fee"`
	MaxParticipants int      `json:"max_participants"`
	Features        []string `json:"features"`
	ImageURLs       []string `json:"image_urls"`
}

// Submit handles the public event submission form
func (ec *EventSubmissionController) Submit(c *gin.Context) {
	var req SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseEventDate(req.StartDate)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid start_date: "+err.Error())
		return
	}
	endDate, err := parseEventDate(req.EndDate)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid end_date: "+err.Error())
		return
	}

	submission := models.EventSubmission{
		Title:           req.Title,
		EventType:       req.EventType,
		Description:     req.Description,
		Venue:           req.Venue,
		Address:         req.Address,
		City:            req.City,
		OrganizerName:   req.OrganizerName,
		OrganizerEmail:  req.OrganizerEmail,
		OrganizerPhone:  req.OrganizerPhone,
		StartDate:       startDate,
		EndDate:         endDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		IsFree:          req.IsFree,
		RegistrationFee: req.RegistrationFee,
		MaxParticipants: req.MaxParticipants,
		Features:        models.StringSlice(req.Features),
		ImageURLs:       models.StringSlice(req.ImageURLs),
	}

	if err := ec.reviewService.SubmitEvent(&submission); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SendCreated(c, gin.H{"submission": submission})
}

// List returns event submissions plus stats, optionally filtered by ?status=
func (ec *EventSubmissionController) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidStatus(status) {
		utils.SendError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	submissions, err := ec.repo.FindByStatus(status)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch event submissions")
		return
	}

	stats, err := ec.repo.Stats(time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch event submission stats")
		return
	}

	utils.SendSuccess(c, gin.H{
		"submissions": submissions,
		"stats":       stats,
	})
}

// Get returns one event submission with full detail
func (ec *EventSubmissionController) Get(c *gin.Context) {
	submission, err := ec.repo.FindByID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Event submission not found")
		return
	}
	utils.SendSuccess(c, gin.H{"submission": submission})
}

// Update handles PUT with a multipart form, mirroring the business flow.
// features and image_urls arrive as JSON-stringified arrays.
func (ec *EventSubmissionController) Update(c *gin.Context) {
	id := c.Param("id")
	action := c.PostForm("action")

	switch action {
	case "approved", "rejected":
		reason := c.PostForm("reason")
		submission, err := ec.reviewService.ReviewEvent(id, action, reason, c.GetString("admin_id"))
		if err != nil {
			sendReviewError(c, err)
			return
		}
		utils.SendSuccess(c, gin.H{"submission": submission})

	case "update":
		update, err := eventUpdateFromForm(c)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
		submission, err := ec.reviewService.UpdateEvent(id, update)
		if err != nil {
			sendReviewError(c, err)
			return
		}
		utils.SendSuccess(c, gin.H{"submission": submission})

	default:
		utils.SendError(c, http.StatusBadRequest, "Unknown action")
	}
}

// Delete removes an event submission record entirely
func (ec *EventSubmissionController) Delete(c *gin.Context) {
	if err := ec.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Event submission not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete event submission")
		return
	}
	utils.SendMessage(c, "Event submission deleted")
}

// Upcoming lists approved events whose end date has not passed
func (ec *EventSubmissionController) Upcoming(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	events, total, err := ec.repo.ListUpcoming(time.Now(), offset, limit)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	utils.SendPaginated(c, gin.H{"events": events}, page, limit, total)
}

func eventUpdateFromForm(c *gin.Context) (services.EventUpdate, error) {
	var update services.EventUpdate

	formString(c, "title", &update.Title)
	formString(c, "event_type", &update.EventType)
	formString(c, "description", &update.Description)
	formString(c, "venue", &update.Venue)
	formString(c, "address", &update.Address)
	formString(c, "city", &update.City)
	formString(c, "organizer_name", &update.OrganizerName)
	formString(c, "organizer_email", &update.OrganizerEmail)
	formString(c, "organizer_phone", &update.OrganizerPhone)
	formString(c, "start_time", &update.StartTime)
	formString(c, "end_time", &update.EndTime)

	if raw, ok := c.GetPostForm("is_free"); ok {
		free := raw == "true" || raw == "1"
		update.IsFree = &free
	}
	if raw, ok := c.GetPostForm("registration_fee"); ok {
		fee, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return update, errors.New("registration_fee must be a number")
		}
		update.RegistrationFee = &fee
	}
	if raw, ok := c.GetPostForm("max_participants"); ok {
		max, err := strconv.Atoi(raw)
		if err != nil {
			return update, errors.New("max_participants must be a number")
		}
		update.MaxParticipants = &max
	}
	if raw, ok := c.GetPostForm("features"); ok {
		features, err := parseStringList(raw)
		if err != nil {
			return update, errors.New("features must be a JSON array or a comma separated list")
		}
		update.Features = &features
	}
	if raw, ok := c.GetPostForm("image_urls"); ok {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err != nil {
			return update, errors.New("image_urls must be a JSON array of strings")
		}
		update.ImageURLs = &urls
	}

	return update, nil
}

// parseEventDate accepts the date-only form the submission form sends and
// falls back to RFC3339 for API clients
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
}
