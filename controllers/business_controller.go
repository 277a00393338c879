// File: /controllers/business_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"templeconnect-api/repositories"
	"templeconnect-api/services"
	"templeconnect-api/utils"
)

// BusinessController serves the public directory and the admin edit/delist
// operations on already-approved businesses
type BusinessController struct {
	repo          *repositories.BusinessRepository
	reviewService *services.ReviewService
}

func NewBusinessController(repo *repositories.BusinessRepository, reviewService *services.ReviewService) *BusinessController {
	return &BusinessController{
		repo:          repo,
		reviewService: reviewService,
	}
}

// GetApproved lists the public directory: approved and active businesses only
func (bc *BusinessController) GetApproved(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	businesses, total, err := bc.repo.ListApproved(c.Query("category"), c.Query("city"), offset, limit)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch businesses")
		return
	}

	utils.SendPaginated(c, gin.H{"businesses": businesses}, page, limit, total)
}

// Update applies a JSON partial edit to an approved business, including the
// is_active delist toggle
func (bc *BusinessController) Update(c *gin.Context) {
	var update services.BusinessUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	business, err := bc.reviewService.UpdateBusiness(c.Param("id"), update)
	if err != nil {
		sendReviewError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{"business": business})
}

// Delist removes a business from the public directory without deleting it
func (bc *BusinessController) Delist(c *gin.Context) {
	if err := bc.repo.Delist(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Business not found")
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.SendMessage(c, "Business delisted")
}
