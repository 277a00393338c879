// File: /controllers/admin_auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"templeconnect-api/middleware"
	"templeconnect-api/models"
	"templeconnect-api/utils"
)

const sessionDuration = 24 * time.Hour

type AdminAuthController struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAdminAuthController(db *gorm.DB, jwtSecret string) *AdminAuthController {
	return &AdminAuthController{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// AuthRequest is the single-endpoint auth body: {action: "login"|"logout"}
type AuthRequest struct {
	Action   string `json:"action" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Handle dispatches POST /api/admin/auth on the action field
func (ac *AdminAuthController) Handle(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	switch req.Action {
	case "login":
		ac.login(c, req)
	case "logout":
		ac.logout(c)
	default:
		utils.SendError(c, http.StatusBadRequest, "Unknown auth action")
	}
}

func (ac *AdminAuthController) login(c *gin.Context, req AuthRequest) {
	if req.Email == "" || req.Password == "" {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var admin models.AdminUser
	if err := ac.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(&admin)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate session token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(sessionDuration.Seconds()), "/", "", false, true)

	utils.SendSuccess(c, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

func (ac *AdminAuthController) logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	utils.SendMessage(c, "Successfully logged out")
}

// Me returns the authenticated admin, used by the console to restore a session
func (ac *AdminAuthController) Me(c *gin.Context) {
	adminID := c.GetString("admin_id")

	var admin models.AdminUser
	if err := ac.db.First(&admin, "id = ?", adminID).Error; err != nil {
		utils.SendSessionExpired(c)
		return
	}

	utils.SendSuccess(c, gin.H{
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

func (ac *AdminAuthController) generateJWT(admin *models.AdminUser) (string, error) {
	claims := middleware.AdminClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
