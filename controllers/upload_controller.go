// File: /controllers/upload_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"templeconnect-api/config"
	"templeconnect-api/utils"
)

// MaxUploadBytes is the per-file size limit (10MB)
const MaxUploadBytes = 10 << 20

type UploadController struct {
	uploadDir     string
	publicBaseURL string
}

func NewUploadController(cfg *config.Config) *UploadController {
	return &UploadController{
		uploadDir:     cfg.UploadDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload accepts one image file per request and returns its public URL
func (uc *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "No file provided")
		return
	}

	if !utils.IsImageContentType(file.Header.Get("Content-Type")) {
		utils.SendError(c, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	if file.Size > MaxUploadBytes {
		utils.SendError(c, http.StatusBadRequest, "Image must be 10MB or smaller")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(uc.uploadDir, filename)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	utils.SendSuccess(c, gin.H{
		"url": fmt.Sprintf("%s/uploads/%s", uc.publicBaseURL, filename),
	})
}
