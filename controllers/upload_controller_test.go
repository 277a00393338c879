// File: /controllers/upload_controller_test.go
package controllers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"templeconnect-api/config"
)

func uploadRouter(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	uc := NewUploadController(&config.Config{
		UploadDir:     dir,
		PublicBaseURL: "http://localhost:8080",
	})

	r := gin.New()
	r.POST("/api/upload", uc.Upload)
	return r, dir
}

func multipartFile(t *testing.T, fieldName, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form part: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		t.Fatalf("failed to write form part: %v", err)
	}
	form.Close()
	return &buf, form.FormDataContentType()
}

func TestUploadStoresImage(t *testing.T) {
	r, dir := uploadRouter(t)

	body, contentType := multipartFile(t, "file", "mandir.jpg", "image/jpeg", []byte("fake-jpeg-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "http://localhost:8080/uploads/") {
		t.Errorf("expected a public URL in the response, got %s", w.Body.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, got %d (%v)", len(entries), err)
	}
	if filepath.Ext(entries[0].Name()) != ".jpg" {
		t.Errorf("expected the original extension kept, got %q", entries[0].Name())
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	r, dir := uploadRouter(t)

	body, contentType := multipartFile(t, "file", "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Only image files are allowed") {
		t.Errorf("expected the MIME error message, got %s", w.Body.String())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Error("rejected upload must not leave a file behind")
	}
}

func TestUploadRejectsOversizeImage(t *testing.T) {
	r, dir := uploadRouter(t)

	body, contentType := multipartFile(t, "file", "big.jpg", "image/jpeg", make([]byte, MaxUploadBytes+1))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Image must be 10MB or smaller") {
		t.Errorf("expected the size error message, got %s", w.Body.String())
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Error("oversize upload must not leave a file behind")
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	r, _ := uploadRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("unrelated", "value")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
