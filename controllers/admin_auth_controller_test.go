// File: /controllers/admin_auth_controller_test.go
package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"templeconnect-api/middleware"
	"templeconnect-api/models"
)

func (env *testEnv) authRoutes(t *testing.T, password string) *models.AdminUser {
	if err := env.db.AutoMigrate(&models.AdminUser{}); err != nil {
		t.Fatalf("failed to migrate admin users: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admin := &models.AdminUser{
		ID:       uuid.New().String(),
		Name:     "Test Admin",
		Email:    "admin@templeconnect.org",
		Password: string(hash),
		Role:     models.RoleSuperAdmin,
	}
	if err := env.db.Create(admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	ac := NewAdminAuthController(env.db, "test-secret")
	env.router.POST("/api/admin/auth", ac.Handle)
	return admin
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := setupTestEnv(t)
	env.authRoutes(t, "secret-pass")

	w := doJSON(t, env.router, http.MethodPost, "/api/admin/auth", map[string]string{
		"action":   "login",
		"email":    "admin@templeconnect.org",
		"password": "secret-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	cookieSet := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value != "" {
			cookieSet = true
			if !cookie.HttpOnly {
				t.Error("session cookie must be http-only")
			}
		}
	}
	if !cookieSet {
		t.Error("expected the session cookie to be set")
	}

	if !strings.Contains(w.Body.String(), "Test Admin") {
		t.Errorf("expected the admin profile in the response, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret-pass") {
		t.Error("password material must never appear in a response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.authRoutes(t, "secret-pass")

	w := doJSON(t, env.router, http.MethodPost, "/api/admin/auth", map[string]string{
		"action":   "login",
		"email":    "admin@templeconnect.org",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.authRoutes(t, "secret-pass")

	w := doJSON(t, env.router, http.MethodPost, "/api/admin/auth", map[string]string{
		"action":   "login",
		"email":    "nobody@example.com",
		"password": "secret-pass",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	env := setupTestEnv(t)
	env.authRoutes(t, "secret-pass")

	w := doJSON(t, env.router, http.MethodPost, "/api/admin/auth", map[string]string{
		"action": "logout",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be expired on logout")
	}
}

func TestUnknownAuthAction(t *testing.T) {
	env := setupTestEnv(t)
	env.authRoutes(t, "secret-pass")

	w := doJSON(t, env.router, http.MethodPost, "/api/admin/auth", map[string]string{
		"action": "refresh",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown action, got %d", w.Code)
	}
}
