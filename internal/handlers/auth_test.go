package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubMailer records sends instead of talking to SMTP
type stubMailer struct{}

func (s *stubMailer) SendOTP(to, code string) error { return nil }

// setupAuthApp wires the auth routes against an in-memory SQLite database
func setupAuthApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.OTPCode{}), "failed to migrate tables")

	e := echo.New()
	userRepo := repositories.NewPostgresUserRepository(db)
	handler := NewAuthHandler(userRepo, &stubMailer{}, "thapar.edu")
	handler.RegisterAuthRoutes(e.Group("/api/auth"))
	return e, db
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthFlow(t *testing.T) {
	t.Run("signup, verify and login end to end", func(t *testing.T) {
		e, db := setupAuthApp(t)

		rec := postJSON(e, "/api/auth/signup",
			`{"email":"student@thapar.edu","name":"Student","password":"secret123","college_id":"102103456"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		// The OTP row was created alongside the user
		var otp models.OTPCode
		require.NoError(t, db.Where("email = ?", "student@thapar.edu").First(&otp).Error)
		require.Len(t, otp.Code, 6)

		// Login before verification is rejected
		rec = postJSON(e, "/api/auth/login",
			`{"email":"student@thapar.edu","password":"secret123"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "not verified")

		// Verify with the correct code
		rec = postJSON(e, "/api/auth/verify",
			`{"email":"student@thapar.edu","otp":"`+otp.Code+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		// Login now succeeds and returns a token
		rec = postJSON(e, "/api/auth/login",
			`{"email":"student@thapar.edu","password":"secret123"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "student@thapar.edu", resp.User.Email)
		assert.Equal(t, models.RoleStudent, resp.User.Role)
	})

	t.Run("signup outside the institutional domain fails", func(t *testing.T) {
		e, db := setupAuthApp(t)

		rec := postJSON(e, "/api/auth/signup",
			`{"email":"student@gmail.com","name":"Student","password":"secret123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email domain")

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.Zero(t, count, "no user row may be created")
	})

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		e, _ := setupAuthApp(t)

		rec := postJSON(e, "/api/auth/signup",
			`{"email":"student@thapar.edu","name":"Student","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = postJSON(e, "/api/auth/signup",
			`{"email":"student@thapar.edu","name":"Student","password":"secret123"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("verify with a wrong code fails", func(t *testing.T) {
		e, _ := setupAuthApp(t)

		rec := postJSON(e, "/api/auth/signup",
			`{"email":"student@thapar.edu","name":"Student","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = postJSON(e, "/api/auth/verify",
			`{"email":"student@thapar.edu","otp":"000000"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired OTP")
	})

	t.Run("login with a wrong password fails", func(t *testing.T) {
		e, db := setupAuthApp(t)

		rec := postJSON(e, "/api/auth/signup",
			`{"email":"student@thapar.edu","name":"Student","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var otp models.OTPCode
		require.NoError(t, db.Where("email = ?", "student@thapar.edu").First(&otp).Error)
		rec = postJSON(e, "/api/auth/verify",
			`{"email":"student@thapar.edu","otp":"`+otp.Code+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = postJSON(e, "/api/auth/login",
			`{"email":"student@thapar.edu","password":"wrong-password"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
