package handlers

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/campuskart/backend/internal/models"
	"github.com/campuskart/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

// OTPMailer sends the verification code by email. Sending is fire-and-forget:
// a failed send is logged and never fails the registration.
type OTPMailer interface {
	SendOTP(to, code string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	mailer         OTPMailer
	emailDomain    string
	jwtSecret      string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, mailer OTPMailer, emailDomain string) *AuthHandler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "supersecretjwtkey"
	}
	return &AuthHandler{
		userRepository: userRepo,
		mailer:         mailer,
		emailDomain:    emailDomain,
		jwtSecret:      jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/verify", h.Verify)
	g.POST("/login", h.Login)
}

// Signup registers an unverified user and emails them an OTP
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Only institutional addresses may register
	if !strings.HasSuffix(req.Email, "@"+h.emailDomain) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Invalid email domain. Please use your @%s email.", h.emailDomain))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Password:  string(hashedPassword),
		Role:      models.RoleStudent,
		CollegeID: req.CollegeID,
	}
	otp := &models.OTPCode{
		Email:     req.Email,
		Code:      generateOTP(),
		ExpiresAt: time.Now().Add(otpTTL),
	}

	if err := h.userRepository.RegisterUser(user, otp); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Send the OTP without blocking the response; SMTP being slow or down
	// must not hang or fail the signup
	go func(email, code string) {
		if err := h.mailer.SendOTP(email, code); err != nil {
			log.Printf("Background email warning: %v", err)
		}
	}(otp.Email, otp.Code)

	return c.JSON(http.StatusCreated, echo.Map{
		"user":    user,
		"message": "OTP sent to email",
	})
}

// Verify flips the user to verified when the submitted OTP matches and has
// not expired
func (h *AuthHandler) Verify(c echo.Context) error {
	var req models.VerifyOTPRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userRepository.VerifyOTP(req.Email, req.OTP); err != nil {
		if errors.Is(err, repositories.ErrInvalidOTP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Email verified successfully"})
}

// Login authenticates a verified user and issues a bearer token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !user.IsVerified {
		return echo.NewHTTPError(http.StatusUnauthorized, "Email not verified. Please verify your email.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:    user.ID,
		Role:      user.Role,
		CollegeID: user.CollegeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Token expires in 1 day
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}

// generateOTP returns a random 6-digit numeric code
func generateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(900000)+100000)
}
