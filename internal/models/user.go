package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User roles. STUDENT is the default role assigned at signup.
const (
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Restricted to the institutional domain at signup
	Name       string `json:"name"`
	Password   string `json:"-"` // Store hashed password, ignore for JSON serialization
	Role       string `json:"role" gorm:"size:20;default:STUDENT"`
	CollegeID  string `json:"college_id"`
	IsVerified bool   `json:"is_verified" gorm:"default:false"`
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,min=2,max=50"`
	Password  string `json:"password" validate:"required,min=6"`
	CollegeID string `json:"college_id"`
}

// VerifyOTPRequest defines the request body for OTP verification
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// LoginRequest defines the request body for authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	CollegeID string `json:"college_id"`
	jwt.RegisteredClaims
}
