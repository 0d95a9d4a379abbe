package repositories

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or the caller is not
	// allowed to see that it exists (ownership-scoped conditional updates).
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidOTP is returned when no matching, non-expired OTP row exists.
	ErrInvalidOTP = errors.New("invalid or expired OTP")
)
