// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"koor/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create collides with an existing email.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateMobile is returned when a create collides with an existing mobile number.
var ErrDuplicateMobile = errors.New("mobile number already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByMobile retrieves a single user by country code and mobile number.
	FindByMobile(ctx context.Context, countryCode, mobileNumber string) (*entity.User, error)

	// FindByVerificationHash retrieves the user whose emailed verification link carries hash.
	FindByVerificationHash(ctx context.Context, hash string) (*entity.User, error)

	// Create persists a new user entity together with its role profile row.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SetOTP stamps the user's single OTP slot with code and issuedAt in one write.
	// A pending code is overwritten.
	SetOTP(ctx context.Context, userID uuid.UUID, code string, issuedAt time.Time) error

	// ClearOTP empties both OTP slot fields in one write.
	ClearOTP(ctx context.Context, userID uuid.UUID) error

	// OTPInUse reports whether any user currently holds code in their OTP slot.
	OTPInUse(ctx context.Context, code string) (bool, error)

	// SetPasswordHash replaces the user's password hash.
	SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error

	// SetVerified marks the user's email address as verified.
	SetVerified(ctx context.Context, userID uuid.UUID) error
}
