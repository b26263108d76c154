// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleVendor    Role = "vendor"
)

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleJobSeeker, RoleEmployer, RoleVendor:
		return true
	}

	return false
}

// Source records which channel created the account. Social logins must
// come back through the same source they registered with.
type Source string

const (
	SourceApp      Source = "app"
	SourceApple    Source = "apple"
	SourceFacebook Source = "facebook"
	SourceGoogle   Source = "google"
)

// Valid reports whether the source is a known registration channel.
func (s Source) Valid() bool {
	switch s {
	case SourceApp, SourceApple, SourceFacebook, SourceGoogle:
		return true
	}

	return false
}

// User is the core identity entity shared across all marketplace roles.
// At most one OTP is live per user: reissuing overwrites both OTP fields,
// consuming clears both.
type User struct {
	ID               uuid.UUID        // The Global Unique Identifier for the user.
	Email            string           // Primary contact email, used as the login identifier.
	MobileNumber     string           // Optional mobile number, alternative login identifier.
	CountryCode      string           // Dialing code qualifying MobileNumber.
	DisplayName      string           // The user's display name.
	PasswordHash     string           // Bcrypt hash; empty for social-only accounts.
	Role             Role             // The marketplace role chosen at registration.
	Source           Source           // The channel the account was created through.
	Verified         bool             // Whether the email address has been verified.
	VerificationHash string           // Token embedded in the emailed verification link.
	OTP              string           // The live one-time passcode, empty when none is pending.
	OTPCreatedAt     *time.Time       // When the live OTP was issued, nil when none is pending.
	JobSeekerProfile *JobSeekerProfile // Nil unless the user registered as a job seeker.
	EmployerProfile  *EmployerProfile  // Nil unless the user registered as an employer.
	VendorProfile    *VendorProfile    // Nil unless the user registered as a vendor.
	CreatedAt        time.Time        // Timestamp of when this account was created.
	UpdatedAt        time.Time        // Timestamp of the last modification.
}

// HasLiveOTP reports whether an unconsumed OTP sits in the user's slot.
func (u *User) HasLiveOTP() bool {
	return u.OTP != "" && u.OTPCreatedAt != nil
}

// OTPExpired reports whether the live OTP has outlived the validity window.
// A user without a live OTP is treated as expired.
func (u *User) OTPExpired(now time.Time, window time.Duration) bool {
	if !u.HasLiveOTP() {
		return true
	}

	return now.Sub(*u.OTPCreatedAt) > window
}

// JobSeekerProfile holds data specific to the job seeker role.
type JobSeekerProfile struct {
	UserID            uuid.UUID  // Foreign key linking this profile to a core User entity.
	Gender            string
	DOB               *time.Time
	EmploymentStatus  string
	MarketInformation bool       // Whether the user opted into market information mails.
	JobNotification   bool       // Whether the user opted into job notification mails.
	UpdatedAt         time.Time
}

// EmployerProfile holds data specific to the employer role.
type EmployerProfile struct {
	UserID               uuid.UUID // Foreign key linking this profile to a core User entity.
	OrganizationName     string
	OrganizationType     string
	MarketingInformation bool
	UpdatedAt            time.Time
}

// VendorProfile holds data specific to the vendor role.
type VendorProfile struct {
	UserID           uuid.UUID // Foreign key linking this profile to a core User entity.
	OrganizationName string
	OrganizationType string
	UpdatedAt        time.Time
}
