// Package model holds the GORM persistence structs, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email            string     `gorm:"type:varchar(255);unique;not null"`
	MobileNumber     string     `gorm:"type:varchar(13);index:idx_users_mobile,unique,where:mobile_number <> ''"`
	CountryCode      string     `gorm:"type:varchar(8)"`
	DisplayName      string     `gorm:"type:varchar(250)"`
	PasswordHash     string     `gorm:"type:varchar(255)"`
	Role             string     `gorm:"type:varchar(32);not null"`
	Source           string     `gorm:"type:varchar(32);not null;default:'app'"`
	Verified         bool       `gorm:"not null;default:false"`
	VerificationHash string     `gorm:"type:varchar(64);index"`
	OTP              string     `gorm:"column:otp;type:varchar(4)"`
	OTPCreatedAt     *time.Time `gorm:"column:otp_created_at"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time `gorm:"index"`

	JobSeekerProfile *JobSeekerProfileModel `gorm:"foreignKey:UserID"`
	EmployerProfile  *EmployerProfileModel  `gorm:"foreignKey:UserID"`
	VendorProfile    *VendorProfileModel    `gorm:"foreignKey:UserID"`
	Sessions         []SessionModel         `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// JobSeekerProfileModel mirrors the 'job_seeker_profiles' table.
type JobSeekerProfileModel struct {
	UserID            uuid.UUID `gorm:"primaryKey"`
	Gender            string    `gorm:"type:varchar(16)"`
	DOB               *time.Time
	EmploymentStatus  string `gorm:"type:varchar(32)"`
	MarketInformation bool
	JobNotification   bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobSeekerProfileModel) TableName() string {
	return "job_seeker_profiles"
}

// EmployerProfileModel mirrors the 'employer_profiles' table.
type EmployerProfileModel struct {
	UserID               uuid.UUID `gorm:"primaryKey"`
	OrganizationName     string    `gorm:"type:varchar(250)"`
	OrganizationType     string    `gorm:"type:varchar(32)"`
	MarketingInformation bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployerProfileModel) TableName() string {
	return "employer_profiles"
}

// VendorProfileModel mirrors the 'vendor_profiles' table.
type VendorProfileModel struct {
	UserID           uuid.UUID `gorm:"primaryKey"`
	OrganizationName string    `gorm:"type:varchar(250)"`
	OrganizationType string    `gorm:"type:varchar(32)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}
