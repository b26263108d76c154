// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByMobile retrieves a single user by country code and mobile number.
func (repo *userRepository) FindByMobile(ctx context.Context, countryCode, mobileNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "country_code = ? AND mobile_number = ?", countryCode, mobileNumber)
}

// FindByVerificationHash retrieves the user whose emailed verification link carries hash.
func (repo *userRepository) FindByVerificationHash(ctx context.Context, hash string) (*entity.User, error) {
	return repo.findOne(ctx, "verification_hash = ?", hash)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("JobSeekerProfile").
		Preload("EmployerProfile").
		Preload("VendorProfile").
		Where(query, args...).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its role profile row.
// GORM's Create with associations inserts into users and the profile table together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "mobile") {
				return repository.ErrDuplicateMobile
			}

			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Carry the generated ID and timestamps back onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// SetOTP stamps the user's OTP slot with code and issuedAt in a single UPDATE,
// overwriting any pending code.
func (repo *userRepository) SetOTP(ctx context.Context, userID uuid.UUID, code string, issuedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"otp":            code,
			"otp_created_at": issuedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set otp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearOTP empties both OTP slot fields in a single UPDATE.
func (repo *userRepository) ClearOTP(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"otp":            "",
			"otp_created_at": nil,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear otp")
	}

	return nil
}

// OTPInUse reports whether any user currently holds code in their OTP slot.
func (repo *userRepository) OTPInUse(ctx context.Context, code string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("otp = ?", code).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check otp usage")
	}

	return count > 0, nil
}

// SetPasswordHash replaces the user's password hash.
func (repo *userRepository) SetPasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", hash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetVerified marks the user's email address as verified.
func (repo *userRepository) SetVerified(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("verified", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		MobileNumber:     data.MobileNumber,
		CountryCode:      data.CountryCode,
		DisplayName:      data.DisplayName,
		PasswordHash:     data.PasswordHash,
		Role:             entity.Role(data.Role),
		Source:           entity.Source(data.Source),
		Verified:         data.Verified,
		VerificationHash: data.VerificationHash,
		OTP:              data.OTP,
		OTPCreatedAt:     data.OTPCreatedAt,
		JobSeekerProfile: toJobSeekerProfileDomain(data.JobSeekerProfile),
		EmployerProfile:  toEmployerProfileDomain(data.EmployerProfile),
		VendorProfile:    toVendorProfileDomain(data.VendorProfile),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		MobileNumber:     data.MobileNumber,
		CountryCode:      data.CountryCode,
		DisplayName:      data.DisplayName,
		PasswordHash:     data.PasswordHash,
		Role:             string(data.Role),
		Source:           string(data.Source),
		Verified:         data.Verified,
		VerificationHash: data.VerificationHash,
		OTP:              data.OTP,
		OTPCreatedAt:     data.OTPCreatedAt,
		JobSeekerProfile: fromJobSeekerProfileDomain(data.JobSeekerProfile),
		EmployerProfile:  fromEmployerProfileDomain(data.EmployerProfile),
		VendorProfile:    fromVendorProfileDomain(data.VendorProfile),
	}
}

func toJobSeekerProfileDomain(data *model.JobSeekerProfileModel) *entity.JobSeekerProfile {
	if data == nil {
		return nil
	}

	return &entity.JobSeekerProfile{
		UserID:            data.UserID,
		Gender:            data.Gender,
		DOB:               data.DOB,
		EmploymentStatus:  data.EmploymentStatus,
		MarketInformation: data.MarketInformation,
		JobNotification:   data.JobNotification,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromJobSeekerProfileDomain(data *entity.JobSeekerProfile) *model.JobSeekerProfileModel {
	if data == nil {
		return nil
	}

	return &model.JobSeekerProfileModel{
		UserID:            data.UserID,
		Gender:            data.Gender,
		DOB:               data.DOB,
		EmploymentStatus:  data.EmploymentStatus,
		MarketInformation: data.MarketInformation,
		JobNotification:   data.JobNotification,
	}
}

func toEmployerProfileDomain(data *model.EmployerProfileModel) *entity.EmployerProfile {
	if data == nil {
		return nil
	}

	return &entity.EmployerProfile{
		UserID:               data.UserID,
		OrganizationName:     data.OrganizationName,
		OrganizationType:     data.OrganizationType,
		MarketingInformation: data.MarketingInformation,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromEmployerProfileDomain(data *entity.EmployerProfile) *model.EmployerProfileModel {
	if data == nil {
		return nil
	}

	return &model.EmployerProfileModel{
		UserID:               data.UserID,
		OrganizationName:     data.OrganizationName,
		OrganizationType:     data.OrganizationType,
		MarketingInformation: data.MarketingInformation,
	}
}

func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		UserID:           data.UserID,
		OrganizationName: data.OrganizationName,
		OrganizationType: data.OrganizationType,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		UserID:           data.UserID,
		OrganizationName: data.OrganizationName,
		OrganizationType: data.OrganizationType,
	}
}
