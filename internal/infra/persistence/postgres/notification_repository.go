package postgres

import (
	"context"

	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the domain.NotificationRepository interface using GORM.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create persists a new notification row.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := &model.NotificationModel{
		UserID:     notification.UserID,
		Type:       string(notification.Type),
		SavedJobID: notification.SavedJobID,
		Seen:       notification.Seen,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByUserID lists the user's notifications, newest first.
func (repo *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationMs []model.NotificationModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationMs))
	for i := range notificationMs {
		m := &notificationMs[i]
		notifications = append(notifications, &entity.Notification{
			ID:         m.ID,
			UserID:     m.UserID,
			Type:       entity.NotificationType(m.Type),
			SavedJobID: m.SavedJobID,
			Seen:       m.Seen,
			CreatedAt:  m.CreatedAt,
		})
	}

	return notifications, nil
}

// savedJobRepository implements the domain.SavedJobRepository interface using GORM.
type savedJobRepository struct {
	db *gorm.DB
}

// NewSavedJobRepository is the constructor for savedJobRepository.
func NewSavedJobRepository(db *gorm.DB) repository.SavedJobRepository {
	return &savedJobRepository{db: db}
}

// FindByUserID lists the saved-job rows created by the given job seeker.
func (repo *savedJobRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavedJob, error) {
	var savedJobMs []model.SavedJobModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&savedJobMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved jobs")
	}

	savedJobs := make([]*entity.SavedJob, 0, len(savedJobMs))
	for i := range savedJobMs {
		m := &savedJobMs[i]
		savedJobs = append(savedJobs, &entity.SavedJob{
			ID:         m.ID,
			UserID:     m.UserID,
			JobOwnerID: m.JobOwnerID,
			CreatedAt:  m.CreatedAt,
		})
	}

	return savedJobs, nil
}
