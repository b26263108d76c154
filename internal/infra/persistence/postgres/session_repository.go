package postgres

import (
	"context"
	"time"

	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves a session by its identifier, revoked or not.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindActiveByUserID lists the user's sessions that have not been revoked.
func (repo *sessionRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	var sessionMs []model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND (expires_at IS NULL OR expires_at > ?)", userID, time.Now()).
		Order("created_at DESC").
		Find(&sessionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	sessions := make([]*entity.Session, 0, len(sessionMs))
	for i := range sessionMs {
		sessions = append(sessions, toSessionDomain(&sessionMs[i]))
	}

	return sessions, nil
}

// Revoke stamps the session's expiry with the current instant. The row stays
// behind as an audit record; revoking twice leaves the first stamp in place.
func (repo *sessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND (expires_at IS NULL OR expires_at > ?)", id, time.Now()).
		Update("expires_at", time.Now()).Error
	if err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		IPAddress: data.IPAddress,
		Agent:     data.Agent,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		IPAddress: data.IPAddress,
		Agent:     data.Agent,
		ExpiresAt: data.ExpiresAt,
	}
}
