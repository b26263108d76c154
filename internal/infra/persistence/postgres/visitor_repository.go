package postgres

import (
	"context"
	"time"

	"koor/internal/domain/entity"
	"koor/internal/domain/repository"
	"koor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// visitorRepository implements the domain.VisitorRepository interface using GORM.
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository is the constructor for visitorRepository.
func NewVisitorRepository(db *gorm.DB) repository.VisitorRepository {
	return &visitorRepository{db: db}
}

// Upsert inserts the visit unless a row for the same IP and calendar date
// already exists. The unique (ip_address, date) index absorbs repeats via
// ON CONFLICT DO NOTHING.
func (repo *visitorRepository) Upsert(ctx context.Context, visitor *entity.VisitorLog) error {
	visitorM := &model.VisitorLogModel{
		IPAddress: visitor.IPAddress,
		Agent:     visitor.Agent,
		Date:      visitor.Date.UTC().Truncate(24 * time.Hour),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ip_address"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(visitorM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert visitor log")
	}

	return nil
}

// CountByDate returns how many distinct visitors were seen on date.
func (repo *visitorRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VisitorLogModel{}).
		Where("date = ?", date.UTC().Truncate(24*time.Hour)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count visitors")
	}

	return count, nil
}
