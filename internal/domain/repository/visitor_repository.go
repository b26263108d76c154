package repository

import (
	"context"
	"time"

	"koor/internal/domain/entity"
)

// VisitorRepository records anonymous visits, one row per (IP, calendar date).
type VisitorRepository interface {
	// Upsert inserts the visit unless a row for the same IP and date already
	// exists, in which case the call is absorbed.
	Upsert(ctx context.Context, visitor *entity.VisitorLog) error

	// CountByDate returns how many distinct visitors were seen on date.
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}
