package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob links a job seeker to a job posting they bookmarked. The posting
// itself lives outside this service; only the owning employer matters here.
type SavedJob struct {
	ID         int64
	UserID     uuid.UUID // The job seeker who saved the posting.
	JobOwnerID uuid.UUID // The employer who owns the posting.
	CreatedAt  time.Time
}
