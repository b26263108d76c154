package impl

import (
	"context"
	"testing"
	"time"

	"koor/internal/domain/entity"
	mockRepo "koor/internal/mocks/repository"
	"koor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVisitorService(t *testing.T) (usecase.VisitorUsecase, *mockRepo.MockVisitorRepository) {
	t.Helper()

	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	svc := NewVisitorService(VisitorServiceParams{
		VisitorRepo: visitorRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, visitorRepo
}

func TestRecordVisit(t *testing.T) {
	svc, visitorRepo := createTestVisitorService(t)
	ctx := context.Background()

	visitorRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.VisitorLog")).
		Run(func(_ context.Context, visitor *entity.VisitorLog) {
			assert.Equal(t, "203.0.113.9", visitor.IPAddress)
			assert.Equal(t, "test-agent", visitor.Agent)
			assert.Equal(t, time.UTC, visitor.Date.Location())
		}).
		Return(nil)

	err := svc.RecordVisit(ctx, usecase.RecordVisitInput{
		IPAddress: "203.0.113.9",
		Agent:     "test-agent",
	})
	require.NoError(t, err)
}

func TestRecordVisit_RepositoryError(t *testing.T) {
	svc, visitorRepo := createTestVisitorService(t)
	ctx := context.Background()

	visitorRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.VisitorLog")).
		Return(assert.AnError)

	err := svc.RecordVisit(ctx, usecase.RecordVisitInput{IPAddress: "203.0.113.9"})
	assert.Error(t, err)
}
