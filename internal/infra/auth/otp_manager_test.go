package auth

import (
	"context"
	"testing"
	"time"
	"unicode"

	"koor/config"
	"koor/internal/domain/entity"
	"koor/internal/domain/service"
	mockRepo "koor/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOTPManager(t *testing.T) (service.OTPManager, *mockRepo.MockUserRepository) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.RecoveryTTL = 15 * time.Minute

	users := mockRepo.NewMockUserRepository(t)

	return NewOTPManager(cfg, users), users
}

func TestOTPManager_Issue_FourDigitCode(t *testing.T) {
	manager, users := newTestOTPManager(t)
	ctx := context.Background()
	userID := uuid.New()

	var stamped string
	users.EXPECT().OTPInUse(ctx, mock.AnythingOfType("string")).Return(false, nil)
	users.EXPECT().
		SetOTP(ctx, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ uuid.UUID, code string, _ time.Time) {
			stamped = code
		}).
		Return(nil)

	code, err := manager.Issue(ctx, userID)
	require.NoError(t, err)

	assert.Len(t, code, 4)
	for _, r := range code {
		assert.True(t, unicode.IsDigit(r))
	}
	assert.Equal(t, code, stamped)
}

func TestOTPManager_Issue_SkipsCodesInUse(t *testing.T) {
	manager, users := newTestOTPManager(t)
	ctx := context.Background()
	userID := uuid.New()

	// First draw collides with another account's live code and is rejected.
	users.EXPECT().OTPInUse(ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	users.EXPECT().OTPInUse(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()
	users.EXPECT().
		SetOTP(ctx, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil)

	code, err := manager.Issue(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, code, 4)
}

func TestOTPManager_Issue_SpaceExhausted(t *testing.T) {
	manager, users := newTestOTPManager(t)
	ctx := context.Background()

	users.EXPECT().OTPInUse(ctx, mock.AnythingOfType("string")).Return(true, nil)

	_, err := manager.Issue(ctx, uuid.New())
	assert.Error(t, err)
}

func TestOTPManager_Verify(t *testing.T) {
	manager, _ := newTestOTPManager(t)

	fresh := time.Now().Add(-time.Minute)
	stale := time.Now().Add(-16 * time.Minute)

	tests := []struct {
		name string
		user *entity.User
		code string
		want bool
	}{
		{
			name: "matching live code",
			user: &entity.User{OTP: "1234", OTPCreatedAt: &fresh},
			code: "1234",
			want: true,
		},
		{
			name: "wrong code",
			user: &entity.User{OTP: "1234", OTPCreatedAt: &fresh},
			code: "4321",
			want: false,
		},
		{
			name: "code past the window",
			user: &entity.User{OTP: "1234", OTPCreatedAt: &stale},
			code: "1234",
			want: false,
		},
		{
			name: "no live code",
			user: &entity.User{},
			code: "1234",
			want: false,
		},
		{
			name: "short candidate",
			user: &entity.User{OTP: "1234", OTPCreatedAt: &fresh},
			code: "123",
			want: false,
		},
		{
			name: "nil user",
			user: nil,
			code: "1234",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manager.Verify(tt.user, tt.code))
		})
	}
}

func TestOTPManager_Consume(t *testing.T) {
	manager, users := newTestOTPManager(t)
	ctx := context.Background()
	userID := uuid.New()

	users.EXPECT().ClearOTP(ctx, userID).Return(nil)

	require.NoError(t, manager.Consume(ctx, userID))
}
