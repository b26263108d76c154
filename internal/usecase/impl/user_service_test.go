package impl

import (
	"context"
	"testing"

	"koor/config"
	"koor/internal/domain/entity"
	domainerrors "koor/internal/domain/errors"
	"koor/internal/domain/repository"
	"koor/internal/domain/service"
	mockRepo "koor/internal/mocks/repository"
	mockService "koor/internal/mocks/service"
	"koor/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures bundles the mocked dependencies of a userService so
// each test can set expectations on exactly the pieces it touches.
type userServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	otpManager   *mockService.MockOTPManager
	mailer       *mockService.MockMailer
}

func createTestUserService(t *testing.T) (usecase.UserUsecase, userServiceFixtures) {
	t.Helper()

	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		sessionRepo:  mockRepo.NewMockSessionRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		otpManager:   mockService.NewMockOTPManager(t),
		mailer:       mockService.NewMockMailer(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		SessionRepo:  fx.sessionRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		OTPManager:   fx.otpManager,
		Mailer:       fx.mailer,
		Config:       &config.Config{},
		Logger:       newDiscardLogger(),
	})

	return svc, fx
}

func TestRegister_Success(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()

	input := usecase.RegisterInput{
		Email:       "seeker@example.com",
		Password:    "password123",
		Role:        entity.RoleJobSeeker,
		DisplayName: "Seeker",
		IPAddress:   "203.0.113.9",
		Agent:       "test-agent",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	txSessionRepo := mockRepo.NewMockSessionRepository(t)
	txSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "203.0.113.9", session.IPAddress)
			session.ID = sessionID
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewSessionRepository().Return(txSessionRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			require.NoError(t, fn(factory))
		}).
		Return(nil)

	fx.otpManager.EXPECT().Issue(ctx, userID).Return("1234", nil)
	fx.mailer.EXPECT().SendOTP(ctx, "seeker@example.com", "Seeker", "1234").Return(nil)
	fx.mailer.EXPECT().
		SendVerificationLink(ctx, "seeker@example.com", "Seeker", mock.AnythingOfType("string")).
		Return(nil)

	fx.tokenService.EXPECT().GenerateSessionTokens(userID, sessionID).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GenerateResetToken(userID).Return("reset", nil)

	out, err := svc.Register(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, sessionID, out.SessionID)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "reset", out.ResetToken)
	assert.Equal(t, entity.SourceApp, out.User.Source)
	assert.True(t, out.User.Verified)
	assert.NotEmpty(t, out.User.VerificationHash)
	assert.NotNil(t, out.User.JobSeekerProfile)
	assert.Nil(t, out.User.EmployerProfile)
}

func TestRegister_MailFailureDoesNotFail(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)

	txSessionRepo := mockRepo.NewMockSessionRepository(t)
	txSessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) { session.ID = sessionID }).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewSessionRepository().Return(txSessionRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			require.NoError(t, fn(factory))
		}).
		Return(nil)

	// The whole verification kickoff degrades gracefully.
	fx.otpManager.EXPECT().Issue(ctx, userID).Return("", assert.AnError)

	fx.tokenService.EXPECT().GenerateSessionTokens(userID, sessionID).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GenerateResetToken(userID).Return("reset", nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "employer@example.com",
		Password: "password123",
		Role:     entity.RoleEmployer,
	})
	require.NoError(t, err)
	assert.NotNil(t, out.User.EmployerProfile)
}

func TestRegister_UnknownRole(t *testing.T) {
	svc, _ := createTestUserService(t)

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "someone@example.com",
		Password: "password123",
		Role:     entity.Role("superuser"),
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "role")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	var txErr error
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			txErr = fn(factory)
		}).
		Return(domainerrors.NewValidationError("email", "email already in use"))

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "password123",
		Role:     entity.RoleJobSeeker,
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")

	// The callback itself surfaced the duplicate as a field error.
	require.ErrorAs(t, txErr, &validationErr)
}

func TestLogin_SuccessByEmail(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	user := &entity.User{ID: userID, Email: "seeker@example.com", PasswordHash: "stored-hash", Role: entity.RoleJobSeeker}

	fx.userRepo.EXPECT().FindByEmail(ctx, "seeker@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(_ context.Context, session *entity.Session) {
			assert.Equal(t, userID, session.UserID)
			session.ID = sessionID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateSessionTokens(userID, sessionID).Return("access", "refresh", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "seeker@example.com", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, sessionID, out.SessionID)
	assert.Empty(t, out.ResetToken)
}

func TestLogin_SuccessByMobile(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "stored-hash", Role: entity.RoleJobSeeker}

	fx.userRepo.EXPECT().FindByMobile(ctx, "+44", "7700900000").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateSessionTokens(userID, mock.AnythingOfType("uuid.UUID")).
		Return("access", "refresh", nil)

	_, err := svc.Login(ctx, usecase.LoginInput{
		CountryCode:  "+44",
		MobileNumber: "7700900000",
		Password:     "password123",
	})
	require.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "seeker@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "seeker@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_SocialOnlyAccountHasNoPassword(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Source: entity.SourceGoogle}

	fx.userRepo.EXPECT().FindByEmail(ctx, "social@example.com").Return(user, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "social@example.com", Password: "anything"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_MissingIdentifier(t *testing.T) {
	svc, _ := createTestUserService(t)

	_, err := svc.Login(context.Background(), usecase.LoginInput{Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLoginInput)
}

func TestLogin_RoleMismatch(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash", Role: entity.RoleJobSeeker}

	fx.userRepo.EXPECT().FindByEmail(ctx, "seeker@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("password123", "stored-hash").Return(true)

	_, err := svc.Login(ctx, usecase.LoginInput{
		Email:    "seeker@example.com",
		Password: "password123",
		Role:     entity.RoleEmployer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSocialLogin_ExistingUser(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Source: entity.SourceGoogle}

	fx.userRepo.EXPECT().FindByEmail(ctx, "social@example.com").Return(user, nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateSessionTokens(userID, mock.AnythingOfType("uuid.UUID")).
		Return("access", "refresh", nil)

	out, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Email:  "social@example.com",
		Source: entity.SourceGoogle,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
}

func TestSocialLogin_SourceMismatch(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Source: entity.SourceGoogle}

	fx.userRepo.EXPECT().FindByEmail(ctx, "social@example.com").Return(user, nil)

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Email:  "social@example.com",
		Source: entity.SourceFacebook,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSourceMismatch)
}

func TestSocialLogin_RoleMismatch(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Source: entity.SourceGoogle, Role: entity.RoleEmployer}

	fx.userRepo.EXPECT().FindByEmail(ctx, "social@example.com").Return(user, nil)

	_, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Email:  "social@example.com",
		Source: entity.SourceGoogle,
		Role:   entity.RoleJobSeeker,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSocialLogin_RegistersNewUser(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.SourceApple, user.Source)
			assert.True(t, user.Verified)
			user.ID = userID
		}).
		Return(nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
	fx.tokenService.EXPECT().
		GenerateSessionTokens(userID, mock.AnythingOfType("uuid.UUID")).
		Return("access", "refresh", nil)

	out, err := svc.SocialLogin(ctx, usecase.SocialLoginInput{
		Email:       "new@example.com",
		Source:      entity.SourceApple,
		Role:        entity.RoleJobSeeker,
		DisplayName: "New User",
	})
	require.NoError(t, err)
	assert.NotNil(t, out.User.JobSeekerProfile)
}

func TestSocialLogin_RejectsAppSource(t *testing.T) {
	svc, _ := createTestUserService(t)

	for _, source := range []entity.Source{entity.SourceApp, entity.Source("github")} {
		_, err := svc.SocialLogin(context.Background(), usecase.SocialLoginInput{
			Email:  "social@example.com",
			Source: source,
		})

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "source")
	}
}

func TestGetProfile(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeleteSession(t *testing.T) {
	svc, fx := createTestUserService(t)
	ctx := context.Background()

	sessionID := uuid.New()
	claims := &service.SessionClaims{UserID: uuid.New(), SessionID: sessionID, Class: service.TokenClassRefresh}

	fx.tokenService.EXPECT().ParseRefreshToken("refresh-token").Return(claims, nil)
	fx.sessionRepo.EXPECT().Revoke(ctx, sessionID).Return(nil)

	require.NoError(t, svc.DeleteSession(ctx, "refresh-token"))
}

func TestDeleteSession_BadToken(t *testing.T) {
	svc, fx := createTestUserService(t)

	fx.tokenService.EXPECT().ParseRefreshToken("garbage").Return(nil, service.ErrTokenInvalid)

	err := svc.DeleteSession(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}
