// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"koor/config"
	deliverycontext "koor/internal/delivery/context"
	"koor/internal/domain/entity"
	domainerrors "koor/internal/domain/errors"
	"koor/internal/domain/repository"
	"koor/internal/domain/service"
	"koor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpManager   service.OTPManager
	mailer       service.Mailer
	logger       *slog.Logger
}

// profileConfig selects how a role's profile row is built and detected.
type profileConfig struct {
	AttachProfile func(*entity.User)
	HasProfile    func(*entity.User) bool
}

var profileConfigs = map[entity.Role]profileConfig{
	entity.RoleJobSeeker: {
		AttachProfile: func(u *entity.User) { u.JobSeekerProfile = &entity.JobSeekerProfile{} },
		HasProfile:    func(u *entity.User) bool { return u.JobSeekerProfile != nil },
	},
	entity.RoleEmployer: {
		AttachProfile: func(u *entity.User) { u.EmployerProfile = &entity.EmployerProfile{} },
		HasProfile:    func(u *entity.User) bool { return u.EmployerProfile != nil },
	},
	entity.RoleVendor: {
		AttachProfile: func(u *entity.User) { u.VendorProfile = &entity.VendorProfile{} },
		HasProfile:    func(u *entity.User) bool { return u.VendorProfile != nil },
	},
	// Admin accounts carry no profile row.
	entity.RoleAdmin: {
		AttachProfile: func(*entity.User) {},
		HasProfile:    func(*entity.User) bool { return false },
	},
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPManager   service.OTPManager
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpManager:   params.OTPManager,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration: account plus role profile
// row in one transaction, then OTP issue and verification mail after commit
// so a mail hiccup never loses the account.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	cfg, ok := profileConfigs[input.Role]
	if !ok {
		return nil, domainerrors.NewValidationError("role", "role does not exist")
	}

	// Hash outside the transaction: bcrypt is deliberately slow.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "hash password during registration")
	}

	verificationHash, err := newVerificationHash()
	if err != nil {
		return nil, errors.Wrap(err, "generate verification hash")
	}

	newUser := &entity.User{
		Email:            input.Email,
		MobileNumber:     input.MobileNumber,
		CountryCode:      input.CountryCode,
		DisplayName:      input.DisplayName,
		PasswordHash:     hashedPassword,
		Role:             input.Role,
		Source:           entity.SourceApp,
		Verified:         true,
		VerificationHash: verificationHash,
	}
	cfg.AttachProfile(newUser)

	session := &entity.Session{IPAddress: input.IPAddress, Agent: input.Agent}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return translateDuplicate(err)
		}

		session.UserID = newUser.ID

		return repoFactory.NewSessionRepository().Create(ctx, session)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.startEmailVerification(ctx, newUser)

	return srv.buildAuthOutput(newUser, session, true)
}

// Login authenticates by email or mobile credentials and opens a session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.findByCredentialIdentifier(ctx, input)
	if err != nil {
		return nil, err
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if input.Role != "" && user.Role != input.Role {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	session := &entity.Session{
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		Agent:     input.Agent,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "create session during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID), slog.Any("sessionID", session.ID))

	return srv.buildAuthOutput(user, session, false)
}

// SocialLogin logs in or registers through a social origin. An account that
// exists under a different role is reported as missing rather than described,
// so a caller cannot enumerate how an address registered.
func (srv *userService) SocialLogin(ctx context.Context, input usecase.SocialLoginInput) (*usecase.AuthOutput, error) {
	if !input.Source.Valid() || input.Source == entity.SourceApp {
		return nil, domainerrors.NewValidationError("source", "source does not exist")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.registerSocialUser(ctx, input)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "find user during social login")
	default:
		if user.Source != input.Source {
			srv.log(ctx).Warn("Social login source mismatch", slog.Any("userID", user.ID))

			return nil, errors.WithStack(domainerrors.ErrSourceMismatch)
		}
		if user.Role != input.Role {
			srv.log(ctx).Warn("Social login role mismatch", slog.Any("userID", user.ID))

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}
	}

	session := &entity.Session{
		UserID:    user.ID,
		IPAddress: input.IPAddress,
		Agent:     input.Agent,
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "create session during social login")
	}

	return srv.buildAuthOutput(user, session, false)
}

// GetProfile loads the authenticated user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "load profile")
	}

	return user, nil
}

// DeleteSession revokes the session named by a refresh token. Revoking an
// already-revoked session stays a success so logout is idempotent.
func (srv *userService) DeleteSession(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ParseRefreshToken(refreshToken)
	if err != nil {
		return errors.WithStack(domainerrors.ErrAuthenticationFailed)
	}

	if err := srv.sessionRepo.Revoke(ctx, claims.SessionID); err != nil {
		return errors.Wrap(err, "revoke session")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("sessionID", claims.SessionID))

	return nil
}

func (srv *userService) registerSocialUser(ctx context.Context, input usecase.SocialLoginInput) (*entity.User, error) {
	cfg, ok := profileConfigs[input.Role]
	if !ok {
		return nil, domainerrors.NewValidationError("role", "role does not exist")
	}

	newUser := &entity.User{
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		Source:      input.Source,
		Verified:    true,
	}
	cfg.AttachProfile(newUser)

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, translateDuplicate(err)
	}

	srv.log(ctx).Info("Registered social account", slog.Any("userID", newUser.ID), slog.Any("source", input.Source))

	return newUser, nil
}

// startEmailVerification issues the OTP and sends both mails after the
// registration commit. Failures are logged and swallowed: the OTP stays in
// the slot for a resend.
func (srv *userService) startEmailVerification(ctx context.Context, user *entity.User) {
	code, err := srv.otpManager.Issue(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification OTP", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, user.DisplayName, code); err != nil {
		srv.log(ctx).Warn("Failed to send OTP mail", slog.Any("userID", user.ID), slog.Any("error", err))
	}
	if err := srv.mailer.SendVerificationLink(ctx, user.Email, user.DisplayName, user.VerificationHash); err != nil {
		srv.log(ctx).Warn("Failed to send verification mail", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

func (srv *userService) findByCredentialIdentifier(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)

	switch {
	case input.Email != "":
		user, err = srv.userRepo.FindByEmail(ctx, input.Email)
	case input.MobileNumber != "":
		user, err = srv.userRepo.FindByMobile(ctx, input.CountryCode, input.MobileNumber)
	default:
		return nil, errors.WithStack(domainerrors.ErrInvalidLoginInput)
	}

	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "find user during login")
	}

	return user, nil
}

func (srv *userService) buildAuthOutput(user *entity.User, session *entity.Session, withResetToken bool) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateSessionTokens(user.ID, session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "generate session tokens")
	}

	out := &usecase.AuthOutput{
		User:         user,
		SessionID:    session.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if withResetToken {
		resetToken, err := srv.tokenService.GenerateResetToken(user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "generate reset token")
		}
		out.ResetToken = resetToken
	}

	return out, nil
}

// translateDuplicate maps repository duplicate sentinels onto field-level
// validation errors, matching the 400 body shape.
func translateDuplicate(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.NewValidationError("email", "email already in use")
	case errors.Is(err, repository.ErrDuplicateMobile):
		return domainerrors.NewValidationError("mobile_number", "mobile number already in use")
	}

	return err
}

// newVerificationHash draws the opaque token baked into the emailed
// account-verification link.
func newVerificationHash() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
