package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

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

// recoveryService implements the RecoveryUsecase interface.
type recoveryService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otpManager   service.OTPManager
	mailer       service.Mailer
	logger       *slog.Logger
}

// RecoveryServiceParams holds dependencies for RecoveryService, injected by Fx.
type RecoveryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPManager   service.OTPManager
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewRecoveryService is the constructor for recoveryService.
func NewRecoveryService(params RecoveryServiceParams) usecase.RecoveryUsecase {
	return &recoveryService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otpManager:   params.OTPManager,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *recoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOTP issues a fresh OTP for the account, mails it, and hands back a
// reset-class token. The mail going missing does not fail the call; the OTP
// sits in the slot waiting for a resend.
func (srv *recoveryService) SendOTP(ctx context.Context, email string) (string, error) {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	code, err := srv.otpManager.Issue(ctx, user.ID)
	if err != nil {
		return "", errors.Wrap(err, "issue otp")
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, user.DisplayName, code); err != nil {
		srv.log(ctx).Warn("Failed to send OTP mail", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	resetToken, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return "", errors.Wrap(err, "generate reset token")
	}

	srv.log(ctx).Info("OTP issued", slog.Any("userID", user.ID))

	return resetToken, nil
}

// VerifyOTP upgrades a reset token to a change token when otp matches the
// account's live code.
func (srv *recoveryService) VerifyOTP(ctx context.Context, resetToken, otp string) (string, error) {
	claims, err := srv.tokenService.ParseResetToken(resetToken)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrRecoveryTokenInvalid)
	}

	user, err := srv.findByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	if !srv.otpManager.Verify(user, otp) {
		srv.log(ctx).Warn("OTP verification failed", slog.Any("userID", user.ID))

		return "", errors.WithStack(domainerrors.ErrOTPNotFound)
	}

	changeToken, err := srv.tokenService.GenerateChangeToken(user.ID, otp)
	if err != nil {
		return "", errors.Wrap(err, "generate change token")
	}

	return changeToken, nil
}

// ChangePassword is the final protected action: the change token's pinned OTP
// must still equal the stored one, then the hash is swapped, the OTP consumed,
// and owners of the user's saved jobs are notified.
func (srv *recoveryService) ChangePassword(ctx context.Context, changeToken, newPassword string) error {
	claims, err := srv.tokenService.ParseChangeToken(changeToken)
	if err != nil {
		return errors.WithStack(domainerrors.ErrRecoveryTokenInvalid)
	}

	user, err := srv.findByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	// The stored OTP may have rotated since the change token was minted; a
	// stale token must not carry authority forward.
	if !user.HasLiveOTP() || subtle.ConstantTimeCompare([]byte(claims.OTP), []byte(user.OTP)) != 1 {
		srv.log(ctx).Warn("Change token OTP no longer matches", slog.Any("userID", user.ID))

		return errors.WithStack(domainerrors.ErrRecoveryTokenInvalid)
	}

	// Bcrypt runs outside the transaction.
	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		if err := userRepo.SetPasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		if err := userRepo.ClearOTP(ctx, user.ID); err != nil {
			return err
		}

		return srv.notifySavedJobOwners(ctx, repoFactory, user.ID)
	})
	if err != nil {
		return errors.Wrap(err, "execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// EmailVerification marks the account verified when otp matches under the
// reset token. The OTP is consumed either way once it matched.
func (srv *recoveryService) EmailVerification(ctx context.Context, resetToken, otp string) error {
	claims, err := srv.tokenService.ParseResetToken(resetToken)
	if err != nil {
		return errors.WithStack(domainerrors.ErrRecoveryTokenInvalid)
	}

	user, err := srv.findByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if !srv.otpManager.Verify(user, otp) {
		return errors.WithStack(domainerrors.ErrOTPNotFound)
	}

	if err := srv.userRepo.SetVerified(ctx, user.ID); err != nil {
		return errors.Wrap(err, "mark user verified")
	}
	if err := srv.otpManager.Consume(ctx, user.ID); err != nil {
		return errors.Wrap(err, "consume otp")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return nil
}

// AccountVerification marks the account behind the emailed hash link verified.
func (srv *recoveryService) AccountVerification(ctx context.Context, hash string) error {
	if hash == "" {
		return errors.WithStack(domainerrors.ErrVerificationLinkInvalid)
	}

	user, err := srv.userRepo.FindByVerificationHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrVerificationLinkInvalid)
		}

		return errors.Wrap(err, "find user by verification hash")
	}

	if err := srv.userRepo.SetVerified(ctx, user.ID); err != nil {
		return errors.Wrap(err, "mark user verified")
	}

	return nil
}

// ResendVerification reissues the OTP, overwriting any pending one, and
// mails a fresh verification message.
func (srv *recoveryService) ResendVerification(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := srv.otpManager.Issue(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "reissue otp")
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, user.DisplayName, code); err != nil {
		srv.log(ctx).Warn("Failed to resend OTP mail", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// notifySavedJobOwners raises one password_update notification toward the
// owner of each saved-job row the user holds.
func (srv *recoveryService) notifySavedJobOwners(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	savedJobs, err := repoFactory.NewSavedJobRepository().FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	notificationRepo := repoFactory.NewNotificationRepository()
	for _, savedJob := range savedJobs {
		savedJobID := savedJob.ID
		notification := &entity.Notification{
			UserID:     savedJob.JobOwnerID,
			Type:       entity.NotificationPasswordUpdate,
			SavedJobID: &savedJobID,
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return err
		}
	}

	return nil
}

func (srv *recoveryService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "find user by email")
	}

	return user, nil
}

func (srv *recoveryService) findByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "find user by id")
	}

	return user, nil
}
