package usecase

import "context"

// RecoveryUsecase drives the OTP-based flows: password recovery and email
// verification. The reset-token → change-token handover keeps each step's
// authority scoped to exactly what the previous step proved.
type RecoveryUsecase interface {
	// SendOTP issues a fresh OTP for the account behind email, mails it, and
	// returns a reset-class token for the verification step. Mail failures
	// are logged and do not fail the call.
	SendOTP(ctx context.Context, email string) (resetToken string, err error)

	// VerifyOTP checks otp against the account named by the reset token and
	// returns a change-class token pinned to that OTP.
	VerifyOTP(ctx context.Context, resetToken, otp string) (changeToken string, err error)

	// ChangePassword sets a new password for the account named by the change
	// token, provided the token's OTP still matches the stored one. The OTP
	// is consumed and saved-job owners are notified.
	ChangePassword(ctx context.Context, changeToken, newPassword string) error

	// EmailVerification marks the account verified when otp matches under the
	// reset token, consuming the OTP.
	EmailVerification(ctx context.Context, resetToken, otp string) error

	// AccountVerification marks the account behind the emailed hash link verified.
	AccountVerification(ctx context.Context, hash string) error

	// ResendVerification reissues the OTP, overwriting any pending one, and
	// mails a fresh verification message.
	ResendVerification(ctx context.Context, email string) error
}
