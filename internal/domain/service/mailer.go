package service

import "context"

// Mailer sends transactional mail. Implementations must bound delivery time;
// callers treat failures as non-fatal and log them.
type Mailer interface {
	// SendOTP delivers a one-time passcode to the address.
	SendOTP(ctx context.Context, to, displayName, code string) error

	// SendVerificationLink delivers the account-verification link carrying hash.
	SendVerificationLink(ctx context.Context, to, displayName, hash string) error
}
