package auth

import (
	"context"

	"github.com/mmynk/acme-dashboard/internal/models"
)

// Authenticator verifies a user's credentials against stored accounts.
// Implementations may back it with passwords, passkeys, OAuth, etc.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate returns the user whose credentials match.
	// Unknown users and wrong credentials both yield ErrInvalidCredentials;
	// any other error is an infrastructure failure.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
