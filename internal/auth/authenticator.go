// Package auth authenticates hall operators: the staff accounts allowed to
// manage residents and events.
package auth

import (
	"context"

	"github.com/mmynk/safeforhall/internal/models"
)

// Authenticator defines the interface for operator authentication.
type Authenticator interface {
	// Register creates a new operator account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the operator's credentials and returns the account.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
