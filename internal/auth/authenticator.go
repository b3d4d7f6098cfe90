package auth

import (
	"context"

	"github.com/JuanjoFeller/billwise/internal/models"
)

// Authenticator is the identity-provider contract. The abstraction keeps the
// handlers independent of the credential mechanism, so a federated (OAuth)
// implementation can be slotted in next to the password one without touching
// the rest of the service.
type Authenticator interface {
	// Register creates a new account for the email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the account.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks whether a credential meets the
	// implementation's requirements before any account is created.
	ValidateCredential(credential string) error
}
