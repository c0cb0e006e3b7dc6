package auth

import (
	"context"
	"errors"
	"fmt"

	authservice "astrobuzz/internal/service/auth"
	userusecase "astrobuzz/internal/usecase/user"
)

// DefaultMinPasswordLength is the registration password policy when no
// explicit minimum is configured.
const DefaultMinPasswordLength = 8

// StoreAuthProvider authenticates against accounts in the content store,
// through the user use case.
type StoreAuthProvider struct {
	users             *userusecase.Service
	minPasswordLength int
}

// NewStoreAuthProvider creates a provider backed by the account store.
func NewStoreAuthProvider(users *userusecase.Service, minPasswordLength int) *StoreAuthProvider {
	if minPasswordLength <= 0 {
		minPasswordLength = DefaultMinPasswordLength
	}
	return &StoreAuthProvider{
		users:             users,
		minPasswordLength: minPasswordLength,
	}
}

// ValidateCredentials checks a username/password pair against the store.
func (p *StoreAuthProvider) ValidateCredentials(ctx context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	if _, err := p.users.Authenticate(ctx, creds.Username, creds.Password); err != nil {
		if errors.Is(err, userusecase.ErrInvalidCredentials) {
			return err
		}
		return fmt.Errorf("validate credentials: %w", err)
	}
	return nil
}

// IdentifyUser resolves a username to the account id the token subject is
// issued for.
func (p *StoreAuthProvider) IdentifyUser(ctx context.Context, username string) (int64, error) {
	if username == "" {
		return 0, fmt.Errorf("username must not be empty")
	}

	u, err := p.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("identify user: %w", err)
	}
	return u.ID, nil
}

// GetRequirements returns the password requirements for registration.
func (p *StoreAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
	}
}

// Name returns the provider name.
func (p *StoreAuthProvider) Name() string {
	return "store"
}
