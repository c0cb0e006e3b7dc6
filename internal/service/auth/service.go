package auth

import (
	"context"
	"strings"
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
}

// AuthProvider defines the interface for authentication providers.
// This interface is framework-agnostic and can be implemented by various
// authentication mechanisms.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser resolves a username to the account id the token
	// subject is issued for.
	IdentifyUser(ctx context.Context, username string) (int64, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// AuthService handles authentication business logic.
// This service is framework-agnostic and can be used with any HTTP framework or CLI.
type AuthService struct {
	provider           AuthProvider
	protectedEndpoints []string
}

// NewAuthService creates a new authentication service.
// protectedEndpoints lists the path prefixes that require a valid token;
// everything else on the API is public reading.
func NewAuthService(provider AuthProvider, protectedEndpoints []string) *AuthService {
	return &AuthService{
		provider:           provider,
		protectedEndpoints: protectedEndpoints,
	}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// IsProtectedEndpoint checks if a path requires authentication.
// Returns true if the path matches any configured protected endpoint prefix.
func (s *AuthService) IsProtectedEndpoint(path string) bool {
	for _, endpoint := range s.protectedEndpoints {
		if strings.HasPrefix(path, endpoint) {
			return true
		}
	}
	return false
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
