package mocks

import (
	"fmt"
	"time"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate creates a session token for the given user
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token_for_user_%d", userID), nil
}

// Validate checks a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: valid claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
