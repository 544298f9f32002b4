package mocks

import (
	"context"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *domain.RegistrationRequest) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	// Default behavior: echo a created user
	return &domain.User{ID: 1, Email: req.Email}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// GetUserProfile loads a user profile
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
