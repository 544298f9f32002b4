package mocks

import (
	"context"
	"time"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// MockLoginAttemptRepository implements domain.LoginAttemptRepository for testing
type MockLoginAttemptRepository struct {
	RecordFunc func(ctx context.Context, email string, window time.Duration) (int64, error)
	ResetFunc  func(ctx context.Context, email string) error
}

// NewMockLoginAttemptRepository creates a new MockLoginAttemptRepository with default behaviors
func NewMockLoginAttemptRepository() *MockLoginAttemptRepository {
	return &MockLoginAttemptRepository{}
}

// Record counts a login attempt within the window
func (m *MockLoginAttemptRepository) Record(ctx context.Context, email string, window time.Duration) (int64, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, email, window)
	}
	// Default behavior: first attempt in the window
	return 1, nil
}

// Reset clears the attempt counter
func (m *MockLoginAttemptRepository) Reset(ctx context.Context, email string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.LoginAttemptRepository = (*MockLoginAttemptRepository)(nil)
