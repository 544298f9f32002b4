package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations.
// Create must surface a duplicate email as ErrUserAlreadyExists so the
// registration flow can distinguish a conflict from a generic store failure.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
}

// AuthService defines registration and login business logic
type AuthService interface {
	Register(ctx context.Context, req *RegistrationRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// LoginAttemptRepository tracks failed login attempts per account within a
// fixed window, for abuse control. It holds no session state.
type LoginAttemptRepository interface {
	Record(ctx context.Context, email string, window time.Duration) (int64, error)
	Reset(ctx context.Context, email string) error
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
