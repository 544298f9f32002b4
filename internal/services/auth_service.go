package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/AmitChauhan63390/auth-app/domain"
)

var (
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

const (
	minPasswordLength = 8
	dateOfBirthLayout = "2006-01-02"
)

// AuthConfig holds tunables for the authentication flow
type AuthConfig struct {
	TokenTTL         time.Duration
	MaxLoginAttempts int64
	AttemptWindow    time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.LoginAttemptRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	cfg         AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	attemptRepo domain.LoginAttemptRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	cfg AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		cfg:         cfg,
	}
}

// normalizeEmail canonicalizes an email address before validation, lookup
// or persistence. Uniqueness and login lookups are therefore
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register implements domain.AuthService. Validation order is fixed:
// presence, then email format, then phone format, then password length.
// The first failure wins so error reporting stays deterministic.
func (s *AuthServiceImpl) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.User, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.CountryCode == "" || req.PhoneNumber == "" || req.Password == "" ||
		req.DateOfBirth == "" || req.Gender == "" {
		return nil, domain.NewValidationError("All fields are required")
	}

	email := normalizeEmail(req.Email)
	if !emailRegex.MatchString(email) {
		return nil, domain.NewValidationError("Invalid email address")
	}

	if !phoneRegex.MatchString(req.PhoneNumber) {
		return nil, domain.NewValidationError("Invalid phone number")
	}

	if len(req.Password) < minPasswordLength {
		return nil, domain.NewValidationError("Password must be at least 8 characters long")
	}

	dateOfBirth, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
	if err != nil {
		return nil, domain.NewValidationError("Invalid date of birth")
	}

	hashedPassword, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		CountryCode:  req.CountryCode,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashedPassword,
		DateOfBirth:  dateOfBirth,
		Gender:       req.Gender,
	}

	// Uniqueness is the store constraint's job: no pre-check here, so two
	// concurrent registrations for the same email race at the insert and
	// exactly one wins.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// produce the same ErrInvalidCredentials so callers cannot probe for
// account existence.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Email and password are required")
	}

	email = normalizeEmail(email)

	attempts, err := s.attemptRepo.Record(ctx, email, s.cfg.AttemptWindow)
	if err != nil {
		// Throttling is best-effort: a broken counter must not lock
		// everyone out.
		log.Printf("LOGIN_ATTEMPT_TRACKING_FAILED: error=%v", err)
	} else if attempts > s.cfg.MaxLoginAttempts {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.attemptRepo.Reset(ctx, email); err != nil {
		log.Printf("LOGIN_ATTEMPT_RESET_FAILED: user_id=%d error=%v", user.ID, err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
