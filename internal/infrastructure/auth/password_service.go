package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// hashCost pins the bcrypt work factor. The salt is generated per call and
// embedded in the output, so hashing the same password twice yields
// different strings.
const hashCost = 10

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: hashCost,
	}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. Mismatch is reported as false,
// never as an error; bcrypt compares digests in constant time.
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
