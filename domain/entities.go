package domain

import "time"

// User represents a registered account in the system
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	CountryCode  string
	PhoneNumber  string
	PasswordHash string `gorm:"column:password"`
	DateOfBirth  time.Time
	Gender       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegistrationRequest carries the fields collected by the signup form
type RegistrationRequest struct {
	FirstName   string
	LastName    string
	Email       string
	CountryCode string
	PhoneNumber string
	Password    string
	DateOfBirth string
	Gender      string
}

// Credentials represents login credentials
type Credentials struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}
