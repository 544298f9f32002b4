package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrUserAlreadyExists,
		ErrTooManyAttempts,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := NewValidationError("Invalid email address")

	if err.Error() != "Invalid email address" {
		t.Errorf("expected message %q, got %q", "Invalid email address", err.Error())
	}
}

func TestAsValidationError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMatch   bool
		expectedMessage string
	}{
		{
			name:            "direct validation error",
			err:             NewValidationError("All fields are required"),
			expectedMatch:   true,
			expectedMessage: "All fields are required",
		},
		{
			name:            "wrapped validation error",
			err:             fmt.Errorf("register: %w", NewValidationError("Invalid phone number")),
			expectedMatch:   true,
			expectedMessage: "Invalid phone number",
		},
		{
			name:          "sentinel error is not a validation error",
			err:           ErrInvalidCredentials,
			expectedMatch: false,
		},
		{
			name:          "nil error",
			err:           nil,
			expectedMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve, ok := AsValidationError(tt.err)
			if ok != tt.expectedMatch {
				t.Fatalf("expected match=%v, got %v", tt.expectedMatch, ok)
			}
			if ok && ve.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, ve.Message)
			}
		})
	}
}
