package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_Hash(t *testing.T) {
	svc := NewPasswordService()

	password := "correct horse battery staple"
	hash, err := svc.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == password {
		t.Error("hash must never equal the plaintext password")
	}
	if strings.Contains(hash, password) {
		t.Error("hash must not contain the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("expected bcrypt cost-10 hash, got %q", hash[:7])
	}
}

func TestPasswordServiceImpl_HashIsSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("hashing the same password twice must produce different outputs")
	}
}

func TestPasswordServiceImpl_Verify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("mysecretpassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"correct password", "mysecretpassword", true},
		{"wrong password", "notmypassword", false},
		{"empty password", "", false},
		{"password with different case", "MySecretPassword", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Verify(hash, tt.password); got != tt.expected {
				t.Errorf("Verify(%q) = %v, expected %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestPasswordServiceImpl_VerifyGarbageHash(t *testing.T) {
	svc := NewPasswordService()

	// A malformed hash must report mismatch, not panic or succeed
	if svc.Verify("not-a-bcrypt-hash", "whatever") {
		t.Error("expected verification against garbage hash to fail")
	}
}
