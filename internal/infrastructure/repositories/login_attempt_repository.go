package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AmitChauhan63390/auth-app/domain"
)

// LoginAttemptRepositoryImpl implements domain.LoginAttemptRepository using
// a fixed-window counter in Redis. This is abuse control only; no session
// state lives here.
type LoginAttemptRepositoryImpl struct {
	client *redis.Client
}

// NewLoginAttemptRepository creates a new login attempt repository
func NewLoginAttemptRepository(client *redis.Client) domain.LoginAttemptRepository {
	return &LoginAttemptRepositoryImpl{client: client}
}

func attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

// Record implements domain.LoginAttemptRepository. The window TTL is set
// when the counter is first created and left untouched afterwards, so the
// window is fixed rather than sliding.
func (r *LoginAttemptRepositoryImpl) Record(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := attemptKey(email)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record login attempt: %w", err)
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set attempt window: %w", err)
		}
	}
	return count, nil
}

// Reset implements domain.LoginAttemptRepository
func (r *LoginAttemptRepositoryImpl) Reset(ctx context.Context, email string) error {
	return r.client.Del(ctx, attemptKey(email)).Err()
}
