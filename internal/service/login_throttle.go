package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrTooManyAttempts = errors.New("too many failed login attempts")

const (
	maxFailedAttempts = 5
	attemptWindow     = 15 * time.Minute
)

// LoginThrottle limits failed password attempts per email within a window.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type loginThrottle struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewLoginThrottle(log *logrus.Logger, redisClient *redis.Client) LoginThrottle {
	return &loginThrottle{
		log:         log,
		redisClient: redisClient,
	}
}

func throttleKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (t *loginThrottle) Allow(ctx context.Context, email string) error {
	count, err := t.redisClient.Get(ctx, throttleKey(email)).Int()
	if err != nil && err != redis.Nil {
		t.log.Warnf("Failed to read login attempts: %+v", err)
		return err
	}
	if count >= maxFailedAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

func (t *loginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := throttleKey(email)
	count, err := t.redisClient.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warnf("Failed to record login attempt: %+v", err)
		return err
	}
	// The window starts at the first failure
	if count == 1 {
		if err := t.redisClient.Expire(ctx, key, attemptWindow).Err(); err != nil {
			t.log.Warnf("Failed to set login attempt expiry: %+v", err)
			return err
		}
	}
	return nil
}

func (t *loginThrottle) Reset(ctx context.Context, email string) error {
	if err := t.redisClient.Del(ctx, throttleKey(email)).Err(); err != nil {
		t.log.Warnf("Failed to reset login attempts: %+v", err)
		return err
	}
	return nil
}
