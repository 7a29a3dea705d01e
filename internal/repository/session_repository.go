package repository

import (
	"BalaghAPI/internal/adapter"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type SessionRepository struct {
	redisAdapter *adapter.RedisAdapter
}

func NewSessionRepository(redisAdapter *adapter.RedisAdapter) *SessionRepository {
	return &SessionRepository{
		redisAdapter: redisAdapter,
	}
}

func (r *SessionRepository) BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf("blacklist:%s", tokenID)
	return r.redisAdapter.Set(ctx, key, "revoked", ttl)
}

func (r *SessionRepository) IsTokenBlacklisted(ctx context.Context, tokenID string) bool {
	key := fmt.Sprintf("blacklist:%s", tokenID)
	val, err := r.redisAdapter.Get(ctx, key)
	if err != nil && !adapter.IsNil(err) {
		slog.Error("Failed to check token blacklist", "error", err)
	}
	return err == nil && val != ""
}

func (r *SessionRepository) SaveConfirmation(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	key := fmt.Sprintf("confirm:%s", tokenHash)
	return r.redisAdapter.Set(ctx, key, userID, ttl)
}

// ConsumeConfirmation returns the owning user id and deletes the token, or "" when unknown.
func (r *SessionRepository) ConsumeConfirmation(ctx context.Context, tokenHash string) (string, error) {
	key := fmt.Sprintf("confirm:%s", tokenHash)
	userID, err := r.redisAdapter.GetDel(ctx, key)
	if adapter.IsNil(err) {
		return "", nil
	}
	return userID, err
}
