package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Verification tokens live in redis, keyed by their value. The key TTL is
// padded past ExpiresAt so a just-expired token still resolves and can be
// reported as expired rather than unknown; expiry itself is always checked
// against the stored ExpiresAt, never inferred from key eviction.
const tokenKeyTTLPadding = time.Hour

type verificationTokenRepository struct {
	rdb redis.UniversalClient
}

func newVerificationTokenRepository(rdb redis.UniversalClient) *verificationTokenRepository {
	return &verificationTokenRepository{
		rdb: rdb,
	}
}

func tokenKey(token string) string {
	return "verification:token:" + token
}

func (r *verificationTokenRepository) Create(ctx context.Context, token *domain.VerificationToken) error {
	const op = "repository.verificationToken.Create"

	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("%s: marshal token failed: %w", op, err)
	}

	ttl := time.Until(token.ExpiresAt) + tokenKeyTTLPadding
	if err := r.rdb.Set(ctx, tokenKey(token.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%s: set token failed: %w", op, err)
	}

	return nil
}

func (r *verificationTokenRepository) GetByToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	const op = "repository.verificationToken.GetByToken"

	payload, err := r.rdb.Get(ctx, tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: get token failed: %w", op, err)
	}

	var t domain.VerificationToken
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, fmt.Errorf("%s: unmarshal token failed: %w", op, err)
	}

	return &t, nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, token string) error {
	const op = "repository.verificationToken.Delete"

	if err := r.rdb.Del(ctx, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("%s: delete token failed: %w", op, err)
	}

	return nil
}
