package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/pkg/auth"
	"github.com/chainsaw-registry/backend/pkg/hash"
)

type staffService struct {
	staffRepository repository.Staff
	hasher          hash.PasswordHasher
	tokenManager    auth.TokenManager
}

func newStaffService(
	staffRepository repository.Staff,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
) *staffService {
	return &staffService{
		staffRepository: staffRepository,
		hasher:          hasher,
		tokenManager:    tokenManager,
	}
}

func (s *staffService) SignIn(ctx context.Context, email, password string) (*Tokens, error) {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	staff, err := s.staffRepository.GetByCredentials(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("get staff by credentials failed: %w", err)
	}

	accessToken, ttl, err := s.tokenManager.NewJWT(&staff.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &Tokens{AccessToken: accessToken, AccessTTL: ttl}, nil
}
