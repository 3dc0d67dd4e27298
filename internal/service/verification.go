package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/pkg/logger"
	"github.com/chainsaw-registry/backend/pkg/otp"

	"go.uber.org/zap"
)

// verificationService gates public registrations behind proof of email
// ownership. Two flows share the token store: a short-lived numeric OTP the
// citizen types back in, and a long-lived opaque link token.
type verificationService struct {
	tokenRepository     repository.VerificationTokens
	equipmentRepository repository.Equipment
	otpGenerator        otp.Generator
	notifier            Notifier
	config              config.VerificationConfig
	appURL              string
	now                 func() time.Time
}

const linkTokenLength = 32

func newVerificationService(
	tokenRepository repository.VerificationTokens,
	equipmentRepository repository.Equipment,
	otpGenerator otp.Generator,
	notifier Notifier,
	cfg config.VerificationConfig,
	appURL string,
) *verificationService {
	return &verificationService{
		tokenRepository:     tokenRepository,
		equipmentRepository: equipmentRepository,
		otpGenerator:        otpGenerator,
		notifier:            notifier,
		config:              cfg,
		appURL:              appURL,
		now:                 time.Now,
	}
}

// IssueOTP generates and stores a fresh numeric code for the email and
// enqueues its delivery. The email also carries a link-token fallback so the
// owner can confirm by clicking instead of typing the code. A previously
// issued code is not invalidated; the newest one simply supersedes it and
// older codes die by TTL.
func (s *verificationService) IssueOTP(ctx context.Context, email, ownerName string) (*domain.VerificationToken, error) {
	token := &domain.VerificationToken{
		Token:     s.otpGenerator.RandomCode(s.config.OTPLength),
		Email:     email,
		ExpiresAt: s.now().Add(s.config.OTPTTL),
		CreatedAt: s.now(),
	}

	if err := s.tokenRepository.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create verification token failed: %w", err)
	}

	link := ""
	if linkToken, err := s.IssueLinkToken(ctx, email); err != nil {
		// The code alone still verifies; the email just loses its link.
		logger.Error("issue link token failed", zap.String("email", email), zap.Error(err))
	} else {
		link = s.appURL + "/equipments/verify-email?token=" + linkToken.Token
	}

	if err := s.notifier.EnqueueOTPEmail(ctx, email, token.Token, link, ownerName); err != nil {
		logger.Error("enqueue otp email failed", zap.String("email", email), zap.Error(err))
	}

	return token, nil
}

// IssueLinkToken generates a high-entropy token for the link-based
// confirmation flow, valid for a day.
func (s *verificationService) IssueLinkToken(ctx context.Context, email string) (*domain.VerificationToken, error) {
	token := &domain.VerificationToken{
		Token:     s.otpGenerator.RandomSecret(linkTokenLength),
		Email:     email,
		ExpiresAt: s.now().Add(s.config.LinkTTL),
		CreatedAt: s.now(),
	}

	if err := s.tokenRepository.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create verification link token failed: %w", err)
	}

	return token, nil
}

// VerifyOTP validates a submitted code against the caller-supplied email and
// marks the matching unverified registration as verified. The mark is a
// conditional update, so two concurrent attempts for the same email cannot
// both succeed.
func (s *verificationService) VerifyOTP(ctx context.Context, email, code string) (*domain.Equipment, error) {
	token, err := s.tokenRepository.GetByToken(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get verification token failed: %w", err)
	}

	if token.Email != email {
		return nil, ErrEmailMismatch
	}

	if token.IsExpired(s.now()) {
		return nil, ErrTokenExpired
	}

	return s.completeVerification(ctx, token)
}

// VerifyEmailToken is the link flow: the token is looked up by value alone
// and carries its own email, so no match check applies.
func (s *verificationService) VerifyEmailToken(ctx context.Context, tokenValue string) (*domain.Equipment, error) {
	token, err := s.tokenRepository.GetByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get verification token failed: %w", err)
	}

	if token.IsExpired(s.now()) {
		return nil, ErrTokenExpired
	}

	return s.completeVerification(ctx, token)
}

func (s *verificationService) completeVerification(ctx context.Context, token *domain.VerificationToken) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepository.FindUnverifiedByEmail(ctx, token.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoPendingRecord
		}
		return nil, fmt.Errorf("find unverified equipment failed: %w", err)
	}

	if err := s.equipmentRepository.MarkEmailVerified(ctx, equipment.ID); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			// Lost the race to a concurrent verification attempt.
			return nil, ErrNoPendingRecord
		}
		return nil, fmt.Errorf("mark email verified failed: %w", err)
	}
	equipment.EmailVerified = true

	if err := s.tokenRepository.Delete(ctx, token.Token); err != nil {
		// The record is verified; a stale token cannot verify anything
		// else and will expire on its own.
		logger.Error("delete consumed verification token failed", zap.Error(err))
	}

	if err := s.notifier.EnqueueConfirmationEmail(ctx, equipment.OwnerEmail, equipment.OwnerName(), equipment.Summary()); err != nil {
		logger.Error("enqueue confirmation email failed", zap.String("email", equipment.OwnerEmail), zap.Error(err))
	}

	return equipment, nil
}

// ResendOTP issues a fresh code for an email that still has an unverified
// registration. Knowledge of the previous code is not required.
func (s *verificationService) ResendOTP(ctx context.Context, email string) error {
	equipment, err := s.equipmentRepository.FindUnverifiedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrNoPendingRegistration
		}
		return fmt.Errorf("find unverified equipment failed: %w", err)
	}

	if _, err := s.IssueOTP(ctx, email, equipment.OwnerName()); err != nil {
		return fmt.Errorf("issue otp failed: %w", err)
	}

	return nil
}
