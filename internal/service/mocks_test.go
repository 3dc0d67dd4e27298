package service

import (
	"context"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type equipmentRepositoryMock struct {
	mock.Mock
}

func (m *equipmentRepositoryMock) Create(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)

	return args.Error(0)
}

func (m *equipmentRepositoryMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if equipment, ok := args.Get(0).(*domain.Equipment); ok {
		return equipment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *equipmentRepositoryMock) GetAll(ctx context.Context, limit, offset int, filters *repository.EquipmentFilters) ([]*domain.Equipment, error) {
	args := m.Called(ctx, limit, offset, filters)
	if equipments, ok := args.Get(0).([]*domain.Equipment); ok {
		return equipments, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *equipmentRepositoryMock) Count(ctx context.Context, filters *repository.EquipmentFilters) (int64, error) {
	args := m.Called(ctx, filters)

	return args.Get(0).(int64), args.Error(1)
}

func (m *equipmentRepositoryMock) Update(ctx context.Context, equipment *domain.Equipment) error {
	args := m.Called(ctx, equipment)

	return args.Error(0)
}

func (m *equipmentRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *equipmentRepositoryMock) FindUnverifiedByEmail(ctx context.Context, email string) (*domain.Equipment, error) {
	args := m.Called(ctx, email)
	if equipment, ok := args.Get(0).(*domain.Equipment); ok {
		return equipment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *equipmentRepositoryMock) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *equipmentRepositoryMock) CountApproved(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *equipmentRepositoryMock) CountApprovedCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)

	return args.Get(0).(int64), args.Error(1)
}

func (m *equipmentRepositoryMock) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)

	return args.Get(0).(int64), args.Error(1)
}

func (m *equipmentRepositoryMock) CountExpiringSoon(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)

	return args.Get(0).(int64), args.Error(1)
}

func (m *equipmentRepositoryMock) CountApprovedByUseType(ctx context.Context) ([]repository.UseTypeCount, error) {
	args := m.Called(ctx)
	if counts, ok := args.Get(0).([]repository.UseTypeCount); ok {
		return counts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *equipmentRepositoryMock) CountApprovedByMonth(ctx context.Context, from time.Time) ([]repository.MonthlyCount, error) {
	args := m.Called(ctx, from)
	if counts, ok := args.Get(0).([]repository.MonthlyCount); ok {
		return counts, args.Error(1)
	}

	return nil, args.Error(1)
}

type tokenRepositoryMock struct {
	mock.Mock
}

func (m *tokenRepositoryMock) Create(ctx context.Context, token *domain.VerificationToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *tokenRepositoryMock) GetByToken(ctx context.Context, token string) (*domain.VerificationToken, error) {
	args := m.Called(ctx, token)
	if found, ok := args.Get(0).(*domain.VerificationToken); ok {
		return found, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *tokenRepositoryMock) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) EnqueueOTPEmail(ctx context.Context, email, code, link, ownerName string) error {
	args := m.Called(ctx, email, code, link, ownerName)

	return args.Error(0)
}

func (m *notifierMock) EnqueueConfirmationEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary) error {
	args := m.Called(ctx, email, ownerName, summary)

	return args.Error(0)
}

func (m *notifierMock) EnqueueAcceptedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error {
	args := m.Called(ctx, email, ownerName, summary, remarks)

	return args.Error(0)
}

func (m *notifierMock) EnqueueInspectionPassedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error {
	args := m.Called(ctx, email, ownerName, summary, remarks)

	return args.Error(0)
}

type otpGeneratorMock struct {
	mock.Mock
}

func (m *otpGeneratorMock) RandomCode(length int) string {
	args := m.Called(length)

	return args.String(0)
}

func (m *otpGeneratorMock) RandomSecret(length int) string {
	args := m.Called(length)

	return args.String(0)
}

type verificationMock struct {
	mock.Mock
}

func (m *verificationMock) IssueOTP(ctx context.Context, email, ownerName string) (*domain.VerificationToken, error) {
	args := m.Called(ctx, email, ownerName)
	if token, ok := args.Get(0).(*domain.VerificationToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *verificationMock) IssueLinkToken(ctx context.Context, email string) (*domain.VerificationToken, error) {
	args := m.Called(ctx, email)
	if token, ok := args.Get(0).(*domain.VerificationToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *verificationMock) VerifyOTP(ctx context.Context, email, code string) (*domain.Equipment, error) {
	args := m.Called(ctx, email, code)
	if equipment, ok := args.Get(0).(*domain.Equipment); ok {
		return equipment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *verificationMock) VerifyEmailToken(ctx context.Context, token string) (*domain.Equipment, error) {
	args := m.Called(ctx, token)
	if equipment, ok := args.Get(0).(*domain.Equipment); ok {
		return equipment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *verificationMock) ResendOTP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}
