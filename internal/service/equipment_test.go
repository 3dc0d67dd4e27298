package service

import (
	"context"
	"testing"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type equipmentFixture struct {
	equipments   *equipmentRepositoryMock
	verification *verificationMock
	notifier     *notifierMock
	service      *equipmentService
}

func newEquipmentFixture() *equipmentFixture {
	f := &equipmentFixture{
		equipments:   new(equipmentRepositoryMock),
		verification: new(verificationMock),
		notifier:     new(notifierMock),
	}

	f.service = &equipmentService{
		equipmentRepository: f.equipments,
		verification:        f.verification,
		notifier:            f.notifier,
		now:                 func() time.Time { return testTime },
	}

	return f
}

func statusPtr(s domain.ApplicationStatus) *domain.ApplicationStatus {
	return &s
}

func resultPtr(r domain.InspectionResult) *domain.InspectionResult {
	return &r
}

func TestCreate_PublicSubmission(t *testing.T) {
	f := newEquipmentFixture()

	f.equipments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.verification.On("IssueOTP", mock.Anything, "juan@example.com", "Juan Dela Cruz").
		Return(&domain.VerificationToken{Token: "123456"}, nil)

	created, err := f.service.Create(context.Background(), &domain.Equipment{
		OwnerFirstName:     "Juan",
		OwnerLastName:      "Dela Cruz",
		OwnerEmail:         "juan@example.com",
		DataPrivacyConsent: true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.EmailVerified)
	assert.Equal(t, testTime, created.CreatedAt)
	f.verification.AssertExpectations(t)
}

func TestCreate_StaffEntered(t *testing.T) {
	f := newEquipmentFixture()

	f.equipments.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := f.service.Create(context.Background(), &domain.Equipment{
		OwnerFirstName: "Juan",
		OwnerLastName:  "Dela Cruz",
		OwnerEmail:     "juan@example.com",
	})

	require.NoError(t, err)
	assert.True(t, created.EmailVerified)
	f.verification.AssertNotCalled(t, "IssueOTP", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_OTPFailureDoesNotFailRegistration(t *testing.T) {
	f := newEquipmentFixture()

	f.equipments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.verification.On("IssueOTP", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := f.service.Create(context.Background(), &domain.Equipment{
		OwnerEmail:         "juan@example.com",
		DataPrivacyConsent: true,
	})

	assert.NoError(t, err)
}

func TestCreate_DuplicateSerialNumber(t *testing.T) {
	f := newEquipmentFixture()

	f.equipments.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry)

	_, err := f.service.Create(context.Background(), &domain.Equipment{
		OwnerEmail:   "juan@example.com",
		SerialNumber: "SN-0001",
	})

	assert.ErrorIs(t, err, ErrDuplicateSerialNumber)
	f.verification.AssertNotCalled(t, "IssueOTP", mock.Anything, mock.Anything, mock.Anything)
}

func TestCanProcess(t *testing.T) {
	tests := []struct {
		name          string
		equipment     *domain.Equipment
		canProcess    bool
		requiresEmail bool
	}{
		{
			name: "unverified public submission is gated",
			equipment: &domain.Equipment{
				DataPrivacyConsent: true,
				EmailVerified:      false,
			},
			canProcess:    false,
			requiresEmail: true,
		},
		{
			name: "verified public submission is processable",
			equipment: &domain.Equipment{
				DataPrivacyConsent: true,
				EmailVerified:      true,
			},
			canProcess: true,
		},
		{
			name:       "staff entered record is always processable",
			equipment:  &domain.Equipment{},
			canProcess: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEquipmentFixture()
			tt.equipment.ID = uuid.New()
			f.equipments.On("GetOneByID", mock.Anything, tt.equipment.ID).Return(tt.equipment, nil)

			check, err := f.service.CanProcess(context.Background(), tt.equipment.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.canProcess, check.CanProcess)
			assert.Equal(t, tt.requiresEmail, check.RequiresEmailVerification)
		})
	}
}

func TestCanProcess_NotFound(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := f.service.CanProcess(context.Background(), id)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestUpdate_GateRefusesUnverified(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(&domain.Equipment{
		ID:                 id,
		DataPrivacyConsent: true,
		EmailVerified:      false,
	}, nil)

	_, err := f.service.Update(context.Background(), &domain.Equipment{
		ID:                id,
		ApplicationStatus: statusPtr(domain.ApplicationStatusAccepted),
	})

	assert.ErrorIs(t, err, ErrEmailVerificationRequired)
	f.equipments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_AcceptedTransitionNotifies(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(&domain.Equipment{
		ID:                id,
		OwnerEmail:        "juan@example.com",
		EmailVerified:     true,
		ApplicationStatus: statusPtr(domain.ApplicationStatusPending),
	}, nil)
	f.equipments.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EnqueueAcceptedEmail", mock.Anything, "juan@example.com", mock.Anything, mock.Anything, "looks good").Return(nil)

	_, err := f.service.Update(context.Background(), &domain.Equipment{
		ID:                 id,
		OwnerEmail:         "juan@example.com",
		ApplicationStatus:  statusPtr(domain.ApplicationStatusAccepted),
		ApplicationRemarks: "looks good",
	})

	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}

func TestUpdate_SameStatusDoesNotNotifyAgain(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(&domain.Equipment{
		ID:                id,
		OwnerEmail:        "juan@example.com",
		EmailVerified:     true,
		ApplicationStatus: statusPtr(domain.ApplicationStatusAccepted),
	}, nil)
	f.equipments.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Update(context.Background(), &domain.Equipment{
		ID:                id,
		OwnerEmail:        "juan@example.com",
		ApplicationStatus: statusPtr(domain.ApplicationStatusAccepted),
	})

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "EnqueueAcceptedEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_InspectionPassedTransitionNotifies(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(&domain.Equipment{
		ID:               id,
		OwnerEmail:       "juan@example.com",
		EmailVerified:    true,
		InspectionResult: resultPtr(domain.InspectionResultPending),
	}, nil)
	f.equipments.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("EnqueueInspectionPassedEmail", mock.Anything, "juan@example.com", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Update(context.Background(), &domain.Equipment{
		ID:               id,
		OwnerEmail:       "juan@example.com",
		InspectionResult: resultPtr(domain.InspectionResultPassed),
	})

	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
}

func TestUpdate_ClearingStatusDoesNotNotify(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("GetOneByID", mock.Anything, id).Return(&domain.Equipment{
		ID:                id,
		OwnerEmail:        "juan@example.com",
		EmailVerified:     true,
		ApplicationStatus: statusPtr(domain.ApplicationStatusAccepted),
	}, nil)
	f.equipments.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.Update(context.Background(), &domain.Equipment{
		ID:         id,
		OwnerEmail: "juan@example.com",
	})

	require.NoError(t, err)
	f.notifier.AssertNotCalled(t, "EnqueueAcceptedEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_NotFound(t *testing.T) {
	f := newEquipmentFixture()
	id := uuid.New()

	f.equipments.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

	err := f.service.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
