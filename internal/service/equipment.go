package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/importer"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type equipmentService struct {
	equipmentRepository repository.Equipment
	verification        Verification
	notifier            Notifier
	now                 func() time.Time
}

func newEquipmentService(
	equipmentRepository repository.Equipment,
	verification Verification,
	notifier Notifier,
) *equipmentService {
	return &equipmentService{
		equipmentRepository: equipmentRepository,
		verification:        verification,
		notifier:            notifier,
		now:                 time.Now,
	}
}

// Create registers a new chainsaw. A public submission (privacy consent set)
// starts unverified and triggers the OTP flow; anything entered by staff is
// treated as verified immediately. A failed OTP send never fails the
// registration itself.
func (s *equipmentService) Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate equipment id failed: %w", err)
	}
	equipment.ID = id
	equipment.CreatedAt = s.now()
	equipment.EmailVerified = !equipment.DataPrivacyConsent

	if err := s.equipmentRepository.Create(ctx, equipment); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrDuplicateSerialNumber
		}
		return nil, fmt.Errorf("create equipment failed: %w", err)
	}

	if equipment.DataPrivacyConsent && equipment.OwnerEmail != "" {
		if _, err := s.verification.IssueOTP(ctx, equipment.OwnerEmail, equipment.OwnerName()); err != nil {
			logger.Error("issue verification otp failed",
				zap.String("equipment_id", equipment.ID.String()),
				zap.Error(err))
		}
	}

	return equipment, nil
}

func (s *equipmentService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	equipment, err := s.equipmentRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("get equipment failed: %w", err)
	}

	return equipment, nil
}

func (s *equipmentService) GetAll(ctx context.Context, page, limit int, filters *repository.EquipmentFilters) ([]*domain.Equipment, int64, error) {
	total, err := s.equipmentRepository.Count(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("count equipments failed: %w", err)
	}

	equipments, err := s.equipmentRepository.GetAll(ctx, limit, (page-1)*limit, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("get equipments failed: %w", err)
	}

	return equipments, total, nil
}

func processCheckFor(equipment *domain.Equipment) *ProcessCheck {
	if equipment.PublicSubmission() && !equipment.EmailVerified {
		return &ProcessCheck{CanProcess: false, RequiresEmailVerification: true}
	}
	return &ProcessCheck{CanProcess: true}
}

// CanProcess decides whether staff may mutate review fields on the record.
// Staff-entered records are always processable; public submissions only
// after their email is verified.
func (s *equipmentService) CanProcess(ctx context.Context, id uuid.UUID) (*ProcessCheck, error) {
	equipment, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return processCheckFor(equipment), nil
}

// transitionedInto reports whether a nullable review field changed into the
// target value. Re-submitting the same value is not a transition.
func transitionedInto[T comparable](prev, next *T, target T) bool {
	if next == nil || *next != target {
		return false
	}
	return prev == nil || *prev != target
}

// Update persists a staff edit. The processing gate runs before anything is
// written. Transitions into ACCEPTED application status or PASSED inspection
// result enqueue the corresponding notice exactly once.
func (s *equipmentService) Update(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	prev, err := s.GetOneByID(ctx, equipment.ID)
	if err != nil {
		return nil, err
	}

	if check := processCheckFor(prev); !check.CanProcess {
		return nil, ErrEmailVerificationRequired
	}

	if err := s.equipmentRepository.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("update equipment failed: %w", err)
	}

	if equipment.OwnerEmail != "" {
		if transitionedInto(prev.ApplicationStatus, equipment.ApplicationStatus, domain.ApplicationStatusAccepted) {
			if err := s.notifier.EnqueueAcceptedEmail(ctx, equipment.OwnerEmail, equipment.OwnerName(), equipment.Summary(), equipment.ApplicationRemarks); err != nil {
				logger.Error("enqueue accepted email failed", zap.Error(err))
			}
		}

		if transitionedInto(prev.InspectionResult, equipment.InspectionResult, domain.InspectionResultPassed) {
			if err := s.notifier.EnqueueInspectionPassedEmail(ctx, equipment.OwnerEmail, equipment.OwnerName(), equipment.Summary(), equipment.InspectionRemarks); err != nil {
				logger.Error("enqueue inspection passed email failed", zap.Error(err))
			}
		}
	}

	return equipment, nil
}

func (s *equipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.equipmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return fmt.Errorf("delete equipment failed: %w", err)
	}

	return nil
}

// BulkImport creates one record per spreadsheet row. Rows are independent:
// schema validation runs first and a row that fails it never reaches the
// store, but either way the batch keeps going and the outcome references the
// row's 1-based position.
func (s *equipmentService) BulkImport(ctx context.Context, rows []importer.Row) BatchOutcome {
	return runBatch(rows,
		func(i int, _ importer.Row) string {
			return fmt.Sprintf("Row %d", i+1)
		},
		func(row importer.Row) error {
			parsed, err := importer.Parse(row)
			if err != nil {
				return err
			}

			if _, err := s.Create(ctx, parsed.Equipment()); err != nil {
				return err
			}

			return nil
		})
}

// BulkDelete removes records by id, one unit at a time, never letting a
// missing id abort the rest.
func (s *equipmentService) BulkDelete(ctx context.Context, ids []uuid.UUID) BatchOutcome {
	return runBatch(ids,
		func(_ int, id uuid.UUID) string {
			return fmt.Sprintf("Equipment ID %s", id)
		},
		func(id uuid.UUID) error {
			return s.Delete(ctx, id)
		})
}
