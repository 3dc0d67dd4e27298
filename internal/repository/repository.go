package repository

import (
	"context"
	"time"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Equipment          Equipment
	VerificationTokens VerificationTokens
	Staff              Staff
}

func NewRepositories(db *sqlx.DB, rdb redis.UniversalClient) *Repositories {
	return &Repositories{
		Equipment:          newEquipmentRepository(db),
		VerificationTokens: newVerificationTokenRepository(rdb),
		Staff:              newStaffRepository(db),
	}
}

// EquipmentFilters narrows list queries. Column filters take precedence over
// the free-text search, matching the dashboard table behaviour.
type EquipmentFilters struct {
	Brand        string
	Model        string
	SerialNumber string
	Search       string
	FuelTypes    []domain.FuelType
	UseTypes     []domain.UseType
}

type UseTypeCount struct {
	UseType domain.UseType `db:"intended_use"`
	Count   int64          `db:"cnt"`
}

type MonthlyCount struct {
	Month string `db:"month"`
	Count int64  `db:"cnt"`
}

type Equipment interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	GetAll(ctx context.Context, limit, offset int, filters *EquipmentFilters) ([]*domain.Equipment, error)
	Count(ctx context.Context, filters *EquipmentFilters) (int64, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindUnverifiedByEmail(ctx context.Context, email string) (*domain.Equipment, error)
	// MarkEmailVerified flips email_verified false -> true in a single
	// conditional update. Returns domain.ErrNoRowsAffected when the record
	// was already verified, so concurrent verifications cannot both win.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error

	CountApproved(ctx context.Context) (int64, error)
	CountApprovedCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountExpired(ctx context.Context, now time.Time) (int64, error)
	CountExpiringSoon(ctx context.Context, now time.Time) (int64, error)
	CountApprovedByUseType(ctx context.Context) ([]UseTypeCount, error)
	CountApprovedByMonth(ctx context.Context, from time.Time) ([]MonthlyCount, error)
}

type VerificationTokens interface {
	Create(ctx context.Context, token *domain.VerificationToken) error
	GetByToken(ctx context.Context, token string) (*domain.VerificationToken, error)
	Delete(ctx context.Context, token string) error
}

type Staff interface {
	GetByCredentials(ctx context.Context, email, passwordHash string) (*domain.Staff, error)
}
