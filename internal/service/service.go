package service

import (
	"context"
	"time"

	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/importer"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/pkg/auth"
	"github.com/chainsaw-registry/backend/pkg/hash"
	"github.com/chainsaw-registry/backend/pkg/otp"

	"github.com/google/uuid"
)

type Services struct {
	Equipment    Equipment
	Verification Verification
	Stats        Stats
	Staff        StaffAuth
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Notifier     Notifier
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	verification := newVerificationService(
		deps.Repos.VerificationTokens,
		deps.Repos.Equipment,
		deps.OtpGenerator,
		deps.Notifier,
		deps.Config.Verification,
		deps.Config.AppURL,
	)

	return &Services{
		Equipment: newEquipmentService(
			deps.Repos.Equipment,
			verification,
			deps.Notifier,
		),
		Verification: verification,
		Stats:        newStatsService(deps.Repos.Equipment),
		Staff: newStaffService(
			deps.Repos.Staff,
			deps.Hasher,
			deps.TokenManager,
		),
	}
}

// Notifier is the fire-and-forget mail boundary. Implementations enqueue
// delivery and return quickly; callers log enqueue errors and move on.
// No primary operation ever depends on a notification outcome.
type Notifier interface {
	EnqueueOTPEmail(ctx context.Context, email, code, link, ownerName string) error
	EnqueueConfirmationEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary) error
	EnqueueAcceptedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error
	EnqueueInspectionPassedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error
}

type Verification interface {
	IssueOTP(ctx context.Context, email, ownerName string) (*domain.VerificationToken, error)
	IssueLinkToken(ctx context.Context, email string) (*domain.VerificationToken, error)
	VerifyOTP(ctx context.Context, email, code string) (*domain.Equipment, error)
	VerifyEmailToken(ctx context.Context, token string) (*domain.Equipment, error)
	ResendOTP(ctx context.Context, email string) error
}

// ProcessCheck is the gate decision for staff mutation of review fields.
// RequiresEmailVerification distinguishes the soft refusal from an error.
type ProcessCheck struct {
	CanProcess                bool
	RequiresEmailVerification bool
}

type Equipment interface {
	Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	GetAll(ctx context.Context, page, limit int, filters *repository.EquipmentFilters) ([]*domain.Equipment, int64, error)
	Update(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CanProcess(ctx context.Context, id uuid.UUID) (*ProcessCheck, error)
	BulkImport(ctx context.Context, rows []importer.Row) BatchOutcome
	BulkDelete(ctx context.Context, ids []uuid.UUID) BatchOutcome
}

type StatsOverview struct {
	TotalEquipments      int64                     `json:"total_equipments"`
	EquipmentsThisMonth  int64                     `json:"equipments_this_month"`
	EquipmentsLastMonth  int64                     `json:"equipments_last_month"`
	MonthlyGrowthRate    float64                   `json:"monthly_growth_rate"`
	ExpiredEquipments    int64                     `json:"expired_equipments"`
	ExpiringInNext30Days int64                     `json:"expiring_in_next_30_days"`
	ByUseType            []repository.UseTypeCount `json:"by_use_type"`
	Monthly              []repository.MonthlyCount `json:"monthly"`
}

type Stats interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}

type Tokens struct {
	AccessToken string
	AccessTTL   time.Duration
}

type StaffAuth interface {
	SignIn(ctx context.Context, email, password string) (*Tokens, error)
}
