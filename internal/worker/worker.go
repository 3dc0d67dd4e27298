package worker

import (
	"context"

	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/domain"
	emailProvider "github.com/chainsaw-registry/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

// EmailSender renders and delivers the portal's outbound mail. Everything
// here runs on the queue side; the request path only enqueues.
type EmailSender interface {
	SendOTPEmail(ctx context.Context, email, code, link, ownerName string) error
	SendConfirmationEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary) error
	SendAcceptedEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary, remarks string) error
	SendInspectionPassedEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary, remarks string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
