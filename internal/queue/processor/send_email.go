package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/queue/task"
	"github.com/chainsaw-registry/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendEmailProcessor struct {
	workers *worker.Workers
}

func NewSendEmailProcessor(workers *worker.Workers) *sendEmailProcessor {
	return &sendEmailProcessor{
		workers: workers,
	}
}

func (p *sendEmailProcessor) ProcessOTPEmail(ctx context.Context, t *asynq.Task) error {
	var data task.SendOTPEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process otp email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendOTPEmail(ctx, data.Email, data.Code, data.Link, data.OwnerName); err != nil {
		return fmt.Errorf("send otp email failed: %w", err)
	}

	return nil
}

func (p *sendEmailProcessor) ProcessConfirmationEmail(ctx context.Context, t *asynq.Task) error {
	var data task.SendEquipmentEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process confirmation email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendConfirmationEmail(ctx, data.Email, data.OwnerName, data.Equipment); err != nil {
		return fmt.Errorf("send confirmation email failed: %w", err)
	}

	return nil
}

func (p *sendEmailProcessor) ProcessAcceptedEmail(ctx context.Context, t *asynq.Task) error {
	var data task.SendEquipmentEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process accepted email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendAcceptedEmail(ctx, data.Email, data.OwnerName, data.Equipment, data.Remarks); err != nil {
		return fmt.Errorf("send accepted email failed: %w", err)
	}

	return nil
}

func (p *sendEmailProcessor) ProcessInspectionPassedEmail(ctx context.Context, t *asynq.Task) error {
	var data task.SendEquipmentEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process inspection passed email task json unmarshal failed: %w", err)
	}

	if err := p.workers.EmailSender.SendInspectionPassedEmail(ctx, data.Email, data.OwnerName, data.Equipment, data.Remarks); err != nil {
		return fmt.Errorf("send inspection passed email failed: %w", err)
	}

	return nil
}
