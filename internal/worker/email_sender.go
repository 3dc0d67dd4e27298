package worker

import (
	"context"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/domain"
	emailProvider "github.com/chainsaw-registry/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type otpEmailInput struct {
	OwnerName string
	Code      string
	Link      string
}

type equipmentEmailInput struct {
	OwnerName    string
	EquipmentID  string
	Brand        string
	Model        string
	SerialNumber string
	Remarks      string
}

func equipmentInput(ownerName string, equipment domain.EquipmentSummary, remarks string) equipmentEmailInput {
	return equipmentEmailInput{
		OwnerName:    ownerName,
		EquipmentID:  equipment.ID.String(),
		Brand:        equipment.Brand,
		Model:        equipment.Model,
		SerialNumber: equipment.SerialNumber,
		Remarks:      remarks,
	}
}

func (s *emailSender) send(to, subject, templateName string, input interface{}) error {
	if !s.config.Enabled {
		return nil
	}

	sendInput := emailProvider.SendEmailInput{Subject: subject, To: to}

	if err := sendInput.GenerateBodyFromHTML(templateName, input); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}

func (s *emailSender) SendOTPEmail(ctx context.Context, email, code, link, ownerName string) error {
	return s.send(email, "DENR - Chainsaw Registration Email Verification",
		s.config.Templates.OTP, otpEmailInput{OwnerName: ownerName, Code: code, Link: link})
}

func (s *emailSender) SendConfirmationEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary) error {
	return s.send(email, "DENR - Chainsaw Registration Confirmed",
		s.config.Templates.Confirmation, equipmentInput(ownerName, equipment, ""))
}

func (s *emailSender) SendAcceptedEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary, remarks string) error {
	return s.send(email, "DENR - Chainsaw Registration Application Accepted",
		s.config.Templates.Accepted, equipmentInput(ownerName, equipment, remarks))
}

func (s *emailSender) SendInspectionPassedEmail(ctx context.Context, email, ownerName string, equipment domain.EquipmentSummary, remarks string) error {
	return s.send(email, "DENR - Chainsaw Inspection Passed",
		s.config.Templates.InspectionPassed, equipmentInput(ownerName, equipment, remarks))
}
