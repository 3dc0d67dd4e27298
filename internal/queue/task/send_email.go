package task

import (
	"encoding/json"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/hibiken/asynq"
)

const (
	SendOTPEmailTaskName              = "sendOTPEmailTask"
	SendConfirmationEmailTaskName     = "sendConfirmationEmailTask"
	SendAcceptedEmailTaskName         = "sendAcceptedEmailTask"
	SendInspectionPassedEmailTaskName = "sendInspectionPassedEmailTask"

	SendEmailQueueName = "sendEmailQueue"
)

type SendOTPEmail struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	Link      string `json:"link,omitempty"`
	OwnerName string `json:"owner_name"`
}

type SendEquipmentEmail struct {
	Email     string                  `json:"email"`
	OwnerName string                  `json:"owner_name"`
	Equipment domain.EquipmentSummary `json:"equipment"`
	Remarks   string                  `json:"remarks,omitempty"`
}

func newTask(name string, payload interface{}) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		name,
		data,
		asynq.MaxRetry(5),
		asynq.Queue(SendEmailQueueName),
	), nil
}

func NewSendOTPEmailTask(email, code, link, ownerName string) (*asynq.Task, error) {
	return newTask(SendOTPEmailTaskName, SendOTPEmail{
		Email:     email,
		Code:      code,
		Link:      link,
		OwnerName: ownerName,
	})
}

func NewSendConfirmationEmailTask(email, ownerName string, equipment domain.EquipmentSummary) (*asynq.Task, error) {
	return newTask(SendConfirmationEmailTaskName, SendEquipmentEmail{
		Email:     email,
		OwnerName: ownerName,
		Equipment: equipment,
	})
}

func NewSendAcceptedEmailTask(email, ownerName string, equipment domain.EquipmentSummary, remarks string) (*asynq.Task, error) {
	return newTask(SendAcceptedEmailTaskName, SendEquipmentEmail{
		Email:     email,
		OwnerName: ownerName,
		Equipment: equipment,
		Remarks:   remarks,
	})
}

func NewSendInspectionPassedEmailTask(email, ownerName string, equipment domain.EquipmentSummary, remarks string) (*asynq.Task, error) {
	return newTask(SendInspectionPassedEmailTaskName, SendEquipmentEmail{
		Email:     email,
		OwnerName: ownerName,
		Equipment: equipment,
		Remarks:   remarks,
	})
}
