package client

import (
	"context"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/domain"
	"github.com/chainsaw-registry/backend/internal/queue/task"

	"github.com/hibiken/asynq"
)

// Client enqueues notification tasks. It implements service.Notifier; the
// request path never waits for delivery.
type Client struct {
	client *asynq.Client
}

func New(redisOpt asynq.RedisConnOpt) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) enqueue(ctx context.Context, t *asynq.Task, err error) error {
	if err != nil {
		return fmt.Errorf("build task failed: %w", err)
	}

	if _, err := c.client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue task %s failed: %w", t.Type(), err)
	}

	return nil
}

func (c *Client) EnqueueOTPEmail(ctx context.Context, email, code, link, ownerName string) error {
	t, err := task.NewSendOTPEmailTask(email, code, link, ownerName)
	return c.enqueue(ctx, t, err)
}

func (c *Client) EnqueueConfirmationEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary) error {
	t, err := task.NewSendConfirmationEmailTask(email, ownerName, summary)
	return c.enqueue(ctx, t, err)
}

func (c *Client) EnqueueAcceptedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error {
	t, err := task.NewSendAcceptedEmailTask(email, ownerName, summary, remarks)
	return c.enqueue(ctx, t, err)
}

func (c *Client) EnqueueInspectionPassedEmail(ctx context.Context, email, ownerName string, summary domain.EquipmentSummary, remarks string) error {
	t, err := task.NewSendInspectionPassedEmailTask(email, ownerName, summary, remarks)
	return c.enqueue(ctx, t, err)
}
