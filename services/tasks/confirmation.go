package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

func NewBookingConfirmationTask(payload models.BookingConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ParseBookingConfirmation decodes a confirmation task body.
func ParseBookingConfirmation(task *asynq.Task) (models.BookingConfirmationPayload, error) {
	var p models.BookingConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingConfirmation, err)
	}
	return p, nil
}

// Queue enqueues booking confirmations on the asynq broker.
type Queue struct {
	client *asynq.Client
}

func NewQueue(opt asynq.RedisClientOpt) *Queue {
	return &Queue{client: asynq.NewClient(opt)}
}

func (q *Queue) EnqueueBookingConfirmation(ctx context.Context, payload models.BookingConfirmationPayload) error {
	task, opts, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking confirmation: %w", err)
	}
	return nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
