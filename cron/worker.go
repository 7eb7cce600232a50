package cron

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const maxStartAttempts = 5

// startBackoff is multiplied by the attempt number between start attempts.
var startBackoff = 2 * time.Second

// ConfirmationWorker drains booking confirmations in the background.
type ConfirmationWorker struct {
	srv  *asynq.Server
	done chan struct{}
}

// StartConfirmationWorker returns immediately; the asynq server is started,
// with retries, on its own goroutine and shut down when ctx is done.
func StartConfirmationWorker(ctx context.Context, redisOpts asynq.RedisClientOpt, logger *zap.Logger) *ConfirmationWorker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(logger))

	w := &ConfirmationWorker{srv: srv, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		start := func() error { return srv.Start(mux) }
		if err := retryStart(ctx, start, maxStartAttempts, startBackoff, logger); err != nil {
			logger.Error("Confirmation worker not running", zap.Error(err))
			return
		}
		logger.Info("Confirmation worker started")
		<-ctx.Done()
		srv.Shutdown()
	}()
	return w
}

// Wait blocks until the worker has stopped or given up starting.
func (w *ConfirmationWorker) Wait() {
	<-w.done
}

// retryStart calls start until it succeeds, attempts run out or ctx is done.
func retryStart(ctx context.Context, start func() error, attempts int, backoff time.Duration, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err = start(); err == nil {
			return nil
		}
		logger.Warn("Failed to start confirmation worker",
			zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * backoff):
		}
	}
	return fmt.Errorf("confirmation worker did not start after %d attempts: %w", attempts, err)
}

func handleConfirmationTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingConfirmation(task)
		if err != nil {
			logger.Error("Dropping confirmation task", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		logger.Info("Booking confirmed",
			zap.String("bookingId", p.BookingID),
			zap.String("email", p.Email),
			zap.String("treatment", p.Treatment),
			zap.String("appointmentDate", p.AppointmentDate),
			zap.String("slot", p.Slot))
		return nil
	}
}
