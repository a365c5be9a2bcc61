package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/segmentio/kafka-go"

	"trip-booking/internal/infra"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/pgconv"
	"trip-booking/internal/usecase/shared"
)

//go:generate mockgen -source=relay.go -destination=../../../tests/mock/outbox/mock_relay.go -package=outboxmock

const maxRetryDelay = 5 * time.Minute

type JobQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Options struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxAttempts  int32
}

// Relay moves queued notification jobs to Kafka. Jobs are claimed with
// FOR UPDATE SKIP LOCKED, so several relays can run side by side.
type Relay struct {
	uow     shared.UnitOfWork
	queries JobQueries
	writer  MessageWriter
	clock   clock.Clock
	opts    Options

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, queries JobQueries, writer MessageWriter, clk clock.Clock, opts Options) *Relay {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 10
	}
	return &Relay{
		uow:     uow,
		queries: queries,
		writer:  writer,
		clock:   clk,
		opts:    opts,
	}
}

func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
	slog.Info("outbox relay started", "poll_interval", r.opts.PollInterval.String(), "batch_size", r.opts.BatchSize)
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info("outbox relay stopped")
}

func (r *Relay) run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("outbox relay pass failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RelayOnce claims one batch of due jobs and reports how many were delivered.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var sent int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		jobs, err := r.queries.ClaimDueNotificationJobs(ctx, tx.DB(), sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgconv.TimeToPgtype(now),
			Limit: r.opts.BatchSize,
		})
		if err != nil {
			return infra.WrapRepoErr("failed to claim notification jobs", err)
		}

		for _, job := range jobs {
			if err := r.writer.WriteMessages(ctx, toMessage(job)); err != nil {
				slog.Warn("outbox delivery failed",
					"job_id", job.ID.String(),
					"attempts", job.Attempts+1,
					"error", err.Error())
				if markErr := r.queries.MarkNotificationJobFailed(ctx, tx.DB(), sqlc.MarkNotificationJobFailedParams{
					LastError:   pgtype.Text{String: err.Error(), Valid: true},
					MaxAttempts: r.opts.MaxAttempts,
					RunAt:       pgconv.TimeToPgtype(now.Add(retryDelay(job.Attempts))),
					UpdatedAt:   pgconv.TimeToPgtype(now),
					ID:          job.ID,
				}); markErr != nil {
					return infra.WrapRepoErr("failed to mark notification job failed", markErr)
				}
				continue
			}

			if err := r.queries.MarkNotificationJobSent(ctx, tx.DB(), sqlc.MarkNotificationJobSentParams{
				ID:        job.ID,
				UpdatedAt: pgconv.TimeToPgtype(now),
			}); err != nil {
				return infra.WrapRepoErr("failed to mark notification job sent", err)
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func toMessage(job sqlc.NotificationJobs) kafka.Message {
	return kafka.Message{
		Topic: job.Topic,
		Key:   []byte(job.ID.String()),
		Value: job.Payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(job.Kind)},
		},
	}
}

// retryDelay doubles from one second per previous attempt, capped.
func retryDelay(attempts int32) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 16 {
		return maxRetryDelay
	}
	d := time.Second << attempts
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
