package repository

import (
	"context"
	"encoding/json"
	"time"

	"trip-booking/internal/infra"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/mock_notification.go -package=repositorymock

const JobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

var errMalformedJob = errs.New("notification job needs a topic and a JSON payload")

// CreateJob queues a job in the caller's transaction, so it is published only
// if the ledger write that produced it commits.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if topic == "" || !json.Valid(payload) {
		return infra.WrapRepoErr("refusing notification job", errMalformedJob, infra.KindDBFailure)
	}

	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  JobStatusQueued,
	}
	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
