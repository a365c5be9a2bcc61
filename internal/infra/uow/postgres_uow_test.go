//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-booking/internal/infra"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/shared"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrSerializationFailure}, want: true},
		{name: "deadlock detected", err: &pgconn.PgError{Code: pgErrDeadlockDetected}, want: true},
		{name: "deadlock behind repository error", err: infra.WrapRepoErr("lock", &pgconn.PgError{Code: pgErrDeadlockDetected}), want: true},
		{name: "wrapped twice", err: errs.Wrap(&pgconn.PgError{Code: pgErrSerializationFailure}, "commit"), want: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgErrLockNotAvailable}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 10 * time.Millisecond}
	for attempt := 0; attempt < 4; attempt++ {
		wait := p.backoff(attempt)
		floor := p.base << attempt
		assert.GreaterOrEqual(t, wait, floor)
		assert.LessOrEqual(t, wait, floor+floor/5)
	}
}

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakePool struct {
	sqlc.DBTX
	tx *fakeTx
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return p.tx, nil
}

func newFakeUoW(tx *fakeTx) *PostgresUoW {
	return &PostgresUoW{pool: &fakePool{tx: tx}, retry: retryPolicy{maxRetries: 0, base: time.Millisecond}}
}

func TestAttemptRollback(t *testing.T) {
	t.Run("commit skips rollback", func(t *testing.T) {
		tx := &fakeTx{}
		err := newFakeUoW(tx).Within(context.Background(), func(context.Context, shared.Tx) error { return nil })
		require.NoError(t, err)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})

	t.Run("error rolls back", func(t *testing.T) {
		tx := &fakeTx{}
		boom := errors.New("insert failed")
		err := newFakeUoW(tx).Within(context.Background(), func(context.Context, shared.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})

	t.Run("commit failure rolls back", func(t *testing.T) {
		tx := &fakeTx{commitErr: errors.New("connection reset")}
		err := newFakeUoW(tx).Within(context.Background(), func(context.Context, shared.Tx) error { return nil })
		assert.True(t, errs.Is(err, errTransactionCommit))
		assert.True(t, tx.rolledBack)
	})

	t.Run("panic rolls back and propagates", func(t *testing.T) {
		tx := &fakeTx{}
		uow := newFakeUoW(tx)
		assert.PanicsWithValue(t, "handler bug", func() {
			_ = uow.Within(context.Background(), func(context.Context, shared.Tx) error { panic("handler bug") })
		})
		assert.False(t, tx.committed)
		assert.True(t, tx.rolledBack)
	})
}
