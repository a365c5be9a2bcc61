//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ReservationFixture struct {
	Code   string
	Seats  int
	Total  decimal.Decimal
	Paid   decimal.Decimal
	Status string
}

func CreateTestReservation(t *testing.T, db DBLike, f ReservationFixture) uuid.UUID {
	t.Helper()

	if f.Seats == 0 {
		f.Seats = 2
	}
	if f.Status == "" {
		f.Status = "pending"
	}
	deposit := f.Total.Div(decimal.NewFromInt(2)).Round(2)

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, code, holder_name, holder_email, holder_phone, seats, total_amount, deposit_required, amount_paid, status)
		 VALUES ($1, $2, 'Ana Gómez', 'ana@example.com', '', $3, $4, $5, $6, $7)`,
		id, f.Code, f.Seats, f.Total, deposit, f.Paid, f.Status)
	require.NoError(t, err)

	return id
}

func CountPayments(t *testing.T, db DBLike, reservationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM payments WHERE reservation_id = $1", reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationState(t *testing.T, db DBLike, code string) (decimal.Decimal, string) {
	t.Helper()

	var paid decimal.Decimal
	var status string
	err := db.QueryRow(context.Background(),
		"SELECT amount_paid, status FROM reservations WHERE code = $1", code).Scan(&paid, &status)
	require.NoError(t, err)
	return paid, status
}

func CountQueuedJobs(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE status = 'queued'").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
