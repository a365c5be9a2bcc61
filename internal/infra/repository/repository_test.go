//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trip-booking/internal/domain/payment"
	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/infra/repository"
	sqlc "trip-booking/internal/infra/sqlc/generated"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/pgconv"
	repositorymock "trip-booking/tests/mock/repository"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fixedCodes struct{}

func (fixedCodes) Generate() (reservation.Code, error) { return reservation.NewCode("TRIP-ABC234") }

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	holder, err := reservation.NewHolder("Ana Perez", "ana@example.com", "1155550000")
	require.NoError(t, err)
	price, err := reservation.NewMoneyFromString("500")
	require.NoError(t, err)
	res, err := reservation.NewReservation(&reservation.Services{Clock: clock.NewMockClock(fixedNow), Codes: fixedCodes{}}, holder, 2, price)
	require.NoError(t, err)
	return res
}

func newPayment(t *testing.T, reservationID uuid.UUID) *payment.Payment {
	t.Helper()
	amount, err := reservation.NewMoneyFromString("600")
	require.NoError(t, err)
	ref, err := payment.NewExternalReference("1234567")
	require.NoError(t, err)
	p, err := payment.NewPayment(reservationID, amount, payment.MethodMercadoPago, ref, "", fixedNow)
	require.NoError(t, err)
	return p
}

// =============================================================================
// Reservation Repository Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: code already taken",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			err := repo.Create(ctx, mockDB, newReservation(t))

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_LockByCode(t *testing.T) {
	ctx := context.Background()
	res := newReservation(t)
	row := sqlc.Reservations{
		ID:              res.ID(),
		Code:            res.Code().String(),
		HolderName:      "Ana Perez",
		HolderEmail:     "ana@example.com",
		HolderPhone:     "1155550000",
		Seats:           2,
		TotalAmount:     pgconv.DecimalToNumeric(res.TotalAmount().Decimal()),
		DepositRequired: pgconv.DecimalToNumeric(res.DepositRequired().Decimal()),
		AmountPaid:      pgconv.DecimalToNumeric(res.AmountPaid().Decimal()),
		Status:          "pending",
		CreatedAt:       pgconv.TimeToPgtype(fixedNow),
		UpdatedAt:       pgconv.TimeToPgtype(fixedNow),
	}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row locked and mapped",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetReservationByCodeForUpdate(ctx, tx, "TRIP-ABC234").Return(row, nil)
			},
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetReservationByCodeForUpdate(ctx, tx, "TRIP-ABC234").Return(sqlc.Reservations{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: stored status is unknown",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				bad := row
				bad.Status = "confirmed"
				mock.EXPECT().GetReservationByCodeForUpdate(ctx, tx, "TRIP-ABC234").Return(bad, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			got, err := repo.LockByCode(ctx, mockDB, res.Code())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, res.ID(), got.ID())
			assert.Equal(t, "1000.00", got.TotalAmount().String())
			assert.Equal(t, reservation.StatusPending, got.Status())
		})
	}
}

func TestReservationRepository_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	res := newReservation(t)
	paid, _ := reservation.NewMoneyFromString("600")
	_, err := res.ApplyLedgerTotal(paid, fixedNow.Add(time.Minute))
	require.NoError(t, err)

	mockQueries.EXPECT().
		UpdateReservationBalance(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationBalanceParams) error {
			assert.Equal(t, res.ID(), arg.ID)
			assert.Equal(t, "deposit_paid", arg.Status)
			amount, err := pgconv.DecimalFromNumeric(arg.AmountPaid)
			require.NoError(t, err)
			assert.Equal(t, "600.00", amount.StringFixed(2))
			return nil
		})

	assert.NoError(t, repo.UpdateBalance(ctx, mockDB, res))
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	res := newReservation(t)
	require.NoError(t, res.Cancel(fixedNow))

	mockQueries.EXPECT().
		UpdateReservationStatus(ctx, mockDB, sqlc.UpdateReservationStatusParams{
			ID:        res.ID(),
			Status:    "cancelled",
			UpdatedAt: pgconv.TimeToPgtype(fixedNow),
		}).
		Return(errors.New("deadlock"))

	err := repo.UpdateStatus(ctx, mockDB, res)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Payment Repository Tests
// =============================================================================

func TestPaymentRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		rows         int64
		queryErr     error
		wantInserted bool
		expectKind   infra.RepositoryErrorKind
	}{
		{name: "success: new payment inserted", rows: 1, wantInserted: true},
		{name: "success: duplicate reference skipped", rows: 0, wantInserted: false},
		{name: "error: foreign key violated", queryErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: database error occurs", queryErr: errors.New("timeout"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			p := newPayment(t, uuid.New())
			mockQueries.EXPECT().
				InsertPaymentIfAbsent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertPaymentIfAbsentParams) (int64, error) {
					assert.Equal(t, "mercadopago", arg.Method)
					assert.Equal(t, "1234567", arg.ExternalReference)
					return tc.rows, tc.queryErr
				})

			inserted, err := repo.InsertIfAbsent(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestPaymentRepository_SumByReservation(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	t.Run("success: sum mapped to money", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		amount, _ := reservation.NewMoneyFromString("1000.5")
		mockQueries.EXPECT().SumPaymentsByReservation(ctx, mockDB, reservationID).Return(pgconv.DecimalToNumeric(amount.Decimal()), nil)

		got, err := repo.SumByReservation(ctx, mockDB, reservationID)
		require.NoError(t, err)
		assert.Equal(t, "1000.50", got.String())
	})

	t.Run("error: NaN total rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().SumPaymentsByReservation(ctx, mockDB, reservationID).Return(pgtype.Numeric{NaN: true, Valid: true}, nil)

		_, err := repo.SumByReservation(ctx, mockDB, reservationID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Notification Repository Tests
// =============================================================================

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	payload := []byte(`{"payment_id":"x"}`)
	mockQueries.EXPECT().
		CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    "payment_recorded",
			Topic:   "trip.payments.recorded",
			Payload: payload,
			RunAt:   pgconv.TimeToPgtype(fixedNow),
			Status:  repository.JobStatusQueued,
		}).
		Return(nil)

	err := repo.CreateJob(ctx, mockDB, "payment_recorded", "trip.payments.recorded", payload, fixedNow)
	assert.NoError(t, err)

	t.Run("rejects jobs that could never be published", func(t *testing.T) {
		assert.Error(t, repo.CreateJob(ctx, mockDB, "payment_recorded", "", payload, fixedNow))
		assert.Error(t, repo.CreateJob(ctx, mockDB, "payment_recorded", "trip.payments.recorded", []byte("{"), fixedNow))
	})
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
