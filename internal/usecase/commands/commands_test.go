//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/usecase/shared"
	commandsmock "trip-booking/tests/mock/commands"
	sharedmock "trip-booking/tests/mock/shared"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// recordingPublisher captures events instead of fanning them out.
type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.PaymentRecorded
}

func (p *recordingPublisher) Publish(ev shared.PaymentRecorded) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return 1
}

func (p *recordingPublisher) Events() []shared.PaymentRecorded {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.PaymentRecorded(nil), p.events...)
}

// commandSuite wires a UnitOfWork mock whose Within runs the callback
// against mocked repositories.
type commandSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	reservations  *sharedmock.MockReservationRepository
	payments      *sharedmock.MockPaymentRepository
	notifications *sharedmock.MockNotificationRepository
	gateway       *commandsmock.MockPaymentGateway
	lock          *commandsmock.MockDeliveryLock
	publisher     *recordingPublisher
	clock         *clock.MockClock
}

func (s *commandSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.reservations = sharedmock.NewMockReservationRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.lock = commandsmock.NewMockDeliveryLock(s.ctrl)
	s.publisher = &recordingPublisher{}
	s.clock = clock.NewMockClock(fixedNow)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reservations().Return(s.reservations).AnyTimes()
	s.tx.EXPECT().Payments().Return(s.payments).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *commandSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *commandSuite) expectWithin() *gomock.Call {
	return s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func mustMoney(s string) reservation.Money {
	m, err := reservation.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func mustCode(s string) reservation.Code {
	c, err := reservation.NewCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

func newReservation(code string, total, paid string, status reservation.Status) *reservation.Reservation {
	totalAmount := mustMoney(total)
	return reservation.ReconstructReservation(
		uuid.New(),
		mustCode(code),
		reservation.ReconstructHolder("Ana Gómez", "ana@example.com", "+54 11 5555 0000"),
		2,
		totalAmount,
		reservation.DepositFor(totalAmount),
		mustMoney(paid),
		status,
		fixedNow.Add(-24*time.Hour),
		fixedNow.Add(-24*time.Hour),
	)
}
