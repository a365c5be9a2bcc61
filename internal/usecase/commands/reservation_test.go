//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trip-booking/internal/domain/reservation"
	"trip-booking/internal/infra"
	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/usecase/commands"
)

// sequenceCodes hands out codes in order, repeating the last one.
type sequenceCodes struct {
	codes []string
	next  int
}

func (g *sequenceCodes) Generate() (reservation.Code, error) {
	i := g.next
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.next++
	return reservation.NewCode(g.codes[i])
}

type ReservationCommandsTestSuite struct {
	commandSuite
	codes *sequenceCodes
	sut   commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.commandSuite.SetupTest()
	s.codes = &sequenceCodes{codes: []string{"TRIP-AAA222", "TRIP-BBB333"}}
	factory := reservation.NewFactory(s.clock, s.codes, mustMoney("500"), 10)
	s.sut = commands.NewReservationCommands(s.uow, factory, s.clock)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func validInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HolderName:  "Ana Gómez",
		HolderEmail: "ana@example.com",
		HolderPhone: "+54 11 5555 0000",
		Seats:       3,
	}
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	s.Run("success: prices seats and stores the reservation", func() {
		s.expectWithin()
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.sut.CreateReservation(context.Background(), validInput())

		s.Require().NoError(err)
		s.Equal("TRIP-AAA222", res.Code().String())
		s.Equal("1500.00", res.TotalAmount().String())
		s.Equal("750.00", res.DepositRequired().String())
		s.Equal(reservation.StatusPending, res.Status())
		s.True(res.AmountPaid().IsZero())
	})

	s.Run("success: retries on code collision", func() {
		s.codes.next = 0
		s.expectWithin().Times(2)
		gomock.InOrder(
			s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("create reservation", nil, infra.KindDuplicateKey)),
			s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := s.sut.CreateReservation(context.Background(), validInput())

		s.Require().NoError(err)
		s.Equal("TRIP-BBB333", res.Code().String())
	})

	s.Run("error: code space exhausted", func() {
		s.expectWithin().Times(5)
		s.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("create reservation", nil, infra.KindDuplicateKey)).Times(5)

		_, err := s.sut.CreateReservation(context.Background(), validInput())
		s.True(errs.Is(err, commands.ErrCodeSpaceExhausted))
	})

	s.Run("error: invalid holder or seats", func() {
		mutations := []func(*commands.CreateReservationInput){
			func(in *commands.CreateReservationInput) { in.HolderName = "" },
			func(in *commands.CreateReservationInput) { in.HolderEmail = "not-an-email" },
			func(in *commands.CreateReservationInput) { in.Seats = 0 },
			func(in *commands.CreateReservationInput) { in.Seats = 11 },
		}
		for _, mutate := range mutations {
			in := validInput()
			mutate(&in)
			_, err := s.sut.CreateReservation(context.Background(), in)
			s.True(errs.Is(err, commands.ErrInvalidReservation))
		}
	})

	s.Run("error: database failure", func() {
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := s.sut.CreateReservation(context.Background(), validInput())
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func (s *ReservationCommandsTestSuite) TestCancelReservation() {
	s.Run("success: keeps the amount paid", func() {
		res := newReservation("TRIP-ABC234", "1000", "500", reservation.StatusDepositPaid)
		s.expectWithin()
		s.reservations.EXPECT().LockByCode(gomock.Any(), gomock.Any(), res.Code()).Return(res, nil)
		s.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res).Return(nil)

		cancelled, err := s.sut.CancelReservation(context.Background(), "TRIP-ABC234")

		s.Require().NoError(err)
		s.Equal(reservation.StatusCancelled, cancelled.Status())
		s.Equal("500.00", cancelled.AmountPaid().String())
		s.Equal(fixedNow, cancelled.UpdatedAt())
	})

	s.Run("error: already cancelled", func() {
		res := newReservation("TRIP-ABC234", "1000", "0", reservation.StatusCancelled)
		s.expectWithin()
		s.reservations.EXPECT().LockByCode(gomock.Any(), gomock.Any(), res.Code()).Return(res, nil)

		_, err := s.sut.CancelReservation(context.Background(), "TRIP-ABC234")
		s.True(errs.Is(err, commands.ErrAlreadyCancelled))
	})

	s.Run("error: unknown reservation", func() {
		_, err := s.sut.CancelReservation(context.Background(), "nope")
		s.True(errs.Is(err, commands.ErrReservationNotFound))

		s.expectWithin()
		s.reservations.EXPECT().LockByCode(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err = s.sut.CancelReservation(context.Background(), "TRIP-ZZZ999")
		s.True(errs.Is(err, commands.ErrReservationNotFound))
	})
}
