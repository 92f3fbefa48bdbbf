package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/report"
	"github.com/stpnv0/EventTicketing/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_BookEvent_FreeEventSellsOut(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	bob := e.newConsumer(t, "Bob")
	ev := e.newEvent(t, 1, 0, 72*time.Hour)

	booking, err := e.bookingSvc.BookEvent(context.Background(), alice, ev.Number, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusActive, booking.Status)
	assert.Equal(t, alice.ID, booking.ConsumerID)
	assert.Equal(t, 0, e.event(t, ev.Number).NumTicketsLeft)

	_, err = e.bookingSvc.BookEvent(context.Background(), bob, ev.Number, 1)
	assert.ErrorIs(t, err, domain.ErrNotEnoughTicketsLeft)

	assert.Equal(t,
		[]domain.OutcomeCode{domain.BookEventSuccess, domain.BookEventNotEnoughTicketsLeft},
		e.recorder.Codes(),
	)
	assert.Empty(t, e.gateway.Transactions(), "free events never touch the gateway")
}

func TestBookingService_BookEvent_ChargesTotalPrice(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	ev := e.newEvent(t, 5, 100, 72*time.Hour)

	booking := e.book(t, alice, ev, 3)
	assert.Equal(t, 3, booking.NumTickets)

	payments := e.payments()
	require.Len(t, payments, 1)
	assert.Equal(t, int64(300), payments[0].AmountInPence)
	assert.Equal(t, alice.PaymentAccountEmail, payments[0].PayerAccount)
	assert.Equal(t, e.organiser.PaymentAccountEmail, payments[0].PayeeAccount)
	assert.Equal(t, 2, e.event(t, ev.Number).NumTicketsLeft)

	last, ok := e.recorder.Last()
	require.True(t, ok)
	assert.Equal(t, domain.BookEventSuccess, last.Code)
	assert.Equal(t, int64(300), last.Params["amount_in_pence"])
}

func TestBookingService_BookEvent_Preconditions(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	active := e.newEvent(t, 2, 10, 72*time.Hour)

	cancelled := e.newEvent(t, 2, 10, 72*time.Hour)
	e.expectNotifications(0)
	_, err := e.eventSvc.CancelEvent(context.Background(), e.organiser, cancelled.Number, "weather")
	require.NoError(t, err)

	// starts in an hour, ended an hour ago by the time the clock moves
	finished := e.newEvent(t, 2, 10, time.Hour)

	tests := []struct {
		name        string
		actor       *domain.User
		eventNumber int64
		numTickets  int
		later       time.Duration
		wantErr     error
		wantCode    domain.OutcomeCode
	}{
		{"no session", nil, active.Number, 1, 0, domain.ErrUserNotConsumer, domain.BookEventUserNotConsumer},
		{"organiser", e.organiser, active.Number, 1, 0, domain.ErrUserNotConsumer, domain.BookEventUserNotConsumer},
		{"unknown event", alice, 999, 1, 0, domain.ErrEventNotFound, domain.BookEventEventNotFound},
		{"cancelled event", alice, cancelled.Number, 1, 0, domain.ErrEventNotActive, domain.BookEventEventNotActive},
		{"zero tickets", alice, active.Number, 0, 0, domain.ErrInvalidNumTickets, domain.BookEventInvalidNumTickets},
		{"negative tickets", alice, active.Number, -2, 0, domain.ErrInvalidNumTickets, domain.BookEventInvalidNumTickets},
		{"event over", alice, finished.Number, 1, 4 * time.Hour, domain.ErrAlreadyOver, domain.BookEventAlreadyOver},
		{"too many tickets", alice, active.Number, 3, 0, domain.ErrNotEnoughTicketsLeft, domain.BookEventNotEnoughTicketsLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.recorder.Reset()
			e.bookingSvc.now = func() time.Time { return testNow.Add(tt.later) }

			booking, err := e.bookingSvc.BookEvent(context.Background(), tt.actor, tt.eventNumber, tt.numTickets)

			assert.Nil(t, booking)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []domain.OutcomeCode{tt.wantCode}, e.recorder.Codes())
		})
	}

	assert.Empty(t, e.gateway.Transactions())
	assert.Equal(t, 2, e.event(t, active.Number).NumTicketsLeft)
}

func TestBookingService_BookEvent_PaymentFailureChangesNothing(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	ev := e.newEvent(t, 5, 100, 72*time.Hour)
	e.gateway.Block(alice.PaymentAccountEmail)

	booking, err := e.bookingSvc.BookEvent(context.Background(), alice, ev.Number, 2)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Equal(t, []domain.OutcomeCode{domain.BookEventPaymentFailed}, e.recorder.Codes())
	assert.Equal(t, 5, e.event(t, ev.Number).NumTicketsLeft)

	bookings, err := e.bookings.ListByEvent(context.Background(), ev.Number)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingService_BookEvent_StorageFailureRefundsCharge(t *testing.T) {
	log := newTestLogger(t)
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	payments := mocks.NewMockPaymentGateway(t)
	recorder := report.NewRecorder()

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, payments, recorder, NewEventLocker(), log)
	svc.now = func() time.Time { return testNow }

	consumer := &domain.User{ID: "c1", Role: domain.RoleConsumer, PaymentAccountEmail: "c1@pay"}
	organiser := &domain.User{ID: "o1", Role: domain.RoleOrganiser, PaymentAccountEmail: "o1@pay"}
	event := &domain.Event{
		Number:             7,
		OrganiserID:        "o1",
		TicketPriceInPence: 250,
		StartDateTime:      testNow.Add(48 * time.Hour),
		EndDateTime:        testNow.Add(50 * time.Hour),
		NumTicketsCap:      10,
		NumTicketsLeft:     10,
		Status:             domain.EventStatusActive,
	}
	dbErr := errors.New("connection reset")

	eventRepo.EXPECT().GetByNumber(mock.Anything, int64(7)).Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "o1").Return(organiser, nil)
	payments.EXPECT().ProcessPayment(mock.Anything, "c1@pay", "o1@pay", int64(500)).Return(true)
	eventRepo.EXPECT().AdjustTicketsLeft(mock.Anything, int64(7), -2).Return(nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)
	eventRepo.EXPECT().AdjustTicketsLeft(mock.Anything, int64(7), 2).Return(nil)
	payments.EXPECT().ProcessRefund(mock.Anything, "o1@pay", "c1@pay", int64(500)).Return(true)

	booking, err := svc.BookEvent(context.Background(), consumer, 7, 2)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, recorder.Codes(), "storage failures have no outcome code")
}

func TestBookingService_CancelBooking_RefundsAndRestoresTickets(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	ev := e.newEvent(t, 5, 100, 72*time.Hour)
	booking := e.book(t, alice, ev, 2)
	e.recorder.Reset()

	ok, err := e.bookingSvc.CancelBooking(context.Background(), alice, booking.Number)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.BookingStatusCancelledByConsumer, e.booking(t, booking.Number).Status)
	assert.Equal(t, 5, e.event(t, ev.Number).NumTicketsLeft)
	assert.Equal(t, []domain.OutcomeCode{domain.CancelBookingSuccess}, e.recorder.Codes())

	refunds := e.refunds()
	require.Len(t, refunds, 1)
	assert.Equal(t, int64(200), refunds[0].AmountInPence)
	assert.Equal(t, e.organiser.PaymentAccountEmail, refunds[0].PayerAccount)
	assert.Equal(t, alice.PaymentAccountEmail, refunds[0].PayeeAccount)
	assert.Zero(t, e.gateway.Balance(alice.PaymentAccountEmail))
}

func TestBookingService_CancelBooking_NoDoubleRefund(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	ev := e.newEvent(t, 5, 100, 72*time.Hour)
	booking := e.book(t, alice, ev, 1)
	e.recorder.Reset()

	ok, err := e.bookingSvc.CancelBooking(context.Background(), alice, booking.Number)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.bookingSvc.CancelBooking(context.Background(), alice, booking.Number)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)

	assert.Equal(t,
		[]domain.OutcomeCode{domain.CancelBookingSuccess, domain.CancelBookingBookingNotActive},
		e.recorder.Codes(),
	)
	assert.Len(t, e.refunds(), 1)
	assert.Equal(t, 5, e.event(t, ev.Number).NumTicketsLeft)
}

func TestBookingService_CancelBooking_24HourBoundary(t *testing.T) {
	tests := []struct {
		name     string
		startsIn time.Duration
		wantOK   bool
	}{
		{"a day and a minute ahead", domain.CancellationWindow + time.Minute, true},
		{"a minute inside the window", domain.CancellationWindow - time.Minute, false},
		{"exactly on the window", domain.CancellationWindow, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			alice := e.newConsumer(t, "Alice")
			ev := e.newEvent(t, 3, 0, tt.startsIn)
			booking := e.book(t, alice, ev, 1)
			e.recorder.Reset()

			ok, err := e.bookingSvc.CancelBooking(context.Background(), alice, booking.Number)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, []domain.OutcomeCode{domain.CancelBookingSuccess}, e.recorder.Codes())
				return
			}
			assert.ErrorIs(t, err, domain.ErrNoCancellationsIn24h)
			assert.Equal(t, []domain.OutcomeCode{domain.CancelBookingNoCancellationsIn24h}, e.recorder.Codes())
			assert.Equal(t, domain.BookingStatusActive, e.booking(t, booking.Number).Status)
			assert.Equal(t, 2, e.event(t, ev.Number).NumTicketsLeft)
		})
	}
}

func TestBookingService_CancelBooking_Preconditions(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	bob := e.newConsumer(t, "Bob")
	ev := e.newEvent(t, 5, 0, 72*time.Hour)
	booking := e.book(t, alice, ev, 1)

	tests := []struct {
		name     string
		actor    *domain.User
		number   int64
		wantErr  error
		wantCode domain.OutcomeCode
	}{
		{"no session", nil, booking.Number, domain.ErrUserNotConsumer, domain.CancelBookingUserNotConsumer},
		{"organiser", e.organiser, booking.Number, domain.ErrUserNotConsumer, domain.CancelBookingUserNotConsumer},
		{"unknown booking", alice, 999, domain.ErrBookingNotFound, domain.CancelBookingBookingNotFound},
		{"someone else's booking", bob, booking.Number, domain.ErrUserIsNotBooker, domain.CancelBookingUserIsNotBooker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.recorder.Reset()

			ok, err := e.bookingSvc.CancelBooking(context.Background(), tt.actor, tt.number)

			assert.False(t, ok)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []domain.OutcomeCode{tt.wantCode}, e.recorder.Codes())
		})
	}

	assert.Equal(t, domain.BookingStatusActive, e.booking(t, booking.Number).Status)
}

func TestBookingService_CancelBooking_RefundFailureChangesNothing(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	ev := e.newEvent(t, 5, 100, 72*time.Hour)
	booking := e.book(t, alice, ev, 2)
	e.recorder.Reset()
	e.gateway.Block(e.organiser.PaymentAccountEmail)

	ok, err := e.bookingSvc.CancelBooking(context.Background(), alice, booking.Number)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrRefundFailed)
	assert.Equal(t, []domain.OutcomeCode{domain.CancelBookingRefundFailed}, e.recorder.Codes())
	assert.Equal(t, domain.BookingStatusActive, e.booking(t, booking.Number).Status)
	assert.Equal(t, 3, e.event(t, ev.Number).NumTicketsLeft)
}

func TestBookingService_CancelBooking_RefundFailureSkipsLedger(t *testing.T) {
	log := newTestLogger(t)
	eventRepo := mocks.NewMockEventRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	payments := mocks.NewMockPaymentGateway(t)
	recorder := report.NewRecorder()

	svc := NewBookingService(bookingRepo, eventRepo, userRepo, payments, recorder, NewEventLocker(), log)
	svc.now = func() time.Time { return testNow }

	consumer := &domain.User{ID: "c1", Role: domain.RoleConsumer, PaymentAccountEmail: "c1@pay"}
	organiser := &domain.User{ID: "o1", Role: domain.RoleOrganiser, PaymentAccountEmail: "o1@pay"}
	booking := &domain.Booking{Number: 3, ConsumerID: "c1", EventNumber: 7, NumTickets: 2, Status: domain.BookingStatusActive}
	event := &domain.Event{
		Number:             7,
		OrganiserID:        "o1",
		TicketPriceInPence: 250,
		StartDateTime:      testNow.Add(48 * time.Hour),
		EndDateTime:        testNow.Add(50 * time.Hour),
		NumTicketsCap:      10,
		NumTicketsLeft:     8,
		Status:             domain.EventStatusActive,
	}

	bookingRepo.EXPECT().GetByNumber(mock.Anything, int64(3)).Return(booking, nil).Twice()
	eventRepo.EXPECT().GetByNumber(mock.Anything, int64(7)).Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "o1").Return(organiser, nil)
	payments.EXPECT().ProcessRefund(mock.Anything, "o1@pay", "c1@pay", int64(500)).Return(false)

	ok, err := svc.CancelBooking(context.Background(), consumer, 3)

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrRefundFailed)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	eventRepo.AssertNotCalled(t, "AdjustTicketsLeft", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_InventoryConservation(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	bob := e.newConsumer(t, "Bob")
	ev := e.newEvent(t, 10, 50, 72*time.Hour)
	ctx := context.Background()

	b1 := e.book(t, alice, ev, 3)
	b2 := e.book(t, bob, ev, 4)
	_, err := e.bookingSvc.BookEvent(ctx, bob, ev.Number, 4)
	require.ErrorIs(t, err, domain.ErrNotEnoughTicketsLeft)
	_, err = e.bookingSvc.CancelBooking(ctx, alice, b1.Number)
	require.NoError(t, err)
	e.book(t, alice, ev, 5)
	_, err = e.bookingSvc.CancelBooking(ctx, bob, b2.Number)
	require.NoError(t, err)

	mismatches, err := e.auditSvc.Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
	assert.Equal(t, 5, e.event(t, ev.Number).NumTicketsLeft)
}

func TestBookingService_ConcurrentBookingsNeverOversell(t *testing.T) {
	e := newEngine(t)
	ev := e.newEvent(t, 10, 20, 72*time.Hour)

	const buyers = 40
	consumers := make([]*domain.User, buyers)
	for i := range consumers {
		consumers[i] = e.newConsumer(t, "Buyer")
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for _, c := range consumers {
		wg.Add(1)
		go func(c *domain.User) {
			defer wg.Done()
			if _, err := e.bookingSvc.BookEvent(context.Background(), c, ev.Number, 1); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 0, e.event(t, ev.Number).NumTicketsLeft)
	assert.Len(t, e.payments(), 10)

	mismatches, err := e.auditSvc.Audit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestBookingService_GetBooking_Visibility(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	bob := e.newConsumer(t, "Bob")
	rival := e.newOrganiser(t, "Rival Events")
	ev := e.newEvent(t, 5, 0, 72*time.Hour)
	booking := e.book(t, alice, ev, 1)
	ctx := context.Background()

	got, err := e.bookingSvc.GetBooking(ctx, alice, booking.Number)
	require.NoError(t, err)
	assert.Equal(t, booking.Number, got.Number)

	_, err = e.bookingSvc.GetBooking(ctx, e.organiser, booking.Number)
	assert.NoError(t, err)

	_, err = e.bookingSvc.GetBooking(ctx, bob, booking.Number)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = e.bookingSvc.GetBooking(ctx, rival, booking.Number)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = e.bookingSvc.GetBooking(ctx, nil, booking.Number)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListConsumerBookings(t *testing.T) {
	e := newEngine(t)
	alice := e.newConsumer(t, "Alice")
	bob := e.newConsumer(t, "Bob")
	ev := e.newEvent(t, 5, 0, 72*time.Hour)
	e.book(t, alice, ev, 1)
	e.book(t, bob, ev, 1)
	e.book(t, alice, ev, 2)

	bookings, err := e.bookingSvc.ListConsumerBookings(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, alice.ID, b.ConsumerID)
	}

	_, err = e.bookingSvc.ListConsumerBookings(context.Background(), e.organiser)
	assert.ErrorIs(t, err, domain.ErrUserNotConsumer)
}
