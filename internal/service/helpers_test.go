package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/payment"
	"github.com/stpnv0/EventTicketing/internal/report"
	"github.com/stpnv0/EventTicketing/internal/repository/memory"
	"github.com/stpnv0/EventTicketing/internal/service/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

// engine wires the services to the in-memory stores, the in-process gateway
// and a recording reporter, with the clock frozen at testNow.
type engine struct {
	events   *memory.EventRepository
	bookings *memory.BookingRepository
	users    *memory.UserRepository
	gateway  *payment.Gateway
	recorder *report.Recorder
	notifier *mocks.MockBookingNotifier

	bookingSvc *BookingService
	eventSvc   *EventService
	userSvc    *UserService
	auditSvc   *AuditService

	organiser *domain.User
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	log := newTestLogger(t)
	e := &engine{
		events:   memory.NewEventRepo(),
		bookings: memory.NewBookingRepo(),
		users:    memory.NewUserRepo(),
		gateway:  payment.NewGateway(log),
		recorder: report.NewRecorder(),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	locker := NewEventLocker()

	e.bookingSvc = NewBookingService(e.bookings, e.events, e.users, e.gateway, e.recorder, locker, log)
	e.eventSvc = NewEventService(e.events, e.bookings, e.users, e.gateway, e.notifier, e.recorder, locker, log)
	e.userSvc = NewUserService(e.users)
	e.auditSvc = NewAuditService(e.events, e.bookings, e.recorder, locker, log)

	clock := func() time.Time { return testNow }
	e.bookingSvc.now = clock
	e.eventSvc.now = clock

	e.organiser = e.newOrganiser(t, "Rock Promotions")

	return e
}

func (e *engine) newOrganiser(t *testing.T, name string) *domain.User {
	t.Helper()
	slug := fmt.Sprintf("org%d", len(e.mustUsers(t)))
	u, err := e.userSvc.RegisterOrganiser(context.Background(), domain.CreateOrganiserInput{
		OrgName:             name,
		OrgAddress:          "1 Main Street",
		Email:               slug + "@example.com",
		PaymentAccountEmail: slug + "-pay@example.com",
	})
	require.NoError(t, err)
	return u
}

func (e *engine) newConsumer(t *testing.T, name string) *domain.User {
	t.Helper()
	slug := fmt.Sprintf("consumer%d", len(e.mustUsers(t)))
	u, err := e.userSvc.RegisterConsumer(context.Background(), domain.CreateConsumerInput{
		Name:                name,
		Email:               slug + "@example.com",
		PaymentAccountEmail: slug + "-pay@example.com",
	})
	require.NoError(t, err)
	return u
}

func (e *engine) mustUsers(t *testing.T) []*domain.User {
	t.Helper()
	users, err := e.users.List(context.Background())
	require.NoError(t, err)
	return users
}

// newEvent creates an event that starts startsIn after testNow and lasts two hours.
func (e *engine) newEvent(t *testing.T, cap int, price int64, startsIn time.Duration) *domain.Event {
	t.Helper()
	start := testNow.Add(startsIn)
	ev, err := e.eventSvc.CreateEvent(context.Background(), e.organiser, domain.CreateEventInput{
		Title:              "Gig",
		Type:               domain.EventTypeMusic,
		TicketPriceInPence: price,
		VenueAddress:       "55.944 -3.187",
		StartDateTime:      start,
		EndDateTime:        start.Add(2 * time.Hour),
		NumTicketsCap:      cap,
	})
	require.NoError(t, err)
	e.recorder.Reset()
	return ev
}

func (e *engine) event(t *testing.T, number int64) *domain.Event {
	t.Helper()
	ev, err := e.events.GetByNumber(context.Background(), number)
	require.NoError(t, err)
	return ev
}

func (e *engine) booking(t *testing.T, number int64) *domain.Booking {
	t.Helper()
	b, err := e.bookings.GetByNumber(context.Background(), number)
	require.NoError(t, err)
	return b
}

func (e *engine) book(t *testing.T, consumer *domain.User, event *domain.Event, n int) *domain.Booking {
	t.Helper()
	b, err := e.bookingSvc.BookEvent(context.Background(), consumer, event.Number, n)
	require.NoError(t, err)
	return b
}

func (e *engine) expectNotifications(times int) {
	if times == 0 {
		return
	}
	e.notifier.EXPECT().
		NotifyEventCancelled(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return().
		Times(times)
}

func (e *engine) refunds() []payment.Transaction {
	var res []payment.Transaction
	for _, tx := range e.gateway.Transactions() {
		if tx.Kind == payment.KindRefund {
			res = append(res, tx)
		}
	}
	return res
}

func (e *engine) payments() []payment.Transaction {
	var res []payment.Transaction
	for _, tx := range e.gateway.Transactions() {
		if tx.Kind == payment.KindPayment {
			res = append(res, tx)
		}
	}
	return res
}
