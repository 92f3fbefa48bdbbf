package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	payments    ports.PaymentGateway
	locker      *EventLocker
	outcomes    *outcomes
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	payments ports.PaymentGateway,
	reporter ports.Reporter,
	locker *EventLocker,
	logger logger.Logger,
) *BookingService {
	s := &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		payments:    payments,
		locker:      locker,
		logger:      logger,
		now:         time.Now,
	}
	s.outcomes = &outcomes{reporter: reporter, logger: logger, now: func() time.Time { return s.now() }}
	return s
}

// BookEvent books numTickets of the event for the acting consumer. Payment is
// taken before any inventory or ledger change; a failed charge leaves both
// untouched.
func (s *BookingService) BookEvent(ctx context.Context, actor *domain.User, eventNumber int64, numTickets int) (*domain.Booking, error) {
	params := map[string]any{
		"event_number":          eventNumber,
		"num_tickets_requested": numTickets,
	}

	if !actor.IsConsumer() {
		return nil, s.outcomes.fail(ctx, domain.OpBookEvent, domain.ErrUserNotConsumer, params)
	}
	params["consumer_id"] = actor.ID

	unlock := s.locker.Lock(eventNumber)
	defer unlock()

	event, err := s.eventRepo.GetByNumber(ctx, eventNumber)
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpBookEvent, fmt.Errorf("get event: %w", err), params)
	}
	params["num_tickets_left"] = event.NumTicketsLeft
	params["ticket_price_in_pence"] = event.TicketPriceInPence

	now := s.now()
	switch {
	case !event.IsActive():
		err = domain.ErrEventNotActive
	case numTickets < 1:
		err = domain.ErrInvalidNumTickets
	case event.IsOver(now):
		err = domain.ErrAlreadyOver
	case event.NumTicketsLeft < numTickets:
		err = domain.ErrNotEnoughTicketsLeft
	}
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpBookEvent, err, params)
	}

	var organiser *domain.User
	amount := event.TotalPrice(numTickets)
	if !event.IsFree() {
		params["amount_in_pence"] = amount

		organiser, err = s.userRepo.GetByID(ctx, event.OrganiserID)
		if err != nil {
			return nil, s.outcomes.fail(ctx, domain.OpBookEvent, fmt.Errorf("get organiser: %w", err), params)
		}

		if !s.payments.ProcessPayment(ctx, actor.PaymentAccountEmail, organiser.PaymentAccountEmail, amount) {
			return nil, s.outcomes.fail(ctx, domain.OpBookEvent, domain.ErrPaymentFailed, params)
		}
	}

	if err = s.eventRepo.AdjustTicketsLeft(ctx, eventNumber, -numTickets); err != nil {
		s.refundCharge(ctx, actor, organiser, event, amount)
		return nil, s.outcomes.fail(ctx, domain.OpBookEvent, fmt.Errorf("take tickets: %w", err), params)
	}

	booking := &domain.Booking{
		ConsumerID:      actor.ID,
		EventNumber:     eventNumber,
		NumTickets:      numTickets,
		BookingDateTime: now.UTC(),
		Status:          domain.BookingStatusActive,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if restoreErr := s.eventRepo.AdjustTicketsLeft(ctx, eventNumber, numTickets); restoreErr != nil {
			s.logger.Error("failed to restore tickets after booking error",
				logger.Int64("event_number", eventNumber),
				logger.Int("num_tickets", numTickets),
				logger.String("error", restoreErr.Error()),
			)
		}
		s.refundCharge(ctx, actor, organiser, event, amount)
		return nil, s.outcomes.fail(ctx, domain.OpBookEvent, fmt.Errorf("create booking: %w", err), params)
	}

	params["booking_number"] = booking.Number
	params["num_tickets_left"] = event.NumTicketsLeft - numTickets
	s.outcomes.emit(ctx, domain.BookEventSuccess, params)

	s.logger.Info("booking created",
		logger.Int64("booking_number", booking.Number),
		logger.Int64("event_number", eventNumber),
		logger.String("consumer_id", actor.ID),
		logger.Int("num_tickets", numTickets),
	)

	return booking, nil
}

// refundCharge gives back a charge taken by BookEvent when a later storage
// step failed. Free events have nothing to give back.
func (s *BookingService) refundCharge(ctx context.Context, consumer, organiser *domain.User, event *domain.Event, amount int64) {
	if event.IsFree() || organiser == nil {
		return
	}
	if !s.payments.ProcessRefund(ctx, organiser.PaymentAccountEmail, consumer.PaymentAccountEmail, amount) {
		s.logger.Error("failed to refund charge after booking error",
			logger.Int64("event_number", event.Number),
			logger.String("consumer_id", consumer.ID),
			logger.Int64("amount_in_pence", amount),
		)
	}
}

// CancelBooking cancels one of the acting consumer's bookings and refunds it.
// Nothing changes unless the refund succeeds.
func (s *BookingService) CancelBooking(ctx context.Context, actor *domain.User, bookingNumber int64) (bool, error) {
	params := map[string]any{"booking_number": bookingNumber}

	if !actor.IsConsumer() {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, domain.ErrUserNotConsumer, params)
	}
	params["consumer_id"] = actor.ID

	booking, err := s.bookingRepo.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, fmt.Errorf("get booking: %w", err), params)
	}

	unlock := s.locker.Lock(booking.EventNumber)
	defer unlock()

	// re-read under the event lock, the status may have moved meanwhile
	booking, err = s.bookingRepo.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, fmt.Errorf("get booking: %w", err), params)
	}
	params["event_number"] = booking.EventNumber
	params["num_tickets"] = booking.NumTickets

	if !booking.BookedBy(actor) {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, domain.ErrUserIsNotBooker, params)
	}
	if !booking.IsActive() {
		params["booking_status"] = string(booking.Status)
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, domain.ErrBookingNotActive, params)
	}

	event, err := s.eventRepo.GetByNumber(ctx, booking.EventNumber)
	if err != nil {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, fmt.Errorf("get event: %w", err), params)
	}
	if !event.CancellableAt(s.now()) {
		params["event_start"] = event.StartDateTime.UTC().Format(time.RFC3339)
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, domain.ErrNoCancellationsIn24h, params)
	}

	if !event.IsFree() {
		amount := event.TotalPrice(booking.NumTickets)
		params["amount_in_pence"] = amount

		organiser, err := s.userRepo.GetByID(ctx, event.OrganiserID)
		if err != nil {
			return false, s.outcomes.fail(ctx, domain.OpCancelBooking, fmt.Errorf("get organiser: %w", err), params)
		}
		if !s.payments.ProcessRefund(ctx, organiser.PaymentAccountEmail, actor.PaymentAccountEmail, amount) {
			return false, s.outcomes.fail(ctx, domain.OpCancelBooking, domain.ErrRefundFailed, params)
		}
	}

	err = s.bookingRepo.UpdateStatus(ctx, bookingNumber, domain.BookingStatusActive, domain.BookingStatusCancelledByConsumer)
	if err != nil {
		return false, s.outcomes.fail(ctx, domain.OpCancelBooking, fmt.Errorf("cancel booking: %w", err), params)
	}

	if err = s.eventRepo.AdjustTicketsLeft(ctx, booking.EventNumber, booking.NumTickets); err != nil {
		// the booking is already cancelled and refunded, inventory is the only loss
		s.logger.Error("failed to return tickets to event",
			logger.Int64("event_number", booking.EventNumber),
			logger.Int64("booking_number", bookingNumber),
			logger.String("error", err.Error()),
		)
	}

	s.outcomes.emit(ctx, domain.CancelBookingSuccess, params)

	s.logger.Info("booking cancelled by consumer",
		logger.Int64("booking_number", bookingNumber),
		logger.Int64("event_number", booking.EventNumber),
		logger.String("consumer_id", actor.ID),
	)

	return true, nil
}

func (s *BookingService) GetBooking(ctx context.Context, actor *domain.User, bookingNumber int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByNumber(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	if actor.IsConsumer() && booking.BookedBy(actor) {
		return booking, nil
	}
	if actor.IsOrganiser() {
		event, err := s.eventRepo.GetByNumber(ctx, booking.EventNumber)
		if err != nil {
			return nil, fmt.Errorf("get event: %w", err)
		}
		if event.OrganiserID == actor.ID {
			return booking, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

// ListConsumerBookings returns the acting consumer's personal booking list.
func (s *BookingService) ListConsumerBookings(ctx context.Context, actor *domain.User) ([]*domain.Booking, error) {
	if !actor.IsConsumer() {
		return nil, domain.ErrUserNotConsumer
	}

	bookings, err := s.bookingRepo.ListByConsumer(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}
