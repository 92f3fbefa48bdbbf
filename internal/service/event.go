package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	payments    ports.PaymentGateway
	notifier    ports.BookingNotifier
	locker      *EventLocker
	outcomes    *outcomes
	logger      logger.Logger
	now         func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	payments ports.PaymentGateway,
	notifier ports.BookingNotifier,
	reporter ports.Reporter,
	locker *EventLocker,
	logger logger.Logger,
) *EventService {
	s := &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		payments:    payments,
		notifier:    notifier,
		locker:      locker,
		logger:      logger,
		now:         time.Now,
	}
	s.outcomes = &outcomes{reporter: reporter, logger: logger, now: func() time.Time { return s.now() }}
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, actor *domain.User, input domain.CreateEventInput) (*domain.Event, error) {
	params := map[string]any{
		"title":                 input.Title,
		"num_tickets_cap":       input.NumTicketsCap,
		"ticket_price_in_pence": input.TicketPriceInPence,
	}

	if !actor.IsOrganiser() {
		return nil, s.outcomes.fail(ctx, domain.OpCreateEvent, domain.ErrUserNotStaff, params)
	}
	params["organiser_id"] = actor.ID

	var err error
	switch {
	case strings.TrimSpace(input.Title) == "":
		err = domain.ErrTitleBlank
	case !input.Type.Valid():
		err = domain.ErrInvalidEventType
	case input.TicketPriceInPence < 0:
		err = domain.ErrNegativePrice
	case input.NumTicketsCap < 1:
		err = domain.ErrCapacityLessThan1
	case input.StartDateTime.After(input.EndDateTime):
		err = domain.ErrStartAfterEnd
	case !input.StartDateTime.After(s.now()):
		err = domain.ErrEventInThePast
	}
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCreateEvent, fmt.Errorf("%w: %w", domain.ErrValidation, err), params)
	}

	event := &domain.Event{
		OrganiserID:         actor.ID,
		Title:               strings.TrimSpace(input.Title),
		Type:                input.Type,
		TicketPriceInPence:  input.TicketPriceInPence,
		VenueAddress:        input.VenueAddress,
		Description:         input.Description,
		StartDateTime:       input.StartDateTime.UTC(),
		EndDateTime:         input.EndDateTime.UTC(),
		HasSocialDistancing: input.HasSocialDistancing,
		HasAirFiltration:    input.HasAirFiltration,
		IsOutdoors:          input.IsOutdoors,
		NumTicketsCap:       input.NumTicketsCap,
		NumTicketsLeft:      input.NumTicketsCap,
		Status:              domain.EventStatusActive,
		CreatedAt:           s.now().UTC(),
	}

	if err = s.repo.Create(ctx, event); err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCreateEvent, fmt.Errorf("create event: %w", err), params)
	}

	params["event_number"] = event.Number
	s.outcomes.emit(ctx, domain.CreateEventSuccess, params)

	return event, nil
}

// CancelEvent cancels an event on behalf of an organiser and cascades the
// cancellation to every booking that is still active. The event is cancelled
// before the cascade starts and a failed refund never stops it; failures are
// visible in the returned result.
func (s *EventService) CancelEvent(ctx context.Context, actor *domain.User, eventNumber int64, message string) (*domain.CancellationResult, error) {
	params := map[string]any{"event_number": eventNumber}

	if !actor.IsOrganiser() {
		return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, domain.ErrUserNotStaff, params)
	}
	params["organiser_id"] = actor.ID

	unlock := s.locker.Lock(eventNumber)
	defer unlock()

	event, err := s.repo.GetByNumber(ctx, eventNumber)
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, fmt.Errorf("get event: %w", err), params)
	}

	switch {
	case !event.IsActive():
		err = domain.ErrEventNotActive
	case event.HasStarted(s.now()):
		err = domain.ErrAlreadyStarted
	case strings.TrimSpace(message) == "":
		err = domain.ErrMessageBlank
	}
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, err, params)
	}

	// reads go first so a storage error leaves the event active and retryable
	bookings, err := s.bookingRepo.ListByEvent(ctx, eventNumber)
	if err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, fmt.Errorf("list bookings: %w", err), params)
	}

	// refunds are paid from the account of the event's organiser
	var owner *domain.User
	if !event.IsFree() {
		owner, err = s.userRepo.GetByID(ctx, event.OrganiserID)
		if err != nil {
			return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, fmt.Errorf("get event organiser: %w", err), params)
		}
	}

	if err = s.repo.Cancel(ctx, eventNumber); err != nil {
		return nil, s.outcomes.fail(ctx, domain.OpCancelEvent, fmt.Errorf("cancel event: %w", err), params)
	}
	event.Status = domain.EventStatusCancelled

	result := &domain.CancellationResult{Event: event}
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		refund, ok := s.cancelByProvider(ctx, owner, event, b, message)
		if ok {
			result.Refunds = append(result.Refunds, refund)
		}
	}

	failed := len(result.FailedRefunds())
	params["bookings_cancelled"] = len(result.Refunds)
	params["refunds_failed"] = failed
	s.outcomes.emit(ctx, domain.CancelEventSuccess, params)

	s.logger.Info("event cancelled",
		logger.Int64("event_number", eventNumber),
		logger.String("organiser_id", actor.ID),
		logger.Int("bookings_cancelled", len(result.Refunds)),
		logger.Int("refunds_failed", failed),
	)

	return result, nil
}

// cancelByProvider moves one booking to CancelledByProvider, notifies its
// booker and refunds it from the event owner's account. It reports false when
// the booking was not cancelled here, for instance because its booker
// cancelled it first.
func (s *EventService) cancelByProvider(
	ctx context.Context,
	owner *domain.User,
	event *domain.Event,
	b *domain.Booking,
	message string,
) (domain.BookingRefund, bool) {
	refund := domain.BookingRefund{
		BookingNumber: b.Number,
		ConsumerID:    b.ConsumerID,
		AmountInPence: event.TotalPrice(b.NumTickets),
		Free:          event.IsFree(),
	}

	err := s.bookingRepo.UpdateStatus(ctx, b.Number, domain.BookingStatusActive, domain.BookingStatusCancelledByProvider)
	if err != nil {
		if !errors.Is(err, domain.ErrBookingNotActive) {
			s.logger.Error("failed to cancel booking of cancelled event",
				logger.Int64("booking_number", b.Number),
				logger.Int64("event_number", event.Number),
				logger.String("error", err.Error()),
			)
		}
		return refund, false
	}

	params := map[string]any{
		"event_number":    event.Number,
		"booking_number":  b.Number,
		"consumer_id":     b.ConsumerID,
		"num_tickets":     b.NumTickets,
		"amount_in_pence": refund.AmountInPence,
	}

	consumer, err := s.userRepo.GetByID(ctx, b.ConsumerID)
	if err != nil {
		s.logger.Error("failed to get booker of cancelled event",
			logger.String("consumer_id", b.ConsumerID),
			logger.String("error", err.Error()),
		)
		if !refund.Free {
			params["reason"] = "booker not found"
			s.outcomes.emit(ctx, domain.CancelEventRefundBookingError, params)
		}
		return refund, true
	}

	s.notifier.NotifyEventCancelled(ctx, consumer, event, message)

	if refund.Free {
		refund.Refunded = true
		return refund, true
	}

	refund.Refunded = s.payments.ProcessRefund(ctx, owner.PaymentAccountEmail, consumer.PaymentAccountEmail, refund.AmountInPence)
	if refund.Refunded {
		s.outcomes.emit(ctx, domain.CancelEventRefundBookingSuccess, params)
	} else {
		s.outcomes.emit(ctx, domain.CancelEventRefundBookingError, params)
	}

	return refund, true
}

func (s *EventService) GetEvent(ctx context.Context, number int64) (*domain.Event, error) {
	return s.repo.GetByNumber(ctx, number)
}

// ListEvents returns every event, or only the bookable ones when
// onlyBookable is set.
func (s *EventService) ListEvents(ctx context.Context, onlyBookable bool) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if !onlyBookable {
		return events, nil
	}

	now := s.now()
	res := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if e.IsActive() && !e.IsOver(now) && e.NumTicketsLeft > 0 {
			res = append(res, e)
		}
	}

	return res, nil
}

// ListEventBookings answers "bookings for event X" for the event's organiser.
func (s *EventService) ListEventBookings(ctx context.Context, actor *domain.User, eventNumber int64) ([]*domain.Booking, error) {
	if !actor.IsOrganiser() {
		return nil, domain.ErrUserNotStaff
	}

	event, err := s.repo.GetByNumber(ctx, eventNumber)
	if err != nil {
		return nil, err
	}
	if event.OrganiserID != actor.ID {
		return nil, domain.ErrUserNotOrganiser
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, eventNumber)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}
