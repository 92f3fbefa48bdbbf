package domain

import (
	"errors"
	"time"
)

// Operation prefixes outcome codes so each operation has its own stable set.
type Operation string

const (
	OpBookEvent      Operation = "BOOK_EVENT"
	OpCancelBooking  Operation = "CANCEL_BOOKING"
	OpCancelEvent    Operation = "CANCEL_EVENT"
	OpCreateEvent    Operation = "CREATE_EVENT"
	OpInventoryAudit Operation = "INVENTORY_AUDIT"
)

type OutcomeCode string

const (
	BookEventUserNotConsumer      OutcomeCode = "BOOK_EVENT_USER_NOT_CONSUMER"
	BookEventEventNotFound        OutcomeCode = "BOOK_EVENT_EVENT_NOT_FOUND"
	BookEventEventNotActive       OutcomeCode = "BOOK_EVENT_EVENT_NOT_ACTIVE"
	BookEventInvalidNumTickets    OutcomeCode = "BOOK_EVENT_INVALID_NUM_TICKETS"
	BookEventAlreadyOver          OutcomeCode = "BOOK_EVENT_ALREADY_OVER"
	BookEventNotEnoughTicketsLeft OutcomeCode = "BOOK_EVENT_NOT_ENOUGH_TICKETS_LEFT"
	BookEventPaymentFailed        OutcomeCode = "BOOK_EVENT_PAYMENT_FAILED"
	BookEventSuccess              OutcomeCode = "BOOK_EVENT_SUCCESS"

	CancelBookingUserNotConsumer      OutcomeCode = "CANCEL_BOOKING_USER_NOT_CONSUMER"
	CancelBookingBookingNotFound      OutcomeCode = "CANCEL_BOOKING_BOOKING_NOT_FOUND"
	CancelBookingUserIsNotBooker      OutcomeCode = "CANCEL_BOOKING_USER_IS_NOT_BOOKER"
	CancelBookingBookingNotActive     OutcomeCode = "CANCEL_BOOKING_BOOKING_NOT_ACTIVE"
	CancelBookingNoCancellationsIn24h OutcomeCode = "CANCEL_BOOKING_NO_CANCELLATIONS_WITHIN_24H"
	CancelBookingRefundFailed         OutcomeCode = "CANCEL_BOOKING_REFUND_FAILED"
	CancelBookingSuccess              OutcomeCode = "CANCEL_BOOKING_SUCCESS"

	CancelEventUserNotStaff         OutcomeCode = "CANCEL_EVENT_USER_NOT_STAFF"
	CancelEventEventNotFound        OutcomeCode = "CANCEL_EVENT_EVENT_NOT_FOUND"
	CancelEventEventNotActive       OutcomeCode = "CANCEL_EVENT_EVENT_NOT_ACTIVE"
	CancelEventAlreadyStarted       OutcomeCode = "CANCEL_EVENT_ALREADY_STARTED"
	CancelEventMessageBlank         OutcomeCode = "CANCEL_EVENT_MESSAGE_MUST_NOT_BE_BLANK"
	CancelEventRefundBookingSuccess OutcomeCode = "CANCEL_EVENT_REFUND_BOOKING_SUCCESS"
	CancelEventRefundBookingError   OutcomeCode = "CANCEL_EVENT_REFUND_BOOKING_ERROR"
	CancelEventSuccess              OutcomeCode = "CANCEL_EVENT_SUCCESS"

	CreateEventUserNotStaff      OutcomeCode = "CREATE_EVENT_USER_NOT_STAFF"
	CreateEventTitleBlank        OutcomeCode = "CREATE_EVENT_TITLE_BLANK"
	CreateEventInvalidType       OutcomeCode = "CREATE_EVENT_INVALID_TYPE"
	CreateEventNegativePrice     OutcomeCode = "CREATE_EVENT_NEGATIVE_PRICE"
	CreateEventCapacityLessThan1 OutcomeCode = "CREATE_EVENT_CAPACITY_LESS_THAN_1"
	CreateEventStartAfterEnd     OutcomeCode = "CREATE_EVENT_START_AFTER_END"
	CreateEventInThePast         OutcomeCode = "CREATE_EVENT_IN_THE_PAST"
	CreateEventSuccess           OutcomeCode = "CREATE_EVENT_SUCCESS"

	InventoryAuditOK       OutcomeCode = "INVENTORY_AUDIT_OK"
	InventoryAuditMismatch OutcomeCode = "INVENTORY_AUDIT_MISMATCH"
)

// Outcome is the structured signal sent to the reporting boundary.
type Outcome struct {
	Code   OutcomeCode    `json:"code"`
	Params map[string]any `json:"params,omitempty"`
	At     time.Time      `json:"at"`
}

func (o Outcome) Success() bool {
	switch o.Code {
	case BookEventSuccess, CancelBookingSuccess, CancelEventSuccess,
		CancelEventRefundBookingSuccess, CreateEventSuccess, InventoryAuditOK:
		return true
	}
	return false
}

var failureCodes = map[Operation][]struct {
	err  error
	code OutcomeCode
}{
	OpBookEvent: {
		{ErrUserNotConsumer, BookEventUserNotConsumer},
		{ErrEventNotFound, BookEventEventNotFound},
		{ErrEventNotActive, BookEventEventNotActive},
		{ErrInvalidNumTickets, BookEventInvalidNumTickets},
		{ErrAlreadyOver, BookEventAlreadyOver},
		{ErrNotEnoughTicketsLeft, BookEventNotEnoughTicketsLeft},
		{ErrPaymentFailed, BookEventPaymentFailed},
	},
	OpCancelBooking: {
		{ErrUserNotConsumer, CancelBookingUserNotConsumer},
		{ErrBookingNotFound, CancelBookingBookingNotFound},
		{ErrUserIsNotBooker, CancelBookingUserIsNotBooker},
		{ErrBookingNotActive, CancelBookingBookingNotActive},
		{ErrNoCancellationsIn24h, CancelBookingNoCancellationsIn24h},
		{ErrRefundFailed, CancelBookingRefundFailed},
	},
	OpCancelEvent: {
		{ErrUserNotStaff, CancelEventUserNotStaff},
		{ErrEventNotFound, CancelEventEventNotFound},
		{ErrEventNotActive, CancelEventEventNotActive},
		{ErrAlreadyStarted, CancelEventAlreadyStarted},
		{ErrMessageBlank, CancelEventMessageBlank},
	},
	OpCreateEvent: {
		{ErrUserNotStaff, CreateEventUserNotStaff},
		{ErrTitleBlank, CreateEventTitleBlank},
		{ErrInvalidEventType, CreateEventInvalidType},
		{ErrNegativePrice, CreateEventNegativePrice},
		{ErrCapacityLessThan1, CreateEventCapacityLessThan1},
		{ErrStartAfterEnd, CreateEventStartAfterEnd},
		{ErrEventInThePast, CreateEventInThePast},
	},
}

// CodeFor maps a precondition or collaborator error of op to its outcome code.
// The second result is false for errors that have no stable code, such as
// storage failures.
func CodeFor(op Operation, err error) (OutcomeCode, bool) {
	for _, fc := range failureCodes[op] {
		if errors.Is(err, fc.err) {
			return fc.code, true
		}
	}
	return "", false
}
