package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUserNotConsumer      = errors.New("user is not a consumer")
	ErrUserNotStaff         = errors.New("user is not an organiser")
	ErrUserNotOrganiser     = errors.New("user is not the organiser of this event")
	ErrUserIsNotBooker      = errors.New("user did not make this booking")
	ErrEventNotActive       = errors.New("event is not active")
	ErrInvalidNumTickets    = errors.New("number of tickets must be at least 1")
	ErrAlreadyOver          = errors.New("event is already over")
	ErrAlreadyStarted       = errors.New("event has already started")
	ErrNotEnoughTicketsLeft = errors.New("not enough tickets left")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrRefundFailed         = errors.New("refund failed")
	ErrBookingNotActive     = errors.New("booking is not active")
	ErrNoCancellationsIn24h = errors.New("bookings cannot be cancelled within 24h of the event start")
	ErrMessageBlank         = errors.New("organiser message must not be blank")
	ErrInventoryOutOfBounds = errors.New("ticket inventory out of bounds")
)

var (
	ErrTitleBlank        = errors.New("title must not be blank")
	ErrNegativePrice     = errors.New("ticket price must not be negative")
	ErrCapacityLessThan1 = errors.New("ticket cap must be at least 1")
	ErrStartAfterEnd     = errors.New("event start must not be after its end")
	ErrEventInThePast    = errors.New("event must start in the future")
	ErrInvalidEventType  = errors.New("unknown event type")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
