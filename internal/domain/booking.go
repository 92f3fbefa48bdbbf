package domain

import "time"

type BookingStatus string

const (
	BookingStatusActive              BookingStatus = "Active"
	BookingStatusCancelledByConsumer BookingStatus = "CancelledByConsumer"
	BookingStatusCancelledByProvider BookingStatus = "CancelledByProvider"
)

type Booking struct {
	Number          int64         `json:"number"`
	ConsumerID      string        `json:"consumer_id"`
	EventNumber     int64         `json:"event_number"`
	NumTickets      int           `json:"num_tickets"`
	BookingDateTime time.Time     `json:"booking_date_time"`
	Status          BookingStatus `json:"status"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// BookedBy compares by user ID, not by pointer identity.
func (b *Booking) BookedBy(u *User) bool {
	return u != nil && b.ConsumerID == u.ID
}

// BookingRefund is the cascade outcome for a single booking of a cancelled event.
type BookingRefund struct {
	BookingNumber int64  `json:"booking_number"`
	ConsumerID    string `json:"consumer_id"`
	AmountInPence int64  `json:"amount_in_pence"`
	Free          bool   `json:"free"`
	Refunded      bool   `json:"refunded"`
}

type CancellationResult struct {
	Event   *Event          `json:"event"`
	Refunds []BookingRefund `json:"refunds"`
}

// FailedRefunds returns the bookings whose refund call reported failure.
func (r *CancellationResult) FailedRefunds() []BookingRefund {
	var failed []BookingRefund
	for _, ref := range r.Refunds {
		if !ref.Free && !ref.Refunded {
			failed = append(failed, ref)
		}
	}
	return failed
}
