package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		err    error
		want   OutcomeCode
		wantOK bool
	}{
		{"plain sentinel", OpBookEvent, ErrPaymentFailed, BookEventPaymentFailed, true},
		{"wrapped sentinel", OpBookEvent, fmt.Errorf("get event: %w", ErrEventNotFound), BookEventEventNotFound, true},
		{"same error different operation", OpCancelEvent, ErrEventNotActive, CancelEventEventNotActive, true},
		{"validation chain", OpCreateEvent, fmt.Errorf("%w: %w", ErrValidation, ErrStartAfterEnd), CreateEventStartAfterEnd, true},
		{"error from another operation", OpBookEvent, ErrMessageBlank, "", false},
		{"storage error", OpCancelBooking, errors.New("connection refused"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CodeFor(tt.op, tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutcome_Success(t *testing.T) {
	assert.True(t, Outcome{Code: BookEventSuccess}.Success())
	assert.True(t, Outcome{Code: CancelEventRefundBookingSuccess}.Success())
	assert.False(t, Outcome{Code: CancelEventRefundBookingError}.Success())
	assert.False(t, Outcome{Code: CancelBookingNoCancellationsIn24h}.Success())
}

func TestEvent_TimeRules(t *testing.T) {
	now := time.Date(2026, time.May, 1, 18, 0, 0, 0, time.UTC)
	e := &Event{
		StartDateTime: now.Add(CancellationWindow + time.Second),
		EndDateTime:   now.Add(CancellationWindow + 2*time.Hour),
	}

	assert.True(t, e.CancellableAt(now))
	assert.False(t, e.CancellableAt(now.Add(time.Second)), "exactly 24h before start")
	assert.False(t, e.HasStarted(now))
	assert.False(t, e.HasStarted(e.StartDateTime))
	assert.True(t, e.HasStarted(e.StartDateTime.Add(time.Nanosecond)))
	assert.False(t, e.IsOver(now))
	assert.True(t, e.IsOver(e.EndDateTime))
}

func TestEvent_Pricing(t *testing.T) {
	free := &Event{TicketPriceInPence: 0}
	paid := &Event{TicketPriceInPence: 1250}

	assert.True(t, free.IsFree())
	assert.False(t, paid.IsFree())
	assert.Equal(t, int64(3750), paid.TotalPrice(3))
}

func TestUser_Roles(t *testing.T) {
	var nobody *User
	consumer := &User{ID: "c", Role: RoleConsumer}
	organiser := &User{ID: "o", Role: RoleOrganiser}

	assert.False(t, nobody.IsConsumer())
	assert.False(t, nobody.IsOrganiser())
	assert.True(t, consumer.IsConsumer())
	assert.False(t, consumer.IsOrganiser())
	assert.True(t, organiser.IsOrganiser())
}

func TestBooking_BookedBy(t *testing.T) {
	b := &Booking{ConsumerID: "c"}

	assert.True(t, b.BookedBy(&User{ID: "c", Role: RoleConsumer}))
	assert.False(t, b.BookedBy(&User{ID: "o", Role: RoleOrganiser}))
	assert.False(t, b.BookedBy(nil))
}

func TestCancellationResult_FailedRefunds(t *testing.T) {
	r := &CancellationResult{Refunds: []BookingRefund{
		{BookingNumber: 1, Refunded: true},
		{BookingNumber: 2, Free: true},
		{BookingNumber: 3},
	}}

	failed := r.FailedRefunds()
	if assert.Len(t, failed, 1) {
		assert.Equal(t, int64(3), failed[0].BookingNumber)
	}
}
