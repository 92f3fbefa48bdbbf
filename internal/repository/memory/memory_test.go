package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveEvent(cap int) *domain.Event {
	start := time.Now().Add(48 * time.Hour)
	return &domain.Event{
		OrganiserID:    "o1",
		Title:          "Gig",
		Type:           domain.EventTypeMusic,
		StartDateTime:  start,
		EndDateTime:    start.Add(time.Hour),
		NumTicketsCap:  cap,
		NumTicketsLeft: cap,
		Status:         domain.EventStatusActive,
	}
}

func TestEventRepository_CreateAssignsNumbers(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()

	first, second := newActiveEvent(1), newActiveEvent(2)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, int64(2), second.Number)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.Number, events[0].Number)
}

func TestEventRepository_ReturnsCopies(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()
	e := newActiveEvent(5)
	require.NoError(t, repo.Create(ctx, e))

	e.NumTicketsLeft = 0
	got, err := repo.GetByNumber(ctx, e.Number)
	require.NoError(t, err)
	assert.Equal(t, 5, got.NumTicketsLeft)

	got.Status = domain.EventStatusCancelled
	again, err := repo.GetByNumber(ctx, e.Number)
	require.NoError(t, err)
	assert.True(t, again.IsActive())
}

func TestEventRepository_AdjustTicketsLeft(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()
	e := newActiveEvent(3)
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, repo.AdjustTicketsLeft(ctx, e.Number, -3))
	assert.ErrorIs(t, repo.AdjustTicketsLeft(ctx, e.Number, -1), domain.ErrInventoryOutOfBounds)
	require.NoError(t, repo.AdjustTicketsLeft(ctx, e.Number, 3))
	assert.ErrorIs(t, repo.AdjustTicketsLeft(ctx, e.Number, 1), domain.ErrInventoryOutOfBounds)
	assert.ErrorIs(t, repo.AdjustTicketsLeft(ctx, 99, 1), domain.ErrEventNotFound)

	require.NoError(t, repo.Cancel(ctx, e.Number))
	assert.ErrorIs(t, repo.AdjustTicketsLeft(ctx, e.Number, -1), domain.ErrEventNotActive)
}

func TestEventRepository_Cancel(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()
	e := newActiveEvent(3)
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, repo.Cancel(ctx, e.Number))
	assert.ErrorIs(t, repo.Cancel(ctx, e.Number), domain.ErrEventNotActive)
	assert.ErrorIs(t, repo.Cancel(ctx, 99), domain.ErrEventNotFound)

	got, err := repo.GetByNumber(ctx, e.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, got.Status)
}

func TestBookingRepository_Indexes(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	for _, b := range []*domain.Booking{
		{ConsumerID: "alice", EventNumber: 1, NumTickets: 1, Status: domain.BookingStatusActive},
		{ConsumerID: "bob", EventNumber: 1, NumTickets: 2, Status: domain.BookingStatusActive},
		{ConsumerID: "alice", EventNumber: 2, NumTickets: 3, Status: domain.BookingStatusActive},
	} {
		require.NoError(t, repo.Create(ctx, b))
	}

	byEvent, err := repo.ListByEvent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byEvent, 2)
	assert.Equal(t, int64(1), byEvent[0].Number)
	assert.Equal(t, int64(2), byEvent[1].Number)

	byConsumer, err := repo.ListByConsumer(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, byConsumer, 2)
	assert.Equal(t, int64(3), byConsumer[1].Number)

	none, err := repo.ListByEvent(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()
	b := &domain.Booking{ConsumerID: "alice", EventNumber: 1, NumTickets: 1, Status: domain.BookingStatusActive}
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.UpdateStatus(ctx, b.Number, domain.BookingStatusActive, domain.BookingStatusCancelledByConsumer))

	err := repo.UpdateStatus(ctx, b.Number, domain.BookingStatusActive, domain.BookingStatusCancelledByProvider)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)

	err = repo.UpdateStatus(ctx, 99, domain.BookingStatusActive, domain.BookingStatusCancelledByProvider)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	got, err := repo.GetByNumber(ctx, b.Number)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelledByConsumer, got.Status)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	u := &domain.User{ID: "u1", Role: domain.RoleConsumer, Email: "a@example.com", Name: "A"}
	require.NoError(t, repo.Create(ctx, u))
	assert.ErrorIs(t, repo.Create(ctx, &domain.User{ID: "u2", Email: "a@example.com"}), domain.ErrEmailTaken)

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = repo.GetByEmail(ctx, "b@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
