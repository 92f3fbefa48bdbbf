package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
)

var errConnReset = errors.New("connection reset by peer")

// lossyConnector hands out connections whose every statement fails after the
// server may already have applied it.
type lossyConnector struct {
	calls atomic.Int32
}

func (c *lossyConnector) Connect(context.Context) (driver.Conn, error) { return lossyConn{c}, nil }
func (c *lossyConnector) Driver() driver.Driver                        { return nil }

type lossyConn struct {
	c *lossyConnector
}

func (lossyConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare not supported") }
func (lossyConn) Close() error                        { return nil }
func (lossyConn) Begin() (driver.Tx, error)           { return nil, errors.New("tx not supported") }

func (l lossyConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	l.c.calls.Add(1)
	return nil, errConnReset
}

func (l lossyConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	l.c.calls.Add(1)
	return nil, errConnReset
}

func newLossyDB(t *testing.T) (*dbpg.DB, *lossyConnector) {
	t.Helper()
	conn := &lossyConnector{}
	master := sql.OpenDB(conn)
	t.Cleanup(func() { _ = master.Close() })
	return &dbpg.DB{Master: master}, conn
}

func TestWrites_AreNotRetried(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		write func(db *dbpg.DB) error
	}{
		{"adjust tickets left", func(db *dbpg.DB) error {
			return NewEventRepo(db).AdjustTicketsLeft(ctx, 1, -2)
		}},
		{"create booking", func(db *dbpg.DB) error {
			return NewBookingRepo(db).Create(ctx, &domain.Booking{
				ConsumerID: "c1", EventNumber: 1, NumTickets: 2, BookingDateTime: now, Status: domain.BookingStatusActive,
			})
		}},
		{"create event", func(db *dbpg.DB) error {
			return NewEventRepo(db).Create(ctx, &domain.Event{
				OrganiserID: "o1", Title: "Gig", Type: domain.EventTypeMusic,
				StartDateTime: now, EndDateTime: now.Add(time.Hour),
				NumTicketsCap: 5, NumTicketsLeft: 5, Status: domain.EventStatusActive, CreatedAt: now,
			})
		}},
		{"update booking status", func(db *dbpg.DB) error {
			return NewBookingRepo(db).UpdateStatus(ctx, 1, domain.BookingStatusActive, domain.BookingStatusCancelledByConsumer)
		}},
		{"cancel event", func(db *dbpg.DB) error {
			return NewEventRepo(db).Cancel(ctx, 1)
		}},
		{"create user", func(db *dbpg.DB) error {
			return NewUserRepo(db).Create(ctx, &domain.User{ID: "u1", Role: domain.RoleConsumer, Email: "a@b.c", CreatedAt: now})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, conn := newLossyDB(t)

			err := tt.write(db)

			assert.ErrorIs(t, err, errConnReset)
			assert.Equal(t, int32(1), conn.calls.Load())
		})
	}
}
