package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `number, consumer_id, event_number, num_tickets, booking_date_time, status`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.Number, &b.ConsumerID, &b.EventNumber, &b.NumTickets, &b.BookingDateTime, &b.Status); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (consumer_id, event_number, num_tickets, booking_date_time, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING number`

	err := r.db.Master.QueryRowContext(ctx, query,
		b.ConsumerID, b.EventNumber, b.NumTickets, b.BookingDateTime, b.Status,
	).Scan(&b.Number)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByNumber(ctx context.Context, number int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE number = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, number)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus is a compare-and-set on the booking status.
func (r *BookingRepository) UpdateStatus(ctx context.Context, number int64, from, to domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $3 WHERE number = $1 AND status = $2`

	res, err := r.db.ExecContext(ctx, query, number, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		if _, err = r.GetByNumber(ctx, number); err != nil {
			return err
		}
		return domain.ErrBookingNotActive
	}

	return nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventNumber int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_number = $1
			  ORDER BY number`

	return r.list(ctx, query, eventNumber)
}

func (r *BookingRepository) ListByConsumer(ctx context.Context, consumerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE consumer_id = $1
			  ORDER BY number`

	return r.list(ctx, query, consumerID)
}

func (r *BookingRepository) list(ctx context.Context, query string, arg any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
