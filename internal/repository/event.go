package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `number, organiser_id, title, type, ticket_price_in_pence, venue_address, description,
		start_date_time, end_date_time, has_social_distancing, has_air_filtration, is_outdoors,
		num_tickets_cap, num_tickets_left, status, created_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// defaultStrategy is used for reads only. Writes run once: none of them can be
// replayed safely after a commit the caller did not see.
func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.Number, &e.OrganiserID, &e.Title, &e.Type, &e.TicketPriceInPence, &e.VenueAddress, &e.Description,
		&e.StartDateTime, &e.EndDateTime, &e.HasSocialDistancing, &e.HasAirFiltration, &e.IsOutdoors,
		&e.NumTicketsCap, &e.NumTicketsLeft, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (organiser_id, title, type, ticket_price_in_pence, venue_address, description,
			  	start_date_time, end_date_time, has_social_distancing, has_air_filtration, is_outdoors,
			  	num_tickets_cap, num_tickets_left, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING number`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		e.OrganiserID, e.Title, e.Type, e.TicketPriceInPence, e.VenueAddress, e.Description,
		e.StartDateTime, e.EndDateTime, e.HasSocialDistancing, e.HasAirFiltration, e.IsOutdoors,
		e.NumTicketsCap, e.NumTicketsLeft, e.Status, e.CreatedAt,
	).Scan(&e.Number)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByNumber(ctx context.Context, number int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE number = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, number)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// AdjustTicketsLeft changes the inventory of an active event in one guarded
// UPDATE so the bounds hold even without the caller's lock.
func (r *EventRepository) AdjustTicketsLeft(ctx context.Context, number int64, delta int) error {
	query := `UPDATE events
			  SET num_tickets_left = num_tickets_left + $2
			  WHERE number = $1
			    AND status = $3
			    AND num_tickets_left + $2 BETWEEN 0 AND num_tickets_cap`

	// relative update, a retry after an unseen commit would apply delta twice
	res, err := r.db.ExecContext(ctx, query, number, delta, domain.EventStatusActive)
	if err != nil {
		return fmt.Errorf("adjust tickets left: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust tickets rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// find out why nothing matched
	e, err := r.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if !e.IsActive() {
		return domain.ErrEventNotActive
	}
	return domain.ErrInventoryOutOfBounds
}

func (r *EventRepository) Cancel(ctx context.Context, number int64) error {
	query := `UPDATE events SET status = $2 WHERE number = $1 AND status = $3`

	res, err := r.db.ExecContext(ctx, query,
		number, domain.EventStatusCancelled, domain.EventStatusActive,
	)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel event rows affected: %w", err)
	}
	if affected == 0 {
		if _, err = r.GetByNumber(ctx, number); err != nil {
			return err
		}
		return domain.ErrEventNotActive
	}

	return nil
}
