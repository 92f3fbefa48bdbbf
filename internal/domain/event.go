package domain

import "time"

type EventType string

const (
	EventTypeMusic   EventType = "MUSIC"
	EventTypeTheatre EventType = "THEATRE"
	EventTypeDance   EventType = "DANCE"
	EventTypeMovie   EventType = "MOVIE"
	EventTypeSports  EventType = "SPORTS"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeMusic, EventTypeTheatre, EventTypeDance, EventTypeMovie, EventTypeSports:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// CancellationWindow is how long before the start consumers may still cancel.
const CancellationWindow = 24 * time.Hour

type Event struct {
	Number              int64       `json:"number"`
	OrganiserID         string      `json:"organiser_id"`
	Title               string      `json:"title"`
	Type                EventType   `json:"type"`
	TicketPriceInPence  int64       `json:"ticket_price_in_pence"`
	VenueAddress        string      `json:"venue_address"`
	Description         string      `json:"description"`
	StartDateTime       time.Time   `json:"start_date_time"`
	EndDateTime         time.Time   `json:"end_date_time"`
	HasSocialDistancing bool        `json:"has_social_distancing"`
	HasAirFiltration    bool        `json:"has_air_filtration"`
	IsOutdoors          bool        `json:"is_outdoors"`
	NumTicketsCap       int         `json:"num_tickets_cap"`
	NumTicketsLeft      int         `json:"num_tickets_left"`
	Status              EventStatus `json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
}

func (e *Event) IsActive() bool {
	return e.Status == EventStatusActive
}

func (e *Event) IsFree() bool {
	return e.TicketPriceInPence <= 0
}

func (e *Event) IsOver(now time.Time) bool {
	return !e.EndDateTime.After(now)
}

func (e *Event) HasStarted(now time.Time) bool {
	return e.StartDateTime.Before(now)
}

// CancellableAt reports whether a consumer booking may still be cancelled at now.
func (e *Event) CancellableAt(now time.Time) bool {
	return now.Add(CancellationWindow).Before(e.StartDateTime)
}

func (e *Event) TotalPrice(numTickets int) int64 {
	return int64(numTickets) * e.TicketPriceInPence
}

type CreateEventInput struct {
	Title               string
	Type                EventType
	TicketPriceInPence  int64
	VenueAddress        string
	Description         string
	StartDateTime       time.Time
	EndDateTime         time.Time
	HasSocialDistancing bool
	HasAirFiltration    bool
	IsOutdoors          bool
	NumTicketsCap       int
}
