package dto

import (
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

type EventResponse struct {
	Number              int64  `json:"number"`
	OrganiserID         string `json:"organiser_id"`
	Title               string `json:"title"`
	Type                string `json:"type"`
	TicketPriceInPence  int64  `json:"ticket_price_in_pence"`
	VenueAddress        string `json:"venue_address"`
	Description         string `json:"description"`
	StartDateTime       string `json:"start_date_time"`
	EndDateTime         string `json:"end_date_time"`
	HasSocialDistancing bool   `json:"has_social_distancing"`
	HasAirFiltration    bool   `json:"has_air_filtration"`
	IsOutdoors          bool   `json:"is_outdoors"`
	NumTicketsCap       int    `json:"num_tickets_cap"`
	NumTicketsLeft      int    `json:"num_tickets_left"`
	Status              string `json:"status"`
}

type BookingResponse struct {
	Number          int64  `json:"number"`
	ConsumerID      string `json:"consumer_id"`
	EventNumber     int64  `json:"event_number"`
	NumTickets      int    `json:"num_tickets"`
	BookingDateTime string `json:"booking_date_time"`
	Status          string `json:"status"`
}

type UserResponse struct {
	ID                  string `json:"id"`
	Role                string `json:"role"`
	Email               string `json:"email"`
	PaymentAccountEmail string `json:"payment_account_email"`
	Name                string `json:"name,omitempty"`
	PhoneNumber         string `json:"phone_number,omitempty"`
	TelegramChatID      *int64 `json:"telegram_chat_id,omitempty"`
	OrgName             string `json:"org_name,omitempty"`
	OrgAddress          string `json:"org_address,omitempty"`
	CreatedAt           string `json:"created_at"`
}

type RefundResponse struct {
	BookingNumber int64  `json:"booking_number"`
	ConsumerID    string `json:"consumer_id"`
	AmountInPence int64  `json:"amount_in_pence"`
	Refunded      bool   `json:"refunded"`
}

type CancellationResponse struct {
	Event         EventResponse    `json:"event"`
	Refunds       []RefundResponse `json:"refunds"`
	FailedRefunds int              `json:"failed_refunds"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		Number:              e.Number,
		OrganiserID:         e.OrganiserID,
		Title:               e.Title,
		Type:                string(e.Type),
		TicketPriceInPence:  e.TicketPriceInPence,
		VenueAddress:        e.VenueAddress,
		Description:         e.Description,
		StartDateTime:       e.StartDateTime.Format(time.RFC3339),
		EndDateTime:         e.EndDateTime.Format(time.RFC3339),
		HasSocialDistancing: e.HasSocialDistancing,
		HasAirFiltration:    e.HasAirFiltration,
		IsOutdoors:          e.IsOutdoors,
		NumTicketsCap:       e.NumTicketsCap,
		NumTicketsLeft:      e.NumTicketsLeft,
		Status:              string(e.Status),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		Number:          b.Number,
		ConsumerID:      b.ConsumerID,
		EventNumber:     b.EventNumber,
		NumTickets:      b.NumTickets,
		BookingDateTime: b.BookingDateTime.Format(time.RFC3339),
		Status:          string(b.Status),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Role:                string(u.Role),
		Email:               u.Email,
		PaymentAccountEmail: u.PaymentAccountEmail,
		Name:                u.Name,
		PhoneNumber:         u.PhoneNumber,
		TelegramChatID:      u.TelegramChatID,
		OrgName:             u.OrgName,
		OrgAddress:          u.OrgAddress,
		CreatedAt:           u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCancellationResponse(r *domain.CancellationResult) CancellationResponse {
	refunds := make([]RefundResponse, 0, len(r.Refunds))
	for _, rf := range r.Refunds {
		refunds = append(refunds, RefundResponse{
			BookingNumber: rf.BookingNumber,
			ConsumerID:    rf.ConsumerID,
			AmountInPence: rf.AmountInPence,
			Refunded:      rf.Refunded || rf.Free,
		})
	}

	return CancellationResponse{
		Event:         ToEventResponse(r.Event),
		Refunds:       refunds,
		FailedRefunds: len(r.FailedRefunds()),
	}
}
