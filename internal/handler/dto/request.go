package dto

type CreateConsumerRequest struct {
	Name                string `json:"name" binding:"required"`
	Email               string `json:"email" binding:"required"`
	PaymentAccountEmail string `json:"payment_account_email" binding:"required"`
	PhoneNumber         string `json:"phone_number"`
	TelegramChatID      *int64 `json:"telegram_chat_id"`
}

type CreateOrganiserRequest struct {
	OrgName             string `json:"org_name" binding:"required"`
	OrgAddress          string `json:"org_address" binding:"required"`
	Email               string `json:"email" binding:"required"`
	PaymentAccountEmail string `json:"payment_account_email" binding:"required"`
}

// CreateEventRequest leaves field rules to the engine so that every rejected
// event gets its own outcome code; only the dates must parse.
type CreateEventRequest struct {
	Title               string `json:"title"`
	Type                string `json:"type"`
	TicketPriceInPence  int64  `json:"ticket_price_in_pence"`
	VenueAddress        string `json:"venue_address"`
	Description         string `json:"description"`
	StartDateTime       string `json:"start_date_time" binding:"required"`
	EndDateTime         string `json:"end_date_time" binding:"required"`
	HasSocialDistancing bool   `json:"has_social_distancing"`
	HasAirFiltration    bool   `json:"has_air_filtration"`
	IsOutdoors          bool   `json:"is_outdoors"`
	NumTicketsCap       int    `json:"num_tickets_cap"`
}

type BookRequest struct {
	NumTickets int `json:"num_tickets"`
}

type CancelEventRequest struct {
	Message string `json:"message"`
}
