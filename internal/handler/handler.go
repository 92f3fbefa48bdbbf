package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/handler/dto"
	"github.com/stpnv0/EventTicketing/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, actor *domain.User, input domain.CreateEventInput) (*domain.Event, error)
	CancelEvent(ctx context.Context, actor *domain.User, eventNumber int64, message string) (*domain.CancellationResult, error)
	GetEvent(ctx context.Context, number int64) (*domain.Event, error)
	ListEvents(ctx context.Context, onlyBookable bool) ([]*domain.Event, error)
	ListEventBookings(ctx context.Context, actor *domain.User, eventNumber int64) ([]*domain.Booking, error)
}

type BookingSvc interface {
	BookEvent(ctx context.Context, actor *domain.User, eventNumber int64, numTickets int) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor *domain.User, bookingNumber int64) (bool, error)
	GetBooking(ctx context.Context, actor *domain.User, bookingNumber int64) (*domain.Booking, error)
	ListConsumerBookings(ctx context.Context, actor *domain.User) ([]*domain.Booking, error)
}

type UserSvc interface {
	RegisterConsumer(ctx context.Context, input domain.CreateConsumerInput) (*domain.User, error)
	RegisterOrganiser(ctx context.Context, input domain.CreateOrganiserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date_time format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:               req.Title,
		Type:                domain.EventType(req.Type),
		TicketPriceInPence:  req.TicketPriceInPence,
		VenueAddress:        req.VenueAddress,
		Description:         req.Description,
		StartDateTime:       start,
		EndDateTime:         end,
		HasSocialDistancing: req.HasSocialDistancing,
		HasAirFiltration:    req.HasAirFiltration,
		IsOutdoors:          req.IsOutdoors,
		NumTicketsCap:       req.NumTicketsCap,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.handleError(c, domain.OpCreateEvent, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	number, ok := parseNumber(c, "event")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), number)
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// ListEvents serves the catalog; ?bookable=true keeps only events that can
// still be booked.
func (h *Handler) ListEvents(c *ginext.Context) {
	onlyBookable, _ := strconv.ParseBool(c.Query("bookable"))

	events, err := h.eventService.ListEvents(c.Request.Context(), onlyBookable)
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListEventBookings(c *ginext.Context) {
	number, ok := parseNumber(c, "event")
	if !ok {
		return
	}

	bookings, err := h.eventService.ListEventBookings(c.Request.Context(), middleware.Actor(c), number)
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) CancelEvent(c *ginext.Context) {
	number, ok := parseNumber(c, "event")
	if !ok {
		return
	}

	var req dto.CancelEventRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.eventService.CancelEvent(c.Request.Context(), middleware.Actor(c), number, req.Message)
	if err != nil {
		h.handleError(c, domain.OpCancelEvent, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(result))
}

// Bookings

// BookEvent accepts an empty body; the engine then rejects the zero ticket
// count with its own code.
func (h *Handler) BookEvent(c *ginext.Context) {
	number, ok := parseNumber(c, "event")
	if !ok {
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.BookEvent(c.Request.Context(), middleware.Actor(c), number, req.NumTickets)
	if err != nil {
		h.handleError(c, domain.OpBookEvent, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	number, ok := parseNumber(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), middleware.Actor(c), number)
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	number, ok := parseNumber(c, "booking")
	if !ok {
		return
	}

	if _, err := h.bookingService.CancelBooking(c.Request.Context(), middleware.Actor(c), number); err != nil {
		h.handleError(c, domain.OpCancelBooking, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(domain.BookingStatusCancelledByConsumer)})
}

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListConsumerBookings(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Users

func (h *Handler) RegisterConsumer(c *ginext.Context) {
	var req dto.CreateConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.RegisterConsumer(c.Request.Context(), domain.CreateConsumerInput{
		Name:                req.Name,
		Email:               req.Email,
		PaymentAccountEmail: req.PaymentAccountEmail,
		PhoneNumber:         req.PhoneNumber,
		TelegramChatID:      req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) RegisterOrganiser(c *ginext.Context) {
	var req dto.CreateOrganiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.RegisterOrganiser(c.Request.Context(), domain.CreateOrganiserInput{
		OrgName:             req.OrgName,
		OrgAddress:          req.OrgAddress,
		Email:               req.Email,
		PaymentAccountEmail: req.PaymentAccountEmail,
	})
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, "", err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func parseNumber(c *ginext.Context, what string) (int64, bool) {
	n, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " number"})
		return 0, false
	}
	return n, true
}

// handleError maps engine and store errors to a status. Engine failures also
// carry their outcome code.
func (h *Handler) handleError(c *ginext.Context, op domain.Operation, err error) {
	c.Set("error", err.Error())

	resp := dto.ErrorResponse{Error: err.Error()}
	if code, ok := domain.CodeFor(op, err); ok {
		resp.Code = string(code)
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, resp)

	case errors.Is(err, domain.ErrUserNotConsumer),
		errors.Is(err, domain.ErrUserNotStaff),
		errors.Is(err, domain.ErrUserNotOrganiser),
		errors.Is(err, domain.ErrUserIsNotBooker):
		c.JSON(http.StatusForbidden, resp)

	case errors.Is(err, domain.ErrEventNotActive),
		errors.Is(err, domain.ErrNotEnoughTicketsLeft),
		errors.Is(err, domain.ErrAlreadyOver),
		errors.Is(err, domain.ErrAlreadyStarted),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrNoCancellationsIn24h),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, domain.ErrPaymentFailed),
		errors.Is(err, domain.ErrRefundFailed):
		c.JSON(http.StatusPaymentRequired, resp)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidNumTickets),
		errors.Is(err, domain.ErrMessageBlank):
		c.JSON(http.StatusBadRequest, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
