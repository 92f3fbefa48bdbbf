package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	CancelEvent(c *ginext.Context)
	BookEvent(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	RegisterConsumer(c *ginext.Context)
	RegisterOrganiser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:number", h.GetEvent)
		api.GET("/events/:number/bookings", h.ListEventBookings)
		api.POST("/events/:number/cancel", h.CancelEvent)

		// Bookings
		api.POST("/events/:number/book", h.BookEvent)
		api.GET("/bookings/:number", h.GetBooking)
		api.POST("/bookings/:number/cancel", h.CancelBooking)
		api.GET("/me/bookings", h.MyBookings)

		// Users
		api.POST("/users/consumers", h.RegisterConsumer)
		api.POST("/users/organisers", h.RegisterOrganiser)
		api.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
