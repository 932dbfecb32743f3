package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	AllowBooking(c *ginext.Context)
	EditBooking(c *ginext.Context)
	MarkRead(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	PublishBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	AddAttachment(c *ginext.Context)
	ListAttachments(c *ginext.Context)
	BookingHistory(c *ginext.Context)
	StreamBookingEvents(c *ginext.Context)

	CreateConcept(c *ginext.Context)
	UpdateConcept(c *ginext.Context)
	GetConcept(c *ginext.Context)
	ListUserConcepts(c *ginext.Context)

	ListListings(c *ginext.Context)

	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter builds the HTTP API. identity guards every route that acts on
// behalf of a user.
func InitRouter(mode string, h Handler, identity ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/concepts", h.ListUserConcepts)

		// Marketplace
		api.GET("/listings", h.ListListings)
		api.GET("/concepts/:id", h.GetConcept)
	}

	authed := api.Group("", identity)
	{
		// Concepts
		authed.POST("/concepts", h.CreateConcept)
		authed.PUT("/concepts/:id", h.UpdateConcept)

		// Bookings
		authed.POST("/bookings", h.CreateBooking)
		authed.GET("/bookings", h.ListBookings)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.PATCH("/bookings/:id", h.EditBooking)
		authed.POST("/bookings/:id/allow", h.AllowBooking)
		authed.POST("/bookings/:id/read", h.MarkRead)
		authed.POST("/bookings/:id/approve", h.ApproveBooking)
		authed.POST("/bookings/:id/publish", h.PublishBooking)
		authed.POST("/bookings/:id/reject", h.RejectBooking)
		authed.POST("/bookings/:id/cancel", h.CancelBooking)
		authed.POST("/bookings/:id/attachments", h.AddAttachment)
		authed.GET("/bookings/:id/attachments", h.ListAttachments)
		authed.GET("/bookings/:id/history", h.BookingHistory)
		authed.GET("/bookings/:id/events", h.StreamBookingEvents)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
