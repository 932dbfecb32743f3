package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/handler/dto"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/middleware"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const streamKeepAlive = 15 * time.Second

type BookingSvc interface {
	Request(ctx context.Context, senderID string, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id, userID string, opts negotiation.ViewOptions) (*negotiation.BookingView, error)
	ListByUser(ctx context.Context, userID string) ([]*negotiation.BookingView, error)
	Allow(ctx context.Context, id, userID string, contact *domain.ContactInfo) (*domain.Booking, error)
	Edit(ctx context.Context, id, userID string, change domain.TermsPatch) (*domain.Booking, error)
	MarkRead(ctx context.Context, id, userID string) (*domain.Booking, error)
	Approve(ctx context.Context, id, userID string) (*domain.Booking, error)
	Publish(ctx context.Context, id, userID string) (*domain.Booking, error)
	Reject(ctx context.Context, id, userID string) error
	Cancel(ctx context.Context, id, userID string, c negotiation.Confirmation) error
	AddAttachment(ctx context.Context, id, userID string, input domain.AddAttachmentInput) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, id, userID string) ([]*domain.Attachment, error)
	History(ctx context.Context, id, userID string) ([]*domain.BookingChange, error)
}

type ConceptSvc interface {
	Create(ctx context.Context, ownerID string, input domain.ConceptInput) (*domain.Concept, error)
	Update(ctx context.Context, id, ownerID string, input domain.ConceptInput) (*domain.Concept, error)
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Concept, error)
}

type ListingSvc interface {
	List(ctx context.Context, limit, offset int) ([]*domain.Listing, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type EventStream interface {
	Subscribe(bookingID string) (<-chan domain.BookingEvent, func())
}

type Handler struct {
	bookingService BookingSvc
	conceptService ConceptSvc
	listingService ListingSvc
	userService    UserSvc
	stream         EventStream
}

func NewHandler(
	bookingService BookingSvc,
	conceptService ConceptSvc,
	listingService ListingSvc,
	userService UserSvc,
	stream EventStream,
) *Handler {
	return &Handler{
		bookingService: bookingService,
		conceptService: conceptService,
		listingService: listingService,
		userService:    userService,
		stream:         stream,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	userID := middleware.UserID(c)
	booking, err := h.bookingService.Request(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toView(booking, userID))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	showAll, _ := strconv.ParseBool(c.Query("show_all"))
	view, err := h.bookingService.Get(c.Request.Context(), id, middleware.UserID(c),
		negotiation.ViewOptions{ForceShowAll: showAll})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(*view))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	views, err := h.bookingService.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToBookingResponse(*v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AllowBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.AllowRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	userID := middleware.UserID(c)
	booking, err := h.bookingService.Allow(c.Request.Context(), id, userID, req.ContactInfo.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toView(booking, userID))
}

func (h *Handler) EditBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.handleError(c, err)
		return
	}

	userID := middleware.UserID(c)
	booking, err := h.bookingService.Edit(c.Request.Context(), id, userID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toView(booking, userID))
}

func (h *Handler) MarkRead(c *ginext.Context) {
	h.transition(c, h.bookingService.MarkRead)
}

func (h *Handler) ApproveBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Approve)
}

func (h *Handler) PublishBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Publish)
}

func (h *Handler) transition(c *ginext.Context, op func(ctx context.Context, id, userID string) (*domain.Booking, error)) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	userID := middleware.UserID(c)
	booking, err := op(c.Request.Context(), id, userID)
	if errors.Is(err, domain.ErrListingDeferred) && booking != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusAccepted, dto.DeferredResponse{
			Booking: toView(booking, userID),
			Warning: err.Error(),
		})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toView(booking, userID))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	if err := h.bookingService.Reject(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.CancelRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	confirm := negotiation.Confirmation{Acknowledged: req.Confirm, Title: req.ConfirmTitle}
	if err := h.bookingService.Cancel(c.Request.Context(), id, middleware.UserID(c), confirm); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) AddAttachment(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.AttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := h.bookingService.AddAttachment(c.Request.Context(), id, middleware.UserID(c), domain.AddAttachmentInput{
		FileName: req.FileName,
		FileURL:  req.FileURL,
		Kind:     req.Kind,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttachmentResponse(a))
}

func (h *Handler) ListAttachments(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	attachments, err := h.bookingService.ListAttachments(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		resp = append(resp, dto.ToAttachmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) BookingHistory(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	changes, err := h.bookingService.History(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ChangeResponse, 0, len(changes))
	for _, ch := range changes {
		resp = append(resp, dto.ToChangeResponse(ch))
	}

	c.JSON(http.StatusOK, resp)
}

// StreamBookingEvents pushes change events of one booking to a party of it
// as server-sent events until the client goes away.
func (h *Handler) StreamBookingEvents(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	// подписываемся только после проверки, что пользователь участник брони
	if _, err := h.bookingService.Get(c.Request.Context(), id, middleware.UserID(c), negotiation.ViewOptions{}); err != nil {
		h.handleError(c, err)
		return
	}

	// ошибка означает, что writer не поддерживает дедлайны; тогда поток живёт до WriteTimeout
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	events, cancel := h.stream.Subscribe(id)
	defer cancel()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case e, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(e.Type), e)
			return e.Type != domain.BookingEventDeleted
		case <-keepAlive.C:
			c.SSEvent("ping", ginext.H{"at": time.Now().UTC().Format(time.RFC3339)})
			return true
		}
	})
}

// Concepts

func (h *Handler) CreateConcept(c *ginext.Context) {
	var req dto.ConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	concept, err := h.conceptService.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConceptResponse(concept))
}

func (h *Handler) UpdateConcept(c *ginext.Context) {
	id, ok := pathID(c, "concept")
	if !ok {
		return
	}

	var req dto.ConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	concept, err := h.conceptService.Update(c.Request.Context(), id, middleware.UserID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

func (h *Handler) GetConcept(c *ginext.Context) {
	id, ok := pathID(c, "concept")
	if !ok {
		return
	}

	concept, err := h.conceptService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConceptResponse(concept))
}

func (h *Handler) ListUserConcepts(c *ginext.Context) {
	ownerID, ok := pathID(c, "user")
	if !ok {
		return
	}

	concepts, err := h.conceptService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConceptResponse, 0, len(concepts))
	for _, co := range concepts {
		resp = append(resp, dto.ToConceptResponse(co))
	}

	c.JSON(http.StatusOK, resp)
}

// Listings

func (h *Handler) ListListings(c *ginext.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offset"})
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToListingResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathID(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrConceptNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPreconditionFailed):
		c.JSON(http.StatusPreconditionFailed, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrImmutableState),
		errors.Is(err, domain.ErrStaleBooking):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPersistence):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// toView redacts a booking returned by a mutation for the user who made it.
func toView(b *domain.Booking, userID string) dto.BookingResponse {
	viewer, err := b.PartyOf(userID)
	if err != nil {
		viewer = domain.PartySender
	}
	return dto.ToBookingResponse(negotiation.Redact(b, viewer, negotiation.ViewOptions{}))
}

func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

// bindOptionalJSON binds the body when there is one. Confirmation and allow
// requests may come without a body.
func bindOptionalJSON(c *ginext.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func queryInt(c *ginext.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
