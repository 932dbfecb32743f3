package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// utcNow is the service clock. Postgres keeps microseconds, so anything
// compared against a stored timestamp must not carry more.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	conceptRepo ports.ConceptRepo
	userRepo    ports.UserRepo
	pipeline    *PublicationPipeline
	notifier    ports.BookingNotifier
	events      ports.EventPublisher
	policy      negotiation.ReapprovalPolicy
	logger      logger.Logger

	now      func() time.Time
	dispatch func(func())
	inflight sync.WaitGroup
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	conceptRepo ports.ConceptRepo,
	userRepo ports.UserRepo,
	pipeline *PublicationPipeline,
	notifier ports.BookingNotifier,
	events ports.EventPublisher,
	policy negotiation.ReapprovalPolicy,
	logger logger.Logger,
) *BookingService {
	s := &BookingService{
		bookingRepo: bookingRepo,
		conceptRepo: conceptRepo,
		userRepo:    userRepo,
		pipeline:    pipeline,
		notifier:    notifier,
		events:      events,
		policy:      policy,
		logger:      logger,
		now:         utcNow,
	}
	s.dispatch = func(f func()) {
		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()
			f()
		}()
	}
	return s
}

// Wait blocks until the notifications already dispatched are delivered or
// ctx is done.
func (s *BookingService) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Request creates a booking request from senderID to the receiver named in
// the input. The booking starts pending.
func (s *BookingService) Request(ctx context.Context, senderID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if senderID == "" {
		return nil, domain.ErrNotAuthorized
	}
	if input.ReceiverID == "" {
		return nil, fmt.Errorf("%w: receiver_id is required", domain.ErrValidation)
	}
	if senderID == input.ReceiverID {
		return nil, domain.ErrSameParty
	}
	if err := negotiation.ValidateTerms(input.Terms); err != nil {
		return nil, err
	}
	if input.SenderContactInfo != nil {
		if err := negotiation.Validate(input.SenderContactInfo); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepo.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, fmt.Errorf("check receiver: %w", err)
	}

	conceptIDs, err := s.checkConcepts(ctx, input.ReceiverID, input.ConceptIDs)
	if err != nil {
		return nil, err
	}

	public := true
	if input.IsPublicAfterApproval != nil {
		public = *input.IsPublicAfterApproval
	}

	now := s.now()
	booking := &domain.Booking{
		ID:                    uuid.New().String(),
		SenderID:              senderID,
		ReceiverID:            input.ReceiverID,
		Status:                domain.BookingStatusPending,
		ConceptIDs:            conceptIDs,
		BookingTerms:          input.Terms,
		IsPublicAfterApproval: public,
		LastModifiedBy:        senderID,
		LastModifiedAt:        now,
		CreatedAt:             now,
	}
	if !input.SenderContactInfo.IsEmpty() {
		booking.SenderContactInfo = input.SenderContactInfo
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking requested",
		logger.String("booking_id", booking.ID),
		logger.String("sender_id", senderID),
		logger.String("receiver_id", input.ReceiverID),
	)

	s.announce(ctx, booking, domain.PartySender, domain.BookingEventCreated, domain.NotificationBookingRequested)
	return booking, nil
}

func (s *BookingService) checkConcepts(ctx context.Context, receiverID string, ids []string) ([]string, error) {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		c, err := s.conceptRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check concept %s: %w", id, err)
		}
		if c.OwnerID != receiverID {
			return nil, fmt.Errorf("%w: concept %s does not belong to the receiver", domain.ErrValidation, id)
		}
		out = append(out, id)
	}
	return out, nil
}

// Get returns the booking as userID is allowed to see it.
func (s *BookingService) Get(ctx context.Context, id, userID string, opts negotiation.ViewOptions) (*negotiation.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	viewer, err := b.PartyOf(userID)
	if err != nil {
		return nil, err
	}
	view := negotiation.Redact(b, viewer, opts)
	return &view, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*negotiation.BookingView, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	views := make([]*negotiation.BookingView, 0, len(bookings))
	for _, b := range bookings {
		viewer, err := b.PartyOf(userID)
		if err != nil {
			continue
		}
		view := negotiation.Redact(b, viewer, negotiation.ViewOptions{})
		views = append(views, &view)
	}
	return views, nil
}

// Allow accepts a pending request on behalf of the receiver.
func (s *BookingService) Allow(ctx context.Context, id, userID string, contact *domain.ContactInfo) (*domain.Booking, error) {
	if contact != nil {
		if err := negotiation.Validate(contact); err != nil {
			return nil, err
		}
	}

	before, after, err := s.mutate(ctx, id, userID, "allow", false,
		func(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error) {
			return negotiation.Allow(b, actor, contact, s.now())
		})
	if err != nil {
		return nil, err
	}

	s.logTransition("booking allowed", before, after, domain.PartyReceiver)
	s.announce(ctx, after, domain.PartyReceiver, domain.BookingEventUpdated, domain.NotificationBookingAllowed)
	return after, nil
}

// Edit changes negotiable fields. Concurrent edits are last-write-wins per
// changed column; approval resets are always computed from the record read
// right before the write.
func (s *BookingService) Edit(ctx context.Context, id, userID string, change domain.TermsPatch) (*domain.Booking, error) {
	var (
		editor domain.Party
		result negotiation.EditResult
	)
	before, after, err := s.mutate(ctx, id, userID, "edit", false,
		func(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error) {
			editor = actor
			res, err := negotiation.Edit(b, actor, change, s.now(), s.policy)
			result = res
			return res.Patch, err
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking edited",
		logger.String("booking_id", id),
		logger.String("editor", string(editor)),
		logger.Any("fields", change.Fields()),
		logger.String("from", string(before.Status)),
		logger.String("to", string(after.Status)),
	)

	kind := domain.NotificationTermsChanged
	if result.Reapproval.WasReset(editor.Other()) {
		kind = domain.NotificationApprovalReset
	}
	s.announce(ctx, after, editor, domain.BookingEventUpdated, kind)
	return after, nil
}

// MarkRead records that userID has reviewed the current agreement.
func (s *BookingService) MarkRead(ctx context.Context, id, userID string) (*domain.Booking, error) {
	_, after, err := s.mutate(ctx, id, userID, "mark read", true,
		func(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error) {
			return negotiation.MarkRead(b, actor)
		})
	if err != nil {
		return nil, err
	}
	return after, nil
}

// Approve records userID's approval of the current terms.
func (s *BookingService) Approve(ctx context.Context, id, userID string) (*domain.Booking, error) {
	var approver domain.Party
	before, after, err := s.mutate(ctx, id, userID, "approve", true,
		func(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error) {
			approver = actor
			return negotiation.Approve(b, actor, s.now())
		})
	if err != nil {
		return nil, err
	}

	s.logTransition("booking approved", before, after, approver)
	s.announce(ctx, after, approver, domain.BookingEventUpdated, domain.NotificationBookingApproved)
	return after, nil
}

// Publish runs the publication pipeline for userID. A listing failure after
// the booking went public is returned as domain.ErrListingDeferred together
// with the published booking.
func (s *BookingService) Publish(ctx context.Context, id, userID string) (*domain.Booking, error) {
	res, err := s.pipeline.Publish(ctx, id, userID)
	if res == nil {
		return nil, err
	}
	if res.Completed {
		s.logger.Info("booking published",
			logger.String("booking_id", id),
			logger.String("status", string(res.Booking.Status)),
			logger.String("actor", string(res.Actor)),
		)
		s.announce(ctx, res.Booking, res.Actor, domain.BookingEventPublished, domain.NotificationBookingPublished)
	} else if !res.Noop {
		s.announce(ctx, res.Booking, res.Actor, domain.BookingEventUpdated, "")
	}
	return res.Booking, err
}

// Reject permanently deletes a pending request. Only the receiver may reject.
func (s *BookingService) Reject(ctx context.Context, id, userID string) error {
	return s.remove(ctx, id, userID, negotiation.RemovalReject, negotiation.Confirmation{Acknowledged: true})
}

// Cancel permanently deletes a booking. Public bookings need the stronger
// confirmation described by negotiation.DecideRemoval.
func (s *BookingService) Cancel(ctx context.Context, id, userID string, c negotiation.Confirmation) error {
	return s.remove(ctx, id, userID, negotiation.RemovalCancel, c)
}

func (s *BookingService) remove(ctx context.Context, id, userID string, kind negotiation.RemovalKind, c negotiation.Confirmation) error {
	var (
		b        *domain.Booking
		actor    domain.Party
		decision negotiation.Removal
		err      error
	)
	// The decision is re-taken from a fresh read when the status moved
	// between the read and the delete.
	for attempt := 1; attempt <= 2; attempt++ {
		b, actor, decision, err = s.removeOnce(ctx, id, userID, kind, c)
		if err == nil || !domain.IsRetryable(err) {
			break
		}
		s.logger.Warn("booking delete failed",
			logger.String("booking_id", id),
			logger.String("kind", string(kind)),
			logger.Int("attempt", attempt),
			logger.String("error", err.Error()),
		)
	}
	if err != nil {
		return err
	}

	if decision.WasPublic {
		s.pipeline.Withdraw(ctx, id)
	}

	s.logger.Info("booking removed",
		logger.String("booking_id", id),
		logger.String("kind", string(kind)),
		logger.String("actor", string(actor)),
		logger.String("status", string(b.Status)),
	)

	s.announce(ctx, b, actor, domain.BookingEventDeleted, domain.NotificationBookingRemoved)
	return nil
}

func (s *BookingService) removeOnce(ctx context.Context, id, userID string, kind negotiation.RemovalKind, c negotiation.Confirmation) (*domain.Booking, domain.Party, negotiation.Removal, error) {
	var decision negotiation.Removal

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", decision, fmt.Errorf("get booking: %w", err)
	}
	actor, err := b.PartyOf(userID)
	if err != nil {
		return nil, "", decision, err
	}

	decision, err = negotiation.DecideRemoval(b, actor, kind, c)
	if err != nil {
		return nil, "", decision, err
	}

	if err = s.bookingRepo.Delete(ctx, id, b.Status); err != nil {
		return nil, "", decision, fmt.Errorf("delete booking: %w", err)
	}
	return b, actor, decision, nil
}

// AddAttachment adds a document to the booking. It counts as an edit of
// the agreement.
func (s *BookingService) AddAttachment(ctx context.Context, id, userID string, input domain.AddAttachmentInput) (*domain.Attachment, error) {
	if err := negotiation.Validate(input); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	editor, err := b.PartyOf(userID)
	if err != nil {
		return nil, err
	}

	res, err := negotiation.Touch(b, editor, s.now(), s.policy, "attachment:"+input.FileName)
	if err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = "other"
	}
	a := &domain.Attachment{
		ID:        uuid.New().String(),
		BookingID: id,
		FileName:  input.FileName,
		FileURL:   input.FileURL,
		Kind:      kind,
		AddedBy:   userID,
		CreatedAt: s.now(),
	}
	if err = s.bookingRepo.AddAttachment(ctx, a, res.Patch); err != nil {
		return nil, fmt.Errorf("add attachment: %w", err)
	}

	after := b.Clone()
	res.Patch.Apply(after)

	notice := domain.NotificationTermsChanged
	if res.Reapproval.WasReset(editor.Other()) {
		notice = domain.NotificationApprovalReset
	}
	s.announce(ctx, after, editor, domain.BookingEventUpdated, notice)
	return a, nil
}

func (s *BookingService) ListAttachments(ctx context.Context, id, userID string) ([]*domain.Attachment, error) {
	view, err := s.Get(ctx, id, userID, negotiation.ViewOptions{})
	if err != nil {
		return nil, err
	}
	if !view.Fields.Has(negotiation.FieldAttachments) {
		return []*domain.Attachment{}, nil
	}
	return s.bookingRepo.ListAttachments(ctx, id)
}

// History returns the change history of a booking to one of its parties.
func (s *BookingService) History(ctx context.Context, id, userID string) ([]*domain.BookingChange, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if _, err = b.PartyOf(userID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListChanges(ctx, id)
}

type mutation func(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error)

// mutate runs one read-compare-write cycle: it re-reads the booking, lets fn
// compute a patch from that fresh copy and writes it. Idempotent operations
// are retried once on a store failure.
func (s *BookingService) mutate(ctx context.Context, id, userID, op string, idempotent bool, fn mutation) (*domain.Booking, *domain.Booking, error) {
	attempts := 1
	if idempotent {
		attempts = 2
	}

	var err error
	for i := 0; i < attempts; i++ {
		var before, after *domain.Booking
		before, after, err = s.mutateOnce(ctx, id, userID, fn)
		if err == nil {
			return before, after, nil
		}
		if !domain.IsRetryable(err) {
			break
		}
		s.logger.Warn("booking update failed",
			logger.String("booking_id", id),
			logger.String("op", op),
			logger.Int("attempt", i+1),
			logger.String("error", err.Error()),
		)
	}
	return nil, nil, fmt.Errorf("%s booking: %w", op, err)
}

func (s *BookingService) mutateOnce(ctx context.Context, id, userID string, fn mutation) (*domain.Booking, *domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}
	actor, err := b.PartyOf(userID)
	if err != nil {
		return nil, nil, err
	}

	patch, err := fn(b, actor)
	if err != nil {
		return nil, nil, err
	}
	if patch.IsEmpty() {
		return b, b, nil
	}

	if err = s.bookingRepo.Update(ctx, id, patch); err != nil {
		return nil, nil, fmt.Errorf("update: %w", err)
	}

	after := b.Clone()
	patch.Apply(after)
	return b, after, nil
}

func (s *BookingService) logTransition(msg string, before, after *domain.Booking, actor domain.Party) {
	s.logger.Info(msg,
		logger.String("booking_id", after.ID),
		logger.String("actor", string(actor)),
		logger.String("from", string(before.Status)),
		logger.String("to", string(after.Status)),
	)
}

// announce publishes the live-update event and notifies the counterpart of
// actor. Both are fire-and-forget.
func (s *BookingService) announce(ctx context.Context, b *domain.Booking, actor domain.Party, event domain.BookingEventType, kind domain.NotificationKind) {
	ctx = context.WithoutCancel(ctx)
	evt := domain.BookingEvent{
		Type:      event,
		BookingID: b.ID,
		Status:    b.Status,
		Actor:     actor,
		At:        s.now(),
	}
	snapshot := b.Clone()

	s.dispatch(func() {
		s.events.Publish(ctx, evt)

		if kind == "" {
			return
		}
		recipientID := snapshot.UserOf(actor.Other())
		user, err := s.userRepo.GetByID(ctx, recipientID)
		if err != nil {
			s.logger.Error("failed to get user for notification",
				logger.String("user_id", recipientID),
				logger.String("error", err.Error()),
			)
			return
		}
		s.notifier.Notify(ctx, user, domain.Notification{Kind: kind, Booking: snapshot, Actor: actor})
	})
}
