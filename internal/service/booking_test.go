package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	concepts *mocks.MockConceptRepo
	users    *mocks.MockUserRepo
	listings *mocks.MockListingRepo
	notifier *mocks.MockBookingNotifier
	events   *mocks.MockEventPublisher
}

func newTestBookingService(t *testing.T, flow negotiation.Flow, policy negotiation.ReapprovalPolicy) (*BookingService, *bookingDeps) {
	t.Helper()
	d := &bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		concepts: mocks.NewMockConceptRepo(t),
		users:    mocks.NewMockUserRepo(t),
		listings: mocks.NewMockListingRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
		events:   mocks.NewMockEventPublisher(t),
	}
	log := newTestLogger(t)

	pipeline := NewPublicationPipeline(d.bookings, d.listings, flow, log)
	pipeline.now = func() time.Time { return testNow }

	svc := NewBookingService(d.bookings, d.concepts, d.users, pipeline, d.notifier, d.events, policy, log)
	svc.now = func() time.Time { return testNow }
	svc.dispatch = func(f func()) { f() }
	return svc, d
}

// expectAnnounce expects the live event and the notification sent to
// recipient.
func (d *bookingDeps) expectAnnounce(recipient *domain.User, event domain.BookingEventType, kind domain.NotificationKind) {
	d.events.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == event
	})).Return()
	if kind == "" {
		return
	}
	d.users.EXPECT().GetByID(mock.Anything, recipient.ID).Return(recipient, nil)
	d.notifier.EXPECT().Notify(mock.Anything, recipient, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == kind
	})).Return()
}

var (
	alice = &domain.User{ID: "u-sender", Username: "alice"}
	bob   = &domain.User{ID: "u-receiver", Username: "bob"}
)

func newBooking(status domain.BookingStatus) *domain.Booking {
	edited := testNow.Add(-2 * time.Hour)
	b := &domain.Booking{
		ID:         "b1",
		SenderID:   alice.ID,
		ReceiverID: bob.ID,
		Status:     status,
		ConceptIDs: []string{"c1"},
		BookingTerms: domain.BookingTerms{
			Title:    "Friday Jazz Night",
			Venue:    "Blue Room",
			TechSpec: "2 monitors",
		},
		IsPublicAfterApproval: true,
		LastModifiedBy:        alice.ID,
		LastModifiedAt:        edited,
		CreatedAt:             edited.Add(-time.Hour),
	}

	approvedAt := edited.Add(time.Minute)
	switch status {
	case domain.BookingStatusApprovedBySender:
		b.ApprovedBySender, b.SenderApprovedAt = true, &approvedAt
	case domain.BookingStatusApprovedByReceiver:
		b.ApprovedByReceiver, b.ReceiverApprovedAt = true, &approvedAt
	case domain.BookingStatusApprovedByBoth, domain.BookingStatusUpcoming, domain.BookingStatusPublished:
		b.ApprovedBySender, b.SenderApprovedAt = true, &approvedAt
		b.ApprovedByReceiver, b.ReceiverApprovedAt = true, &approvedAt
		b.SenderReadAgreement, b.ReceiverReadAgreement = true, true
		b.ContactInfoSharedAt = &approvedAt
	}
	if negotiation.IsPublished(status) {
		b.PublishedBySender, b.PublishedByReceiver = true, true
		b.PublishedAt = &approvedAt
	}
	return b
}

func statusIs(want domain.BookingStatus) interface{} {
	return mock.MatchedBy(func(p domain.BookingPatch) bool {
		got, ok := p.Status.Get()
		return ok && got == want
	})
}

func TestBookingService_Request_Success(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.users.EXPECT().GetByID(mock.Anything, bob.ID).Return(bob, nil)
	d.concepts.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Concept{ID: "c1", OwnerID: bob.ID}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventCreated, domain.NotificationBookingRequested)

	booking, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID: bob.ID,
		ConceptIDs: []string{"c1", "c1"},
		Terms:      domain.BookingTerms{Title: "Friday Jazz Night"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, []string{"c1"}, booking.ConceptIDs)
	assert.True(t, booking.IsPublicAfterApproval)
	assert.Equal(t, alice.ID, booking.LastModifiedBy)
	assert.Equal(t, testNow, booking.CreatedAt)
	assert.False(t, booking.ApprovedBySender)
	assert.False(t, booking.ApprovedByReceiver)
}

func TestBookingService_Request_SameParty(t *testing.T) {
	svc, _ := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	_, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID: alice.ID,
		Terms:      domain.BookingTerms{Title: "Solo"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameParty)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Request_EmptyTitle(t *testing.T) {
	svc, _ := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	_, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID: bob.ID,
		Terms:      domain.BookingTerms{Title: "   "},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Request_ReceiverNotFound(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID: "ghost",
		Terms:      domain.BookingTerms{Title: "Gig"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Request_ForeignConcept(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.users.EXPECT().GetByID(mock.Anything, bob.ID).Return(bob, nil)
	d.concepts.EXPECT().GetByID(mock.Anything, "c9").Return(&domain.Concept{ID: "c9", OwnerID: "someone-else"}, nil)

	_, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID: bob.ID,
		ConceptIDs: []string{"c9"},
		Terms:      domain.BookingTerms{Title: "Gig"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Request_PrivateBooking(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.users.EXPECT().GetByID(mock.Anything, bob.ID).Return(bob, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return !b.IsPublicAfterApproval
	})).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventCreated, domain.NotificationBookingRequested)

	private := false
	booking, err := svc.Request(context.Background(), alice.ID, domain.CreateBookingInput{
		ReceiverID:            bob.ID,
		Terms:                 domain.BookingTerms{Title: "House party"},
		IsPublicAfterApproval: &private,
	})

	require.NoError(t, err)
	assert.False(t, booking.IsPublicAfterApproval)
}

func TestBookingService_Allow_Success(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusAllowed)).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventUpdated, domain.NotificationBookingAllowed)

	contact := &domain.ContactInfo{Name: "Bob", Email: "bob@example.com"}
	booking, err := svc.Allow(context.Background(), "b1", bob.ID, contact)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAllowed, booking.Status)
	require.NotNil(t, booking.ReceiverAllowedAt)
	assert.Equal(t, testNow, *booking.ReceiverAllowedAt)
	assert.Equal(t, contact, booking.ReceiverContactInfo)
}

func TestBookingService_Allow_BySender(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)

	_, err := svc.Allow(context.Background(), "b1", alice.ID, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_Allow_Stranger(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)

	_, err := svc.Allow(context.Background(), "b1", "mallory", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_Allow_InvalidEmail(t *testing.T) {
	svc, _ := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	_, err := svc.Allow(context.Background(), "b1", bob.ID, &domain.ContactInfo{Email: "not-an-email"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Edit_ResetsCounterpartApproval(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		status, _ := p.Status.Get()
		receiver, set := p.ApprovedByReceiver.Get()
		return status == domain.BookingStatusApprovedBySender && set && !receiver
	})).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventUpdated, domain.NotificationApprovalReset)

	title := "Saturday Jazz Night"
	booking, err := svc.Edit(context.Background(), "b1", alice.ID, domain.TermsPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApprovedBySender, booking.Status)
	assert.Equal(t, title, booking.Title)
	assert.Equal(t, alice.ID, booking.LastModifiedBy)
	assert.Equal(t, testNow, booking.LastModifiedAt)
	assert.True(t, booking.ApprovedBySender)
	assert.False(t, booking.ApprovedByReceiver)
	assert.Nil(t, booking.ReceiverApprovedAt)
	assert.False(t, booking.ReceiverReadAgreement)
}

func TestBookingService_Edit_EditorMustReapprove(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorMustReapprove)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusAllowed)).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventUpdated, domain.NotificationApprovalReset)

	venue := "Green Room"
	booking, err := svc.Edit(context.Background(), "b1", alice.ID, domain.TermsPatch{Venue: &venue})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAllowed, booking.Status)
	assert.False(t, booking.ApprovedBySender)
	assert.False(t, booking.ApprovedByReceiver)
}

func TestBookingService_Edit_NoApprovalToReset(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventUpdated, domain.NotificationTermsChanged)

	venue := "Green Room"
	booking, err := svc.Edit(context.Background(), "b1", bob.ID, domain.TermsPatch{Venue: &venue})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAllowed, booking.Status)
	assert.Equal(t, bob.ID, booking.LastModifiedBy)
}

func TestBookingService_Edit_PublishedIsImmutable(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusUpcoming), nil)

	venue := "Green Room"
	_, err := svc.Edit(context.Background(), "b1", alice.ID, domain.TermsPatch{Venue: &venue})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImmutableState)
}

func TestBookingService_Edit_NotRetried(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(domain.ErrPersistence).Once()

	venue := "Green Room"
	_, err := svc.Edit(context.Background(), "b1", alice.ID, domain.TermsPatch{Venue: &venue})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestBookingService_MarkRead_Idempotent(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusAllowed)
	b.SenderReadAgreement = true
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	booking, err := svc.MarkRead(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.True(t, booking.SenderReadAgreement)
}

func TestBookingService_Approve_Success(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusApprovedBySender)
	b.ReceiverReadAgreement = true
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusApprovedByBoth)).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventUpdated, domain.NotificationBookingApproved)

	booking, err := svc.Approve(context.Background(), "b1", bob.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApprovedByBoth, booking.Status)
	assert.True(t, booking.ApprovedByReceiver)
	require.NotNil(t, booking.ReceiverApprovedAt)
	assert.True(t, booking.ReceiverApprovedAt.After(booking.LastModifiedAt))
	assert.NotNil(t, booking.ContactInfoSharedAt)
}

func TestBookingService_Approve_RequiresReview(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil)

	_, err := svc.Approve(context.Background(), "b1", bob.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestBookingService_Approve_RetriesOnce(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusAllowed)
	b.SenderReadAgreement = true
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil).Times(2)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(domain.ErrStaleBooking).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(nil).Once()
	d.expectAnnounce(bob, domain.BookingEventUpdated, domain.NotificationBookingApproved)

	booking, err := svc.Approve(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApprovedBySender, booking.Status)
}

// The counterpart edited the terms without changing the status after the
// approval was computed. The guarded write fails and the retry sees that the
// agreement has to be read again.
func TestBookingService_Approve_StaleAfterEdit(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	read := newBooking(domain.BookingStatusApprovedBySender)
	read.ReceiverReadAgreement = true
	edited := newBooking(domain.BookingStatusApprovedBySender)
	edited.Venue = "Green Room"
	edited.LastModifiedAt = testNow.Add(-time.Minute)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(read, nil).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		at, ok := p.ExpectLastModifiedAt.Get()
		return ok && at.Equal(read.LastModifiedAt)
	})).Return(domain.ErrStaleBooking).Once()
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(edited, nil).Once()

	_, err := svc.Approve(context.Background(), "b1", bob.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestBookingService_MarkRead_RereadsAfterStaleWrite(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	first := newBooking(domain.BookingStatusAllowed)
	second := newBooking(domain.BookingStatusAllowed)
	second.LastModifiedAt = testNow.Add(-time.Minute)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(first, nil).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(domain.ErrStaleBooking).Once()
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(second, nil).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		at, _ := p.ExpectLastModifiedAt.Get()
		return at.Equal(second.LastModifiedAt)
	})).Return(nil).Once()

	booking, err := svc.MarkRead(context.Background(), "b1", bob.ID)

	require.NoError(t, err)
	assert.True(t, booking.ReceiverReadAgreement)
	assert.Equal(t, second.LastModifiedAt, booking.LastModifiedAt)
}

func TestBookingService_Edit_WritesChangedTermsOnly(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusAllowed)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		return len(p.TermFields) == 1 && p.TermFields[0] == "venue" && !p.ApprovedBySender.IsSet()
	})).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventUpdated, domain.NotificationTermsChanged)

	venue := "Green Room"
	_, err := svc.Edit(context.Background(), "b1", bob.ID, domain.TermsPatch{Venue: &venue})

	require.NoError(t, err)
}

func TestUtcNow_Microseconds(t *testing.T) {
	now := utcNow()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestBookingService_Approve_GivesUpAfterRetry(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusAllowed)
	b.SenderReadAgreement = true
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil).Times(2)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(domain.ErrPersistence).Times(2)

	_, err := svc.Approve(context.Background(), "b1", alice.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestBookingService_Publish_AgreementCreatesListing(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowAgreement, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusPublished)).Return(nil)
	d.listings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.BookingID == "b1" && l.Title == "Friday Jazz Night" && l.PublishedAt.Equal(testNow)
	})).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventPublished, domain.NotificationBookingPublished)

	booking, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPublished, booking.Status)
	require.NotNil(t, booking.PublishedAt)
	assert.Equal(t, testNow, *booking.PublishedAt)
}

func TestBookingService_Publish_DualWaitsForCounterpart(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	before := newBooking(domain.BookingStatusApprovedByBoth)
	stored := before.Clone()
	stored.PublishedBySender = true

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(before, nil).Once()
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.MatchedBy(func(p domain.BookingPatch) bool {
		published, _ := p.PublishedBySender.Get()
		return published && !p.Status.IsSet()
	})).Return(nil).Once()
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(stored, nil).Once()
	d.expectAnnounce(bob, domain.BookingEventUpdated, "")

	booking, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApprovedByBoth, booking.Status)
	assert.True(t, booking.PublishedBySender)
	assert.Nil(t, booking.PublishedAt)
}

func TestBookingService_Publish_DualSecondPartyCompletes(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusApprovedByBoth)
	b.PublishedBySender = true
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", statusIs(domain.BookingStatusUpcoming)).Return(nil)
	d.listings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventPublished, domain.NotificationBookingPublished)

	booking, err := svc.Publish(context.Background(), "b1", bob.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusUpcoming, booking.Status)
	assert.True(t, booking.PublishedByReceiver)
}

func TestBookingService_Publish_AlreadyPublishedIsNoop(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusUpcoming)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	booking, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusUpcoming, booking.Status)
	assert.Equal(t, b.PublishedAt, booking.PublishedAt)
}

func TestBookingService_Publish_NotApproved(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedBySender), nil)

	_, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Publish_ListingDeferred(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowAgreement, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(nil)
	d.listings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPersistence).Times(2)
	d.expectAnnounce(bob, domain.BookingEventPublished, domain.NotificationBookingPublished)

	booking, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrListingDeferred)
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusPublished, booking.Status)
}

func TestBookingService_Publish_PrivateBookingSkipsListing(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowAgreement, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusApprovedByBoth)
	b.IsPublicAfterApproval = false
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)
	d.bookings.EXPECT().Update(mock.Anything, "b1", mock.Anything).Return(nil)
	d.expectAnnounce(bob, domain.BookingEventPublished, domain.NotificationBookingPublished)

	booking, err := svc.Publish(context.Background(), "b1", alice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPublished, booking.Status)
}

func TestBookingService_Reject_Success(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)
	d.bookings.EXPECT().Delete(mock.Anything, "b1", domain.BookingStatusPending).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventDeleted, domain.NotificationBookingRemoved)

	err := svc.Reject(context.Background(), "b1", bob.ID)

	require.NoError(t, err)
}

func TestBookingService_Reject_ThenGone(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil).Once()
	d.bookings.EXPECT().Delete(mock.Anything, "b1", domain.BookingStatusPending).Return(nil).Once()
	d.expectAnnounce(alice, domain.BookingEventDeleted, domain.NotificationBookingRemoved)
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound).Once()

	require.NoError(t, svc.Reject(context.Background(), "b1", bob.ID))

	_, err := svc.Get(context.Background(), "b1", bob.ID, negotiation.ViewOptions{})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Reject_BySender(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)

	err := svc.Reject(context.Background(), "b1", alice.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_Cancel_NegotiatingNeedsAcknowledgement(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil)

	err := svc.Cancel(context.Background(), "b1", alice.ID, negotiation.Confirmation{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestBookingService_Cancel_PublishedRequiresTitle(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusUpcoming), nil)

	err := svc.Cancel(context.Background(), "b1", alice.ID, negotiation.Confirmation{Acknowledged: true, Title: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
}

func TestBookingService_Cancel_PublishedWithdrawsListing(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusUpcoming), nil)
	d.bookings.EXPECT().Delete(mock.Anything, "b1", domain.BookingStatusUpcoming).Return(nil)
	d.listings.EXPECT().DeleteByBooking(mock.Anything, "b1").Return(nil)
	d.expectAnnounce(bob, domain.BookingEventDeleted, domain.NotificationBookingRemoved)

	err := svc.Cancel(context.Background(), "b1", alice.ID, negotiation.Confirmation{
		Acknowledged: true,
		Title:        "  friday jazz night ",
	})

	require.NoError(t, err)
}

// The booking was published between the read and the delete: the removal is
// decided again and now needs the title confirmation.
func TestBookingService_Cancel_PublishedMeanwhile(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil).Once()
	d.bookings.EXPECT().Delete(mock.Anything, "b1", domain.BookingStatusApprovedByBoth).Return(domain.ErrStaleBooking).Once()
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusUpcoming), nil).Once()

	err := svc.Cancel(context.Background(), "b1", alice.ID, negotiation.Confirmation{Acknowledged: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
}

func TestBookingService_Cancel_DeleteError(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil)
	d.bookings.EXPECT().Delete(mock.Anything, "b1", domain.BookingStatusAllowed).Return(errors.New("db error"))

	err := svc.Cancel(context.Background(), "b1", bob.ID, negotiation.Confirmation{Acknowledged: true})

	require.Error(t, err)
}

func TestBookingService_Get_HidesCounterpartContactUntilApproved(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	b := newBooking(domain.BookingStatusApprovedBySender)
	b.SenderContactInfo = &domain.ContactInfo{Email: "alice@example.com"}
	b.ReceiverContactInfo = &domain.ContactInfo{Email: "bob@example.com"}
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	view, err := svc.Get(context.Background(), "b1", alice.ID, negotiation.ViewOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.PartySender, view.Viewer)
	assert.Nil(t, view.Booking.ReceiverContactInfo)
	assert.NotNil(t, view.Booking.SenderContactInfo)
	assert.False(t, view.Fields.Has(negotiation.FieldCounterpartContact))
	assert.NotNil(t, b.ReceiverContactInfo)
}

func TestBookingService_ListByUser_Redacts(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	pending := newBooking(domain.BookingStatusPending)
	d.bookings.EXPECT().ListByUser(mock.Anything, bob.ID).Return([]*domain.Booking{pending}, nil)

	views, err := svc.ListByUser(context.Background(), bob.ID)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, domain.PartyReceiver, views[0].Viewer)
	assert.Empty(t, views[0].Booking.TechSpec)
}

func TestBookingService_AddAttachment_ResetsApproval(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusApprovedByBoth), nil)
	d.bookings.EXPECT().AddAttachment(mock.Anything, mock.MatchedBy(func(a *domain.Attachment) bool {
		return a.BookingID == "b1" && a.Kind == "tech_spec" && a.AddedBy == bob.ID
	}), statusIs(domain.BookingStatusApprovedByReceiver)).Return(nil)
	d.expectAnnounce(alice, domain.BookingEventUpdated, domain.NotificationApprovalReset)

	a, err := svc.AddAttachment(context.Background(), "b1", bob.ID, domain.AddAttachmentInput{
		FileName: "stage-plot.pdf",
		FileURL:  "https://files.example.com/stage-plot.pdf",
		Kind:     "tech_spec",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
}

func TestBookingService_AddAttachment_InvalidURL(t *testing.T) {
	svc, _ := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	_, err := svc.AddAttachment(context.Background(), "b1", bob.ID, domain.AddAttachmentInput{
		FileName: "rider.pdf",
		FileURL:  "not a url",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListAttachments_HiddenWhilePending(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusPending), nil)

	attachments, err := svc.ListAttachments(context.Background(), "b1", bob.ID)

	require.NoError(t, err)
	assert.Empty(t, attachments)
}

func TestBookingService_History_NotAParty(t *testing.T) {
	svc, d := newTestBookingService(t, negotiation.FlowDual, negotiation.EditorKeepsApproval)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(newBooking(domain.BookingStatusAllowed), nil)

	_, err := svc.History(context.Background(), "b1", "mallory")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestBookingService_Wait_DrainsDispatched(t *testing.T) {
	log := newTestLogger(t)
	events := mocks.NewMockEventPublisher(t)
	svc := NewBookingService(nil, nil, nil, nil, nil, events, negotiation.EditorKeepsApproval, log)

	release := make(chan struct{})
	events.EXPECT().Publish(mock.Anything, mock.Anything).Run(func(context.Context, domain.BookingEvent) {
		<-release
	}).Return()

	svc.announce(context.Background(), newBooking(domain.BookingStatusAllowed), domain.PartySender, domain.BookingEventUpdated, "")

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Wait(short), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, svc.Wait(context.Background()))
}
