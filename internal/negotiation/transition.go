// Package negotiation holds the booking negotiation rules: which status
// transitions are legal, how edits invalidate approvals, what each party may
// see and how a booking is removed. Every function here is pure; callers
// persist the returned patches.
package negotiation

import (
	"fmt"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// Flow selects how the final publish step behaves.
type Flow string

const (
	// FlowDual requires both parties to publish; the booking becomes upcoming.
	FlowDual Flow = "dual"
	// FlowAgreement lets one party confirm publication once both have
	// approved and read the agreement; the booking becomes published.
	FlowAgreement Flow = "agreement"
)

var transitions = map[domain.BookingStatus]map[domain.BookingStatus]bool{
	domain.BookingStatusPending: {
		domain.BookingStatusAllowed:   true,
		domain.BookingStatusCancelled: true,
	},
	domain.BookingStatusAllowed: {
		domain.BookingStatusApprovedBySender:   true,
		domain.BookingStatusApprovedByReceiver: true,
		domain.BookingStatusCancelled:          true,
	},
	domain.BookingStatusApprovedBySender: {
		domain.BookingStatusApprovedByBoth: true,
		domain.BookingStatusAllowed:        true,
		domain.BookingStatusCancelled:      true,
	},
	domain.BookingStatusApprovedByReceiver: {
		domain.BookingStatusApprovedByBoth: true,
		domain.BookingStatusAllowed:        true,
		domain.BookingStatusCancelled:      true,
	},
	domain.BookingStatusApprovedByBoth: {
		domain.BookingStatusApprovedBySender:   true,
		domain.BookingStatusApprovedByReceiver: true,
		domain.BookingStatusAllowed:            true,
		domain.BookingStatusUpcoming:           true,
		domain.BookingStatusPublished:          true,
		domain.BookingStatusCancelled:          true,
	},
	domain.BookingStatusUpcoming:  {},
	domain.BookingStatusPublished: {},
	domain.BookingStatusCancelled: {},
}

// CanTransition reports whether the engine may move a booking from one status
// to another.
func CanTransition(from, to domain.BookingStatus) bool {
	m, ok := transitions[from]
	if !ok {
		return false
	}
	return m[to]
}

// CanEdit reports whether negotiable fields may be changed in status s.
func CanEdit(s domain.BookingStatus) bool {
	switch s {
	case domain.BookingStatusAllowed,
		domain.BookingStatusApprovedBySender,
		domain.BookingStatusApprovedByReceiver,
		domain.BookingStatusApprovedByBoth:
		return true
	default:
		return false
	}
}

// IsNegotiating reports whether the booking has been accepted for
// negotiation but not yet published.
func IsNegotiating(s domain.BookingStatus) bool {
	return CanEdit(s)
}

func IsPublished(s domain.BookingStatus) bool {
	return s == domain.BookingStatusUpcoming || s == domain.BookingStatusPublished
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s domain.BookingStatus) bool {
	m, ok := transitions[s]
	return ok && len(m) == 0
}

// canApprove lists the source states of Approve.
func canApprove(s domain.BookingStatus) bool {
	switch s {
	case domain.BookingStatusAllowed,
		domain.BookingStatusApprovedBySender,
		domain.BookingStatusApprovedByReceiver:
		return true
	default:
		return false
	}
}

func invalid(op string, s domain.BookingStatus) error {
	return fmt.Errorf("%w: cannot %s a booking in status %s", domain.ErrInvalidTransition, op, s)
}

// statusFromApprovals derives the negotiation status implied by the approval
// flags.
func statusFromApprovals(sender, receiver bool) domain.BookingStatus {
	switch {
	case sender && receiver:
		return domain.BookingStatusApprovedByBoth
	case sender:
		return domain.BookingStatusApprovedBySender
	case receiver:
		return domain.BookingStatusApprovedByReceiver
	default:
		return domain.BookingStatusAllowed
	}
}

// after returns now, or the smallest instant strictly after floor when the
// clock has not moved past it. Postgres keeps microseconds, so the result is
// truncated to them before comparing.
func after(now, floor time.Time) time.Time {
	now = now.Truncate(time.Microsecond)
	if now.After(floor) {
		return now
	}
	return floor.Add(time.Microsecond)
}

func ptr[T any](v T) *T {
	return &v
}

// Allow accepts a pending booking request. Only the receiver may allow, and
// may attach the contact details they are willing to share on approval.
func Allow(b *domain.Booking, actor domain.Party, contact *domain.ContactInfo, now time.Time) (domain.BookingPatch, error) {
	var p domain.BookingPatch
	if b.Status != domain.BookingStatusPending {
		return p, invalid("allow", b.Status)
	}
	if actor != domain.PartyReceiver {
		return p, fmt.Errorf("%w: only the receiver can allow a request", domain.ErrNotAuthorized)
	}

	p.Expect(b)
	p.Status = domain.Set(domain.BookingStatusAllowed)
	p.ReceiverAllowedAt = domain.Set(ptr(now))
	if !contact.IsEmpty() {
		p.ReceiverContactInfo = domain.Set(contact)
	}
	return p, nil
}

// MarkRead records that actor has read the current agreement. It is the
// review step that must precede an approval.
func MarkRead(b *domain.Booking, actor domain.Party) (domain.BookingPatch, error) {
	var p domain.BookingPatch
	if !CanEdit(b.Status) {
		return p, invalid("review", b.Status)
	}
	if b.ReadAgreement(actor) {
		return p, nil
	}
	p.Expect(b)
	p.SetRead(actor, true)
	return p, nil
}

// Approve records actor's approval of the current terms. The approval
// timestamp is always strictly after the last edit so that it can never be
// mistaken for a stale approval.
func Approve(b *domain.Booking, actor domain.Party, now time.Time) (domain.BookingPatch, error) {
	var p domain.BookingPatch
	if !canApprove(b.Status) {
		return p, invalid("approve", b.Status)
	}
	if !b.ReadAgreement(actor) {
		return p, fmt.Errorf("%w: the agreement must be reviewed before approval", domain.ErrPreconditionFailed)
	}

	at := after(now, b.LastModifiedAt)
	next := statusFromApprovals(
		actor == domain.PartySender || b.ApprovedBySender,
		actor == domain.PartyReceiver || b.ApprovedByReceiver,
	)
	if next != b.Status && !CanTransition(b.Status, next) {
		return p, invalid("approve", b.Status)
	}

	p.Expect(b)
	p.SetApproval(actor, &at)
	p.Status = domain.Set(next)
	if next == domain.BookingStatusApprovedByBoth && b.ContactInfoSharedAt == nil {
		p.ContactInfoSharedAt = domain.Set(ptr(at))
	}
	return p, nil
}

// PublishResult describes the outcome of a publish request.
type PublishResult struct {
	Patch domain.BookingPatch
	// Completed is true when this call made the booking public.
	Completed bool
	// Noop is true when actor had already published.
	Noop bool
}

// Publish records actor's publish request. Calling it again for the same
// actor is a no-op. When the flow's completion condition is met the patch
// also moves the booking to its public status and stamps published_at.
// A repeated call whose completion condition has become true since (both
// parties published concurrently) completes the publication.
func Publish(b *domain.Booking, actor domain.Party, flow Flow, now time.Time) (PublishResult, error) {
	var res PublishResult

	if IsPublished(b.Status) {
		res.Noop = true
		return res, nil
	}
	if b.Status != domain.BookingStatusApprovedByBoth {
		return res, invalid("publish", b.Status)
	}

	target := domain.BookingStatusUpcoming
	complete := b.Published(actor.Other())
	if flow == FlowAgreement {
		target = domain.BookingStatusPublished
		complete = true
	}
	if b.Published(actor) && !complete {
		res.Noop = true
		return res, nil
	}
	if err := CheckPublishable(b); err != nil {
		return res, err
	}

	p := &res.Patch
	p.Expect(b)
	if !b.Published(actor) {
		p.SetPublished(actor, true)
	}
	if !complete {
		return res, nil
	}
	if !CanTransition(b.Status, target) {
		return res, invalid("publish", b.Status)
	}

	p.Status = domain.Set(target)
	p.PublishedAt = domain.Set(ptr(now))
	res.Completed = true
	return res, nil
}

// CheckPublishable verifies that the agreement is complete: both parties
// approved and both read it, and it is not already public.
func CheckPublishable(b *domain.Booking) error {
	switch {
	case IsPublished(b.Status) || b.PublishedAt != nil:
		return fmt.Errorf("%w: booking is already published", domain.ErrPreconditionFailed)
	case !b.ApprovedBySender || !b.ApprovedByReceiver:
		return fmt.Errorf("%w: both parties must approve before publishing", domain.ErrPreconditionFailed)
	case !b.SenderReadAgreement || !b.ReceiverReadAgreement:
		return fmt.Errorf("%w: both parties must read the agreement before publishing", domain.ErrPreconditionFailed)
	}
	return nil
}
