package domain

import "time"

type NotificationKind string

const (
	NotificationBookingRequested NotificationKind = "booking_requested"
	NotificationBookingAllowed   NotificationKind = "booking_allowed"
	NotificationTermsChanged     NotificationKind = "terms_changed"
	NotificationApprovalReset    NotificationKind = "approval_reset"
	NotificationBookingApproved  NotificationKind = "booking_approved"
	NotificationBookingPublished NotificationKind = "booking_published"
	NotificationBookingRemoved   NotificationKind = "booking_removed"
)

type Notification struct {
	Kind    NotificationKind
	Booking *Booking
	Actor   Party
}

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "created"
	BookingEventUpdated   BookingEventType = "updated"
	BookingEventPublished BookingEventType = "published"
	BookingEventDeleted   BookingEventType = "deleted"
)

// BookingEvent announces a change of a booking to live subscribers.
type BookingEvent struct {
	Type      BookingEventType `json:"type"`
	BookingID string           `json:"booking_id"`
	Status    BookingStatus    `json:"status"`
	Actor     Party            `json:"actor"`
	At        time.Time        `json:"at"`
}
