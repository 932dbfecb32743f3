package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending            BookingStatus = "pending"
	BookingStatusAllowed            BookingStatus = "allowed"
	BookingStatusApprovedBySender   BookingStatus = "approved_by_sender"
	BookingStatusApprovedByReceiver BookingStatus = "approved_by_receiver"
	BookingStatusApprovedByBoth     BookingStatus = "approved_by_both"
	BookingStatusUpcoming           BookingStatus = "upcoming"
	BookingStatusPublished          BookingStatus = "published"
	BookingStatusCancelled          BookingStatus = "cancelled"
)

var AllStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAllowed,
	BookingStatusApprovedBySender,
	BookingStatusApprovedByReceiver,
	BookingStatusApprovedByBoth,
	BookingStatusUpcoming,
	BookingStatusPublished,
	BookingStatusCancelled,
}

// PublishedStatuses are the states in which a booking is visible to third parties.
var PublishedStatuses = []BookingStatus{BookingStatusUpcoming, BookingStatusPublished}

func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

// ApprovedBy returns the single-approval status for p.
func ApprovedBy(p Party) BookingStatus {
	if p == PartySender {
		return BookingStatusApprovedBySender
	}
	return BookingStatusApprovedByReceiver
}

type Party string

const (
	PartySender   Party = "sender"
	PartyReceiver Party = "receiver"
)

func (p Party) Other() Party {
	if p == PartySender {
		return PartyReceiver
	}
	return PartySender
}

func (p Party) Valid() bool {
	return p == PartySender || p == PartyReceiver
}

type ContactInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"  validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

func (c *ContactInfo) IsEmpty() bool {
	return c == nil || (c.Name == "" && c.Email == "" && c.Phone == "")
}

func (c ContactInfo) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ContactInfo) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ContactInfo{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("scan contact info: unsupported type %T", src)
	}
}

// Pricing holds the mutually exclusive pricing modes of a booking: a fixed
// artist fee, a door deal with a percentage, or "by agreement". The ticket
// price is independent of the mode.
type Pricing struct {
	TicketPrice    decimal.NullDecimal `json:"ticket_price"`
	ArtistFee      decimal.NullDecimal `json:"artist_fee"`
	DoorDeal       bool                `json:"door_deal"`
	DoorPercentage decimal.NullDecimal `json:"door_percentage"`
	ByAgreement    bool                `json:"by_agreement"`
}

// BookingTerms is the negotiable content of a booking.
type BookingTerms struct {
	Title            string     `json:"title"             validate:"required,max=200"`
	Description      string     `json:"description"       validate:"max=5000"`
	Venue            string     `json:"venue"             validate:"max=200"`
	Address          string     `json:"address"           validate:"max=500"`
	EventDate        *time.Time `json:"event_date"`
	StartTime        string     `json:"start_time"        validate:"omitempty,datetime=15:04"`
	EndTime          string     `json:"end_time"          validate:"omitempty,datetime=15:04"`
	AudienceEstimate *int       `json:"audience_estimate" validate:"omitempty,min=0"`
	Pricing          Pricing    `json:"pricing"`
	PersonalMessage  string     `json:"personal_message"  validate:"max=5000"`
	TechSpec         string     `json:"tech_spec"         validate:"max=20000"`
	HospitalityRider string     `json:"hospitality_rider" validate:"max=20000"`
}

type Booking struct {
	ID                string        `json:"id"`
	SenderID          string        `json:"sender_id"`
	ReceiverID        string        `json:"receiver_id"`
	Status            BookingStatus `json:"status"`
	ConceptIDs        []string      `json:"concept_ids"`
	SelectedConceptID *string       `json:"selected_concept_id"`

	BookingTerms

	ReceiverAllowedAt *time.Time `json:"receiver_allowed_at"`

	ApprovedBySender   bool       `json:"approved_by_sender"`
	ApprovedByReceiver bool       `json:"approved_by_receiver"`
	SenderApprovedAt   *time.Time `json:"sender_approved_at"`
	ReceiverApprovedAt *time.Time `json:"receiver_approved_at"`

	SenderReadAgreement   bool `json:"sender_read_agreement"`
	ReceiverReadAgreement bool `json:"receiver_read_agreement"`

	PublishedBySender     bool       `json:"published_by_sender"`
	PublishedByReceiver   bool       `json:"published_by_receiver"`
	IsPublicAfterApproval bool       `json:"is_public_after_approval"`
	PublishedAt           *time.Time `json:"published_at"`

	SenderContactInfo   *ContactInfo `json:"sender_contact_info"`
	ReceiverContactInfo *ContactInfo `json:"receiver_contact_info"`
	ContactInfoSharedAt *time.Time   `json:"contact_info_shared_at"`

	LastModifiedBy string    `json:"last_modified_by"`
	LastModifiedAt time.Time `json:"last_modified_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// PartyOf resolves userID to the side it plays in the booking.
func (b *Booking) PartyOf(userID string) (Party, error) {
	switch userID {
	case "":
		return "", ErrNotAuthorized
	case b.SenderID:
		return PartySender, nil
	case b.ReceiverID:
		return PartyReceiver, nil
	default:
		return "", ErrNotAuthorized
	}
}

func (b *Booking) UserOf(p Party) string {
	if p == PartySender {
		return b.SenderID
	}
	return b.ReceiverID
}

func (b *Booking) Approved(p Party) bool {
	if p == PartySender {
		return b.ApprovedBySender
	}
	return b.ApprovedByReceiver
}

func (b *Booking) ApprovedAt(p Party) *time.Time {
	if p == PartySender {
		return b.SenderApprovedAt
	}
	return b.ReceiverApprovedAt
}

func (b *Booking) ReadAgreement(p Party) bool {
	if p == PartySender {
		return b.SenderReadAgreement
	}
	return b.ReceiverReadAgreement
}

func (b *Booking) Published(p Party) bool {
	if p == PartySender {
		return b.PublishedBySender
	}
	return b.PublishedByReceiver
}

func (b *Booking) ContactInfo(p Party) *ContactInfo {
	if p == PartySender {
		return b.SenderContactInfo
	}
	return b.ReceiverContactInfo
}

func (b *Booking) HasConcept(id string) bool {
	for _, c := range b.ConceptIDs {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so that callers can apply patches without
// mutating a shared record.
func (b *Booking) Clone() *Booking {
	c := *b
	c.ConceptIDs = append([]string(nil), b.ConceptIDs...)
	if b.SenderContactInfo != nil {
		ci := *b.SenderContactInfo
		c.SenderContactInfo = &ci
	}
	if b.ReceiverContactInfo != nil {
		ci := *b.ReceiverContactInfo
		c.ReceiverContactInfo = &ci
	}
	return &c
}

type CreateBookingInput struct {
	ReceiverID            string
	ConceptIDs            []string
	Terms                 BookingTerms
	SenderContactInfo     *ContactInfo
	IsPublicAfterApproval *bool
}

// TermsPatch is a user edit of negotiable fields. Nil fields are not edited;
// an EventDate set to the zero time clears the date.
type TermsPatch struct {
	Title             *string
	Description       *string
	Venue             *string
	Address           *string
	EventDate         *time.Time
	StartTime         *string
	EndTime           *string
	AudienceEstimate  *int
	Pricing           *Pricing
	PersonalMessage   *string
	TechSpec          *string
	HospitalityRider  *string
	SelectedConceptID *string
}

// Fields lists the names of the edited fields in a stable order.
func (p TermsPatch) Fields() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(p.Title != nil, "title")
	add(p.Description != nil, "description")
	add(p.Venue != nil, "venue")
	add(p.Address != nil, "address")
	add(p.EventDate != nil, "event_date")
	add(p.StartTime != nil, "start_time")
	add(p.EndTime != nil, "end_time")
	add(p.AudienceEstimate != nil, "audience_estimate")
	add(p.Pricing != nil, "pricing")
	add(p.PersonalMessage != nil, "personal_message")
	add(p.TechSpec != nil, "tech_spec")
	add(p.HospitalityRider != nil, "hospitality_rider")
	add(p.SelectedConceptID != nil, "selected_concept_id")
	return out
}

func (p TermsPatch) IsEmpty() bool {
	return len(p.Fields()) == 0
}

// Merge returns t with the patch applied.
func (p TermsPatch) Merge(t BookingTerms) BookingTerms {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Venue != nil {
		t.Venue = *p.Venue
	}
	if p.Address != nil {
		t.Address = *p.Address
	}
	if p.EventDate != nil {
		t.EventDate = nil
		if !p.EventDate.IsZero() {
			d := *p.EventDate
			t.EventDate = &d
		}
	}
	if p.StartTime != nil {
		t.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		t.EndTime = *p.EndTime
	}
	if p.AudienceEstimate != nil {
		a := *p.AudienceEstimate
		t.AudienceEstimate = &a
	}
	if p.Pricing != nil {
		t.Pricing = *p.Pricing
	}
	if p.PersonalMessage != nil {
		t.PersonalMessage = *p.PersonalMessage
	}
	if p.TechSpec != nil {
		t.TechSpec = *p.TechSpec
	}
	if p.HospitalityRider != nil {
		t.HospitalityRider = *p.HospitalityRider
	}
	return t
}

type Attachment struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	FileName  string    `json:"file_name"`
	FileURL   string    `json:"file_url"`
	Kind      string    `json:"kind"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

type AddAttachmentInput struct {
	FileName string `validate:"required,max=255"`
	FileURL  string `validate:"required,url"`
	Kind     string `validate:"omitempty,oneof=tech_spec hospitality_rider contract other"`
}

// BookingChange is one row of a booking's change history.
type BookingChange struct {
	BookingID string    `json:"booking_id"`
	ChangedBy string    `json:"changed_by"`
	Fields    []string  `json:"fields"`
	ChangedAt time.Time `json:"changed_at"`
}
