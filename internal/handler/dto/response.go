package dto

import (
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/shopspring/decimal"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ContactInfoResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type PricingResponse struct {
	TicketPrice    *decimal.Decimal `json:"ticket_price,omitempty"`
	ArtistFee      *decimal.Decimal `json:"artist_fee,omitempty"`
	DoorDeal       bool             `json:"door_deal"`
	DoorPercentage *decimal.Decimal `json:"door_percentage,omitempty"`
	ByAgreement    bool             `json:"by_agreement"`
}

type BookingResponse struct {
	ID                string   `json:"id"`
	SenderID          string   `json:"sender_id"`
	ReceiverID        string   `json:"receiver_id"`
	Status            string   `json:"status"`
	ConceptIDs        []string `json:"concept_ids"`
	SelectedConceptID *string  `json:"selected_concept_id,omitempty"`

	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Venue            string           `json:"venue"`
	Address          string           `json:"address"`
	EventDate        *string          `json:"event_date,omitempty"`
	StartTime        string           `json:"start_time,omitempty"`
	EndTime          string           `json:"end_time,omitempty"`
	AudienceEstimate *int             `json:"audience_estimate,omitempty"`
	Pricing          *PricingResponse `json:"pricing,omitempty"`
	PersonalMessage  string           `json:"personal_message,omitempty"`
	TechSpec         string           `json:"tech_spec,omitempty"`
	HospitalityRider string           `json:"hospitality_rider,omitempty"`

	ReceiverAllowedAt  *string `json:"receiver_allowed_at,omitempty"`
	ApprovedBySender   bool    `json:"approved_by_sender"`
	ApprovedByReceiver bool    `json:"approved_by_receiver"`
	SenderApprovedAt   *string `json:"sender_approved_at,omitempty"`
	ReceiverApprovedAt *string `json:"receiver_approved_at,omitempty"`

	SenderReadAgreement   bool `json:"sender_read_agreement"`
	ReceiverReadAgreement bool `json:"receiver_read_agreement"`

	PublishedBySender     bool    `json:"published_by_sender"`
	PublishedByReceiver   bool    `json:"published_by_receiver"`
	IsPublicAfterApproval bool    `json:"is_public_after_approval"`
	PublishedAt           *string `json:"published_at,omitempty"`

	SenderContactInfo   *ContactInfoResponse `json:"sender_contact_info,omitempty"`
	ReceiverContactInfo *ContactInfoResponse `json:"receiver_contact_info,omitempty"`
	ContactInfoSharedAt *string              `json:"contact_info_shared_at,omitempty"`

	LastModifiedBy string `json:"last_modified_by"`
	LastModifiedAt string `json:"last_modified_at"`
	CreatedAt      string `json:"created_at"`

	Viewer               string   `json:"viewer"`
	VisibleSections      []string `json:"visible_sections"`
	ChangedSinceApproval bool     `json:"changed_since_approval"`
}

type AttachmentResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	FileURL   string `json:"file_url"`
	Kind      string `json:"kind"`
	AddedBy   string `json:"added_by"`
	CreatedAt string `json:"created_at"`
}

type ChangeResponse struct {
	ChangedBy string   `json:"changed_by"`
	Fields    []string `json:"fields"`
	ChangedAt string   `json:"changed_at"`
}

type ConceptResponse struct {
	ID          string                `json:"id"`
	OwnerID     string                `json:"owner_id"`
	Kind        string                `json:"kind"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Details     domain.ConceptDetails `json:"details"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

type ListingResponse struct {
	ID               string           `json:"id"`
	BookingID        string           `json:"booking_id"`
	ReceiverID       string           `json:"receiver_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	EventDate        *string          `json:"event_date,omitempty"`
	StartTime        string           `json:"start_time,omitempty"`
	EndTime          string           `json:"end_time,omitempty"`
	Venue            string           `json:"venue"`
	Address          string           `json:"address"`
	TicketPrice      *decimal.Decimal `json:"ticket_price,omitempty"`
	AudienceEstimate *int             `json:"audience_estimate,omitempty"`
	PublishedAt      string           `json:"published_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// DeferredResponse is returned with 202 when a booking went public but its
// listing will be created later.
type DeferredResponse struct {
	Booking BookingResponse `json:"booking"`
	Warning string          `json:"warning"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

var sectionNames = []struct {
	field negotiation.FieldSet
	name  string
}{
	{negotiation.FieldCounterpartContact, "counterpart_contact"},
	{negotiation.FieldOwnContact, "own_contact"},
	{negotiation.FieldPricing, "pricing"},
	{negotiation.FieldTechSpec, "tech_spec"},
	{negotiation.FieldHospitalityRider, "hospitality_rider"},
	{negotiation.FieldAttachments, "attachments"},
	{negotiation.FieldShowEmpty, "show_empty"},
}

func ToBookingResponse(v negotiation.BookingView) BookingResponse {
	b := v.Booking
	resp := BookingResponse{
		ID:                b.ID,
		SenderID:          b.SenderID,
		ReceiverID:        b.ReceiverID,
		Status:            string(b.Status),
		ConceptIDs:        b.ConceptIDs,
		SelectedConceptID: b.SelectedConceptID,

		Title:            b.Title,
		Description:      b.Description,
		Venue:            b.Venue,
		Address:          b.Address,
		EventDate:        formatDate(b.EventDate),
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		AudienceEstimate: b.AudienceEstimate,
		PersonalMessage:  b.PersonalMessage,
		TechSpec:         b.TechSpec,
		HospitalityRider: b.HospitalityRider,

		ReceiverAllowedAt:  formatTime(b.ReceiverAllowedAt),
		ApprovedBySender:   b.ApprovedBySender,
		ApprovedByReceiver: b.ApprovedByReceiver,
		SenderApprovedAt:   formatTime(b.SenderApprovedAt),
		ReceiverApprovedAt: formatTime(b.ReceiverApprovedAt),

		SenderReadAgreement:   b.SenderReadAgreement,
		ReceiverReadAgreement: b.ReceiverReadAgreement,

		PublishedBySender:     b.PublishedBySender,
		PublishedByReceiver:   b.PublishedByReceiver,
		IsPublicAfterApproval: b.IsPublicAfterApproval,
		PublishedAt:           formatTime(b.PublishedAt),

		SenderContactInfo:   toContact(b.SenderContactInfo),
		ReceiverContactInfo: toContact(b.ReceiverContactInfo),
		ContactInfoSharedAt: formatTime(b.ContactInfoSharedAt),

		LastModifiedBy: b.LastModifiedBy,
		LastModifiedAt: b.LastModifiedAt.Format(time.RFC3339Nano),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),

		Viewer:               string(v.Viewer),
		VisibleSections:      make([]string, 0, len(sectionNames)),
		ChangedSinceApproval: v.ChangedSinceApproval,
	}
	if resp.ConceptIDs == nil {
		resp.ConceptIDs = []string{}
	}
	if v.Fields.Has(negotiation.FieldPricing) {
		resp.Pricing = toPricing(b.Pricing)
	}
	for _, s := range sectionNames {
		if v.Fields.Has(s.field) {
			resp.VisibleSections = append(resp.VisibleSections, s.name)
		}
	}
	return resp
}

func ToAttachmentResponse(a *domain.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:        a.ID,
		FileName:  a.FileName,
		FileURL:   a.FileURL,
		Kind:      a.Kind,
		AddedBy:   a.AddedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToChangeResponse(c *domain.BookingChange) ChangeResponse {
	return ChangeResponse{
		ChangedBy: c.ChangedBy,
		Fields:    c.Fields,
		ChangedAt: c.ChangedAt.Format(time.RFC3339Nano),
	}
}

func ToConceptResponse(c *domain.Concept) ConceptResponse {
	return ConceptResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Kind:        string(c.Kind()),
		Title:       c.Title,
		Description: c.Description,
		Details:     c.Details,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:               l.ID,
		BookingID:        l.BookingID,
		ReceiverID:       l.ReceiverID,
		Title:            l.Title,
		Description:      l.Description,
		EventDate:        formatDate(l.EventDate),
		StartTime:        l.StartTime,
		EndTime:          l.EndTime,
		Venue:            l.Venue,
		Address:          l.Address,
		TicketPrice:      nullDecimal(l.TicketPrice),
		AudienceEstimate: l.AudienceEstimate,
		PublishedAt:      l.PublishedAt.Format(time.RFC3339),
	}
}

func toPricing(p domain.Pricing) *PricingResponse {
	return &PricingResponse{
		TicketPrice:    nullDecimal(p.TicketPrice),
		ArtistFee:      nullDecimal(p.ArtistFee),
		DoorDeal:       p.DoorDeal,
		DoorPercentage: nullDecimal(p.DoorPercentage),
		ByAgreement:    p.ByAgreement,
	}
}

func toContact(ci *domain.ContactInfo) *ContactInfoResponse {
	if ci.IsEmpty() {
		return nil
	}
	return &ContactInfoResponse{Name: ci.Name, Email: ci.Email, Phone: ci.Phone}
}

func nullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
