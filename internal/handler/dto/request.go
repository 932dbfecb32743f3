package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,max=64"`
	DisplayName    string `json:"display_name" binding:"max=200"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type ContactInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

func (r *ContactInfoRequest) ToDomain() *domain.ContactInfo {
	if r == nil {
		return nil
	}
	return &domain.ContactInfo{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		Phone: strings.TrimSpace(r.Phone),
	}
}

type PricingRequest struct {
	TicketPrice    decimal.NullDecimal `json:"ticket_price"`
	ArtistFee      decimal.NullDecimal `json:"artist_fee"`
	DoorDeal       bool                `json:"door_deal"`
	DoorPercentage decimal.NullDecimal `json:"door_percentage"`
	ByAgreement    bool                `json:"by_agreement"`
}

func (r PricingRequest) ToDomain() domain.Pricing {
	return domain.Pricing{
		TicketPrice:    r.TicketPrice,
		ArtistFee:      r.ArtistFee,
		DoorDeal:       r.DoorDeal,
		DoorPercentage: r.DoorPercentage,
		ByAgreement:    r.ByAgreement,
	}
}

type TermsRequest struct {
	Title            string         `json:"title" binding:"required"`
	Description      string         `json:"description"`
	Venue            string         `json:"venue"`
	Address          string         `json:"address"`
	EventDate        string         `json:"event_date"`
	StartTime        string         `json:"start_time"`
	EndTime          string         `json:"end_time"`
	AudienceEstimate *int           `json:"audience_estimate"`
	Pricing          PricingRequest `json:"pricing"`
	PersonalMessage  string         `json:"personal_message"`
	TechSpec         string         `json:"tech_spec"`
	HospitalityRider string         `json:"hospitality_rider"`
}

func (r TermsRequest) ToDomain() (domain.BookingTerms, error) {
	date, err := parseDate(r.EventDate)
	if err != nil {
		return domain.BookingTerms{}, err
	}
	return domain.BookingTerms{
		Title:            r.Title,
		Description:      r.Description,
		Venue:            r.Venue,
		Address:          r.Address,
		EventDate:        date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		AudienceEstimate: r.AudienceEstimate,
		Pricing:          r.Pricing.ToDomain(),
		PersonalMessage:  r.PersonalMessage,
		TechSpec:         r.TechSpec,
		HospitalityRider: r.HospitalityRider,
	}, nil
}

type CreateBookingRequest struct {
	ReceiverID            string              `json:"receiver_id" binding:"required,uuid"`
	ConceptIDs            []string            `json:"concept_ids" binding:"dive,uuid"`
	SenderContactInfo     *ContactInfoRequest `json:"contact_info"`
	IsPublicAfterApproval *bool               `json:"is_public_after_approval"`
	TermsRequest
}

func (r CreateBookingRequest) ToInput() (domain.CreateBookingInput, error) {
	terms, err := r.TermsRequest.ToDomain()
	if err != nil {
		return domain.CreateBookingInput{}, err
	}
	return domain.CreateBookingInput{
		ReceiverID:            r.ReceiverID,
		ConceptIDs:            r.ConceptIDs,
		Terms:                 terms,
		SenderContactInfo:     r.SenderContactInfo.ToDomain(),
		IsPublicAfterApproval: r.IsPublicAfterApproval,
	}, nil
}

// EditBookingRequest carries only the fields being changed. An empty
// event_date or selected_concept_id clears the value.
type EditBookingRequest struct {
	Title             *string         `json:"title"`
	Description       *string         `json:"description"`
	Venue             *string         `json:"venue"`
	Address           *string         `json:"address"`
	EventDate         *string         `json:"event_date"`
	StartTime         *string         `json:"start_time"`
	EndTime           *string         `json:"end_time"`
	AudienceEstimate  *int            `json:"audience_estimate"`
	Pricing           *PricingRequest `json:"pricing"`
	PersonalMessage   *string         `json:"personal_message"`
	TechSpec          *string         `json:"tech_spec"`
	HospitalityRider  *string         `json:"hospitality_rider"`
	SelectedConceptID *string         `json:"selected_concept_id"`
}

func (r EditBookingRequest) ToPatch() (domain.TermsPatch, error) {
	p := domain.TermsPatch{
		Title:             r.Title,
		Description:       r.Description,
		Venue:             r.Venue,
		Address:           r.Address,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		AudienceEstimate:  r.AudienceEstimate,
		PersonalMessage:   r.PersonalMessage,
		TechSpec:          r.TechSpec,
		HospitalityRider:  r.HospitalityRider,
		SelectedConceptID: r.SelectedConceptID,
	}
	if r.Pricing != nil {
		pricing := r.Pricing.ToDomain()
		p.Pricing = &pricing
	}
	if r.EventDate != nil {
		date, err := parseDate(*r.EventDate)
		if err != nil {
			return p, err
		}
		if date == nil {
			date = &time.Time{}
		}
		p.EventDate = date
	}
	return p, nil
}

type AllowRequest struct {
	ContactInfo *ContactInfoRequest `json:"contact_info"`
}

type CancelRequest struct {
	Confirm      bool   `json:"confirm"`
	ConfirmTitle string `json:"confirm_title"`
}

type AttachmentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required,url"`
	Kind     string `json:"kind"`
}

type ConceptRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=performance teaching"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Details     json.RawMessage `json:"details"`
}

func (r ConceptRequest) ToInput() (domain.ConceptInput, error) {
	details, err := domain.DecodeConceptDetails(domain.ConceptKind(r.Kind), r.Details)
	if err != nil {
		return domain.ConceptInput{}, err
	}
	return domain.ConceptInput{
		Title:       r.Title,
		Description: r.Description,
		Details:     details,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event_date format, expected YYYY-MM-DD", domain.ErrValidation)
	}
	return &t, nil
}
