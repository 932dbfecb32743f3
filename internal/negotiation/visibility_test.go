package negotiation

import (
	"testing"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// filled returns a booking in status s with every gated section populated.
func filled(s domain.BookingStatus) *domain.Booking {
	b := booking(s)
	b.SenderContactInfo = &domain.ContactInfo{Name: "Ola", Email: "ola@example.com"}
	b.ReceiverContactInfo = &domain.ContactInfo{Name: "Kari", Phone: "+47 900 00 000"}
	b.Pricing = domain.Pricing{
		TicketPrice: decimal.NewNullDecimal(decimal.NewFromInt(250)),
		ArtistFee:   decimal.NewNullDecimal(decimal.NewFromInt(5000)),
	}
	b.TechSpec = "2 monitors, DI box"
	b.HospitalityRider = "water"
	return b
}

func TestVisibleFields_Matrix(t *testing.T) {
	terms := FieldPricing | FieldTechSpec | FieldHospitalityRider | FieldAttachments

	tests := []struct {
		status domain.BookingStatus
		want   FieldSet
	}{
		{status: domain.BookingStatusPending, want: FieldOwnContact},
		{status: domain.BookingStatusAllowed, want: FieldOwnContact | terms},
		{status: domain.BookingStatusApprovedBySender, want: FieldOwnContact | terms},
		{status: domain.BookingStatusApprovedByReceiver, want: FieldOwnContact | terms},
		{status: domain.BookingStatusApprovedByBoth, want: FieldOwnContact | FieldCounterpartContact | terms},
		{status: domain.BookingStatusUpcoming, want: FieldOwnContact | FieldCounterpartContact | terms},
		{status: domain.BookingStatusPublished, want: FieldOwnContact | FieldCounterpartContact | terms},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			for _, viewer := range []domain.Party{domain.PartySender, domain.PartyReceiver} {
				assert.Equal(t, tt.want, VisibleFields(filled(tt.status), viewer, ViewOptions{}), viewer)
			}
		})
	}
}

func TestVisibleFields_EmptySectionsHidden(t *testing.T) {
	b := booking(domain.BookingStatusApprovedByBoth)

	fs := VisibleFields(b, domain.PartySender, ViewOptions{})

	assert.Equal(t, FieldAttachments, fs)
}

func TestVisibleFields_ContactSharedOnceStaysShared(t *testing.T) {
	// одобрение сброшено правкой, но контакты уже были раскрыты
	b := filled(domain.BookingStatusApprovedBySender)
	shared := t0
	b.ContactInfoSharedAt = &shared

	assert.True(t, VisibleFields(b, domain.PartySender, ViewOptions{}).Has(FieldCounterpartContact))
}

func TestVisibleFields_ForceShowAll(t *testing.T) {
	opts := ViewOptions{ForceShowAll: true}

	fs := VisibleFields(booking(domain.BookingStatusAllowed), domain.PartyReceiver, opts)
	assert.Equal(t, FieldOwnContact|FieldPricing|FieldTechSpec|FieldHospitalityRider|FieldAttachments|FieldShowEmpty, fs)

	for _, s := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusAllowed,
		domain.BookingStatusApprovedBySender,
	} {
		fs := VisibleFields(filled(s), domain.PartySender, opts)
		assert.False(t, fs.Has(FieldCounterpartContact), s)
	}

	pending := VisibleFields(filled(domain.BookingStatusPending), domain.PartySender, opts)
	assert.Equal(t, FieldOwnContact|FieldShowEmpty, pending)
}

// A pending request shows neither terms nor contact details of the
// counterpart.
func TestRedact_PendingRequest(t *testing.T) {
	b := filled(domain.BookingStatusPending)

	v := Redact(b, domain.PartyReceiver, ViewOptions{})

	assert.Equal(t, domain.PartyReceiver, v.Viewer)
	assert.Nil(t, v.Booking.SenderContactInfo)
	assert.Equal(t, b.ReceiverContactInfo, v.Booking.ReceiverContactInfo)
	assert.Equal(t, domain.Pricing{}, v.Booking.Pricing)
	assert.Empty(t, v.Booking.TechSpec)
	assert.Empty(t, v.Booking.HospitalityRider)
	assert.Equal(t, b.Title, v.Booking.Title)
}

func TestRedact_ApprovedByBoth(t *testing.T) {
	b := filled(domain.BookingStatusApprovedByBoth)

	v := Redact(b, domain.PartySender, ViewOptions{})

	assert.Equal(t, b.ReceiverContactInfo, v.Booking.ReceiverContactInfo)
	assert.Equal(t, b.Pricing, v.Booking.Pricing)
	assert.Equal(t, b.TechSpec, v.Booking.TechSpec)
	assert.False(t, v.ChangedSinceApproval)
}

func TestRedact_DoesNotMutateInput(t *testing.T) {
	b := filled(domain.BookingStatusPending)
	before := b.Clone()

	v := Redact(b, domain.PartySender, ViewOptions{})

	assert.Equal(t, before, b)
	assert.NotSame(t, b, v.Booking)
}

func TestRedact_FlagsChangeSinceApproval(t *testing.T) {
	b := filled(domain.BookingStatusApprovedByReceiver)
	b.LastModifiedAt = t1

	assert.True(t, Redact(b, domain.PartySender, ViewOptions{}).ChangedSinceApproval)
}
