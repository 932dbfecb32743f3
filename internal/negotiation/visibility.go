package negotiation

import (
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// FieldSet is a bit set of the gated sections of a booking.
type FieldSet uint16

const (
	FieldCounterpartContact FieldSet = 1 << iota
	FieldOwnContact
	FieldPricing
	FieldTechSpec
	FieldHospitalityRider
	FieldAttachments
	// FieldShowEmpty asks the UI to render optional sections even when they
	// hold no data, so that the viewer can fill them in.
	FieldShowEmpty
)

func (s FieldSet) Has(f FieldSet) bool {
	return s&f == f
}

// ViewOptions are display concerns layered on top of the gate.
type ViewOptions struct {
	// ForceShowAll is set when the viewer administers the profile being
	// viewed. It shows the viewer's own and empty sections but never opens
	// the counterpart's contact details.
	ForceShowAll bool
}

// VisibleFields computes which gated sections of b the viewer may see.
func VisibleFields(b *domain.Booking, viewer domain.Party, opts ViewOptions) FieldSet {
	var fs FieldSet

	own := b.ContactInfo(viewer)
	if !own.IsEmpty() || opts.ForceShowAll {
		fs |= FieldOwnContact
	}
	if contactShared(b) && !b.ContactInfo(viewer.Other()).IsEmpty() {
		fs |= FieldCounterpartContact
	}

	if termsVisible(b.Status) {
		if hasPricing(b.Pricing) || opts.ForceShowAll {
			fs |= FieldPricing
		}
		if b.TechSpec != "" || opts.ForceShowAll {
			fs |= FieldTechSpec
		}
		if b.HospitalityRider != "" || opts.ForceShowAll {
			fs |= FieldHospitalityRider
		}
		fs |= FieldAttachments
	}

	if opts.ForceShowAll {
		fs |= FieldShowEmpty
	}
	return fs
}

// contactShared reports whether contact details have been released to both
// parties.
func contactShared(b *domain.Booking) bool {
	return (b.ApprovedBySender && b.ApprovedByReceiver) ||
		b.ContactInfoSharedAt != nil ||
		IsPublished(b.Status)
}

// termsVisible reports whether negotiation terms may be shown. They stay
// hidden while a request is pending so nothing leaks before acceptance.
func termsVisible(s domain.BookingStatus) bool {
	return CanEdit(s) || IsPublished(s)
}

func hasPricing(p domain.Pricing) bool {
	return p.TicketPrice.Valid || p.ArtistFee.Valid || p.DoorDeal || p.ByAgreement
}

// BookingView is a booking redacted for one viewer.
type BookingView struct {
	Booking *domain.Booking
	Viewer  domain.Party
	Fields  FieldSet
	// ChangedSinceApproval warns the viewer that terms moved after an
	// approval was given.
	ChangedSinceApproval bool
}

// Redact returns a copy of b with every section the viewer may not see
// cleared.
func Redact(b *domain.Booking, viewer domain.Party, opts ViewOptions) BookingView {
	fs := VisibleFields(b, viewer, opts)
	c := b.Clone()

	if !fs.Has(FieldCounterpartContact) {
		if viewer == domain.PartySender {
			c.ReceiverContactInfo = nil
		} else {
			c.SenderContactInfo = nil
		}
	}
	if !fs.Has(FieldPricing) {
		c.Pricing = domain.Pricing{}
	}
	if !fs.Has(FieldTechSpec) {
		c.TechSpec = ""
	}
	if !fs.Has(FieldHospitalityRider) {
		c.HospitalityRider = ""
	}

	return BookingView{
		Booking:              c,
		Viewer:               viewer,
		Fields:               fs,
		ChangedSinceApproval: HasChangedSinceApproval(b, viewer),
	}
}
