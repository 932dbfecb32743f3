package domain

import "time"

// Field is a slot of a partial update. The store leaves unset slots untouched.
type Field[T any] struct {
	set bool
	val T
}

func Set[T any](v T) Field[T] {
	return Field[T]{set: true, val: v}
}

func (f Field[T]) Get() (T, bool) {
	return f.val, f.set
}

func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) apply(dst *T) {
	if f.set {
		*dst = f.val
	}
}

// BookingPatch is a partial set of booking columns produced by the
// negotiation engine. ExpectStatus and ExpectLastModifiedAt, when set, make
// the write conditional on the stored row still being the one the patch was
// computed from.
type BookingPatch struct {
	ExpectStatus         Field[BookingStatus]
	ExpectLastModifiedAt Field[time.Time]

	Status            Field[BookingStatus]
	Terms             Field[BookingTerms]
	SelectedConceptID Field[*string]
	ReceiverAllowedAt Field[*time.Time]

	// TermFields names the parts of Terms to store, as returned by
	// TermsPatch.Fields. Other term columns are left untouched.
	TermFields []string

	ApprovedBySender   Field[bool]
	ApprovedByReceiver Field[bool]
	SenderApprovedAt   Field[*time.Time]
	ReceiverApprovedAt Field[*time.Time]

	SenderReadAgreement   Field[bool]
	ReceiverReadAgreement Field[bool]

	PublishedBySender   Field[bool]
	PublishedByReceiver Field[bool]
	PublishedAt         Field[*time.Time]

	SenderContactInfo   Field[*ContactInfo]
	ReceiverContactInfo Field[*ContactInfo]
	ContactInfoSharedAt Field[*time.Time]

	LastModifiedBy Field[string]
	LastModifiedAt Field[time.Time]

	// ChangedFields is written to the change history alongside the update.
	ChangedFields []string
}

// Expect makes the patch conditional on b being the stored version.
func (p *BookingPatch) Expect(b *Booking) {
	p.ExpectStatus = Set(b.Status)
	p.ExpectLastModifiedAt = Set(b.LastModifiedAt)
}

// Matches reports whether b satisfies the guards of p. The store applies the
// same check in its conditional update.
func (p *BookingPatch) Matches(b *Booking) bool {
	if s, ok := p.ExpectStatus.Get(); ok && s != b.Status {
		return false
	}
	if at, ok := p.ExpectLastModifiedAt.Get(); ok && !at.Equal(b.LastModifiedAt) {
		return false
	}
	return true
}

// IsEmpty reports whether the patch changes no column.
func (p *BookingPatch) IsEmpty() bool {
	return !(p.Status.IsSet() || p.Terms.IsSet() || p.SelectedConceptID.IsSet() ||
		p.ReceiverAllowedAt.IsSet() ||
		p.ApprovedBySender.IsSet() || p.ApprovedByReceiver.IsSet() ||
		p.SenderApprovedAt.IsSet() || p.ReceiverApprovedAt.IsSet() ||
		p.SenderReadAgreement.IsSet() || p.ReceiverReadAgreement.IsSet() ||
		p.PublishedBySender.IsSet() || p.PublishedByReceiver.IsSet() || p.PublishedAt.IsSet() ||
		p.SenderContactInfo.IsSet() || p.ReceiverContactInfo.IsSet() || p.ContactInfoSharedAt.IsSet() ||
		p.LastModifiedBy.IsSet() || p.LastModifiedAt.IsSet())
}

// Apply writes the set slots of the patch into b.
func (p *BookingPatch) Apply(b *Booking) {
	p.Status.apply(&b.Status)
	p.Terms.apply(&b.BookingTerms)
	p.SelectedConceptID.apply(&b.SelectedConceptID)
	p.ReceiverAllowedAt.apply(&b.ReceiverAllowedAt)
	p.ApprovedBySender.apply(&b.ApprovedBySender)
	p.ApprovedByReceiver.apply(&b.ApprovedByReceiver)
	p.SenderApprovedAt.apply(&b.SenderApprovedAt)
	p.ReceiverApprovedAt.apply(&b.ReceiverApprovedAt)
	p.SenderReadAgreement.apply(&b.SenderReadAgreement)
	p.ReceiverReadAgreement.apply(&b.ReceiverReadAgreement)
	p.PublishedBySender.apply(&b.PublishedBySender)
	p.PublishedByReceiver.apply(&b.PublishedByReceiver)
	p.PublishedAt.apply(&b.PublishedAt)
	p.SenderContactInfo.apply(&b.SenderContactInfo)
	p.ReceiverContactInfo.apply(&b.ReceiverContactInfo)
	p.ContactInfoSharedAt.apply(&b.ContactInfoSharedAt)
	p.LastModifiedBy.apply(&b.LastModifiedBy)
	p.LastModifiedAt.apply(&b.LastModifiedAt)
}

// SetApproval sets the approval flag of p together with its timestamp so the
// two can never disagree.
func (p *BookingPatch) SetApproval(party Party, at *time.Time) {
	approved := at != nil
	if party == PartySender {
		p.ApprovedBySender = Set(approved)
		p.SenderApprovedAt = Set(at)
		return
	}
	p.ApprovedByReceiver = Set(approved)
	p.ReceiverApprovedAt = Set(at)
}

func (p *BookingPatch) SetRead(party Party, read bool) {
	if party == PartySender {
		p.SenderReadAgreement = Set(read)
		return
	}
	p.ReceiverReadAgreement = Set(read)
}

func (p *BookingPatch) SetPublished(party Party, published bool) {
	if party == PartySender {
		p.PublishedBySender = Set(published)
		return
	}
	p.PublishedByReceiver = Set(published)
}

func (p *BookingPatch) SetContactInfo(party Party, ci *ContactInfo) {
	if party == PartySender {
		p.SenderContactInfo = Set(ci)
		return
	}
	p.ReceiverContactInfo = Set(ci)
}
