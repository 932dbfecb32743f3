package negotiation

import (
	"fmt"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

// ReapprovalPolicy decides what happens to the editor's own approval when
// they change terms they had already approved.
type ReapprovalPolicy string

const (
	// EditorKeepsApproval leaves the editor's approval in place; only the
	// counterpart has to approve again.
	EditorKeepsApproval ReapprovalPolicy = "editor_keeps_approval"
	// EditorMustReapprove resets both approvals on every edit.
	EditorMustReapprove ReapprovalPolicy = "editor_must_reapprove"
)

// ReapprovalOutcome is the effect of an edit on the approval state.
type ReapprovalOutcome struct {
	// Reset lists the parties whose approval was invalidated.
	Reset  []domain.Party
	Status domain.BookingStatus
}

func (o ReapprovalOutcome) WasReset(p domain.Party) bool {
	for _, r := range o.Reset {
		if r == p {
			return true
		}
	}
	return false
}

// Reapprove computes which approvals an edit made by editor at editedAt
// invalidates. A counterpart approval that predates the edit is always reset;
// the editor's own approval survives only under EditorKeepsApproval. The
// caller must pass a freshly read booking.
func Reapprove(b *domain.Booking, editor domain.Party, editedAt time.Time, policy ReapprovalPolicy) ReapprovalOutcome {
	approved := map[domain.Party]bool{
		domain.PartySender:   b.ApprovedBySender,
		domain.PartyReceiver: b.ApprovedByReceiver,
	}
	var out ReapprovalOutcome

	other := editor.Other()
	if approved[other] && stale(b.ApprovedAt(other), editedAt) {
		approved[other] = false
		out.Reset = append(out.Reset, other)
	}
	if approved[editor] && policy == EditorMustReapprove {
		approved[editor] = false
		out.Reset = append(out.Reset, editor)
	}

	out.Status = statusFromApprovals(approved[domain.PartySender], approved[domain.PartyReceiver])
	return out
}

// stale reports whether an approval given at approvedAt predates an edit at
// editedAt. A missing timestamp counts as stale.
func stale(approvedAt *time.Time, editedAt time.Time) bool {
	return approvedAt == nil || approvedAt.Before(editedAt)
}

// HasChangedSinceApproval reports whether the booking was edited after the
// viewer's own approval or after the counterpart's approval. The UI uses it
// to warn the viewer before they commit an approval.
func HasChangedSinceApproval(b *domain.Booking, viewer domain.Party) bool {
	for _, p := range []domain.Party{viewer, viewer.Other()} {
		at := b.ApprovedAt(p)
		if at != nil && b.LastModifiedAt.After(*at) {
			return true
		}
	}
	return false
}

// EditResult is the outcome of an edit of negotiable fields.
type EditResult struct {
	Patch      domain.BookingPatch
	Reapproval ReapprovalOutcome
	Terms      domain.BookingTerms
}

// Edit applies a change of negotiable fields made by editor. It bumps the
// audit fields, clears the counterpart's read receipt and resets approvals
// that the change makes stale.
func Edit(b *domain.Booking, editor domain.Party, change domain.TermsPatch, now time.Time, policy ReapprovalPolicy) (EditResult, error) {
	var res EditResult
	if !CanEdit(b.Status) {
		return res, fmt.Errorf("%w: status %s", domain.ErrImmutableState, b.Status)
	}
	if change.IsEmpty() {
		return res, fmt.Errorf("%w: nothing to change", domain.ErrValidation)
	}
	if id := change.SelectedConceptID; id != nil && *id != "" && !b.HasConcept(*id) {
		return res, fmt.Errorf("%w: concept %s is not offered in this booking", domain.ErrValidation, *id)
	}

	terms := change.Merge(b.BookingTerms)
	if err := ValidateTerms(terms); err != nil {
		return res, err
	}

	res.Terms = terms
	res.Patch = touch(b, editor, now, policy, &res.Reapproval)
	res.Patch.Terms = domain.Set(terms)
	res.Patch.TermFields = change.Fields()
	if id := change.SelectedConceptID; id != nil {
		if *id == "" {
			res.Patch.SelectedConceptID = domain.Set[*string](nil)
		} else {
			res.Patch.SelectedConceptID = domain.Set(ptr(*id))
		}
	}
	res.Patch.ChangedFields = change.Fields()
	return res, nil
}

// Touch records a change of negotiable content that is not a field of the
// booking row itself, such as a new attachment.
func Touch(b *domain.Booking, editor domain.Party, now time.Time, policy ReapprovalPolicy, what string) (EditResult, error) {
	var res EditResult
	if !CanEdit(b.Status) {
		return res, fmt.Errorf("%w: status %s", domain.ErrImmutableState, b.Status)
	}
	res.Terms = b.BookingTerms
	res.Patch = touch(b, editor, now, policy, &res.Reapproval)
	res.Patch.ChangedFields = []string{what}
	return res, nil
}

func touch(b *domain.Booking, editor domain.Party, now time.Time, policy ReapprovalPolicy, out *ReapprovalOutcome) domain.BookingPatch {
	var p domain.BookingPatch
	editedAt := after(now, b.LastModifiedAt)

	// Правки конкурируют по принципу last-write-wins, поэтому защищаемся только
	// статусом, а отметку о прочтении сбрасываем всегда.
	p.ExpectStatus = domain.Set(b.Status)
	p.LastModifiedBy = domain.Set(b.UserOf(editor))
	p.LastModifiedAt = domain.Set(editedAt)
	p.SetRead(editor.Other(), false)

	*out = Reapprove(b, editor, editedAt, policy)
	for _, party := range out.Reset {
		p.SetApproval(party, nil)
	}
	if out.Status != b.Status {
		p.Status = domain.Set(out.Status)
	}
	return p
}
