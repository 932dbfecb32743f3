package negotiation

import (
	"testing"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideRemoval_Reject(t *testing.T) {
	r, err := DecideRemoval(booking(domain.BookingStatusPending), domain.PartyReceiver, RemovalReject, Confirmation{})

	require.NoError(t, err)
	assert.Equal(t, RemovalReject, r.Kind)
	assert.False(t, r.WasPublic)
}

func TestDecideRemoval_RejectBySender(t *testing.T) {
	_, err := DecideRemoval(booking(domain.BookingStatusPending), domain.PartySender, RemovalReject, Confirmation{})

	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestDecideRemoval_RejectAfterAllow(t *testing.T) {
	_, err := DecideRemoval(booking(domain.BookingStatusAllowed), domain.PartyReceiver, RemovalReject, Confirmation{})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDecideRemoval_CancelNeedsAcknowledgement(t *testing.T) {
	for _, s := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusAllowed,
		domain.BookingStatusApprovedBySender,
		domain.BookingStatusApprovedByReceiver,
		domain.BookingStatusApprovedByBoth,
		domain.BookingStatusCancelled,
	} {
		t.Run(string(s), func(t *testing.T) {
			for _, actor := range []domain.Party{domain.PartySender, domain.PartyReceiver} {
				_, err := DecideRemoval(booking(s), actor, RemovalCancel, Confirmation{})
				assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
				assert.ErrorIs(t, err, domain.ErrPreconditionFailed)

				r, err := DecideRemoval(booking(s), actor, RemovalCancel, Confirmation{Acknowledged: true})
				require.NoError(t, err)
				assert.False(t, r.WasPublic)
			}
		})
	}
}

func TestDecideRemoval_PublishedNeedsTitle(t *testing.T) {
	tests := []struct {
		name    string
		confirm Confirmation
		wantErr bool
	}{
		{name: "no confirmation", confirm: Confirmation{}, wantErr: true},
		{name: "acknowledged only", confirm: Confirmation{Acknowledged: true}, wantErr: true},
		{name: "wrong title", confirm: Confirmation{Acknowledged: true, Title: "Saturday Jazz"}, wantErr: true},
		{name: "title without acknowledgement", confirm: Confirmation{Title: "Friday Jazz Night"}, wantErr: true},
		{name: "exact title", confirm: Confirmation{Acknowledged: true, Title: "Friday Jazz Night"}},
		{name: "case and spaces ignored", confirm: Confirmation{Acknowledged: true, Title: "  friday jazz NIGHT "}},
	}

	for _, s := range []domain.BookingStatus{domain.BookingStatusUpcoming, domain.BookingStatusPublished} {
		for _, tt := range tests {
			t.Run(string(s)+"/"+tt.name, func(t *testing.T) {
				r, err := DecideRemoval(booking(s), domain.PartySender, RemovalCancel, tt.confirm)

				if tt.wantErr {
					assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
					return
				}
				require.NoError(t, err)
				assert.True(t, r.WasPublic)
			})
		}
	}
}

func TestDecideRemoval_UnknownKind(t *testing.T) {
	_, err := DecideRemoval(booking(domain.BookingStatusAllowed), domain.PartySender, RemovalKind("archive"), Confirmation{Acknowledged: true})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
