package negotiation

import (
	"strings"
	"testing"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func TestValidateTerms(t *testing.T) {
	valid := func() domain.BookingTerms {
		return domain.BookingTerms{
			Title:     "Friday Jazz Night",
			StartTime: "20:00",
			EndTime:   "23:30",
			Pricing:   domain.Pricing{TicketPrice: dec(250), ArtistFee: dec(5000)},
		}
	}

	tests := []struct {
		name    string
		mutate  func(t *domain.BookingTerms)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.BookingTerms) {}},
		{name: "by agreement", mutate: func(t *domain.BookingTerms) {
			t.Pricing = domain.Pricing{ByAgreement: true}
		}},
		{name: "door deal", mutate: func(t *domain.BookingTerms) {
			t.Pricing = domain.Pricing{DoorDeal: true, DoorPercentage: dec(70)}
		}},
		{name: "door deal at hundred percent", mutate: func(t *domain.BookingTerms) {
			t.Pricing = domain.Pricing{DoorDeal: true, DoorPercentage: dec(100)}
		}},
		{name: "missing title", mutate: func(t *domain.BookingTerms) {
			t.Title = " "
		}, wantErr: "title is required"},
		{name: "fee and door deal", mutate: func(t *domain.BookingTerms) {
			t.Pricing.DoorDeal = true
			t.Pricing.DoorPercentage = dec(50)
		}, wantErr: "only one of"},
		{name: "door deal without percentage", mutate: func(t *domain.BookingTerms) {
			t.Pricing = domain.Pricing{DoorDeal: true}
		}, wantErr: "door deal requires a percentage"},
		{name: "door percentage above hundred", mutate: func(t *domain.BookingTerms) {
			t.Pricing = domain.Pricing{DoorDeal: true, DoorPercentage: dec(120)}
		}, wantErr: "door deal requires a percentage"},
		{name: "percentage without door deal", mutate: func(t *domain.BookingTerms) {
			t.Pricing.DoorPercentage = dec(10)
		}, wantErr: "only allowed with a door deal"},
		{name: "negative ticket price", mutate: func(t *domain.BookingTerms) {
			t.Pricing.TicketPrice = dec(-1)
		}, wantErr: "TicketPrice is below minimum"},
		{name: "bad start time", mutate: func(t *domain.BookingTerms) {
			t.StartTime = "8pm"
		}, wantErr: "must be formatted as 15:04"},
		{name: "title too long", mutate: func(t *domain.BookingTerms) {
			t.Title = strings.Repeat("x", 201)
		}, wantErr: "exceeds maximum length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := valid()
			tt.mutate(&terms)

			err := ValidateTerms(terms)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ContactEmail(t *testing.T) {
	assert.NoError(t, Validate(domain.ContactInfo{Email: "ola@example.com"}))
	assert.ErrorIs(t, Validate(domain.ContactInfo{Email: "not-an-email"}), domain.ErrValidation)
}
