package negotiation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validatePricing, domain.Pricing{})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

var hundred = decimal.NewFromInt(100)

// validatePricing enforces that at most one pricing mode is chosen and that
// a door deal carries a percentage in (0, 100].
func validatePricing(sl validator.StructLevel) {
	p := sl.Current().Interface().(domain.Pricing)

	modes := 0
	if p.ArtistFee.Valid {
		modes++
	}
	if p.DoorDeal {
		modes++
	}
	if p.ByAgreement {
		modes++
	}
	if modes > 1 {
		sl.ReportError(p.ByAgreement, "Pricing", "Pricing", "pricing_mode", "")
	}

	if p.DoorDeal {
		if !p.DoorPercentage.Valid || !p.DoorPercentage.Decimal.IsPositive() || p.DoorPercentage.Decimal.GreaterThan(hundred) {
			sl.ReportError(p.DoorPercentage, "DoorPercentage", "DoorPercentage", "door_percentage", "")
		}
	} else if p.DoorPercentage.Valid {
		sl.ReportError(p.DoorPercentage, "DoorPercentage", "DoorPercentage", "door_deal", "")
	}

	for name, d := range map[string]decimal.NullDecimal{"TicketPrice": p.TicketPrice, "ArtistFee": p.ArtistFee} {
		if d.Valid && d.Decimal.IsNegative() {
			sl.ReportError(d, name, name, "gte", "0")
		}
	}
}

// ValidateTerms checks booking content. Errors wrap domain.ErrValidation.
func ValidateTerms(t domain.BookingTerms) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return Validate(t)
}

// Validate runs struct-tag validation on v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " exceeds maximum length"
	case "min", "gte":
		return field + " is below minimum"
	case "datetime":
		return field + " must be formatted as " + fe.Param()
	case "email":
		return field + " must be an email address"
	case "url":
		return field + " must be a URL"
	case "oneof":
		return field + " must be one of " + fe.Param()
	case "pricing_mode":
		return "only one of artist fee, door deal or by agreement may be chosen"
	case "door_percentage":
		return "door deal requires a percentage between 0 and 100"
	case "door_deal":
		return "door percentage is only allowed with a door deal"
	case "username":
		return field + " may only contain lowercase letters, digits, '.', '_' and '-'"
	case "ne":
		return field + " must not be " + fe.Param()
	default:
		return field + " is invalid"
	}
}
