package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ConceptKind string

const (
	ConceptKindPerformance ConceptKind = "performance"
	ConceptKindTeaching    ConceptKind = "teaching"
)

// ConceptDetails is the kind-specific part of a concept. It is implemented
// only by PerformanceConcept and TeachingConcept.
type ConceptDetails interface {
	Kind() ConceptKind
	isConceptDetails()
}

type PerformanceConcept struct {
	Genre            string              `json:"genre"              validate:"max=100"`
	SetLengthMinutes int                 `json:"set_length_minutes" validate:"min=0,max=1440"`
	Price            decimal.NullDecimal `json:"price"`
	AudienceCapacity int                 `json:"audience_capacity"  validate:"min=0"`
	TechRequirements string              `json:"tech_requirements"  validate:"max=20000"`
}

func (PerformanceConcept) Kind() ConceptKind { return ConceptKindPerformance }
func (PerformanceConcept) isConceptDetails() {}

type TeachingConcept struct {
	Subject        string              `json:"subject"         validate:"required,max=100"`
	Level          string              `json:"level"           validate:"omitempty,oneof=beginner intermediate advanced all"`
	SessionMinutes int                 `json:"session_minutes" validate:"min=0,max=1440"`
	MaxStudents    int                 `json:"max_students"    validate:"min=0"`
	Price          decimal.NullDecimal `json:"price"`
}

func (TeachingConcept) Kind() ConceptKind { return ConceptKindTeaching }
func (TeachingConcept) isConceptDetails() {}

// Concept is an offer template owned by a receiver.
type Concept struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Details     ConceptDetails `json:"details"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (c *Concept) Kind() ConceptKind {
	if c.Details == nil {
		return ""
	}
	return c.Details.Kind()
}

type ConceptInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=5000"`
	Details     ConceptDetails
}

// DecodeConceptDetails decodes raw JSON into the variant named by kind.
func DecodeConceptDetails(kind ConceptKind, raw []byte) (ConceptDetails, error) {
	switch kind {
	case ConceptKindPerformance:
		var d PerformanceConcept
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &d); err != nil {
				return nil, fmt.Errorf("%w: performance details: %v", ErrValidation, err)
			}
		}
		return d, nil
	case ConceptKindTeaching:
		var d TeachingConcept
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &d); err != nil {
				return nil, fmt.Errorf("%w: teaching details: %v", ErrValidation, err)
			}
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown concept kind %q", ErrValidation, kind)
	}
}
