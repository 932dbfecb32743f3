package service

import (
	"context"
	"fmt"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/negotiation"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ConceptService struct {
	repo        ports.ConceptRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger

	now func() time.Time
}

func NewConceptService(repo ports.ConceptRepo, bookingRepo ports.BookingRepo, logger logger.Logger) *ConceptService {
	return &ConceptService{
		repo:        repo,
		bookingRepo: bookingRepo,
		logger:      logger,
		now:         utcNow,
	}
}

func (s *ConceptService) Create(ctx context.Context, ownerID string, input domain.ConceptInput) (*domain.Concept, error) {
	if ownerID == "" {
		return nil, domain.ErrNotAuthorized
	}
	if err := validateConcept(input); err != nil {
		return nil, err
	}

	now := s.now()
	concept := &domain.Concept{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Details:     input.Details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, concept); err != nil {
		return nil, fmt.Errorf("create concept: %w", err)
	}

	s.logger.Info("concept created",
		logger.String("concept_id", concept.ID),
		logger.String("owner_id", ownerID),
		logger.String("kind", string(concept.Kind())),
	)
	return concept, nil
}

// Update replaces the content of a concept. A concept that a published
// booking refers to is frozen.
func (s *ConceptService) Update(ctx context.Context, id, ownerID string, input domain.ConceptInput) (*domain.Concept, error) {
	if err := validateConcept(input); err != nil {
		return nil, err
	}

	concept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if concept.OwnerID != ownerID {
		return nil, domain.ErrNotAuthorized
	}

	published, err := s.bookingRepo.CountPublishedByConcept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count published bookings: %w", err)
	}
	if published > 0 {
		return nil, domain.ErrConceptLocked
	}

	concept.Title = input.Title
	concept.Description = input.Description
	concept.Details = input.Details
	concept.UpdatedAt = s.now()

	if err = s.repo.Update(ctx, concept); err != nil {
		return nil, fmt.Errorf("update concept: %w", err)
	}
	return concept, nil
}

func (s *ConceptService) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConceptService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Concept, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func validateConcept(input domain.ConceptInput) error {
	if input.Details == nil {
		return fmt.Errorf("%w: concept details are required", domain.ErrValidation)
	}
	if err := negotiation.Validate(input); err != nil {
		return err
	}
	return negotiation.Validate(input.Details)
}
