package ports

import (
	"context"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
)

type ConceptRepo interface {
	Create(ctx context.Context, c *domain.Concept) error
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	Update(ctx context.Context, c *domain.Concept) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Concept, error)
}
