package service

import (
	"context"
	"fmt"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports"
)

const (
	defaultListingLimit = 20
	maxListingLimit     = 100
)

type ListingService struct {
	repo ports.ListingRepo
}

func NewListingService(repo ports.ListingRepo) *ListingService {
	return &ListingService{repo: repo}
}

// List returns public listings, newest first.
func (s *ListingService) List(ctx context.Context, limit, offset int) ([]*domain.Listing, error) {
	if limit <= 0 {
		limit = defaultListingLimit
	}
	if limit > maxListingLimit {
		limit = maxListingLimit
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrValidation)
	}
	return s.repo.List(ctx, limit, offset)
}
