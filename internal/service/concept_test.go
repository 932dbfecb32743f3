package service

import (
	"context"
	"testing"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConceptService(t *testing.T) (*ConceptService, *mocks.MockConceptRepo, *mocks.MockBookingRepo) {
	t.Helper()
	repo := mocks.NewMockConceptRepo(t)
	bookings := mocks.NewMockBookingRepo(t)
	svc := NewConceptService(repo, bookings, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, repo, bookings
}

func performanceInput() domain.ConceptInput {
	return domain.ConceptInput{
		Title: "Trio set",
		Details: domain.PerformanceConcept{
			Genre:            "jazz",
			SetLengthMinutes: 90,
			Price:            decimal.NewNullDecimal(decimal.RequireFromString("450.00")),
		},
	}
}

func TestConceptService_Create_Success(t *testing.T) {
	svc, repo, _ := newTestConceptService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), bob.ID, performanceInput())

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, bob.ID, c.OwnerID)
	assert.Equal(t, domain.ConceptKindPerformance, c.Kind())
	assert.Equal(t, testNow, c.CreatedAt)
}

func TestConceptService_Create_MissingDetails(t *testing.T) {
	svc, _, _ := newTestConceptService(t)

	_, err := svc.Create(context.Background(), bob.ID, domain.ConceptInput{Title: "Workshop"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConceptService_Create_InvalidTeachingLevel(t *testing.T) {
	svc, _, _ := newTestConceptService(t)

	_, err := svc.Create(context.Background(), bob.ID, domain.ConceptInput{
		Title:   "Workshop",
		Details: domain.TeachingConcept{Subject: "improv", Level: "expert"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConceptService_Update_Success(t *testing.T) {
	svc, repo, bookings := newTestConceptService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Concept{ID: "c1", OwnerID: bob.ID}, nil)
	bookings.EXPECT().CountPublishedByConcept(mock.Anything, "c1").Return(0, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Update(context.Background(), "c1", bob.ID, performanceInput())

	require.NoError(t, err)
	assert.Equal(t, "Trio set", c.Title)
	assert.Equal(t, testNow, c.UpdatedAt)
}

func TestConceptService_Update_LockedByPublishedBooking(t *testing.T) {
	svc, repo, bookings := newTestConceptService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Concept{ID: "c1", OwnerID: bob.ID}, nil)
	bookings.EXPECT().CountPublishedByConcept(mock.Anything, "c1").Return(1, nil)

	_, err := svc.Update(context.Background(), "c1", bob.ID, performanceInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConceptLocked)
	assert.ErrorIs(t, err, domain.ErrImmutableState)
}

func TestConceptService_Update_NotOwner(t *testing.T) {
	svc, repo, _ := newTestConceptService(t)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Concept{ID: "c1", OwnerID: bob.ID}, nil)

	_, err := svc.Update(context.Background(), "c1", alice.ID, performanceInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestListingService_List_ClampsLimit(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().List(mock.Anything, maxListingLimit, 0).Return([]*domain.Listing{{ID: "l1"}}, nil)

	listings, err := svc.List(context.Background(), 1000, 0)

	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestListingService_List_DefaultLimit(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().List(mock.Anything, defaultListingLimit, 40).Return(nil, nil)

	_, err := svc.List(context.Background(), 0, 40)

	require.NoError(t, err)
}

func TestListingService_List_NegativeOffset(t *testing.T) {
	svc := NewListingService(nil)

	_, err := svc.List(context.Background(), 10, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
