package services

import (
	"context"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

type ListingService struct {
	ListingRepo *repositories.ListingRepository
	ReviewRepo  *repositories.ReviewRepository
}

func (s *ListingService) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	if !models.ValidGenderPolicy(l.GenderPolicy) {
		l.GenderPolicy = models.GenderAny
	}
	if !models.ValidRoomType(l.RoomType) {
		l.RoomType = models.RoomSingle
	}
	return s.ListingRepo.CreateListing(ctx, l)
}

// ListingWithRating is the single-listing view with its review summary.
type ListingWithRating struct {
	models.Listing
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
}

func (s *ListingService) GetListingByID(ctx context.Context, id int) (ListingWithRating, error) {
	l, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return ListingWithRating{}, err
	}
	avg, count := s.ReviewRepo.GetListingRatingStats(ctx, id)
	return ListingWithRating{Listing: l, RatingAvg: avg, RatingCount: count}, nil
}

// UpdateListing rejects updates from anyone but the listing's owner.
func (s *ListingService) UpdateListing(ctx context.Context, l models.Listing, ownerID int) (models.Listing, error) {
	existing, err := s.ListingRepo.GetListingByID(ctx, l.ID)
	if err != nil {
		return models.Listing{}, err
	}
	if existing.OwnerID != ownerID {
		return models.Listing{}, models.ErrNotOwner
	}
	l.OwnerID = existing.OwnerID
	if !models.ValidGenderPolicy(l.GenderPolicy) {
		l.GenderPolicy = existing.GenderPolicy
	}
	if !models.ValidRoomType(l.RoomType) {
		l.RoomType = existing.RoomType
	}
	return s.ListingRepo.UpdateListing(ctx, l)
}

func (s *ListingService) DeleteListing(ctx context.Context, id int, ownerID int) error {
	existing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return models.ErrNotOwner
	}
	return s.ListingRepo.DeleteListing(ctx, id)
}

func (s *ListingService) GetListingsByOwnerID(ctx context.Context, ownerID int) ([]models.Listing, error) {
	return s.ListingRepo.GetListingsByOwnerID(ctx, ownerID)
}

// SeedDemoListings inserts the bundled sample pool for an owner. Dev only;
// the handler gates it behind an env flag.
func (s *ListingService) SeedDemoListings(ctx context.Context, ownerID int) (int, error) {
	inserted := 0
	for _, l := range DemoListings() {
		l.ID = 0
		l.OwnerID = ownerID
		if _, err := s.ListingRepo.CreateListing(ctx, l); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
