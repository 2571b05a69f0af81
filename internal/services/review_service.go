package services

import (
	"context"
	"errors"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService struct {
	ReviewRepo *repositories.ReviewRepository
	StatsCache *repositories.RatingStatsCache
}

func (s *ReviewService) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	created, err := s.ReviewRepo.CreateReview(ctx, rev)
	if err != nil {
		return models.Review{}, err
	}
	// New ratings must show up in recommendations without waiting out the TTL.
	s.StatsCache.Invalidate(ctx)
	return created, nil
}

func (s *ReviewService) GetReviewsByListingID(ctx context.Context, listingID int) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByListingID(ctx, listingID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id int, userID int) error {
	if err := s.ReviewRepo.DeleteReview(ctx, id, userID); err != nil {
		return err
	}
	s.StatsCache.Invalidate(ctx)
	return nil
}
