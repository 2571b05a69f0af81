package services

import (
	"context"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
}

func (s *FavoriteService) AddToFavorites(ctx context.Context, userID, listingID int) error {
	return s.FavoriteRepo.AddToFavorites(ctx, userID, listingID)
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, userID, listingID int) error {
	return s.FavoriteRepo.RemoveFromFavorites(ctx, userID, listingID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, listingID int) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, listingID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userID)
}
