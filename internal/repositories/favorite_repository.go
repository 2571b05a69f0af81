package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/faraaz0786/pglife/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, userID, listingID int) error {
	query := `INSERT IGNORE INTO favorites (user_id, listing_id, created_at) VALUES (?, ?, NOW())`
	_, err := r.DB.ExecContext(ctx, query, userID, listingID)
	return err
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, listingID int) error {
	query := `DELETE FROM favorites WHERE user_id = ? AND listing_id = ?`
	_, err := r.DB.ExecContext(ctx, query, userID, listingID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, listingID int) (bool, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND listing_id = ?`
	var count int
	err := r.DB.QueryRowContext(ctx, query, userID, listingID).Scan(&count)
	return count > 0, err
}

func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	query := `
SELECT f.id, f.user_id, f.listing_id, f.created_at,
       l.id, l.owner_id, l.title, l.description, l.city, l.address, l.gender_policy, l.price, l.amenities, l.images, l.room_type, l.created_at, l.updated_at
FROM favorites f
JOIN listings l ON f.listing_id = l.id
WHERE f.user_id = ?
ORDER BY f.created_at DESC
`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.Favorite
	for rows.Next() {
		var fav models.Favorite
		var l models.Listing
		var amenitiesJSON, imagesJSON []byte
		var updatedAt sql.NullTime
		err := rows.Scan(
			&fav.ID, &fav.UserID, &fav.ListingID, &fav.CreatedAt,
			&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.City, &l.Address,
			&l.GenderPolicy, &l.Price, &amenitiesJSON, &imagesJSON, &l.RoomType,
			&l.CreatedAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(amenitiesJSON) > 0 {
			if err := json.Unmarshal(amenitiesJSON, &l.Amenities); err != nil {
				return nil, fmt.Errorf("failed to decode amenities json: %w", err)
			}
		}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &l.Images); err != nil {
				return nil, fmt.Errorf("failed to decode images json: %w", err)
			}
		}
		if updatedAt.Valid {
			l.UpdatedAt = &updatedAt.Time
		}
		fav.Listing = &l
		favs = append(favs, fav)
	}
	return favs, rows.Err()
}
