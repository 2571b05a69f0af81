package repositories

import (
	"context"
	"database/sql"

	"github.com/faraaz0786/pglife/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE user_id = ? AND listing_id = ?`, rev.UserID, rev.ListingID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	query := `
INSERT INTO reviews (user_id, listing_id, rating, comment, created_at, updated_at)
VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		rev.UserID, rev.ListingID, rev.Rating, rev.Comment,
	)
	if err != nil {
		return models.Review{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}
	rev.ID = int(id)
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByListingID(ctx context.Context, listingID int) ([]models.Review, error) {
	query := `
               SELECT r.id, r.user_id, r.listing_id, r.rating, r.comment,
                      u.name, r.created_at, r.updated_at
               FROM reviews r
               JOIN users u ON r.user_id = u.id
               WHERE r.listing_id = ?
               ORDER BY r.created_at DESC
       `
	rows, err := r.DB.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		var updatedAt sql.NullTime
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.ListingID, &rev.Rating, &rev.Comment,
			&rev.UserName, &rev.CreatedAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			rev.UpdatedAt = &updatedAt.Time
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int, userID int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}

// GroupByListing aggregates the review store into per-listing rating stats.
// Listings with no reviews are absent from the map.
func (r *ReviewRepository) GroupByListing(ctx context.Context) (map[int]models.RatingStats, error) {
	query := `
               SELECT listing_id, AVG(rating), COUNT(*)
               FROM reviews
               GROUP BY listing_id
       `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[int]models.RatingStats)
	for rows.Next() {
		var listingID int
		var s models.RatingStats
		if err := rows.Scan(&listingID, &s.AvgRating, &s.Count); err != nil {
			return nil, err
		}
		stats[listingID] = s
	}
	return stats, rows.Err()
}
