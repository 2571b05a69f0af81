package repositories

import (
	"context"
	"database/sql"
)

// GetListingRatingStats returns the review average and count for one
// listing. Errors degrade to zero stats; a missing summary never blocks a
// listing page.
func (r *ReviewRepository) GetListingRatingStats(ctx context.Context, listingID int) (float64, int) {
	return getListingRatingStats(ctx, r.DB, listingID)
}

func getListingRatingStats(ctx context.Context, db *sql.DB, listingID int) (float64, int) {
	query := `SELECT COALESCE(AVG(rating),0), COUNT(*) FROM reviews WHERE listing_id = ?`
	var avg sql.NullFloat64
	var count int
	if err := db.QueryRowContext(ctx, query, listingID).Scan(&avg, &count); err != nil {
		return 0, 0
	}
	if avg.Valid {
		return avg.Float64, count
	}
	return 0, count
}
