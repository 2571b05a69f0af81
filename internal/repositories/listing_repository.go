package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/faraaz0786/pglife/internal/models"
)

type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `l.id, l.owner_id, l.title, l.description, l.city, l.address, l.gender_policy, l.price, l.amenities, l.images, l.room_type, l.created_at, l.updated_at`

func scanListing(row interface{ Scan(...interface{}) error }) (models.Listing, error) {
	var l models.Listing
	var amenitiesJSON, imagesJSON []byte
	var updatedAt sql.NullTime

	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.City, &l.Address,
		&l.GenderPolicy, &l.Price, &amenitiesJSON, &imagesJSON, &l.RoomType,
		&l.CreatedAt, &updatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if len(amenitiesJSON) > 0 {
		if err := json.Unmarshal(amenitiesJSON, &l.Amenities); err != nil {
			return models.Listing{}, fmt.Errorf("failed to decode amenities json: %w", err)
		}
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &l.Images); err != nil {
			return models.Listing{}, fmt.Errorf("failed to decode images json: %w", err)
		}
	}
	if updatedAt.Valid {
		l.UpdatedAt = &updatedAt.Time
	}
	return l, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	query := `
    INSERT INTO listings (owner_id, title, description, city, address, gender_policy, price, amenities, images, room_type, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	l.Amenities = models.NormalizeAmenities(l.Amenities)
	amenitiesJSON, err := json.Marshal(l.Amenities)
	if err != nil {
		return models.Listing{}, err
	}
	imagesJSON, err := json.Marshal(l.Images)
	if err != nil {
		return models.Listing{}, err
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	result, err := r.DB.ExecContext(ctx, query,
		l.OwnerID, l.Title, l.Description, l.City, l.Address, l.GenderPolicy,
		l.Price, string(amenitiesJSON), string(imagesJSON), l.RoomType, l.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Listing{}, err
	}
	l.ID = int(lastID)
	return l, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = ?`

	l, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

func (r *ListingRepository) UpdateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	query := `
UPDATE listings
SET title = ?, description = ?, city = ?, address = ?, gender_policy = ?, price = ?, amenities = ?, images = ?, room_type = ?, updated_at = ?
WHERE id = ?
`
	l.Amenities = models.NormalizeAmenities(l.Amenities)
	amenitiesJSON, err := json.Marshal(l.Amenities)
	if err != nil {
		return models.Listing{}, fmt.Errorf("failed to marshal amenities: %w", err)
	}
	imagesJSON, err := json.Marshal(l.Images)
	if err != nil {
		return models.Listing{}, fmt.Errorf("failed to marshal images: %w", err)
	}
	updatedAt := time.Now()
	l.UpdatedAt = &updatedAt

	result, err := r.DB.ExecContext(ctx, query,
		l.Title, l.Description, l.City, l.Address, l.GenderPolicy, l.Price,
		string(amenitiesJSON), string(imagesJSON), l.RoomType, l.UpdatedAt, l.ID,
	)
	if err != nil {
		return models.Listing{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Listing{}, err
	}
	if rowsAffected == 0 {
		return models.Listing{}, models.ErrListingNotFound
	}
	return r.GetListingByID(ctx, l.ID)
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) GetListingsByOwnerID(ctx context.Context, ownerID int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.owner_id = ? ORDER BY l.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// buildFilterConditions translates a filter into WHERE conditions and params.
// Absent or invalid fields add no condition. The room type predicate is the
// caller's decision (see HasRoomTypeData).
func buildFilterConditions(filter models.ListingFilter, applyRoomType bool) ([]string, []interface{}) {
	var (
		conditions []string
		params     []interface{}
	)

	if city := strings.TrimSpace(filter.City); city != "" {
		conditions = append(conditions, "LOWER(l.city) LIKE CONCAT('%', LOWER(?), '%')")
		params = append(params, city)
	}

	if g := models.NormalizeGender(filter.Gender); g != "" {
		conditions = append(conditions, "l.gender_policy = ?")
		params = append(params, g)
	}

	if filter.MinPrice != nil {
		conditions = append(conditions, "l.price >= ?")
		params = append(params, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "l.price <= ?")
		params = append(params, *filter.MaxPrice)
	}

	// Every requested amenity must be present on the listing.
	for _, a := range models.NormalizeAmenities(filter.Amenities) {
		conditions = append(conditions, "JSON_CONTAINS(l.amenities, JSON_QUOTE(?))")
		params = append(params, a)
	}

	if applyRoomType {
		if rt := models.NormalizeRoomType(filter.RoomType); rt != "" {
			conditions = append(conditions, "l.room_type = ?")
			params = append(params, rt)
		}
	}

	if q := strings.TrimSpace(filter.Q); q != "" {
		conditions = append(conditions,
			"(LOWER(l.title) LIKE CONCAT('%', LOWER(?), '%') OR LOWER(l.description) LIKE CONCAT('%', LOWER(?), '%') OR LOWER(l.address) LIKE CONCAT('%', LOWER(?), '%'))")
		params = append(params, q, q, q)
	}

	return conditions, params
}

// SearchListings runs the filter against the catalog and returns the matching
// page plus the unpaginated match count. Page and limit must already be
// normalized to positive values by the caller.
func (r *ListingRepository) SearchListings(ctx context.Context, filter models.ListingFilter, applyRoomType bool) ([]models.Listing, int, error) {
	conditions, params := buildFilterConditions(filter, applyRoomType)

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM listings l` + where
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + listingColumns + ` FROM listings l` + where

	switch filter.Sort {
	case models.SortOldest:
		query += ` ORDER BY l.created_at ASC`
	case models.SortPriceAsc:
		query += ` ORDER BY l.price ASC`
	case models.SortPriceDesc:
		query += ` ORDER BY l.price DESC`
	default:
		query += ` ORDER BY l.created_at DESC`
	}

	query += " LIMIT ? OFFSET ?"
	offset := (filter.Page - 1) * filter.Limit
	params = append(params, filter.Limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan error: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// HasRoomTypeData reports whether any listing carries a room type. On a
// catalog without room type data the predicate is skipped so it cannot
// filter everything out.
func (r *ListingRepository) HasRoomTypeData(ctx context.Context) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM listings WHERE room_type IS NOT NULL AND room_type <> '')`,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetAllListings returns the newest listings up to limit, used as the
// recommendation candidate pool.
func (r *ListingRepository) GetAllListings(ctx context.Context, limit int) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l ORDER BY l.created_at DESC LIMIT ?`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
