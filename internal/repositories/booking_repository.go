package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/faraaz0786/pglife/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.Status = models.BookingPending
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	query := `
INSERT INTO bookings (listing_id, seeker_id, move_in_date, note, status, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`
	result, err := r.DB.ExecContext(ctx, query,
		b.ListingID, b.SeekerID, b.MoveInDate, b.Note, b.Status, b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = int(id)
	return b, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	query := `
SELECT b.id, b.listing_id, b.seeker_id, b.move_in_date, b.note, b.status, b.created_at, b.updated_at,
       l.title, l.city, u.name
FROM bookings b
JOIN listings l ON b.listing_id = l.id
JOIN users u ON b.seeker_id = u.id
WHERE b.id = ?
`
	var b models.Booking
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.ListingID, &b.SeekerID, &b.MoveInDate, &b.Note, &b.Status,
		&b.CreatedAt, &updatedAt, &b.ListingTitle, &b.ListingCity, &b.SeekerName,
	)
	if err == sql.ErrNoRows {
		return models.Booking{}, models.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	if updatedAt.Valid {
		b.UpdatedAt = &updatedAt.Time
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var updatedAt sql.NullTime
		err := rows.Scan(
			&b.ID, &b.ListingID, &b.SeekerID, &b.MoveInDate, &b.Note, &b.Status,
			&b.CreatedAt, &updatedAt, &b.ListingTitle, &b.ListingCity, &b.SeekerName,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			b.UpdatedAt = &updatedAt.Time
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetBookingsBySeekerID lists a seeker's own booking requests, newest first.
func (r *BookingRepository) GetBookingsBySeekerID(ctx context.Context, seekerID int) ([]models.Booking, error) {
	query := `
SELECT b.id, b.listing_id, b.seeker_id, b.move_in_date, b.note, b.status, b.created_at, b.updated_at,
       l.title, l.city, u.name
FROM bookings b
JOIN listings l ON b.listing_id = l.id
JOIN users u ON b.seeker_id = u.id
WHERE b.seeker_id = ?
ORDER BY b.created_at DESC
`
	rows, err := r.DB.QueryContext(ctx, query, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanBookings(rows)
}

// GetBookingsByOwnerID lists incoming requests across all of an owner's
// listings, newest first.
func (r *BookingRepository) GetBookingsByOwnerID(ctx context.Context, ownerID int) ([]models.Booking, error) {
	query := `
SELECT b.id, b.listing_id, b.seeker_id, b.move_in_date, b.note, b.status, b.created_at, b.updated_at,
       l.title, l.city, u.name
FROM bookings b
JOIN listings l ON b.listing_id = l.id
JOIN users u ON b.seeker_id = u.id
WHERE l.owner_id = ?
ORDER BY b.created_at DESC
`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanBookings(rows)
}
