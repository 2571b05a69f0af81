package models

import "time"

// Booking request statuses.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
)

// Allowed booking status transitions. Anything absent is rejected.
var bookingTransitions = map[string]map[string]struct{}{
	BookingPending: {
		BookingApproved:  {},
		BookingRejected:  {},
		BookingCancelled: {},
	},
	BookingApproved: {
		BookingCancelled: {},
	},
}

// CanTransitionBooking reports whether a booking may move from one status to
// another.
func CanTransitionBooking(from, to string) bool {
	next, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

type Booking struct {
	ID         int        `json:"id"`
	ListingID  int        `json:"listing_id"`
	SeekerID   int        `json:"seeker_id"`
	MoveInDate time.Time  `json:"move_in_date"`
	Note       string     `json:"note"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`

	// Joined display fields.
	ListingTitle string `json:"listing_title,omitempty"`
	ListingCity  string `json:"listing_city,omitempty"`
	SeekerName   string `json:"seeker_name,omitempty"`
}
