package models

import "time"

type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ListingID int       `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`

	Listing *Listing `json:"listing,omitempty"`
}
