package models

import "time"

type Review struct {
	ID        int        `json:"id"`
	ListingID int        `json:"listing_id"`
	UserID    int        `json:"user_id"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	UserName  string     `json:"user_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
