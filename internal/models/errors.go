package models

import "errors"

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrListingNotFound    = errors.New("models: listing not found")
	ErrBookingNotFound    = errors.New("models: booking not found")
	ErrReviewNotFound     = errors.New("models: review not found")
	ErrAlreadyReviewed    = errors.New("models: listing already reviewed by user")
	ErrInvalidTransition  = errors.New("models: invalid booking status transition")
	ErrNotOwner           = errors.New("models: listing belongs to another owner")
)
