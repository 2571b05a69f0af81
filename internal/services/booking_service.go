package services

import (
	"context"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

// BookingNotifier pushes booking events to connected owners. Nil-safe from
// the service's perspective; delivery is best effort.
type BookingNotifier interface {
	NotifyOwner(ownerID int, booking models.Booking)
}

type BookingService struct {
	BookingRepo *repositories.BookingRepository
	ListingRepo *repositories.ListingRepository
	Notifier    BookingNotifier
}

func (s *BookingService) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, b.ListingID)
	if err != nil {
		return models.Booking{}, err
	}

	created, err := s.BookingRepo.CreateBooking(ctx, b)
	if err != nil {
		return models.Booking{}, err
	}
	created.ListingTitle = listing.Title
	created.ListingCity = listing.City

	if s.Notifier != nil {
		s.Notifier.NotifyOwner(listing.OwnerID, created)
	}
	return created, nil
}

// SetStatus moves a booking along the status transition table. Owners
// approve or reject requests on their listings; seekers may cancel their
// own.
func (s *BookingService) SetStatus(ctx context.Context, bookingID int, status string, actorID int) (models.Booking, error) {
	b, err := s.BookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	listing, err := s.ListingRepo.GetListingByID(ctx, b.ListingID)
	if err != nil {
		return models.Booking{}, err
	}

	switch status {
	case models.BookingApproved, models.BookingRejected:
		if listing.OwnerID != actorID {
			return models.Booking{}, models.ErrNotOwner
		}
	case models.BookingCancelled:
		if b.SeekerID != actorID && listing.OwnerID != actorID {
			return models.Booking{}, models.ErrNotOwner
		}
	default:
		return models.Booking{}, models.ErrInvalidTransition
	}

	if !models.CanTransitionBooking(b.Status, status) {
		return models.Booking{}, models.ErrInvalidTransition
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return models.Booking{}, err
	}
	return s.BookingRepo.GetBookingByID(ctx, bookingID)
}

func (s *BookingService) GetBookingsBySeekerID(ctx context.Context, seekerID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsBySeekerID(ctx, seekerID)
}

func (s *BookingService) GetBookingsByOwnerID(ctx context.Context, ownerID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByOwnerID(ctx, ownerID)
}
