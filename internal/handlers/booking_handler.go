package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var b models.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	b.SeekerID = userIDFromContext(r)

	created, err := h.Service.CreateBooking(r.Context(), b)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to create booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// SetStatus moves a booking to a new status: owners approve/reject, seekers
// cancel. Transitions outside the table are rejected.
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.SetStatus(r.Context(), id, req.Status, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrBookingNotFound):
			http.Error(w, "Booking not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Not allowed", http.StatusForbidden)
		case errors.Is(err, models.ErrInvalidTransition):
			http.Error(w, "Invalid status change", http.StatusConflict)
		default:
			http.Error(w, "Failed to update booking", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsBySeekerID(r.Context(), userIDFromContext(r))
	if err != nil {
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetIncomingBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetBookingsByOwnerID(r.Context(), userIDFromContext(r))
	if err != nil {
		http.Error(w, "Failed to load bookings", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}
