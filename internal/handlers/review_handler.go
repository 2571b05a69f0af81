package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var rev models.Review
	if err := json.NewDecoder(r.Body).Decode(&rev); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	rev.UserID = userIDFromContext(r)

	created, err := h.Service.CreateReview(r.Context(), rev)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrAlreadyReviewed):
			http.Error(w, "You have already reviewed this listing", http.StatusConflict)
		default:
			http.Error(w, "Failed to create review", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByListingID(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(r.URL.Query().Get(":listing_id"))
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.GetReviewsByListingID(r.Context(), listingID)
	if err != nil {
		http.Error(w, "Failed to load reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}

	err = h.Service.DeleteReview(r.Context(), id, userIDFromContext(r))
	if err != nil {
		if errors.Is(err, models.ErrReviewNotFound) {
			http.Error(w, "Review not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
