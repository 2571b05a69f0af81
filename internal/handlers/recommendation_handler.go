package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/services"
)

type RecommendationHandler struct {
	Service *services.RecommendationService
}

// GetRecommendations returns the top scored listings for the authenticated
// user, sorted descending by score.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r)
	if userID == 0 {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	recommended, err := h.Service.RecommendForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to compute recommendations", http.StatusInternalServerError)
		return
	}
	if recommended == nil {
		recommended = []models.ScoredListing{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recommended); err != nil {
		log.Printf("Failed to encode recommendations: %v", err)
	}
}
