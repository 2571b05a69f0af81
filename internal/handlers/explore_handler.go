package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/faraaz0786/pglife/internal/services"
)

type ExploreHandler struct {
	Service *services.ExplorationService
}

// Explore classifies the incoming filter and serves either the
// popular/recommended exploration view or a classic filtered search. A
// bearer token is optional; anonymous callers get popularity-ordered
// recommendations.
func (h *ExploreHandler) Explore(w http.ResponseWriter, r *http.Request) {
	filter := parseListingFilter(r)
	userID := optionalUserID(r)

	result, err := h.Service.Explore(r.Context(), filter, userID)
	if err != nil {
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode explore result: %v", err)
	}
}
