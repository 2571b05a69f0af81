package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ListingID int `json:"listing_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.Service.AddToFavorites(r.Context(), userIDFromContext(r), req.ListingID); err != nil {
		http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(r.URL.Query().Get(":listing_id"))
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.RemoveFromFavorites(r.Context(), userIDFromContext(r), listingID); err != nil {
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(r.URL.Query().Get(":listing_id"))
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	isFav, err := h.Service.IsFavorite(r.Context(), userIDFromContext(r), listingID)
	if err != nil {
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"favorite": isFav})
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Service.GetFavoritesByUser(r.Context(), userIDFromContext(r))
	if err != nil {
		http.Error(w, "Failed to load favorites", http.StatusInternalServerError)
		return
	}
	if favs == nil {
		favs = []models.Favorite{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favs)
}
