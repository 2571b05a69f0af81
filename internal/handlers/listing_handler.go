package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/services"
	"github.com/faraaz0786/pglife/utils"
)

type ListingHandler struct {
	Service       *services.ListingService
	SearchService *services.SearchService
	Storage       *utils.Storage
}

// SearchListings serves the faceted listing search. Invalid filter values
// are ignored rather than rejected.
func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	filter := parseListingFilter(r)

	result, err := h.SearchService.Search(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to search listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode search result: %v", err)
	}
}

func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	listing, err := h.Service.GetListingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var l models.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if l.Title == "" || l.City == "" || l.Price <= 0 {
		http.Error(w, "title, city and a positive price are required", http.StatusBadRequest)
		return
	}
	l.OwnerID = userIDFromContext(r)

	created, err := h.Service.CreateListing(r.Context(), l)
	if err != nil {
		http.Error(w, "Failed to create listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	var l models.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	l.ID = id

	updated, err := h.Service.UpdateListing(r.Context(), l, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Not your listing", http.StatusForbidden)
		default:
			http.Error(w, "Failed to update listing", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	err = h.Service.DeleteListing(r.Context(), id, userIDFromContext(r))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrListingNotFound):
			http.Error(w, "Listing not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Not your listing", http.StatusForbidden)
		default:
			http.Error(w, "Failed to delete listing", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.GetListingsByOwnerID(r.Context(), userIDFromContext(r))
	if err != nil {
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}

// UploadImage accepts a multipart image and stores it in object storage,
// returning the public URL to attach to a listing.
func (h *ListingHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	url, err := h.Storage.UploadImage(data, fileName, "listings")
	if err != nil {
		log.Printf("Image upload failed: %v", err)
		http.Error(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

// SeedDemoListings inserts the bundled sample pool. Disabled unless
// ALLOW_SEED=true.
func (h *ListingHandler) SeedDemoListings(w http.ResponseWriter, r *http.Request) {
	if os.Getenv("ALLOW_SEED") != "true" {
		http.Error(w, "Seeding disabled", http.StatusForbidden)
		return
	}

	inserted, err := h.Service.SeedDemoListings(r.Context(), userIDFromContext(r))
	if err != nil {
		http.Error(w, "Failed to seed listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"inserted": inserted})
}
