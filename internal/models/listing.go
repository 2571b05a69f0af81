package models

import (
	"strings"
	"time"
)

// Gender policy values a listing can carry.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAny    = "any"
)

// Room type values. An empty room type on a filter means "all types".
const (
	RoomSingle = "single"
	RoomTwin   = "twin"
	RoomTriple = "triple"
	RoomQuad   = "quad"
	RoomOther  = "other"
)

// RoomTypeOrder is the display order of grouped search results.
var RoomTypeOrder = []string{RoomSingle, RoomTwin, RoomTriple, RoomQuad, RoomOther}

type Listing struct {
	ID           int        `json:"id"`
	OwnerID      int        `json:"owner_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	City         string     `json:"city"`
	Address      string     `json:"address"`
	GenderPolicy string     `json:"gender_policy"`
	Price        int        `json:"price"`
	Amenities    []string   `json:"amenities"`
	Images       []string   `json:"images"`
	RoomType     string     `json:"room_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ScoredListing is a listing with its transient recommendation score and the
// rating stats the score was computed from. Never persisted.
type ScoredListing struct {
	Listing
	Score       float64 `json:"score"`
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
}

// RatingStats is the per-listing review aggregate. A listing with no reviews
// has zero stats.
type RatingStats struct {
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

// Sort options for listing search.
const (
	SortNewest    = 0
	SortOldest    = 1
	SortPriceAsc  = 2
	SortPriceDesc = 3
)

// ListingFilter carries user-supplied search constraints. Every field is
// optional; malformed or absent values mean "unconstrained".
type ListingFilter struct {
	City      string   `json:"city"`
	MinPrice  *int     `json:"min_price"`
	MaxPrice  *int     `json:"max_price"`
	Gender    string   `json:"gender"`
	Amenities []string `json:"amenities"`
	Q         string   `json:"q"`
	RoomType  string   `json:"room_type"`
	Page      int      `json:"page"`
	Limit     int      `json:"limit"`
	Sort      int      `json:"sort"`
}

// SearchResult is the normalized shape of every paginated listing query.
type SearchResult struct {
	Items []Listing `json:"items"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// RoomTypeGroup is one bucket of a grouped search response.
type RoomTypeGroup struct {
	RoomType string    `json:"room_type"`
	Items    []Listing `json:"items"`
}

// GroupedSearchResult is the classic-search response when no room type is
// selected: the same page of items partitioned into room-type buckets,
// emitted in RoomTypeOrder.
type GroupedSearchResult struct {
	Groups []RoomTypeGroup `json:"groups"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
}

// ValidGenderPolicy reports whether g is one of the gender policy values.
func ValidGenderPolicy(g string) bool {
	switch g {
	case GenderMale, GenderFemale, GenderAny:
		return true
	}
	return false
}

// ValidRoomType reports whether rt is one of the room type values.
func ValidRoomType(rt string) bool {
	switch rt {
	case RoomSingle, RoomTwin, RoomTriple, RoomQuad, RoomOther:
		return true
	}
	return false
}

// NormalizeRoomType lowercases rt and maps "all"/"any" and unknown values to
// the empty string, meaning no room type constraint.
func NormalizeRoomType(rt string) string {
	rt = strings.ToLower(strings.TrimSpace(rt))
	if rt == "all" || rt == "any" {
		return ""
	}
	if !ValidRoomType(rt) {
		return ""
	}
	return rt
}

// NormalizeGender lowercases g and returns the empty string for values
// outside the enum, meaning no gender constraint.
func NormalizeGender(g string) string {
	g = strings.ToLower(strings.TrimSpace(g))
	if !ValidGenderPolicy(g) {
		return ""
	}
	return g
}

// ParseAmenities splits a comma-separated amenity list, trimming whitespace,
// lowercasing, and dropping empties and duplicates.
func ParseAmenities(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeAmenities(strings.Split(csv, ","))
}

// NormalizeAmenities lowercases, trims, and deduplicates amenity tokens,
// preserving first-seen order.
func NormalizeAmenities(raw []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(raw))
	for _, a := range raw {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
