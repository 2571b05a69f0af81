package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt"

	"github.com/faraaz0786/pglife/internal/models"
)

var signingKey string

// SetSigningKey wires the JWT signing key at startup so public handlers can
// recognize an optional bearer token.
func SetSigningKey(key string) {
	signingKey = key
}

// userIDFromContext reads the identity the auth middleware stored.
func userIDFromContext(r *http.Request) int {
	if id, ok := r.Context().Value("user_id").(int); ok {
		return id
	}
	return 0
}

// optionalUserID extracts the caller's identity from a bearer token when one
// is present and valid. Public endpoints use it to personalize without
// requiring auth; any parse failure just means an anonymous caller.
func optionalUserID(r *http.Request) int {
	tokenString := r.Header.Get("Authorization")
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return 0
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(signingKey), nil
	})
	if err != nil || !token.Valid {
		return 0
	}
	return int(claims.UserID)
}

// parseListingFilter builds a filter from query parameters. Deliberately
// forgiving: malformed or out-of-enum values degrade to "no constraint",
// never an error.
func parseListingFilter(r *http.Request) models.ListingFilter {
	q := r.URL.Query()

	var filter models.ListingFilter
	filter.City = strings.TrimSpace(q.Get("city"))

	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("minPrice"))); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("maxPrice"))); err == nil {
		filter.MaxPrice = &v
	}

	// Both parameter names are accepted, matching the public API.
	gender := q.Get("gender")
	if gender == "" {
		gender = q.Get("genderPolicy")
	}
	filter.Gender = gender

	filter.Amenities = models.ParseAmenities(q.Get("amenities"))
	filter.Q = strings.TrimSpace(q.Get("q"))

	roomType := q.Get("roomType")
	if roomType == "" {
		roomType = q.Get("room_type")
	}
	filter.RoomType = roomType

	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	switch q.Get("sort") {
	case "price":
		filter.Sort = models.SortPriceAsc
	case "-price":
		filter.Sort = models.SortPriceDesc
	case "createdAt":
		filter.Sort = models.SortOldest
	default:
		filter.Sort = models.SortNewest
	}

	return filter
}
