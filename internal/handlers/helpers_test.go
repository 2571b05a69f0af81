package handlers

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/faraaz0786/pglife/internal/models"
)

func TestParseListingFilter(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		check func(t *testing.T, f models.ListingFilter)
	}{
		{
			name: "empty query",
			url:  "/listings/search",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.City != "" || f.MinPrice != nil || f.MaxPrice != nil || f.Q != "" {
					t.Errorf("filter not empty: %+v", f)
				}
				if f.Sort != models.SortNewest {
					t.Errorf("sort = %d, want newest default", f.Sort)
				}
			},
		},
		{
			name: "full filter",
			url:  "/listings/search?city=Delhi&minPrice=3000&maxPrice=9000&gender=female&amenities=WiFi,AC&q=metro&roomType=single&page=2&limit=24",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.City != "Delhi" || f.Q != "metro" || f.RoomType != "single" {
					t.Errorf("string fields = %+v", f)
				}
				if f.MinPrice == nil || *f.MinPrice != 3000 || f.MaxPrice == nil || *f.MaxPrice != 9000 {
					t.Error("price bounds not parsed")
				}
				if !reflect.DeepEqual(f.Amenities, []string{"wifi", "ac"}) {
					t.Errorf("amenities = %v", f.Amenities)
				}
				if f.Page != 2 || f.Limit != 24 {
					t.Errorf("page/limit = %d/%d", f.Page, f.Limit)
				}
			},
		},
		{
			name: "malformed numbers are dropped not rejected",
			url:  "/listings/search?minPrice=cheap&maxPrice=&page=x&limit=y",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.MinPrice != nil || f.MaxPrice != nil {
					t.Errorf("price bounds = %v/%v, want nil", f.MinPrice, f.MaxPrice)
				}
				if f.Page != 0 || f.Limit != 0 {
					t.Errorf("page/limit = %d/%d, want zero", f.Page, f.Limit)
				}
			},
		},
		{
			name: "genderPolicy alias",
			url:  "/listings/search?genderPolicy=male",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.Gender != "male" {
					t.Errorf("gender = %q, want male", f.Gender)
				}
			},
		},
		{
			name: "room_type alias",
			url:  "/listings/search?room_type=twin",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.RoomType != "twin" {
					t.Errorf("roomType = %q, want twin", f.RoomType)
				}
			},
		},
		{
			name: "sort mapping",
			url:  "/listings/search?sort=-price",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.Sort != models.SortPriceDesc {
					t.Errorf("sort = %d, want price desc", f.Sort)
				}
			},
		},
		{
			name: "unknown sort falls back to newest",
			url:  "/listings/search?sort=rating",
			check: func(t *testing.T, f models.ListingFilter) {
				if f.Sort != models.SortNewest {
					t.Errorf("sort = %d, want newest", f.Sort)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			tt.check(t, parseListingFilter(r))
		})
	}
}

func TestOptionalUserIDAnonymous(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/explore", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := optionalUserID(r); got != 0 {
				t.Errorf("optionalUserID = %d, want 0", got)
			}
		})
	}
}
