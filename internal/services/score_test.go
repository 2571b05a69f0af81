package services

import (
	"math"
	"testing"

	"github.com/faraaz0786/pglife/internal/models"
)

func intPtr(v int) *int { return &v }

func TestScoreListing(t *testing.T) {
	base := models.Listing{
		City:      "Delhi",
		Price:     7000,
		Amenities: []string{"wifi", "ac", "laundry"},
	}

	tests := []struct {
		name    string
		listing models.Listing
		prefs   models.Preferences
		stats   models.RatingStats
		want    float64
	}{
		{
			name:    "no preferences no reviews earns only budget",
			listing: base,
			prefs:   models.Preferences{},
			want:    3, // unconstrained budget window always matches
		},
		{
			name:    "full match with perfect rating is ten",
			listing: base,
			prefs: models.Preferences{
				City:      "delhi",
				MinBudget: intPtr(5000),
				MaxBudget: intPtr(8000),
				Amenities: []string{"wifi", "ac"},
			},
			stats: models.RatingStats{AvgRating: 5, Count: 12},
			want:  10,
		},
		{
			name:    "city match is exact not substring",
			listing: base,
			prefs:   models.Preferences{City: "Del"},
			want:    3, // budget only
		},
		{
			name:    "city match ignores case",
			listing: base,
			prefs:   models.Preferences{City: "DELHI"},
			want:    6,
		},
		{
			name:    "budget bounds are inclusive",
			listing: base,
			prefs:   models.Preferences{MinBudget: intPtr(7000), MaxBudget: intPtr(7000)},
			want:    3,
		},
		{
			name:    "price outside window earns nothing",
			listing: base,
			prefs:   models.Preferences{MaxBudget: intPtr(6999)},
			want:    0,
		},
		{
			name:    "amenity term scales with overlap",
			listing: base,
			prefs:   models.Preferences{MaxBudget: intPtr(1), Amenities: []string{"wifi", "ac", "gym", "parking"}},
			want:    1, // 2 of 4 desired present, x2
		},
		{
			name:    "amenity comparison ignores case",
			listing: models.Listing{City: "Pune", Price: 99999999, Amenities: []string{"WiFi"}},
			prefs:   models.Preferences{MaxBudget: intPtr(1), Amenities: []string{"wifi"}},
			want:    2,
		},
		{
			name:    "popularity term is rating over five times two",
			listing: base,
			prefs:   models.Preferences{MaxBudget: intPtr(1)},
			stats:   models.RatingStats{AvgRating: 4, Count: 3},
			want:    1.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreListing(tt.listing, tt.prefs, tt.stats)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreListing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreListingBounds(t *testing.T) {
	prefs := models.Preferences{
		City:      "Delhi",
		Amenities: []string{"wifi"},
	}
	listings := []models.Listing{
		{City: "Delhi", Price: 1, Amenities: []string{"wifi"}},
		{City: "Mumbai", Price: 1},
		{},
	}
	for _, l := range listings {
		for _, avg := range []float64{0, 2.5, 5} {
			got := ScoreListing(l, prefs, models.RatingStats{AvgRating: avg})
			if got < 0 || got > 10 {
				t.Errorf("score %v out of [0,10] for listing %+v avg %v", got, l, avg)
			}
		}
	}
}
