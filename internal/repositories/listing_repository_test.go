package repositories

import (
	"strings"
	"testing"

	"github.com/faraaz0786/pglife/internal/models"
)

func intPtr(v int) *int { return &v }

func TestBuildFilterConditions(t *testing.T) {
	tests := []struct {
		name          string
		filter        models.ListingFilter
		applyRoomType bool
		wantConds     int
		wantParams    []interface{}
	}{
		{
			name:   "empty filter adds nothing",
			filter: models.ListingFilter{},
		},
		{
			name:       "city substring predicate",
			filter:     models.ListingFilter{City: " Delhi "},
			wantConds:  1,
			wantParams: []interface{}{"Delhi"},
		},
		{
			name:       "price bounds",
			filter:     models.ListingFilter{MinPrice: intPtr(3000), MaxPrice: intPtr(9000)},
			wantConds:  2,
			wantParams: []interface{}{3000, 9000},
		},
		{
			name:       "each amenity is its own AND condition",
			filter:     models.ListingFilter{Amenities: []string{"WiFi", "AC", "wifi"}},
			wantConds:  2, // deduped
			wantParams: []interface{}{"wifi", "ac"},
		},
		{
			name:   "invalid gender adds nothing",
			filter: models.ListingFilter{Gender: "whatever"},
		},
		{
			name:          "room type applied only when requested by caller",
			filter:        models.ListingFilter{RoomType: "single"},
			applyRoomType: true,
			wantConds:     1,
			wantParams:    []interface{}{"single"},
		},
		{
			name:          "room type suppressed by capability flag",
			filter:        models.ListingFilter{RoomType: "single"},
			applyRoomType: false,
		},
		{
			name:       "free text is one OR group with three params",
			filter:     models.ListingFilter{Q: "near metro"},
			wantConds:  1,
			wantParams: []interface{}{"near metro", "near metro", "near metro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conds, params := buildFilterConditions(tt.filter, tt.applyRoomType)
			if len(conds) != tt.wantConds {
				t.Errorf("conditions = %v, want %d entries", conds, tt.wantConds)
			}
			if len(params) != len(tt.wantParams) {
				t.Fatalf("params = %v, want %v", params, tt.wantParams)
			}
			for i := range params {
				if params[i] != tt.wantParams[i] {
					t.Errorf("param[%d] = %v, want %v", i, params[i], tt.wantParams[i])
				}
			}
		})
	}
}

func TestBuildFilterConditionsShapes(t *testing.T) {
	conds, _ := buildFilterConditions(models.ListingFilter{
		City:      "delhi",
		Amenities: []string{"wifi", "ac"},
		Q:         "metro",
	}, false)

	joined := strings.Join(conds, " AND ")

	// Amenities are conjunctive: two separate JSON_CONTAINS terms.
	if got := strings.Count(joined, "JSON_CONTAINS"); got != 2 {
		t.Errorf("JSON_CONTAINS count = %d, want 2", got)
	}
	// Free text is disjunctive across the three text columns, inside one
	// parenthesized group.
	if got := strings.Count(joined, " OR "); got != 2 {
		t.Errorf("OR count = %d, want 2", got)
	}
	if !strings.Contains(joined, "LOWER(l.city) LIKE") {
		t.Error("city predicate missing or not case-insensitive")
	}
}
