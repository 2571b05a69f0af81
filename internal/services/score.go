package services

import (
	"strings"

	"github.com/faraaz0786/pglife/internal/models"
)

// Score weights. The four terms sum to at most 10.
const (
	weightCity       = 3.0
	weightBudget     = 3.0
	weightAmenities  = 2.0
	weightPopularity = 2.0
)

// ScoreListing computes a listing's recommendation score for a preference
// profile and its rating stats:
//
//   - city match (exact, case-insensitive): +3
//   - price inside the budget window (inclusive): +3
//   - fraction of desired amenities present: x2
//   - avg rating / 5: x2
//
// The function is pure and total: missing preference fields default to
// unconstrained, a listing with no reviews simply earns no popularity term.
// The city comparison is deliberately exact, unlike the search engine's
// substring predicate; ranking rewards a precise home-city match.
func ScoreListing(l models.Listing, prefs models.Preferences, stats models.RatingStats) float64 {
	var score float64

	if prefs.City != "" && strings.EqualFold(l.City, prefs.City) {
		score += weightCity
	}

	min, max := prefs.BudgetWindow()
	if l.Price >= min && l.Price <= max {
		score += weightBudget
	}

	if len(prefs.Amenities) > 0 {
		have := make(map[string]struct{}, len(l.Amenities))
		for _, a := range l.Amenities {
			have[strings.ToLower(a)] = struct{}{}
		}
		overlap := 0
		for _, want := range prefs.Amenities {
			if _, ok := have[strings.ToLower(want)]; ok {
				overlap++
			}
		}
		score += float64(overlap) / float64(len(prefs.Amenities)) * weightAmenities
	}

	score += stats.AvgRating / 5 * weightPopularity

	return score
}
