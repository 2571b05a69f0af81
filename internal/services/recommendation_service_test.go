package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/faraaz0786/pglife/internal/models"
)

type fakeCandidateSource struct {
	listings []models.Listing
	err      error
}

func (f *fakeCandidateSource) GetAllListings(ctx context.Context, limit int) ([]models.Listing, error) {
	return f.listings, f.err
}

type fakeReviewAggregator struct {
	stats map[int]models.RatingStats
	err   error
}

func (f *fakeReviewAggregator) GroupByListing(ctx context.Context) (map[int]models.RatingStats, error) {
	return f.stats, f.err
}

type fakePreferenceSource struct {
	prefs map[int]models.Preferences
	err   error
}

func (f *fakePreferenceSource) GetPreferences(ctx context.Context, userID int) (models.Preferences, error) {
	if f.err != nil {
		return models.Preferences{}, f.err
	}
	return f.prefs[userID], nil
}

func TestRankListingsSortedDescending(t *testing.T) {
	prefs := models.Preferences{City: "Delhi"}
	pool := []models.Listing{
		{ID: 1, City: "Mumbai", Price: 100},
		{ID: 2, City: "Delhi", Price: 100},
		{ID: 3, City: "Mumbai", Price: 100},
	}
	stats := map[int]models.RatingStats{
		3: {AvgRating: 5, Count: 2},
	}

	got := RankListings(prefs, pool, stats)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("not sorted descending at %d: %v < %v", i, got[i-1].Score, got[i].Score)
		}
	}
	if got[0].ID != 2 {
		t.Errorf("top = %d, want 2 (city match beats rating)", got[0].ID)
	}
}

func TestRankListingsStableTies(t *testing.T) {
	// Identical listings score identically; the pool order must survive.
	pool := make([]models.Listing, 5)
	for i := range pool {
		pool[i] = models.Listing{ID: i + 1, City: "Pune", Price: 100}
	}

	got := RankListings(models.Preferences{}, pool, nil)
	for i, sl := range got {
		if sl.ID != i+1 {
			t.Fatalf("tie order broken: position %d has ID %d", i, sl.ID)
		}
	}
}

func TestRankListingsCapsWindow(t *testing.T) {
	pool := make([]models.Listing, 35)
	for i := range pool {
		pool[i] = models.Listing{ID: i + 1, Price: 100}
	}

	got := RankListings(models.Preferences{}, pool, nil)
	if len(got) != maxRecommendations {
		t.Errorf("len = %d, want %d", len(got), maxRecommendations)
	}
}

func TestRankListingsEmptyPool(t *testing.T) {
	got := RankListings(models.Preferences{}, nil, nil)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRankListingsMissingStatsDefaultToZero(t *testing.T) {
	pool := []models.Listing{{ID: 7, Price: 100}}
	got := RankListings(models.Preferences{}, pool, map[int]models.RatingStats{})
	if got[0].AvgRating != 0 || got[0].RatingCount != 0 {
		t.Errorf("stats = %v/%v, want zero", got[0].AvgRating, got[0].RatingCount)
	}
}

func TestRecommendForUser(t *testing.T) {
	svc := &RecommendationService{
		Listings: &fakeCandidateSource{listings: []models.Listing{
			{ID: 1, City: "Delhi", Price: 6000},
			{ID: 2, City: "Mumbai", Price: 6000},
		}},
		Reviews: &fakeReviewAggregator{stats: map[int]models.RatingStats{
			2: {AvgRating: 4.5, Count: 8},
		}},
		Users: &fakePreferenceSource{prefs: map[int]models.Preferences{
			42: {City: "Delhi"},
		}},
	}

	got, err := svc.RecommendForUser(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("top = %d, want 1", got[0].ID)
	}
	if got[1].AvgRating != 4.5 || got[1].RatingCount != 8 {
		t.Errorf("stats not carried: %v/%v", got[1].AvgRating, got[1].RatingCount)
	}
}

func TestRecommendForUserPropagatesErrors(t *testing.T) {
	poolErr := fmt.Errorf("pool down")
	statsErr := fmt.Errorf("stats down")
	prefsErr := fmt.Errorf("prefs down")

	tests := []struct {
		name string
		svc  *RecommendationService
		want error
	}{
		{
			name: "preference load failure",
			svc: &RecommendationService{
				Listings: &fakeCandidateSource{},
				Reviews:  &fakeReviewAggregator{},
				Users:    &fakePreferenceSource{err: prefsErr},
			},
			want: prefsErr,
		},
		{
			name: "candidate fetch failure",
			svc: &RecommendationService{
				Listings: &fakeCandidateSource{err: poolErr},
				Reviews:  &fakeReviewAggregator{},
				Users:    &fakePreferenceSource{},
			},
			want: poolErr,
		},
		{
			name: "aggregation failure",
			svc: &RecommendationService{
				Listings: &fakeCandidateSource{},
				Reviews:  &fakeReviewAggregator{err: statsErr},
				Users:    &fakePreferenceSource{},
			},
			want: statsErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.RecommendForUser(context.Background(), 1)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
