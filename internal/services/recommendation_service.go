package services

import (
	"context"
	"sort"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

const (
	// maxRecommendations caps the ranked window returned to a user.
	maxRecommendations = 20
	// candidatePoolLimit bounds the newest-first candidate fetch; with a
	// 20-item window a larger pool adds nothing.
	candidatePoolLimit = 500
)

// CandidateSource supplies the recommendation candidate pool.
type CandidateSource interface {
	GetAllListings(ctx context.Context, limit int) ([]models.Listing, error)
}

// ReviewAggregator produces the per-listing rating aggregate.
type ReviewAggregator interface {
	GroupByListing(ctx context.Context) (map[int]models.RatingStats, error)
}

// PreferenceSource loads a user's saved preference profile.
type PreferenceSource interface {
	GetPreferences(ctx context.Context, userID int) (models.Preferences, error)
}

type RecommendationService struct {
	Listings   CandidateSource
	Reviews    ReviewAggregator
	Users      PreferenceSource
	StatsCache *repositories.RatingStatsCache
}

// RankListings scores every candidate against the profile and returns the
// top window sorted descending by score. Ties keep the pool's incoming
// order (stable sort), which makes the ranking deterministic for identical
// inputs. An empty pool yields an empty result.
func RankListings(prefs models.Preferences, pool []models.Listing, stats map[int]models.RatingStats) []models.ScoredListing {
	scored := make([]models.ScoredListing, 0, len(pool))
	for _, l := range pool {
		st := stats[l.ID] // zero stats when absent
		scored = append(scored, models.ScoredListing{
			Listing:     l,
			Score:       ScoreListing(l, prefs, st),
			AvgRating:   st.AvgRating,
			RatingCount: st.Count,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	return scored
}

// ratingStats returns the review aggregate, served from the short-TTL cache
// when one is configured.
func (s *RecommendationService) ratingStats(ctx context.Context) (map[int]models.RatingStats, error) {
	if stats, ok := s.StatsCache.Get(ctx); ok {
		return stats, nil
	}
	stats, err := s.Reviews.GroupByListing(ctx)
	if err != nil {
		return nil, err
	}
	s.StatsCache.Set(ctx, stats)
	return stats, nil
}

// RecommendForUser loads the user's preferences and ranks the candidate
// pool. The candidate fetch and the rating aggregation are independent
// reads, so they are issued concurrently and joined before scoring.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID int) ([]models.ScoredListing, error) {
	prefs, err := s.Users.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	type poolResult struct {
		listings []models.Listing
		err      error
	}
	type statsResult struct {
		stats map[int]models.RatingStats
		err   error
	}

	poolCh := make(chan poolResult, 1)
	statsCh := make(chan statsResult, 1)

	go func() {
		listings, err := s.Listings.GetAllListings(ctx, candidatePoolLimit)
		poolCh <- poolResult{listings, err}
	}()
	go func() {
		stats, err := s.ratingStats(ctx)
		statsCh <- statsResult{stats, err}
	}()

	pool := <-poolCh
	stats := <-statsCh
	if pool.err != nil {
		return nil, pool.err
	}
	if stats.err != nil {
		return nil, stats.err
	}

	return RankListings(prefs, pool.listings, stats.stats), nil
}
