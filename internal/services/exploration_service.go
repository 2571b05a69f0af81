package services

import (
	"context"
	"strings"

	"github.com/faraaz0786/pglife/internal/models"
	"github.com/faraaz0786/pglife/internal/repositories"
)

// Exploration modes. The selector is a stateless classifier over the
// current filter; it carries no history between requests.
type Mode string

const (
	ModeGlobalExploration Mode = "global_exploration"
	ModeCityOnly          Mode = "city_only"
	ModeClassicSearch     Mode = "classic_search"
)

// ClassifyFilter decides how a filter should be served: no constraints at
// all is global exploration, a city and nothing else is city exploration,
// anything beyond that is a classic search.
func ClassifyFilter(f models.ListingFilter) Mode {
	hasCity := strings.TrimSpace(f.City) != ""
	hasOther := f.MinPrice != nil ||
		f.MaxPrice != nil ||
		models.NormalizeGender(f.Gender) != "" ||
		len(models.NormalizeAmenities(f.Amenities)) > 0 ||
		models.NormalizeRoomType(f.RoomType) != "" ||
		strings.TrimSpace(f.Q) != ""

	switch {
	case !hasCity && !hasOther:
		return ModeGlobalExploration
	case hasCity && !hasOther:
		return ModeCityOnly
	default:
		return ModeClassicSearch
	}
}

// Searcher is the search engine contract the exploration layer drives.
type Searcher interface {
	Search(ctx context.Context, filter models.ListingFilter) (models.SearchResult, error)
}

// ExplorationResult is the response of one explore request. Exactly the
// fields for the classified mode are populated: Popular and Recommended in
// the exploration modes, Results or Grouped in classic search.
type ExplorationResult struct {
	Mode        Mode                        `json:"mode"`
	Popular     []models.Listing            `json:"popular,omitempty"`
	Recommended []models.ScoredListing      `json:"recommended,omitempty"`
	Results     *models.SearchResult        `json:"results,omitempty"`
	Grouped     *models.GroupedSearchResult `json:"grouped,omitempty"`
}

type ExplorationService struct {
	Searcher   Searcher
	Reviews    ReviewAggregator
	Users      PreferenceSource
	StatsCache *repositories.RatingStatsCache
}

// Explore classifies the filter and serves the matching view. In the
// exploration modes the popular pool is the newest twelve listings
// (city-scoped for city-only), falling back to the bundled demo sample when
// the catalog is empty; the recommended section ranks that pool with the
// user's preferences, or degrades to a popularity ordering for anonymous
// callers. Classic search bypasses ranking entirely.
func (s *ExplorationService) Explore(ctx context.Context, filter models.ListingFilter, userID int) (ExplorationResult, error) {
	mode := ClassifyFilter(filter)
	if mode == ModeClassicSearch {
		return s.classicSearch(ctx, filter)
	}

	poolFilter := models.ListingFilter{
		Page:  1,
		Limit: defaultPageSize,
		Sort:  models.SortNewest,
	}
	if mode == ModeCityOnly {
		poolFilter.City = filter.City
	}

	res, err := s.Searcher.Search(ctx, poolFilter)
	if err != nil {
		return ExplorationResult{}, err
	}

	pool := res.Items
	if len(pool) == 0 {
		// Empty catalog: serve the bundled sample so the UI is never blank
		// during bootstrap, filtered by the same city predicate.
		pool = FilterDemoListings(filter.City)
	}

	stats, err := s.ratingStats(ctx)
	if err != nil {
		return ExplorationResult{}, err
	}

	prefs := models.Preferences{}
	if userID > 0 {
		prefs, err = s.Users.GetPreferences(ctx, userID)
		if err != nil {
			return ExplorationResult{}, err
		}
	}
	// With empty preferences the ranking degenerates to a pure popularity
	// ordering, which is exactly the anonymous fallback.
	recommended := RankListings(prefs, pool, stats)

	return ExplorationResult{
		Mode:        mode,
		Popular:     pool,
		Recommended: recommended,
	}, nil
}

func (s *ExplorationService) classicSearch(ctx context.Context, filter models.ListingFilter) (ExplorationResult, error) {
	res, err := s.Searcher.Search(ctx, filter)
	if err != nil {
		return ExplorationResult{}, err
	}

	// No room type selected means "show all types", partitioned into
	// labeled buckets; a selected type gets the flat paginated list.
	if models.NormalizeRoomType(filter.RoomType) == "" {
		return ExplorationResult{
			Mode: ModeClassicSearch,
			Grouped: &models.GroupedSearchResult{
				Groups: GroupByRoomType(res.Items),
				Total:  res.Total,
				Page:   res.Page,
				Pages:  res.Pages,
			},
		}, nil
	}

	return ExplorationResult{
		Mode:    ModeClassicSearch,
		Results: &res,
	}, nil
}

func (s *ExplorationService) ratingStats(ctx context.Context) (map[int]models.RatingStats, error) {
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
