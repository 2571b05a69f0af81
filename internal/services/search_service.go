package services

import (
	"context"

	"github.com/faraaz0786/pglife/internal/models"
)

const defaultPageSize = 12

// ListingCatalog is the catalog store contract the search engine runs
// against.
type ListingCatalog interface {
	SearchListings(ctx context.Context, filter models.ListingFilter, applyRoomType bool) ([]models.Listing, int, error)
	HasRoomTypeData(ctx context.Context) (bool, error)
}

type SearchService struct {
	Catalog ListingCatalog
}

// Search executes the filter with pagination and normalizes the result to
// {items, total, page, pages}. A page below 1 becomes 1 and a non-positive
// limit falls back to the default page size. Malformed filter fields never
// error; they degrade to no constraint inside the catalog predicates. Store
// failures propagate unchanged.
func (s *SearchService) Search(ctx context.Context, filter models.ListingFilter) (models.SearchResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}

	// Apply the room type predicate only when the catalog actually has room
	// type data; a partially migrated catalog must not filter everything out.
	applyRoomType := false
	if models.NormalizeRoomType(filter.RoomType) != "" {
		has, err := s.Catalog.HasRoomTypeData(ctx)
		if err != nil {
			return models.SearchResult{}, err
		}
		applyRoomType = has
	}

	items, total, err := s.Catalog.SearchListings(ctx, filter, applyRoomType)
	if err != nil {
		return models.SearchResult{}, err
	}
	if items == nil {
		items = []models.Listing{}
	}

	return models.SearchResult{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Pages: pageCount(total, filter.Limit),
	}, nil
}

func pageCount(total, limit int) int {
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GroupByRoomType partitions listings into room-type buckets, preserving
// each bucket's relative item order and emitting buckets in
// models.RoomTypeOrder. Listings with an unknown or empty room type land in
// the "other" bucket. Empty buckets are omitted.
func GroupByRoomType(items []models.Listing) []models.RoomTypeGroup {
	buckets := make(map[string][]models.Listing)
	for _, l := range items {
		rt := l.RoomType
		if !models.ValidRoomType(rt) {
			rt = models.RoomOther
		}
		buckets[rt] = append(buckets[rt], l)
	}

	groups := make([]models.RoomTypeGroup, 0, len(buckets))
	for _, rt := range models.RoomTypeOrder {
		if listings, ok := buckets[rt]; ok {
			groups = append(groups, models.RoomTypeGroup{RoomType: rt, Items: listings})
		}
	}
	return groups
}
