package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/faraaz0786/pglife/internal/models"
)

type fakeCatalog struct {
	items       []models.Listing
	total       int
	err         error
	hasRoomType bool
	probeErr    error

	gotFilter    models.ListingFilter
	gotApplyRT   bool
	probeCalled  bool
	searchCalled bool
}

func (f *fakeCatalog) SearchListings(ctx context.Context, filter models.ListingFilter, applyRoomType bool) ([]models.Listing, int, error) {
	f.searchCalled = true
	f.gotFilter = filter
	f.gotApplyRT = applyRoomType
	return f.items, f.total, f.err
}

func (f *fakeCatalog) HasRoomTypeData(ctx context.Context) (bool, error) {
	f.probeCalled = true
	return f.hasRoomType, f.probeErr
}

func TestSearchDefaultsPageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "zero values", page: 0, limit: 0, wantPage: 1, wantLimit: defaultPageSize},
		{name: "negative values", page: -3, limit: -1, wantPage: 1, wantLimit: defaultPageSize},
		{name: "explicit values kept", page: 4, limit: 30, wantPage: 4, wantLimit: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{}
			svc := &SearchService{Catalog: cat}

			res, err := svc.Search(context.Background(), models.ListingFilter{Page: tt.page, Limit: tt.limit})
			if err != nil {
				t.Fatal(err)
			}
			if cat.gotFilter.Page != tt.wantPage || cat.gotFilter.Limit != tt.wantLimit {
				t.Errorf("catalog saw page/limit = %d/%d, want %d/%d",
					cat.gotFilter.Page, cat.gotFilter.Limit, tt.wantPage, tt.wantLimit)
			}
			if res.Page != tt.wantPage {
				t.Errorf("result page = %d, want %d", res.Page, tt.wantPage)
			}
		})
	}
}

func TestSearchPageCount(t *testing.T) {
	tests := []struct {
		total int
		limit int
		want  int
	}{
		{total: 0, limit: 12, want: 1},
		{total: 1, limit: 12, want: 1},
		{total: 12, limit: 12, want: 1},
		{total: 13, limit: 12, want: 2},
		{total: 25, limit: 12, want: 3},
		{total: 100, limit: 10, want: 10},
	}

	for _, tt := range tests {
		cat := &fakeCatalog{total: tt.total}
		svc := &SearchService{Catalog: cat}

		res, err := svc.Search(context.Background(), models.ListingFilter{Limit: tt.limit})
		if err != nil {
			t.Fatal(err)
		}
		if res.Pages != tt.want {
			t.Errorf("total %d limit %d: pages = %d, want %d", tt.total, tt.limit, res.Pages, tt.want)
		}
	}
}

func TestSearchRoomTypeProbe(t *testing.T) {
	tests := []struct {
		name        string
		roomType    string
		hasData     bool
		wantProbe   bool
		wantApplyRT bool
	}{
		{name: "no room type skips probe", roomType: "", wantProbe: false, wantApplyRT: false},
		{name: "all skips probe", roomType: "all", wantProbe: false, wantApplyRT: false},
		{name: "room type with data applies predicate", roomType: "single", hasData: true, wantProbe: true, wantApplyRT: true},
		{name: "room type without data is ignored", roomType: "single", hasData: false, wantProbe: true, wantApplyRT: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{hasRoomType: tt.hasData}
			svc := &SearchService{Catalog: cat}

			if _, err := svc.Search(context.Background(), models.ListingFilter{RoomType: tt.roomType}); err != nil {
				t.Fatal(err)
			}
			if cat.probeCalled != tt.wantProbe {
				t.Errorf("probeCalled = %v, want %v", cat.probeCalled, tt.wantProbe)
			}
			if cat.gotApplyRT != tt.wantApplyRT {
				t.Errorf("applyRoomType = %v, want %v", cat.gotApplyRT, tt.wantApplyRT)
			}
		})
	}
}

func TestSearchNilItemsBecomeEmptySlice(t *testing.T) {
	svc := &SearchService{Catalog: &fakeCatalog{items: nil}}

	res, err := svc.Search(context.Background(), models.ListingFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Items == nil {
		t.Error("items is nil, want empty slice")
	}
}

func TestSearchPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("store down")
	svc := &SearchService{Catalog: &fakeCatalog{err: storeErr}}

	if _, err := svc.Search(context.Background(), models.ListingFilter{}); !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want %v", err, storeErr)
	}
}

func TestGroupByRoomType(t *testing.T) {
	items := []models.Listing{
		{ID: 1, RoomType: models.RoomSingle},
		{ID: 2, RoomType: models.RoomTwin},
		{ID: 3, RoomType: models.RoomSingle},
		{ID: 4, RoomType: ""},
		{ID: 5, RoomType: "loft"},
	}

	groups := GroupByRoomType(items)

	wantOrder := []string{models.RoomSingle, models.RoomTwin, models.RoomOther}
	if len(groups) != len(wantOrder) {
		t.Fatalf("groups = %v, want buckets %v", groups, wantOrder)
	}
	for i, rt := range wantOrder {
		if groups[i].RoomType != rt {
			t.Errorf("bucket[%d] = %q, want %q", i, groups[i].RoomType, rt)
		}
	}
	if groups[0].Items[0].ID != 1 || groups[0].Items[1].ID != 3 {
		t.Error("single bucket order not preserved")
	}
	if got := len(groups[2].Items); got != 2 {
		t.Errorf("other bucket len = %d, want 2 (empty and unknown)", got)
	}
}

func TestGroupByRoomTypeDisplayOrder(t *testing.T) {
	// Input arrives in reverse; buckets must still come out in the fixed
	// display order, not input or alphabetical order.
	items := []models.Listing{
		{ID: 1, RoomType: models.RoomOther},
		{ID: 2, RoomType: models.RoomQuad},
		{ID: 3, RoomType: models.RoomTwin},
		{ID: 4, RoomType: models.RoomSingle},
	}

	groups := GroupByRoomType(items)

	want := []string{models.RoomSingle, models.RoomTwin, models.RoomQuad, models.RoomOther}
	if len(groups) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(groups), len(want))
	}
	for i, rt := range want {
		if groups[i].RoomType != rt {
			t.Errorf("bucket[%d] = %q, want %q", i, groups[i].RoomType, rt)
		}
	}

	data, err := json.Marshal(models.GroupedSearchResult{Groups: groups, Total: 4, Page: 1, Pages: 1})
	if err != nil {
		t.Fatal(err)
	}
	wire := string(data)
	for i := 1; i < len(want); i++ {
		prev := strings.Index(wire, `"room_type":"`+want[i-1]+`"`)
		cur := strings.Index(wire, `"room_type":"`+want[i]+`"`)
		if prev == -1 || cur == -1 || prev > cur {
			t.Fatalf("wire order broken around %q: %s", want[i], wire)
		}
	}
}
