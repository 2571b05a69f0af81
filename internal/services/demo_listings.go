package services

import (
	"strings"
	"time"

	"github.com/faraaz0786/pglife/internal/models"
)

// demoListings is the fixed bootstrap sample served when the catalog is
// empty, so exploration views are never blank in demo or early-deploy
// states. IDs sit far above anything a real catalog would assign.
var demoListings = []models.Listing{
	{
		ID: 900001, Title: "Delhi single room PG near GTB Nagar", City: "Delhi",
		Address: "14, GTB Nagar, Delhi", GenderPolicy: models.GenderAny,
		Price: 9000, Amenities: []string{"wifi", "ac", "laundry"},
		RoomType: models.RoomSingle, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cozy PG with essential amenities near market and transit.",
	},
	{
		ID: 900002, Title: "Delhi twin sharing PG in Laxmi Nagar", City: "Delhi",
		Address: "221, Laxmi Nagar, Delhi", GenderPolicy: models.GenderMale,
		Price: 6500, Amenities: []string{"wifi", "geyser", "power backup"},
		RoomType: models.RoomTwin, CreatedAt: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Description: "Well-connected twin sharing with meals available.",
	},
	{
		ID: 900003, Title: "Mumbai single PG in Andheri", City: "Mumbai",
		Address: "52, Andheri West, Mumbai", GenderPolicy: models.GenderFemale,
		Price: 12000, Amenities: []string{"wifi", "ac", "housekeeping", "cctv"},
		RoomType: models.RoomSingle, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Description: "Secure ladies PG close to the metro.",
	},
	{
		ID: 900004, Title: "Bengaluru twin PG in Koramangala", City: "Bengaluru",
		Address: "7th Block, Koramangala, Bengaluru", GenderPolicy: models.GenderAny,
		Price: 8000, Amenities: []string{"wifi", "meals", "laundry", "parking"},
		RoomType: models.RoomTwin, CreatedAt: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		Description: "Walkable to tech parks and cafes.",
	},
	{
		ID: 900005, Title: "Bengaluru triple sharing in HSR Layout", City: "Bengaluru",
		Address: "HSR Layout Sector 2, Bengaluru", GenderPolicy: models.GenderMale,
		Price: 5500, Amenities: []string{"wifi", "power backup", "mess"},
		RoomType: models.RoomTriple, CreatedAt: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Description: "Budget friendly triple sharing with mess.",
	},
	{
		ID: 900006, Title: "Hyderabad single PG in Madhapur", City: "Hyderabad",
		Address: "Madhapur, Hyderabad", GenderPolicy: models.GenderAny,
		Price: 8500, Amenities: []string{"wifi", "ac", "geyser", "balcony"},
		RoomType: models.RoomSingle, CreatedAt: time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Description: "Near Hitech City with attached bathroom.",
	},
	{
		ID: 900007, Title: "Pune quad sharing in Hinjawadi", City: "Pune",
		Address: "Phase 1, Hinjawadi, Pune", GenderPolicy: models.GenderMale,
		Price: 4500, Amenities: []string{"wifi", "meals", "parking"},
		RoomType: models.RoomQuad, CreatedAt: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Description: "Quad sharing for IT park commuters.",
	},
	{
		ID: 900008, Title: "Chennai twin PG in Velachery", City: "Chennai",
		Address: "Velachery Main Road, Chennai", GenderPolicy: models.GenderFemale,
		Price: 7000, Amenities: []string{"wifi", "cctv", "housekeeping"},
		RoomType: models.RoomTwin, CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "Ladies PG with housekeeping and security.",
	},
	{
		ID: 900009, Title: "Kolkata single PG in Salt Lake", City: "Kolkata",
		Address: "Sector V, Salt Lake, Kolkata", GenderPolicy: models.GenderAny,
		Price: 6000, Amenities: []string{"wifi", "geyser", "laundry"},
		RoomType: models.RoomSingle, CreatedAt: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Description: "Close to Sector V offices.",
	},
	{
		ID: 900010, Title: "Lucknow twin PG in Gomti Nagar", City: "Lucknow",
		Address: "Vibhuti Khand, Gomti Nagar, Lucknow", GenderPolicy: models.GenderAny,
		Price: 5000, Amenities: []string{"wifi", "meals", "power backup"},
		RoomType: models.RoomTwin, CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Description: "Spacious rooms with home style meals.",
	},
}

// FilterDemoListings returns the sample pool narrowed by the search
// engine's city predicate (case-insensitive substring). An empty city
// returns the whole sample.
func FilterDemoListings(city string) []models.Listing {
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		out := make([]models.Listing, len(demoListings))
		copy(out, demoListings)
		return out
	}
	var out []models.Listing
	for _, l := range demoListings {
		if strings.Contains(strings.ToLower(l.City), city) {
			out = append(out, l)
		}
	}
	return out
}

// DemoListings exposes the sample pool for dev seeding.
func DemoListings() []models.Listing {
	out := make([]models.Listing, len(demoListings))
	copy(out, demoListings)
	return out
}
