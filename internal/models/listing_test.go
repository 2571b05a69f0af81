package models

import (
	"reflect"
	"testing"
)

func TestNormalizeRoomType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "all means unconstrained", in: "all", want: ""},
		{name: "any means unconstrained", in: "any", want: ""},
		{name: "valid lowercase", in: "single", want: "single"},
		{name: "valid mixed case", in: "Twin", want: "twin"},
		{name: "surrounding spaces", in: "  triple ", want: "triple"},
		{name: "unknown value dropped", in: "penthouse", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRoomType(tt.in); got != tt.want {
				t.Errorf("NormalizeRoomType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "male", want: "male"},
		{in: "FEMALE", want: "female"},
		{in: "any", want: "any"},
		{in: "coed", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := NormalizeGender(tt.in); got != tt.want {
			t.Errorf("NormalizeGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmenities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "only spaces", in: "   ", want: nil},
		{name: "simple list", in: "wifi,ac", want: []string{"wifi", "ac"}},
		{name: "trims and lowercases", in: " WiFi , AC ", want: []string{"wifi", "ac"}},
		{name: "drops empties", in: "wifi,,ac,", want: []string{"wifi", "ac"}},
		{name: "dedupes keeping first", in: "wifi,AC,Wifi,ac", want: []string{"wifi", "ac"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmenities(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAmenities(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBudgetWindow(t *testing.T) {
	lo, hi := 5000, 9000

	tests := []struct {
		name    string
		prefs   Preferences
		wantMin int
		wantMax bool // max is math.MaxInt when false
	}{
		{name: "unset is unconstrained", prefs: Preferences{}, wantMin: 0, wantMax: false},
		{name: "min only", prefs: Preferences{MinBudget: &lo}, wantMin: 5000, wantMax: false},
		{name: "both bounds", prefs: Preferences{MinBudget: &lo, MaxBudget: &hi}, wantMin: 5000, wantMax: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.prefs.BudgetWindow()
			if min != tt.wantMin {
				t.Errorf("min = %d, want %d", min, tt.wantMin)
			}
			if tt.wantMax && max != hi {
				t.Errorf("max = %d, want %d", max, hi)
			}
			if !tt.wantMax && max <= hi {
				t.Errorf("max = %d, want unconstrained", max)
			}
		})
	}
}
