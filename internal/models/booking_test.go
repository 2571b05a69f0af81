package models

import "testing"

func TestCanTransitionBooking(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{from: BookingPending, to: BookingApproved, want: true},
		{from: BookingPending, to: BookingRejected, want: true},
		{from: BookingPending, to: BookingCancelled, want: true},
		{from: BookingApproved, to: BookingCancelled, want: true},
		{from: BookingApproved, to: BookingRejected, want: false},
		{from: BookingApproved, to: BookingPending, want: false},
		{from: BookingRejected, to: BookingApproved, want: false},
		{from: BookingRejected, to: BookingCancelled, want: false},
		{from: BookingCancelled, to: BookingPending, want: false},
		{from: BookingPending, to: BookingPending, want: false},
		{from: "unknown", to: BookingApproved, want: false},
		{from: BookingPending, to: "unknown", want: false},
	}

	for _, tt := range tests {
		if got := CanTransitionBooking(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
