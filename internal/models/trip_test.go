package models

import (
	"encoding/json"
	"testing"
)

func TestIsValidTripType(t *testing.T) {
	tests := []struct {
		name     string
		tripType string
		expected bool
	}{
		{"personal", TripPersonal, true},
		{"professional", TripProfessional, true},
		{"commute", TripCommute, true},
		{"invalid", "vacation", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidTripType(tt.tripType)
			if result != tt.expected {
				t.Errorf("IsValidTripType(%s) = %v, want %v", tt.tripType, result, tt.expected)
			}
		})
	}
}

func TestTrip_AbsentMetricsStayNull(t *testing.T) {
	trip := Trip{UserID: "u1", Type: TripPersonal}

	data, err := json.Marshal(trip)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// The clients distinguish "no calculation yet" from zero, so absent
	// metrics must serialize as null, not 0.
	if decoded["distance_km"] != nil {
		t.Errorf("expected null distance_km, got %v", decoded["distance_km"])
	}
	if decoded["co2_emissions_kg"] != nil {
		t.Errorf("expected null co2_emissions_kg, got %v", decoded["co2_emissions_kg"])
	}
}
