package almanac

import "testing"

// TestWeatherDeterministic tests that repeated calls yield identical readings.
func TestWeatherDeterministic(t *testing.T) {
	locations := []string{"", "chicago", "Chicago", "90210", "new york city"}

	for _, loc := range locations {
		t.Run("location "+loc, func(t *testing.T) {
			first := Weather(loc)
			second := Weather(loc)
			if first != second {
				t.Errorf("Weather(%q) not deterministic: %+v != %+v", loc, first, second)
			}
		})
	}
}

// TestWeatherEmptyLocation tests the zero-hash reading for empty input.
func TestWeatherEmptyLocation(t *testing.T) {
	r := Weather("")

	if r.Temperature != 45 {
		t.Errorf("Temperature = %d, want 45", r.Temperature)
	}
	if r.Humidity != 30 {
		t.Errorf("Humidity = %d, want 30", r.Humidity)
	}
	if r.Condition != conditions[0] {
		t.Errorf("Condition = %q, want first table entry %q", r.Condition, conditions[0])
	}
	if r.Location != unknownLocation {
		t.Errorf("Location = %q, want %q", r.Location, unknownLocation)
	}
}

// TestWeatherBounds tests the hash-mod ranges over a spread of inputs.
func TestWeatherBounds(t *testing.T) {
	inputs := []string{
		"", "a", "zz", "chicago", "seattle", "miami beach",
		"77001", "Reykjavik", "a very long location string with spaces",
	}

	for _, loc := range inputs {
		r := Weather(loc)
		if r.Temperature < 45 || r.Temperature > 84 {
			t.Errorf("Weather(%q).Temperature = %d, want 45..84", loc, r.Temperature)
		}
		if r.Humidity < 30 || r.Humidity > 79 {
			t.Errorf("Weather(%q).Humidity = %d, want 30..79", loc, r.Humidity)
		}
	}
}

// TestWeatherDisplayName tests that the display name uppercases input.
func TestWeatherDisplayName(t *testing.T) {
	tests := []struct {
		location string
		expected string
	}{
		{"chicago", "CHICAGO"},
		{"New York", "NEW YORK"},
		{"90210", "90210"},
		{"", unknownLocation},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if r := Weather(tt.location); r.Location != tt.expected {
				t.Errorf("Weather(%q).Location = %q, want %q", tt.location, r.Location, tt.expected)
			}
		})
	}
}

// TestWeatherConditionSelection tests the hash-mod condition index.
func TestWeatherConditionSelection(t *testing.T) {
	// "a" is byte 97, so hash = 97 and 97 % 8 = 1.
	if r := Weather("a"); r.Condition != conditions[1] {
		t.Errorf("Weather(\"a\").Condition = %q, want %q", r.Condition, conditions[1])
	}
}

// TestConditionsCopy tests that Conditions returns an isolated slice.
func TestConditionsCopy(t *testing.T) {
	got := Conditions()
	if len(got) != 8 {
		t.Fatalf("len(Conditions()) = %d, want 8", len(got))
	}

	got[0] = "mutated"
	if conditions[0] == "mutated" {
		t.Error("mutating the returned slice must not affect the condition table")
	}
}
