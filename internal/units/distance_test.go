package units

import (
	"math"
	"testing"
)

func TestConvertDistance(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		from      Unit
		to        Unit
		want      float64
		tolerance float64
	}{
		{"same unit km", 5.0, Kilometers, Kilometers, 5.0, 0},
		{"same unit mi", 3.11, Miles, Miles, 3.11, 0},
		{"5 km to mi", 5.0, Kilometers, Miles, 3.107, 0.01},
		{"3.11 mi to km", 3.11, Miles, Kilometers, 5.005, 0.01},
		{"marathon to mi", 42.195, Kilometers, Miles, 26.219, 0.01},
		{"no rounding applied", 1.0, Kilometers, Miles, KmToMiles, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertDistance(tt.value, tt.from, tt.to)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("ConvertDistance(%v, %s, %s) = %v, want %v (±%v)",
					tt.value, tt.from, tt.to, got, tt.want, tt.tolerance)
			}
		})
	}

	if ConvertDistance(MinDistance, Kilometers, Miles) <= 0 {
		t.Error("ConvertDistance(MinDistance) should be positive")
	}
}

func TestClampDistance(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"in range", 5.0, 5.0},
		{"in range fractional", 100.5, 100.5},
		{"below minimum", 0.005, MinDistance},
		{"zero", 0, MinDistance},
		{"negative", -10, MinDistance},
		{"above maximum", 1000.0, MaxDistance},
		{"far above maximum", 10000, MaxDistance},
		{"lower boundary", 0.01, 0.01},
		{"upper boundary", 999.99, 999.99},
		{"positive infinity", math.Inf(1), MaxDistance},
		{"negative infinity", math.Inf(-1), MinDistance},
		{"NaN", math.NaN(), MinDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDistance(tt.value)
			if got != tt.want {
				t.Errorf("ClampDistance(%v) = %v, want %v", tt.value, got, tt.want)
			}
			if again := ClampDistance(got); again != got {
				t.Errorf("ClampDistance not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		token  string
		want   Unit
		wantOK bool
	}{
		{"km", Kilometers, true},
		{"mi", Miles, true},
		{"yards", "", false},
		{"KM", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseUnit(tt.token)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseUnit(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}

	if Kilometers.Opposite() != Miles || Miles.Opposite() != Kilometers {
		t.Error("Opposite() should swap km and mi")
	}
	if Miles.PaceLabel() != "min/mi" {
		t.Errorf("Miles.PaceLabel() = %q, want min/mi", Miles.PaceLabel())
	}
}
