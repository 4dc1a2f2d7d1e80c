package classify

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElevation(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected ElevationTier
	}{
		{name: "high: well above", meters: 4392, expected: ElevationHigh},
		{name: "high: just above threshold", meters: 3000.1, expected: ElevationHigh},
		{name: "upper-mid: at high threshold", meters: 3000, expected: ElevationUpperMid},
		{name: "upper-mid: just above threshold", meters: 2000.5, expected: ElevationUpperMid},
		{name: "lower-mid: at upper-mid threshold", meters: 2000, expected: ElevationLowerMid},
		{name: "lower-mid: just above threshold", meters: 1001, expected: ElevationLowerMid},
		{name: "low: at lower-mid threshold", meters: 1000, expected: ElevationLow},
		{name: "low: sea level", meters: 0, expected: ElevationLow},
		{name: "low: submarine", meters: -642, expected: ElevationLow},
		{name: "low: NaN", meters: math.NaN(), expected: ElevationLow},
		{name: "high: +Inf", meters: math.Inf(1), expected: ElevationHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Elevation(tt.meters))
		})
	}
}

func TestElevation_Bands(t *testing.T) {
	for e := -500.0; e <= 5000; e += 0.5 {
		got := Elevation(e)
		switch {
		case e <= 1000:
			assert.Equal(t, ElevationLow, got, "elevation %v", e)
		case e <= 2000:
			assert.Equal(t, ElevationLowerMid, got, "elevation %v", e)
		case e <= 3000:
			assert.Equal(t, ElevationUpperMid, got, "elevation %v", e)
		default:
			assert.Equal(t, ElevationHigh, got, "elevation %v", e)
		}
	}
}

func TestElevationTier_Color(t *testing.T) {
	assert.Equal(t, "red", ElevationHigh.Color())
	assert.Equal(t, "orange", ElevationUpperMid.Color())
	assert.Equal(t, "green", ElevationLowerMid.Color())
	assert.Equal(t, "blue", ElevationLow.Color())
}

func TestPopulation(t *testing.T) {
	tests := []struct {
		name     string
		pop      float64
		expected PopulationTier
	}{
		{name: "very-high", pop: 25_000_000, expected: PopulationVeryHigh},
		{name: "high: at very-high threshold", pop: 20_000_000, expected: PopulationHigh},
		{name: "high", pop: 15_000_000, expected: PopulationHigh},
		{name: "moderate: at high threshold", pop: 10_000_000, expected: PopulationModerate},
		{name: "moderate", pop: 1_000_000, expected: PopulationModerate},
		{name: "moderate: zero", pop: 0, expected: PopulationModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Population(tt.pop))
		})
	}
}

func TestPopulationTier_Color(t *testing.T) {
	assert.Equal(t, "red", PopulationVeryHigh.Color())
	assert.Equal(t, "orange", PopulationHigh.Color())
	assert.Equal(t, "green", PopulationModerate.Color())
}

func TestPopulationOf(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected PopulationTier
		ok       bool
	}{
		{name: "float64 from JSON", value: float64(25_000_000), expected: PopulationVeryHigh, ok: true},
		{name: "int", value: 15_000_000, expected: PopulationHigh, ok: true},
		{name: "int64", value: int64(1_000_000), expected: PopulationModerate, ok: true},
		{name: "json.Number", value: json.Number("21000000"), expected: PopulationVeryHigh, ok: true},
		{name: "numeric string", value: " 12000000 ", expected: PopulationHigh, ok: true},
		{name: "missing", value: nil, expected: PopulationModerate, ok: false},
		{name: "non-numeric string", value: "n/a", expected: PopulationModerate, ok: false},
		{name: "bool", value: true, expected: PopulationModerate, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := PopulationOf(tt.value)
			assert.Equal(t, tt.expected, tier)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
