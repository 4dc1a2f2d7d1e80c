// Package classify maps numeric data values onto the discrete color tiers
// used by the map layers.
package classify

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ElevationTier is the color band of a volcano marker.
type ElevationTier string

// Elevation tiers, highest first.
const (
	ElevationHigh     ElevationTier = "high"
	ElevationUpperMid ElevationTier = "upper-mid"
	ElevationLowerMid ElevationTier = "lower-mid"
	ElevationLow      ElevationTier = "low"
)

// Elevation thresholds in meters. A value equal to a threshold falls in the
// lower tier.
const (
	elevationHighThreshold     = 3000.0
	elevationUpperMidThreshold = 2000.0
	elevationLowerMidThreshold = 1000.0
)

// Elevation returns the tier for an elevation in meters.
// Rules, first match wins:
//   - high: > 3000
//   - upper-mid: > 2000
//   - lower-mid: > 1000
//   - low: everything else, including negatives and NaN
func Elevation(meters float64) ElevationTier {
	switch {
	case meters > elevationHighThreshold:
		return ElevationHigh
	case meters > elevationUpperMidThreshold:
		return ElevationUpperMid
	case meters > elevationLowerMidThreshold:
		return ElevationLowerMid
	default:
		return ElevationLow
	}
}

// Color returns the marker color name for the tier.
func (t ElevationTier) Color() string {
	switch t {
	case ElevationHigh:
		return "red"
	case ElevationUpperMid:
		return "orange"
	case ElevationLowerMid:
		return "green"
	default:
		return "blue"
	}
}

// PopulationTier is the fill band of a country polygon.
type PopulationTier string

// Population tiers, highest first.
const (
	PopulationVeryHigh PopulationTier = "very-high"
	PopulationHigh     PopulationTier = "high"
	PopulationModerate PopulationTier = "moderate"
)

const (
	populationVeryHighThreshold = 20_000_000.0
	populationHighThreshold     = 10_000_000.0
)

// Population returns the tier for a population count.
func Population(p float64) PopulationTier {
	switch {
	case p > populationVeryHighThreshold:
		return PopulationVeryHigh
	case p > populationHighThreshold:
		return PopulationHigh
	default:
		return PopulationModerate
	}
}

// PopulationOf classifies a raw property value as decoded from boundary
// data. Missing and non-numeric values classify as moderate and ok is false.
func PopulationOf(v any) (tier PopulationTier, ok bool) {
	p, ok := toFloat(v)
	if !ok {
		return PopulationModerate, false
	}
	return Population(p), true
}

// Color returns the fill color name for the tier.
func (t PopulationTier) Color() string {
	switch t {
	case PopulationVeryHigh:
		return "red"
	case PopulationHigh:
		return "orange"
	default:
		return "green"
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
