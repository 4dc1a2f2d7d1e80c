// Package layers builds the map's feature groups from the loaded datasets.
package layers

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachdehooge/volcano-map/internal/classify"
	"github.com/Zachdehooge/volcano-map/internal/fetcher"
	"github.com/Zachdehooge/volcano-map/internal/mapdoc"
)

// MarkerOptions configures BuildMarkers.
type MarkerOptions struct {
	Source string
	Table  fetcher.TableOptions
	Style  mapdoc.MarkerStyle
}

// BuildMarkers turns every row of the volcano table into a marker colored by
// elevation tier. The returned group is never nil: when the table cannot be
// loaded the group is empty and the error describes why, so the caller can
// report it and carry on.
func BuildMarkers(name string, opts MarkerOptions) (*mapdoc.FeatureGroup, error) {
	fg := mapdoc.NewFeatureGroup(name)

	records, err := fetcher.LoadPoints(opts.Source, opts.Table)
	if err != nil {
		return fg, err
	}

	style := opts.Style
	if style == "" {
		style = mapdoc.StylePin
	}

	for _, r := range records {
		fg.AddMarker(NewMarker(r, style))
	}

	zap.L().Debug("layers: markers built",
		zap.String("group", name),
		zap.String("source", opts.Source),
		zap.Int("markers", len(records)),
	)
	return fg, nil
}

// NewMarker builds the marker for one point record.
func NewMarker(r fetcher.PointRecord, style mapdoc.MarkerStyle) mapdoc.Marker {
	return mapdoc.Marker{
		Position: mapdoc.LatLng{Lat: r.Lat, Lng: r.Lon},
		Popup:    PopupText(r.Label, r.Elevation),
		Color:    classify.Elevation(r.Elevation).Color(),
		Style:    style,
	}
}

// PopupText renders "<label> (<elevation>m)".
func PopupText(label string, elevation float64) string {
	return label + " (" + FormatElevation(elevation) + "m)"
}

// FormatElevation prints an elevation with the fewest digits that round-trip
// and always at least one decimal, so 3285 prints as "3285.0" and 1914.5 as
// "1914.5". Very large or small magnitudes use exponent form ("1e+16").
func FormatElevation(meters float64) string {
	switch {
	case math.IsNaN(meters):
		return "nan"
	case math.IsInf(meters, 1):
		return "inf"
	case math.IsInf(meters, -1):
		return "-inf"
	}

	if abs := math.Abs(meters); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(meters, 'e', -1, 64)
	}
	s := strconv.FormatFloat(meters, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
