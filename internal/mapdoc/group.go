package mapdoc

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// MarkerStyle selects how a point marker is drawn.
type MarkerStyle string

const (
	// StylePin draws a colored pin icon.
	StylePin MarkerStyle = "pin"
	// StyleCircle draws a filled circle.
	StyleCircle MarkerStyle = "circle"
)

// ParseMarkerStyle accepts "pin" or "circle", case-insensitively. An empty
// string means pin.
func ParseMarkerStyle(s string) (MarkerStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StylePin):
		return StylePin, nil
	case string(StyleCircle):
		return StyleCircle, nil
	default:
		return "", eris.Errorf("mapdoc: unknown marker style %q", s)
	}
}

// Marker is a point with a popup and a color.
type Marker struct {
	Position LatLng
	Popup    string
	Color    string
	Style    MarkerStyle
}

// PathStyle is the Leaflet path style applied to a polygon.
type PathStyle struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
}

// StyleFunc computes the style of one feature.
type StyleFunc func(f *geojson.Feature) PathStyle

// StyleProperty is the property key carrying a feature's computed style in
// the rendered collection. Source properties under the same key are replaced.
const StyleProperty = "__style"

// PolygonOverlay is a feature collection drawn as one layer. Per-feature
// styles are computed when the overlay is rendered.
type PolygonOverlay struct {
	Features *geojson.FeatureCollection
	Style    StyleFunc
}

// Styled returns a copy of the collection with each feature's computed style
// stored under StyleProperty. The source features are not modified.
func (o *PolygonOverlay) Styled() *geojson.FeatureCollection {
	out := &geojson.FeatureCollection{}
	if o.Features == nil {
		out.Features = []*geojson.Feature{}
		return out
	}
	out.BBox = o.Features.BBox
	out.Features = make([]*geojson.Feature, 0, len(o.Features.Features))
	for _, f := range o.Features.Features {
		if f == nil {
			continue
		}
		props := make(map[string]interface{}, len(f.Properties)+1)
		for k, v := range f.Properties {
			props[k] = v
		}
		if o.Style != nil {
			props[StyleProperty] = o.Style(f)
		}
		out.Features = append(out.Features, &geojson.Feature{
			ID:         f.ID,
			BBox:       f.BBox,
			Geometry:   f.Geometry,
			Properties: props,
		})
	}
	return out
}

// FeatureGroup is a named collection of visuals shown or hidden together.
type FeatureGroup struct {
	Name string
	Show bool

	id       string
	markers  []Marker
	overlays []*PolygonOverlay
}

// NewFeatureGroup returns an empty group that is visible on load.
func NewFeatureGroup(name string) *FeatureGroup {
	return &FeatureGroup{Name: name, Show: true}
}

// AddMarker appends a marker.
func (g *FeatureGroup) AddMarker(m Marker) {
	g.markers = append(g.markers, m)
}

// AddOverlay appends a polygon overlay.
func (g *FeatureGroup) AddOverlay(o *PolygonOverlay) {
	g.overlays = append(g.overlays, o)
}

// Markers returns the markers in insertion order.
func (g *FeatureGroup) Markers() []Marker { return g.markers }

// Overlays returns the polygon overlays in insertion order.
func (g *FeatureGroup) Overlays() []*PolygonOverlay { return g.overlays }

// Len returns the number of visuals in the group.
func (g *FeatureGroup) Len() int { return len(g.markers) + len(g.overlays) }

// ID returns the element ID assigned when the group was added to a document.
func (g *FeatureGroup) ID() string { return g.id }
