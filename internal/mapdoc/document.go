// Package mapdoc holds the in-memory map document: a viewport, a tile style,
// and an ordered list of toggleable feature groups.
package mapdoc

import (
	"github.com/rotisserie/eris"
)

// ErrSealed is returned when a sealed document is mutated.
var ErrSealed = eris.New("mapdoc: document is sealed")

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Document is the root container serialized to HTML. It is built by
// appending groups and is read-only once sealed.
type Document struct {
	ID     string
	Title  string
	Center LatLng
	Zoom   int
	Tiles  TileStyle

	groups       []*FeatureGroup
	layerControl bool
	sealed       bool
}

// New creates an empty document.
func New(title string, center LatLng, zoom int, tiles TileStyle) *Document {
	return &Document{
		ID:     elementID("map", title, 0),
		Title:  title,
		Center: center,
		Zoom:   zoom,
		Tiles:  tiles,
	}
}

// AddGroup appends a feature group. Groups render in insertion order.
func (d *Document) AddGroup(g *FeatureGroup) error {
	if d.sealed {
		return ErrSealed
	}
	if g == nil {
		return eris.New("mapdoc: nil feature group")
	}
	g.id = elementID("feature_group", g.Name, len(d.groups))
	d.groups = append(d.groups, g)
	return nil
}

// AddLayerControl attaches a control listing every group with a show/hide
// checkbox.
func (d *Document) AddLayerControl() error {
	if d.sealed {
		return ErrSealed
	}
	d.layerControl = true
	return nil
}

// Seal freezes the document.
func (d *Document) Seal() { d.sealed = true }

// Sealed reports whether the document is frozen.
func (d *Document) Sealed() bool { return d.sealed }

// Groups returns the feature groups in insertion order.
func (d *Document) Groups() []*FeatureGroup {
	out := make([]*FeatureGroup, len(d.groups))
	copy(out, d.groups)
	return out
}

// HasLayerControl reports whether a layer control was added.
func (d *Document) HasLayerControl() bool { return d.layerControl }
