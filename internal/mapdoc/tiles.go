package mapdoc

import (
	"strings"

	"github.com/rotisserie/eris"
)

// TileStyle is a background tile layer.
type TileStyle struct {
	Name        string
	URL         string
	Attribution string
	Subdomains  string
	MaxZoom     int
}

const osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

var namedTiles = []TileStyle{
	{
		Name:        "Mapbox Bright",
		URL:         "https://api.tiles.mapbox.com/v3/mapbox.world-bright/{z}/{x}/{y}.png",
		Attribution: `&copy; <a href="https://www.mapbox.com/about/maps/">Mapbox</a> ` + osmAttribution,
		MaxZoom:     18,
	},
	{
		Name:        "OpenStreetMap",
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: osmAttribution,
		MaxZoom:     19,
	},
	{
		Name:        "CartoDB positron",
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Attribution: osmAttribution + ` &copy; <a href="https://carto.com/attributions">CARTO</a>`,
		Subdomains:  "abcd",
		MaxZoom:     20,
	},
	{
		Name:        "CartoDB dark_matter",
		URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
		Attribution: osmAttribution + ` &copy; <a href="https://carto.com/attributions">CARTO</a>`,
		Subdomains:  "abcd",
		MaxZoom:     20,
	},
}

// LookupTiles resolves a tile style by name, case-insensitively. A value
// containing "{z}" is taken as a literal URL template.
func LookupTiles(name string) (TileStyle, error) {
	if strings.Contains(name, "{z}") {
		return TileStyle{Name: "Custom", URL: name, MaxZoom: 18}, nil
	}
	for _, t := range namedTiles {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return TileStyle{}, eris.Errorf("mapdoc: unknown tile style %q", name)
}

// TileNames lists the built-in tile style names.
func TileNames() []string {
	names := make([]string, len(namedTiles))
	for i, t := range namedTiles {
		names[i] = t.Name
	}
	return names
}
