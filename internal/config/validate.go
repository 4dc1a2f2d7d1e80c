package config

import (
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/Zachdehooge/volcano-map/internal/mapdoc"
)

const maxZoom = 22

// Validate checks the configuration for values the map cannot be built from.
func (c *Config) Validate() error {
	if c.Volcanoes.Path == "" {
		return eris.New("config: volcanoes.path is required")
	}
	if c.Boundaries.Path == "" {
		return eris.New("config: boundaries.path is required")
	}
	if c.Output.Path == "" {
		return eris.New("config: output.path is required")
	}
	if c.Boundaries.PopulationProperty == "" {
		return eris.New("config: boundaries.population_property is required")
	}
	if _, err := mapdoc.ParseMarkerStyle(c.Volcanoes.MarkerStyle); err != nil {
		return eris.Wrap(err, "config: volcanoes.marker_style")
	}
	if d := c.Volcanoes.Delimiter; d != "" && utf8.RuneCountInString(d) != 1 {
		return eris.Errorf("config: volcanoes.delimiter must be a single character, got %q", d)
	}
	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return eris.Errorf("config: map.center_lat %v out of range", c.Map.CenterLat)
	}
	if c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		return eris.Errorf("config: map.center_lon %v out of range", c.Map.CenterLon)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > maxZoom {
		return eris.Errorf("config: map.zoom %d out of range 0..%d", c.Map.Zoom, maxZoom)
	}
	if _, err := mapdoc.LookupTiles(c.Map.Tiles); err != nil {
		return eris.Wrap(err, "config: map.tiles")
	}
	return nil
}

// DelimiterRune returns the configured table delimiter, defaulting to comma.
func (v VolcanoConfig) DelimiterRune() rune {
	if v.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(v.Delimiter)
	return r
}
