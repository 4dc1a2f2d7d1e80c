// Package report assembles the volcano and population layers into one map
// document and saves it.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Zachdehooge/volcano-map/internal/config"
	"github.com/Zachdehooge/volcano-map/internal/generator"
	"github.com/Zachdehooge/volcano-map/internal/layers"
	"github.com/Zachdehooge/volcano-map/internal/mapdoc"
)

var warnColor = color.New(color.FgYellow)

// AssembleAndSave builds the map described by cfg and writes it to
// cfg.Output.Path, printing a progress line after each step to out.
//
// A volcano table that cannot be read only empties its layer. A boundary
// file or output write failure aborts and is returned.
func AssembleAndSave(cfg *config.Config, out io.Writer) error {
	doc, err := NewDocument(cfg)
	if err != nil {
		return err
	}

	volcanoes, err := layers.BuildMarkers(cfg.Volcanoes.LayerName, MarkerOptions(cfg))
	if err != nil {
		zap.L().Warn("report: volcano markers skipped",
			zap.String("source", cfg.Volcanoes.Path),
			zap.Error(err),
		)
		warnColor.Fprintf(out, "Problem reading data from %s.\n", cfg.Volcanoes.Path)
		warnColor.Fprintln(out, "No markers added.  Please check file and column names.")
	}
	if err := doc.AddGroup(volcanoes); err != nil {
		return eris.Wrap(err, "report: add volcano group")
	}
	fmt.Fprintln(out, ".../Volcano marker feature group added.")

	polygons, err := layers.BuildOverlay(cfg.Boundaries.LayerName, layers.OverlayOptions{
		Source:             cfg.Boundaries.Path,
		PopulationProperty: cfg.Boundaries.PopulationProperty,
	})
	if err != nil {
		return eris.Wrap(err, "report: build polygon overlay")
	}
	if err := doc.AddGroup(polygons); err != nil {
		return eris.Wrap(err, "report: add polygon group")
	}
	fmt.Fprintln(out, ".../Polygons feature group added.")

	if err := doc.AddLayerControl(); err != nil {
		return eris.Wrap(err, "report: add layer control")
	}
	doc.Seal()

	if err := generator.Save(cfg.Output.Path, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, ".../%s created.\n", cfg.Output.Path)

	zap.L().Info("report: map written",
		zap.String("path", cfg.Output.Path),
		zap.Int("markers", volcanoes.Len()),
	)
	fmt.Fprintln(out, "Done.")
	return nil
}

// NewDocument creates the empty map document for cfg's viewport and tiles.
func NewDocument(cfg *config.Config) (*mapdoc.Document, error) {
	tiles, err := mapdoc.LookupTiles(cfg.Map.Tiles)
	if err != nil {
		return nil, eris.Wrap(err, "report: tiles")
	}
	center := mapdoc.LatLng{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLon}
	return mapdoc.New(cfg.Map.Title, center, cfg.Map.Zoom, tiles), nil
}

// MarkerOptions translates the volcano configuration for the marker builder.
func MarkerOptions(cfg *config.Config) layers.MarkerOptions {
	// Validated at load; an unknown style falls back to pin.
	style, err := mapdoc.ParseMarkerStyle(cfg.Volcanoes.MarkerStyle)
	if err != nil {
		style = mapdoc.StylePin
	}
	return layers.MarkerOptions{
		Source: cfg.Volcanoes.Path,
		Table:  TableOptions(cfg.Volcanoes),
		Style:  style,
	}
}
