package report

import (
	"fmt"
	"io"

	"github.com/Zachdehooge/volcano-map/internal/classify"
	"github.com/Zachdehooge/volcano-map/internal/config"
	"github.com/Zachdehooge/volcano-map/internal/fetcher"
	"github.com/Zachdehooge/volcano-map/internal/layers"
)

// TableOptions maps the volcano configuration onto fetcher options.
func TableOptions(v config.VolcanoConfig) fetcher.TableOptions {
	return fetcher.TableOptions{
		LatColumn:       v.LatColumn,
		LonColumn:       v.LonColumn,
		LabelColumn:     v.LabelColumn,
		ElevationColumn: v.ElevationColumn,
		Delimiter:       v.DelimiterRune(),
		Sheet:           v.Sheet,
	}
}

// ListPoints prints every volcano record with its elevation tier without
// generating a map. Unlike map generation, a table that cannot be read is an
// error here.
func ListPoints(cfg *config.Config, out io.Writer) error {
	records, err := fetcher.LoadPoints(cfg.Volcanoes.Path, TableOptions(cfg.Volcanoes))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No volcanoes found.")
		return nil
	}

	counts := make(map[classify.ElevationTier]int)
	fmt.Fprintf(out, "Volcanoes in %s:\n", cfg.Volcanoes.Path)
	for _, r := range records {
		tier := classify.Elevation(r.Elevation)
		counts[tier]++
		fmt.Fprintln(out, "---")
		fmt.Fprintf(out, "Name: %s\n", r.Label)
		fmt.Fprintf(out, "Location: %v, %v\n", r.Lat, r.Lon)
		fmt.Fprintf(out, "Elevation: %sm\n", layers.FormatElevation(r.Elevation))
		fmt.Fprintf(out, "Tier: %s (%s)\n", tier, tier.Color())
	}

	fmt.Fprintln(out, "---")
	fmt.Fprintf(out, "Total: %d\n", len(records))
	for _, tier := range []classify.ElevationTier{
		classify.ElevationHigh,
		classify.ElevationUpperMid,
		classify.ElevationLowerMid,
		classify.ElevationLow,
	} {
		fmt.Fprintf(out, "%s: %d\n", tier, counts[tier])
	}
	return nil
}
