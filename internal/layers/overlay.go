package layers

import (
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/Zachdehooge/volcano-map/internal/classify"
	"github.com/Zachdehooge/volcano-map/internal/fetcher"
	"github.com/Zachdehooge/volcano-map/internal/mapdoc"
)

// OverlayOptions configures BuildOverlay.
type OverlayOptions struct {
	Source             string
	PopulationProperty string
}

// BuildOverlay wraps the whole boundary file as one polygon overlay whose
// fill colors come from each feature's population. Any load error is
// returned as is; there is no fallback.
func BuildOverlay(name string, opts OverlayOptions) (*mapdoc.FeatureGroup, error) {
	fc, err := fetcher.LoadBoundaries(opts.Source)
	if err != nil {
		return nil, err
	}

	fg := mapdoc.NewFeatureGroup(name)
	fg.AddOverlay(&mapdoc.PolygonOverlay{
		Features: fc,
		Style:    PopulationStyle(opts.PopulationProperty),
	})
	return fg, nil
}

// PopulationStyle returns a style func filling each feature by the tier of
// the named property. Features without a usable value fill as moderate.
func PopulationStyle(property string) mapdoc.StyleFunc {
	return func(f *geojson.Feature) mapdoc.PathStyle {
		var v any
		if f.Properties != nil {
			v = f.Properties[property]
		}
		tier, ok := classify.PopulationOf(v)
		if !ok {
			zap.L().Debug("layers: population missing or non-numeric",
				zap.String("property", property),
				zap.Any("name", f.Properties["NAME"]),
			)
		}
		return mapdoc.PathStyle{FillColor: tier.Color()}
	}
}
