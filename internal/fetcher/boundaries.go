package fetcher

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// LoadBoundaries reads a boundary collection as a whole. Paths ending in .shp
// are read as shapefiles; everything else is UTF-8 GeoJSON, optionally
// prefixed with a UTF-8 byte-order mark. Invalid UTF-8 is an error.
func LoadBoundaries(path string) (*geojson.FeatureCollection, error) {
	if strings.EqualFold(filepath.Ext(path), ".shp") {
		return loadShapefile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: open boundaries %s", path)
	}
	defer f.Close()

	return decodeGeoJSON(path, f)
}

func decodeGeoJSON(source string, r io.Reader) (*geojson.FeatureCollection, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: read boundaries %s", source)
	}
	data, err := decodeUTF8(raw)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: decode boundaries %s", source)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, eris.Wrapf(err, "fetcher: decode boundaries %s", source)
	}
	if fc.Features == nil {
		fc.Features = []*geojson.Feature{}
	}

	zap.L().Debug("fetcher: boundaries loaded",
		zap.String("source", source),
		zap.Int("features", len(fc.Features)),
	)
	return &fc, nil
}
