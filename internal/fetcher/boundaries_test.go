package fetcher

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

const worldFixture = `{"type":"FeatureCollection","features":[
{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]},"properties":{"NAME":"Big","POP2005":25000000}},
{"type":"Feature","geometry":{"type":"MultiPolygon","coordinates":[[[[2,2],[3,2],[3,3],[2,3],[2,2]]]]},"properties":{"NAME":"Mid","POP2005":15000000}},
{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[4,4],[5,4],[5,5],[4,5],[4,4]]]},"properties":{"NAME":"Small","POP2005":1000000}}
]}`

func TestLoadBoundaries_GeoJSON(t *testing.T) {
	path := writeTestFile(t, "world.json", worldFixture)

	fc, err := LoadBoundaries(path)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	assert.Equal(t, "Big", fc.Features[0].Properties["NAME"])
	assert.Equal(t, float64(25000000), fc.Features[0].Properties["POP2005"])
	assert.IsType(t, &geom.Polygon{}, fc.Features[0].Geometry)
	assert.IsType(t, &geom.MultiPolygon{}, fc.Features[1].Geometry)
}

func TestLoadBoundaries_StripsBOM(t *testing.T) {
	path := writeTestFile(t, "world.json", "\ufeff"+worldFixture)

	fc, err := LoadBoundaries(path)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)
}

func TestLoadBoundaries_InvalidUTF8(t *testing.T) {
	content := "\ufeff" + strings.Replace(worldFixture, `"NAME":"Big"`, "\"NAME\":\"C\xff\xfete\"", 1)
	path := writeTestFile(t, "world.json", content)

	_, err := LoadBoundaries(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestLoadBoundaries_UTF16Rejected(t *testing.T) {
	// UTF-16LE with a byte-order mark.
	var b strings.Builder
	b.WriteString("\xff\xfe")
	for _, r := range worldFixture {
		b.WriteByte(byte(r))
		b.WriteByte(0)
	}
	path := writeTestFile(t, "world.json", b.String())

	_, err := LoadBoundaries(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode boundaries")
}

func TestLoadBoundaries_EmptyCollection(t *testing.T) {
	path := writeTestFile(t, "world.json", `{"type":"FeatureCollection","features":[]}`)

	fc, err := LoadBoundaries(path)
	require.NoError(t, err)
	assert.NotNil(t, fc.Features)
	assert.Empty(t, fc.Features)
}

func TestLoadBoundaries_Missing(t *testing.T) {
	_, err := LoadBoundaries(filepath.Join(t.TempDir(), "world.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open boundaries")
}

func TestLoadBoundaries_Malformed(t *testing.T) {
	path := writeTestFile(t, "world.json", `{"type":"FeatureCollection","features":[`)

	_, err := LoadBoundaries(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode boundaries")
}

func TestDecodeGeoJSON_Reader(t *testing.T) {
	fc, err := decodeGeoJSON("inline", strings.NewReader(worldFixture))
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3)
}

func TestLoadBoundaries_ShapefileMissing(t *testing.T) {
	_, err := LoadBoundaries(filepath.Join(t.TempDir(), "world.shp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shapefile")
}

func TestShapeToMultiPolygon_Single(t *testing.T) {
	poly := &shp.Polygon{
		NumParts: 1,
		Parts:    []int32{0},
		Points: []shp.Point{
			{X: -80.0, Y: 25.0},
			{X: -80.0, Y: 26.0},
			{X: -79.0, Y: 26.0},
			{X: -79.0, Y: 25.0},
			{X: -80.0, Y: 25.0}, // closed ring, clockwise
		},
	}

	mp := shapeToMultiPolygon(poly)
	require.NotNil(t, mp)
	assert.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, 1, mp.Polygon(0).NumLinearRings())
}

func TestShapeToMultiPolygon_HoleAndIsland(t *testing.T) {
	poly := &shp.Polygon{
		NumParts: 3,
		Parts:    []int32{0, 5, 10},
		Points: []shp.Point{
			// Outer ring, clockwise
			{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0},
			// Hole, counter-clockwise
			{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 2},
			// Island, clockwise
			{X: 20, Y: 20}, {X: 20, Y: 21}, {X: 21, Y: 21}, {X: 21, Y: 20}, {X: 20, Y: 20},
		},
	}

	mp := shapeToMultiPolygon(poly)
	require.NotNil(t, mp)
	require.Equal(t, 2, mp.NumPolygons())
	assert.Equal(t, 2, mp.Polygon(0).NumLinearRings())
	assert.Equal(t, 1, mp.Polygon(1).NumLinearRings())
}

func TestShapeToMultiPolygon_Empty(t *testing.T) {
	assert.Nil(t, shapeToMultiPolygon(nil))
	assert.Nil(t, shapeToMultiPolygon(&shp.Polygon{}))
}

func TestSignedArea(t *testing.T) {
	ccw := []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}
	cw := []float64{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}
	assert.InDelta(t, 1.0, signedArea(ccw), 1e-9)
	assert.InDelta(t, -1.0, signedArea(cw), 1e-9)
}

func TestAttributeValue(t *testing.T) {
	assert.Equal(t, float64(83039), attributeValue('N', "83039"))
	assert.Equal(t, 1.5, attributeValue('F', "1.5"))
	assert.Nil(t, attributeValue('N', "***"))
	assert.Nil(t, attributeValue('C', ""))
	assert.Equal(t, "Antigua", attributeValue('C', "Antigua"))
}
