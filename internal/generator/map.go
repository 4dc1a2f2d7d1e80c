package generator

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"

	"github.com/natefinch/atomic"
	"github.com/rotisserie/eris"

	"github.com/Zachdehooge/volcano-map/internal/mapdoc"
)

var mapTemplate = template.Must(template.New("map").Parse(mapHTML))

// markerJSON is the shape each marker takes in the page script.
type markerJSON struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Popup  string  `json:"popup"`
	Color  string  `json:"color"`
	Circle bool    `json:"circle,omitempty"`
}

type templateGroup struct {
	ID       string
	Name     string
	Show     bool
	Markers  template.JS
	Overlays []template.JS
}

type templateData struct {
	Title        string
	MapID        string
	Center       template.JS
	Zoom         int
	Tiles        mapdoc.TileStyle
	Groups       []templateGroup
	LayerControl bool
	UsesPins     bool
	StyleKey     string
}

// Render writes the document as a self-contained HTML page. The document
// must be sealed. Output depends only on the document, so identical
// documents render identical bytes.
func Render(w io.Writer, doc *mapdoc.Document) error {
	if doc == nil {
		return eris.New("generator: nil document")
	}
	if !doc.Sealed() {
		return eris.New("generator: document must be sealed before rendering")
	}

	center, err := toJSON([2]float64{doc.Center.Lat, doc.Center.Lng})
	if err != nil {
		return eris.Wrap(err, "generator: encode center")
	}

	data := templateData{
		Title:        doc.Title,
		MapID:        doc.ID,
		Center:       center,
		Zoom:         doc.Zoom,
		Tiles:        doc.Tiles,
		LayerControl: doc.HasLayerControl(),
		StyleKey:     mapdoc.StyleProperty,
	}

	for _, g := range doc.Groups() {
		tg, usesPins, err := convertGroup(g)
		if err != nil {
			return eris.Wrapf(err, "generator: group %q", g.Name)
		}
		data.UsesPins = data.UsesPins || usesPins
		data.Groups = append(data.Groups, tg)
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, data); err != nil {
		return eris.Wrap(err, "generator: execute template")
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Save renders the document to path, replacing any existing file.
func Save(path string, doc *mapdoc.Document) error {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return err
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return eris.Wrapf(err, "generator: write %s", path)
	}
	return nil
}

func convertGroup(g *mapdoc.FeatureGroup) (templateGroup, bool, error) {
	markers := make([]markerJSON, 0, len(g.Markers()))
	usesPins := false
	for _, m := range g.Markers() {
		circle := m.Style == mapdoc.StyleCircle
		usesPins = usesPins || !circle
		markers = append(markers, markerJSON{
			Lat:    m.Position.Lat,
			Lng:    m.Position.Lng,
			Popup:  m.Popup,
			Color:  m.Color,
			Circle: circle,
		})
	}

	markersJS, err := toJSON(markers)
	if err != nil {
		return templateGroup{}, false, err
	}

	tg := templateGroup{
		ID:      g.ID(),
		Name:    g.Name,
		Show:    g.Show,
		Markers: markersJS,
	}
	for _, o := range g.Overlays() {
		js, err := toJSON(o.Styled())
		if err != nil {
			return templateGroup{}, false, err
		}
		tg.Overlays = append(tg.Overlays, js)
	}
	return tg, usesPins, nil
}

func toJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
