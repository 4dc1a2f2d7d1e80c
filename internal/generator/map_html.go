package generator

const mapHTML = `<!DOCTYPE html>
<html>
<head>
   <meta charset="UTF-8">
   <meta name="viewport" content="width=device-width, initial-scale=1.0">
   <title>{{ .Title }}</title>
   <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
   <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
   {{- if .UsesPins }}
   <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.2.0/css/bootstrap.min.css" />
   <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.css" />
   <script src="https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.js"></script>
   {{- end }}
   <style>
      html, body { width: 100%; height: 100%; margin: 0; padding: 0; }
      .map { position: absolute; top: 0; bottom: 0; left: 0; right: 0; }
   </style>
</head>
<body>
   <div class="map" id="{{ .MapID }}"></div>
   <script>
      function popupNode(text) {
          const el = document.createElement('div');
          el.textContent = text;
          return el;
      }

      function markerLayer(m) {
          if (m.circle) {
              return L.circleMarker([m.lat, m.lng], {
                  radius: 10, fill: true, fillColor: m.color, color: 'grey', fillOpacity: 0.7
              }).bindPopup(popupNode(m.popup));
          }
          return L.marker([m.lat, m.lng], {
              icon: L.AwesomeMarkers.icon({ markerColor: m.color, icon: 'info-sign', prefix: 'glyphicon' })
          }).bindPopup(popupNode(m.popup));
      }

      const map = L.map({{ .MapID }}, { center: {{ .Center }}, zoom: {{ .Zoom }} });

      const baseLayers = {};
      baseLayers[{{ .Tiles.Name }}] = L.tileLayer({{ .Tiles.URL }}, {
          {{- if .Tiles.Subdomains }}
          subdomains: {{ .Tiles.Subdomains }},
          {{- end }}
          attribution: {{ .Tiles.Attribution }},
          maxZoom: {{ .Tiles.MaxZoom }}
      }).addTo(map);

      const overlays = {};
      {{- range .Groups }}

      (function () {
          const group = L.featureGroup([], { id: {{ .ID }} });
          {{ .Markers }}.forEach(function (m) { markerLayer(m).addTo(group); });
          {{- range .Overlays }}
          L.geoJSON({{ . }}, {
              style: function (feature) { return feature.properties[{{ $.StyleKey }}]; }
          }).addTo(group);
          {{- end }}
          {{- if .Show }}
          group.addTo(map);
          {{- end }}
          overlays[{{ .Name }}] = group;
      })();
      {{- end }}
      {{- if .LayerControl }}

      L.control.layers(baseLayers, overlays, { collapsed: true }).addTo(map);
      {{- end }}
   </script>
</body>
</html>
`
