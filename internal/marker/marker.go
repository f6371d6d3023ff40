// Package marker renders the per-country map marker: a div icon whose tooltip lists the
// country's confirmed cases, deaths, recoveries and last update time.
package marker

import (
	"bytes"
	"html"
	"text/template"
	"time"

	"github.com/AbdulWasayUl/go-covid-map/internal/geo"
	"github.com/AbdulWasayUl/go-covid-map/internal/logger"
	"github.com/AbdulWasayUl/go-covid-map/models"
)

const iconClassName = "icon"

// Fields pass through the html builtin, which escapes only the HTML-significant characters.
var labelTemplate = template.Must(template.New("label").Parse(`
<span class="icon-marker">
  <span class="icon-marker-tooltip">
    <h2>{{html .Country}}</h2>
    <ul>
      <li><strong>Confirmed:</strong> {{html .Cases}} </li>
      <li><strong>Deaths: </strong>{{html .Deaths}}</li>
      <li><strong>Recovered: </strong>{{html .Recovered}}</li>
      <li><strong>Last Updated: </strong>{{html .Updated}}</li>
    </ul>
  </span>
</span>
`))

type Label = geo.Label

type Renderer struct {
	layout   string
	location *time.Location
}

// NewRenderer formats timestamps for locale in loc. A nil loc means local time.
func NewRenderer(locale string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{
		layout:   DateTimeLayout(locale),
		location: loc,
	}
}

// LabelFor builds the display strings from feature properties. Missing fields never fail.
func (r *Renderer) LabelFor(props map[string]interface{}) Label {
	rec := models.RecordFromProperties(props)
	return Label{
		Country:   formatText(rec.Country),
		Cases:     FormatCases(rec.Cases),
		Deaths:    formatCount(rec.Deaths),
		Recovered: formatCount(rec.Recovered),
		Updated:   FormatUpdated(rec.Updated, r.layout, r.location),
	}
}

// PointToLayer is the geo.PointToLayer factory: one hover-raised div-icon marker per feature.
func (r *Renderer) PointToLayer(f geo.Feature, latlng models.LatLng) geo.Marker {
	label := r.LabelFor(f.Properties)
	return geo.Marker{
		LatLng: latlng,
		Icon: geo.DivIcon{
			ClassName: iconClassName,
			HTML:      r.LabelHTML(label),
		},
		RiseOnHover: true,
		Label:       &label,
	}
}

func (r *Renderer) LabelHTML(l Label) string {
	var buf bytes.Buffer
	if err := labelTemplate.Execute(&buf, l); err != nil {
		logger.Error("Failed to render marker label for %s: %v", l.Country, err)
		return html.EscapeString(l.Country)
	}
	return buf.String()
}
