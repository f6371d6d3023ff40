package geo

import (
	"github.com/AbdulWasayUl/go-covid-map/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DivIcon is a marker icon made of raw HTML.
type DivIcon struct {
	ClassName string `json:"className"`
	HTML      string `json:"html"`
}

// Label holds the display strings a marker's icon was rendered from.
type Label struct {
	Country   string `json:"country"`
	Cases     string `json:"cases"`
	Deaths    string `json:"deaths"`
	Recovered string `json:"recovered"`
	Updated   string `json:"updated"`
}

// Marker is a single overlay element positioned at a coordinate.
type Marker struct {
	LatLng      models.LatLng `json:"latlng"`
	Icon        DivIcon       `json:"icon"`
	RiseOnHover bool          `json:"riseOnHover"`
	Label       *Label        `json:"label,omitempty"`
}

// PointToLayer creates the marker for one point feature.
type PointToLayer func(f Feature, latlng models.LatLng) Marker

// Layer is a group of markers built from one feature collection.
type Layer struct {
	ID      string   `json:"id"`
	Size    int      `json:"size"` // features in the source collection
	Markers []Marker `json:"markers"`
}

// NewLayer calls pointToLayer once per feature, in order. No feature is skipped,
// including those with unknown coordinates.
func NewLayer(fc FeatureCollection, pointToLayer PointToLayer) *Layer {
	return &Layer{
		ID:   uuid.NewString(),
		Size: len(fc.Features),
		Markers: lo.Map(fc.Features, func(f Feature, _ int) Marker {
			return pointToLayer(f, f.Geometry.LatLng())
		}),
	}
}
