// Package geo builds GeoJSON point features from country records and turns a feature
// collection into a map layer through a per-feature marker factory.
package geo

import (
	"math"

	"github.com/AbdulWasayUl/go-covid-map/models"
)

const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
	TypePoint             = "Point"
)

// FeatureCollection represents a collection of geographic features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single point feature with the source record spread into its properties.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry is a Point. Coordinates are [longitude, latitude]; nil entries are unknown.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [2]*float64 `json:"coordinates"`
}

// LatLng converts the coordinates, mapping unknown entries to NaN.
func (g Geometry) LatLng() models.LatLng {
	return models.LatLng{
		Lat: valueOrNaN(g.Coordinates[1]),
		Lng: valueOrNaN(g.Coordinates[0]),
	}
}

func valueOrNaN(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}
