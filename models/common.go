package models

import (
	"encoding/json"
	"math"
)

// LatLng is a geographic coordinate. Unknown components are NaN and encode as null.
type LatLng struct {
	Lat float64
	Lng float64
}

func (ll LatLng) Valid() bool {
	return isFinite(ll.Lat) && isFinite(ll.Lng)
}

func (ll LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}{finiteOrNil(ll.Lat), finiteOrNil(ll.Lng)})
}

// MapSettings is the static display configuration handed to the map host.
type MapSettings struct {
	Center         LatLng `json:"center"`
	Zoom           int    `json:"zoom"`
	DefaultBaseMap string `json:"defaultBaseMap"`
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteOrNil(f float64) *float64 {
	if !isFinite(f) {
		return nil
	}
	return &f
}
