package geo

import (
	"github.com/AbdulWasayUl/go-covid-map/models"
	"github.com/samber/lo"
)

// ToFeatureCollection emits one Point feature per record, in input order. It never fails;
// records without a usable location produce a feature with unknown coordinates.
func ToFeatureCollection(records []models.CountryRecord) FeatureCollection {
	return FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: lo.Map(records, func(r models.CountryRecord, _ int) Feature { return ToFeature(r) }),
	}
}

func ToFeature(r models.CountryRecord) Feature {
	return Feature{
		Type:       TypeFeature,
		Properties: r.Properties(),
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: [2]*float64{r.CountryInfo.Long, r.CountryInfo.Lat},
		},
	}
}
