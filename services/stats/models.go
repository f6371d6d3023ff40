package stats

import "github.com/AbdulWasayUl/go-covid-map/models"

// CountriesResponse is the raw /v2/countries payload: one loosely typed object per country.
type CountriesResponse []interface{}

func (r CountriesResponse) Records() []models.CountryRecord {
	records := make([]models.CountryRecord, len(r))
	for i, v := range r {
		records[i] = models.RecordFromValue(v)
	}
	return records
}
