package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromProperties(t *testing.T) {
	var props map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"country": "Italy",
		"countryInfo": {"_id": 380, "iso2": "IT", "lat": 42.8333, "long": 12.8333},
		"cases": 12345,
		"deaths": 10,
		"recovered": 7,
		"updated": 1584800000000,
		"continent": "Europe"
	}`), &props))

	r := RecordFromProperties(props)

	require.NotNil(t, r.Country)
	assert.Equal(t, "Italy", *r.Country)
	assert.Equal(t, 42.8333, *r.CountryInfo.Lat)
	assert.Equal(t, 12.8333, *r.CountryInfo.Long)
	assert.Equal(t, 12345.0, *r.Cases)
	assert.Equal(t, 10.0, *r.Deaths)
	assert.Equal(t, 7.0, *r.Recovered)
	assert.Equal(t, 1584800000000.0, *r.Updated)
	assert.Equal(t, "Europe", r.Properties()["continent"])
}

func TestRecordFromProperties_Partial(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]interface{}
	}{
		{"nil map", nil},
		{"empty map", map[string]interface{}{}},
		{"wrong types", map[string]interface{}{"country": 5, "cases": "many", "countryInfo": "here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RecordFromProperties(tt.props)

			assert.Nil(t, r.Country)
			assert.Nil(t, r.Cases)
			assert.Nil(t, r.Updated)
			assert.Nil(t, r.CountryInfo.Lat)
			assert.Nil(t, r.CountryInfo.Long)
		})
	}
}

func TestRecordFromValue_NonObject(t *testing.T) {
	for _, v := range []interface{}{nil, 42.0, "Italy", []interface{}{1.0}} {
		r := RecordFromValue(v)
		assert.Nil(t, r.Country)
		assert.NotNil(t, r.Source)
		assert.Empty(t, r.Properties())
	}
}

func TestProperties_CopiesSource(t *testing.T) {
	src := map[string]interface{}{"country": "Chile"}
	r := RecordFromProperties(src)

	props := r.Properties()
	props["country"] = "changed"

	assert.Equal(t, "Chile", src["country"])
}

func TestProperties_FromTypedFields(t *testing.T) {
	name := "Peru"
	cases := 500.0
	lat := -10.0
	r := CountryRecord{Country: &name, Cases: &cases, CountryInfo: CountryInfo{Lat: &lat}}

	props := r.Properties()

	assert.Equal(t, &name, props["country"])
	assert.Equal(t, &cases, props["cases"])
	assert.NotContains(t, props, "deaths")
	assert.NotContains(t, props, "Source")

	// spreading and normalizing again gives back the same values
	again := RecordFromProperties(props)
	assert.Equal(t, "Peru", *again.Country)
	assert.Equal(t, 500.0, *again.Cases)
}

func TestLatLng_JSON(t *testing.T) {
	b, err := json.Marshal(LatLng{Lat: 1.5, Lng: -2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":1.5,"lng":-2}`, string(b))

	b, err = json.Marshal(LatLng{Lat: math.NaN(), Lng: math.NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":null,"lng":null}`, string(b))

	assert.True(t, LatLng{Lat: 0, Lng: 0}.Valid())
	assert.False(t, LatLng{Lat: math.NaN(), Lng: 0}.Valid())
}
