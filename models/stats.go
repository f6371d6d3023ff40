package models

import (
	"encoding/json"

	"github.com/fatih/structs"
)

// CountryInfo is the nested location block of a country record.
type CountryInfo struct {
	Lat  *float64 `structs:"lat,omitempty"`
	Long *float64 `structs:"long,omitempty"`
}

// CountryRecord is one entry of the /v2/countries response. Every field is optional;
// nil means the source object did not carry a usable value.
type CountryRecord struct {
	Country     *string     `structs:"country,omitempty"`
	CountryInfo CountryInfo `structs:"countryInfo,omitempty"`
	Cases       *float64    `structs:"cases,omitempty"`
	Deaths      *float64    `structs:"deaths,omitempty"`
	Recovered   *float64    `structs:"recovered,omitempty"`
	Updated     *float64    `structs:"updated,omitempty"`

	// Source holds the verbatim object the record was decoded from.
	Source map[string]interface{} `structs:"-"`
}

// RecordFromProperties normalizes a loosely shaped object into a CountryRecord.
// Fields of an unexpected type are treated as absent; a nil map gives the empty record.
func RecordFromProperties(props map[string]interface{}) CountryRecord {
	r := CountryRecord{Source: props}
	if props == nil {
		return r
	}

	r.Country = stringValue(props["country"])
	r.Cases = numberValue(props["cases"])
	r.Deaths = numberValue(props["deaths"])
	r.Recovered = numberValue(props["recovered"])
	r.Updated = numberValue(props["updated"])

	if info, ok := props["countryInfo"].(map[string]interface{}); ok {
		r.CountryInfo.Lat = numberValue(info["lat"])
		r.CountryInfo.Long = numberValue(info["long"])
	}

	return r
}

// RecordFromValue normalizes one decoded JSON array element. Anything that is not an
// object becomes the empty record with no properties.
func RecordFromValue(v interface{}) CountryRecord {
	props, ok := v.(map[string]interface{})
	if !ok {
		props = map[string]interface{}{}
	}
	return RecordFromProperties(props)
}

// Properties returns a shallow copy of every top-level field of the record. Records built
// in code without a source object are spread from their typed fields.
func (r CountryRecord) Properties() map[string]interface{} {
	if r.Source == nil {
		return structs.Map(r)
	}
	out := make(map[string]interface{}, len(r.Source))
	for k, v := range r.Source {
		out[k] = v
	}
	return out
}

func stringValue(v interface{}) *string {
	switch s := v.(type) {
	case string:
		return &s
	case *string:
		return s
	}
	return nil
}

func numberValue(v interface{}) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case *float64:
		return n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}
