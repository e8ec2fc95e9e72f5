// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"encoding/json"
	"strconv"
)

// CountryRecord is one raw country row as delivered by the catalog origin.
// Upstream rows are untyped and the field names drift between deployments, so
// the record keeps the decoded JSON object as-is and resolves fields through
// ordered fallback lists instead of a fixed struct.
type CountryRecord map[string]any

// codeFields is the resolution order for the country-code lookup. The first
// field present with a non-empty value wins; the display name closes the list
// so a row without any coded field still resolves.
var codeFields = []string{"iso_code", "code", "country_code", "iso2", "iso3", "id", "name"}

var nameFields = []string{"hebrew_name", "name", "country_name"}

// firstField returns the first non-empty value among the given keys.
func firstField(r CountryRecord, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && stringValue(v) != "" {
			return v, true
		}
	}
	return nil, false
}

// stringValue coerces a raw JSON scalar to its display string. Numbers keep
// their shortest decimal form, so an id of 12 compares equal to "12".
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// floatValue coerces a raw JSON scalar to a float.
func floatValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Code resolves the record's country code through the fallback field list.
func (r CountryRecord) Code() string {
	if v, ok := firstField(r, codeFields...); ok {
		return stringValue(v)
	}
	return ""
}

// DisplayName prefers the localized name over the plain one, falling back to
// the resolved code when the row carries no name at all.
func (r CountryRecord) DisplayName() string {
	if v, ok := firstField(r, nameFields...); ok {
		return stringValue(v)
	}
	return r.Code()
}

func (r CountryRecord) Flag() string {
	if v, ok := r["flag"]; ok {
		return stringValue(v)
	}
	return ""
}

// Zone returns the record's pricing tier. Tiers are integers >= 1; anything
// else counts as unzoned and excludes the record from zone resolution.
func (r CountryRecord) Zone() (int, bool) {
	v, ok := r["zone"]
	if !ok {
		return 0, false
	}
	f, ok := floatValue(v)
	if !ok || f <= 0 {
		return 0, false
	}
	return int(f), true
}