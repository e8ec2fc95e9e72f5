package catalog

import (
	"encoding/json"
	"testing"
)

func TestCodeFallbackOrder(t *testing.T) {
	cases := []struct {
		name   string
		record CountryRecord
		want   string
	}{
		{"iso_code wins", CountryRecord{"iso_code": "GR", "code": "EL", "name": "Greece"}, "GR"},
		{"code next", CountryRecord{"code": "EL", "country_code": "GRC"}, "EL"},
		{"country_code next", CountryRecord{"country_code": "GRC", "iso2": "GR"}, "GRC"},
		{"numeric id coerced", CountryRecord{"id": float64(12)}, "12"},
		{"name as last resort", CountryRecord{"name": "Greece"}, "Greece"},
		{"empty values skipped", CountryRecord{"iso_code": "", "code": "EL"}, "EL"},
		{"nothing resolvable", CountryRecord{"zone": float64(2)}, ""},
	}
	for _, tc := range cases {
		if got := tc.record.Code(); got != tc.want {
			t.Errorf("%s: expected code %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestDisplayNamePrefersLocalized(t *testing.T) {
	r := CountryRecord{"iso_code": "GR", "name": "Greece", "hebrew_name": "יוון"}
	if got := r.DisplayName(); got != "יוון" {
		t.Errorf("expected localized name, got %q", got)
	}

	r = CountryRecord{"iso_code": "GR"}
	if got := r.DisplayName(); got != "GR" {
		t.Errorf("expected code fallback, got %q", got)
	}
}

func TestZoneCoercion(t *testing.T) {
	cases := []struct {
		name   string
		record CountryRecord
		want   int
		ok     bool
	}{
		{"number", CountryRecord{"zone": float64(3)}, 3, true},
		{"numeric string", CountryRecord{"zone": "2"}, 2, true},
		{"zero is unzoned", CountryRecord{"zone": float64(0)}, 0, false},
		{"negative is unzoned", CountryRecord{"zone": float64(-1)}, 0, false},
		{"garbage string", CountryRecord{"zone": "high"}, 0, false},
		{"missing", CountryRecord{"iso_code": "GR"}, 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.record.Zone()
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: expected (%d, %v), got (%d, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestRecordFromJSON(t *testing.T) {
	var r CountryRecord
	raw := `{"iso_code":"GR","zone":2,"hebrew_name":"יוון","flag":"🇬🇷"}`
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}
	if r.Code() != "GR" {
		t.Errorf("expected code GR, got %q", r.Code())
	}
	if zone, ok := r.Zone(); !ok || zone != 2 {
		t.Errorf("expected zone 2, got (%d, %v)", zone, ok)
	}
	if r.Flag() != "🇬🇷" {
		t.Errorf("expected flag, got %q", r.Flag())
	}
}
