package catalog

import "testing"

func testDirectory() *Directory {
	return NewDirectory([]CountryRecord{
		{"iso_code": "FR", "zone": float64(1), "name": "France"},
		{"iso_code": "GR", "zone": float64(2), "name": "Greece"},
		{"iso_code": "BR", "zone": float64(3), "name": "Brazil"},
		{"iso_code": "IT", "zone": float64(4), "name": "Italy"},
		{"iso_code": "XA", "name": "No Zone"},
	})
}

func TestResolveZoneUnknownCodesAbsent(t *testing.T) {
	if zone, ok := ResolveZone([]string{"XX", "YY"}, testDirectory()); ok {
		t.Errorf("expected absent zone for unknown codes, got %d", zone)
	}
	if zone, ok := ResolveZone(nil, testDirectory()); ok {
		t.Errorf("expected absent zone for empty selection, got %d", zone)
	}
}

func TestResolveZoneTakesMaximum(t *testing.T) {
	zone, ok := ResolveZone([]string{"FR", "BR", "GR"}, testDirectory())
	if !ok {
		t.Fatal("expected zone to resolve")
	}
	if zone != 3 {
		t.Errorf("expected max zone 3, got %d", zone)
	}
}

func TestResolveZoneIgnoresUnknownAndUnzoned(t *testing.T) {
	zone, ok := ResolveZone([]string{"XX", "GR", "XA"}, testDirectory())
	if !ok {
		t.Fatal("expected zone to resolve from the one known country")
	}
	if zone != 2 {
		t.Errorf("expected zone 2, got %d", zone)
	}
}

func TestResolveZoneMultiCountry(t *testing.T) {
	zone, ok := ResolveZone([]string{"GR", "IT"}, testDirectory())
	if !ok {
		t.Fatal("expected zone to resolve")
	}
	if zone != 4 {
		t.Errorf("expected zone 4 for GR+IT, got %d", zone)
	}
}

func TestDirectorySelectKeepsRequestOrder(t *testing.T) {
	records := testDirectory().Select([]string{"IT", "XX", "FR"})
	if len(records) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(records))
	}
	if records[0].Code() != "IT" || records[1].Code() != "FR" {
		t.Errorf("expected request order IT,FR; got %s,%s", records[0].Code(), records[1].Code())
	}
}
