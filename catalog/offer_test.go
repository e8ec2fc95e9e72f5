package catalog

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func offerInputs() ([]string, *Directory, PackageRecord) {
	dir := NewDirectory([]CountryRecord{
		{"iso_code": "FR", "zone": float64(1), "name": "France", "flag": "🇫🇷",
			"networks": `[{"network_name":"Orange"}]`},
		{"iso_code": "GR", "zone": float64(2), "name": "Greece", "hebrew_name": "יוון", "flag": "🇬🇷",
			"networks": `[{"network_name":"Cosmote"},{"network_name":"Vodafone GR"}]`},
		{"iso_code": "IT", "zone": float64(4), "name": "Italy", "flag": "🇮🇹"},
	})
	pkg := PackageRecord{ID: "7", Data: 3, Days: 30, PlanName: "eSIM 3 GB", Price: decimal.NewFromInt(9)}
	return []string{"GR"}, dir, pkg
}

func TestAssembleOfferSingleCountry(t *testing.T) {
	codes, dir, pkg := offerInputs()
	view := AssembleOffer(codes, dir, pkg, "ILS", CoveredCountries(dir, 2))

	if view.Title != "חבילת eSIM יוון" {
		t.Errorf("expected country-specific title, got %q", view.Title)
	}
	if view.SKU != "GR-3GB" {
		t.Errorf("expected SKU GR-3GB, got %q", view.SKU)
	}
	if view.PriceLabel != "9.00" {
		t.Errorf("expected fixed two-decimal price, got %q", view.PriceLabel)
	}
	if view.Currency != "ILS" {
		t.Errorf("expected currency passed through, got %q", view.Currency)
	}
	if view.DataLabel != "3 GB" || view.DurationLabel != "30 Days" {
		t.Errorf("unexpected labels: %q, %q", view.DataLabel, view.DurationLabel)
	}
	// Zone 2 covers France (zone 1) and Greece, not Italy.
	if len(view.Countries) != 2 {
		t.Fatalf("expected 2 covered countries, got %d", len(view.Countries))
	}
	if view.Countries[1].Network != "Cosmote / Vodafone GR" {
		t.Errorf("expected normalized network label, got %q", view.Countries[1].Network)
	}
}

func TestAssembleOfferMultiCountryTitle(t *testing.T) {
	_, dir, pkg := offerInputs()
	view := AssembleOffer([]string{"GR", "IT"}, dir, pkg, "ILS", CoveredCountries(dir, 4))
	if view.Title != "חבילת Multi-Country" {
		t.Errorf("expected generic multi-country title, got %q", view.Title)
	}
	if view.SKU != "GR,IT-3GB" {
		t.Errorf("expected composite SKU, got %q", view.SKU)
	}
}

func TestAssembleOfferIsPure(t *testing.T) {
	codes, dir, pkg := offerInputs()
	coverage := CoveredCountries(dir, 2)

	// The interactive and the server-rendered path call with identical
	// inputs; the views must be structurally identical.
	first := AssembleOffer(codes, dir, pkg, "ILS", coverage)
	second := AssembleOffer(codes, dir, pkg, "ILS", coverage)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical views for identical inputs:\n%+v\n%+v", first, second)
	}
}

func TestBuildProductDocument(t *testing.T) {
	codes, dir, pkg := offerInputs()
	view := AssembleOffer(codes, dir, pkg, "ILS", CoveredCountries(dir, 2))
	doc := BuildProductDocument(view, "GR", "3GB", "https://app.simtlv.co.il", "https://app.simtlv.co.il/images/esim-default.jpg")

	if doc.Context != "https://schema.org/" || doc.Type != "Product" {
		t.Errorf("unexpected document envelope: %q %q", doc.Context, doc.Type)
	}
	if doc.Name != "חבילת eSIM יוון - 3GB" {
		t.Errorf("unexpected product name: %q", doc.Name)
	}
	if doc.SKU != "GR-3GB" {
		t.Errorf("unexpected sku: %q", doc.SKU)
	}
	if doc.Description != "3GB data for 30 days" {
		t.Errorf("unexpected description: %q", doc.Description)
	}
	if doc.Offers.Price != "9.00" || doc.Offers.PriceCurrency != "ILS" {
		t.Errorf("unexpected offer pricing: %q %q", doc.Offers.Price, doc.Offers.PriceCurrency)
	}
	if doc.Offers.Availability != "https://schema.org/InStock" {
		t.Errorf("unexpected availability: %q", doc.Offers.Availability)
	}
	if doc.Offers.URL != "https://app.simtlv.co.il/esim/package?countries=GR&plan=3GB" {
		t.Errorf("unexpected offer url: %q", doc.Offers.URL)
	}
}
