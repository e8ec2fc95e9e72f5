package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"simtlv-server/catalog"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// stubCatalogOrigin serves a fixed catalog snapshot and points the handlers
// at it through CATALOG_API_URL.
func stubCatalogOrigin(t *testing.T) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get-countries":
			w.Write([]byte(`{"data":[
				{"id":1,"iso_code":"FR","name":"France","flag":"🇫🇷","zone":1,
					"networks":"[{\"network_name\":\"Orange\"}]"},
				{"id":2,"iso_code":"GR","name":"Greece","hebrew_name":"יוון","flag":"🇬🇷","zone":2,
					"networks":"[{\"network_name\":\"Cosmote\"},{\"network_name\":\"Vodafone GR\"}]"},
				{"id":3,"iso_code":"IT","name":"Italy","flag":"🇮🇹","zone":4}
			]}`))
		case "/get-packages":
			switch r.URL.Query().Get("zone") {
			case "2":
				w.Write([]byte(`{"data":[
					{"id":11,"data":10,"days":30,"plan_name":"eSIM 10 GB","price":"20"},
					{"id":7,"data":3,"days":30,"plan_name":"eSIM 3 GB","price":"9"},
					{"id":3,"data":1,"days":30,"plan_name":"eSIM 1 GB","price":"5"}
				]}`))
			case "4":
				w.Write([]byte(`{"data":[
					{"id":41,"data":3,"days":30,"plan_name":"eSIM 3 GB","price":"15"},
					{"id":42,"data":1,"days":30,"plan_name":"eSIM 1 GB","price":"11"}
				]}`))
			default:
				w.Write([]byte(`{"data":[]}`))
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CATALOG_API_URL", srv.URL)
}

func getOffer(t *testing.T, target string) GetOfferResponse {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := GetOfferHandler(c); err != nil {
		t.Fatalf("Failed to get offer: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp GetOfferResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return resp
}

func TestGetOfferHandlerAutoSelectsPopularPlan(t *testing.T) {
	stubCatalogOrigin(t)

	resp := getOffer(t, "/esim/package?countries=GR&plan=3GB")

	if resp.Zone == nil || *resp.Zone != 2 {
		t.Fatalf("expected zone 2, got %v", resp.Zone)
	}
	if len(resp.Plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(resp.Plans))
	}
	for i := 1; i < len(resp.Plans); i++ {
		if resp.Plans[i].Price.LessThan(resp.Plans[i-1].Price) {
			t.Errorf("plans not sorted ascending at index %d", i)
		}
	}
	if resp.Selected != "7" || !resp.AutoSelected {
		t.Errorf("expected plan 7 auto-selected, got (%q, %v)", resp.Selected, resp.AutoSelected)
	}
	for _, p := range resp.Plans {
		if p.Popular != (p.ID == "7") {
			t.Errorf("expected only plan 7 popular, got %s=%v", p.ID, p.Popular)
		}
	}

	if resp.Offer == nil {
		t.Fatal("expected an assembled offer")
	}
	if resp.Offer.Title != "חבילת eSIM יוון" {
		t.Errorf("unexpected offer title: %q", resp.Offer.Title)
	}
	if resp.Offer.PriceLabel != "9.00" || resp.Offer.Currency != "ILS" {
		t.Errorf("unexpected pricing: %q %q", resp.Offer.PriceLabel, resp.Offer.Currency)
	}
	if resp.Offer.SKU != "GR-3GB" {
		t.Errorf("unexpected sku: %q", resp.Offer.SKU)
	}
	// Zone 2 covers France and Greece.
	if len(resp.Offer.Countries) != 2 {
		t.Errorf("expected 2 covered countries, got %d", len(resp.Offer.Countries))
	}
}

func TestGetOfferHandlerMultiCountryResolvesMaxZone(t *testing.T) {
	stubCatalogOrigin(t)

	resp := getOffer(t, "/esim/package?countries=GR,IT")

	if resp.Zone == nil || *resp.Zone != 4 {
		t.Fatalf("expected zone 4 for GR+IT, got %v", resp.Zone)
	}
	if len(resp.Plans) != 2 {
		t.Fatalf("expected 2 zone-4 plans, got %d", len(resp.Plans))
	}
	// No hint: the configured default amount (5 GB) matches nothing here, so
	// auto-selection falls back to the cheapest plan.
	if resp.Selected != "42" || !resp.AutoSelected {
		t.Errorf("expected cheapest plan 42 selected, got (%q, %v)", resp.Selected, resp.AutoSelected)
	}
	if resp.Offer == nil || resp.Offer.Title != "חבילת Multi-Country" {
		t.Errorf("expected multi-country offer, got %+v", resp.Offer)
	}
}

func TestGetOfferHandlerUnknownCountryDegrades(t *testing.T) {
	stubCatalogOrigin(t)

	resp := getOffer(t, "/esim/package?countries=XX")

	if resp.Zone != nil {
		t.Errorf("expected absent zone, got %d", *resp.Zone)
	}
	if len(resp.Plans) != 0 {
		t.Errorf("expected empty plan list, got %d", len(resp.Plans))
	}
	if resp.Selected != "" || resp.AutoSelected {
		t.Errorf("expected no selection, got (%q, %v)", resp.Selected, resp.AutoSelected)
	}
	if resp.Offer != nil {
		t.Errorf("expected no offer, got %+v", resp.Offer)
	}
}

func TestGetOfferHandlerKeepsExistingSelection(t *testing.T) {
	stubCatalogOrigin(t)

	resp := getOffer(t, "/esim/package?countries=GR&plan=3GB&selected=11&auto_selected=true")

	if resp.Selected != "11" || !resp.AutoSelected {
		t.Errorf("expected selection 11 kept, got (%q, %v)", resp.Selected, resp.AutoSelected)
	}
	if resp.Offer == nil || resp.Offer.DataAmount != 10 {
		t.Errorf("expected the 10 GB offer, got %+v", resp.Offer)
	}
	if resp.Offer.Price.Cmp(decimal.NewFromInt(20)) != 0 {
		t.Errorf("expected price 20, got %v", resp.Offer.Price)
	}
}

func TestGetProductSchemaHandler(t *testing.T) {
	stubCatalogOrigin(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/esim/package/schema?countries=GR&plan=3GB", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := GetProductSchemaHandler(c); err != nil {
		t.Fatalf("Failed to get product schema: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/ld+json" {
		t.Errorf("expected ld+json content type, got %q", ct)
	}

	var doc catalog.ProductDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("Failed to unmarshal document: %v", err)
	}
	if doc.Type != "Product" || doc.SKU != "GR-3GB" {
		t.Errorf("unexpected document: %q %q", doc.Type, doc.SKU)
	}
	if doc.Offers.Price != "9.00" || doc.Offers.PriceCurrency != "ILS" {
		t.Errorf("unexpected offer pricing: %q %q", doc.Offers.Price, doc.Offers.PriceCurrency)
	}
}

func TestGetProductSchemaHandlerNotFound(t *testing.T) {
	stubCatalogOrigin(t)

	cases := []struct {
		name   string
		target string
	}{
		{"missing parameters", "/esim/package/schema"},
		{"unknown country", "/esim/package/schema?countries=XX&plan=3GB"},
		{"hint without amount", "/esim/package/schema?countries=GR&plan=esim"},
		{"no package with amount", "/esim/package/schema?countries=GR&plan=4GB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := GetProductSchemaHandler(c)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected an HTTP error, got %v", err)
			}
			if he.Code != http.StatusNotFound {
				t.Errorf("expected status 404, got %d", he.Code)
			}
		})
	}
}
