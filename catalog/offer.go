// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// CountryNetwork is one (country, flag, networks) row of an offer's coverage
// list.
type CountryNetwork struct {
	Country string `json:"country"`
	Flag    string `json:"flag"`
	Network string `json:"network"`
}

// OfferView is the assembled, display-ready offer. It is derived data:
// recomputed whenever its inputs change, never mutated in place. Both the
// interactive and the server-rendered path consume this exact structure, so
// identical inputs must always produce identical views.
type OfferView struct {
	Title         string           `json:"title"`
	Price         decimal.Decimal  `json:"price"`
	PriceLabel    string           `json:"price_label"`
	Currency      string           `json:"currency"`
	DataAmount    float64          `json:"data_amount"`
	DataLabel     string           `json:"data_label"`
	Days          int              `json:"days"`
	DurationLabel string           `json:"duration_label"`
	Countries     []CountryNetwork `json:"countries"`
	SKU           string           `json:"sku"`
}

// CoveredCountries lists every directory record usable at the resolved zone,
// i.e. all countries with a tier at or below it. The bundle roams across all
// of them, not only the ones the buyer picked.
func CoveredCountries(dir *Directory, zone int) []CountryRecord {
	var covered []CountryRecord
	for _, r := range dir.Records() {
		if z, ok := r.Zone(); ok && z <= zone {
			covered = append(covered, r)
		}
	}
	return covered
}

// AssembleOffer composes the final offer view. It is a pure function of its
// inputs; no hidden state and no fetching.
func AssembleOffer(countryCodes []string, dir *Directory, pkg PackageRecord, currency string, coverage []CountryRecord) OfferView {
	selected := dir.Select(countryCodes)

	title := "חבילת Multi-Country"
	if len(selected) == 1 {
		title = fmt.Sprintf("חבילת eSIM %s", selected[0].DisplayName())
	}

	countries := make([]CountryNetwork, 0, len(coverage))
	for _, r := range coverage {
		countries = append(countries, CountryNetwork{
			Country: r.DisplayName(),
			Flag:    r.Flag(),
			Network: NetworkLabel(r),
		})
	}

	return OfferView{
		Title:         title,
		Price:         pkg.Price,
		PriceLabel:    pkg.Price.StringFixed(2),
		Currency:      currency,
		DataAmount:    pkg.Data,
		DataLabel:     pkg.DataLabel(),
		Days:          pkg.Days,
		DurationLabel: pkg.DurationLabel(),
		Countries:     countries,
		SKU:           fmt.Sprintf("%s-%sGB", strings.Join(countryCodes, ","), FormatAmount(pkg.Data)),
	}
}

type ProductSeller struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ProductOffer struct {
	Type          string        `json:"@type"`
	URL           string        `json:"url"`
	Price         string        `json:"price"`
	PriceCurrency string        `json:"priceCurrency"`
	Availability  string        `json:"availability"`
	ItemCondition string        `json:"itemCondition"`
	Seller        ProductSeller `json:"seller"`
}

// ProductDocument is the schema.org Product/Offer JSON-LD body emitted for
// search-engine consumption.
type ProductDocument struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	SKU         string       `json:"sku"`
	Image       string       `json:"image"`
	Description string       `json:"description"`
	Offers      ProductOffer `json:"offers"`
}

// BuildProductDocument derives the structured product data from an assembled
// offer. countriesParam and planParam are echoed into the canonical offer URL
// exactly as received.
func BuildProductDocument(view OfferView, countriesParam, planParam, siteURL, imageURL string) ProductDocument {
	offerURL := fmt.Sprintf("%s/esim/package?countries=%s&plan=%s",
		siteURL, url.QueryEscape(countriesParam), url.QueryEscape(planParam))

	return ProductDocument{
		Context:     "https://schema.org/",
		Type:        "Product",
		Name:        fmt.Sprintf("%s - %sGB", view.Title, FormatAmount(view.DataAmount)),
		SKU:         view.SKU,
		Image:       imageURL,
		Description: fmt.Sprintf("%sGB data for %d days", FormatAmount(view.DataAmount), view.Days),
		Offers: ProductOffer{
			Type:          "Offer",
			URL:           offerURL,
			Price:         view.PriceLabel,
			PriceCurrency: view.Currency,
			Availability:  "https://schema.org/InStock",
			ItemCondition: "https://schema.org/NewCondition",
			Seller:        ProductSeller{Type: "Organization", Name: "SimTLV"},
		},
	}
}