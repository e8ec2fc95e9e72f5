// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"simtlv-server/catalog"

	"github.com/shopspring/decimal"
)

// swagger:model CountryPayload
type CountryPayload struct {
	// Catalog row id
	ID uint `json:"id" example:"3"`
	// ISO 3166-1 alpha-2 country code
	ISOCode string `json:"iso_code" example:"GR"`
	// English display name
	Name string `json:"name" example:"Greece"`
	// Localized display name
	HebrewName string `json:"hebrew_name,omitempty" example:"יוון"`
	// Flag glyph
	Flag string `json:"flag,omitempty" example:"🇬🇷"`
	// Pricing zone tier (>= 1)
	Zone uint `json:"zone" example:"2"`
	// Raw carrier list, served exactly as stored
	Networks string `json:"networks,omitempty" example:"[{\"network_name\":\"Cosmote\"}]"`
}

// swagger:model CountryListResponse
type CountryListResponse struct {
	// List of catalog countries
	Data []CountryPayload `json:"data"`
}

// swagger:model PackagePayload
type PackagePayload struct {
	// Catalog row id
	ID uint `json:"id" example:"7"`
	// Data allowance in GB
	Data float64 `json:"data" example:"3"`
	// Validity in days
	Days uint `json:"days" example:"30"`
	// Display name
	PlanName string `json:"plan_name" example:"eSIM 3 GB Zone 2"`
	// Unit price
	Price decimal.Decimal `json:"price" example:"9.00"`
}

// swagger:model PackageListResponse
type PackageListResponse struct {
	// List of packages for the requested zone
	Data []PackagePayload `json:"data"`
}

// swagger:model PlanDetails
type PlanDetails struct {
	// Package identifier
	ID string `json:"id" example:"7"`
	// Data allowance in GB
	DataAmount float64 `json:"data_amount" example:"3"`
	// Display label for the allowance
	Data string `json:"data" example:"3 GB"`
	// Display name
	PlanName string `json:"plan_name" example:"eSIM 3 GB Zone 2"`
	// Display label for the validity
	Duration string `json:"duration" example:"30 Days"`
	// Unit price
	Price decimal.Decimal `json:"price" example:"9.00"`
	// Whether this entry is the recommended default
	Popular bool `json:"popular" example:"true"`
}

// swagger:model GetOfferResponse
type GetOfferResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message" example:"Offer retrieved successfully"`
	// Resolved pricing zone; absent when no selected country is known
	Zone *int `json:"zone,omitempty" example:"2"`
	// Assembled offer for the selected plan; absent when nothing matches
	Offer *catalog.OfferView `json:"offer,omitempty"`
	// Browsable plan list, ascending by price
	Plans []PlanDetails `json:"plans"`
	// Currently selected package id after auto-selection
	Selected string `json:"selected,omitempty" example:"7"`
	// Whether the one-shot auto-selection has fired for this session
	AutoSelected bool `json:"auto_selected" example:"true"`
}

// swagger:model CountrySummary
type CountrySummary struct {
	// Requested country code
	Code string `json:"code" example:"GR"`
	// Flag glyph, falling back to the code
	Flag string `json:"flag" example:"🇬🇷"`
	// Display name, falling back to the code
	Name string `json:"name" example:"יוון"`
}

// swagger:model CheckoutSummaryResponse
type CheckoutSummaryResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message" example:"Checkout summary retrieved successfully"`
	// Package display name
	Name string `json:"name" example:"eSIM 3 GB Zone 2"`
	// Display label for the allowance
	Data string `json:"data" example:"3 GB"`
	// Display label for the validity
	Duration string `json:"duration" example:"30 Days"`
	// Selected countries
	Countries []CountrySummary `json:"countries"`
	// Price of a single unit
	UnitPrice decimal.Decimal `json:"unit_price" example:"9.00"`
	// Number of purchased units
	Units int `json:"units" example:"1"`
	// UnitPrice multiplied by Units
	Total decimal.Decimal `json:"total" example:"9.00"`
	// Currency code, passed through unconverted
	Currency string `json:"currency" example:"ILS"`
}

// swagger:model CustomerEntry
type CustomerEntry struct {
	// Recipient full name
	Name string `json:"name" example:"ישראל ישראלי"`
	// Email the QR code is sent to
	Email string `json:"email" example:"user@example.com"`
	// Contact phone; required on the first entry only
	Phone string `json:"phone,omitempty" example:"050-1234567"`
}

// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Identifier of the resolved package
	PackageID string `json:"package_id" example:"7"`
	// Comma-separated selected country codes
	Countries string `json:"countries" example:"GR,IT"`
	// One entry per purchased unit
	Customers []CustomerEntry `json:"customers"`
}

// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message" example:"Order accepted"`
	// Generated order identifier
	OrderID string `json:"order_id" example:"8f14e45f-ea2b-4f3a-9d7c-0a1b2c3d4e5f"`
	// Number of purchased units
	Units int `json:"units" example:"2"`
	// Price of a single unit
	UnitPrice decimal.Decimal `json:"unit_price" example:"9.00"`
	// UnitPrice multiplied by Units
	Total decimal.Decimal `json:"total" example:"18.00"`
	// Currency code
	Currency string `json:"currency" example:"ILS"`
	// Percent-encoded checkout redirect target
	RedirectURL string `json:"redirect_url" example:"/esim/checkout?packageId=7&countries=GR%2CIT"`
}