// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"net/http"
	"simtlv-server/catalog"
	"simtlv-server/commons"

	"github.com/labstack/echo/v4"
)

// GetOfferHandler godoc
// @Summary      Get the offer for a country selection
// @Description  Resolves the pricing zone for the selected countries, loads the matching plan list sorted by price with the popular entry flagged, applies the one-shot auto-selection, and assembles the offer for the selected plan. An unknown selection yields an empty plan list, not an error.
// @Tags         storefront
// @Produce      json
// @Param        countries     query string true  "Comma-separated country codes"
// @Param        plan          query string false "Free-text plan hint carrying the target data amount"
// @Param        selected      query string false "Currently selected package id"
// @Param        auto_selected query bool   false "Whether auto-selection already fired this session"
// @Success      200 {object} GetOfferResponse "Offer retrieved successfully"
// @Failure      500 {object} echo.HTTPError   "Internal server error"
// @Router       /esim/package [get]
func GetOfferHandler(c echo.Context) error {
	logger := c.Logger()
	params := parseSelection(c)

	client, err := catalog.NewClient(catalog.ClientConfig{})
	if err != nil {
		logger.Error("Failed to initialize catalog client:", err)
		return echo.ErrInternalServerError
	}

	dir := catalog.NewDirectory(client.FetchCountries())
	hintAmount, hasHint := catalog.ParsePlanHint(params.PlanHint)

	var packages []catalog.PackageRecord
	zone, zoneResolved := catalog.ResolveZone(params.Countries, dir)
	if zoneResolved {
		packages = client.FetchPackages(zone)
	} else {
		logger.Warnf("No pricing zone resolved for countries %v", params.Countries)
	}

	popularAmount := hintAmount
	if !hasHint {
		popularAmount = commons.Config.DefaultPopularGB
	}
	plans := catalog.BuildPlanList(packages, popularAmount)
	selected, autoSelected := catalog.AutoSelect(plans, params.Selected, params.AutoSelected)

	resp := GetOfferResponse{
		Message:      "Offer retrieved successfully",
		Plans:        toPlanDetails(plans),
		Selected:     selected,
		AutoSelected: autoSelected,
	}
	if zoneResolved {
		resp.Zone = &zone
	}
	if pkg, found := catalog.MatchByID(packages, selected); found {
		view := catalog.AssembleOffer(params.Countries, dir, pkg, commons.Config.Currency,
			catalog.CoveredCountries(dir, zone))
		resp.Offer = &view
	}

	return c.JSON(http.StatusOK, resp)
}

// GetProductSchemaHandler godoc
// @Summary      Get server-rendered product data
// @Description  Runs the full resolution pipeline once and emits the schema.org Product/Offer JSON-LD document for the selection. Any unresolvable step yields 404 rather than a partially-filled document.
// @Tags         storefront
// @Produce      json
// @Param        countries query string true "Comma-separated country codes"
// @Param        plan      query string true "Plan hint carrying the target data amount"
// @Success      200 {object} catalog.ProductDocument "Product document"
// @Failure      404 {object} echo.HTTPError          "No offer for this selection"
// @Router       /esim/package/schema [get]
func GetProductSchemaHandler(c echo.Context) error {
	logger := c.Logger()
	params := parseSelection(c)

	if len(params.Countries) == 0 || params.PlanHint == "" {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "countries and plan parameters are required",
		}
	}

	client, err := catalog.NewClient(catalog.ClientConfig{})
	if err != nil {
		logger.Error("Failed to initialize catalog client:", err)
		return echo.ErrInternalServerError
	}

	dir := catalog.NewDirectory(client.FetchCountries())
	zone, zoneResolved := catalog.ResolveZone(params.Countries, dir)
	if !zoneResolved {
		logger.Warnf("No pricing zone resolved for countries %v", params.Countries)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "No offer available for this selection",
		}
	}

	amount, ok := catalog.ParsePlanHint(params.PlanHint)
	if !ok {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "No offer available for this selection",
		}
	}

	pkg, found := catalog.MatchByAmount(client.FetchPackages(zone), amount)
	if !found {
		logger.Warnf("No package with %v GB at zone %d", amount, zone)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "No offer available for this selection",
		}
	}

	view := catalog.AssembleOffer(params.Countries, dir, pkg, commons.Config.Currency,
		catalog.CoveredCountries(dir, zone))
	doc := catalog.BuildProductDocument(view, params.CountriesRaw, params.PlanHint,
		commons.Config.SiteURL, commons.Config.ImageURL)

	body, err := json.Marshal(doc)
	if err != nil {
		logger.Error("Failed to marshal product document:", err)
		return echo.ErrInternalServerError
	}
	return c.Blob(http.StatusOK, "application/ld+json", body)
}

func toPlanDetails(plans []catalog.PlanOption) []PlanDetails {
	details := make([]PlanDetails, 0, len(plans))
	for _, p := range plans {
		details = append(details, PlanDetails{
			ID:         p.ID,
			DataAmount: p.DataAmount,
			Data:       p.DataLabel,
			PlanName:   p.PlanName,
			Duration:   p.DurationLabel,
			Price:      p.Price,
			Popular:    p.Popular,
		})
	}
	return details
}