// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// selectionParams carries the buyer's selection as read from the request.
// Query parameters take precedence over the legacy path form
// /:country/:data/esim/:packageId. The auto-selection one-shot state travels
// with the request (selected + auto_selected) so the pipeline itself stays
// stateless across calls.
type selectionParams struct {
	Countries    []string
	CountriesRaw string
	PlanHint     string
	PackageID    string
	Selected     string
	AutoSelected bool
	Units        int

	// Display fallbacks used by the checkout summary when the catalog row
	// cannot be resolved.
	PriceFallback    string
	NameFallback     string
	DurationFallback string
}

func parseSelection(c echo.Context) selectionParams {
	countriesRaw := c.QueryParam("countries")
	if countriesRaw == "" {
		countriesRaw = pathSegment(c, "country")
	}

	planHint := c.QueryParam("plan")
	if planHint == "" {
		planHint = pathSegment(c, "data")
	}

	packageID := c.QueryParam("packageId")
	if packageID == "" {
		packageID = pathSegment(c, "packageId")
	}

	units := 1
	if v, err := strconv.Atoi(c.QueryParam("units")); err == nil && v > 1 {
		units = v
	}

	return selectionParams{
		Countries:        splitCountryCodes(countriesRaw),
		CountriesRaw:     countriesRaw,
		PlanHint:         planHint,
		PackageID:        packageID,
		Selected:         c.QueryParam("selected"),
		AutoSelected:     c.QueryParam("auto_selected") == "true",
		Units:            units,
		PriceFallback:    c.QueryParam("price"),
		NameFallback:     c.QueryParam("name"),
		DurationFallback: c.QueryParam("duration"),
	}
}

func pathSegment(c echo.Context, name string) string {
	v := c.Param(name)
	if decoded, err := url.QueryUnescape(v); err == nil {
		return decoded
	}
	return v
}

func splitCountryCodes(raw string) []string {
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}