// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"simtlv-server/catalog"
	"simtlv-server/commons"
	"simtlv-server/fulfillment"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GetCheckoutSummaryHandler godoc
// @Summary      Get the checkout summary for a resolved package
// @Description  Resolves the package by id through the zone pipeline and returns the priced summary. When the catalog row cannot be resolved the summary degrades to the price/name/duration query fallbacks instead of failing.
// @Tags         storefront
// @Produce      json
// @Param        packageId query string false "Package identifier"
// @Param        countries query string false "Comma-separated country codes"
// @Param        units     query int    false "Number of purchased units (default 1)"
// @Success      200 {object} CheckoutSummaryResponse "Checkout summary retrieved successfully"
// @Failure      500 {object} echo.HTTPError          "Internal server error"
// @Router       /esim/checkout [get]
func GetCheckoutSummaryHandler(c echo.Context) error {
	logger := c.Logger()
	params := parseSelection(c)

	client, err := catalog.NewClient(catalog.ClientConfig{})
	if err != nil {
		logger.Error("Failed to initialize catalog client:", err)
		return echo.ErrInternalServerError
	}

	dir := catalog.NewDirectory(client.FetchCountries())
	pkg, found := resolvePackage(client, dir, params.Countries, params.PackageID)

	name := "eSIM Package"
	dataLabel := params.PlanHint
	duration := params.DurationFallback
	unitPrice := decimal.Zero
	if found {
		name = pkg.PlanName
		dataLabel = pkg.DataLabel()
		duration = pkg.DurationLabel()
		unitPrice = pkg.Price
	} else {
		if params.NameFallback != "" {
			name = params.NameFallback
		}
		if params.PriceFallback != "" {
			if p, err := decimal.NewFromString(params.PriceFallback); err == nil {
				unitPrice = p
			}
		}
	}

	return c.JSON(http.StatusOK, CheckoutSummaryResponse{
		Message:   "Checkout summary retrieved successfully",
		Name:      name,
		Data:      dataLabel,
		Duration:  duration,
		Countries: countrySummaries(params.Countries, dir),
		UnitPrice: unitPrice,
		Units:     params.Units,
		Total:     unitPrice.Mul(decimal.NewFromInt(int64(params.Units))),
		Currency:  commons.Config.Currency,
	})
}

// CreateOrderHandler godoc
// @Summary      Submit a checkout
// @Description  Validates the customer entries, re-resolves the package price server-side, computes the total as unit price times unit count, and returns the percent-encoded checkout redirect. When a broker is configured an order-created event is published for fulfillment.
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Success      201 {object} CreateOrderResponse "Order accepted"
// @Failure      400 {object} echo.HTTPError      "Invalid request"
// @Failure      404 {object} echo.HTTPError      "No offer for this selection"
// @Router       /esim/checkout [post]
func CreateOrderHandler(c echo.Context) error {
	logger := c.Logger()

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid create order request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}

	if req.PackageID == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "package_id field is required",
		}
	}
	codes := splitCountryCodes(req.Countries)
	if len(codes) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "countries field is required",
		}
	}
	if err := validateCustomers(req.Customers); err != nil {
		return err
	}

	client, err := catalog.NewClient(catalog.ClientConfig{})
	if err != nil {
		logger.Error("Failed to initialize catalog client:", err)
		return echo.ErrInternalServerError
	}

	dir := catalog.NewDirectory(client.FetchCountries())
	pkg, found := resolvePackage(client, dir, codes, req.PackageID)
	if !found {
		logger.Warnf("No package %q for countries %v", req.PackageID, codes)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "No offer available for this selection",
		}
	}

	units := len(req.Customers)
	total := pkg.Price.Mul(decimal.NewFromInt(int64(units)))
	orderID := uuid.New().String()
	countriesParam := strings.Join(codes, ",")

	publishOrderCreated(c, fulfillment.OrderEvent{
		OrderID:   orderID,
		PackageID: pkg.ID,
		PlanName:  pkg.PlanName,
		Countries: codes,
		Units:     units,
		Total:     total.StringFixed(2),
		Currency:  commons.Config.Currency,
		Customers: toFulfillmentCustomers(req.Customers),
	})

	logger.Infof("Order %s accepted: package %s x%d", orderID, pkg.ID, units)
	return c.JSON(http.StatusCreated, CreateOrderResponse{
		Message:   "Order accepted",
		OrderID:   orderID,
		Units:     units,
		UnitPrice: pkg.Price,
		Total:     total,
		Currency:  commons.Config.Currency,
		RedirectURL: fmt.Sprintf("/esim/checkout?packageId=%s&countries=%s",
			url.QueryEscape(pkg.ID), url.QueryEscape(countriesParam)),
	})
}

// resolvePackage runs the two ordered fetches: zone from the country
// directory, then the zone-scoped catalog, then the id match. Any failed
// step reports not-found, never an error.
func resolvePackage(client *catalog.Client, dir *catalog.Directory, codes []string, packageID string) (catalog.PackageRecord, bool) {
	zone, ok := catalog.ResolveZone(codes, dir)
	if !ok {
		return catalog.PackageRecord{}, false
	}
	return catalog.MatchByID(client.FetchPackages(zone), packageID)
}

func countrySummaries(codes []string, dir *catalog.Directory) []CountrySummary {
	summaries := make([]CountrySummary, 0, len(codes))
	for _, code := range codes {
		summary := CountrySummary{Code: code, Flag: code, Name: code}
		if r, ok := dir.Find(code); ok {
			if flag := r.Flag(); flag != "" {
				summary.Flag = flag
			}
			if name := r.DisplayName(); name != "" {
				summary.Name = name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func validateCustomers(customers []CustomerEntry) error {
	if len(customers) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "At least one customer entry is required",
		}
	}
	for i, customer := range customers {
		if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Email) == "" {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("Customer %d is missing a name or email", i+1),
			}
		}
		if i == 0 && strings.TrimSpace(customer.Phone) == "" {
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "A phone number is required for the first customer",
			}
		}
	}
	return nil
}

func toFulfillmentCustomers(customers []CustomerEntry) []fulfillment.Customer {
	out := make([]fulfillment.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, fulfillment.Customer{Name: c.Name, Email: c.Email, Phone: c.Phone})
	}
	return out
}

// publishOrderCreated hands the order to the fulfillment broker. Publishing
// is best-effort: the buyer's checkout never fails because the broker is
// down or unconfigured.
func publishOrderCreated(c echo.Context, event fulfillment.OrderEvent) {
	logger := c.Logger()

	if !fulfillment.Enabled() {
		logger.Debug("Fulfillment broker not configured, skipping order event")
		return
	}
	publisher, err := fulfillment.NewPublisher()
	if err != nil {
		logger.Errorf("Failed to connect to fulfillment broker: %v", err)
		return
	}
	defer publisher.Close()

	if err := publisher.PublishOrderCreated(c.Request().Context(), event); err != nil {
		logger.Errorf("Failed to publish order %s: %v", event.OrderID, err)
	}
}