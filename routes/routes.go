// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"simtlv-server/commons"
	"simtlv-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering routes")

	// Origin catalog API consumed by the storefront endpoints below.
	e.GET("/get-countries", handlers.GetCountriesHandler)
	e.GET("/get-packages", handlers.GetPackagesHandler)

	// Storefront resolution endpoints.
	e.GET("/esim/package", handlers.GetOfferHandler)
	e.GET("/esim/package/schema", handlers.GetProductSchemaHandler)
	e.GET("/esim/checkout", handlers.GetCheckoutSummaryHandler)
	e.POST("/esim/checkout", handlers.CreateOrderHandler)

	// Legacy path form, e.g. /GR/3gb/esim/7.
	e.GET("/:country/:data/esim/:packageId", handlers.GetCheckoutSummaryHandler)

	commons.Logger.Info("Routes registered successfully")
}