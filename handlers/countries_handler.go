// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"simtlv-server/db"
	"simtlv-server/models"

	"github.com/labstack/echo/v4"
)

// GetCountriesHandler godoc
// @Summary      Get catalog countries
// @Description  Retrieves every destination in the catalog with its pricing zone and raw carrier list, enveloped under "data".
// @Tags         catalog
// @Produce      json
// @Success      200 {object} CountryListResponse "Countries retrieved successfully"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /get-countries [get]
func GetCountriesHandler(c echo.Context) error {
	logger := c.Logger()

	var countries []models.Country
	if err := db.Conn.Order("iso_code").Find(&countries).Error; err != nil {
		logger.Error("Failed to retrieve countries:", err)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve countries",
		}
	}

	payload := make([]CountryPayload, 0, len(countries))
	for _, country := range countries {
		payload = append(payload, CountryPayload{
			ID:         country.ID,
			ISOCode:    country.ISOCode,
			Name:       country.Name,
			HebrewName: country.HebrewName,
			Flag:       country.Flag,
			Zone:       country.Zone,
			Networks:   country.Networks,
		})
	}

	return c.JSON(http.StatusOK, CountryListResponse{Data: payload})
}