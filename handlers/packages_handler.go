// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"simtlv-server/db"
	"simtlv-server/models"
	"strconv"

	"github.com/labstack/echo/v4"
)

// GetPackagesHandler godoc
// @Summary      Get packages for a zone
// @Description  Retrieves the purchasable data packages available at the given pricing zone, enveloped under "data".
// @Tags         catalog
// @Produce      json
// @Param        zone query int true "Pricing zone tier"
// @Success      200 {object} PackageListResponse "Packages retrieved successfully"
// @Failure      400 {object} echo.HTTPError      "Invalid zone"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /get-packages [get]
func GetPackagesHandler(c echo.Context) error {
	logger := c.Logger()

	zone, err := strconv.Atoi(c.QueryParam("zone"))
	if err != nil || zone < 1 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "zone query parameter must be a positive integer",
		}
	}

	var packages []models.Package
	if err := db.Conn.Where("zone = ?", zone).Order("price").Find(&packages).Error; err != nil {
		logger.Error("Failed to retrieve packages:", err)
		return &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve packages",
		}
	}

	payload := make([]PackagePayload, 0, len(packages))
	for _, pkg := range packages {
		payload = append(payload, PackagePayload{
			ID:       pkg.ID,
			Data:     pkg.Data,
			Days:     pkg.Days,
			PlanName: pkg.PlanName,
			Price:    pkg.Price,
		})
	}

	return c.JSON(http.StatusOK, PackageListResponse{Data: payload})
}