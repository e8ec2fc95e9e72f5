// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"
	"simtlv-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_seed_catalog",
			Migrate: func(tx *gorm.DB) error {
				var count int64
				if err := tx.Model(&models.Country{}).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to count countries: %w", err)
				}
				if count > 0 {
					return nil
				}

				countries := []models.Country{
					{ISOCode: "FR", Name: "France", HebrewName: "צרפת", Flag: "🇫🇷", Zone: 1,
						Networks: `[{"network_name":"Orange"},{"network_name":"SFR"}]`},
					{ISOCode: "ES", Name: "Spain", HebrewName: "ספרד", Flag: "🇪🇸", Zone: 1,
						Networks: `[{"network_name":"Movistar"}]`},
					{ISOCode: "GR", Name: "Greece", HebrewName: "יוון", Flag: "🇬🇷", Zone: 2,
						Networks: `[{"network_name":"Cosmote"},{"network_name":"Vodafone GR"}]`},
					{ISOCode: "US", Name: "United States", HebrewName: "ארצות הברית", Flag: "🇺🇸", Zone: 3,
						Networks: `[{"network_name":"T-Mobile"},{"network_name":"AT&T"}]`},
					{ISOCode: "IT", Name: "Italy", HebrewName: "איטליה", Flag: "🇮🇹", Zone: 4,
						Networks: `[{"network_name":"TIM"},{"network_name":"Vodafone IT"}]`},
					{ISOCode: "TH", Name: "Thailand", HebrewName: "תאילנד", Flag: "🇹🇭", Zone: 4,
						Networks: `network_name: 'AIS'`},
				}
				for _, country := range countries {
					if err := tx.Create(&country).Error; err != nil {
						return fmt.Errorf("failed to create country %s: %w", country.ISOCode, err)
					}
				}

				packages := []models.Package{}
				amounts := []float64{1, 3, 5, 10}
				basePrices := []int64{5, 9, 12, 20}
				for zone := uint(1); zone <= 4; zone++ {
					for i, gb := range amounts {
						packages = append(packages, models.Package{
							Zone:     zone,
							Data:     gb,
							Days:     30,
							PlanName: fmt.Sprintf("eSIM %v GB Zone %d", gb, zone),
							Price:    decimal.NewFromInt(basePrices[i] + 2*int64(zone-1)),
						})
					}
				}
				for _, pkg := range packages {
					if err := tx.Create(&pkg).Error; err != nil {
						return fmt.Errorf("failed to create package %s: %w", pkg.PlanName, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}