// SPDX-License-Identifier: GPL-3.0-only

package db

import (
	"encoding/json"
	"os"
	"simtlv-server/commons"
	"simtlv-server/models"

	"github.com/shopspring/decimal"
)

type seedCountry struct {
	ISOCode    string `json:"iso_code"`
	Name       string `json:"name"`
	HebrewName string `json:"hebrew_name"`
	Flag       string `json:"flag"`
	Zone       uint   `json:"zone"`
	Networks   string `json:"networks"`
}

type seedPackage struct {
	Zone     uint    `json:"zone"`
	Data     float64 `json:"data"`
	Days     uint    `json:"days"`
	PlanName string  `json:"plan_name"`
	Price    string  `json:"price"`
}

type seedFile struct {
	Countries []seedCountry `json:"countries"`
	Packages  []seedPackage `json:"packages"`
}

// SeedFromFile upserts catalog rows from a JSON file. Countries are keyed by
// ISO code; packages by (zone, data). Used to load a full production catalog
// on top of the migration starter set.
func SeedFromFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		commons.Logger.Errorf("Failed to read seed file %s: %v", path, err)
		os.Exit(1)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		commons.Logger.Errorf("Failed to parse seed file %s: %v", path, err)
		os.Exit(1)
	}

	for _, c := range seed.Countries {
		country := models.Country{}
		if err := Conn.Where("iso_code = ?", c.ISOCode).
			Assign(models.Country{
				ISOCode:    c.ISOCode,
				Name:       c.Name,
				HebrewName: c.HebrewName,
				Flag:       c.Flag,
				Zone:       c.Zone,
				Networks:   c.Networks,
			}).FirstOrCreate(&country).Error; err != nil {
			commons.Logger.Errorf("Failed to seed country %s: %v", c.ISOCode, err)
			os.Exit(1)
		}
	}

	for _, p := range seed.Packages {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			commons.Logger.Warnf("Skipping package %s: bad price %q", p.PlanName, p.Price)
			continue
		}
		days := p.Days
		if days == 0 {
			days = 30
		}
		pkg := models.Package{}
		if err := Conn.Where("zone = ? AND data = ?", p.Zone, p.Data).
			Assign(models.Package{
				Zone:     p.Zone,
				Data:     p.Data,
				Days:     days,
				PlanName: p.PlanName,
				Price:    price,
			}).FirstOrCreate(&pkg).Error; err != nil {
			commons.Logger.Errorf("Failed to seed package %s: %v", p.PlanName, err)
			os.Exit(1)
		}
	}

	commons.Logger.Infof("Seeded %d countries and %d packages from %s",
		len(seed.Countries), len(seed.Packages), path)
}