// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageRecord is one purchasable data package at a given zone. Rows are
// immutable for the lifetime of the catalog fetch that produced them.
type PackageRecord struct {
	ID       string
	Data     float64
	Days     int
	PlanName string
	Price    decimal.Decimal
}

// UnmarshalJSON tolerates the origin's loose typing: ids may be numbers or
// strings, prices numbers or numeric strings, and days may be absent (30 by
// convention). A row without an id gets a generated one so it stays selectable.
func (p *PackageRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       any    `json:"id"`
		Data     any    `json:"data"`
		Days     any    `json:"days"`
		PlanName string `json:"plan_name"`
		Price    any    `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = stringValue(raw.ID)
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Data, _ = floatValue(raw.Data)
	if days, ok := floatValue(raw.Days); ok {
		p.Days = int(days)
	} else {
		p.Days = 30
	}
	p.PlanName = raw.PlanName
	p.Price = decimalValue(raw.Price)
	return nil
}

func decimalValue(v any) decimal.Decimal {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// FormatAmount renders a data amount the way the storefront displays it:
// shortest decimal form, so 3 stays "3" and 1.5 stays "1.5".
func FormatAmount(gb float64) string {
	return strconv.FormatFloat(gb, 'f', -1, 64)
}

func (p PackageRecord) DataLabel() string {
	return fmt.Sprintf("%s GB", FormatAmount(p.Data))
}

func (p PackageRecord) DurationLabel() string {
	return fmt.Sprintf("%d Days", p.Days)
}