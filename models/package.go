// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Package is one purchasable data package row, scoped to a zone.
type Package struct {
	ID        uint            `gorm:"primaryKey"`
	Zone      uint            `gorm:"not null;index"`
	Data      float64         `gorm:"not null"`
	Days      uint            `gorm:"not null;default:30"`
	PlanName  string          `gorm:"size:255;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func init() {
	AllModels = append(AllModels, &Package{})
}