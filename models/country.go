// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

// Country is one destination row of the origin catalog. Networks holds the
// carrier list as raw text: historically a JSON array of
// {"network_name": ...} objects, but plain text and partially broken JSON
// exist in production data and are served as-is. The storefront normalizer
// owns cleaning it up.
type Country struct {
	ID         uint   `gorm:"primaryKey"`
	ISOCode    string `gorm:"size:8;not null;uniqueIndex"`
	Name       string `gorm:"size:255;not null"`
	HebrewName string `gorm:"size:255"`
	Flag       string `gorm:"size:16"`
	Zone       uint   `gorm:"not null;index"`
	Networks   string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func init() {
	AllModels = append(AllModels, &Country{})
}