// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StorefrontConfig holds the settings shared by the interactive and
// server-rendered storefront paths. Values come from an optional YAML file
// pointed at by CONFIG_FILE, with environment variables taking precedence.
type StorefrontConfig struct {
	// Base URL of the catalog origin serving /get-countries and /get-packages.
	CatalogAPIURL string `yaml:"catalog_api_url"`
	// Public base URL of the storefront, used in product documents.
	SiteURL string `yaml:"site_url"`
	// Currency code passed through on every offer. Never converted.
	Currency string `yaml:"currency"`
	// Product image used in server-rendered structured data.
	ImageURL string `yaml:"image_url"`
	// Data amount (GB) flagged popular when the plan hint carries none.
	// Inherited from the original storefront; no recorded rationale for 5.
	DefaultPopularGB float64 `yaml:"default_popular_gb"`
}

var Config = defaultConfig()

func defaultConfig() StorefrontConfig {
	return StorefrontConfig{
		CatalogAPIURL:    "https://app-link.simtlv.co.il",
		SiteURL:          "https://app.simtlv.co.il",
		Currency:         "ILS",
		ImageURL:         "https://app.simtlv.co.il/images/esim-default.jpg",
		DefaultPopularGB: 5,
	}
}

func InitConfig() {
	Config = defaultConfig()

	if path := GetEnv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			Logger.Warnf("Failed to read config file %s: %v", path, err)
		} else if err := yaml.Unmarshal(data, &Config); err != nil {
			Logger.Warnf("Failed to parse config file %s: %v", path, err)
			Config = defaultConfig()
		} else {
			Logger.Infof("Loaded storefront config from %s", path)
		}
	}

	if v := GetEnv("CATALOG_API_URL"); v != "" {
		Config.CatalogAPIURL = v
	}
	if v := GetEnv("SITE_URL"); v != "" {
		Config.SiteURL = v
	}
	if v := GetEnv("CURRENCY"); v != "" {
		Config.Currency = v
	}
	if v := GetEnv("IMAGE_URL"); v != "" {
		Config.ImageURL = v
	}
	if v := GetEnv("DEFAULT_POPULAR_GB"); v != "" {
		if gb, err := strconv.ParseFloat(v, 64); err == nil && gb > 0 {
			Config.DefaultPopularGB = gb
		}
	}
}