// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"simtlv-server/commons"
	"time"
)

type ClientConfig struct {
	baseURL string
}

// Client fetches country and package snapshots from the catalog origin.
// Every failure mode degrades to an empty result set: the storefront renders
// "no offer" rather than surfacing transport or shape errors to the buyer.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

func NewClient(c ClientConfig) (*Client, error) {
	if c.baseURL == "" {
		c.baseURL = commons.GetEnv("CATALOG_API_URL", commons.Config.CatalogAPIURL)
	}

	parsedURL, err := url.Parse(c.baseURL)
	if err != nil {
		commons.Logger.Error("Failed to parse catalog API base URL:", err)
		return nil, err
	}
	commons.Logger.Debugf("Catalog API client initialized for %s", c.baseURL)
	return &Client{
		BaseURL:    parsedURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// FetchCountries loads the country directory snapshot. Rows that are not JSON
// objects are skipped; a failed request yields an empty directory.
func (c *Client) FetchCountries() []CountryRecord {
	items := c.fetchList("/get-countries")
	records := make([]CountryRecord, 0, len(items))
	for _, item := range items {
		var r CountryRecord
		if err := json.Unmarshal(item, &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// FetchPackages loads the packages available at the given zone.
func (c *Client) FetchPackages(zone int) []PackageRecord {
	items := c.fetchList(fmt.Sprintf("/get-packages?zone=%d", zone))
	packages := make([]PackageRecord, 0, len(items))
	for _, item := range items {
		var p PackageRecord
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		packages = append(packages, p)
	}
	return packages
}

func (c *Client) fetchList(path string) []json.RawMessage {
	rel, err := url.Parse(path)
	if err != nil {
		return nil
	}
	u := c.BaseURL.ResolveReference(rel)

	resp, err := c.HTTPClient.Get(u.String())
	if err != nil {
		commons.Logger.Warnf("Catalog fetch failed for %s: %v", path, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		commons.Logger.Warnf("Catalog fetch for %s returned %s", path, resp.Status)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		commons.Logger.Warnf("Catalog read failed for %s: %v", path, err)
		return nil
	}
	return decodeListPayload(body)
}

// decodeListPayload accepts either a bare JSON array or an envelope object
// with the array under "data". Any other shape yields an empty list.
func decodeListPayload(body []byte) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		return envelope.Data
	}
	return nil
}