// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"encoding/json"
	"regexp"
	"strings"
)

// NetworkPlaceholder is shown when no network name survives the fallback
// chain.
const NetworkPlaceholder = "—"

const networkSeparator = " / "

// networkNamePattern pulls network names out of malformed rows: a
// network_name-style key followed by a quoted value, anywhere in the text.
var networkNamePattern = regexp.MustCompile(`network_name["']?\s*[:=]\s*["']([^"']+)["']`)

// ExtractNetworks normalizes a country record's network field into display
// labels. The raw field arrives in several shapes depending on the country:
// a JSON-encoded string, an array of objects or strings, a single object, or
// text that is not valid JSON at all. The layers run in fixed precedence and
// the first one producing names wins:
//
//  1. structured decode of the raw value,
//  2. name extraction per entry (network_name attribute, or pattern scan for
//     string entries),
//  3. pattern scan over the raw text,
//  4. a plain operator/carrier field,
//  5. the placeholder.
//
// The result is never empty.
func ExtractNetworks(r CountryRecord) []string {
	names := namesFromList(networkList(r))

	if len(names) == 0 {
		if s, ok := r["networks"].(string); ok {
			names = scanNetworkNames(s)
		}
	}
	if len(names) == 0 {
		if s, ok := r["network"].(string); ok {
			names = scanNetworkNames(s)
		}
	}
	if len(names) == 0 {
		if v, ok := firstField(r, "operator", "carrier"); ok {
			names = []string{stringValue(v)}
		}
	}
	if len(names) == 0 {
		names = []string{NetworkPlaceholder}
	}
	return names
}

// NetworkLabel joins the normalized names into the single display label used
// by both storefront paths.
func NetworkLabel(r CountryRecord) string {
	return strings.Join(ExtractNetworks(r), networkSeparator)
}

// networkList picks the raw network value and decodes it into a flat entry
// list. The "networks" field wins over "network", and a textual value is
// consumed by this layer even when it fails to decode, matching the
// precedence the storefront has always had: a malformed "networks" string
// falls through to the pattern scan, not to the "network" field.
func networkList(r CountryRecord) []any {
	if s, ok := r["networks"].(string); ok {
		return decodeJSONList(s)
	}
	if s, ok := r["network"].(string); ok {
		return decodeJSONList(s)
	}
	if list, ok := r["networks"].([]any); ok {
		return list
	}
	if list, ok := r["network"].([]any); ok {
		return list
	}
	if obj, ok := r["networks"].(map[string]any); ok {
		return []any{obj}
	}
	if obj, ok := r["network"].(map[string]any); ok {
		return []any{obj}
	}
	return nil
}

// decodeJSONList decodes a JSON-encoded string into an entry list, wrapping a
// single object as a one-element list. Invalid JSON yields nil.
func decodeJSONList(s string) []any {
	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil
	}
	switch v := parsed.(type) {
	case []any:
		return v
	case map[string]any:
		return []any{v}
	default:
		return nil
	}
}

func namesFromList(list []any) []string {
	var names []string
	for _, entry := range list {
		switch e := entry.(type) {
		case string:
			if scanned := scanNetworkNames(e); len(scanned) > 0 {
				names = append(names, scanned...)
			} else if trimmed := strings.TrimSpace(e); trimmed != "" {
				names = append(names, trimmed)
			}
		case map[string]any:
			if name := stringValue(e["network_name"]); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func scanNetworkNames(s string) []string {
	var names []string
	for _, m := range networkNamePattern.FindAllStringSubmatch(s, -1) {
		names = append(names, m[1])
	}
	return names
}