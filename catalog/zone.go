// SPDX-License-Identifier: GPL-3.0-only

package catalog

// ResolveZone computes the pricing tier covering every requested country: the
// maximum zone among the matched records. A multi-country bundle is always
// priced at its least favorable tier, never an average or minimum. The second
// return is false when no requested code resolves to a zoned record, in which
// case the selection cannot be priced and no package fetch may follow.
func ResolveZone(countryCodes []string, dir *Directory) (int, bool) {
	maxZone := 0
	found := false
	for _, r := range dir.Select(countryCodes) {
		zone, ok := r.Zone()
		if !ok {
			continue
		}
		if !found || zone > maxZone {
			maxZone = zone
		}
		found = true
	}
	return maxZone, found
}