// SPDX-License-Identifier: GPL-3.0-only

package catalog

// Directory holds one loaded snapshot of the country catalog, indexed by the
// resolved country code. A snapshot is immutable for the lifetime of the
// request that fetched it.
type Directory struct {
	records []CountryRecord
	byCode  map[string]CountryRecord
}

func NewDirectory(records []CountryRecord) *Directory {
	d := &Directory{
		records: records,
		byCode:  make(map[string]CountryRecord, len(records)),
	}
	for _, r := range records {
		code := r.Code()
		if code == "" {
			continue
		}
		if _, exists := d.byCode[code]; !exists {
			d.byCode[code] = r
		}
	}
	return d
}

func (d *Directory) Records() []CountryRecord {
	return d.records
}

func (d *Directory) Find(code string) (CountryRecord, bool) {
	r, ok := d.byCode[code]
	return r, ok
}

// Select returns the records matching the requested codes, in request order.
// Codes with no directory entry are skipped.
func (d *Directory) Select(codes []string) []CountryRecord {
	matched := make([]CountryRecord, 0, len(codes))
	for _, code := range codes {
		if r, ok := d.Find(code); ok {
			matched = append(matched, r)
		}
	}
	return matched
}