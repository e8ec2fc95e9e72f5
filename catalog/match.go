// SPDX-License-Identifier: GPL-3.0-only

package catalog

import (
	"regexp"
	"sort"

	"github.com/shopspring/decimal"
)

// planHintPattern extracts the target data amount from a free-text plan hint:
// the first numeric token, decimals allowed ("3GB", "1.5 giga", "plan-10").
var planHintPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ParsePlanHint returns the data amount carried by a plan hint, if any.
func ParsePlanHint(hint string) (float64, bool) {
	m := planHintPattern.FindStringSubmatch(hint)
	if m == nil {
		return 0, false
	}
	amount, ok := floatValue(m[1])
	if !ok {
		return 0, false
	}
	return amount, true
}

// MatchByID finds the package with the given identifier. Both sides are
// already coerced to strings, so a numeric id from the origin matches its
// textual form from the URL.
func MatchByID(packages []PackageRecord, id string) (PackageRecord, bool) {
	if id == "" {
		return PackageRecord{}, false
	}
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return PackageRecord{}, false
}

// MatchByAmount finds the package whose data amount equals the target
// exactly. There is deliberately no nearest-match fallback: asking for 4 GB
// when only 3 and 5 exist yields no offer.
func MatchByAmount(packages []PackageRecord, amount float64) (PackageRecord, bool) {
	for _, p := range packages {
		if p.Data == amount {
			return p, true
		}
	}
	return PackageRecord{}, false
}

// PlanOption is one catalog entry prepared for browsing.
type PlanOption struct {
	ID            string
	DataAmount    float64
	DataLabel     string
	PlanName      string
	DurationLabel string
	Price         decimal.Decimal
	Popular       bool
}

// BuildPlanList prepares a catalog for browsing: ascending price order, with
// at most one entry flagged popular — the first whose data amount equals
// popularAmount. A non-positive popularAmount flags nothing.
func BuildPlanList(packages []PackageRecord, popularAmount float64) []PlanOption {
	plans := make([]PlanOption, 0, len(packages))
	for _, p := range packages {
		plans = append(plans, PlanOption{
			ID:            p.ID,
			DataAmount:    p.Data,
			DataLabel:     p.DataLabel(),
			PlanName:      p.PlanName,
			DurationLabel: p.DurationLabel(),
			Price:         p.Price,
		})
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Price.LessThan(plans[j].Price)
	})
	if popularAmount > 0 {
		for i := range plans {
			if plans[i].DataAmount == popularAmount {
				plans[i].Popular = true
				break
			}
		}
	}
	return plans
}

// AutoSelect decides the session's plan selection. The one-shot guard is
// carried by the caller (alreadyFired), keeping this a pure function shared
// by the interactive and one-shot paths. Rules: once fired, never again; an
// existing selection that still exists in the list is kept; otherwise the
// popular plan wins, then the cheapest. An empty plan list does not consume
// the one shot, so a later successful load can still select.
func AutoSelect(plans []PlanOption, selected string, alreadyFired bool) (string, bool) {
	if len(plans) == 0 {
		return selected, alreadyFired
	}
	if alreadyFired {
		return selected, true
	}
	if selected != "" {
		for _, p := range plans {
			if p.ID == selected {
				return selected, true
			}
		}
	}
	for _, p := range plans {
		if p.Popular {
			return p.ID, true
		}
	}
	return plans[0].ID, true
}