// internal/labpack/override.go
package labpack

import (
	"fmt"
	"strings"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Composition override pass.
 *
 * A second, higher-priority rule layer over the keyword cascade: when a
 * constituent above its concentration threshold matches one of a small
 * set of safety-critical chemistries, the category is force-overridden
 * to the corresponding extreme-segregation category regardless of what
 * the cascade chose. A coarse product-name match must never mask a
 * hypochlorite, cyanide, peroxide, or nitric acid constituent.
 *
 * Thresholds use the range maximum when the constituent percentage is a
 * range: segregation errs conservative.
 */

// overrideRule is one entry of the override table: constituent-name
// terms, the concentration threshold (percent by weight, exclusive), and
// the forced category.
type overrideRule struct {
	label      string
	terms      []string
	minPercent float64
	category   types.Category
}

var overrides = []overrideRule{
	{label: "hypochlorite", terms: []string{"hypochlorite", "bleach"}, minPercent: 1.0, category: types.CategoryOxidizers},
	{label: "cyanide", terms: []string{"cyanide"}, minPercent: 0.1, category: types.CategoryCyanides},
	{label: "peroxide", terms: []string{"peroxide"}, minPercent: 1.0, category: types.CategoryOxidizers},
	{label: "nitric acid", terms: []string{"nitric acid"}, minPercent: 5.0, category: types.CategoryOxidizingAcids},
}

// applyCompositionOverride re-examines the raw composition and forces the
// category when a critical constituent exceeds its threshold. The first
// triggered override in table order wins; the original cascade reasoning
// is retained ahead of the override entry.
func applyCompositionOverride(p *types.Product, cat types.LabPackCategory) types.LabPackCategory {
	for _, rule := range overrides {
		comp, pct, ok := findConstituent(p, rule.terms, rule.minPercent)
		if !ok {
			continue
		}
		if cat.PrimaryCategory == rule.category {
			return cat
		}
		forced := buildCategory(rule.category, rule.label+" constituent",
			fmt.Sprintf("Composition override: %q at %.2f%% exceeds %g%% %s threshold (was %s)",
				comp.Name, pct, rule.minPercent, rule.label, cat.PrimaryCategory))
		forced.Reasoning = append(cat.Reasoning, forced.Reasoning...)
		return forced
	}
	return cat
}

// findConstituent returns the first constituent whose name contains one
// of the terms with concentration above the threshold. Constituents
// without a stated percentage do not trigger overrides: the threshold is
// the safety contract, and unstated concentrations stay with the cascade
// result.
func findConstituent(p *types.Product, terms []string, minPercent float64) (types.CompositionComponent, float64, bool) {
	for _, comp := range p.Composition {
		name := strings.ToLower(comp.Name)
		if comp.Percentage == nil {
			continue
		}
		for _, term := range terms {
			if strings.Contains(name, term) && comp.Percentage.Max > minPercent {
				return comp, comp.Percentage.Max, true
			}
		}
	}
	return types.CompositionComponent{}, 0, false
}
