// Package labpack implements chemical-family categorization and
// container segregation planning for lab packs.
//
// Categorization is a fixed, ordered cascade of priority checks, most
// dangerous family first, followed by a second composition-driven rule
// pass that can force-override the cascade for a small set of
// safety-critical constituents. Pairwise compatibility and batch
// planning build on the resulting categories.
package labpack

import (
	"fmt"
	"strings"

	"github.com/unboxed-hq/hazwaste/internal/regdata"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Category cascade.
 *
 * Ordered first-match-wins checks:
 *
 *   aerosol -> oxidizing acid -> cyanide -> water-reactive metal ->
 *   flammable (excluding oxidizer matches) -> acid -> base -> oxidizer ->
 *   toxic -> solid caustic -> non-hazardous by physical state.
 *
 * Unknown physical state with no match falls through: the material is
 * unclassifiable and must go to manual review, never silently defaulted.
 */

const flammableFlashPointC = 60.0

// categoryEvidence is the cascade input: the product, its normalized
// text, and the optional federal classification (for the DOT 6.1 toxic
// check).
type categoryEvidence struct {
	product *types.Product
	text    string
	result  *types.ClassificationResult
}

// categoryRule is one entry of the cascade: a named predicate plus the
// category it assigns with a subcategory for the reasoning trail.
type categoryRule struct {
	name     string
	category types.Category
	applies  func(ev *categoryEvidence) (bool, string, string) // matched, subcategory, reason
}

var cascade = []categoryRule{
	{
		name:     "aerosol",
		category: types.CategoryAerosols,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if ev.product.PhysicalState != types.StateAerosol && ev.product.PhysicalState != types.StateGas {
				return false, "", ""
			}
			return true, "compressed gas / aerosol", fmt.Sprintf("Physical state %q requires aerosol segregation", ev.product.PhysicalState)
		},
	},
	{
		name:     "oxidizing-acid",
		category: types.CategoryOxidizingAcids,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if kw, ok := matchSet(ev.text, "oxidizingAcid"); ok {
				return true, kw, fmt.Sprintf("Oxidizing acid keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "cyanide",
		category: types.CategoryCyanides,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if kw, ok := matchSet(ev.text, "cyanide"); ok {
				return true, "cyanide salt or solution", fmt.Sprintf("Cyanide keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "reactive-metal",
		category: types.CategoryReactiveMetals,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if kw, ok := matchSet(ev.text, "reactiveMetal"); ok {
				return true, "water-reactive metal", fmt.Sprintf("Water-reactive keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "flammable",
		category: types.CategoryFlammableOrganic,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			// Oxidizer keywords take the oxidizer branch below even when
			// the material also looks solvent-like.
			if _, isOx := matchSet(ev.text, "oxidizer"); isOx {
				return false, "", ""
			}
			if fp, ok := ev.product.FlashPoint.CelsiusValue(); ok && fp < flammableFlashPointC {
				return true, "flammable liquid", fmt.Sprintf("Flash point %.1f°C < %.0f°C", fp, flammableFlashPointC)
			}
			if kw, ok := matchSet(ev.text, "organicSolvent"); ok {
				return true, "organic solvent", fmt.Sprintf("Solvent keyword %q", kw)
			}
			if kw, ok := matchSet(ev.text, "petroleum"); ok {
				return true, "petroleum product", fmt.Sprintf("Fuel keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "acid",
		category: types.CategoryAcidsCorrosive,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			ph := ev.product.PH
			if ev.product.PhysicalState != types.StateLiquid || ph == nil || ph.Invalid || ph.Min > 2.0 {
				return false, "", ""
			}
			return true, "corrosive acid", fmt.Sprintf("Liquid with pH %g ≤ 2", ph.Min)
		},
	},
	{
		name:     "base",
		category: types.CategoryBasesCaustic,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			ph := ev.product.PH
			if ev.product.PhysicalState != types.StateLiquid || ph == nil || ph.Invalid || ph.Max < 12.5 {
				return false, "", ""
			}
			return true, "caustic base", fmt.Sprintf("Liquid with pH %g ≥ 12.5", ph.Max)
		},
	},
	{
		name:     "oxidizer",
		category: types.CategoryOxidizers,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if kw, ok := matchSet(ev.text, "oxidizer"); ok {
				return true, kw, fmt.Sprintf("Oxidizer keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "toxic",
		category: types.CategoryToxics,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if ev.result != nil && ev.result.DOT.HazardClass == "6.1" {
				return true, "DOT 6.1 toxic", "Federal classification carries DOT hazard class 6.1"
			}
			if kw, ok := matchSet(ev.text, "heavyMetal"); ok {
				return true, "heavy metal", fmt.Sprintf("Heavy metal keyword %q", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "solid-caustic",
		category: types.CategoryCausticSolids,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if ev.product.PhysicalState != types.StateSolid {
				return false, "", ""
			}
			if kw, ok := matchSet(ev.text, "caustic"); ok {
				return true, "caustic solid", fmt.Sprintf("Solid caustic keyword %q (non-hazardous while solid)", kw)
			}
			return false, "", ""
		},
	},
	{
		name:     "non-hazardous-liquid",
		category: types.CategoryNonHazLiquid,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if ev.product.PhysicalState != types.StateLiquid {
				return false, "", ""
			}
			return true, "general liquid", "No hazardous family indicators; liquid physical state"
		},
	},
	{
		name:     "non-hazardous-solid",
		category: types.CategoryNonHazSolid,
		applies: func(ev *categoryEvidence) (bool, string, string) {
			if ev.product.PhysicalState != types.StateSolid {
				return false, "", ""
			}
			return true, "general solid", "No hazardous family indicators; solid physical state"
		},
	},
}

// Categorize assigns the product to a compatibility category via the
// priority cascade, then applies the composition override pass. result
// may be nil when no federal classification is available; only the DOT
// 6.1 toxic check uses it.
//
// The second return is false when the cascade falls through every check
// (unknown physical state with no family indicators): the material is
// unclassifiable and belongs in the manual-review list.
func Categorize(p *types.Product, result *types.ClassificationResult) (types.LabPackCategory, bool) {
	ev := &categoryEvidence{
		product: p,
		text:    searchText(p),
		result:  result,
	}

	for _, rule := range cascade {
		matched, sub, reason := rule.applies(ev)
		if !matched {
			continue
		}
		cat := buildCategory(rule.category, sub, reason)
		return applyCompositionOverride(p, cat), true
	}
	return types.LabPackCategory{PrimaryCategory: types.CategoryUnknown}, false
}

// buildCategory materializes a LabPackCategory from the static
// definition table plus the cascade's subcategory and reasoning.
func buildCategory(name types.Category, subcategory, reason string) types.LabPackCategory {
	def, ok := regdata.Category(string(name))
	if !ok {
		// Cascade categories are all defined in the data file; a miss is
		// a build defect surfaced loudly in tests.
		panic(fmt.Sprintf("labpack: category %q missing from definitions", name))
	}
	return types.LabPackCategory{
		PrimaryCategory:       name,
		Subcategory:           subcategory,
		SegregationLevel:      types.SegregationLevel(def.SegregationLevel),
		IncompatibleWith:      append([]string(nil), def.IncompatibleWith...),
		SpecialHandling:       append([]string(nil), def.SpecialHandling...),
		PackagingRequirements: def.Packaging,
		Reasoning:             []string{reason},
	}
}

// searchText returns normalized product name plus constituent names.
func searchText(p *types.Product) string {
	parts := make([]string, 0, 1+len(p.Composition))
	parts = append(parts, p.ProductName)
	for _, c := range p.Composition {
		parts = append(parts, c.Name)
	}
	return strings.Join(strings.Fields(strings.ToLower(strings.Join(parts, " "))), " ")
}

// matchSet returns the first keyword of the named regdata set contained
// in the normalized text.
func matchSet(text, set string) (string, bool) {
	for _, kw := range regdata.Keywords(set) {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
