// internal/labpack/compat.go
package labpack

import (
	"fmt"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Pairwise compatibility.
 *
 * Severity grading, checked in order:
 *   1. Either side extreme-segregation or wildcard-incompatible ("ALL"):
 *      EXTREME, mandatory separate packaging. Two different wildcard
 *      categories are still mutually EXTREME.
 *   2. Either side's incompatibility set names the other's category:
 *      HIGH, do not combine.
 *   3. Otherwise compatible.
 *
 * Both directions are always consulted, which makes the check symmetric
 * by construction.
 */

// CheckCompatibility grades whether two categorized materials may share
// a container.
func CheckCompatibility(a, b types.LabPackCategory) types.CompatibilityCheckResult {
	if a.RequiresIsolation() || b.RequiresIsolation() ||
		a.SegregationLevel == types.SegregationExtreme || b.SegregationLevel == types.SegregationExtreme {
		x, y := orderPair(a.PrimaryCategory, b.PrimaryCategory)
		return types.CompatibilityCheckResult{
			Compatible: false,
			Severity:   types.SeverityExtreme,
			Reason: fmt.Sprintf("%s and %s: extreme segregation required; at least one category must be packed alone",
				x, y),
			Recommendations: []string{
				"Package in separate containers",
				"Do not transport in the same overpack",
			},
		}
	}

	if a.IncompatibleWithCategory(b.PrimaryCategory) || b.IncompatibleWithCategory(a.PrimaryCategory) {
		x, y := orderPair(a.PrimaryCategory, b.PrimaryCategory)
		return types.CompatibilityCheckResult{
			Compatible: false,
			Severity:   types.SeverityHigh,
			Reason:     fmt.Sprintf("%s and %s are listed as incompatible", x, y),
			Recommendations: []string{
				"Assign to separate lab packs",
			},
		}
	}

	x, y := orderPair(a.PrimaryCategory, b.PrimaryCategory)
	return types.CompatibilityCheckResult{
		Compatible: true,
		Severity:   types.SeverityNone,
		Reason:     fmt.Sprintf("%s and %s have no listed incompatibility", x, y),
	}
}

// CheckMaterials classifies two products and grades their compatibility.
// Materials the cascade cannot categorize are graded EXTREME with a
// manual-review reason rather than guessed compatible.
func CheckMaterials(a, b *types.Product) types.CompatibilityCheckResult {
	catA, okA := Categorize(a, nil)
	catB, okB := Categorize(b, nil)
	if !okA || !okB {
		return types.CompatibilityCheckResult{
			Compatible: false,
			Severity:   types.SeverityExtreme,
			Reason:     "one or both materials could not be categorized; manual review required",
			Recommendations: []string{
				"Do not combine until a chemist reviews the material",
			},
		}
	}
	return CheckCompatibility(catA, catB)
}

// orderPair returns the two category names in lexicographic order so
// (A,B) and (B,A) produce byte-identical results.
func orderPair(a, b types.Category) (types.Category, types.Category) {
	if b < a {
		return b, a
	}
	return a, b
}
