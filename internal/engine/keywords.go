// internal/engine/keywords.go
package engine

import (
	"strings"

	"github.com/unboxed-hq/hazwaste/internal/regdata"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Named keyword predicates.
 *
 * Every keyword heuristic in the engine goes through this file: a
 * predicate with a name, operating on normalized lowercase text, backed
 * by a single keyword table in regdata. Near-duplicate inline keyword
 * lists drift silently; a shared table cannot.
 *
 * Matching is substring-based on normalized text. Keyword sets are
 * ordered in the data file, and the first matching keyword is reported
 * so reasoning output is deterministic.
 */

// normalize lowercases text and collapses interior whitespace so
// multi-word keywords match regardless of source formatting.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// productText returns the normalized searchable text for a product:
// product name plus constituent names.
func productText(p *types.Product) string {
	parts := make([]string, 0, 1+len(p.Composition))
	parts = append(parts, p.ProductName)
	for _, c := range p.Composition {
		parts = append(parts, c.Name)
	}
	return normalize(strings.Join(parts, " "))
}

// matchKeyword returns the first keyword from the named regdata set found
// in text. Text must already be normalized.
func matchKeyword(text, set string) (string, bool) {
	for _, kw := range regdata.Keywords(set) {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}

// Named predicates. Each wraps one keyword set; callers pass normalized
// text from normalize or productText.

func isPetroleumBased(text string) (string, bool)   { return matchKeyword(text, "petroleum") }
func isCaustic(text string) (string, bool)          { return matchKeyword(text, "caustic") }
func hasHazardKeyword(text string) (string, bool)   { return matchKeyword(text, "hazard") }
func isIndustrialWaste(text string) (string, bool)  { return matchKeyword(text, "industrial") }
func isOrganicSolvent(text string) (string, bool)   { return matchKeyword(text, "organicSolvent") }
func hasSolidIndicator(text string) (string, bool)  { return matchKeyword(text, "solidIndicator") }
func isNonflammableGas(text string) (string, bool)  { return matchKeyword(text, "nonflammableGas") }
func hasReactiveKeyword(text string) (string, bool) { return matchKeyword(text, "reactive") }
func isFuelGas(text string) (string, bool)          { return matchKeyword(text, "fuelGas") }
