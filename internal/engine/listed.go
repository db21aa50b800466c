// internal/engine/listed.go
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unboxed-hq/hazwaste/internal/regdata"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Listed waste matcher.
 *
 * Matches composition CAS numbers against the P-code and U-code
 * dictionaries; when no CAS matches (or the composition is empty), falls
 * back to known hazardous keywords in the product name. Independently:
 *
 *   - flags petroleumBased from product-name keywords. The flag feeds
 *     the state resolver; it never adds a federal code itself.
 *   - computes advisory F/K suggestions from solvent/industry keyword
 *     lists. Suggestions are prefixed with a spent/used warning in the
 *     reasoning trail and never affect the final classification.
 *
 * Invalid CAS numbers (bad format or check digit) are treated as missing
 * with a reasoning entry distinguishing "invalid" from "absent".
 */

// classifyListed runs the listed-waste matcher and records codes,
// reasoning, the petroleum flag, and F/K suggestions on the builder.
func classifyListed(p *types.Product, b *resultBuilder) {
	casMatched := matchCompositionCAS(p, b)
	if !casMatched {
		matchNameKeywords(p, b)
	}
	flagPetroleum(p, b)
	suggestUsedWasteCodes(p, b)
}

// matchCompositionCAS looks up each constituent's CAS number in the P and
// U dictionaries, appending deduplicated codes. Returns true when at
// least one constituent produced a listed code.
func matchCompositionCAS(p *types.Product, b *resultBuilder) bool {
	matched := false
	for _, comp := range p.Composition {
		cas := strings.TrimSpace(comp.CASNumber)
		if cas == "" {
			continue
		}
		if !types.ValidCAS(cas) {
			b.noteListed(fmt.Sprintf("Component %q: CAS %q is not a valid registry number (treated as missing)", comp.Name, cas))
			continue
		}
		if w, ok := regdata.PCode(cas); ok {
			b.addListedCode(w.Code, fmt.Sprintf("%s: CAS %s (%s) is an acutely hazardous listed waste", w.Code, cas, w.Name))
			matched = true
			continue
		}
		if w, ok := regdata.UCode(cas); ok {
			b.addListedCode(w.Code, fmt.Sprintf("%s: CAS %s (%s) is a toxic listed commercial chemical", w.Code, cas, w.Name))
			matched = true
		}
	}
	return matched
}

// matchNameKeywords is the fallback path: known hazardous chemical names
// in the product name map directly to listed codes.
func matchNameKeywords(p *types.Product, b *resultBuilder) {
	name := normalize(p.ProductName)
	if name == "" {
		return
	}
	for _, kw := range nameKeywordOrder() {
		if strings.Contains(name, kw) {
			code := regdata.NameKeywords()[kw]
			b.addListedCode(code, fmt.Sprintf("%s: product name contains %q (no CAS match available)", code, kw))
		}
	}
}

// nameKeywordOrder returns the fallback keywords in deterministic order
// (longest first, then lexicographic) so overlapping keywords like
// "trichloroethylene" win over shorter substrings and reasoning output
// is stable across runs.
func nameKeywordOrder() []string {
	kws := make([]string, 0, len(regdata.NameKeywords()))
	for kw := range regdata.NameKeywords() {
		kws = append(kws, kw)
	}
	sort.Slice(kws, func(i, j int) bool {
		if len(kws[i]) != len(kws[j]) {
			return len(kws[i]) > len(kws[j])
		}
		return kws[i] < kws[j]
	})
	return kws
}

func flagPetroleum(p *types.Product, b *resultBuilder) {
	if kw, ok := isPetroleumBased(normalize(p.ProductName)); ok {
		b.setPetroleumBased(fmt.Sprintf("Petroleum-based product: name contains %q (state-level classification input, no federal code)", kw))
	}
}

func suggestUsedWasteCodes(p *types.Product, b *resultBuilder) {
	text := productText(p)
	for _, s := range regdata.UsedWasteSuggestions() {
		for _, kw := range s.Keywords {
			if strings.Contains(text, kw) {
				b.addSuggestedCode(s.Code, fmt.Sprintf("Advisory %s (applies only if material is spent/used): %s (matched %q)", s.Code, s.Label, kw))
				break
			}
		}
	}
}
