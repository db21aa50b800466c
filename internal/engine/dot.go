// internal/engine/dot.go
package engine

import (
	"fmt"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * DOT shipping classifier.
 *
 * Maps the aggregated federal result to a transport profile via an
 * ordered rule table: ignitable (D001) before corrosive (D002) before
 * reactive (D003) before acutely toxic (P) before toxic (U), with a
 * Class 9 fallback for any other federal code and Non-regulated when no
 * federal code exists. Packing group refinement uses flash point (D001)
 * and pH extremes (D002).
 *
 * Pre-known shipping info on the product (UN number, proper shipping
 * name from the SDS) overrides the derived identifiers but not the
 * hazard class or packing group.
 */

// dotEvidence is the rule-table input: the product plus the accumulated
// federal outcome.
type dotEvidence struct {
	product *types.Product
	codes   []string
	hasP    bool
	hasU    bool
	hasAny  bool
}

func hasCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

var dotRules = []ruleEntry[*dotEvidence, func(*dotEvidence) types.DOTClassification]{
	{
		name: "ignitable",
		applies: func(e *dotEvidence) (bool, string) {
			if !hasCode(e.codes, "D001") {
				return false, ""
			}
			return true, "DOT: UN1993 Class 3 (ignitable waste)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			pg := "III"
			if fp, ok := e.product.FlashPoint.CelsiusValue(); ok && fp < dotFlashPointPGIIMaxC {
				pg = "II"
			}
			return types.DOTClassification{
				UNNumber:           "UN1993",
				HazardClass:        "3",
				ProperShippingName: "Waste Flammable liquids, n.o.s.",
				PackingGroup:       pg,
			}
		},
	},
	{
		name: "corrosive",
		applies: func(e *dotEvidence) (bool, string) {
			if !hasCode(e.codes, "D002") {
				return false, ""
			}
			return true, "DOT: UN1760 Class 8 (corrosive waste)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			pg := "II"
			if ph := e.product.PH; ph != nil && !ph.Invalid && (ph.Min < 1 || ph.Max > 13) {
				pg = "I"
			}
			return types.DOTClassification{
				UNNumber:           "UN1760",
				HazardClass:        "8",
				ProperShippingName: "Waste Corrosive liquid, n.o.s.",
				PackingGroup:       pg,
			}
		},
	},
	{
		name: "reactive",
		applies: func(e *dotEvidence) (bool, string) {
			if !hasCode(e.codes, "D003") {
				return false, ""
			}
			return true, "DOT: UN3186 Class 4.2 (reactive waste)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			return types.DOTClassification{
				UNNumber:           "UN3186",
				HazardClass:        "4.2",
				ProperShippingName: "Waste Self-heating liquid, inorganic, n.o.s.",
				PackingGroup:       "II",
			}
		},
	},
	{
		name: "acutely-toxic",
		applies: func(e *dotEvidence) (bool, string) {
			if !e.hasP {
				return false, ""
			}
			return true, "DOT: UN2810 Class 6.1 PG I (acutely hazardous P-code)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			return types.DOTClassification{
				UNNumber:           "UN2810",
				HazardClass:        "6.1",
				ProperShippingName: "Waste Toxic liquids, organic, n.o.s.",
				PackingGroup:       "I",
			}
		},
	},
	{
		name: "toxic",
		applies: func(e *dotEvidence) (bool, string) {
			if !e.hasU {
				return false, ""
			}
			return true, "DOT: UN2810 Class 6.1 PG III (listed U-code)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			return types.DOTClassification{
				UNNumber:           "UN2810",
				HazardClass:        "6.1",
				ProperShippingName: "Waste Toxic liquids, organic, n.o.s.",
				PackingGroup:       "III",
			}
		},
	},
	{
		name: "class9-fallback",
		applies: func(e *dotEvidence) (bool, string) {
			if !e.hasAny {
				return false, ""
			}
			return true, "DOT: UN3082 Class 9 fallback (federal codes present without specific transport mapping)"
		},
		outcome: func(e *dotEvidence) types.DOTClassification {
			return types.DOTClassification{
				UNNumber:           "UN3082",
				HazardClass:        "9",
				ProperShippingName: "Waste Environmentally hazardous substance, liquid, n.o.s.",
				PackingGroup:       "III",
			}
		},
	},
	{
		name:    "non-regulated",
		applies: always[*dotEvidence]("DOT: non-regulated (no federal codes)"),
		outcome: func(e *dotEvidence) types.DOTClassification {
			return types.NonRegulatedDOT
		},
	},
}

// classifyDOT derives the transport profile from the aggregated federal
// result and records it on the builder.
func classifyDOT(p *types.Product, b *resultBuilder) {
	codes := b.federalCodes()
	ev := &dotEvidence{product: p, codes: codes, hasAny: len(codes) > 0}
	for _, c := range codes {
		switch c[0] {
		case 'P':
			ev.hasP = true
		case 'U':
			ev.hasU = true
		}
	}

	build, reason, ok := evalRules(dotRules, ev)
	if !ok {
		build, reason = func(*dotEvidence) types.DOTClassification { return types.NonRegulatedDOT }, "DOT: non-regulated"
	}
	dot := build(ev)

	if p.UNNumber != "" {
		dot.UNNumber = p.UNNumber
		if p.ProperShippingName != "" {
			dot.ProperShippingName = p.ProperShippingName
		}
		reason = fmt.Sprintf("%s; SDS shipping identifiers retained (%s)", reason, p.UNNumber)
	}

	b.setDOT(dot, reason)
}
