// internal/engine/state.go
package engine

import (
	"fmt"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * State classification resolver.
 *
 * Two independent ordered rule tables, each evaluated top to bottom with
 * first match winning:
 *
 *   Classification level: federal codes force H; then caustic/corrosive,
 *   petroleum, hazard keywords assign 1; industrial-waste keywords and
 *   the default assign 2. Level 3 is reserved for construction debris
 *   and is never assigned here.
 *
 *   Form code: aerosol 208, organic solvent 203, solids 204, strong
 *   acid 105, strong base 106, petroleum 202, default 102.
 *
 * The combined state code is always derived as {form}-{level}; nothing
 * sets it directly.
 */

// stateEvidence is the input to the state rule tables: the product plus
// the federal outcome accumulated so far.
type stateEvidence struct {
	product        *types.Product
	text           string // normalized product text
	federalCodes   []string
	petroleumBased bool
}

// phCorrosive reports whether the product pH (value or range) overlaps a
// corrosive band, with the band boundary it touched.
func (e *stateEvidence) phCorrosive() (string, bool) {
	ph := e.product.PH
	if ph == nil || ph.Invalid || e.product.PhysicalState != types.StateLiquid {
		return "", false
	}
	if ph.Min <= corrosivePHLow {
		return fmt.Sprintf("pH %g ≤ %g", ph.Min, corrosivePHLow), true
	}
	if ph.Max >= corrosivePHHigh {
		return fmt.Sprintf("pH %g ≥ %g", ph.Max, corrosivePHHigh), true
	}
	return "", false
}

var levelRules = []ruleEntry[*stateEvidence, types.StateClassification]{
	{
		name: "federal-override",
		applies: func(e *stateEvidence) (bool, string) {
			if len(e.federalCodes) == 0 {
				return false, ""
			}
			return true, fmt.Sprintf("State classification H: federal codes present (%v)", e.federalCodes)
		},
		outcome: types.StateClassHazardous,
	},
	{
		name: "caustic-or-corrosive",
		applies: func(e *stateEvidence) (bool, string) {
			if kw, ok := isCaustic(e.text); ok {
				return true, fmt.Sprintf("State classification 1: caustic keyword %q", kw)
			}
			if band, ok := e.phCorrosive(); ok {
				return true, fmt.Sprintf("State classification 1: corrosive band (%s)", band)
			}
			return false, ""
		},
		outcome: types.StateClass1,
	},
	{
		name: "petroleum",
		applies: func(e *stateEvidence) (bool, string) {
			if !e.petroleumBased {
				return false, ""
			}
			return true, "State classification 1: petroleum-based product"
		},
		outcome: types.StateClass1,
	},
	{
		name: "hazard-keyword",
		applies: func(e *stateEvidence) (bool, string) {
			if kw, ok := hasHazardKeyword(e.text); ok {
				return true, fmt.Sprintf("State classification 1: hazard keyword %q", kw)
			}
			return false, ""
		},
		outcome: types.StateClass1,
	},
	{
		name: "industrial-waste",
		applies: func(e *stateEvidence) (bool, string) {
			if kw, ok := isIndustrialWaste(e.text); ok {
				return true, fmt.Sprintf("State classification 2: industrial waste keyword %q", kw)
			}
			return false, ""
		},
		outcome: types.StateClass2,
	},
	{
		// Level 3 is reserved (construction debris) and never assigned
		// by the default path.
		name:    "default",
		applies: always[*stateEvidence]("State classification 2: no hazard indicators, default industrial classification"),
		outcome: types.StateClass2,
	},
}

var formRules = []ruleEntry[*stateEvidence, string]{
	{
		name: "aerosol",
		applies: func(e *stateEvidence) (bool, string) {
			if e.product.PhysicalState != types.StateAerosol {
				return false, ""
			}
			return true, "Form code 208: aerosol product"
		},
		outcome: "208",
	},
	{
		name: "organic-solvent",
		applies: func(e *stateEvidence) (bool, string) {
			if kw, ok := isOrganicSolvent(e.text); ok {
				return true, fmt.Sprintf("Form code 203: organic solvent keyword %q", kw)
			}
			return false, ""
		},
		outcome: "203",
	},
	{
		name: "solid",
		applies: func(e *stateEvidence) (bool, string) {
			if e.product.PhysicalState == types.StateSolid {
				return true, "Form code 204: solid physical state"
			}
			if kw, ok := hasSolidIndicator(e.text); ok {
				return true, fmt.Sprintf("Form code 204: solid indicator keyword %q", kw)
			}
			return false, ""
		},
		outcome: "204",
	},
	{
		name: "acid-liquid",
		applies: func(e *stateEvidence) (bool, string) {
			ph := e.product.PH
			if e.product.PhysicalState != types.StateLiquid || ph == nil || ph.Invalid || ph.Min > corrosivePHLow {
				return false, ""
			}
			return true, fmt.Sprintf("Form code 105: acidic liquid (pH %g ≤ %g)", ph.Min, corrosivePHLow)
		},
		outcome: "105",
	},
	{
		name: "alkaline-liquid",
		applies: func(e *stateEvidence) (bool, string) {
			ph := e.product.PH
			if e.product.PhysicalState != types.StateLiquid || ph == nil || ph.Invalid || ph.Max < corrosivePHHigh {
				return false, ""
			}
			return true, fmt.Sprintf("Form code 106: alkaline liquid (pH %g ≥ %g)", ph.Max, corrosivePHHigh)
		},
		outcome: "106",
	},
	{
		name: "petroleum",
		applies: func(e *stateEvidence) (bool, string) {
			if kw, ok := isPetroleumBased(e.text); ok {
				return true, fmt.Sprintf("Form code 202: petroleum keyword %q", kw)
			}
			return false, ""
		},
		outcome: "202",
	},
	{
		name:    "default",
		applies: always[*stateEvidence]("Form code 102: default waste form"),
		outcome: "102",
	},
}

// resolveState evaluates both state rule tables and records the level,
// form code, and derived state code on the builder.
func resolveState(p *types.Product, b *resultBuilder) {
	ev := &stateEvidence{
		product:        p,
		text:           productText(p),
		federalCodes:   b.federalCodes(),
		petroleumBased: b.petroleum,
	}

	level, levelReason, ok := evalRules(levelRules, ev)
	if !ok {
		// Unreachable: the table ends in a catch-all.
		level, levelReason = types.StateClass2, "State classification 2: default"
	}
	form, formReason, ok := evalRules(formRules, ev)
	if !ok {
		form, formReason = "102", "Form code 102: default"
	}

	b.setState(level, form, levelReason, formReason)
}
