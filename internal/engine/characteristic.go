// internal/engine/characteristic.go
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Characteristic classifier: D001 ignitability, D002 corrosivity,
 * D003 reactivity.
 *
 * Evaluation rules:
 *   D001: aerosols flammable unless a non-flammable-gas keyword matches;
 *         liquids by flash point < 60C; gases by flash point, H220/H221,
 *         or fuel-gas keyword. Solids and unknown states never ignitable.
 *   D002: liquids only. Single pH corrosive at <= 2.0 or >= 12.5; a pH
 *         range is treated conservatively - any overlap with a corrosive
 *         band triggers the code.
 *   D003: reactive keyword in product text, or any GHS statement in the
 *         H240-H252 instability band.
 *
 * Every branch, including every "code does not apply" branch, emits one
 * reasoning entry naming the values compared. Missing data skips the
 * rule with an explicit entry; malformed data is reported as invalid,
 * not absent.
 */

// Regulatory thresholds (40 CFR 261.21, 261.22).
const (
	ignitableFlashPointC  = 60.0
	corrosivePHLow        = 2.0
	corrosivePHHigh       = 12.5
	dotFlashPointPGIIMaxC = 23.0
)

// classifyCharacteristics evaluates D001, D002, and D003 for the product
// and records codes and reasoning on the builder.
func classifyCharacteristics(p *types.Product, b *resultBuilder) {
	evaluateIgnitability(p, b)
	evaluateCorrosivity(p, b)
	evaluateReactivity(p, b)
}

func evaluateIgnitability(p *types.Product, b *resultBuilder) {
	text := productText(p)

	switch p.PhysicalState {
	case types.StateAerosol:
		if kw, ok := isNonflammableGas(text); ok {
			b.rejectCharacteristic(fmt.Sprintf("No D001: aerosol propellant matched non-flammable gas keyword %q", kw))
			return
		}
		b.addCharacteristicCode("D001", "D001: aerosol products are ignitable unless the propellant is a non-flammable gas")

	case types.StateLiquid:
		fp, ok := p.FlashPoint.CelsiusValue()
		if !ok {
			b.rejectCharacteristic("No D001 evaluation: flash point not provided")
			return
		}
		if fp < ignitableFlashPointC {
			b.addCharacteristicCode("D001", fmt.Sprintf("D001: flash point %.1f°C < %.0f°C", fp, ignitableFlashPointC))
			return
		}
		b.rejectCharacteristic(fmt.Sprintf("No D001: flash point %.1f°C ≥ %.0f°C", fp, ignitableFlashPointC))

	case types.StateGas:
		if fp, ok := p.FlashPoint.CelsiusValue(); ok && fp < ignitableFlashPointC {
			b.addCharacteristicCode("D001", fmt.Sprintf("D001: gas with flash point %.1f°C < %.0f°C", fp, ignitableFlashPointC))
			return
		}
		for _, h := range []string{"H220", "H221"} {
			if p.HasHazardStatement(h) {
				b.addCharacteristicCode("D001", fmt.Sprintf("D001: flammable gas hazard statement %s present", h))
				return
			}
		}
		if kw, ok := isFuelGas(text); ok {
			b.addCharacteristicCode("D001", fmt.Sprintf("D001: fuel gas keyword %q present", kw))
			return
		}
		b.rejectCharacteristic("No D001: gas without flash point below 60°C, H220/H221 statement, or fuel gas keyword")

	default:
		b.rejectCharacteristic(fmt.Sprintf("No D001: physical state %q is not eligible for ignitability", p.PhysicalState))
	}
}

func evaluateCorrosivity(p *types.Product, b *resultBuilder) {
	if p.PhysicalState != types.StateLiquid {
		b.rejectCharacteristic(fmt.Sprintf("No D002: corrosivity applies only to liquids (physical state %q)", p.PhysicalState))
		return
	}
	ph := p.PH
	switch {
	case ph == nil:
		b.rejectCharacteristic("No D002 evaluation: pH not provided")
	case ph.Invalid:
		b.rejectCharacteristic(fmt.Sprintf("No D002: pH value %q could not be parsed (treated as missing)", ph.Raw))
	case ph.IsRange():
		// Conservative range policy: any overlap with a corrosive band
		// triggers D002.
		if ph.Min <= corrosivePHLow {
			b.addCharacteristicCode("D002", fmt.Sprintf("D002: pH range %g-%g overlaps acidic corrosive band (minimum %g ≤ %g)", ph.Min, ph.Max, ph.Min, corrosivePHLow))
		} else if ph.Max >= corrosivePHHigh {
			b.addCharacteristicCode("D002", fmt.Sprintf("D002: pH range %g-%g overlaps alkaline corrosive band (maximum %g ≥ %g)", ph.Min, ph.Max, ph.Max, corrosivePHHigh))
		} else {
			b.rejectCharacteristic(fmt.Sprintf("No D002: pH range %g-%g within %g-%g", ph.Min, ph.Max, corrosivePHLow, corrosivePHHigh))
		}
	default:
		switch {
		case ph.Min <= corrosivePHLow:
			b.addCharacteristicCode("D002", fmt.Sprintf("D002: pH %g ≤ %g", ph.Min, corrosivePHLow))
		case ph.Min >= corrosivePHHigh:
			b.addCharacteristicCode("D002", fmt.Sprintf("D002: pH %g ≥ %g", ph.Min, corrosivePHHigh))
		default:
			b.rejectCharacteristic(fmt.Sprintf("No D002: pH %g within %g-%g", ph.Min, corrosivePHLow, corrosivePHHigh))
		}
	}
}

func evaluateReactivity(p *types.Product, b *resultBuilder) {
	if kw, ok := hasReactiveKeyword(productText(p)); ok {
		b.addCharacteristicCode("D003", fmt.Sprintf("D003: reactive keyword %q present", kw))
		return
	}
	if h, ok := instabilityStatement(p); ok {
		b.addCharacteristicCode("D003", fmt.Sprintf("D003: instability hazard statement %s present", h))
		return
	}
	b.rejectCharacteristic("No D003: no reactivity keywords or H240-H252 statements")
}

// instabilityStatement returns the first GHS statement in the H240-H252
// instability band, if any.
func instabilityStatement(p *types.Product) (string, bool) {
	for _, h := range p.HazardStatements {
		code := strings.ToUpper(strings.TrimSpace(h))
		if !strings.HasPrefix(code, "H") || len(code) < 4 {
			continue
		}
		n, err := strconv.Atoi(code[1:4])
		if err != nil {
			continue
		}
		if n >= 240 && n <= 252 {
			return code, true
		}
	}
	return "", false
}
