// Package types provides domain models shared across classification components.
//
// Classification inputs (Product, CompositionComponent) arrive from the
// out-of-scope extraction stage already normalized: physical state as an
// enum, flash point in Celsius/Fahrenheit, pH numeric or a numeric range.
// Malformed values are preserved as invalid rather than dropped so the
// reasoning trail can distinguish "invalid" from "absent".
package types

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PhysicalState is the normalized physical state of a product.
type PhysicalState string

const (
	StateLiquid  PhysicalState = "liquid"
	StateSolid   PhysicalState = "solid"
	StateGas     PhysicalState = "gas"
	StateAerosol PhysicalState = "aerosol"
	StateUnknown PhysicalState = "unknown"
)

// ParsePhysicalState normalizes a free-form state string to an enum value.
// "liquefied gas" and similar compressed-gas phrasings map to gas.
// Unrecognized input maps to unknown, never an error.
func ParsePhysicalState(s string) PhysicalState {
	switch v := strings.ToLower(strings.TrimSpace(s)); {
	case v == "liquid":
		return StateLiquid
	case v == "solid", v == "powder", v == "granular":
		return StateSolid
	case strings.Contains(v, "aerosol"):
		return StateAerosol
	case v == "gas", strings.Contains(v, "liquefied gas"), strings.Contains(v, "compressed gas"):
		return StateGas
	default:
		return StateUnknown
	}
}

// UnmarshalJSON normalizes free-form state strings through
// ParsePhysicalState so SDS phrasings like "liquefied gas" land on the
// enum.
func (s *PhysicalState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParsePhysicalState(raw)
	return nil
}

// FlashPoint holds a flash point in both scales. Celsius is authoritative;
// when only Fahrenheit is supplied Celsius is derived on access.
type FlashPoint struct {
	Celsius    *float64 `json:"celsius,omitempty"`
	Fahrenheit *float64 `json:"fahrenheit,omitempty"`
}

// CelsiusValue returns the flash point in Celsius, deriving it from
// Fahrenheit when Celsius is absent. The second return is false when
// neither scale is present.
func (f *FlashPoint) CelsiusValue() (float64, bool) {
	if f == nil {
		return 0, false
	}
	if f.Celsius != nil {
		return *f.Celsius, true
	}
	if f.Fahrenheit != nil {
		return (*f.Fahrenheit - 32) * 5 / 9, true
	}
	return 0, false
}

// PH holds a pH value or range. Single values carry Min == Max.
// Invalid is set when the source text could not be parsed; the raw text
// is kept so reasoning can cite it.
type PH struct {
	Min     float64
	Max     float64
	Invalid bool
	Raw     string
}

// IsRange reports whether the pH spans more than a single value.
func (p *PH) IsRange() bool {
	return p != nil && !p.Invalid && p.Min != p.Max
}

var rangePattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParsePH parses a textual pH: a single number ("2.5") or a range
// ("2.1-12.4", "2 to 12"). Unparseable text yields an Invalid PH, never
// an error, so classification can proceed with a reasoning entry.
func ParsePH(raw string) *PH {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &PH{Min: v, Max: v, Raw: raw}
	}
	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			if lo > hi {
				lo, hi = hi, lo
			}
			return &PH{Min: lo, Max: hi, Raw: raw}
		}
	}
	return &PH{Invalid: true, Raw: raw}
}

// UnmarshalJSON accepts a JSON number, a "min-max" string, or an object
// with min/max fields. Malformed input marks the PH invalid instead of
// failing the whole Product decode.
func (p *PH) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		p.Min, p.Max, p.Raw = num, num, string(data)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed := ParsePH(s); parsed != nil {
			*p = *parsed
		} else {
			*p = PH{Invalid: true, Raw: s}
		}
		return nil
	}
	var obj struct {
		Min *float64 `json:"min"`
		Max *float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Min != nil && obj.Max != nil {
		lo, hi := *obj.Min, *obj.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		p.Min, p.Max, p.Raw = lo, hi, string(data)
		return nil
	}
	*p = PH{Invalid: true, Raw: string(data)}
	return nil
}

// MarshalJSON emits a number for single values and a "min-max" string
// for ranges. Invalid values round-trip their raw text.
func (p PH) MarshalJSON() ([]byte, error) {
	if p.Invalid {
		return json.Marshal(p.Raw)
	}
	if p.Min == p.Max {
		return json.Marshal(p.Min)
	}
	return json.Marshal(fmt.Sprintf("%g-%g", p.Min, p.Max))
}

// Percentage holds a constituent concentration as a value or min-max
// range, in percent by weight.
type Percentage struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UnmarshalJSON accepts a number, a "min-max" string, or a min/max object.
func (pc *Percentage) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		pc.Min, pc.Max = num, num
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if m := rangePattern.FindStringSubmatch(s); m != nil {
			lo, _ := strconv.ParseFloat(m[1], 64)
			hi, _ := strconv.ParseFloat(m[2], 64)
			if lo > hi {
				lo, hi = hi, lo
			}
			pc.Min, pc.Max = lo, hi
			return nil
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			pc.Min, pc.Max = v, v
			return nil
		}
		return fmt.Errorf("percentage %q: %w", s, ErrInvalidPercentage)
	}
	var obj struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("percentage: %w", ErrInvalidPercentage)
	}
	pc.Min, pc.Max = obj.Min, obj.Max
	return nil
}

var casPattern = regexp.MustCompile(`^(\d{2,7})-(\d{2})-(\d)$`)

// ValidCAS reports whether s is a well-formed CAS registry number with a
// correct check digit. The check digit is the weighted sum of the
// preceding digits mod 10, rightmost non-check digit weighted 1.
func ValidCAS(s string) bool {
	m := casPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	digits := m[1] + m[2]
	sum := 0
	for i := 0; i < len(digits); i++ {
		weight := len(digits) - i
		sum += weight * int(digits[i]-'0')
	}
	return sum%10 == int(m[3][0]-'0')
}

// CompositionComponent is one constituent of a product's composition.
type CompositionComponent struct {
	Name       string      `json:"name"`
	CASNumber  string      `json:"casNumber,omitempty"`
	Percentage *Percentage `json:"percentage,omitempty"`
}

// Product is the classification input. Instances are transient: built per
// request, never mutated by the engine after construction.
type Product struct {
	ProductName        string                 `json:"productName"`
	PhysicalState      PhysicalState          `json:"physicalState"`
	FlashPoint         *FlashPoint            `json:"flashPoint,omitempty"`
	PH                 *PH                    `json:"pH,omitempty"`
	Composition        []CompositionComponent `json:"composition,omitempty"`
	HazardStatements   []string               `json:"hazardStatements,omitempty"`
	UNNumber           string                 `json:"unNumber,omitempty"`
	ProperShippingName string                 `json:"properShippingName,omitempty"`
}

// HasHazardStatement reports whether the product carries the given GHS
// H-code. Matching is case-insensitive.
func (p *Product) HasHazardStatement(code string) bool {
	for _, h := range p.HazardStatements {
		if strings.EqualFold(strings.TrimSpace(h), code) {
			return true
		}
	}
	return false
}
