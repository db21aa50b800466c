package types

import "fmt"

// StateClassification is the state hazard level assigned by the resolver.
// Level 3 is reserved (construction debris) and is never assigned by the
// default resolver path.
type StateClassification string

const (
	StateClassHazardous StateClassification = "H"
	StateClass1         StateClassification = "1"
	StateClass2         StateClassification = "2"
	StateClass3         StateClassification = "3"
)

// FinalClassification is the overall hazardous / non-hazardous verdict.
// It is derived from the federal and state outcomes, never set directly.
type FinalClassification string

const (
	FinalHazardous    FinalClassification = "hazardous"
	FinalNonHazardous FinalClassification = "non-hazardous"
)

// DOTClassification is the transport profile derived from the aggregated
// federal result.
type DOTClassification struct {
	UNNumber           string `json:"unNumber"`
	HazardClass        string `json:"hazardClass"`
	ProperShippingName string `json:"properShippingName"`
	PackingGroup       string `json:"packingGroup,omitempty"`
}

// NonRegulatedDOT is the profile for products with no federal codes.
var NonRegulatedDOT = DOTClassification{
	UNNumber:           "None",
	HazardClass:        "Non-regulated",
	ProperShippingName: "Non-regulated material",
}

// ClassificationResult is the immutable output of one orchestrated
// classification. FederalCodes keeps each code at most once, with
// characteristic D-codes ordered before listed P/U codes. Reasoning is
// mandatory and never empty; every applied or explicitly rejected rule
// contributes exactly one entry.
type ClassificationResult struct {
	ProductName             string              `json:"productName"`
	FederalCodes            []string            `json:"federalCodes"`
	StateFormCode           string              `json:"stateFormCode"`
	StateClassification     StateClassification `json:"stateClassification"`
	StateCodes              string              `json:"stateCodes"`
	FinalClassification     FinalClassification `json:"finalClassification"`
	SuggestedUsedWasteCodes []string            `json:"suggestedUsedWasteCodes,omitempty"`
	DOT                     DOTClassification   `json:"dotClassification"`
	Reasoning               []string            `json:"reasoning"`
	UnknownChemicals        []string            `json:"unknownChemicals,omitempty"`
	PetroleumBased          bool                `json:"petroleumBased"`
}

// HasFederalCode reports whether the result carries the given waste code.
func (r *ClassificationResult) HasFederalCode(code string) bool {
	for _, c := range r.FederalCodes {
		if c == code {
			return true
		}
	}
	return false
}

// DeriveStateCodes returns the combined state code string. StateCodes is
// always this derivation, never independently mutated.
func DeriveStateCodes(formCode string, class StateClassification) string {
	return fmt.Sprintf("%s-%s", formCode, class)
}
