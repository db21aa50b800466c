// Package cas provides the CAS registry lookup collaborator: given a
// CAS number, return known hazard characteristics for that chemical.
// Pure lookup, no mutation of the classification path.
//
// The classification engine tolerates unknown chemicals: a lookup miss
// is (nil, nil), never an error, and the enrichment pass collects the
// misses for dictionary expansion.
package cas

import "context"

// Chemical is one row of the chemical reference dictionary.
type Chemical struct {
	CASNumber          string   `db:"cas_number" json:"casNumber"`
	Name               string   `db:"name" json:"name"`
	Ignitable          bool     `db:"ignitable" json:"ignitable"`
	Corrosive          bool     `db:"corrosive" json:"corrosive"`
	FlashPointC        *float64 `db:"flash_point_c" json:"flashPointC,omitempty"`
	PH                 *float64 `db:"ph" json:"pH,omitempty"`
	UNNumber           string   `db:"un_number" json:"unNumber,omitempty"`
	ProperShippingName string   `db:"proper_shipping_name" json:"properShippingName,omitempty"`
	HazardClass        string   `db:"hazard_class" json:"hazardClass,omitempty"`
}

// Lookup resolves CAS numbers to known hazard characteristics.
// A miss returns (nil, nil); errors are reserved for infrastructure
// failures (database unavailable), never for unknown chemicals.
type Lookup interface {
	Lookup(ctx context.Context, casNumber string) (*Chemical, error)
}
