package types

import "errors"

// Sentinel errors for classification operations. Bad SDS data never
// produces an error: missing or malformed fields skip the relevant rule
// with a reasoning entry instead. These sentinels cover programmer-level
// misuse and boundary validation only.
var (
	// ErrNilProduct indicates a nil Product was passed to a classifier.
	ErrNilProduct = errors.New("product cannot be nil")

	// ErrInvalidPercentage indicates a percentage could not be parsed.
	ErrInvalidPercentage = errors.New("invalid percentage value")

	// ErrInvalidCAS indicates a CAS number fails format or checksum validation.
	ErrInvalidCAS = errors.New("invalid CAS registry number")

	// ErrEmptyBatch indicates a lab pack plan was requested for no materials.
	ErrEmptyBatch = errors.New("no materials provided for lab pack planning")
)
