// internal/engine/orchestrate.go
package engine

/*
 * Classification orchestrator.
 *
 * Pure function: Product -> ClassificationResult. Stage order is fixed:
 *
 *   1. Listed waste matcher (P/U codes, petroleum flag, F/K advisories)
 *   2. Characteristic classifier (D001/D002/D003)
 *   3. State classification resolver (level + form rule tables)
 *   4. DOT shipping classifier
 *
 * Stages communicate only through the accumulating result builder. The
 * builder keeps characteristic and listed contributions in separate
 * segments and assembles them D-codes-first at finalization, so D-codes
 * precede listed codes in both the code list and the reasoning trail
 * even though the listed matcher runs first.
 *
 * The orchestrator never fails on bad data: the all-missing-data case
 * yields a default non-hazardous result with explicit reasoning.
 */

import (
	"log/slog"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

// Option adjusts a single classification call.
type Option func(*resultBuilder)

// WithUnknownChemicals attaches CAS numbers that an upstream enrichment
// pass failed to resolve. They surface on the result for dictionary
// expansion; classification proceeds without them.
func WithUnknownChemicals(cas []string) Option {
	return func(b *resultBuilder) {
		b.unknown = append(b.unknown, cas...)
	}
}

// WithLogger injects a logger for non-fatal classification events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *resultBuilder) {
		b.logger = logger
	}
}

// Classify runs the full classification pipeline over one product.
// The only error condition is a nil product; data problems are absorbed
// into the reasoning trail per the no-throw contract.
func Classify(p *types.Product, opts ...Option) (*types.ClassificationResult, error) {
	if p == nil {
		return nil, types.ErrNilProduct
	}

	b := newResultBuilder(p)
	for _, opt := range opts {
		opt(b)
	}

	classifyListed(p, b)
	classifyCharacteristics(p, b)
	resolveState(p, b)
	classifyDOT(p, b)

	return b.finalize(), nil
}

// resultBuilder accumulates stage outputs in segments so final ordering
// invariants (D-codes before listed codes, matching reasoning order) are
// structural rather than maintained by insertion gymnastics.
type resultBuilder struct {
	product *types.Product
	logger  *slog.Logger

	characteristicCodes   []string
	listedCodes           []string
	characteristicReasons []string
	listedReasons         []string
	stateReasons          []string
	dotReasons            []string

	level     types.StateClassification
	formCode  string
	dot       types.DOTClassification
	suggested []string
	unknown   []string
	petroleum bool
}

func newResultBuilder(p *types.Product) *resultBuilder {
	return &resultBuilder{product: p, logger: slog.Default()}
}

// addCharacteristicCode records a D-code with its justification.
// Duplicates are ignored.
func (b *resultBuilder) addCharacteristicCode(code, reason string) {
	if !contains(b.characteristicCodes, code) {
		b.characteristicCodes = append(b.characteristicCodes, code)
	}
	b.characteristicReasons = append(b.characteristicReasons, reason)
}

// rejectCharacteristic records the reasoning entry for a characteristic
// rule that explicitly did not apply.
func (b *resultBuilder) rejectCharacteristic(reason string) {
	b.characteristicReasons = append(b.characteristicReasons, reason)
}

// addListedCode records a P/U code with its justification. Duplicates
// (the same chemical in multiple constituents) are ignored.
func (b *resultBuilder) addListedCode(code, reason string) {
	if contains(b.listedCodes, code) || contains(b.characteristicCodes, code) {
		return
	}
	b.listedCodes = append(b.listedCodes, code)
	b.listedReasons = append(b.listedReasons, reason)
}

// noteListed records listed-matcher reasoning that carries no code
// (invalid CAS, advisory context).
func (b *resultBuilder) noteListed(reason string) {
	b.listedReasons = append(b.listedReasons, reason)
}

func (b *resultBuilder) setPetroleumBased(reason string) {
	b.petroleum = true
	b.listedReasons = append(b.listedReasons, reason)
}

func (b *resultBuilder) addSuggestedCode(code, reason string) {
	if contains(b.suggested, code) {
		return
	}
	b.suggested = append(b.suggested, code)
	b.listedReasons = append(b.listedReasons, reason)
}

func (b *resultBuilder) setState(level types.StateClassification, form, levelReason, formReason string) {
	b.level = level
	b.formCode = form
	b.stateReasons = append(b.stateReasons, levelReason, formReason)
}

func (b *resultBuilder) setDOT(dot types.DOTClassification, reason string) {
	b.dot = dot
	b.dotReasons = append(b.dotReasons, reason)
}

// federalCodes returns the aggregated federal codes in final order:
// characteristic D-codes first, then listed codes.
func (b *resultBuilder) federalCodes() []string {
	codes := make([]string, 0, len(b.characteristicCodes)+len(b.listedCodes))
	codes = append(codes, b.characteristicCodes...)
	codes = append(codes, b.listedCodes...)
	return codes
}

// finalize assembles the immutable result. Reasoning segments are
// concatenated characteristic-first so D-code justifications lead the
// trail; the trail is never empty.
func (b *resultBuilder) finalize() *types.ClassificationResult {
	codes := b.federalCodes()

	reasoning := make([]string, 0,
		len(b.characteristicReasons)+len(b.listedReasons)+len(b.stateReasons)+len(b.dotReasons))
	reasoning = append(reasoning, b.characteristicReasons...)
	reasoning = append(reasoning, b.listedReasons...)
	reasoning = append(reasoning, b.stateReasons...)
	reasoning = append(reasoning, b.dotReasons...)
	if len(reasoning) == 0 {
		reasoning = append(reasoning, "No hazard indicators present; default non-hazardous classification")
	}

	final := types.FinalNonHazardous
	if len(codes) > 0 {
		final = types.FinalHazardous
	}

	if len(b.unknown) > 0 {
		b.logger.Warn("classification proceeded with unknown chemicals",
			"product", b.product.ProductName,
			"unknown_cas", b.unknown)
	}

	return &types.ClassificationResult{
		ProductName:             b.product.ProductName,
		FederalCodes:            codes,
		StateFormCode:           b.formCode,
		StateClassification:     b.level,
		StateCodes:              types.DeriveStateCodes(b.formCode, b.level),
		FinalClassification:     final,
		SuggestedUsedWasteCodes: b.suggested,
		DOT:                     b.dot,
		Reasoning:               reasoning,
		UnknownChemicals:        b.unknown,
		PetroleumBased:          b.petroleum,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
