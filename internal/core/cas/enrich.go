package cas

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Product enrichment.
 *
 * Before classification, fill gaps in a product record from the chemical
 * reference dictionary: flash point, pH, and DOT shipping identifiers
 * from the first constituent that resolves. Existing SDS values always
 * win; enrichment only supplies what is missing.
 *
 * Unknown CAS numbers are collected and returned, not raised: a lookup
 * miss means the dictionary needs a row, not that classification fails.
 */

// Enricher fills missing product attributes from the reference
// dictionary.
type Enricher struct {
	lookup Lookup
	logger *slog.Logger
}

// NewEnricher creates an Enricher. A nil logger falls back to
// slog.Default.
func NewEnricher(lookup Lookup, logger *slog.Logger) (*Enricher, error) {
	if lookup == nil {
		return nil, fmt.Errorf("lookup cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{lookup: lookup, logger: logger}, nil
}

// Enrich fills missing fields on the product in place and returns the
// CAS numbers that could not be resolved. Constituents without a valid
// CAS number are skipped silently; the engine reports those in its own
// reasoning trail.
func (e *Enricher) Enrich(ctx context.Context, p *types.Product) ([]string, error) {
	if p == nil {
		return nil, types.ErrNilProduct
	}

	var unknown []string
	for _, comp := range p.Composition {
		if !types.ValidCAS(comp.CASNumber) {
			continue
		}
		chem, err := e.lookup.Lookup(ctx, comp.CASNumber)
		if err != nil {
			return unknown, fmt.Errorf("enrich %q: %w", p.ProductName, err)
		}
		if chem == nil {
			e.logger.Info("unknown chemical",
				"cas", comp.CASNumber,
				"component", comp.Name,
				"product", p.ProductName)
			unknown = append(unknown, comp.CASNumber)
			continue
		}
		applyChemical(p, chem)
	}
	return unknown, nil
}

// applyChemical copies reference attributes onto the product where the
// product has none.
func applyChemical(p *types.Product, chem *Chemical) {
	if p.FlashPoint == nil && chem.FlashPointC != nil {
		c := *chem.FlashPointC
		p.FlashPoint = &types.FlashPoint{Celsius: &c}
	}
	if p.PH == nil && chem.PH != nil {
		p.PH = &types.PH{Min: *chem.PH, Max: *chem.PH}
	}
	if p.UNNumber == "" && chem.UNNumber != "" {
		p.UNNumber = chem.UNNumber
	}
	if p.ProperShippingName == "" && chem.ProperShippingName != "" {
		p.ProperShippingName = chem.ProperShippingName
	}
}
