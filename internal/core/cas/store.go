package cas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unboxed-hq/hazwaste/internal/core/db"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

// Store is the database-backed Lookup implementation over the chemicals
// reference table.
type Store struct {
	queries *db.Queries
}

// NewStore creates a Store over loaded named queries.
func NewStore(queries *db.Queries) (*Store, error) {
	if queries == nil {
		return nil, fmt.Errorf("queries cannot be nil")
	}
	return &Store{queries: queries}, nil
}

// Lookup returns the reference row for a CAS number, or (nil, nil) when
// the chemical is not in the dictionary.
func (s *Store) Lookup(ctx context.Context, casNumber string) (*Chemical, error) {
	var chem Chemical
	err := s.queries.Get(ctx, "get-chemical", &chem, casNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", casNumber, err)
	}
	return &chem, nil
}

// Upsert inserts or replaces a reference row. Used by dictionary update
// tooling, never by the classification path.
func (s *Store) Upsert(ctx context.Context, chem *Chemical) error {
	if chem == nil {
		return fmt.Errorf("chemical cannot be nil")
	}
	if !types.ValidCAS(chem.CASNumber) {
		return fmt.Errorf("%q: %w", chem.CASNumber, types.ErrInvalidCAS)
	}
	_, err := s.queries.Exec(ctx, "upsert-chemical",
		chem.CASNumber, chem.Name, chem.Ignitable, chem.Corrosive,
		chem.FlashPointC, chem.PH, chem.UNNumber, chem.ProperShippingName, chem.HazardClass)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", chem.CASNumber, err)
	}
	return nil
}

// List returns up to limit dictionary rows ordered by CAS number.
func (s *Store) List(ctx context.Context, limit int) ([]Chemical, error) {
	var chems []Chemical
	if err := s.queries.Select(ctx, "list-chemicals", &chems, limit); err != nil {
		return nil, fmt.Errorf("list chemicals: %w", err)
	}
	return chems, nil
}

// Count returns the number of dictionary rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.queries.Get(ctx, "count-chemicals", &n); err != nil {
		return 0, err
	}
	return n, nil
}
