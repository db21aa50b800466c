package cas

import "context"

// MemoryLookup is an in-memory Lookup for tests and offline use.
type MemoryLookup map[string]Chemical

// Lookup implements Lookup over the map. Misses return (nil, nil).
func (m MemoryLookup) Lookup(_ context.Context, casNumber string) (*Chemical, error) {
	if chem, ok := m[casNumber]; ok {
		c := chem
		return &c, nil
	}
	return nil, nil
}
