// internal/labpack/compat_test.go
package labpack

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/unboxed-hq/hazwaste/internal/regdata"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

func categoryByName(t *testing.T, name types.Category) types.LabPackCategory {
	t.Helper()
	cat := buildCategory(name, "", "test fixture")
	return cat
}

func TestCheckCompatibility_ExtremePairs(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Category
	}{
		{"aerosols vs flammable organics", types.CategoryAerosols, types.CategoryFlammableOrganic},
		{"aerosols vs non-hazardous solids", types.CategoryAerosols, types.CategoryNonHazSolid},
		{"two isolation categories", types.CategoryAerosols, types.CategoryOxidizingAcids},
		{"cyanides are extreme tier", types.CategoryCyanides, types.CategoryNonHazLiquid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckCompatibility(categoryByName(t, tt.a), categoryByName(t, tt.b))
			if result.Compatible {
				t.Error("Compatible = true, want false")
			}
			if result.Severity != types.SeverityExtreme {
				t.Errorf("Severity = %v, want EXTREME", result.Severity)
			}
			if result.Reason == "" {
				t.Error("Reason empty")
			}
		})
	}
}

func TestCheckCompatibility_HighPairs(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Category
	}{
		{"flammables vs oxidizers", types.CategoryFlammableOrganic, types.CategoryOxidizers},
		{"acids vs bases", types.CategoryAcidsCorrosive, types.CategoryBasesCaustic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckCompatibility(categoryByName(t, tt.a), categoryByName(t, tt.b))
			if result.Compatible {
				t.Error("Compatible = true, want false")
			}
			if result.Severity != types.SeverityHigh {
				t.Errorf("Severity = %v, want HIGH", result.Severity)
			}
		})
	}
}

func TestCheckCompatibility_CompatiblePair(t *testing.T) {
	result := CheckCompatibility(
		categoryByName(t, types.CategoryNonHazLiquid),
		categoryByName(t, types.CategoryNonHazSolid),
	)
	if !result.Compatible {
		t.Errorf("Compatible = false (%s), want true", result.Reason)
	}
	if result.Severity != types.SeverityNone {
		t.Errorf("Severity = %v, want NONE", result.Severity)
	}
}

func TestCheckCompatibility_SymmetryProperty(t *testing.T) {
	names := regdata.CategoryOrder()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("check is symmetric for every category pair", prop.ForAll(
		func(i, j int) bool {
			a := buildCategory(types.Category(names[i%len(names)]), "", "fixture")
			b := buildCategory(types.Category(names[j%len(names)]), "", "fixture")
			ab := CheckCompatibility(a, b)
			ba := CheckCompatibility(b, a)
			return reflect.DeepEqual(ab, ba)
		},
		gen.IntRange(0, len(names)-1),
		gen.IntRange(0, len(names)-1),
	))

	properties.Property("isolation category is never compatible with anything", prop.ForAll(
		func(i int) bool {
			iso := buildCategory(types.CategoryAerosols, "", "fixture")
			other := buildCategory(types.Category(names[i%len(names)]), "", "fixture")
			result := CheckCompatibility(iso, other)
			return !result.Compatible && result.Severity == types.SeverityExtreme
		},
		gen.IntRange(0, len(names)-1),
	))

	properties.TestingRun(t)
}

func TestCheckMaterials(t *testing.T) {
	aerosol := &types.Product{ProductName: "Spray Paint", PhysicalState: types.StateAerosol}
	solvent := &types.Product{
		ProductName:   "Acetone",
		PhysicalState: types.StateLiquid,
		FlashPoint:    &types.FlashPoint{Celsius: fptr(-17)},
	}

	result := CheckMaterials(aerosol, solvent)
	if result.Compatible {
		t.Error("Compatible = true, want false")
	}
	if result.Severity != types.SeverityExtreme {
		t.Errorf("Severity = %v, want EXTREME", result.Severity)
	}
}

func TestCheckMaterials_UnclassifiableNeedsReview(t *testing.T) {
	mystery := &types.Product{ProductName: "Mystery Drum", PhysicalState: types.StateUnknown}
	water := &types.Product{ProductName: "Rinse Water", PhysicalState: types.StateLiquid}

	result := CheckMaterials(mystery, water)
	if result.Compatible {
		t.Error("Compatible = true, want false for unclassifiable material")
	}
	if result.Severity != types.SeverityExtreme {
		t.Errorf("Severity = %v, want EXTREME", result.Severity)
	}
}
