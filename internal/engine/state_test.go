// internal/engine/state_test.go
package engine

import (
	"testing"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

func TestState_FederalCodesForceH(t *testing.T) {
	p := &types.Product{
		ProductName:   "Sample",
		PhysicalState: types.StateLiquid,
		FlashPoint:    &types.FlashPoint{Celsius: fptr(10)},
	}
	result, err := Classify(p)
	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if result.StateClassification != types.StateClassHazardous {
		t.Errorf("StateClassification = %v, want H", result.StateClassification)
	}
}

func TestState_LevelRules(t *testing.T) {
	tests := []struct {
		name      string
		product   types.Product
		wantLevel types.StateClassification
	}{
		{
			"caustic keyword yields 1",
			types.Product{ProductName: "Sodium Hydroxide Solution 5%", PhysicalState: types.StateLiquid, PH: &types.PH{Min: 11, Max: 11}},
			types.StateClass1,
		},
		{
			"petroleum yields 1",
			types.Product{ProductName: "Motor Oil", PhysicalState: types.StateLiquid},
			types.StateClass1,
		},
		{
			"hazard keyword yields 1",
			types.Product{ProductName: "Poison Bait Pellets", PhysicalState: types.StateSolid},
			types.StateClass1,
		},
		{
			"industrial keyword yields 2",
			types.Product{ProductName: "Contaminated Rags", PhysicalState: types.StateSolid},
			types.StateClass2,
		},
		{
			"default yields 2",
			types.Product{ProductName: "Floor Sweepings", PhysicalState: types.StateSolid},
			types.StateClass2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Classify(&tt.product)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if len(result.FederalCodes) != 0 {
				t.Fatalf("FederalCodes = %v, want none for level rule test", result.FederalCodes)
			}
			if result.StateClassification != tt.wantLevel {
				t.Errorf("StateClassification = %v, want %v", result.StateClassification, tt.wantLevel)
			}
		})
	}
}

func TestState_FormRules(t *testing.T) {
	tests := []struct {
		name     string
		product  types.Product
		wantForm string
	}{
		{
			"aerosol form 208",
			types.Product{ProductName: "Air Freshener", PhysicalState: types.StateAerosol},
			"208",
		},
		{
			"organic solvent form 203",
			types.Product{ProductName: "Lacquer Thinner", PhysicalState: types.StateLiquid},
			"203",
		},
		{
			"solid form 204",
			types.Product{ProductName: "Floor Sweepings", PhysicalState: types.StateSolid},
			"204",
		},
		{
			"acidic liquid form 105",
			types.Product{ProductName: "Pickling Bath", PhysicalState: types.StateLiquid, PH: &types.PH{Min: 1.5, Max: 1.5}},
			"105",
		},
		{
			"alkaline liquid form 106",
			types.Product{ProductName: "Etching Bath", PhysicalState: types.StateLiquid, PH: &types.PH{Min: 13, Max: 13}},
			"106",
		},
		{
			"petroleum form 202",
			types.Product{ProductName: "Diesel Mixture", PhysicalState: types.StateLiquid},
			"202",
		},
		{
			"default form 102",
			types.Product{ProductName: "Unknown Mixture", PhysicalState: types.StateLiquid},
			"102",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Classify(&tt.product)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if result.StateFormCode != tt.wantForm {
				t.Errorf("StateFormCode = %v, want %v", result.StateFormCode, tt.wantForm)
			}
		})
	}
}

func TestState_CodesAlwaysDerived(t *testing.T) {
	products := []*types.Product{
		{ProductName: "Motor Oil", PhysicalState: types.StateLiquid},
		{ProductName: "Sample", PhysicalState: types.StateLiquid, FlashPoint: &types.FlashPoint{Celsius: fptr(10)}},
		{ProductName: "Floor Sweepings", PhysicalState: types.StateSolid},
		{},
	}

	for _, p := range products {
		result, err := Classify(p)
		if err != nil {
			t.Fatalf("Classify() error = %v, want nil", err)
		}
		want := types.DeriveStateCodes(result.StateFormCode, result.StateClassification)
		if result.StateCodes != want {
			t.Errorf("StateCodes = %q, want derived %q", result.StateCodes, want)
		}
	}
}

func TestState_Level3NeverAssigned(t *testing.T) {
	// Level 3 is reserved for construction debris; no resolver rule
	// produces it even for debris-looking inputs.
	p := &types.Product{ProductName: "Construction Debris", PhysicalState: types.StateSolid}
	result, err := Classify(p)
	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if result.StateClassification == types.StateClass3 {
		t.Error("StateClassification = 3, reserved level must never be assigned")
	}
}
