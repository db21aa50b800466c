// internal/engine/dot_test.go
package engine

import (
	"testing"

	"github.com/unboxed-hq/hazwaste/internal/types"
)

func TestDOT_Ignitable(t *testing.T) {
	tests := []struct {
		name   string
		flashC float64
		wantPG string
	}{
		{"volatile liquid PG II", -17, "II"},
		{"below 23C PG II", 20, "II"},
		{"23C and above PG III", 23, "III"},
		{"higher flash point PG III", 45, "III"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &types.Product{
				ProductName:   "Sample",
				PhysicalState: types.StateLiquid,
				FlashPoint:    &types.FlashPoint{Celsius: fptr(tt.flashC)},
			}
			result, err := Classify(p)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if result.DOT.UNNumber != "UN1993" || result.DOT.HazardClass != "3" {
				t.Errorf("DOT = %+v, want UN1993 Class 3", result.DOT)
			}
			if result.DOT.PackingGroup != tt.wantPG {
				t.Errorf("PackingGroup = %v, want %v", result.DOT.PackingGroup, tt.wantPG)
			}
		})
	}
}

func TestDOT_Corrosive(t *testing.T) {
	tests := []struct {
		name   string
		ph     float64
		wantPG string
	}{
		{"extreme acid PG I", 0.5, "I"},
		{"extreme base PG I", 13.5, "I"},
		{"ordinary corrosive PG II", 1.5, "II"},
		{"alkaline corrosive PG II", 12.8, "II"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &types.Product{
				ProductName:   "Sample",
				PhysicalState: types.StateLiquid,
				PH:            &types.PH{Min: tt.ph, Max: tt.ph},
			}
			result, err := Classify(p)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if result.DOT.UNNumber != "UN1760" || result.DOT.HazardClass != "8" {
				t.Errorf("DOT = %+v, want UN1760 Class 8", result.DOT)
			}
			if result.DOT.PackingGroup != tt.wantPG {
				t.Errorf("PackingGroup = %v, want %v (pH %v)", result.DOT.PackingGroup, tt.wantPG, tt.ph)
			}
		})
	}
}

func TestDOT_IgnitableWinsOverCorrosive(t *testing.T) {
	// D001 and D002 both present: the table evaluates ignitable first.
	p := &types.Product{
		ProductName:   "Sample",
		PhysicalState: types.StateLiquid,
		FlashPoint:    &types.FlashPoint{Celsius: fptr(10)},
		PH:            &types.PH{Min: 1, Max: 1},
	}
	result, err := Classify(p)
	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if result.DOT.UNNumber != "UN1993" {
		t.Errorf("DOT.UNNumber = %v, want UN1993 (ignitable priority)", result.DOT.UNNumber)
	}
}

func TestDOT_ListedCodes(t *testing.T) {
	tests := []struct {
		name    string
		cas     string
		chem    string
		wantUN  string
		wantpg  string
		wantCls string
	}{
		{"P-code PG I", "57-24-9", "Strychnine", "UN2810", "I", "6.1"},
		{"U-code PG III", "127-18-4", "Tetrachloroethylene", "UN2810", "III", "6.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &types.Product{
				ProductName:   "Sample",
				PhysicalState: types.StateSolid,
				Composition:   []types.CompositionComponent{{Name: tt.chem, CASNumber: tt.cas}},
			}
			result, err := Classify(p)
			if err != nil {
				t.Fatalf("Classify() error = %v, want nil", err)
			}
			if result.DOT.UNNumber != tt.wantUN || result.DOT.HazardClass != tt.wantCls || result.DOT.PackingGroup != tt.wantpg {
				t.Errorf("DOT = %+v, want %s Class %s PG %s", result.DOT, tt.wantUN, tt.wantCls, tt.wantpg)
			}
		})
	}
}

func TestDOT_NonRegulated(t *testing.T) {
	p := &types.Product{ProductName: "Floor Sweepings", PhysicalState: types.StateSolid}
	result, err := Classify(p)
	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if result.DOT != types.NonRegulatedDOT {
		t.Errorf("DOT = %+v, want non-regulated profile", result.DOT)
	}
}

func TestDOT_SDSIdentifiersRetained(t *testing.T) {
	p := &types.Product{
		ProductName:        "Sample",
		PhysicalState:      types.StateLiquid,
		FlashPoint:         &types.FlashPoint{Celsius: fptr(10)},
		UNNumber:           "UN1263",
		ProperShippingName: "Paint",
	}
	result, err := Classify(p)
	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if result.DOT.UNNumber != "UN1263" {
		t.Errorf("DOT.UNNumber = %v, want SDS-provided UN1263", result.DOT.UNNumber)
	}
	if result.DOT.ProperShippingName != "Paint" {
		t.Errorf("DOT.ProperShippingName = %v, want Paint", result.DOT.ProperShippingName)
	}
	if result.DOT.HazardClass != "3" {
		t.Errorf("DOT.HazardClass = %v, derived class must survive the SDS override", result.DOT.HazardClass)
	}
}
