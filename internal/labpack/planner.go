// internal/labpack/planner.go
package labpack

import (
	"fmt"
	"log/slog"

	"github.com/unboxed-hq/hazwaste/internal/engine"
	"github.com/unboxed-hq/hazwaste/internal/regdata"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

/*
 * Segregation planner.
 *
 * Groups a batch of materials by compatibility category, then walks the
 * fixed safety-priority category order emitting one assignment per
 * populated category. Container numbering follows that walk, so the
 * iteration order is part of the observable output and must stay
 * deterministic; materials keep their input order within a group.
 *
 * Materials the cascade cannot categorize are collected for manual
 * review, never silently defaulted into a container.
 *
 * Known limitation: no finer pairwise subdivision happens within a
 * category; a category's internal incompatibilities (none in the current
 * definition table) would require splitting the group.
 */

// nominalGallonsPerMaterial sizes the volume estimate; lab-pack inner
// containers are assumed at one gallon nominal each.
const nominalGallonsPerMaterial = 1

// Planner generates lab pack assignments for batches of materials.
// The zero value is not usable; construct with NewPlanner.
type Planner struct {
	logger *slog.Logger
}

// NewPlanner creates a planner. A nil logger falls back to slog.Default.
func NewPlanner(logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{logger: logger}
}

// Plan classifies and categorizes each material, then emits one
// assignment per populated category in safety-priority order.
func (pl *Planner) Plan(materials []*types.Product) (*types.LabPackPlan, error) {
	if len(materials) == 0 {
		return nil, types.ErrEmptyBatch
	}

	type member struct {
		product  *types.Product
		category types.LabPackCategory
	}
	groups := make(map[types.Category][]member)
	plan := &types.LabPackPlan{}

	for _, m := range materials {
		result, err := engine.Classify(m, engine.WithLogger(pl.logger))
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", m.ProductName, err)
		}
		cat, ok := Categorize(m, result)
		if !ok {
			pl.logger.Warn("material requires manual review",
				"product", m.ProductName,
				"physical_state", m.PhysicalState)
			plan.Unpackable = append(plan.Unpackable, *m)
			continue
		}
		groups[cat.PrimaryCategory] = append(groups[cat.PrimaryCategory], member{product: m, category: cat})
	}

	number := 0
	for _, name := range regdata.CategoryOrder() {
		category := types.Category(name)
		members, ok := groups[category]
		if !ok {
			continue
		}
		number++

		def, _ := regdata.Category(name)
		assignment := types.LabPackAssignment{
			AssignmentID:     types.NewAssignmentID(),
			AssignmentNumber: number,
			Category:         category,
			ContainerLabel:   fmt.Sprintf("Lab Pack %d: %s", number, name),
			SafetyLevel:      types.SegregationLevel(def.SegregationLevel),
			SpecialHandling:  append([]string(nil), def.SpecialHandling...),
			DOTClass:         def.DOTClass,
			EstimatedVolume:  fmt.Sprintf("%d gal nominal (%d containers)", len(members)*nominalGallonsPerMaterial, len(members)),
		}

		isolated := false
		for _, m := range members {
			assignment.Materials = append(assignment.Materials, m.product.ProductName)
			for _, reason := range m.category.Reasoning {
				assignment.Reasoning = append(assignment.Reasoning,
					fmt.Sprintf("%s: %s", m.product.ProductName, reason))
			}
			if m.category.RequiresIsolation() {
				isolated = true
			}
		}
		if isolated {
			assignment.SpecialHandling = append(assignment.SpecialHandling,
				"Mandatory separate packaging: incompatible with all other categories")
		}

		plan.LabPacks = append(plan.LabPacks, assignment)
	}

	return plan, nil
}
