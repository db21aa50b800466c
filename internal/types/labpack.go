package types

// Category identifies one of the fixed chemical-family compatibility
// categories used for lab-pack segregation.
type Category string

const (
	CategoryAerosols         Category = "aerosols"
	CategoryOxidizingAcids   Category = "oxidizing_acids"
	CategoryCyanides         Category = "cyanides"
	CategoryReactiveMetals   Category = "reactive_metals"
	CategoryFlammableOrganic Category = "flammable_organic"
	CategoryAcidsCorrosive   Category = "acids_corrosive"
	CategoryBasesCaustic     Category = "bases_caustic"
	CategoryOxidizers        Category = "oxidizers"
	CategoryToxics           Category = "toxics"
	CategoryCausticSolids    Category = "caustic_solids"
	CategoryNonHazLiquid     Category = "non_hazardous_liquid"
	CategoryNonHazSolid      Category = "non_hazardous_solid"
	CategoryUnknown          Category = "unknown"
)

// IncompatibleAll is the wildcard entry in an incompatibleWith set. A
// category carrying it may never share a container with any other
// category, including another wildcard category.
const IncompatibleAll = "ALL"

// SegregationLevel is the severity tier governing how strictly a material
// must be isolated from others.
type SegregationLevel string

const (
	SegregationExtreme  SegregationLevel = "extreme"
	SegregationHigh     SegregationLevel = "high"
	SegregationModerate SegregationLevel = "moderate"
	SegregationLow      SegregationLevel = "low"
)

// LabPackCategory is the full categorization of one material: the family
// it belongs to plus the segregation constraints that family imposes.
type LabPackCategory struct {
	PrimaryCategory       Category         `json:"primaryCategory"`
	Subcategory           string           `json:"subcategory,omitempty"`
	SegregationLevel      SegregationLevel `json:"segregationLevel"`
	IncompatibleWith      []string         `json:"incompatibleWith,omitempty"`
	SpecialHandling       []string         `json:"specialHandling,omitempty"`
	PackagingRequirements string           `json:"packagingRequirements,omitempty"`
	Reasoning             []string         `json:"reasoning"`
}

// RequiresIsolation reports whether the category carries the ALL wildcard
// and must be packed alone.
func (c *LabPackCategory) RequiresIsolation() bool {
	for _, inc := range c.IncompatibleWith {
		if inc == IncompatibleAll {
			return true
		}
	}
	return false
}

// IncompatibleWithCategory reports whether other is named in this
// category's incompatibility set (wildcard included).
func (c *LabPackCategory) IncompatibleWithCategory(other Category) bool {
	for _, inc := range c.IncompatibleWith {
		if inc == IncompatibleAll || inc == string(other) {
			return true
		}
	}
	return false
}

// Severity grades a pairwise incompatibility finding.
type Severity string

const (
	SeverityNone    Severity = "NONE"
	SeverityHigh    Severity = "HIGH"
	SeverityExtreme Severity = "EXTREME"
)

// CompatibilityCheckResult is the outcome of one pairwise check.
type CompatibilityCheckResult struct {
	Compatible      bool     `json:"compatible"`
	Severity        Severity `json:"severity"`
	Reason          string   `json:"reason"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// LabPackAssignment places a group of compatible materials into one
// container. AssignmentNumber follows the fixed safety-priority category
// order; AssignmentID is a UUIDv7 for downstream manifest references.
type LabPackAssignment struct {
	AssignmentID     AssignmentID     `json:"assignmentId"`
	AssignmentNumber int              `json:"assignmentNumber"`
	Category         Category         `json:"category"`
	ContainerLabel   string           `json:"containerLabel"`
	Materials        []string         `json:"materials"`
	SafetyLevel      SegregationLevel `json:"safetyLevel"`
	SpecialHandling  []string         `json:"specialHandling,omitempty"`
	DOTClass         string           `json:"dotClass,omitempty"`
	EstimatedVolume  string           `json:"estimatedVolume,omitempty"`
	Reasoning        []string         `json:"reasoning"`
}

// LabPackPlan is the batch output: one assignment per populated category
// plus the materials that fell through the cascade and need manual review.
type LabPackPlan struct {
	LabPacks   []LabPackAssignment `json:"labPacks"`
	Unpackable []Product           `json:"unpackable,omitempty"`
}
