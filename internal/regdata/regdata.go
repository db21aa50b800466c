// Package regdata provides the immutable regulatory reference tables used
// by the classification engines: RCRA listed-waste dictionaries, keyword
// sets for the named heuristic predicates, and the lab-pack category
// definitions with their segregation constraints.
//
// Tables are embedded YAML loaded once at first access and treated as
// read-only for the life of the process. Keeping them in data files
// rather than Go literals means near-duplicate keyword lists have a
// single source and regulatory updates are data changes, not code changes.
package regdata

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ListedWaste is one entry of the P-code or U-code dictionary.
type ListedWaste struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// UsedWasteSuggestion maps solvent/industry keywords to an advisory F or
// K code. Suggestions apply only if the material is spent or used; they
// never participate in the final classification.
type UsedWasteSuggestion struct {
	Code     string   `yaml:"code"`
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// CategoryDef is the static definition of one lab-pack compatibility
// category: its segregation tier, incompatibility set, and handling text.
type CategoryDef struct {
	Name             string   `yaml:"name"`
	SegregationLevel string   `yaml:"segregationLevel"`
	IncompatibleWith []string `yaml:"incompatibleWith"`
	SpecialHandling  []string `yaml:"specialHandling"`
	Packaging        string   `yaml:"packaging"`
	DOTClass         string   `yaml:"dotClass"`
}

type listedWastesFile struct {
	PCodes       map[string]ListedWaste `yaml:"pcodes"`
	UCodes       map[string]ListedWaste `yaml:"ucodes"`
	NameKeywords map[string]string      `yaml:"nameKeywords"`
	UsedWaste    []UsedWasteSuggestion  `yaml:"usedWaste"`
}

type categoriesFile struct {
	PriorityOrder []string      `yaml:"priorityOrder"`
	Categories    []CategoryDef `yaml:"categories"`
}

type tables struct {
	listed     listedWastesFile
	keywords   map[string][]string
	categories map[string]CategoryDef
	catOrder   []string
}

var (
	loadOnce sync.Once
	loaded   *tables
	loadErr  error
)

func load() *tables {
	loadOnce.Do(func() {
		t := &tables{}
		if loadErr = unmarshalFile("data/listed_wastes.yaml", &t.listed); loadErr != nil {
			return
		}
		if loadErr = unmarshalFile("data/keywords.yaml", &t.keywords); loadErr != nil {
			return
		}
		var cats categoriesFile
		if loadErr = unmarshalFile("data/categories.yaml", &cats); loadErr != nil {
			return
		}
		t.categories = make(map[string]CategoryDef, len(cats.Categories))
		for _, c := range cats.Categories {
			t.categories[c.Name] = c
		}
		t.catOrder = cats.PriorityOrder
		for _, name := range t.catOrder {
			if _, ok := t.categories[name]; !ok {
				loadErr = fmt.Errorf("priority order references undefined category %q", name)
				return
			}
		}
		loaded = t
	})
	if loadErr != nil {
		// Embedded data is shipped with the binary; failure to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("regdata: %v", loadErr))
	}
	return loaded
}

func unmarshalFile(path string, dest any) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// PCode returns the acutely hazardous listed-waste entry for a CAS number.
func PCode(cas string) (ListedWaste, bool) {
	w, ok := load().listed.PCodes[cas]
	return w, ok
}

// UCode returns the toxic commercial chemical listed-waste entry for a
// CAS number.
func UCode(cas string) (ListedWaste, bool) {
	w, ok := load().listed.UCodes[cas]
	return w, ok
}

// NameKeywords returns the product-name keyword fallback dictionary
// (lowercase keyword to listed-waste code).
func NameKeywords() map[string]string {
	return load().listed.NameKeywords
}

// UsedWasteSuggestions returns the advisory F/K suggestion table.
func UsedWasteSuggestions() []UsedWasteSuggestion {
	return load().listed.UsedWaste
}

// Keywords returns the named keyword set, or nil when the set does not
// exist. Sets are lowercase; callers match against normalized text.
func Keywords(set string) []string {
	return load().keywords[set]
}

// Category returns the definition of a lab-pack category by name.
func Category(name string) (CategoryDef, bool) {
	c, ok := load().categories[name]
	return c, ok
}

// CategoryOrder returns category names in fixed safety-priority order,
// most dangerous first. The planner's container numbering follows this
// order, so it must stay deterministic.
func CategoryOrder() []string {
	return load().catOrder
}
