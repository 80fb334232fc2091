package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnyClass is the favored-class value meaning the character's highest-level class.
const AnyClass = "Any"

// Size is a creature size category.
type Size string

// Size categories from smallest to largest.
const (
	SizeFine       Size = "fine"
	SizeDiminutive Size = "diminutive"
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
	SizeColossal   Size = "colossal"
)

// AgeThresholds holds the first age, in years, of each aging category.
// A zero threshold disables that category.
type AgeThresholds struct {
	Middle    int `yaml:"middle"`
	Old       int `yaml:"old"`
	Venerable int `yaml:"venerable"`
}

// Race defines a playable race.
//
// Precondition: Name must be non-empty after loading.
type Race struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Adjustments  map[string]int `yaml:"adjustments"`
	Size         Size           `yaml:"size"`
	FavoredClass string         `yaml:"favored_class"`
	NaturalArmor int            `yaml:"natural_armor"`
	Age          AgeThresholds  `yaml:"age"`
}

// DefaultRace returns the human-equivalent race used when a character's race is
// not found: Medium, no adjustments, any favored class, no aging.
//
// Postcondition: Returns a new Race on every call.
func DefaultRace() *Race {
	return &Race{Name: "Human", Size: SizeMedium, FavoredClass: AnyClass}
}

// EffectiveSize returns r.Size, defaulting to Medium when unset.
func (r *Race) EffectiveSize() Size {
	if r == nil || r.Size == "" {
		return SizeMedium
	}
	return r.Size
}

// Validate reports an error if the race is missing required fields.
func (r *Race) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if r.Size != "" {
		if _, ok := sizeOrder[r.Size]; !ok {
			errs = append(errs, fmt.Errorf("size %q is not a size category", r.Size))
		}
	}
	for ability := range r.Adjustments {
		if !IsAbility(ability) {
			errs = append(errs, fmt.Errorf("adjustment for unknown ability %q", ability))
		}
	}
	a := r.Age
	if a.Middle < 0 || a.Old < 0 || a.Venerable < 0 {
		errs = append(errs, errors.New("age thresholds must be >= 0"))
	}
	if (a.Middle > 0 && a.Old > 0 && a.Old < a.Middle) || (a.Old > 0 && a.Venerable > 0 && a.Venerable < a.Old) {
		errs = append(errs, errors.New("age thresholds must be ascending"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("race %q: %v", r.Name, errs)
	}
	return nil
}

var sizeOrder = map[Size]int{
	SizeFine: 0, SizeDiminutive: 1, SizeTiny: 2, SizeSmall: 3, SizeMedium: 4,
	SizeLarge: 5, SizeHuge: 6, SizeGargantuan: 7, SizeColossal: 8,
}

// Abilities lists the six ability names in sheet order.
var Abilities = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// IsAbility reports whether name is one of the six ability names.
func IsAbility(name string) bool {
	for _, a := range Abilities {
		if a == name {
			return true
		}
	}
	return false
}

// LoadRaces reads all .yaml files in dir and parses each as a Race.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed races (may be empty slice) or a non-nil error.
func LoadRaces(dir string) ([]*Race, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	races := make([]*Race, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var r Race
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parsing race file %s: %w", path, err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid race file %s: %w", path, err)
		}
		races = append(races, &r)
	}
	return races, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
