package ruleset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Progression names a base-attack or saving-throw progression curve.
type Progression string

// Progression categories. Saving throws use only Good and Poor.
const (
	Good   Progression = "good"
	Medium Progression = "medium"
	Poor   Progression = "poor"
)

// SaveProgressions holds the progression category of each saving throw.
type SaveProgressions struct {
	Fortitude Progression `yaml:"fortitude"`
	Reflex    Progression `yaml:"reflex"`
	Will      Progression `yaml:"will"`
}

// Spellcasting describes a class's spell progression.
//
// SpellsPerDay is indexed by class level - 1, then by spell level 0-9.
type Spellcasting struct {
	Ability      string  `yaml:"ability"`
	SpellsPerDay [][]int `yaml:"spells_per_day"`
	// GrowsKnown marks spontaneous casters whose spells known keep growing at epic levels.
	GrowsKnown bool `yaml:"grows_known"`
}

// Row returns the spells-per-day row for classLevel, clamped to the last row.
//
// Postcondition: Returns nil if classLevel < 1 or the table is empty.
func (s *Spellcasting) Row(classLevel int) []int {
	if s == nil || classLevel < 1 || len(s.SpellsPerDay) == 0 {
		return nil
	}
	if classLevel > len(s.SpellsPerDay) {
		classLevel = len(s.SpellsPerDay)
	}
	return s.SpellsPerDay[classLevel-1]
}

// Class defines a playable character class.
//
// Precondition: Name must be non-empty and HitDie positive after loading.
type Class struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	HitDie      int              `yaml:"hit_die"`
	BAB         Progression      `yaml:"bab"`
	Saves       SaveProgressions `yaml:"saves"`
	SkillPoints int              `yaml:"skill_points"`
	// Alignment is the alignment restriction, e.g. "any lawful"; empty means any.
	Alignment    string        `yaml:"alignment"`
	Spellcasting *Spellcasting `yaml:"spellcasting"`
	// EpicFeatEvery grants a bonus epic feat every N epic levels of this class; 0 = never.
	EpicFeatEvery   int              `yaml:"epic_feat_every"`
	ScalingFeatures []ScalingFeature `yaml:"scaling_features"`
}

// Validate reports an error if the class is missing required fields or
// contains illegal values.
func (c *Class) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.HitDie <= 0 {
		errs = append(errs, fmt.Errorf("hit_die must be > 0, got %d", c.HitDie))
	}
	if !validBAB[c.BAB] {
		errs = append(errs, fmt.Errorf("bab %q must be one of [good, medium, poor]", c.BAB))
	}
	for name, p := range map[string]Progression{
		"fortitude": c.Saves.Fortitude, "reflex": c.Saves.Reflex, "will": c.Saves.Will,
	} {
		if p != Good && p != Poor {
			errs = append(errs, fmt.Errorf("saves.%s %q must be one of [good, poor]", name, p))
		}
	}
	if c.SkillPoints < 0 {
		errs = append(errs, errors.New("skill_points must be >= 0"))
	}
	if c.EpicFeatEvery < 0 {
		errs = append(errs, errors.New("epic_feat_every must be >= 0"))
	}
	if sc := c.Spellcasting; sc != nil {
		if !IsAbility(sc.Ability) {
			errs = append(errs, fmt.Errorf("spellcasting.ability %q is not an ability", sc.Ability))
		}
		for i, row := range sc.SpellsPerDay {
			if len(row) > 10 {
				errs = append(errs, fmt.Errorf("spellcasting.spells_per_day[%d] has %d spell levels, max 10", i, len(row)))
			}
		}
	}
	for i := range c.ScalingFeatures {
		if err := c.ScalingFeatures[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("class %q: %v", c.Name, errs)
	}
	return nil
}

var validBAB = map[Progression]bool{Good: true, Medium: true, Poor: true}

// LoadClasses reads all .yaml files in dir, parses each as a Class, validates it
// and compiles its scaling-feature scripts.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", path, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid class file %s: %w", path, err)
		}
		for i := range c.ScalingFeatures {
			if err := c.ScalingFeatures[i].Compile(c.Name); err != nil {
				return nil, fmt.Errorf("class file %s: %w", path, err)
			}
		}
		classes = append(classes, &c)
	}
	return classes, nil
}
