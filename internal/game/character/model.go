// Package character defines the character draft: the base attributes the
// derived-statistics engine reads, plus the epic state it is allowed to mutate.
package character

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
)

// AbilityScores holds the six raw ability scores. There is no upper bound.
type AbilityScores struct {
	Strength     int `yaml:"strength" json:"strength"`
	Dexterity    int `yaml:"dexterity" json:"dexterity"`
	Constitution int `yaml:"constitution" json:"constitution"`
	Intelligence int `yaml:"intelligence" json:"intelligence"`
	Wisdom       int `yaml:"wisdom" json:"wisdom"`
	Charisma     int `yaml:"charisma" json:"charisma"`
}

// Get returns the score named by ability, or 0 for an unknown name.
func (a AbilityScores) Get(ability string) int {
	switch ability {
	case "strength":
		return a.Strength
	case "dexterity":
		return a.Dexterity
	case "constitution":
		return a.Constitution
	case "intelligence":
		return a.Intelligence
	case "wisdom":
		return a.Wisdom
	case "charisma":
		return a.Charisma
	}
	return 0
}

// Add returns a copy of a with delta added to the named ability. Unknown
// names leave the scores unchanged.
func (a AbilityScores) Add(ability string, delta int) AbilityScores {
	switch ability {
	case "strength":
		a.Strength += delta
	case "dexterity":
		a.Dexterity += delta
	case "constitution":
		a.Constitution += delta
	case "intelligence":
		a.Intelligence += delta
	case "wisdom":
		a.Wisdom += delta
	case "charisma":
		a.Charisma += delta
	}
	return a
}

// ClassLevel is the number of levels a character holds in one class.
type ClassLevel struct {
	Class string `yaml:"class" json:"class"`
	Level int    `yaml:"level" json:"level"`
}

// ACBonuses are armor-class components not derived from equipment or abilities.
type ACBonuses struct {
	Natural    int `yaml:"natural,omitempty" json:"natural,omitempty"`
	Deflection int `yaml:"deflection,omitempty" json:"deflection,omitempty"`
	Misc       int `yaml:"misc,omitempty" json:"misc,omitempty"`
}

// Ascension records when and why a character first qualified for divine rank.
type Ascension struct {
	Level  int    `yaml:"level" json:"level"`
	Reason string `yaml:"reason" json:"reason"`
}

// EpicState is the progression state accumulated above level 20. Only epic
// advancement writes to it.
type EpicState struct {
	EpicLevel   int `yaml:"epic_level" json:"epic_level"`
	AttackBonus int `yaml:"attack_bonus" json:"attack_bonus"`
	SaveBonus   int `yaml:"save_bonus" json:"save_bonus"`

	RegularFeats     int            `yaml:"regular_feats" json:"regular_feats"`
	EpicFeats        int            `yaml:"epic_feats" json:"epic_feats"`
	EpicFeatsByClass map[string]int `yaml:"epic_feats_by_class,omitempty" json:"epic_feats_by_class,omitempty"`
	AbilityIncreases int            `yaml:"ability_increases" json:"ability_increases"`

	HitPointsGained   int `yaml:"hit_points_gained" json:"hit_points_gained"`
	SkillPointsGained int `yaml:"skill_points_gained" json:"skill_points_gained"`

	// CasterLevels maps a spellcasting class to its caster level.
	CasterLevels map[string]int `yaml:"caster_levels,omitempty" json:"caster_levels,omitempty"`
	// SpellsKnownBonus maps a class to extra spells known per spell level.
	SpellsKnownBonus map[string][]int `yaml:"spells_known_bonus,omitempty" json:"spells_known_bonus,omitempty"`

	// DivineRank is nil until the character qualifies for ascension.
	DivineRank    *int       `yaml:"divine_rank,omitempty" json:"divine_rank,omitempty"`
	PotentialRank int        `yaml:"potential_rank" json:"potential_rank"`
	Ascension     *Ascension `yaml:"ascension,omitempty" json:"ascension,omitempty"`

	// Features maps class -> scaling feature -> value at the current class level.
	Features map[string]map[string]string `yaml:"features,omitempty" json:"features,omitempty"`
}

// Clone returns a deep copy of e.
func (e *EpicState) Clone() *EpicState {
	if e == nil {
		return nil
	}
	out := *e
	out.EpicFeatsByClass = cloneMap(e.EpicFeatsByClass)
	out.CasterLevels = cloneMap(e.CasterLevels)
	out.SpellsKnownBonus = cloneSliceMap(e.SpellsKnownBonus)
	if e.DivineRank != nil {
		r := *e.DivineRank
		out.DivineRank = &r
	}
	if e.Ascension != nil {
		a := *e.Ascension
		out.Ascension = &a
	}
	if e.Features != nil {
		out.Features = make(map[string]map[string]string, len(e.Features))
		for class, fs := range e.Features {
			out.Features[class] = cloneMap(fs)
		}
	}
	return &out
}

// Character is the input to the derived-statistics engine.
//
// Classes is ordered; the first entry is the class taken at character level 1.
type Character struct {
	Name      string        `yaml:"name" json:"name"`
	Race      string        `yaml:"race" json:"race"`
	Alignment string        `yaml:"alignment,omitempty" json:"alignment,omitempty"`
	Age       int           `yaml:"age,omitempty" json:"age,omitempty"`
	Classes   []ClassLevel  `yaml:"classes" json:"classes"`
	Abilities AbilityScores `yaml:"abilities" json:"abilities"`

	Equipment    []inventory.Item `yaml:"equipment,omitempty" json:"equipment,omitempty"`
	Feats        []string         `yaml:"feats,omitempty" json:"feats,omitempty"`
	Followers    int              `yaml:"followers,omitempty" json:"followers,omitempty"`
	Achievements []string         `yaml:"achievements,omitempty" json:"achievements,omitempty"`
	// SpellsKnown maps a class to its spells known per spell level.
	SpellsKnown map[string][]int `yaml:"spells_known,omitempty" json:"spells_known,omitempty"`
	AC          ACBonuses        `yaml:"ac,omitempty" json:"ac,omitempty"`
	Experience  int              `yaml:"experience,omitempty" json:"experience,omitempty"`

	Epic *EpicState `yaml:"epic,omitempty" json:"epic,omitempty"`
}

// TotalLevel returns the sum of all class levels.
func (c *Character) TotalLevel() int {
	total := 0
	for _, cl := range c.Classes {
		total += cl.Level
	}
	return total
}

// ClassLevel returns the level held in class, or 0.
func (c *Character) ClassLevel(class string) int {
	for _, cl := range c.Classes {
		if cl.Class == class {
			return cl.Level
		}
	}
	return 0
}

// HasFeat reports whether the character has the named feat.
func (c *Character) HasFeat(feat string) bool { return slices.Contains(c.Feats, feat) }

// HasAchievement reports whether the character carries the named achievement flag.
func (c *Character) HasAchievement(flag string) bool {
	return slices.Contains(c.Achievements, flag)
}

// Clone returns a deep copy of c.
//
// Postcondition: mutating the result never affects c.
func (c *Character) Clone() *Character {
	out := *c
	out.Classes = slices.Clone(c.Classes)
	out.Feats = slices.Clone(c.Feats)
	out.Achievements = slices.Clone(c.Achievements)
	out.SpellsKnown = cloneSliceMap(c.SpellsKnown)
	if c.Equipment != nil {
		out.Equipment = make([]inventory.Item, len(c.Equipment))
		for i, it := range c.Equipment {
			out.Equipment[i] = it.Clone()
		}
	}
	out.Epic = c.Epic.Clone()
	return &out
}

// Load reads a character from a YAML file and normalizes it.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a normalized Character or a non-nil error.
func Load(path string) (*Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var c Character
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing character file %s: %w", path, err)
	}
	c.Normalize()
	return &c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Character) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding character %q: %w", c.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSliceMap(m map[string][]int) map[string][]int {
	if m == nil {
		return nil
	}
	out := make(map[string][]int, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}
