package ruleset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ProgressionLevels is the number of entries in every progression table.
const ProgressionLevels = 20

// MaxCharacterLevel is the highest level any character may reach.
const MaxCharacterLevel = 100

// CarryingRow is one row of the carrying-capacity table, in pounds.
type CarryingRow struct {
	Light  int `yaml:"light"`
	Medium int `yaml:"medium"`
	Heavy  int `yaml:"heavy"`
}

// AbilityRange bounds ability scores for non-epic characters.
type AbilityRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DivineStep is the potential divine rank reached at Level.
type DivineStep struct {
	Level int `yaml:"level"`
	Rank  int `yaml:"rank"`
}

// FollowerBonus adds Bonus to the potential divine rank at Followers or more.
type FollowerBonus struct {
	Followers int `yaml:"followers"`
	Bonus     int `yaml:"bonus"`
}

// EpicTables holds the epic-progression cadences and divine-ascension thresholds.
type EpicTables struct {
	StartLevel           int             `yaml:"start_level"`
	MaxLevel             int             `yaml:"max_level"`
	FeatEvery            int             `yaml:"feat_every"`
	AbilityIncreaseEvery int             `yaml:"ability_increase_every"`
	LeadershipFeat       string          `yaml:"leadership_feat"`
	FollowerThreshold    int             `yaml:"follower_threshold"`
	AchievementFlags     []string        `yaml:"achievement_flags"`
	DivineSteps          []DivineStep    `yaml:"divine_steps"`
	FollowerBonuses      []FollowerBonus `yaml:"follower_bonuses"`
	MaxDivineRank        int             `yaml:"max_divine_rank"`
}

// Tables is the immutable numeric rule data the resolvers read. Build one with
// StandardTables or LoadTables and share it freely; nothing writes to it.
type Tables struct {
	BAB               map[Progression][]int `yaml:"bab"`
	Saves             map[Progression][]int `yaml:"saves"`
	Carrying          []CarryingRow         `yaml:"carrying_capacity"`
	SizeMultipliers   map[Size]float64      `yaml:"size_multipliers"`
	ExperienceStep    int                   `yaml:"experience_step"`
	MulticlassPenalty float64               `yaml:"multiclass_penalty"`
	AbilityRange      AbilityRange          `yaml:"ability_range"`
	Epic              EpicTables            `yaml:"epic"`
}

// StandardTables returns the core-rulebook tables.
//
// Postcondition: Returns a new, valid Tables on every call.
func StandardTables() *Tables {
	t := &Tables{
		BAB:   make(map[Progression][]int, 3),
		Saves: make(map[Progression][]int, 2),
		Carrying: []CarryingRow{
			{3, 6, 10}, {6, 13, 20}, {10, 20, 30}, {13, 26, 40}, {16, 33, 50},
			{20, 40, 60}, {23, 46, 70}, {26, 53, 80}, {30, 60, 90}, {33, 66, 100},
		},
		SizeMultipliers: map[Size]float64{
			SizeFine: 0.125, SizeDiminutive: 0.25, SizeTiny: 0.5, SizeSmall: 0.75,
			SizeMedium: 1, SizeLarge: 2, SizeHuge: 4, SizeGargantuan: 8, SizeColossal: 16,
		},
		ExperienceStep:    1000,
		MulticlassPenalty: 0.2,
		AbilityRange:      AbilityRange{Min: 3, Max: 25},
		Epic: EpicTables{
			StartLevel:           20,
			MaxLevel:             100,
			FeatEvery:            3,
			AbilityIncreaseEvery: 4,
			LeadershipFeat:       "Epic Leadership",
			FollowerThreshold:    1000,
			AchievementFlags:     []string{"slew_a_deity", "divine_quest_completed", "worshipped_by_a_nation"},
			DivineSteps: []DivineStep{
				{21, 0}, {25, 1}, {35, 6}, {45, 11}, {55, 16}, {70, 21},
			},
			FollowerBonuses: []FollowerBonus{
				{1000, 1}, {10000, 2}, {100000, 3},
			},
			MaxDivineRank: 21,
		},
	}
	good, medium, poor := make([]int, ProgressionLevels), make([]int, ProgressionLevels), make([]int, ProgressionLevels)
	goodSave, poorSave := make([]int, ProgressionLevels), make([]int, ProgressionLevels)
	for i := 0; i < ProgressionLevels; i++ {
		level := i + 1
		good[i] = level
		medium[i] = level * 3 / 4
		poor[i] = level / 2
		goodSave[i] = 2 + level/2
		poorSave[i] = level / 3
	}
	t.BAB[Good], t.BAB[Medium], t.BAB[Poor] = good, medium, poor
	t.Saves[Good], t.Saves[Poor] = goodSave, poorSave
	return t
}

// Validate checks all table invariants.
//
// Postcondition: Returns nil if the tables are usable, or an error describing all violations.
func (t *Tables) Validate() error {
	var errs []error
	for _, p := range []Progression{Good, Medium, Poor} {
		if len(t.BAB[p]) != ProgressionLevels {
			errs = append(errs, fmt.Errorf("bab.%s must have %d entries, got %d", p, ProgressionLevels, len(t.BAB[p])))
			continue
		}
		if !nonDecreasing(t.BAB[p]) {
			errs = append(errs, fmt.Errorf("bab.%s must be non-decreasing", p))
		}
	}
	for _, p := range []Progression{Good, Poor} {
		if len(t.Saves[p]) != ProgressionLevels {
			errs = append(errs, fmt.Errorf("saves.%s must have %d entries, got %d", p, ProgressionLevels, len(t.Saves[p])))
		}
	}
	if len(t.Carrying) != 10 {
		errs = append(errs, fmt.Errorf("carrying_capacity must have 10 rows, got %d", len(t.Carrying)))
	}
	if t.SizeMultipliers[SizeMedium] != 1 {
		errs = append(errs, errors.New("size_multipliers.medium must be 1"))
	}
	if t.ExperienceStep <= 0 {
		errs = append(errs, errors.New("experience_step must be > 0"))
	}
	if t.MulticlassPenalty < 0 || t.MulticlassPenalty > 1 {
		errs = append(errs, errors.New("multiclass_penalty must be within [0, 1]"))
	}
	if t.AbilityRange.Min > t.AbilityRange.Max {
		errs = append(errs, errors.New("ability_range.min must not exceed ability_range.max"))
	}
	e := t.Epic
	if e.StartLevel < 1 || e.MaxLevel <= e.StartLevel {
		errs = append(errs, fmt.Errorf("epic levels must satisfy 1 <= start_level < max_level, got %d/%d", e.StartLevel, e.MaxLevel))
	}
	if e.MaxLevel > MaxCharacterLevel {
		errs = append(errs, fmt.Errorf("epic.max_level must not exceed %d, got %d", MaxCharacterLevel, e.MaxLevel))
	}
	if e.FeatEvery <= 0 || e.AbilityIncreaseEvery <= 0 {
		errs = append(errs, errors.New("epic.feat_every and epic.ability_increase_every must be > 0"))
	}
	if !sort.SliceIsSorted(e.DivineSteps, func(i, j int) bool { return e.DivineSteps[i].Level < e.DivineSteps[j].Level }) {
		errs = append(errs, errors.New("epic.divine_steps must be sorted by level"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rule tables invalid: %v", errs)
	}
	return nil
}

func nonDecreasing(v []int) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}
	return true
}

// LoadTables reads a YAML override file on top of StandardTables.
// Keys absent from the file keep their standard values.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns valid Tables or a non-nil error.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t := StandardTables()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parsing tables file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tables file %s: %w", path, err)
	}
	return t, nil
}
