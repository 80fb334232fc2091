package character_test

import (
	"path/filepath"
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sample() *character.Character {
	rank := 0
	maxDex := 3
	return &character.Character{
		Name:      "Thorin",
		Race:      "Dwarf",
		Alignment: "lawful good",
		Age:       130,
		Classes:   []character.ClassLevel{{Class: "Fighter", Level: 20}, {Class: "Cleric", Level: 2}},
		Abilities: character.AbilityScores{Strength: 18, Dexterity: 12, Constitution: 16, Intelligence: 10, Wisdom: 14, Charisma: 8},
		Equipment: []inventory.Item{{Ref: "breastplate", Equipped: true, MaxDexBonus: &maxDex}},
		Feats:     []string{"Power Attack", "Epic Leadership"},
		SpellsKnown: map[string][]int{"Cleric": {3, 2}},
		Epic: &character.EpicState{
			EpicLevel:        2,
			EpicFeatsByClass: map[string]int{"Fighter": 1},
			DivineRank:       &rank,
			Ascension:        &character.Ascension{Level: 21, Reason: "feat:Epic Leadership"},
			Features:         map[string]map[string]string{"Fighter": {"bonus": "1"}},
		},
	}
}

func TestAbilityScores_GetAdd(t *testing.T) {
	a := character.AbilityScores{Constitution: 13}
	assert.Equal(t, 13, a.Get("constitution"))
	b := a.Add("constitution", 2)
	assert.Equal(t, 15, b.Get("constitution"))
	assert.Equal(t, 13, a.Constitution, "Add returns a copy")
	assert.Equal(t, a, a.Add("luck", 5))
	assert.Equal(t, 0, a.Get("luck"))
}

func TestCharacter_Levels(t *testing.T) {
	c := sample()
	assert.Equal(t, 22, c.TotalLevel())
	assert.Equal(t, 2, c.ClassLevel("Cleric"))
	assert.Equal(t, 0, c.ClassLevel("Wizard"))
	assert.True(t, c.HasFeat("Epic Leadership"))
	assert.False(t, c.HasAchievement("slew_a_deity"))
}

func TestCharacter_CloneIsDeep(t *testing.T) {
	c := sample()
	cp := c.Clone()
	require.Equal(t, c, cp)

	cp.Classes[0].Level = 1
	cp.Feats[0] = "Cleave"
	cp.SpellsKnown["Cleric"][0] = 9
	*cp.Equipment[0].MaxDexBonus = 0
	*cp.Epic.DivineRank = 5
	cp.Epic.Ascension.Level = 30
	cp.Epic.Features["Fighter"]["bonus"] = "2"
	cp.Epic.EpicFeatsByClass["Fighter"] = 7

	assert.Equal(t, 20, c.Classes[0].Level)
	assert.Equal(t, "Power Attack", c.Feats[0])
	assert.Equal(t, 3, c.SpellsKnown["Cleric"][0])
	assert.Equal(t, 3, *c.Equipment[0].MaxDexBonus)
	assert.Equal(t, 0, *c.Epic.DivineRank)
	assert.Equal(t, 21, c.Epic.Ascension.Level)
	assert.Equal(t, "1", c.Epic.Features["Fighter"]["bonus"])
	assert.Equal(t, 1, c.Epic.EpicFeatsByClass["Fighter"])
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thorin.yaml")
	c := sample()
	require.NoError(t, character.Save(path, c))
	got, err := character.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := character.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// Property: TotalLevel is the sum of the class levels.
func TestTotalLevel_IsSum(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		levels := rapid.SliceOfN(rapid.IntRange(1, 30), 0, 6).Draw(rt, "levels")
		c := &character.Character{}
		sum := 0
		for i, l := range levels {
			c.Classes = append(c.Classes, character.ClassLevel{Class: string(rune('A' + i)), Level: l})
			sum += l
		}
		if c.TotalLevel() != sum {
			rt.Fatalf("TotalLevel %d, want %d", c.TotalLevel(), sum)
		}
	})
}
