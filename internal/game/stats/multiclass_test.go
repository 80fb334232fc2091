package stats_test

import (
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func levels(pairs ...any) []character.ClassLevel {
	var out []character.ClassLevel
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, character.ClassLevel{Class: pairs[i].(string), Level: pairs[i+1].(int)})
	}
	return out
}

func TestMulticlassPenalty_FighterWizard(t *testing.T) {
	tbl := ruleset.StandardTables()
	p, offending := stats.MulticlassPenalty(tbl, levels("Fighter", 1, "Wizard", 5), "")
	assert.InDelta(t, 0.2, p, 1e-9)
	assert.Equal(t, []string{"Fighter"}, offending)
}

func TestMulticlassPenalty_FavoredClassExempt(t *testing.T) {
	tbl := ruleset.StandardTables()
	p, offending := stats.MulticlassPenalty(tbl, levels("Fighter", 1, "Wizard", 5), "Fighter")
	assert.Zero(t, p)
	assert.Empty(t, offending)
}

func TestMulticlassPenalty_WithinOneLevel(t *testing.T) {
	tbl := ruleset.StandardTables()
	p, _ := stats.MulticlassPenalty(tbl, levels("Fighter", 4, "Wizard", 5), ruleset.AnyClass)
	assert.Zero(t, p)
}

func TestMulticlassPenalty_Capped(t *testing.T) {
	tbl := ruleset.StandardTables()
	p, offending := stats.MulticlassPenalty(tbl, levels("A", 10, "B", 1, "C", 1, "D", 1, "E", 1, "F", 1, "G", 1), "")
	assert.InDelta(t, 1.0, p, 1e-9)
	assert.Len(t, offending, 6)
}

func TestResolveClasses_Unknown(t *testing.T) {
	book := ruleset.NewRulebook(nil)
	book.RegisterClass(fighter())
	got, unknown := stats.ResolveClasses(levels("Fighter", 3, "Swashbuckler", 2), book)
	require.Len(t, got, 2)
	assert.NotNil(t, got[0].Def)
	assert.Nil(t, got[1].Def)
	assert.Equal(t, []string{"Swashbuckler"}, unknown)
}

func TestSkillPoints_FirstLevelQuadrupled(t *testing.T) {
	// Fighter 1: (2+1)*4 = 12, Fighter 2-3: 3*2 = 6, Wizard 2: 3*2 = 6.
	assert.Equal(t, 24, stats.SkillPoints(entries(fighter(), 3, wizard(), 2), 1))
	assert.Equal(t, 4, stats.SkillPoints(entries(fighter(), 1), -5), "minimum one point per level")
}

// Property: the penalty is a multiple of the step, never exceeds 1 and
// never counts the highest class.
func TestMulticlassPenalty_Bounds(t *testing.T) {
	tbl := ruleset.StandardTables()
	rapid.Check(t, func(rt *rapid.T) {
		lv := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 8).Draw(rt, "levels")
		var cls []character.ClassLevel
		for i, l := range lv {
			cls = append(cls, character.ClassLevel{Class: string(rune('A' + i)), Level: l})
		}
		p, offending := stats.MulticlassPenalty(tbl, cls, "")
		if p < 0 || p > 1 {
			rt.Fatalf("penalty %v out of range", p)
		}
		if len(offending) >= len(cls) {
			rt.Fatalf("every class offends: %v", offending)
		}
	})
}
