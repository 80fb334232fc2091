package stats_test

import (
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIterativeAttacks(t *testing.T) {
	assert.Equal(t, []int{0}, stats.IterativeAttacks(0))
	assert.Equal(t, []int{5}, stats.IterativeAttacks(5))
	assert.Equal(t, []int{6, 1}, stats.IterativeAttacks(6))
	assert.Equal(t, []int{11, 6, 1}, stats.IterativeAttacks(11))
	assert.Equal(t, []int{20, 15, 10, 5}, stats.IterativeAttacks(20))
	assert.Equal(t, []int{30, 25, 20, 15}, stats.IterativeAttacks(30))
}

func TestResolveAttacks(t *testing.T) {
	a := stats.ResolveAttacks(11, 2, 4, 1, -1)
	assert.Equal(t, []int{16, 11, 6}, a.Melee)
	assert.Equal(t, []int{13, 8, 3}, a.Ranged)
	assert.Equal(t, 11, a.BaseAttackBonus)
	assert.Equal(t, 2, a.EpicBonus)
}

// Property: attacks step down by five and never exceed the limit.
func TestIterativeAttacks_Shape(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bab := rapid.IntRange(-5, 60).Draw(rt, "bab")
		got := stats.IterativeAttacks(bab)
		if len(got) < 1 || len(got) > stats.MaxAttacks || got[0] != bab {
			rt.Fatalf("IterativeAttacks(%d) = %v", bab, got)
		}
		for i := 1; i < len(got); i++ {
			if got[i] != got[i-1]-5 || got[i] < 1 {
				rt.Fatalf("IterativeAttacks(%d) = %v", bab, got)
			}
		}
	})
}
