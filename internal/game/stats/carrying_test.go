package stats_test

import (
	"testing"

	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
	"github.com/cory-johannsen/d20sheet/internal/game/stats"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCarryingCapacity_Table(t *testing.T) {
	tbl := ruleset.StandardTables()
	c := stats.CarryingCapacity(tbl, 10, ruleset.SizeMedium)
	assert.Equal(t, stats.Capacity{Light: 33, Medium: 66, Heavy: 100, MaxLoad: 100, LiftOverHead: 100, LiftOffGround: 200, DragPush: 500}, c)
	assert.Equal(t, 10, stats.CarryingCapacity(tbl, 1, ruleset.SizeMedium).Heavy)
	assert.Equal(t, stats.Capacity{}, stats.CarryingCapacity(tbl, 0, ruleset.SizeMedium))
}

func TestCarryingCapacity_Extrapolated(t *testing.T) {
	tbl := ruleset.StandardTables()
	// 14: 2^0 * (1 + 0.25*4) = 2.
	assert.Equal(t, 200, stats.CarryingCapacity(tbl, 14, ruleset.SizeMedium).Heavy)
	// 21: 2^1 * 1.25 = 2.5; light floor(33*2.5) = 82.
	c := stats.CarryingCapacity(tbl, 21, ruleset.SizeMedium)
	assert.Equal(t, 82, c.Light)
	assert.Equal(t, 165, c.Medium)
	assert.Equal(t, 250, c.Heavy)
}

func TestCarryingCapacity_Size(t *testing.T) {
	tbl := ruleset.StandardTables()
	assert.Equal(t, 75, stats.CarryingCapacity(tbl, 10, ruleset.SizeSmall).Heavy)
	assert.Equal(t, 24, stats.CarryingCapacity(tbl, 10, ruleset.SizeSmall).Light, "floor(33*0.75)")
	assert.Equal(t, 200, stats.CarryingCapacity(tbl, 10, ruleset.SizeLarge).Heavy)
	assert.Equal(t, 1600, stats.CarryingCapacity(tbl, 10, ruleset.SizeColossal).Heavy)
	assert.Equal(t, 12, stats.CarryingCapacity(tbl, 10, ruleset.SizeFine).Heavy)
	assert.Equal(t, 100, stats.CarryingCapacity(tbl, 10, "planetary").Heavy)
}

func TestEncumbranceFor(t *testing.T) {
	c := stats.Capacity{Light: 33, Medium: 66, Heavy: 100}
	assert.Equal(t, stats.LoadLight, stats.EncumbranceFor(c, 33))
	assert.Equal(t, stats.LoadMedium, stats.EncumbranceFor(c, 33.5))
	assert.Equal(t, stats.LoadHeavy, stats.EncumbranceFor(c, 100))
	assert.Equal(t, stats.LoadOverloaded, stats.EncumbranceFor(c, 101))
}

// Property: loads stay ordered and the derived lifts are multiples of the heavy load.
func TestCarryingCapacity_Ordered(t *testing.T) {
	tbl := ruleset.StandardTables()
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.IntRange(1, 60).Draw(rt, "str")
		size := rapid.SampledFrom([]ruleset.Size{ruleset.SizeTiny, ruleset.SizeSmall, ruleset.SizeMedium, ruleset.SizeLarge}).Draw(rt, "size")
		c := stats.CarryingCapacity(tbl, s, size)
		if c.Light > c.Medium || c.Medium > c.Heavy {
			rt.Fatalf("loads out of order: %+v", c)
		}
		if c.MaxLoad != c.Heavy || c.LiftOverHead != c.Heavy || c.LiftOffGround != 2*c.Heavy || c.DragPush != 5*c.Heavy {
			rt.Fatalf("derived loads wrong: %+v", c)
		}
	})
}
