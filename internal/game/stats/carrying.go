package stats

import (
	"math"

	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// Capacity is the carrying-capacity table for one Strength and size, in pounds.
type Capacity struct {
	Light         int `yaml:"light" json:"light"`
	Medium        int `yaml:"medium" json:"medium"`
	Heavy         int `yaml:"heavy" json:"heavy"`
	MaxLoad       int `yaml:"max_load" json:"max_load"`
	LiftOverHead  int `yaml:"lift_over_head" json:"lift_over_head"`
	LiftOffGround int `yaml:"lift_off_ground" json:"lift_off_ground"`
	DragPush      int `yaml:"drag_push" json:"drag_push"`
}

// CarryingCapacity returns the capacity for strength and size. Strength
// above the table scales the last row by 2^floor((s-10)/10) and
// 1 + 0.25*((s-10) mod 10). Unknown sizes use a multiplier of 1.
//
// Postcondition: Returns the zero Capacity for strength < 1.
func CarryingCapacity(t *ruleset.Tables, strength int, size ruleset.Size) Capacity {
	if strength < 1 || len(t.Carrying) == 0 {
		return Capacity{}
	}
	top := len(t.Carrying)
	var light, medium, heavy float64
	if strength <= top {
		row := t.Carrying[strength-1]
		light, medium, heavy = float64(row.Light), float64(row.Medium), float64(row.Heavy)
	} else {
		row := t.Carrying[top-1]
		over := strength - top
		scale := math.Pow(2, float64(over/10)) * (1 + 0.25*float64(over%10))
		light = math.Floor(float64(row.Light) * scale)
		medium = math.Floor(float64(row.Medium) * scale)
		heavy = math.Floor(float64(row.Heavy) * scale)
	}
	mult, ok := t.SizeMultipliers[size]
	if !ok {
		mult = 1
	}
	c := Capacity{
		Light:  int(math.Floor(light * mult)),
		Medium: int(math.Floor(medium * mult)),
		Heavy:  int(math.Floor(heavy * mult)),
	}
	c.MaxLoad = c.Heavy
	c.LiftOverHead = c.Heavy
	c.LiftOffGround = 2 * c.Heavy
	c.DragPush = 5 * c.Heavy
	return c
}

// Encumbrance is the load category for carried weight.
type Encumbrance string

// Load categories.
const (
	LoadLight      Encumbrance = "light"
	LoadMedium     Encumbrance = "medium"
	LoadHeavy      Encumbrance = "heavy"
	LoadOverloaded Encumbrance = "overloaded"
)

// EncumbranceFor returns the load category of weight against c.
func EncumbranceFor(c Capacity, weight float64) Encumbrance {
	switch {
	case weight <= float64(c.Light):
		return LoadLight
	case weight <= float64(c.Medium):
		return LoadMedium
	case weight <= float64(c.Heavy):
		return LoadHeavy
	}
	return LoadOverloaded
}
