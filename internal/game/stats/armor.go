package stats

import (
	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/inventory"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// BaseArmorClass is the armor class of an unarmored, Dex 10, Medium creature.
const BaseArmorClass = 10

// ArmorClass is the armor-class breakdown.
type ArmorClass struct {
	Total      int `yaml:"total" json:"total"`
	Touch      int `yaml:"touch" json:"touch"`
	FlatFooted int `yaml:"flat_footed" json:"flat_footed"`

	Armor      int `yaml:"armor" json:"armor"`
	Shield     int `yaml:"shield" json:"shield"`
	Dexterity  int `yaml:"dexterity" json:"dexterity"`
	Size       int `yaml:"size" json:"size"`
	Natural    int `yaml:"natural" json:"natural"`
	Deflection int `yaml:"deflection" json:"deflection"`
	Misc       int `yaml:"misc" json:"misc"`
	// MaxDex is the Dexterity cap imposed by worn armor; nil means uncapped.
	MaxDex *int `yaml:"max_dex,omitempty" json:"max_dex,omitempty"`
}

// SizeModifier returns the armor-class and attack modifier for size:
// +1 Small, -1 Large, 0 otherwise.
func SizeModifier(size ruleset.Size) int {
	switch size {
	case ruleset.SizeSmall:
		return 1
	case ruleset.SizeLarge:
		return -1
	}
	return 0
}

// ResolveArmorClass combines equipped armor and shields, the Dexterity
// modifier, size and flat bonuses. Only the best armor bonus counts; shield
// bonuses are summed. The lowest MaxDexBonus of equipped armor caps Dexterity.
// Shields never cap Dexterity.
//
// Postcondition: Touch excludes armor, shield and natural bonuses;
// FlatFooted excludes the Dexterity component.
func ResolveArmorClass(items []inventory.Item, dexMod int, size ruleset.Size, naturalArmor int, bonus character.ACBonuses) ArmorClass {
	ac := ArmorClass{
		Size:       SizeModifier(size),
		Natural:    naturalArmor + bonus.Natural,
		Deflection: bonus.Deflection,
		Misc:       bonus.Misc,
	}
	for _, it := range items {
		if !it.Equipped {
			continue
		}
		switch {
		case it.IsArmor():
			ac.Armor = max(ac.Armor, it.ArmorBonus)
			if it.MaxDexBonus != nil && (ac.MaxDex == nil || *it.MaxDexBonus < *ac.MaxDex) {
				v := *it.MaxDexBonus
				ac.MaxDex = &v
			}
		case it.IsShield():
			ac.Shield += it.ArmorBonus
		}
	}
	ac.Dexterity = dexMod
	if ac.MaxDex != nil && ac.Dexterity > *ac.MaxDex {
		ac.Dexterity = *ac.MaxDex
	}
	ac.Total = BaseArmorClass + ac.Armor + ac.Shield + ac.Dexterity + ac.Size + ac.Natural + ac.Deflection + ac.Misc
	ac.Touch = BaseArmorClass + ac.Dexterity + ac.Size + ac.Deflection + ac.Misc
	ac.FlatFooted = ac.Total - ac.Dexterity
	return ac
}
