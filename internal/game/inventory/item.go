package inventory

// Category classifies a carried item for armor-class purposes.
type Category string

// Category constants for Item.Category.
const (
	CategoryArmor  Category = "armor"
	CategoryShield Category = "shield"
	CategoryWeapon Category = "weapon"
	CategoryGear   Category = "gear"
)

// Item is one piece of equipment attached to a character. Fields left at their
// zero value are filled from the armor catalog when Ref names a known entry.
type Item struct {
	Ref      string   `yaml:"ref,omitempty" json:"ref,omitempty"`
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Category Category `yaml:"category,omitempty" json:"category,omitempty"`
	Equipped bool     `yaml:"equipped,omitempty" json:"equipped,omitempty"`
	// ArmorBonus is the armor or shield bonus granted while equipped.
	ArmorBonus int `yaml:"armor_bonus,omitempty" json:"armor_bonus,omitempty"`
	// MaxDexBonus caps the wearer's Dexterity modifier; nil means uncapped.
	MaxDexBonus *int    `yaml:"max_dex_bonus,omitempty" json:"max_dex_bonus,omitempty"`
	Weight      float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// IsArmor reports whether the item is body armor.
func (i Item) IsArmor() bool { return i.Category == CategoryArmor }

// IsShield reports whether the item is a shield.
func (i Item) IsShield() bool { return i.Category == CategoryShield }

// Clone returns a deep copy of i.
func (i Item) Clone() Item {
	out := i
	if i.MaxDexBonus != nil {
		v := *i.MaxDexBonus
		out.MaxDexBonus = &v
	}
	return out
}

// TotalWeight sums the weight of every item, equipped or not.
func TotalWeight(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Weight
	}
	return total
}
