package stats

// MaxAttacks bounds the iterative attacks granted by base attack bonus.
const MaxAttacks = 4

// IterativeStep is the penalty between successive iterative attacks.
const IterativeStep = 5

// Attacks is the attack-bonus breakdown. Melee and Ranged list the bonus of
// each iterative attack in a full attack, best first.
type Attacks struct {
	BaseAttackBonus int   `yaml:"base_attack_bonus" json:"base_attack_bonus"`
	EpicBonus       int   `yaml:"epic_bonus" json:"epic_bonus"`
	Melee           []int `yaml:"melee" json:"melee"`
	Ranged          []int `yaml:"ranged" json:"ranged"`
}

// IterativeAttacks returns bab, bab-5, ... while the value stays at least 1,
// up to MaxAttacks entries. A character always gets one attack.
func IterativeAttacks(bab int) []int {
	out := []int{bab}
	for next := bab - IterativeStep; next >= 1 && len(out) < MaxAttacks; next -= IterativeStep {
		out = append(out, next)
	}
	return out
}

// ResolveAttacks builds melee and ranged attack bonuses. The epic attack bonus
// does not grant extra attacks.
func ResolveAttacks(bab, epicBonus, strMod, dexMod, sizeMod int) Attacks {
	iter := IterativeAttacks(bab)
	a := Attacks{
		BaseAttackBonus: bab,
		EpicBonus:       epicBonus,
		Melee:           make([]int, len(iter)),
		Ranged:          make([]int, len(iter)),
	}
	for i, b := range iter {
		a.Melee[i] = b + epicBonus + strMod + sizeMod
		a.Ranged[i] = b + epicBonus + dexMod + sizeMod
	}
	return a
}
