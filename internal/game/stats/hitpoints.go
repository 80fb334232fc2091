package stats

// AverageHitDie returns the per-level hit points after a class's first level:
// half the die plus one.
func AverageHitDie(hitDie int) int {
	return hitDie/2 + 1
}

// ClassHitPoints returns the hit points a single class contributes before the
// Constitution modifier: the full die at its first level, then the average.
//
// Postcondition: Returns 0 for level < 1 or a non-positive hit die.
func ClassHitPoints(hitDie, level int) int {
	if level < 1 || hitDie <= 0 {
		return 0
	}
	return hitDie + (level-1)*AverageHitDie(hitDie)
}

// HitPoints returns the character's maximum hit points. The Constitution
// modifier applies once per character level.
//
// Postcondition: Returns a value >= 1.
func HitPoints(entries []ClassEntry, conMod int) int {
	total, levels := 0, 0
	for _, e := range entries {
		if e.Level < 1 {
			continue
		}
		levels += e.Level
		if e.Def != nil {
			total += ClassHitPoints(e.Def.HitDie, e.Level)
		}
	}
	total += conMod * levels
	return max(1, total)
}
