package epic

import (
	"fmt"

	"github.com/cory-johannsen/d20sheet/internal/game/character"
	"github.com/cory-johannsen/d20sheet/internal/game/ruleset"
)

// Qualifies reports whether c at level qualifies for divine ascension, and
// why. A character qualifies above the epic start level with the leadership
// feat, enough followers, or one of the achievement flags.
func Qualifies(t *ruleset.Tables, c *character.Character, level int) (bool, string) {
	e := t.Epic
	if level <= e.StartLevel {
		return false, ""
	}
	if e.LeadershipFeat != "" && c.HasFeat(e.LeadershipFeat) {
		return true, "feat:" + e.LeadershipFeat
	}
	if e.FollowerThreshold > 0 && c.Followers >= e.FollowerThreshold {
		return true, fmt.Sprintf("followers:%d", c.Followers)
	}
	for _, flag := range e.AchievementFlags {
		if c.HasAchievement(flag) {
			return true, "achievement:" + flag
		}
	}
	return false, ""
}

// PotentialRank returns the divine rank a character at level with followers
// could reach: the highest level step reached plus the highest follower
// bonus reached, capped at the maximum rank.
func PotentialRank(t *ruleset.Tables, level, followers int) int {
	e := t.Epic
	rank := 0
	for _, s := range e.DivineSteps {
		if level >= s.Level {
			rank = s.Rank
		}
	}
	bonus := 0
	for _, b := range e.FollowerBonuses {
		if followers >= b.Followers && b.Bonus > bonus {
			bonus = b.Bonus
		}
	}
	return min(rank+bonus, e.MaxDivineRank)
}

// evaluateDivine assigns rank 0 to a newly qualifying character and refreshes
// its potential rank. Non-qualifiers keep a potential rank of 0.
func evaluateDivine(t *ruleset.Tables, c *character.Character, level int) {
	ok, reason := Qualifies(t, c, level)
	if !ok {
		return
	}
	s := c.Epic
	if s.DivineRank == nil {
		rank := 0
		s.DivineRank = &rank
		s.Ascension = &character.Ascension{Level: level, Reason: reason}
	}
	s.PotentialRank = PotentialRank(t, level, c.Followers)
}
