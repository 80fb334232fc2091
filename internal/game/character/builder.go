package character

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultRace is the race assumed when a draft names none.
const DefaultRace = "Human"

// BaseAbilityScore is the starting value of every ability in a new draft.
const BaseAbilityScore = 10

// NewDraft returns a level-1 character in class with every ability at 10.
//
// Precondition: name and class must be non-empty.
// Postcondition: Returns a normalized Character, or a non-nil error.
func NewDraft(name, race, class string) (*Character, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("character name must not be empty")
	}
	if strings.TrimSpace(class) == "" {
		return nil, errors.New("class must not be empty")
	}
	c := &Character{
		Name:    name,
		Race:    race,
		Classes: []ClassLevel{{Class: class, Level: 1}},
		Abilities: AbilityScores{
			Strength: BaseAbilityScore, Dexterity: BaseAbilityScore, Constitution: BaseAbilityScore,
			Intelligence: BaseAbilityScore, Wisdom: BaseAbilityScore, Charisma: BaseAbilityScore,
		},
	}
	c.Normalize()
	return c, nil
}

// Normalize fills defaults for absent fields: an empty race becomes
// DefaultRace, names are trimmed and alignment is lower-cased.
// Class entries are left as given; the engine reports bad levels.
//
// Postcondition: Normalize is idempotent.
func (c *Character) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Race = strings.TrimSpace(c.Race)
	if c.Race == "" {
		c.Race = DefaultRace
	}
	c.Alignment = strings.ToLower(strings.Join(strings.Fields(c.Alignment), " "))
	for i := range c.Classes {
		c.Classes[i].Class = strings.TrimSpace(c.Classes[i].Class)
	}
	if c.Followers < 0 {
		c.Followers = 0
	}
}

// AbilityName returns the short display label for an ability name.
func AbilityName(ability string) string {
	names := map[string]string{
		"strength":     "STR",
		"dexterity":    "DEX",
		"constitution": "CON",
		"intelligence": "INT",
		"wisdom":       "WIS",
		"charisma":     "CHA",
	}
	if n, ok := names[ability]; ok {
		return n
	}
	return fmt.Sprintf("<%s>", ability)
}
