package stats

import "strings"

// Alignment is a position on the law-chaos and good-evil axes.
type Alignment struct {
	Ethic string // lawful, neutral or chaotic
	Moral string // good, neutral or evil
}

var alignmentAbbrev = map[string]string{
	"lg": "lawful good", "ng": "neutral good", "cg": "chaotic good",
	"ln": "lawful neutral", "n": "neutral", "tn": "neutral", "cn": "chaotic neutral",
	"le": "lawful evil", "ne": "neutral evil", "ce": "chaotic evil",
}

// ParseAlignment parses "lawful good", "true neutral", "neutral", "CG" and the like.
func ParseAlignment(s string) (Alignment, bool) {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	if full, ok := alignmentAbbrev[s]; ok {
		s = full
	}
	if s == "neutral" || s == "true neutral" {
		return Alignment{Ethic: "neutral", Moral: "neutral"}, true
	}
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Alignment{}, false
	}
	ethic, moral := parts[0], parts[1]
	if ethic != "lawful" && ethic != "neutral" && ethic != "chaotic" {
		return Alignment{}, false
	}
	if moral != "good" && moral != "neutral" && moral != "evil" {
		return Alignment{}, false
	}
	return Alignment{Ethic: ethic, Moral: moral}, true
}

func (a Alignment) String() string {
	if a.Ethic == "neutral" && a.Moral == "neutral" {
		return "true neutral"
	}
	return a.Ethic + " " + a.Moral
}

// AllowsAlignment reports whether a class restriction admits a. Empty and
// unrecognized restrictions admit every alignment.
func AllowsAlignment(restriction string, a Alignment) bool {
	r := strings.ToLower(strings.Join(strings.Fields(restriction), " "))
	switch r {
	case "", "any":
		return true
	case "any lawful":
		return a.Ethic == "lawful"
	case "any nonlawful":
		return a.Ethic != "lawful"
	case "any chaotic":
		return a.Ethic == "chaotic"
	case "any nonchaotic":
		return a.Ethic != "chaotic"
	case "any good":
		return a.Moral == "good"
	case "any nongood":
		return a.Moral != "good"
	case "any evil":
		return a.Moral == "evil"
	case "any nonevil":
		return a.Moral != "evil"
	case "any neutral":
		return a.Ethic == "neutral" || a.Moral == "neutral"
	}
	if exact, ok := ParseAlignment(r); ok {
		return exact == a
	}
	return true
}
