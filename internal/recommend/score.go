package recommend

import (
	"regexp"

	"coffee-scout/internal/mood"
	"coffee-scout/internal/types"
)

// unnamedCafe is the name assumed for venues without a name tag.
const unnamedCafe = "Cafe"

var coffeeName = regexp.MustCompile(`(?i)coffee|roast|brew|bean`)

// Rule is one additive contribution to a place's score.
type Rule struct {
	Name    string
	Points  int
	Applies func(tags types.Tags, dc DecisionContext) bool
}

// rules is the complete scoring table. Every rule is evaluated
// independently and the points of all matching rules are summed.
var rules = []Rule{
	{
		Name:   "coffee-name",
		Points: 2,
		Applies: func(tags types.Tags, _ DecisionContext) bool {
			name := tags.Get("name")
			if name == "" {
				name = unnamedCafe
			}
			return coffeeName.MatchString(name)
		},
	},
	{
		Name:   "focused-wifi",
		Points: 3,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.Mood == mood.Focused && tags.Is("wifi", "yes")
		},
	},
	{
		Name:   "chill-outdoor-seating",
		Points: 2,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.Mood == mood.Chill && tags.Is("outdoor_seating", "yes")
		},
	},
	{
		Name:   "social-outdoor-seating",
		Points: 2,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.Mood == mood.Social && tags.Is("outdoor_seating", "yes")
		},
	},
	{
		Name:   "creative-craft",
		Points: 1,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.Mood == mood.Creative && tags.Has("craft")
		},
	},
	{
		Name:   "rain-indoor-seating",
		Points: 2,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.IsRain && tags.Is("indoor_seating", "yes")
		},
	},
	{
		Name:   "heat-air-conditioning",
		Points: 2,
		Applies: func(tags types.Tags, dc DecisionContext) bool {
			return dc.IsHot && tags.Is("air_conditioning", "yes")
		},
	},
}

// Rules returns a copy of the scoring table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Score rates a venue's tags against the context. It is pure and never
// negative.
func Score(tags types.Tags, dc DecisionContext) int {
	score := 0
	for _, r := range rules {
		if r.Applies(tags, dc) {
			score += r.Points
		}
	}
	return score
}

// Explain lists the names of the rules that fired, in table order.
func Explain(tags types.Tags, dc DecisionContext) []string {
	var fired []string
	for _, r := range rules {
		if r.Applies(tags, dc) {
			fired = append(fired, r.Name)
		}
	}
	return fired
}
