// Package mood defines the user-selected intent that steers which venue
// attributes a search rewards.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one of a fixed set of intents.
type Mood string

const (
	Focused   Mood = "focused"
	Chill     Mood = "chill"
	Social    Mood = "social"
	Creative  Mood = "creative"
	Energetic Mood = "energetic"
)

// Default is used whenever no valid mood has been chosen or persisted.
const Default = Focused

var ErrUnknownMood = errors.New("unknown mood")

// Option is a catalogue entry shown to the user.
type Option struct {
	Key   Mood   `json:"key"`
	Label string `json:"label"`
}

var catalogue = []Option{
	{Key: Focused, Label: "Focused"},
	{Key: Chill, Label: "Chill"},
	{Key: Social, Label: "Social"},
	{Key: Creative, Label: "Creative"},
	{Key: Energetic, Label: "Energetic"},
}

// All returns the moods in display order.
func All() []Option {
	out := make([]Option, len(catalogue))
	copy(out, catalogue)
	return out
}

// Parse converts a user supplied string into a Mood. Matching ignores case
// and surrounding whitespace.
func Parse(s string) (Mood, error) {
	key := Mood(strings.ToLower(strings.TrimSpace(s)))
	if key.Valid() {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, o := range catalogue {
		if o.Key == m {
			return true
		}
	}
	return false
}

// Label returns the display label, or the raw key for unknown moods.
func (m Mood) Label() string {
	for _, o := range catalogue {
		if o.Key == m {
			return o.Label
		}
	}
	return string(m)
}

// Badges returns the short descriptors shown next to every result for m.
func (m Mood) Badges() []string {
	switch m {
	case Focused:
		return []string{"Calm"}
	case Social:
		return []string{"Outdoor"}
	case Chill:
		return []string{"Cozy"}
	default:
		return nil
	}
}

func (m Mood) String() string {
	return string(m)
}
