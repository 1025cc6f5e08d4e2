package diary

import (
	"fmt"
	"strings"
)

// Mood is a single glyph marker attached to an entry.
type Mood string

const (
	MoodHappy    Mood = "😊"
	MoodNeutral  Mood = "😐"
	MoodAngry    Mood = "😠"
	MoodTired    Mood = "😴"
	MoodExcited  Mood = "🚀"
	MoodThinking Mood = "🤔"
)

type moodGlyph struct {
	Key     string
	Mood    Mood
	Meaning string
}

func moodGlyphs() []moodGlyph {
	return []moodGlyph{
		{Key: "happy", Mood: MoodHappy, Meaning: "happy"},
		{Key: "neutral", Mood: MoodNeutral, Meaning: "neutral"},
		{Key: "angry", Mood: MoodAngry, Meaning: "angry"},
		{Key: "tired", Mood: MoodTired, Meaning: "tired"},
		{Key: "excited", Mood: MoodExcited, Meaning: "excited"},
		{Key: "thinking", Mood: MoodThinking, Meaning: "thinking"},
	}
}

// Moods lists the accepted moods in display order.
func Moods() []Mood {
	g := moodGlyphs()
	out := make([]Mood, len(g))
	for i, m := range g {
		out[i] = m.Mood
	}
	return out
}

// MoodKeys lists the ascii names accepted by ParseMood.
func MoodKeys() []string {
	g := moodGlyphs()
	out := make([]string, len(g))
	for i, m := range g {
		out[i] = m.Key
	}
	return out
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	for _, g := range moodGlyphs() {
		if g.Mood == m {
			return true
		}
	}
	return false
}

// Name returns the ascii name of the mood, or "" when unset or unknown.
func (m Mood) Name() string {
	for _, g := range moodGlyphs() {
		if g.Mood == m {
			return g.Key
		}
	}
	return ""
}

func (m Mood) String() string {
	return string(m)
}

// ParseMood accepts either the glyph itself or its ascii name. An empty
// string is the unset mood.
func ParseMood(v string) (Mood, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	for _, g := range moodGlyphs() {
		if string(g.Mood) == v || strings.EqualFold(g.Key, v) {
			return g.Mood, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q (expected one of %s)", v, strings.Join(MoodKeys(), ", "))
}
