// Package hint computes progressive letter disclosure for the secret word.
//
// Levels are cumulative: 1 opens the first letter, 2 adds the last letter,
// 3 adds every vowel and 4 adds every even index. All functions are pure.
package hint

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	// DefaultMaxHints is the number of hint levels a round allows
	DefaultMaxHints = 4

	// DefaultAutoHintStep is the number of wrong guesses per automatic level
	DefaultAutoHintStep = 6

	// Placeholder stands in for a hidden letter
	Placeholder = "_"
)

var vowels = map[rune]struct{}{}

func init() {
	for _, r := range "аеёиоуыэюяaeiouy" {
		vowels[r] = struct{}{}
	}
}

func isVowel(r rune) bool {
	_, ok := vowels[unicode.ToLower(r)]
	return ok
}

// Clamp limits level to [0, maxHints]
func Clamp(level, maxHints int) int {
	if maxHints < 0 {
		maxHints = 0
	}
	if level < 0 {
		return 0
	}
	if level > maxHints {
		return maxHints
	}
	return level
}

// RevealedPositions returns the sorted rune indexes of word disclosed at level
func RevealedPositions(word string, level, maxHints int) []int {
	level = Clamp(level, maxHints)
	letters := []rune(word)
	length := len(letters)
	positions := make(map[int]struct{})

	if level >= 1 && length > 0 {
		positions[0] = struct{}{}
	}
	if level >= 2 && length > 1 {
		positions[length-1] = struct{}{}
	}
	if level >= 3 {
		for i, r := range letters {
			if isVowel(r) {
				positions[i] = struct{}{}
			}
		}
	}
	if level >= 4 {
		for i := 0; i < length; i += 2 {
			positions[i] = struct{}{}
		}
	}

	out := make([]int, 0, len(positions))
	for i := range positions {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Mask is the public view of a word at a hint level
type Mask struct {
	// Level is the clamped hint level the mask was built for
	Level int

	// Cells holds one entry per letter: the letter or Placeholder
	Cells []string

	// Description is a short human readable note about the level
	Description string

	// Length is the number of letters in the word
	Length int
}

// String joins the cells with spaces, e.g. "к _ _ _ _ _ _ л"
func (m Mask) String() string {
	return strings.Join(m.Cells, " ")
}

var descriptions = map[int]string{
	1: "The first letter is open.",
	2: "The first and last letters are open.",
	3: "All vowels are shown.",
	4: "Half of the letters are shown.",
}

// Format builds the mask for word at level
func Format(word string, level, maxHints int) Mask {
	level = Clamp(level, maxHints)
	letters := []rune(word)

	revealed := make(map[int]struct{})
	for _, i := range RevealedPositions(word, level, maxHints) {
		revealed[i] = struct{}{}
	}

	cells := make([]string, len(letters))
	for i, r := range letters {
		if _, ok := revealed[i]; ok {
			cells[i] = string(r)
		} else {
			cells[i] = Placeholder
		}
	}

	description, ok := descriptions[level]
	switch {
	case level == 0:
		description = fmt.Sprintf("The word has %d letters.", len(letters))
	case !ok:
		description = "The hint has been updated."
	}

	return Mask{
		Level:       level,
		Cells:       cells,
		Description: description,
		Length:      len(letters),
	}
}

// AutoEscalate returns the level implied by the attempt count and whether it
// is higher than current. The level never decreases.
func AutoEscalate(attempts, current, step, maxHints int) (int, bool) {
	if step <= 0 {
		return current, false
	}
	next := Clamp(attempts/step, maxHints)
	if next > current {
		return next, true
	}
	return current, false
}
