package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxWordLength bounds the input accepted by ValidateWord. Layout work grows
// linearly with word length; anything longer is not a word.
const MaxWordLength = 64

// ValidateWord checks raw user input before it reaches the parser.
//
// The rules are intentionally conservative:
//   - No empty or whitespace-only input
//   - No control characters
//   - Maximum length of MaxWordLength characters
//
// Letter-level validation is left to the parser, which reports the exact
// offending token.
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}

	if len([]rune(word)) > MaxWordLength {
		return New(ErrCodeInvalidInput, "word too long (max %d characters)", MaxWordLength)
	}

	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "word contains invalid control characters")
		}
	}

	return nil
}

// ValidateRadius checks that a ring radius is usable for layout.
func ValidateRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return New(ErrCodeInvalidInput, "radius must be positive and finite, got %v", radius)
	}
	return nil
}
