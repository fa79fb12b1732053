package alphabet

import (
	"fmt"
	"strings"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// Letter is one identity of the alphabet.
type Letter int

// Vowels first, then consonants grouped by base shape.
const (
	E Letter = iota
	A
	I
	O
	U
	B
	CH
	D
	G
	H
	F
	J
	PH
	K
	L
	C
	N
	P
	M
	T
	WH
	SH
	R
	V
	W
	S
	TH
	GH
	Y
	Z
	Q
	QU
	X
	NG

	numLetters = int(NG) + 1
)

var names = [numLetters]string{
	"E", "A", "I", "O", "U",
	"B", "CH", "D", "G", "H", "F",
	"J", "PH", "K", "L", "C", "N", "P", "M",
	"T", "WH", "SH", "R", "V", "W", "S",
	"TH", "GH", "Y", "Z", "Q", "QU", "X", "NG",
}

var byName = func() map[string]Letter {
	m := make(map[string]Letter, numLetters)
	for i, n := range names {
		m[n] = Letter(i)
	}
	return m
}()

// Letters returns every letter in table order.
func Letters() []Letter {
	out := make([]Letter, numLetters)
	for i := range out {
		out[i] = Letter(i)
	}
	return out
}

// Valid reports whether l is a known letter.
func (l Letter) Valid() bool { return l >= 0 && int(l) < numLetters }

// String returns the upper-case spelling, e.g. "CH".
func (l Letter) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return names[l]
}

// IsVowel reports whether l is one of A, E, I, O, U.
func (l Letter) IsVowel() bool { return l >= E && l <= U }

// ParseLetter resolves a single token such as "ch" or "NG".
func ParseLetter(token string) (Letter, error) {
	if l, ok := byName[strings.ToUpper(token)]; ok {
		return l, nil
	}
	return 0, errs.Wrap(errs.ErrCodeInvalidLetter, &ParseError{Token: token}, "unknown letter")
}
