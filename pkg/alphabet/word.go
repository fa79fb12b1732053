package alphabet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// Word is an ordered sequence of letters.
type Word struct {
	letters []Letter
}

// NewWord builds a word from letters.
func NewWord(letters ...Letter) Word {
	return Word{letters: append([]Letter(nil), letters...)}
}

// Letters returns a copy of the letters.
func (w Word) Letters() []Letter { return append([]Letter(nil), w.letters...) }

// Len returns the number of letters.
func (w Word) Len() int { return len(w.letters) }

// At returns the i-th letter.
func (w Word) At(i int) Letter { return w.letters[i] }

// Consonants counts the letters that are not vowels.
func (w Word) Consonants() int {
	n := 0
	for _, l := range w.letters {
		if !l.IsVowel() {
			n++
		}
	}
	return n
}

// String joins the letter spellings, e.g. "TCHXD".
func (w Word) String() string {
	var b strings.Builder
	for _, l := range w.letters {
		b.WriteString(l.String())
	}
	return b.String()
}

// ParseError names the first token that is not a letter.
type ParseError struct {
	Token string
	// Offset is the byte offset of Token in the input.
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no letter matches %q at offset %d", e.Token, e.Offset)
}

// Tracer observes the tokens produced while grouping input.
type Tracer interface {
	Token(offset int, token string)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(offset int, token string)

// Token calls f.
func (f TracerFunc) Token(offset int, token string) { f(offset, token) }

type parseConfig struct {
	tracer Tracer
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithTracer reports every grouped token to t.
func WithTracer(t Tracer) ParseOption {
	return func(c *parseConfig) { c.tracer = t }
}

// digraphs maps a leading character to the follower that joins it.
var digraphs = map[rune]rune{
	'C': 'H', 'P': 'H', 'W': 'H', 'S': 'H', 'T': 'H', 'G': 'H',
	'Q': 'U',
	'N': 'G',
}

// Parse splits s into letters. Digraphs are grouped greedily and matching
// ignores case. The first token that names no letter fails the whole parse
// with a *ParseError carrying code INVALID_LETTER. The empty string parses
// to the empty word.
func Parse(s string, opts ...ParseOption) (Word, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var letters []Letter
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		end := i + n
		if follow, ok := digraphs[unicode.ToUpper(r)]; ok && end < len(s) {
			next, m := utf8.DecodeRuneInString(s[end:])
			if unicode.ToUpper(next) == follow {
				end += m
			}
		}

		token := strings.ToUpper(s[i:end])
		if cfg.tracer != nil {
			cfg.tracer.Token(i, token)
		}
		l, ok := byName[token]
		if !ok {
			return Word{}, errs.Wrap(errs.ErrCodeInvalidLetter,
				&ParseError{Token: s[i:end], Offset: i}, "parse %q", s)
		}
		letters = append(letters, l)
		i = end
	}
	return Word{letters: letters}, nil
}
