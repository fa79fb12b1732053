package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/pipeline"
)

// token is one group the parser formed, recorded through the tracer.
type token struct {
	offset int
	text   string
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse WORD",
		Short: "Show how a word splits into letters",
		Long: `Show how a word splits into letters.

Each row is one token with its byte offset in the input and the glyph its
letter is drawn with. Parsing stops at the first token that is not a letter.`,
		Example: `  gallifreyan parse thing
  gallifreyan parse Quench`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runParse(ctx context.Context, word string) error {
	var tokens []token
	trace := tokenTracer(c.Logger)
	opts := pipeline.Options{
		Word:   word,
		Logger: c.Logger,
		Tracer: alphabet.TracerFunc(func(offset int, text string) {
			trace.Token(offset, text)
			tokens = append(tokens, token{offset: offset, text: text})
		}),
	}

	w, err := pipeline.Parse(ctx, opts)
	if len(tokens) > 0 {
		fmt.Fprintln(c.Out, tokenTable(tokens).Render())
	}
	if err != nil {
		return err
	}

	printSuccess(c.Out, "%s: %d letters, %d consonants", StyleValue.Render(w.String()), w.Len(), w.Consonants())
	if w.Consonants() < w.Len() {
		printDetail(c.Out, "vowels have no glyph yet; render with --vowels skip")
	}
	return nil
}

// tokenTable lays out parsed tokens. A token that names no letter is
// shown muted.
func tokenTable(tokens []token) *table.Table {
	rows := make([][]string, len(tokens))
	unknown := make([]bool, len(tokens))
	for i, t := range tokens {
		l, err := alphabet.ParseLetter(t.text)
		if err != nil {
			rows[i] = []string{strconv.Itoa(t.offset), t.text, "?", "", ""}
			unknown[i] = true
			continue
		}
		rows[i] = append([]string{strconv.Itoa(t.offset), t.text}, entryCells(l)...)
	}
	return newTable(
		[]string{"Offset", "Token", "Kind", "Shape", "Decoration"},
		rows,
		func(row int) bool { return row >= 0 && row < len(unknown) && unknown[row] },
	)
}

// entryCells describes the glyph recipe of l.
func entryCells(l alphabet.Letter) []string {
	e, _ := l.Entry()
	kind := "consonant"
	if l.IsVowel() {
		kind = "vowel"
	}
	if !e.Implemented {
		return []string{kind, e.Shape.String(), "n/a"}
	}
	deco := e.Ornament.String()
	if e.Ornament.IsLine() && e.LineAngle != 0 {
		deco = fmt.Sprintf("%s @%g°", deco, float64(e.LineAngle))
	}
	return []string{kind, e.Shape.String(), deco}
}
