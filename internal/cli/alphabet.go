package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
)

// alphabetCommand creates the alphabet command.
func (c *CLI) alphabetCommand() *cobra.Command {
	var consonantsOnly bool

	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "List every letter and how it is drawn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printAlphabet(consonantsOnly)
			return nil
		},
	}
	cmd.Flags().BoolVar(&consonantsOnly, "consonants", false, "hide vowels")

	return cmd
}

func (c *CLI) printAlphabet(consonantsOnly bool) {
	var rows [][]string
	var pending []bool
	for _, l := range alphabet.Letters() {
		if consonantsOnly && l.IsVowel() {
			continue
		}
		e, _ := l.Entry()
		rows = append(rows, append([]string{l.String()}, entryCells(l)...))
		pending = append(pending, !e.Implemented)
	}

	fmt.Fprintln(c.Out, StyleTitle.Render("Alphabet"))
	fmt.Fprintln(c.Out, newTable(
		[]string{"Letter", "Kind", "Shape", "Decoration"},
		rows,
		func(row int) bool { return row >= 0 && row < len(pending) && pending[row] },
	).Render())
	printDetail(c.Out, "%d letters", len(rows))
}
