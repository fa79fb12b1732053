package sink

import (
	"slices"
	"strings"
)

// Style is a colour scheme for SVG output.
type Style struct {
	Name       string
	Background string
	Stroke     string
	Guide      string
	// StrokeWidth is in output pixels.
	StrokeWidth float64
}

var (
	// Ink is dark strokes on paper.
	Ink = Style{Name: "ink", Background: "#fbfaf5", Stroke: "#1b2a49", Guide: "#c9d1de", StrokeWidth: 2}

	// Chalk is light strokes on a slate board.
	Chalk = Style{Name: "chalk", Background: "#263238", Stroke: "#eceff1", Guide: "#546e7a", StrokeWidth: 2.5}
)

var stylesByName = map[string]Style{
	Ink.Name:   Ink,
	Chalk.Name: Chalk,
}

// LookupStyle returns the named style.
func LookupStyle(name string) (Style, bool) {
	s, ok := stylesByName[strings.ToLower(name)]
	return s, ok
}

// StyleNames lists the built-in style names, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(stylesByName))
	for n := range stylesByName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
