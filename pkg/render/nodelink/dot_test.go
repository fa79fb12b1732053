package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	"github.com/matzehuels/gallifreyan/pkg/layout"
)

func buildLayout(t *testing.T, word string, opts ...layout.Option) layout.Layout {
	t.Helper()
	w, err := alphabet.Parse(word)
	if err != nil {
		t.Fatal(err)
	}
	l, err := layout.Build(w, 6, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(buildLayout(t, "TCHXD"), Options{})

	for _, want := range []string{
		"digraph G {",
		`label="TCHXD"`,
		`c0 [label="T\nquarter", penwidth=2]`,
		`c1 [label="CH\ncrescent dot2", penwidth=2]`,
		`c2 [label="X\nnew line2"]`,
		"c0 -> c1;",
		"c2 -> c3;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "style=bold"); got != 3 {
		t.Errorf("stitch edges = %d, want 3", got)
	}
	// The last stitch wraps from D back to T.
	if !strings.Contains(dot, "c3 -> c0 [style=bold") {
		t.Errorf("missing wrap-around stitch:\n%s", dot)
	}
}

func TestToDOTDetailedAndSkipped(t *testing.T) {
	l := buildLayout(t, "ta", layout.WithVowels(layout.VowelsSkip))
	dot := ToDOT(l, Options{Detailed: true})

	if !strings.Contains(dot, `slot 0 at -90°`) {
		t.Errorf("detailed label missing slot:\n%s", dot)
	}
	if !strings.Contains(dot, `c1 [label="A\nslot 0 at -90°", style="filled,dashed"`) {
		t.Errorf("skipped vowel not dashed:\n%s", dot)
	}
	// A single edge-bearing letter is stitched to itself.
	if !strings.Contains(dot, "c0 -> c0 [style=bold") {
		t.Errorf("missing self stitch:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox =\n%s\nwant\n%s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
