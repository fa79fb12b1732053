package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
	"github.com/matzehuels/gallifreyan/pkg/glyph"
)

func mustParse(t *testing.T, s string) alphabet.Word {
	t.Helper()
	w, err := alphabet.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return w
}

func TestBuildTCHXD(t *testing.T) {
	l, err := Build(mustParse(t, "TCHXD"), 6)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var angles []geom.Degree
	for _, c := range l.Characters {
		angles = append(angles, c.Position.Angle())
	}
	if diff := cmp.Diff([]geom.Degree{-90, 0, 90, 180}, angles); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}

	if len(l.Stitches) != 3 {
		t.Errorf("stitches = %d, want 3", len(l.Stitches))
	}
	// T 1, CH 1+2, X 1+2, D 1+3, stitches 3.
	if len(l.Drawings) != 14 {
		t.Errorf("drawings = %d, want 14", len(l.Drawings))
	}
	if l.Size != DefaultSize || l.Radius != 6 {
		t.Errorf("Size, Radius = %v, %v", l.Size, l.Radius)
	}
}

func TestDrawingCount(t *testing.T) {
	words := []string{"T", "B", "J", "TH", "TCHXD", "NGQUZ", "SHRWV", "MPLKCF", "BDG"}

	for _, s := range words {
		t.Run(s, func(t *testing.T) {
			w := mustParse(t, s)
			l, err := Build(w, 10)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			want, edges := 0, 0
			for _, letter := range w.Letters() {
				e, _ := letter.Entry()
				want += 1 + glyph.Decoration{Ornament: e.Ornament}.Count()
				if e.Shape.HasEdge() {
					edges++
				}
			}
			want += edges
			if len(l.Drawings) != want {
				t.Errorf("drawings = %d, want %d", len(l.Drawings), want)
			}
			if len(l.Stitches) != edges {
				t.Errorf("stitches = %d, want %d", len(l.Stitches), edges)
			}
		})
	}
}

func TestBuildNoEdges(t *testing.T) {
	l, err := Build(mustParse(t, "JTHK"), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Stitches) != 0 {
		t.Errorf("stitches = %d, want 0", len(l.Stitches))
	}
	if len(l.Edges()) != 0 {
		t.Errorf("edges = %d, want 0", len(l.Edges()))
	}
}

func TestStitchesRunForward(t *testing.T) {
	l, err := Build(mustParse(t, "TBSDV"), 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range l.Stitches {
		span := s.Range.Span()
		if span <= 0 || span >= 360 {
			t.Errorf("stitch %s→%s spans %v", s.From, s.To, span)
		}
	}

	// Stitch arcs lie on the ring.
	for _, d := range l.Drawings[len(l.Drawings)-len(l.Stitches):] {
		for _, p := range d.Points {
			if r := math.Hypot(float64(p[0]), float64(p[1])); math.Abs(r-8) > 1e-4 {
				t.Fatalf("stitch point %v at radius %v", p, r)
			}
		}
	}
}

func TestSingleEdgeWrapsAround(t *testing.T) {
	l, err := Build(mustParse(t, "T"), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Stitches) != 1 {
		t.Fatalf("stitches = %d, want 1", len(l.Stitches))
	}
	half := math.Asin(1.0/3) * 180 / math.Pi
	got := l.Stitches[0].Range
	if math.Abs(float64(got.Start)-(-90+half)) > 1e-9 || math.Abs(float64(got.End)-(270-half)) > 1e-9 {
		t.Errorf("stitch range = [%v, %v], want [%v, %v]", got.Start, got.End, -90+half, 270-half)
	}
}

func TestDenseWordStitches(t *testing.T) {
	l, err := Build(mustParse(t, "TTTTTTTTTTTT"), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Stitches) != 12 {
		t.Fatalf("stitches = %d, want 12", len(l.Stitches))
	}
	// Neighbouring gaps overlap, so no stitch may run the long way round.
	for _, s := range l.Stitches {
		if span := s.Range.Span(); span < 0 || span > 30 {
			t.Errorf("stitch %s→%s spans %v, want within [0°, 30°]", s.From, s.To, span)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		radius float64
		opts   []Option
		cause  error
		code   errs.Code
	}{
		{"empty word", "", 6, nil, ErrNoConsonants, errs.ErrCodeGeometry},
		{"only vowels", "aeiou", 6, nil, ErrNoConsonants, errs.ErrCodeGeometry},
		{"vowel rejected", "tardis", 6, nil, glyph.ErrUnimplemented, errs.ErrCodeUnimplemented},
		{"ring too small", "TS", 1, nil, geom.ErrDegenerateTriangle, errs.ErrCodeGeometry},
		{"zero radius", "T", 0, nil, nil, errs.ErrCodeInvalidInput},
		{"infinite radius", "T", math.Inf(1), nil, nil, errs.ErrCodeInvalidInput},
		{"infinite size", "T", 6, []Option{WithSize(math.Inf(1))}, nil, errs.ErrCodeGeometry},
		{"zero size", "T", 6, []Option{WithSize(0)}, nil, errs.ErrCodeGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Build(mustParse(t, tt.word), tt.radius, tt.opts...)
			if err == nil {
				t.Fatalf("Build succeeded with %d drawings", len(l.Drawings))
			}
			if tt.cause != nil && !errors.Is(err, tt.cause) {
				t.Errorf("error = %v, want cause %v", err, tt.cause)
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), tt.code)
			}
		})
	}
}

func TestVowelsSkip(t *testing.T) {
	l, err := Build(mustParse(t, "tardis"), 6, WithVowels(VowelsSkip))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Characters) != 6 {
		t.Fatalf("characters = %d, want 6", len(l.Characters))
	}
	// A rides on T, I rides on D.
	if l.Characters[1].Index != 0 || l.Characters[4].Index != 2 {
		t.Errorf("vowel slots = %d, %d", l.Characters[1].Index, l.Characters[4].Index)
	}
	if l.Characters[1].Drawn {
		t.Error("skipped vowel was drawn")
	}

	only, err := Build(mustParse(t, "trds"), 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Drawings) != len(only.Drawings) {
		t.Errorf("drawings = %d, want %d as without vowels", len(l.Drawings), len(only.Drawings))
	}
}

func TestBuildParallel(t *testing.T) {
	w := mustParse(t, "SHNGQUTHBCDFGHJ")
	seq, err := Build(w, 20)
	if err != nil {
		t.Fatal(err)
	}
	par, err := Build(w, 20, WithParallel())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(seq.Drawings, par.Drawings); diff != "" {
		t.Errorf("parallel build differs (-seq +par):\n%s", diff)
	}
}

func TestWithSize(t *testing.T) {
	l, err := Build(mustParse(t, "TH"), 6, WithSize(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Characters[0].Glyph.Base.Size(); math.Abs(got-1) > 1e-12 {
		t.Errorf("letter size = %v, want 1", got)
	}
}
