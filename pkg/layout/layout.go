package layout

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gallifreyan/pkg/alphabet"
	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
	"github.com/matzehuels/gallifreyan/pkg/glyph"
)

// ErrNoConsonants is the cause reported for words with nothing to space
// around the ring.
var ErrNoConsonants = errors.New("word has no consonants")

// Character is one placed letter.
type Character struct {
	Letter alphabet.Letter
	// Index is the consonant slot the letter occupies.
	Index    int
	Position geom.Polar
	// Glyph is the zero value for skipped vowels.
	Glyph glyph.Decoration
	// Drawn reports whether Glyph was drawn.
	Drawn bool
}

// Stitch is one ring arc joining two gaps.
type Stitch struct {
	From, To alphabet.Letter
	Range    geom.AngleRange
}

// Layout is a word laid out on a ring.
type Layout struct {
	Word       alphabet.Word
	Radius     float64
	Size       float64
	Characters []Character
	// Drawings holds every glyph drawing in letter order followed by one
	// drawing per stitch.
	Drawings []geom.Drawing
	Stitches []Stitch
}

// Build lays out w on a ring of the given radius.
func Build(w alphabet.Word, radius float64, opts ...Option) (Layout, error) {
	cfg := config{size: DefaultSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errs.ValidateRadius(radius); err != nil {
		return Layout{}, err
	}

	n := w.Consonants()
	if n == 0 {
		return Layout{}, errs.Wrap(errs.ErrCodeGeometry, ErrNoConsonants, "lay out %q", w.String())
	}
	if cfg.vowels == VowelsReject {
		for _, l := range w.Letters() {
			if l.IsVowel() {
				return Layout{}, errs.Wrap(errs.ErrCodeUnimplemented, glyph.ErrUnimplemented,
					"vowel %s in %q", l, w.String())
			}
		}
	}

	chars := place(w, radius, n)
	parts, err := draw(chars, cfg)
	if err != nil {
		return Layout{}, err
	}

	stitches, err := stitch(chars, radius)
	if err != nil {
		return Layout{}, err
	}

	out := Layout{
		Word:       w,
		Radius:     radius,
		Size:       cfg.size,
		Characters: chars,
		Stitches:   stitches,
	}
	for _, p := range parts {
		out.Drawings = append(out.Drawings, p...)
	}
	for _, s := range stitches {
		out.Drawings = append(out.Drawings, geom.DrawArc(radius, s.Range))
	}
	return out, nil
}

// place assigns ring positions. A vowel before the first consonant gets
// slot -1.
func place(w alphabet.Word, radius float64, consonants int) []Character {
	step := 360 / float64(consonants)
	chars := make([]Character, w.Len())
	idx := -1
	for i, l := range w.Letters() {
		if !l.IsVowel() {
			idx++
		}
		angle := geom.Degree(float64(idx)*step - 90)
		chars[i] = Character{Letter: l, Index: idx, Position: geom.NewPolar(radius, angle)}
	}
	return chars
}

// draw builds each glyph into chars and returns their drawings in letter
// order.
func draw(chars []Character, cfg config) ([][]geom.Drawing, error) {
	parts := make([][]geom.Drawing, len(chars))
	one := func(i int) error {
		c := &chars[i]
		if c.Letter.IsVowel() && cfg.vowels == VowelsSkip {
			return nil
		}
		g, err := c.Letter.Glyph(c.Position, cfg.size)
		if err != nil {
			return err
		}
		d, err := g.Render()
		if err != nil {
			return err
		}
		c.Glyph, c.Drawn = g, true
		parts[i] = d
		return nil
	}

	if !cfg.parallel {
		for i := range chars {
			if err := one(i); err != nil {
				return nil, err
			}
		}
		return parts, nil
	}

	var g errgroup.Group
	for i := range chars {
		g.Go(func() error { return one(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

// stitch joins the gap of every edge-bearing letter to the next one around
// the ring. Each arc runs forward from the ending angle of one letter to the
// starting angle of the next. The sweep never exceeds the angular distance
// between the two letters; when their gaps overlap the stitch has zero
// length.
func stitch(chars []Character, radius float64) ([]Stitch, error) {
	var edged []Character
	for _, c := range chars {
		if c.Drawn && c.Glyph.Base.HasEdge() {
			edged = append(edged, c)
		}
	}
	if len(edged) == 0 {
		return nil, nil
	}
	edged = append(edged, edged[0])

	out := make([]Stitch, 0, len(edged)-1)
	for i := range len(edged) - 1 {
		from, to := edged[i], edged[i+1]
		span := geom.Degree(360)
		if len(edged) > 2 {
			span = to.Position.Angle().Sub(from.Position.Angle()).Normalize()
		}
		end, err := from.Glyph.Base.EndingAngle()
		if err != nil {
			return nil, err
		}
		start, err := to.Glyph.Base.StartingAngle()
		if err != nil {
			return nil, err
		}
		sweep := start.Sub(end).Normalize()
		if sweep > span {
			sweep = 0
		}
		out = append(out, Stitch{
			From:  from.Letter,
			To:    to.Letter,
			Range: geom.AngleRange{Start: end, End: end + sweep},
		})
	}
	return out, nil
}

// Edges returns the edge-bearing characters in ring order.
func (l Layout) Edges() []Character {
	var out []Character
	for _, c := range l.Characters {
		if c.Drawn && c.Glyph.Base.HasEdge() {
			out = append(out, c)
		}
	}
	return out
}
