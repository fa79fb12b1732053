package alphabet

import (
	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
	"github.com/matzehuels/gallifreyan/pkg/glyph"
)

// Entry is the glyph recipe of one letter.
type Entry struct {
	Shape    glyph.Shape
	Ornament glyph.Ornament
	// LineAngle offsets a single Line1 mark.
	LineAngle   geom.Degree
	Implemented bool
}

func consonant(s glyph.Shape, o glyph.Ornament) Entry {
	return Entry{Shape: s, Ornament: o, Implemented: true}
}

var table = [numLetters]Entry{
	E: {Shape: glyph.ShapeVowel},
	A: {Shape: glyph.ShapeVowel},
	I: {Shape: glyph.ShapeVowel},
	O: {Shape: glyph.ShapeVowel},
	U: {Shape: glyph.ShapeVowel},

	B:  consonant(glyph.ShapeCrescent, glyph.Blank),
	CH: consonant(glyph.ShapeCrescent, glyph.Dot2),
	D:  consonant(glyph.ShapeCrescent, glyph.Dot3),
	G:  consonant(glyph.ShapeCrescent, glyph.Line1),
	H:  consonant(glyph.ShapeCrescent, glyph.Line2),
	F:  consonant(glyph.ShapeCrescent, glyph.Line3),

	J:  consonant(glyph.ShapeFull, glyph.Blank),
	PH: consonant(glyph.ShapeFull, glyph.Dot1),
	K:  consonant(glyph.ShapeFull, glyph.Dot2),
	L:  consonant(glyph.ShapeFull, glyph.Dot3),
	C:  consonant(glyph.ShapeFull, glyph.Dot4),
	N:  consonant(glyph.ShapeFull, glyph.Line1),
	P:  consonant(glyph.ShapeFull, glyph.Line2),
	M:  consonant(glyph.ShapeFull, glyph.Line3),

	T:  consonant(glyph.ShapeQuarter, glyph.Blank),
	WH: consonant(glyph.ShapeQuarter, glyph.Dot1),
	SH: consonant(glyph.ShapeQuarter, glyph.Dot2),
	R:  consonant(glyph.ShapeQuarter, glyph.Dot3),
	V:  consonant(glyph.ShapeQuarter, glyph.Line1),
	W:  consonant(glyph.ShapeQuarter, glyph.Line2),
	S:  consonant(glyph.ShapeQuarter, glyph.Line3),

	TH: consonant(glyph.ShapeNew, glyph.Blank),
	GH: consonant(glyph.ShapeNew, glyph.Dot1),
	Y:  consonant(glyph.ShapeNew, glyph.Dot2),
	Z:  consonant(glyph.ShapeNew, glyph.Dot3),
	Q:  consonant(glyph.ShapeNew, glyph.Dot4),
	QU: consonant(glyph.ShapeNew, glyph.Line1),
	X:  consonant(glyph.ShapeNew, glyph.Line2),
	NG: consonant(glyph.ShapeNew, glyph.Line3),
}

// Entry returns the table row of l.
func (l Letter) Entry() (Entry, bool) {
	if !l.Valid() {
		return Entry{}, false
	}
	return table[l], true
}

// Glyph builds the decorated base of l at position.
func (l Letter) Glyph(position geom.Polar, size float64) (glyph.Decoration, error) {
	e, ok := l.Entry()
	if !ok {
		return glyph.Decoration{}, errs.New(errs.ErrCodeInternal, "no table entry for %s", l)
	}
	if !e.Implemented {
		return glyph.Decoration{}, errs.Wrap(errs.ErrCodeUnimplemented, glyph.ErrUnimplemented,
			"letter %s has no glyph", l)
	}
	base, err := glyph.NewBase(e.Shape, position, size)
	if err != nil {
		return glyph.Decoration{}, err
	}
	return glyph.Decoration{Ornament: e.Ornament, Base: base, Angle: e.LineAngle}, nil
}
