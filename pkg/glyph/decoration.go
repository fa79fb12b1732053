package glyph

import (
	"fmt"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
)

// Ornament identifies one of the eight decoration variants.
type Ornament int

const (
	Blank Ornament = iota
	Dot1
	Dot2
	Dot3
	Dot4
	Line1
	Line2
	Line3
)

// Ornaments lists every ornament in catalog order.
var Ornaments = []Ornament{Blank, Dot1, Dot2, Dot3, Dot4, Line1, Line2, Line3}

// String returns the ornament name, e.g. "dot2".
func (o Ornament) String() string {
	switch o {
	case Blank:
		return "blank"
	case Dot1:
		return "dot1"
	case Dot2:
		return "dot2"
	case Dot3:
		return "dot3"
	case Dot4:
		return "dot4"
	case Line1:
		return "line1"
	case Line2:
		return "line2"
	case Line3:
		return "line3"
	default:
		return fmt.Sprintf("ornament(%d)", int(o))
	}
}

// IsDot reports whether the ornament is drawn with dots.
func (o Ornament) IsDot() bool { return o >= Dot1 && o <= Dot4 }

// IsLine reports whether the ornament is drawn with lines.
func (o Ornament) IsLine() bool { return o >= Line1 && o <= Line3 }

// Offsets returns the mark angles relative to the inward direction.
// lineAngle is only consulted by Line1.
func (o Ornament) Offsets(lineAngle geom.Degree) []geom.Degree {
	switch o {
	case Dot1:
		return []geom.Degree{0}
	case Dot2, Line2:
		return []geom.Degree{-45, 45}
	case Dot3, Line3:
		return []geom.Degree{-45, 0, 45}
	case Dot4:
		return []geom.Degree{-30, -15, 15, 30}
	case Line1:
		return []geom.Degree{lineAngle}
	default:
		return nil
	}
}

// Mark geometry in units of the letter size.
const (
	dotSpread  = 0.5
	dotRadius  = 0.08
	lineSpread = 0.8
	lineLength = 0.6
)

// anchorScale is how many letter sizes inward from the letter position the
// decoration pivot sits.
func anchorScale(s Shape) (float64, error) {
	switch s {
	case ShapeCrescent:
		return 1.1, nil
	case ShapeFull:
		return 1.4, nil
	case ShapeQuarter, ShapeNew:
		return 0.2, nil
	case ShapeVowel:
		return 0, errs.Wrap(errs.ErrCodeUnimplemented, ErrUnimplemented, "decorations on vowel shapes")
	default:
		return 0, errs.Wrap(errs.ErrCodeInternal, ErrUnknownShape, "decorate %s", s)
	}
}

// Decoration wraps a base with its ornament. It is the complete glyph of one
// letter.
type Decoration struct {
	Ornament Ornament
	Base     Base
	// Angle is the caller-supplied offset of a Line1 mark.
	Angle geom.Degree
}

// Count returns the number of mark drawings the ornament produces.
func (d Decoration) Count() int { return len(d.Ornament.Offsets(d.Angle)) }

// Drawings samples the ornament marks. Blank yields none, but the base shape
// must still be one that can carry marks.
func (d Decoration) Drawings() ([]geom.Drawing, error) {
	k, err := anchorScale(d.Base.Shape)
	if err != nil {
		return nil, err
	}
	offsets := d.Ornament.Offsets(d.Angle)
	if len(offsets) == 0 {
		if d.Ornament != Blank {
			return nil, errs.New(errs.ErrCodeInternal, "unknown ornament %s", d.Ornament)
		}
		return nil, nil
	}
	size := d.Base.Size()
	pivot := d.Base.Center.Add(d.Base.inward(k))
	inward := d.Base.Center.Angle() + 180

	out := make([]geom.Drawing, 0, len(offsets))
	for _, off := range offsets {
		dir := inward + off
		if d.Ornament.IsDot() {
			out = append(out, geom.Dot(pivot, geom.NewPolar(dotSpread*size, dir), dir, dotRadius*size))
		} else {
			out = append(out, geom.Line(pivot, geom.NewPolar(lineSpread*size, dir), dir, lineLength*size))
		}
	}
	return out, nil
}

// Render returns the base outline followed by the ornament marks.
func (d Decoration) Render() ([]geom.Drawing, error) {
	base, err := d.Base.Drawing()
	if err != nil {
		return nil, err
	}
	marks, err := d.Drawings()
	if err != nil {
		return nil, err
	}
	return append([]geom.Drawing{base}, marks...), nil
}
