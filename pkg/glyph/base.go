package glyph

import (
	"errors"
	"fmt"
	"math"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
)

var (
	// ErrUnimplemented marks geometry the script does not define yet (vowels).
	ErrUnimplemented = errors.New("unimplemented")

	// ErrNoEdge is returned when gap angles are requested from a closed shape.
	ErrNoEdge = errors.New("shape has no edge")

	// ErrUnknownShape is returned for Shape values outside the catalog.
	ErrUnknownShape = errors.New("unknown shape")
)

// Shape identifies one of the five base shapes.
type Shape int

const (
	ShapeVowel Shape = iota
	ShapeCrescent
	ShapeFull
	ShapeQuarter
	ShapeNew
)

// Shapes lists every shape in catalog order.
var Shapes = []Shape{ShapeVowel, ShapeCrescent, ShapeFull, ShapeQuarter, ShapeNew}

// String returns the lowercase shape name.
func (s Shape) String() string {
	switch s {
	case ShapeVowel:
		return "vowel"
	case ShapeCrescent:
		return "crescent"
	case ShapeFull:
		return "full"
	case ShapeQuarter:
		return "quarter"
	case ShapeNew:
		return "new"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// HasEdge reports whether the shape opens a gap in the word ring.
func (s Shape) HasEdge() bool {
	return s == ShapeCrescent || s == ShapeQuarter
}

// Shape geometry in units of the letter size.
const (
	vowelRadius   = 0.5
	crescentInset = 0.9
	fullInset     = 1.2
)

// Characteristic gap offsets used to solve the stitching angles.
const (
	CrescentGap geom.Degree = 30
	QuarterGap  geom.Degree = 90
)

var (
	crescentSweep = geom.AngleRange{Start: 30, End: 330}
	quarterSweep  = geom.AngleRange{Start: 95, End: 265}
)

// Base is a positioned base shape. Center is the letter's position on the
// word ring; Satellite is a vector of letter-size length pointing away from
// the word center.
type Base struct {
	Shape     Shape
	Center    geom.Polar
	Satellite geom.Polar
}

// NewBase places shape at position with the given letter size. The satellite
// is derived from position by dividing out its radius, so position must not
// be the word center.
func NewBase(shape Shape, position geom.Polar, size float64) (Base, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return Base{}, errs.New(errs.ErrCodeGeometry, "letter size must be positive and finite, got %v", size)
	}
	sat, err := position.Divide(geom.NewPolar(position.Radius()/size, 0))
	if err != nil {
		return Base{}, errs.Wrap(errs.ErrCodeGeometry, err, "letter at %s has no direction", position)
	}
	return Base{Shape: shape, Center: position, Satellite: sat}, nil
}

// Size returns the letter size.
func (b Base) Size() float64 { return b.Satellite.Radius() }

// HasEdge reports whether the base opens a gap in the word ring.
func (b Base) HasEdge() bool { return b.Shape.HasEdge() }

// inward returns the offset of length k letter sizes toward the word center.
func (b Base) inward(k float64) geom.Polar {
	return b.Satellite.ScaleAt(k, b.Center.Angle()+180)
}

// Drawing samples the base outline.
func (b Base) Drawing() (geom.Drawing, error) {
	a := b.Center.Angle()
	size := b.Size()

	switch b.Shape {
	case ShapeVowel:
		return geom.Arc(b.Center, b.Satellite, vowelRadius*size, geom.Turn), nil
	case ShapeCrescent:
		return geom.Arc(b.Center, b.inward(crescentInset), size, shift(crescentSweep, a)), nil
	case ShapeFull:
		return geom.Arc(b.Center, b.inward(fullInset), size, geom.Turn), nil
	case ShapeQuarter:
		return geom.Arc(b.Center, geom.Origin, size, shift(quarterSweep, a)), nil
	case ShapeNew:
		return geom.Arc(b.Center, geom.Origin, size, geom.Turn), nil
	default:
		return geom.Drawing{}, errs.Wrap(errs.ErrCodeInternal, ErrUnknownShape, "draw %s", b.Shape)
	}
}

// StartingAngle is the ring angle where the gap opens, before the letter.
func (b Base) StartingAngle() (geom.Degree, error) {
	half, err := b.halfGap()
	if err != nil {
		return 0, err
	}
	return b.Center.Angle() - half, nil
}

// EndingAngle is the ring angle where the gap closes, after the letter.
func (b Base) EndingAngle() (geom.Degree, error) {
	half, err := b.halfGap()
	if err != nil {
		return 0, err
	}
	return b.Center.Angle() + half, nil
}

// halfGap solves the angle at the word center subtended by half the gap.
func (b Base) halfGap() (geom.Degree, error) {
	var k geom.Degree
	switch b.Shape {
	case ShapeCrescent:
		k = CrescentGap
	case ShapeQuarter:
		k = QuarterGap
	default:
		return 0, errs.Wrap(errs.ErrCodeGeometry, ErrNoEdge, "%s shape", b.Shape)
	}
	half, err := geom.LawOfSinesAngle(b.Size(), b.Center.Radius(), k)
	if err != nil {
		return 0, fmt.Errorf("%s gap at radius %g: %w", b.Shape, b.Center.Radius(), err)
	}
	return half, nil
}

func shift(r geom.AngleRange, by geom.Degree) geom.AngleRange {
	return geom.AngleRange{Start: r.Start + by, End: r.End + by}
}
