package geom

import (
	"errors"
	"math"

	"golang.org/x/image/math/f32"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// ErrDegenerateTriangle is the cause reported when a law-of-sines solve has
// no real solution.
var ErrDegenerateTriangle = errors.New("degenerate triangle")

const (
	// DefaultStep is the angular sampling step of arcs.
	DefaultStep Degree = 1

	// dotVertices is the number of distinct points in a dot cluster.
	dotVertices = 8
)

// LawOfSinesAngle returns the angle opposite knownSide in a triangle where
// unknownSide lies opposite the known angle:
//
//	asin(knownSide / unknownSide · sin(opposite))
//
// It fails with ErrDegenerateTriangle when the sine argument leaves [-1, 1]
// or unknownSide is not positive. The result is never NaN.
func LawOfSinesAngle(knownSide, unknownSide float64, opposite Degree) (Degree, error) {
	if !(unknownSide > 0) || knownSide < 0 {
		return 0, errs.Wrap(errs.ErrCodeGeometry, ErrDegenerateTriangle,
			"sides %g and %g do not form a triangle", knownSide, unknownSide)
	}
	v := knownSide / unknownSide * math.Sin(opposite.Radians())
	if math.IsNaN(v) || v < -1 || v > 1 {
		return 0, errs.Wrap(errs.ErrCodeGeometry, ErrDegenerateTriangle,
			"sine argument %.4f outside [-1, 1]", v)
	}
	return FromRadians(math.Asin(v)), nil
}

// Arc samples the circle of radius satelliteRadius centered at
// center ⊕ satellite across r, at DefaultStep increments. Both endpoints are
// included; a range of a whole turn or more yields a closed ring whose last
// point repeats the first.
func Arc(center, satellite Polar, satelliteRadius float64, r AngleRange) Drawing {
	return ArcWithStep(center, satellite, satelliteRadius, r, DefaultStep)
}

// ArcWithStep is Arc with an explicit angular step. Non-positive steps fall
// back to DefaultStep.
func ArcWithStep(center, satellite Polar, satelliteRadius float64, r AngleRange, step Degree) Drawing {
	if step <= 0 {
		step = DefaultStep
	}
	ox, oy := center.Add(satellite).Cartesian()
	span := float64(r.Span())
	n := int(math.Ceil(math.Abs(span) / float64(step)))

	points := make([]f32.Vec2, n+1)
	for i := range points {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		s, c := math.Sincos((r.Start + Degree(span*t)).Radians())
		points[i] = f32.Vec2{
			float32(ox + satelliteRadius*c),
			float32(oy + satelliteRadius*s),
		}
	}
	if r.Full() && n > 0 {
		points[n] = points[0]
	}
	return Drawing{Kind: MarkPath, Points: points}
}

// Dot returns a closed point cluster of the given radius around
// center ⊕ satellite. Its first vertex faces direction.
func Dot(center, satellite Polar, direction Degree, size float64) Drawing {
	ox, oy := center.Add(satellite).Cartesian()
	points := make([]f32.Vec2, dotVertices+1)
	for i := range dotVertices {
		a := direction + Degree(360*float64(i)/dotVertices)
		s, c := math.Sincos(a.Radians())
		points[i] = f32.Vec2{float32(ox + size*c), float32(oy + size*s)}
	}
	points[dotVertices] = points[0]
	return Drawing{Kind: MarkDot, Points: points}
}

// Line returns a segment of the given length starting at center ⊕ satellite
// and running along direction.
func Line(center, satellite Polar, direction Degree, length float64) Drawing {
	start := center.Add(satellite)
	end := start.Add(NewPolar(length, direction))
	return Drawing{Kind: MarkPath, Points: []f32.Vec2{start.Point(), end.Point()}}
}

// DrawArc samples an arc of the given radius about the word center.
func DrawArc(radius float64, r AngleRange) Drawing {
	return Arc(Origin, Origin, radius, r)
}
