// Package geom provides the coordinate model and geometry primitives used to
// draw circular-script words.
//
// # Coordinate Model
//
// All geometry is computed in a local polar frame centered on the word's
// midpoint. A [Polar] is a (radius, angle) pair with a non-negative radius;
// angles are [Degree] values and are only converted to radians inside the
// trigonometric primitives.
//
//	p := geom.NewPolar(6, -90)  // top of a ring with radius 6
//	sat := p.ScaleAt(1.2, 0)     // 1.2× radius, angle overridden to 0°
//
// Conversion to Cartesian coordinates happens only when points are sampled
// into a [Drawing].
//
// # Primitives
//
//   - [LawOfSinesAngle]: solve the angle opposite a side of a triangle
//   - [Arc]: sample a circle or circular arc around an offset center
//   - [Dot]: a small point cluster marking a decoration
//   - [Line]: a short segment radiating in a direction
//   - [DrawArc]: an arc about the word center, used for stitching
//
// Every primitive is pure: the same inputs always yield the same points.
// Precondition violations (for example a sine argument outside [-1, 1]) are
// reported as errors with code GEOMETRY_PRECONDITION instead of producing NaN.
package geom
