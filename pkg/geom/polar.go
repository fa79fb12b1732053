package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f32"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

// ErrZeroDivisor is the cause reported when a Polar is divided by a value
// with zero radius.
var ErrZeroDivisor = errors.New("zero divisor radius")

// Polar is a point relative to the word's center. The radius is never
// negative; constructors flip the angle by 180° instead.
type Polar struct {
	radius float64
	angle  Degree
}

// Origin is the word's center.
var Origin = Polar{}

// NewPolar returns the point at the given radius and angle. A negative radius
// is folded into the opposite direction.
func NewPolar(radius float64, angle Degree) Polar {
	if radius < 0 {
		return Polar{radius: -radius, angle: angle + 180}
	}
	return Polar{radius: radius, angle: angle}
}

// Radius returns the distance from the word center.
func (p Polar) Radius() float64 { return p.radius }

// Angle returns the direction from the word center.
func (p Polar) Angle() Degree { return p.angle }

// Scale multiplies the radius by factor and keeps the angle.
// Scale(1) returns p unchanged.
func (p Polar) Scale(factor float64) Polar {
	return NewPolar(p.radius*factor, p.angle)
}

// ScaleAt multiplies the radius by factor and replaces the angle.
func (p Polar) ScaleAt(factor float64, angle Degree) Polar {
	return NewPolar(p.radius*factor, angle)
}

// Rotate returns p turned by delta around the word center.
func (p Polar) Rotate(delta Degree) Polar {
	return Polar{radius: p.radius, angle: p.angle + delta}
}

// Divide shrinks the radius by d's radius and rotates by minus d's angle,
// the polar form of complex division. It derives satellite anchors from a
// letter's main position.
func (p Polar) Divide(d Polar) (Polar, error) {
	if d.radius == 0 {
		return Polar{}, errs.Wrap(errs.ErrCodeGeometry, ErrZeroDivisor, "divide %s by %s", p, d)
	}
	return Polar{radius: p.radius / d.radius, angle: p.angle - d.angle}, nil
}

// Add returns the vector sum of p and q in polar form. When the sum is the
// origin the angle of p is kept.
func (p Polar) Add(q Polar) Polar {
	px, py := p.Cartesian()
	qx, qy := q.Cartesian()
	x, y := px+qx, py+qy
	r := math.Hypot(x, y)
	if r == 0 {
		return Polar{angle: p.angle}
	}
	return Polar{radius: r, angle: FromRadians(math.Atan2(y, x))}
}

// Cartesian converts p to (x, y).
func (p Polar) Cartesian() (x, y float64) {
	s, c := math.Sincos(p.angle.Radians())
	return p.radius * c, p.radius * s
}

// Point converts p to a single-precision point for drawings.
func (p Polar) Point() f32.Vec2 {
	x, y := p.Cartesian()
	return f32.Vec2{float32(x), float32(y)}
}

// String formats p as "(r∠a)".
func (p Polar) String() string {
	return fmt.Sprintf("(%g∠%s)", p.radius, p.angle)
}
