package geom

import (
	"math"
	"strconv"
)

// Degree is an angle in degrees. Zero points along the positive x axis and
// angles grow counter-clockwise in the drawing frame.
type Degree float64

// FromRadians converts an angle in radians to degrees.
func FromRadians(r float64) Degree { return Degree(r * 180 / math.Pi) }

// Radians returns the angle in radians.
func (d Degree) Radians() float64 { return float64(d) * math.Pi / 180 }

// Add returns d + o.
func (d Degree) Add(o Degree) Degree { return d + o }

// Sub returns d - o.
func (d Degree) Sub(o Degree) Degree { return d - o }

// Normalize maps d into [0, 360).
func (d Degree) Normalize() Degree {
	m := math.Mod(float64(d), 360)
	if m < 0 {
		m += 360
	}
	return Degree(m)
}

// String formats the angle with a degree sign, e.g. "-90°".
func (d Degree) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64) + "°"
}

// AngleRange is a directed sweep from Start to End. End may be smaller than
// Start, in which case the sweep runs clockwise.
type AngleRange struct {
	Start, End Degree
}

// Span returns End - Start.
func (r AngleRange) Span() Degree { return r.End - r.Start }

// Full reports whether the range covers at least a whole turn.
func (r AngleRange) Full() bool { return math.Abs(float64(r.Span())) >= 360 }

// Turn is the full-circle range starting at 0°.
var Turn = AngleRange{Start: 0, End: 360}
