package geom

import "golang.org/x/image/math/f32"

// Mark tells a renderer how to stroke a Drawing.
type Mark int

const (
	// MarkPath is a poly-line to be stroked.
	MarkPath Mark = iota
	// MarkDot is a closed point cluster to be filled.
	MarkDot
)

// String returns "path" or "dot".
func (m Mark) String() string {
	switch m {
	case MarkPath:
		return "path"
	case MarkDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Drawing is one ordered sequence of Cartesian points. It is produced once by
// a primitive and handed to a renderer.
type Drawing struct {
	Kind   Mark
	Points []f32.Vec2
}

// Len returns the number of points.
func (d Drawing) Len() int { return len(d.Points) }

// Bounds returns the axis-aligned bounding box of the points. An empty
// drawing reports ok == false.
func (d Drawing) Bounds() (lo, hi f32.Vec2, ok bool) {
	if len(d.Points) == 0 {
		return lo, hi, false
	}
	lo, hi = d.Points[0], d.Points[0]
	for _, p := range d.Points[1:] {
		for i := range 2 {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return lo, hi, true
}
