package glyph

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f32"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
	"github.com/matzehuels/gallifreyan/pkg/geom"
)

const eps = 1e-4

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func mustBase(t *testing.T, shape Shape, position geom.Polar, size float64) Base {
	t.Helper()
	b, err := NewBase(shape, position, size)
	if err != nil {
		t.Fatalf("NewBase(%s, %s, %v): %v", shape, position, size, err)
	}
	return b
}

func dist(p f32.Vec2, x, y float64) float64 {
	return math.Hypot(float64(p[0])-x, float64(p[1])-y)
}

func TestNewBaseSatellite(t *testing.T) {
	tests := []struct {
		position geom.Polar
		size     float64
	}{
		{geom.NewPolar(6, -90), 2},
		{geom.NewPolar(6, 0), 2},
		{geom.NewPolar(10, 135), 1.5},
	}

	for _, tt := range tests {
		b := mustBase(t, ShapeNew, tt.position, tt.size)
		if !approx(b.Satellite.Radius(), tt.size) {
			t.Errorf("%s: satellite radius = %v, want %v", tt.position, b.Satellite.Radius(), tt.size)
		}
		if b.Satellite.Angle() != tt.position.Angle() {
			t.Errorf("%s: satellite angle = %v, want %v", tt.position, b.Satellite.Angle(), tt.position.Angle())
		}
		if b.Center != tt.position {
			t.Errorf("Center = %s, want %s", b.Center, tt.position)
		}
	}
}

func TestNewBaseErrors(t *testing.T) {
	_, err := NewBase(ShapeNew, geom.Origin, 2)
	if !errors.Is(err, geom.ErrZeroDivisor) {
		t.Errorf("origin: error = %v, want ErrZeroDivisor", err)
	}
	if !errs.Is(err, errs.ErrCodeGeometry) {
		t.Errorf("origin: code = %v, want %v", errs.GetCode(err), errs.ErrCodeGeometry)
	}

	for _, size := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewBase(ShapeNew, geom.NewPolar(6, 0), size); !errs.Is(err, errs.ErrCodeGeometry) {
			t.Errorf("size %v: error = %v, want geometry precondition", size, err)
		}
	}
}

func TestShapeHasEdge(t *testing.T) {
	want := map[Shape]bool{
		ShapeVowel:    false,
		ShapeCrescent: true,
		ShapeFull:     false,
		ShapeQuarter:  true,
		ShapeNew:      false,
	}
	for _, s := range Shapes {
		if got := s.HasEdge(); got != want[s] {
			t.Errorf("%s.HasEdge() = %v, want %v", s, got, want[s])
		}
	}
}

func TestBaseGapAngles(t *testing.T) {
	tests := []struct {
		shape Shape
		at    geom.Degree
		half  float64
	}{
		{ShapeQuarter, 0, math.Asin(1.0/3) * 180 / math.Pi},
		{ShapeQuarter, -90, math.Asin(1.0/3) * 180 / math.Pi},
		{ShapeCrescent, 0, math.Asin(1.0/6) * 180 / math.Pi},
		{ShapeCrescent, 180, math.Asin(1.0/6) * 180 / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			b := mustBase(t, tt.shape, geom.NewPolar(6, tt.at), 2)
			start, err := b.StartingAngle()
			if err != nil {
				t.Fatalf("StartingAngle: %v", err)
			}
			end, err := b.EndingAngle()
			if err != nil {
				t.Fatalf("EndingAngle: %v", err)
			}
			if !approx(float64(start), float64(tt.at)-tt.half) {
				t.Errorf("StartingAngle = %v, want %v", start, float64(tt.at)-tt.half)
			}
			if !approx(float64(end), float64(tt.at)+tt.half) {
				t.Errorf("EndingAngle = %v, want %v", end, float64(tt.at)+tt.half)
			}
		})
	}
}

func TestBaseGapAnglesWithoutEdge(t *testing.T) {
	for _, s := range []Shape{ShapeVowel, ShapeFull, ShapeNew} {
		b := mustBase(t, s, geom.NewPolar(6, 0), 2)
		if _, err := b.StartingAngle(); !errors.Is(err, ErrNoEdge) {
			t.Errorf("%s.StartingAngle() error = %v, want ErrNoEdge", s, err)
		}
		if _, err := b.EndingAngle(); !errors.Is(err, ErrNoEdge) {
			t.Errorf("%s.EndingAngle() error = %v, want ErrNoEdge", s, err)
		}
	}
}

func TestBaseGapAnglesDegenerate(t *testing.T) {
	b := mustBase(t, ShapeQuarter, geom.NewPolar(1, 0), 2)
	if _, err := b.StartingAngle(); !errors.Is(err, geom.ErrDegenerateTriangle) {
		t.Errorf("error = %v, want ErrDegenerateTriangle", err)
	}
}

func TestBaseDrawing(t *testing.T) {
	tests := []struct {
		shape      Shape
		points     int
		cx, radius float64
	}{
		{ShapeVowel, 361, 8, 1},
		{ShapeCrescent, 301, 4.2, 2},
		{ShapeFull, 361, 3.6, 2},
		{ShapeQuarter, 171, 6, 2},
		{ShapeNew, 361, 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			b := mustBase(t, tt.shape, geom.NewPolar(6, 0), 2)
			d, err := b.Drawing()
			if err != nil {
				t.Fatalf("Drawing: %v", err)
			}
			if d.Kind != geom.MarkPath {
				t.Errorf("Kind = %v, want path", d.Kind)
			}
			if d.Len() != tt.points {
				t.Errorf("Len = %d, want %d", d.Len(), tt.points)
			}
			for i, p := range d.Points {
				if got := dist(p, tt.cx, 0); math.Abs(got-tt.radius) > 1e-3 {
					t.Fatalf("point %d %v is %v from center, want %v", i, p, got, tt.radius)
				}
			}
		})
	}
}

func TestGapEndpointsLieOnRing(t *testing.T) {
	for _, s := range []Shape{ShapeCrescent, ShapeQuarter} {
		b := mustBase(t, s, geom.NewPolar(6, 0), 2)
		d, err := b.Drawing()
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		for _, p := range []f32.Vec2{d.Points[0], d.Points[d.Len()-1]} {
			if r := dist(p, 0, 0); math.Abs(r-6) > 0.2 {
				t.Errorf("%s endpoint %v at radius %v, want near 6", s, p, r)
			}
		}
	}
}

func TestBaseDrawingUnknownShape(t *testing.T) {
	b := Base{Shape: Shape(42), Center: geom.NewPolar(6, 0), Satellite: geom.NewPolar(2, 0)}
	if _, err := b.Drawing(); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("error = %v, want ErrUnknownShape", err)
	}
}
