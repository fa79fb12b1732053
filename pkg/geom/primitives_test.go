package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/f32"

	errs "github.com/matzehuels/gallifreyan/pkg/errors"
)

var approxPoints = cmpopts.EquateApprox(0, 1e-5)

func TestLawOfSinesAngle(t *testing.T) {
	tests := []struct {
		name                   string
		knownSide, unknownSide float64
		opposite               Degree
		want                   Degree
	}{
		{"right angle", 2, 2, 90, 90},
		{"half", 1, 2, 90, 30},
		{"crescent gap at radius 6", 2, 6, 30, Degree(math.Asin(1.0/6) * 180 / math.Pi)},
		{"quarter gap at radius 6", 2, 6, 90, Degree(math.Asin(1.0/3) * 180 / math.Pi)},
		{"zero side", 0, 5, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LawOfSinesAngle(tt.knownSide, tt.unknownSide, tt.opposite)
			if err != nil {
				t.Fatalf("LawOfSinesAngle: %v", err)
			}
			if !approx(float64(got), float64(tt.want)) {
				t.Errorf("LawOfSinesAngle(%v, %v, %v) = %v, want %v",
					tt.knownSide, tt.unknownSide, tt.opposite, got, tt.want)
			}
		})
	}
}

func TestLawOfSinesAngleDegenerate(t *testing.T) {
	tests := []struct {
		name                   string
		knownSide, unknownSide float64
		opposite               Degree
	}{
		{"argument above one", 6, 2, 30},
		{"argument below minus one", 6, 2, -30},
		{"zero opposite side", 1, 0, 30},
		{"negative side", -1, 2, 30},
		{"nan side", math.NaN(), 2, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LawOfSinesAngle(tt.knownSide, tt.unknownSide, tt.opposite)
			if !errors.Is(err, ErrDegenerateTriangle) {
				t.Fatalf("error = %v, want ErrDegenerateTriangle", err)
			}
			if !errs.Is(err, errs.ErrCodeGeometry) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeGeometry)
			}
			if math.IsNaN(float64(got)) {
				t.Error("result is NaN")
			}
		})
	}
}

func TestArcFullRingIsClosed(t *testing.T) {
	d := Arc(NewPolar(6, 0), Origin, 2, Turn)

	if d.Kind != MarkPath {
		t.Errorf("Kind = %v, want path", d.Kind)
	}
	if d.Len() != 361 {
		t.Errorf("Len() = %d, want 361", d.Len())
	}
	if d.Points[0] != d.Points[d.Len()-1] {
		t.Errorf("ring not closed: first %v, last %v", d.Points[0], d.Points[d.Len()-1])
	}
	if diff := cmp.Diff(f32.Vec2{8, 0}, d.Points[0], approxPoints); diff != "" {
		t.Errorf("first point mismatch (-want +got):\n%s", diff)
	}
}

func TestArcSampling(t *testing.T) {
	tests := []struct {
		name  string
		r     AngleRange
		step  Degree
		count int
		last  f32.Vec2
	}{
		{"quarter turn", AngleRange{0, 90}, 1, 91, f32.Vec2{0, 1}},
		{"clockwise", AngleRange{90, 0}, 1, 91, f32.Vec2{1, 0}},
		{"coarse step", AngleRange{0, 180}, 45, 5, f32.Vec2{-1, 0}},
		{"uneven step", AngleRange{0, 10}, 3, 5, f32.Vec2{float32(math.Cos(10 * math.Pi / 180)), float32(math.Sin(10 * math.Pi / 180))}},
		{"empty range", AngleRange{30, 30}, 1, 1, f32.Vec2{float32(math.Cos(math.Pi / 6)), 0.5}},
		{"invalid step falls back", AngleRange{0, 2}, -1, 3, f32.Vec2{float32(math.Cos(2 * math.Pi / 180)), float32(math.Sin(2 * math.Pi / 180))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ArcWithStep(Origin, Origin, 1, tt.r, tt.step)
			if d.Len() != tt.count {
				t.Fatalf("Len() = %d, want %d", d.Len(), tt.count)
			}
			if diff := cmp.Diff(tt.last, d.Points[d.Len()-1], approxPoints); diff != "" {
				t.Errorf("last point mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArcSatelliteOffset(t *testing.T) {
	// Circle centered at (0, -6) + (0, 1.2) = (0, -4.8) with radius 1.
	d := Arc(NewPolar(6, -90), NewPolar(1.2, 90), 1, AngleRange{0, 0})
	if diff := cmp.Diff(f32.Vec2{1, -4.8}, d.Points[0], approxPoints); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
}

func TestDot(t *testing.T) {
	d := Dot(NewPolar(3, 0), NewPolar(1, 0), 90, 0.5)

	if d.Kind != MarkDot {
		t.Errorf("Kind = %v, want dot", d.Kind)
	}
	if d.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", d.Len())
	}
	if d.Points[0] != d.Points[8] {
		t.Error("dot cluster is not closed")
	}
	// First vertex faces the direction: (4, 0) + 0.5 along 90°.
	if diff := cmp.Diff(f32.Vec2{4, 0.5}, d.Points[0], approxPoints); diff != "" {
		t.Errorf("first vertex mismatch (-want +got):\n%s", diff)
	}
}

func TestLine(t *testing.T) {
	d := Line(Origin, NewPolar(1, 0), 90, 2)
	want := []f32.Vec2{{1, 0}, {1, 2}}
	if diff := cmp.Diff(want, d.Points, approxPoints); diff != "" {
		t.Errorf("Line mismatch (-want +got):\n%s", diff)
	}
	if d.Kind != MarkPath {
		t.Errorf("Kind = %v, want path", d.Kind)
	}
}

func TestDrawArc(t *testing.T) {
	d := DrawArc(6, AngleRange{-90, 0})
	want := []f32.Vec2{{0, -6}, {6, 0}}
	got := []f32.Vec2{d.Points[0], d.Points[d.Len()-1]}
	if diff := cmp.Diff(want, got, approxPoints); diff != "" {
		t.Errorf("DrawArc endpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawingBounds(t *testing.T) {
	if _, _, ok := (Drawing{}).Bounds(); ok {
		t.Error("empty drawing should report no bounds")
	}

	lo, hi, ok := DrawArc(2, Turn).Bounds()
	if !ok {
		t.Fatal("ring should report bounds")
	}
	if diff := cmp.Diff([]f32.Vec2{{-2, -2}, {2, 2}}, []f32.Vec2{lo, hi}, approxPoints); diff != "" {
		t.Errorf("Bounds mismatch (-want +got):\n%s", diff)
	}
}
