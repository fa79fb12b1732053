package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/gallifreyan/pkg/geom"
	"github.com/matzehuels/gallifreyan/pkg/layout"
)

const (
	defaultSize = 640.0
	marginRatio = 0.08
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style         Style
	width, height float64
	guide         bool
}

// WithStyle sets the colour scheme.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithSize sets the output size in pixels. Non-positive values keep the default.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// WithGuide draws the full word ring faintly beneath the glyphs.
func WithGuide() SVGOption { return func(r *svgRenderer) { r.guide = true } }

// RenderSVG strokes the layout.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: Ink, width: defaultSize, height: defaultSize}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, w, h := frame(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(minX), num(minY), num(w), num(h), r.width, r.height)
	fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(minX), num(minY), num(w), num(h), r.style.Background)
	fmt.Fprintf(&buf, `  <g fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round">`+"\n",
		r.style.Stroke, num(r.style.StrokeWidth))

	if r.guide {
		fmt.Fprintf(&buf, `    <circle class="guide" cx="0" cy="0" r="%s" stroke="%s" vector-effect="non-scaling-stroke" stroke-dasharray="4 4"/>`+"\n",
			num(l.Radius), r.style.Guide)
	}

	rest := l.Drawings
	for _, c := range l.Characters {
		if !c.Drawn {
			continue
		}
		n := 1 + c.Glyph.Count()
		if n > len(rest) {
			break
		}
		fmt.Fprintf(&buf, `    <g class="letter" data-letter="%s" data-shape="%s">`+"\n", c.Letter, c.Glyph.Base.Shape)
		for _, d := range rest[:n] {
			writeDrawing(&buf, d, r.style, "      ")
		}
		buf.WriteString("    </g>\n")
		rest = rest[n:]
	}

	if len(rest) > 0 {
		buf.WriteString(`    <g class="stitches">` + "\n")
		for _, d := range rest {
			writeDrawing(&buf, d, r.style, "      ")
		}
		buf.WriteString("    </g>\n")
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func writeDrawing(buf *bytes.Buffer, d geom.Drawing, s Style, indent string) {
	if d.Len() == 0 {
		return
	}
	buf.WriteString(indent)
	switch d.Kind {
	case geom.MarkDot:
		fmt.Fprintf(buf, `<polygon points="%s" fill="%s" stroke="none"/>`, points(d), s.Stroke)
	default:
		fmt.Fprintf(buf, `<polyline points="%s" vector-effect="non-scaling-stroke"/>`, points(d))
	}
	buf.WriteByte('\n')
}

func points(d geom.Drawing) string {
	var b bytes.Buffer
	for i, p := range d.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(float64(p[0])))
		b.WriteByte(',')
		b.WriteString(num(float64(p[1])))
	}
	return b.String()
}

// frame returns the viewBox covering every drawing, squared and padded.
// Word coordinates are used as SVG coordinates unchanged: y grows downward,
// so -90° is the top of the ring and angles advance clockwise.
func frame(l layout.Layout) (minX, minY, w, h float64) {
	lo := [2]float64{-l.Radius, -l.Radius}
	hi := [2]float64{l.Radius, l.Radius}
	for _, d := range l.Drawings {
		dlo, dhi, ok := d.Bounds()
		if !ok {
			continue
		}
		for i := range 2 {
			lo[i] = math.Min(lo[i], float64(dlo[i]))
			hi[i] = math.Max(hi[i], float64(dhi[i]))
		}
	}

	side := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	if side <= 0 {
		side = 1
	}
	side *= 1 + 2*marginRatio
	cx, cy := (lo[0]+hi[0])/2, (lo[1]+hi[1])/2
	return cx - side/2, cy - side/2, side, side
}

func num(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
