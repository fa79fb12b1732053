package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gallifreyan/pkg/layout"
	"github.com/matzehuels/gallifreyan/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds ring slot and angle to node labels.
	Detailed bool
}

// ToDOT describes a layout as a Graphviz ring: one node per letter, reading
// order as plain arrows, and one bold edge per stitch. Skipped vowels appear
// as dashed nodes.
//
// The result can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(l layout.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", l.Word.String())
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=20];\n")
	buf.WriteString("  edge [color=\"#7a869a\"];\n")
	buf.WriteString("\n")

	for i, c := range l.Characters {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, opts.Detailed))}
		if !c.Drawn {
			attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey")
		} else if c.Glyph.Base.HasEdge() {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(l.Characters); i++ {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(i-1), nodeID(i))
	}

	ids := make(map[int]int, len(l.Characters))
	var edged []int
	for i, c := range l.Characters {
		if c.Drawn && c.Glyph.Base.HasEdge() {
			ids[len(edged)] = i
			edged = append(edged, i)
		}
	}
	for k, s := range l.Stitches {
		from, to := ids[k], ids[(k+1)%len(edged)]
		fmt.Fprintf(&buf, "  %s -> %s [style=bold, color=\"#1b2a49\", label=%q];\n",
			nodeID(from), nodeID(to), fmt.Sprintf("%.1f°", float64(s.Range.Span())))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "c" + strconv.Itoa(i) }

func fmtLabel(c layout.Character, detailed bool) string {
	label := c.Letter.String()
	if c.Drawn {
		label += "\n" + c.Glyph.Base.Shape.String()
		if o := c.Glyph.Ornament.String(); o != "blank" {
			label += " " + o
		}
	}
	if detailed {
		label += fmt.Sprintf("\nslot %d at %s", c.Index, c.Position.Angle())
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz's circular layout.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.CIRCO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a plain
// viewBox so the diagram scales like the ring output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
