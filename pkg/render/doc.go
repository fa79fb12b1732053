// Package render turns laid-out words into files.
//
// The [sink] subpackage strokes a layout as SVG (and, through conversion, PNG
// and PDF) or exports it as JSON. The [nodelink] subpackage describes the
// same word as a Graphviz ring of letters joined by their stitches.
//
// [ToPDF] and [ToPNG] convert any SVG with the external rsvg-convert tool
// (from librsvg):
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/gallifreyan/pkg/render/sink
// [nodelink]: github.com/matzehuels/gallifreyan/pkg/render/nodelink
package render
