// Package sink writes laid-out words to output formats.
//
// [RenderSVG] strokes every path drawing as a polyline and fills every dot
// cluster. Glyph drawings are grouped per letter so the output can be styled
// or scripted; stitch arcs follow in their own group. Word coordinates map
// straight onto SVG space (y down), so the first consonant at -90° sits at
// the top and letters run clockwise. The picture is framed with a small
// margin and fills the requested pixel size regardless of ring radius.
//
//	svg := sink.RenderSVG(l, sink.WithStyle(sink.Chalk), sink.WithGuide())
//
// [RenderPNG] and [RenderPDF] convert the SVG through rsvg-convert.
// [RenderJSON] exports characters, stitches and raw drawing points.
package sink
