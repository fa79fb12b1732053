// Package nodelink renders a laid-out word as a node-link diagram.
//
// Each letter becomes a node labelled with its base shape and ornament.
// Plain arrows follow reading order; bold arrows are the stitch arcs that
// close the word ring, labelled with the angle they sweep. Graphviz's circo
// engine arranges the nodes on a circle, mirroring the glyph ring.
//
//	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
