// Package pkg holds the libraries behind the gallifreyan renderer.
//
// # Overview
//
// A word is drawn as circular script: each consonant is a glyph sitting on
// a word ring, and the ring is stitched closed between glyphs that cut it.
//
//  1. [geom] - polar coordinates and sampled primitives (arcs, dots, lines)
//  2. [glyph] - letter shapes and their dot or line decorations
//  3. [alphabet] - the letter table and the digraph-aware word parser
//  4. [layout] - ring placement and stitching
//  5. [pipeline] - orchestration (parse → layout → render) with caching
//
// # Data flow
//
//	"tchxd"
//	    ↓
//	[alphabet.Parse]  → T, CH, X, D
//	    ↓
//	[layout.Build]    → positioned glyphs + stitch arcs ([]geom.Drawing)
//	    ↓
//	[render/sink]     → SVG / PNG / PDF / JSON
//
// # Quick Start
//
//	w, err := alphabet.Parse("tchxd")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(w, 6)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
//
// Supporting packages: [cache] stores rendered artifacts, [errors] carries
// coded errors, [observability] exposes pipeline hooks and [buildinfo]
// reports the binary version.
//
// [geom]: github.com/matzehuels/gallifreyan/pkg/geom
// [glyph]: github.com/matzehuels/gallifreyan/pkg/glyph
// [alphabet]: github.com/matzehuels/gallifreyan/pkg/alphabet
// [layout]: github.com/matzehuels/gallifreyan/pkg/layout
// [pipeline]: github.com/matzehuels/gallifreyan/pkg/pipeline
// [render/sink]: github.com/matzehuels/gallifreyan/pkg/render/sink
// [cache]: github.com/matzehuels/gallifreyan/pkg/cache
// [errors]: github.com/matzehuels/gallifreyan/pkg/errors
// [observability]: github.com/matzehuels/gallifreyan/pkg/observability
// [buildinfo]: github.com/matzehuels/gallifreyan/pkg/buildinfo
package pkg
