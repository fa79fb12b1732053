// Package layout places the letters of a word around a ring and stitches the
// ring together.
//
// Consonants are spaced evenly: with n consonants the i-th sits at
// i·360/n − 90 degrees, so the first one is at the top of the ring in the
// y-down coordinates the renderers use. Vowels ride on the preceding consonant's position.
//
// Crescent and Quarter letters open a gap in the ring. After every glyph is
// drawn, [Build] joins consecutive gaps with arcs of the ring, wrapping from
// the last edge-bearing letter back to the first. A word with k such letters
// gets k stitches, except that a lone edge-bearing letter is stitched to
// itself around the rest of the ring. A stitch never sweeps past the next
// letter; where two gaps overlap it has zero length.
package layout
