// Package glyph is the shape and decoration catalog of the circular script.
//
// A letter is drawn as one [Base] shape decorated by exactly one
// [Decoration]. Bases come in five variants:
//
//	Shape     Geometry                                       Edge
//	Vowel     small ring around the satellite                no
//	Crescent  arc [a+30°, a+330°], center 0.9·size inward    yes
//	Full      closed ring, center 1.2·size inward            no
//	Quarter   arc [a+95°, a+265°], centered on the ring      yes
//	New       closed ring centered on the ring               no
//
// where a is the letter's angle on the word ring. Edge-bearing shapes leave
// a gap in the ring; [Base.StartingAngle] and [Base.EndingAngle] locate the
// two gap endpoints so the layout can stitch neighbours together.
//
// Decorations add 0–4 dots or 1–3 radiating lines. Their pivot sits a fixed
// number of letter sizes inward from the letter position, chosen per base:
// Crescent 1.1, Full 1.4, Quarter and New 0.2. Decorating a Vowel base is a
// known gap and fails with [ErrUnimplemented].
package glyph
