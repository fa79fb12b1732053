// Package alphabet maps text onto the letters of the circular script.
//
// The alphabet has 34 letters: five vowels and 29 consonants, six of which
// are spelled with two Latin characters (CH, PH, WH, SH, TH, GH) and two more
// with QU and NG. [Parse] groups those digraphs greedily, case-insensitively,
// and resolves every token against the letter table:
//
//	w, err := alphabet.Parse("tchxd")
//	// w.String() == "TCHXD", w.Len() == 4
//
// Every letter has an [Entry] naming its base shape and ornament. Vowels are
// listed with Implemented == false: their geometry is not defined yet, and
// [Letter.Glyph] reports them with the UNIMPLEMENTED error code.
package alphabet
