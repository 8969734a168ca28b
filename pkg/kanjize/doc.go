// Package kanjize converts integers to Japanese kanji numerals and back.
//
// # Overview
//
// Three output styles are supported:
//   - StyleAll: every digit and unit is a kanji ("五千八百七万六千九十九")
//   - StyleMixed: arabic digits with kanji big units ("5807万6099", "223兆4千億")
//   - StyleFlat: each decimal digit mapped to its glyph ("六〇一")
//
// Daiji (大字), the formal glyph set used on legal and financial documents,
// is selected with WithDaiji:
//
//	cfg, err := kanjize.NewConfiguration(kanjize.WithDaiji(true))
//	s, _ := kanjize.NumberToKanji(big.NewInt(211), cfg) // "弐佰拾壱"
//
// # Parsing
//
// KanjiToNumber accepts any of the styles above without being told which one
// was used, including digit-mixed short segments such as "2千2十5" and
// fractional coefficients that a unit absorbs ("1.5億"):
//
//	n, err := kanjize.KanjiToNumber("39京4385兆4895万")
//	if errors.Is(err, kanjize.ErrInvalidNumeral) {
//	    // reject input
//	}
//
// Ambiguous or overflowing input is rejected rather than corrected: units
// must appear in strictly decreasing order, and every fragment must stay
// below the unit consumed before it ("1万10千" is invalid).
//
// # Range
//
// The largest unit is 無量大数 (10^68), so ALL and MIXED output covers
// 0 ≤ |n| < 10^72. FLAT output has no upper bound.
//
// # Concurrency
//
// All tables are built at package initialisation and never modified, and
// Configuration is an immutable value, so every function in this package is
// safe for concurrent use.
package kanjize
