package types

// KanjiResponse is returned by GET /v1/kanji.
type KanjiResponse struct {
	// Number is the input in canonical decimal form.
	Number string `json:"number"`

	// Kanji is the rendered numeral.
	Kanji string `json:"kanji"`

	// Style is the style that was applied.
	Style string `json:"style"`

	// Daiji reports whether the formal glyph set was used.
	Daiji bool `json:"daiji"`
}

// NumberResponse is returned by GET /v1/number.
type NumberResponse struct {
	// Kanji echoes the input numeral.
	Kanji string `json:"kanji"`

	// Number is the decimal value. It is omitted when an exact parse
	// produced a non-integral value.
	Number string `json:"number,omitempty"`

	// Rational is the exact value as "a/b" or "a", present when exact
	// parsing was requested.
	Rational string `json:"rational,omitempty"`
}
