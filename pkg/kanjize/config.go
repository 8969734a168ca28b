package kanjize

import "strings"

// Style selects how NumberToKanji renders a number.
type Style string

const (
	// StyleAll renders digits and units as kanji: "二千二十五".
	StyleAll Style = "all"
	// StyleMixed renders each four-digit group in arabic digits followed by
	// its big unit: "5807万6099".
	StyleMixed Style = "mixed"
	// StyleFlat maps every decimal digit to a glyph without units: "六〇一".
	StyleFlat Style = "flat"
)

// ZeroGlyph selects the glyph used for zero.
type ZeroGlyph string

const (
	// ZeroKanji renders zero as 零.
	ZeroKanji ZeroGlyph = "kanji"
	// ZeroSign renders zero as 〇.
	ZeroSign ZeroGlyph = "sign"
)

// Glyph returns the rendered zero.
func (z ZeroGlyph) Glyph() string {
	if z == ZeroSign {
		return ZeroSignGlyph
	}
	return ZeroKanjiGlyph
}

// ParseStyle parses a style name case-insensitively. The empty string is the
// default style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StyleAll, nil
	case "mixed":
		return StyleMixed, nil
	case "flat":
		return StyleFlat, nil
	default:
		return "", &ConfigurationError{Field: "style", Value: s}
	}
}

// ParseZeroGlyph parses a zero glyph choice. Besides the names "kanji" and
// "sign" it accepts the glyphs themselves. The empty string means "derive
// from style" and is returned unchanged.
func ParseZeroGlyph(s string) (ZeroGlyph, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "kanji", ZeroKanjiGlyph:
		return ZeroKanji, nil
	case "sign", ZeroSignGlyph:
		return ZeroSign, nil
	default:
		return "", &ConfigurationError{Field: "zero", Value: s}
	}
}

// Configuration describes the output of NumberToKanji. It is immutable once
// built; use NewConfiguration to create one.
//
// The zero value is usable and matches NewConfiguration with no options.
type Configuration struct {
	style           Style
	zero            ZeroGlyph
	daiji           bool
	expandThousands bool
}

// Option configures a Configuration under construction.
type Option func(*Configuration)

// WithStyle sets the output style. Default: StyleAll.
func WithStyle(s Style) Option {
	return func(c *Configuration) { c.style = s }
}

// WithZero sets the zero glyph. Default: ZeroSign for StyleFlat, ZeroKanji
// otherwise.
func WithZero(z ZeroGlyph) Option {
	return func(c *Configuration) { c.zero = z }
}

// WithDaiji selects the formal glyph set (壱, 弐, 拾, 萬, ...). Default: false.
func WithDaiji(daiji bool) Option {
	return func(c *Configuration) { c.daiji = daiji }
}

// WithCompactThousands renders exact multiples of 1000 in StyleMixed as
// "<digit>千" instead of four arabic digits. Default: true.
func WithCompactThousands(compact bool) Option {
	return func(c *Configuration) { c.expandThousands = !compact }
}

// NewConfiguration builds a Configuration. It fails with a
// *ConfigurationError when the style or zero glyph is not recognized.
func NewConfiguration(opts ...Option) (Configuration, error) {
	c := Configuration{style: StyleAll}
	for _, opt := range opts {
		opt(&c)
	}

	style, err := ParseStyle(string(c.style))
	if err != nil {
		return Configuration{}, err
	}
	c.style = style

	zero, err := ParseZeroGlyph(string(c.zero))
	if err != nil {
		return Configuration{}, err
	}
	if zero == "" {
		zero = ZeroKanji
		if c.style == StyleFlat {
			zero = ZeroSign
		}
	}
	c.zero = zero

	return c, nil
}

// MustConfiguration is like NewConfiguration but panics on error. It is
// intended for package-level variables built from constant options.
func MustConfiguration(opts ...Option) Configuration {
	c, err := NewConfiguration(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfiguration renders in StyleAll with standard glyphs and 零.
var DefaultConfiguration = MustConfiguration()

// Style returns the output style.
func (c Configuration) Style() Style {
	if c.style == "" {
		return StyleAll
	}
	return c.style
}

// Zero returns the zero glyph choice.
func (c Configuration) Zero() ZeroGlyph {
	if c.zero == "" {
		if c.Style() == StyleFlat {
			return ZeroSign
		}
		return ZeroKanji
	}
	return c.zero
}

// ZeroGlyph returns the rendered zero.
func (c Configuration) ZeroGlyph() string {
	return c.Zero().Glyph()
}

// UseDaiji reports whether the formal glyph set is selected.
func (c Configuration) UseDaiji() bool {
	return c.daiji
}

// CompactThousands reports whether StyleMixed renders multiples of 1000 with
// the thousand glyph.
func (c Configuration) CompactThousands() bool {
	return !c.expandThousands
}
