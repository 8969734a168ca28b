package kanjize

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// unitGlyph is one recognizable big-unit spelling.
type unitGlyph struct {
	glyph    string
	exponent int
}

// parseUnits lists every big-unit spelling the parser recognizes, including
// the daiji 萬.
var parseUnits = func() []unitGlyph {
	units := make([]unitGlyph, 0, len(bigUnits)+1)
	for _, u := range bigUnits {
		units = append(units, unitGlyph{u.Glyph, u.Exponent})
		if u.Daiji != u.Glyph {
			units = append(units, unitGlyph{u.Daiji, u.Exponent})
		}
	}
	return units
}()

const (
	negativeSigns = "-－⁻"
	positiveSigns = "+＋⁺₊"
)

// KanjiToNumber parses a kanji numeral in any style and returns its integer
// value.
//
// The numeral is a sequence of (short segment, big unit) pairs in strictly
// decreasing unit order followed by an optional trailing short segment, with
// an optional leading sign. Every parse failure is a *NumeralError wrapping
// ErrInvalidNumeral. A numeral whose fractional coefficients are not fully
// absorbed by their units ("1.5") is rejected with ReasonTooPrecise; use
// KanjiToRat to obtain such values exactly.
func KanjiToNumber(s string) (*big.Int, error) {
	r, err := KanjiToRat(s)
	if err != nil {
		return nil, err
	}
	if !r.IsInt() {
		return nil, newNumeralError(s, ReasonTooPrecise,
			"value %s is not an integer", r.RatString())
	}
	return new(big.Int).Set(r.Num()), nil
}

// ParseInt64 is KanjiToNumber for values that fit in an int64. Larger
// values fail with ErrOutOfRange.
func ParseInt64(s string) (int64, error) {
	n, err := KanjiToNumber(s)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: %s does not fit in int64", ErrOutOfRange, n.String())
	}
	return n.Int64(), nil
}

// KanjiToRat parses a kanji numeral exactly. It accepts everything
// KanjiToNumber accepts, and additionally returns non-integral values such
// as "1.5" or "2.25千" (2250 is integral; "0.0001千" is not).
func KanjiToRat(s string) (*big.Rat, error) {
	if s == "" {
		return nil, newNumeralError(s, ReasonEmpty, "empty input")
	}
	if s == ZeroKanjiGlyph || s == ZeroSignGlyph {
		return new(big.Rat), nil
	}

	body := width.Narrow.String(s)
	negative := false
	if r, size := utf8.DecodeRuneInString(body); strings.ContainsRune(negativeSigns, r) {
		negative = true
		body = body[size:]
	} else if strings.ContainsRune(positiveSigns, r) {
		body = body[size:]
	}
	if body == "" {
		return nil, newNumeralError(s, ReasonSignOnly, "sign without a number")
	}

	total, err := parseUnsigned(s, body)
	if err != nil {
		return nil, err
	}
	if negative {
		total.Neg(total)
	}
	return total, nil
}

// parseUnsigned walks the big units of body from left to right. Each
// iteration consumes one (prefix, unit) pair; the loop ends with the
// trailing short segment.
func parseUnsigned(input, body string) (*big.Rat, error) {
	total := new(big.Rat)
	prevExp := -1
	rest := body

	for rest != "" {
		idx, unit := findUnit(rest)

		var prefix string
		exp := 0
		if idx < 0 {
			prefix, rest = rest, ""
		} else {
			prefix = rest[:idx]
			if prefix == "" {
				return nil, newNumeralError(input, ReasonMissingQuantity,
					"%s needs a leading number", unit.glyph)
			}
			if prevExp >= 0 && unit.exponent >= prevExp {
				return nil, newNumeralError(input, ReasonUnitOrder,
					"%s cannot follow a unit of 10^%d", unit.glyph, prevExp)
			}
			exp = unit.exponent
			rest = rest[idx+len(unit.glyph):]
		}

		fragment, err := parseShort(input, prefix, exp)
		if err != nil {
			return nil, err
		}

		if prevExp >= 0 && fragment.Cmp(new(big.Rat).SetInt(pow10(prevExp))) >= 0 {
			return nil, newNumeralError(input, ReasonFragmentOverflow,
				"%q reaches the preceding unit of 10^%d", prefix, prevExp)
		}

		total.Add(total, fragment)
		if idx < 0 {
			break
		}
		prevExp = exp
	}

	return total, nil
}

// findUnit returns the byte offset of the leftmost big-unit glyph in s and
// the unit found there, or -1.
func findUnit(s string) (int, unitGlyph) {
	for i := range s {
		for _, u := range parseUnits {
			if strings.HasPrefix(s[i:], u.glyph) {
				return i, u
			}
		}
	}
	return -1, unitGlyph{}
}
