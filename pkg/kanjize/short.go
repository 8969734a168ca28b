package kanjize

import (
	"math/big"
	"regexp"
	"strings"
)

// shortPattern splits a short segment into its thousand, hundred, ten and
// ones parts. Each part is optional; an empty part before its glyph means a
// coefficient of one.
var shortPattern = regexp.MustCompile(`^(?:(.*?)[千阡仟])?(?:(.*?)[陌佰百])?(?:(.*?)[十拾])?(.+)?$`)

var shortPlaces = [...]int64{1000, 100, 10, 1}

// isShortRune reports whether r may appear in a short segment.
func isShortRune(r rune) bool {
	if r >= '0' && r <= '9' || r == '.' {
		return true
	}
	if _, ok := parseGlyphs[r]; ok {
		return true
	}
	return strings.ContainsRune("十拾百陌佰千阡仟", r)
}

// parseShort parses a segment worth at most a few thousand times 10^base and
// returns its value scaled by 10^base. input is the caller's full numeral,
// used for error reporting.
func parseShort(input, text string, base int) (*big.Rat, error) {
	if text == "" {
		return new(big.Rat), nil
	}

	for _, r := range text {
		if !isShortRune(r) {
			return nil, newNumeralError(input, ReasonInvalidCharacter,
				"unexpected character %q in %q", r, text)
		}
	}

	m := shortPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return nil, newNumeralError(input, ReasonMalformedLiteral, "cannot split %q", text)
	}

	sum := new(big.Rat)
	var prevPlace int64
	for i, place := range shortPlaces {
		start, end := m[2*i+2], m[2*i+3]
		if start < 0 {
			continue
		}

		coef := big.NewRat(1, 1)
		if part := text[start:end]; part != "" {
			var err error
			coef, err = parseCoefficient(part)
			if err != nil {
				return nil, newNumeralError(input, ReasonMalformedLiteral,
					"%q is not a number", part)
			}
		}

		weighted := new(big.Rat).Mul(coef, new(big.Rat).SetInt64(place))
		if prevPlace != 0 && weighted.Cmp(new(big.Rat).SetInt64(prevPlace)) >= 0 {
			return nil, newNumeralError(input, ReasonPartOrder,
				"%s in %q reaches the preceding %d place", weighted.RatString(), text, prevPlace)
		}
		prevPlace = place

		sum.Add(sum, weighted)
	}

	if base > 0 {
		sum.Mul(sum, new(big.Rat).SetInt(pow10(base)))
	}
	return sum, nil
}

// parseCoefficient parses digits, possibly with one decimal point, after
// translating digit glyphs to ASCII. "1.5", ".5", "1." and "007" are all
// accepted.
func parseCoefficient(s string) (*big.Rat, error) {
	var digits strings.Builder
	fracDigits := -1
	for _, r := range s {
		switch {
		case r == '.':
			if fracDigits >= 0 {
				return nil, ErrInvalidNumeral
			}
			fracDigits = 0
			continue
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		default:
			b, ok := parseGlyphs[r]
			if !ok {
				return nil, ErrInvalidNumeral
			}
			digits.WriteByte(b)
		}
		if fracDigits >= 0 {
			fracDigits++
		}
	}

	if digits.Len() == 0 {
		return nil, ErrInvalidNumeral
	}

	num, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return nil, ErrInvalidNumeral
	}
	if fracDigits <= 0 {
		return new(big.Rat).SetInt(num), nil
	}
	return new(big.Rat).SetFrac(num, pow10(fracDigits)), nil
}
