package kanjize

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// NumberToKanji renders n according to cfg.
//
// Zero always renders as the configured zero glyph regardless of style.
// Negative numbers are rendered as "-" followed by the rendering of |n|.
// StyleAll and StyleMixed fail with ErrOutOfRange when |n| ≥ 10^72; StyleFlat
// has no upper bound. A nil n is treated as zero.
func NumberToKanji(n *big.Int, cfg Configuration) (string, error) {
	if n == nil || n.Sign() == 0 {
		return cfg.ZeroGlyph(), nil
	}

	if n.Sign() < 0 {
		s, err := NumberToKanji(new(big.Int).Neg(n), cfg)
		if err != nil {
			return "", err
		}
		return "-" + s, nil
	}

	if cfg.Style() == StyleFlat {
		return formatFlat(n, cfg), nil
	}

	if n.Cmp(maxValueLimit) >= 0 {
		return "", fmt.Errorf("%w: %s has no unit above 無量大数", ErrOutOfRange, n.String())
	}

	groups := splitGroups(n)
	daiji := cfg.UseDaiji()

	var sb strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}

		switch cfg.Style() {
		case StyleMixed:
			if cfg.CompactThousands() && g%1000 == 0 {
				sb.WriteString(strconv.Itoa(g / 1000))
				sb.WriteString(LittleUnitGlyph(1000, daiji))
			} else {
				sb.WriteString(strconv.Itoa(g))
			}
		default:
			sb.WriteString(formatShort(g, daiji))
		}
		sb.WriteString(bigUnitForGroup(i, daiji))
	}

	return sb.String(), nil
}

// FormatInt64 is NumberToKanji for an int64.
func FormatInt64(n int64, cfg Configuration) (string, error) {
	return NumberToKanji(big.NewInt(n), cfg)
}

// splitGroups returns the four-digit groups of a positive n, least
// significant first.
func splitGroups(n *big.Int) []int {
	groups := make([]int, 0, len(bigUnits)+1)
	rest := new(big.Int).Set(n)
	mod := new(big.Int)
	for rest.Sign() > 0 {
		rest.DivMod(rest, groupBase, mod)
		groups = append(groups, int(mod.Int64()))
	}
	return groups
}

// formatShort renders a group in 1..9999 with little units. A coefficient of
// one is omitted before a little unit but not in the ones place.
func formatShort(g int, daiji bool) string {
	var sb strings.Builder
	for _, u := range littleUnits {
		d := g / u.place
		g %= u.place
		if d == 0 {
			continue
		}
		if d > 1 {
			sb.WriteString(DigitGlyph(d, daiji))
		}
		if daiji {
			sb.WriteString(u.daiji)
		} else {
			sb.WriteString(u.standard)
		}
	}
	if g > 0 {
		sb.WriteString(DigitGlyph(g, daiji))
	}
	return sb.String()
}

// formatFlat maps each decimal digit of a positive n to its glyph.
func formatFlat(n *big.Int, cfg Configuration) string {
	zero := cfg.ZeroGlyph()
	digits := n.String()

	var sb strings.Builder
	sb.Grow(len(digits) * 3)
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if d == 0 {
			sb.WriteString(zero)
			continue
		}
		sb.WriteString(DigitGlyph(d, cfg.UseDaiji()))
	}
	return sb.String()
}
