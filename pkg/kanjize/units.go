package kanjize

import "math/big"

// BigUnit is a magnitude marker for a power of ten that is a multiple of four.
type BigUnit struct {
	// Glyph is the standard rendering.
	Glyph string

	// Daiji is the formal rendering. Only 万/萬 differs.
	Daiji string

	// Exponent is the power of ten the unit stands for (4, 8, ..., 68).
	Exponent int
}

// glyph returns the rendering selected by daiji.
func (u BigUnit) glyph(daiji bool) string {
	if daiji {
		return u.Daiji
	}
	return u.Glyph
}

// Zero glyphs.
const (
	ZeroKanjiGlyph = "零"
	ZeroSignGlyph  = "〇"
)

// maxExponent is the exponent of the largest big unit.
const maxExponent = 68

// bigUnits is ordered by ascending exponent; bigUnits[i] has exponent 4(i+1).
var bigUnits = [...]BigUnit{
	{"万", "萬", 4},
	{"億", "億", 8},
	{"兆", "兆", 12},
	{"京", "京", 16},
	{"垓", "垓", 20},
	{"𥝱", "𥝱", 24},
	{"穣", "穣", 28},
	{"溝", "溝", 32},
	{"澗", "澗", 36},
	{"正", "正", 40},
	{"載", "載", 44},
	{"極", "極", 48},
	{"恒河沙", "恒河沙", 52},
	{"阿僧祇", "阿僧祇", 56},
	{"那由多", "那由多", 60},
	{"不可思議", "不可思議", 64},
	{"無量大数", "無量大数", 68},
}

var (
	standardDigits = [10]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	daijiDigits    = [10]string{"", "壱", "弐", "参", "肆", "伍", "陸", "漆", "捌", "玖"}
)

type littleUnit struct {
	place    int
	standard string
	daiji    string
}

// littleUnits is ordered from the largest place value down.
var littleUnits = [...]littleUnit{
	{1000, "千", "阡"},
	{100, "百", "佰"},
	{10, "十", "拾"},
}

// parseGlyphs maps every glyph the short-segment parser translates to an
// ASCII digit.
var parseGlyphs = func() map[rune]byte {
	m := map[rune]byte{'零': '0', '〇': '0'}
	for i := 1; i <= 9; i++ {
		m[[]rune(standardDigits[i])[0]] = byte('0' + i)
		m[[]rune(daijiDigits[i])[0]] = byte('0' + i)
	}
	return m
}()

var (
	ten           = big.NewInt(10)
	groupBase     = big.NewInt(10000)
	maxValueLimit = new(big.Int).Exp(ten, big.NewInt(maxExponent+4), nil)
)

// DigitGlyph returns the glyph for a digit in 1..9. It returns "" for any
// other value.
func DigitGlyph(v int, daiji bool) string {
	if v < 1 || v > 9 {
		return ""
	}
	if daiji {
		return daijiDigits[v]
	}
	return standardDigits[v]
}

// LittleUnitGlyph returns the glyph for a place value of 10, 100 or 1000.
// It returns "" for any other value.
func LittleUnitGlyph(place int, daiji bool) string {
	for _, u := range littleUnits {
		if u.place == place {
			if daiji {
				return u.daiji
			}
			return u.standard
		}
	}
	return ""
}

// BigUnits returns the big unit table ordered from the largest exponent down.
// The daiji flag selects which glyph is placed in the Glyph field; the
// returned slice is a copy and may be modified by the caller.
func BigUnits(daiji bool) []BigUnit {
	out := make([]BigUnit, 0, len(bigUnits))
	for i := len(bigUnits) - 1; i >= 0; i-- {
		u := bigUnits[i]
		u.Glyph = u.glyph(daiji)
		out = append(out, u)
	}
	return out
}

// bigUnitForGroup returns the glyph appended after the i-th four-digit group.
func bigUnitForGroup(i int, daiji bool) string {
	if i == 0 {
		return ""
	}
	return bigUnits[i-1].glyph(daiji)
}

// MaxValue returns the largest magnitude ALL and MIXED styles can render,
// 10^72 - 1.
func MaxValue() *big.Int {
	return new(big.Int).Sub(maxValueLimit, big.NewInt(1))
}

// pow10 returns 10^e.
func pow10(e int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(e)), nil)
}
