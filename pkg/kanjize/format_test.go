package kanjize

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 10)
	if !ok {
		t.Fatalf("bad test number %q", s)
	}
	return n
}

func mustConfig(t *testing.T, opts ...Option) Configuration {
	t.Helper()
	cfg, err := NewConfiguration(opts...)
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}
	return cfg
}

// nines builds the largest ALL/MIXED numeral by walking the unit table.
func nines(group string) string {
	var sb strings.Builder
	for _, u := range BigUnits(false) {
		sb.WriteString(group)
		sb.WriteString(u.Glyph)
	}
	sb.WriteString(group)
	return sb.String()
}

func TestNumberToKanjiAll(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"1", "一"},
		{"10", "十"},
		{"11", "十一"},
		{"111", "百十一"},
		{"211", "二百十一"},
		{"121", "百二十一"},
		{"1000", "千"},
		{"1001", "千一"},
		{"2025", "二千二十五"},
		{"10000", "一万"},
		{"58_076_099", "五千八百七万六千九十九"},
		{"1_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000", "一恒河沙"},
		{strings.Repeat("9", 72), nines("九千九百九十九")},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got, err := NumberToKanji(mustBig(t, tt.number), DefaultConfiguration)
			if err != nil {
				t.Fatalf("NumberToKanji() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NumberToKanji(%s) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestNumberToKanjiMixed(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		compact bool
		want    string
	}{
		{"one", "1", true, "1"},
		{"ten", "10", true, "10"},
		{"eleven", "11", true, "11"},
		{"121", "121", true, "121"},
		{"thousand compact", "1000", true, "1千"},
		{"1001", "1001", true, "1001"},
		{"2025", "2025", true, "2025"},
		{"two groups", "5807_6099", true, "5807万6099"},
		{"four groups", "223_4235_4256_6000", true, "223兆4235億4256万6千"},
		{"compact kei", "5000_0000_0000_0000_0000", true, "5千京"},
		{"plain kei", "5000_0000_0000_0000_0000", false, "5000京"},
		{"skipped group", "39_4385_0000_4895_0000", true, "39京4385兆4895万"},
		{"compact oku", "223_4000_4256_6000", true, "223兆4千億4256万6千"},
		{"plain oku", "223_4000_4256_6000", false, "223兆4000億4256万6000"},
		{"gougasha", "1_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000_0000", false, "1恒河沙"},
		{"largest", strings.Repeat("9", 72), true, nines("9999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustConfig(t, WithStyle(StyleMixed), WithCompactThousands(tt.compact))
			got, err := NumberToKanji(mustBig(t, tt.number), cfg)
			if err != nil {
				t.Fatalf("NumberToKanji() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NumberToKanji(%s) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestNumberToKanjiNegative(t *testing.T) {
	mixed := mustConfig(t, WithStyle(StyleMixed))
	mixedDaiji := mustConfig(t, WithStyle(StyleMixed), WithDaiji(true))

	tests := []struct {
		name   string
		number int64
		cfg    Configuration
		want   string
	}{
		{"oku", -1_5000_0000, mixed, "-1億5千万"},
		{"man", -25_0320, mixed, "-25万320"},
		{"three groups", -1_5025_0320, mixed, "-1億5025万320"},
		{"compact middle", -1_5000_0320, mixed, "-1億5千万320"},
		{"daiji", -1_5000_0320, mixedDaiji, "-1億5阡萬320"},
		{"all", -2025, DefaultConfiguration, "-二千二十五"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInt64(tt.number, tt.cfg)
			if err != nil {
				t.Fatalf("FormatInt64() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatInt64(%d) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestNumberToKanjiZero(t *testing.T) {
	tests := []struct {
		name string
		cfg  Configuration
		want string
	}{
		{"default", DefaultConfiguration, "零"},
		{"mixed", mustConfig(t, WithStyle(StyleMixed)), "零"},
		{"flat default", mustConfig(t, WithStyle(StyleFlat)), "〇"},
		{"all with sign", mustConfig(t, WithZero(ZeroSign)), "〇"},
		{"flat with kanji", mustConfig(t, WithStyle(StyleFlat), WithZero(ZeroKanji)), "零"},
		{"zero value config", Configuration{}, "零"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NumberToKanji(new(big.Int), tt.cfg)
			if err != nil {
				t.Fatalf("NumberToKanji() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NumberToKanji(0) = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		got, err := NumberToKanji(nil, DefaultConfiguration)
		if err != nil || got != "零" {
			t.Errorf("NumberToKanji(nil) = %q, %v, want 零", got, err)
		}
	})
}

func TestNumberToKanjiDaiji(t *testing.T) {
	cfg := mustConfig(t, WithDaiji(true))

	tests := []struct {
		number int64
		want   string
	}{
		{211, "弐佰拾壱"},
		{1000, "阡"},
		{1_0001, "壱萬壱"},
		{3_0000_0000, "参億"},
	}

	for _, tt := range tests {
		got, err := FormatInt64(tt.number, cfg)
		if err != nil {
			t.Fatalf("FormatInt64(%d) error = %v", tt.number, err)
		}
		if got != tt.want {
			t.Errorf("FormatInt64(%d) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestNumberToKanjiFlat(t *testing.T) {
	tests := []struct {
		name   string
		number int64
		opts   []Option
		want   string
	}{
		{"sign zero", 601, []Option{WithStyle(StyleFlat), WithZero(ZeroSign)}, "六〇一"},
		{"kanji zero", 601, []Option{WithStyle(StyleFlat), WithZero(ZeroKanji)}, "六零一"},
		{"default zero", 404, []Option{WithStyle(StyleFlat)}, "四〇四"},
		{"daiji", 601, []Option{WithStyle(StyleFlat), WithDaiji(true)}, "陸〇壱"},
		{"negative", -1200, []Option{WithStyle(StyleFlat)}, "-一二〇〇"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInt64(tt.number, mustConfig(t, tt.opts...))
			if err != nil {
				t.Fatalf("FormatInt64() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatInt64(%d) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestNumberToKanjiOutOfRange(t *testing.T) {
	limit := new(big.Int).Add(MaxValue(), big.NewInt(1))

	for _, style := range []Style{StyleAll, StyleMixed} {
		t.Run(string(style), func(t *testing.T) {
			_, err := NumberToKanji(limit, mustConfig(t, WithStyle(style)))
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NumberToKanji(10^72) error = %v, want ErrOutOfRange", err)
			}
			_, err = NumberToKanji(new(big.Int).Neg(limit), mustConfig(t, WithStyle(style)))
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("NumberToKanji(-10^72) error = %v, want ErrOutOfRange", err)
			}
		})
	}

	t.Run("flat has no limit", func(t *testing.T) {
		got, err := NumberToKanji(limit, mustConfig(t, WithStyle(StyleFlat)))
		if err != nil {
			t.Fatalf("NumberToKanji() error = %v", err)
		}
		want := "一" + strings.Repeat("〇", 72)
		if got != want {
			t.Errorf("NumberToKanji(10^72) = %q, want %q", got, want)
		}
	})
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		group int
		daiji bool
		want  string
	}{
		{1, false, "一"},
		{10, false, "十"},
		{1111, false, "千百十一"},
		{2025, false, "二千二十五"},
		{9999, false, "九千九百九十九"},
		{211, true, "弐佰拾壱"},
		{1010, true, "阡拾"},
	}

	for _, tt := range tests {
		if got := formatShort(tt.group, tt.daiji); got != tt.want {
			t.Errorf("formatShort(%d, %v) = %q, want %q", tt.group, tt.daiji, got, tt.want)
		}
	}
}
