package kanjize

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestKanjiToNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// all kanji
		{"一", "1"},
		{"十", "10"},
		{"十一", "11"},
		{"百十一", "111"},
		{"二百十一", "211"},
		{"百二十一", "121"},
		{"千", "1000"},
		{"千一", "1001"},
		{"二千二十五", "2025"},
		{"一千二百三十四", "1234"},
		{"千二百三十四", "1234"},
		{"五千八百七万六千九十九", "58076099"},
		{"一恒河沙", "1" + strings.Repeat("0", 52)},
		{nines("九千九百九十九"), strings.Repeat("9", 72)},

		// mixed
		{"1", "1"},
		{"10", "10"},
		{"121", "121"},
		{"1千", "1000"},
		{"1001", "1001"},
		{"5807万6099", "58076099"},
		{"223兆4235億4256万6千", "223423542566000"},
		{"223兆4千億4256万6千", "223400042566000"},
		{"5千京", "50000000000000000000"},
		{"39京4385兆4895万", "394385000048950000"},
		{"1恒河沙", "1" + strings.Repeat("0", 52)},
		{nines("9999"), strings.Repeat("9", 72)},

		// digit-mixed short segments
		{"千1", "1001"},
		{"2千2十5", "2025"},
		{"4百万", "4000000"},
		{"58百7万6千99", "58076099"},
		{"2百23兆4千2百3十5億4256万6千", "223423542566000"},
		{"2234千億4256万6千", "223400042566000"},
		{"5千5十京", "50500000000000000000"},
		{"12千345", "12345"},

		// fractions absorbed by their unit
		{"1.5億", "150000000"},
		{"250.32千", "250320"},
		{"1.5億250.32千", "150250320"},
		{"-1.5億", "-150000000"},
		{"-250.32千", "-250320"},
		// parts are ordered by place, not by weighted value
		{".5千6百", "1100"},
		{"-1.5億250.32千", "-150250320"},

		// zero, flat and daiji
		{"零", "0"},
		{"〇", "0"},
		{"四〇四", "404"},
		{"六〇一", "601"},
		{"六零一", "601"},
		{"阡二百三拾四", "1234"},
		{"弐佰拾壱", "211"},
		{"壱萬壱", "10001"},
		{"1億5阡萬320", "150000320"},

		// signs and width
		{"+12", "12"},
		{"＋12", "12"},
		{"－5", "-5"},
		{"⁻5", "-5"},
		{"１２３万", "1230000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := KanjiToNumber(tt.input)
			if err != nil {
				t.Fatalf("KanjiToNumber(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("KanjiToNumber(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestKanjiToNumberRejects(t *testing.T) {
	tests := []struct {
		input  string
		reason Reason
	}{
		{"", ReasonEmpty},
		{"-", ReasonSignOnly},
		{"1千1000", ReasonPartOrder},
		{"1万10千", ReasonFragmentOverflow},
		{"万1千234", ReasonMissingQuantity},
		{"1万0万", ReasonUnitOrder},
		{"1万.00009億", ReasonUnitOrder},
		{"1億-2万", ReasonInvalidCharacter},
		{"1万+2", ReasonInvalidCharacter},
		{"千2e1", ReasonInvalidCharacter},
		{"inf", ReasonInvalidCharacter},
		{"1億2億", ReasonUnitOrder},
		{"1万10000", ReasonFragmentOverflow},
		{"1万1億", ReasonUnitOrder},
		{"1..5", ReasonMalformedLiteral},
		{"十百", ReasonMalformedLiteral},
		{"1.5", ReasonTooPrecise},
		{"1億.00009万", ReasonTooPrecise},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := KanjiToNumber(tt.input)
			if err == nil {
				t.Fatalf("KanjiToNumber(%q) = %s, want error", tt.input, got)
			}
			if !errors.Is(err, ErrInvalidNumeral) {
				t.Errorf("KanjiToNumber(%q) error = %v, want ErrInvalidNumeral", tt.input, err)
			}
			if reason := ReasonOf(err); reason != tt.reason {
				t.Errorf("KanjiToNumber(%q) reason = %q, want %q", tt.input, reason, tt.reason)
			}

			var ne *NumeralError
			if errors.As(err, &ne) && ne.Input != tt.input {
				t.Errorf("NumeralError.Input = %q, want %q", ne.Input, tt.input)
			}
		})
	}
}

func TestKanjiToRat(t *testing.T) {
	tests := []struct {
		input string
		want  *big.Rat
	}{
		{"1.5", big.NewRat(3, 2)},
		{"-.25", big.NewRat(-1, 4)},
		{"1億.00009万", big.NewRat(1000000009, 10)},
		{"0.0001千", big.NewRat(1, 10)},
		{"2.25千", big.NewRat(2250, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := KanjiToRat(tt.input)
			if err != nil {
				t.Fatalf("KanjiToRat(%q) error = %v", tt.input, err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("KanjiToRat(%q) = %s, want %s", tt.input, got.RatString(), tt.want.RatString())
			}
		})
	}
}

func TestParseInt64(t *testing.T) {
	got, err := ParseInt64("922京3372兆368億5477万5807")
	if err != nil {
		t.Fatalf("ParseInt64() error = %v", err)
	}
	if got != 9223372036854775807 {
		t.Errorf("ParseInt64() = %d, want MaxInt64", got)
	}

	if _, err := ParseInt64("922京3372兆368億5477万5808"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ParseInt64(MaxInt64+1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := ParseInt64("万"); !errors.Is(err, ErrInvalidNumeral) {
		t.Errorf("ParseInt64(万) error = %v, want ErrInvalidNumeral", err)
	}
}

func TestParseShort(t *testing.T) {
	tests := []struct {
		text string
		base int
		want string
	}{
		{"", 0, "0"},
		{"千", 0, "1000"},
		{"百十一", 0, "111"},
		{"12千345", 0, "12345"},
		{"2千2十5", 0, "2025"},
		{"1.5", 8, "150000000"},
		{"4百", 4, "4000000"},
		{"〇〇七", 0, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseShort(tt.text, tt.text, tt.base)
			if err != nil {
				t.Fatalf("parseShort(%q, %d) error = %v", tt.text, tt.base, err)
			}
			if got.RatString() != tt.want {
				t.Errorf("parseShort(%q, %d) = %s, want %s", tt.text, tt.base, got.RatString(), tt.want)
			}
		})
	}
}

func TestParseCoefficient(t *testing.T) {
	valid := map[string]*big.Rat{
		"007": big.NewRat(7, 1),
		"1.":  big.NewRat(1, 1),
		".5":  big.NewRat(1, 2),
		"二.五": big.NewRat(5, 2),
	}
	for in, want := range valid {
		got, err := parseCoefficient(in)
		if err != nil {
			t.Errorf("parseCoefficient(%q) error = %v", in, err)
			continue
		}
		if got.Cmp(want) != 0 {
			t.Errorf("parseCoefficient(%q) = %s, want %s", in, got.RatString(), want.RatString())
		}
	}

	for _, in := range []string{".", "1.2.3", "十", "a"} {
		if _, err := parseCoefficient(in); err == nil {
			t.Errorf("parseCoefficient(%q) should fail", in)
		}
	}
}
