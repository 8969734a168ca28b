package health

import (
	"context"
	"fmt"
	"math/big"

	"kanjize-hq/kanjize/pkg/kanjize"
)

// selfTestNumbers cover zero, signs, every little unit, skipped groups and
// the largest big unit.
var selfTestNumbers = func() []*big.Int {
	values := []int64{0, 1, -1, 10, 11, 100, 1000, 2025, 10000, 10001, 100010001, -58076099, 1<<53 + 1}
	out := make([]*big.Int, 0, len(values)+1)
	for _, v := range values {
		out = append(out, big.NewInt(v))
	}
	largest := new(big.Int).Sub(kanjize.MaxValue(), big.NewInt(1))
	return append(out, largest)
}()

// selfTestNumerals are fixed numerals with their expected values.
var selfTestNumerals = []struct {
	numeral string
	value   int64
}{
	{"二千二十五", 2025},
	{"5807万6099", 58076099},
	{"壱萬弐阡", 12000},
	{"-三百", -300},
	{"〇", 0},
}

// SelfTest returns a check that round-trips numbers through the conversion
// core using the configuration returned by current. It fails on the first
// mismatch.
func SelfTest(current func() kanjize.Configuration) CheckFunc {
	return func(ctx context.Context) error {
		cfg := current()
		for _, n := range selfTestNumbers {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := kanjize.NumberToKanji(n, cfg)
			if err != nil {
				return fmt.Errorf("format %s: %w", n, err)
			}
			back, err := kanjize.KanjiToNumber(s)
			if err != nil {
				return fmt.Errorf("parse %q: %w", s, err)
			}
			if back.Cmp(n) != 0 {
				return fmt.Errorf("round trip of %s produced %s via %q", n, back, s)
			}
		}
		for _, tc := range selfTestNumerals {
			got, err := kanjize.ParseInt64(tc.numeral)
			if err != nil {
				return fmt.Errorf("parse %q: %w", tc.numeral, err)
			}
			if got != tc.value {
				return fmt.Errorf("parse %q = %d, want %d", tc.numeral, got, tc.value)
			}
		}
		return nil
	}
}
