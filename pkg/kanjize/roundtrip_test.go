package kanjize

import (
	"math/big"
	"math/rand"
	"sync"
	"testing"
)

// sampleNumbers returns a deterministic mix of edge values and random values
// below 10^72.
func sampleNumbers() []*big.Int {
	nums := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(10),
		big.NewInt(1000),
		big.NewInt(1001),
		big.NewInt(9999),
		big.NewInt(10000),
		big.NewInt(10001),
		big.NewInt(100010001),
		pow10(68),
		MaxValue(),
	}

	rng := rand.New(rand.NewSource(20241019))
	for i := 0; i < 300; i++ {
		nums = append(nums, new(big.Int).Rand(rng, maxValueLimit))
	}
	// Sparse values exercise skipped groups and exact thousands.
	for i := 0; i < 100; i++ {
		n := new(big.Int)
		for g := 0; g < 18; g++ {
			if rng.Intn(3) != 0 {
				continue
			}
			v := int64(rng.Intn(10)) * 1000
			if rng.Intn(2) == 0 {
				v = int64(rng.Intn(10000))
			}
			n.Add(n, new(big.Int).Mul(big.NewInt(v), pow10(4*g)))
		}
		nums = append(nums, n)
	}
	return nums
}

func TestRoundTrip(t *testing.T) {
	configs := map[string]Configuration{
		"all":           DefaultConfiguration,
		"all daiji":     MustConfiguration(WithDaiji(true)),
		"all sign zero": MustConfiguration(WithZero(ZeroSign)),
		"mixed compact": MustConfiguration(WithStyle(StyleMixed)),
		"mixed plain":   MustConfiguration(WithStyle(StyleMixed), WithCompactThousands(false)),
		"mixed daiji":   MustConfiguration(WithStyle(StyleMixed), WithDaiji(true)),
		"flat":          MustConfiguration(WithStyle(StyleFlat)),
		"flat kanji":    MustConfiguration(WithStyle(StyleFlat), WithZero(ZeroKanji)),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			for _, n := range sampleNumbers() {
				for _, v := range []*big.Int{n, new(big.Int).Neg(n)} {
					s, err := NumberToKanji(v, cfg)
					if err != nil {
						t.Fatalf("NumberToKanji(%s) error = %v", v, err)
					}
					got, err := KanjiToNumber(s)
					if err != nil {
						t.Fatalf("KanjiToNumber(%q) error = %v (from %s)", s, err, v)
					}
					if got.Cmp(v) != 0 {
						t.Fatalf("round trip %s -> %q -> %s", v, s, got)
					}
				}
			}
		})
	}
}

func TestSignPreservation(t *testing.T) {
	for _, style := range []Style{StyleAll, StyleMixed, StyleFlat} {
		cfg := MustConfiguration(WithStyle(style))
		for _, n := range sampleNumbers() {
			if n.Sign() == 0 {
				continue
			}
			pos, err := NumberToKanji(n, cfg)
			if err != nil {
				t.Fatalf("NumberToKanji(%s) error = %v", n, err)
			}
			neg, err := NumberToKanji(new(big.Int).Neg(n), cfg)
			if err != nil {
				t.Fatalf("NumberToKanji(-%s) error = %v", n, err)
			}
			if neg != "-"+pos {
				t.Errorf("style %s: NumberToKanji(-%s) = %q, want %q", style, n, neg, "-"+pos)
			}
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	cfg := MustConfiguration(WithStyle(StyleMixed), WithDaiji(true))
	nums := sampleNumbers()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range nums {
				s, err := NumberToKanji(n, cfg)
				if err != nil {
					errs <- err
					return
				}
				if _, err := KanjiToNumber(s); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent conversion failed: %v", err)
	}
}
