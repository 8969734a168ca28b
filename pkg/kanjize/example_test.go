package kanjize_test

import (
	"errors"
	"fmt"
	"math/big"

	"kanjize-hq/kanjize/pkg/kanjize"
)

func ExampleNumberToKanji() {
	s, _ := kanjize.NumberToKanji(big.NewInt(58076099), kanjize.DefaultConfiguration)
	fmt.Println(s)

	mixed := kanjize.MustConfiguration(kanjize.WithStyle(kanjize.StyleMixed))
	n, _ := new(big.Int).SetString("223400042566000", 10)
	s, _ = kanjize.NumberToKanji(n, mixed)
	fmt.Println(s)
	// Output:
	// 五千八百七万六千九十九
	// 223兆4千億4256万6千
}

func ExampleWithDaiji() {
	cfg := kanjize.MustConfiguration(kanjize.WithDaiji(true))
	s, _ := kanjize.FormatInt64(211, cfg)
	fmt.Println(s)
	// Output: 弐佰拾壱
}

func ExampleKanjiToNumber() {
	n, err := kanjize.KanjiToNumber("39京4385兆4895万")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)

	_, err = kanjize.KanjiToNumber("1万10千")
	fmt.Println(errors.Is(err, kanjize.ErrInvalidNumeral), kanjize.ReasonOf(err))
	// Output:
	// 394385000048950000
	// true fragment_overflow
}
