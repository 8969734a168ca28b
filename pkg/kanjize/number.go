package kanjize

import "math/big"

// Number is an integer that converts to and from kanji numerals. Arithmetic
// methods return new values; a Number is never modified in place.
type Number struct {
	v *big.Int
}

// NewNumber returns a Number holding n.
func NewNumber(n int64) Number {
	return Number{v: big.NewInt(n)}
}

// NumberFromBig returns a Number holding a copy of n. A nil n is zero.
func NumberFromBig(n *big.Int) Number {
	if n == nil {
		return Number{}
	}
	return Number{v: new(big.Int).Set(n)}
}

// NumberFromKanji parses s with KanjiToNumber.
func NumberFromKanji(s string) (Number, error) {
	n, err := KanjiToNumber(s)
	if err != nil {
		return Number{}, err
	}
	return Number{v: n}, nil
}

// ToKanji renders the number with NumberToKanji.
func (n Number) ToKanji(cfg Configuration) (string, error) {
	return NumberToKanji(n.v, cfg)
}

// Big returns a copy of the value.
func (n Number) Big() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.v)
}

// String returns the decimal representation.
func (n Number) String() string {
	return n.Big().String()
}

// Cmp compares n and m and returns -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	return n.Big().Cmp(m.Big())
}

// Add returns n + m.
func (n Number) Add(m Number) Number {
	return Number{v: new(big.Int).Add(n.Big(), m.Big())}
}

// Sub returns n - m.
func (n Number) Sub(m Number) Number {
	return Number{v: new(big.Int).Sub(n.Big(), m.Big())}
}

// Mul returns n * m.
func (n Number) Mul(m Number) Number {
	return Number{v: new(big.Int).Mul(n.Big(), m.Big())}
}
