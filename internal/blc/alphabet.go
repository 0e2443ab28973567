// Package blc implements the Binary Lambda Calculus wire codec: a
// bit-level encoder/decoder between internal/term handles and the
// prefix-free binary format described in spec §4.8, plus a text
// wrapper that maps the same bitstream onto a pair of configurable
// marker strings instead of raw bits.
package blc

import "fmt"

// Alphabet names the two markers a text encoding uses for a 0 bit and
// a 1 bit. They must differ; DefaultAlphabet uses the ASCII digits,
// ZeroWidthAlphabet uses a pair of invisible Unicode joiners so an
// encoded program can be smuggled inside otherwise-ordinary text.
type Alphabet struct {
	Zero string
	One  string
}

// DefaultAlphabet is the ordinary "0"/"1" text encoding.
var DefaultAlphabet = Alphabet{Zero: "0", One: "1"}

// ZeroWidthAlphabet encodes 0 as U+200C (ZERO WIDTH NON-JOINER) and 1
// as U+200D (ZERO WIDTH JOINER), so the resulting text renders as
// nothing at all alongside visible characters.
var ZeroWidthAlphabet = Alphabet{Zero: "‌", One: "‍"}

func (a Alphabet) validate() error {
	if a.Zero == a.One {
		return fmt.Errorf("blc: zero marker and one marker must differ, both are %q", a.Zero)
	}
	if a.Zero == "" || a.One == "" {
		return fmt.Errorf("blc: zero and one markers must be non-empty")
	}
	return nil
}
