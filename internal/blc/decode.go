package blc

import (
	"fmt"
	"strings"

	"github.com/lc-lang/golc/internal/term"
)

// bitSource yields the next bit of a BLC stream, ok=false at end.
type bitSource interface {
	next() (bit byte, ok bool)
}

// byteBitSource reads bits MSB-first out of a packed byte slice.
type byteBitSource struct {
	data []byte
	pos  int // bit offset
}

func (s *byteBitSource) next() (byte, bool) {
	if s.pos >= len(s.data)*8 {
		return 0, false
	}
	byteIdx := s.pos / 8
	bitIdx := 7 - uint(s.pos%8)
	s.pos++
	return (s.data[byteIdx] >> bitIdx) & 1, true
}

// textBitSource scans a string for the next occurrence of either
// marker, skipping any other characters in between (so surrounding
// prose or, with ZeroWidthAlphabet, visible text survives untouched).
type textBitSource struct {
	text      string
	pos       int
	zero, one string
}

func (s *textBitSource) next() (byte, bool) {
	for s.pos < len(s.text) {
		rest := s.text[s.pos:]
		if strings.HasPrefix(rest, s.zero) {
			s.pos += len(s.zero)
			return 0, true
		}
		if strings.HasPrefix(rest, s.one) {
			s.pos += len(s.one)
			return 1, true
		}
		s.pos++
	}
	return 0, false
}

func nextBit(src bitSource) (byte, error) {
	bit, ok := src.next()
	if !ok {
		return 0, fmt.Errorf("blc: unexpected end of input")
	}
	return bit, nil
}

// decodeTerm parses one BLC term from src. depth is the number of
// Lambdas currently enclosing this position, used both to name a new
// binder (x<depth+1>) and to reject a Variable whose index escapes
// every enclosing binder.
func decodeTerm(a *term.Arena, src bitSource, depth uint64) (term.Handle, error) {
	first, err := nextBit(src)
	if err != nil {
		return 0, err
	}
	if first == 1 {
		index := uint64(1)
		for {
			b, err := nextBit(src)
			if err != nil {
				return 0, err
			}
			if b == 0 {
				break
			}
			index++
		}
		if index > depth {
			return 0, fmt.Errorf("blc: variable index %d exceeds enclosing binder depth %d", index, depth)
		}
		return term.NewVariable(index), nil
	}

	second, err := nextBit(src)
	if err != nil {
		return 0, err
	}
	if second == 0 {
		body, err := decodeTerm(a, src, depth+1)
		if err != nil {
			return 0, err
		}
		return a.NewLambda(fmt.Sprintf("x%d", depth+1), body), nil
	}
	fn, err := decodeTerm(a, src, depth)
	if err != nil {
		return 0, err
	}
	arg, err := decodeTerm(a, src, depth)
	if err != nil {
		return 0, err
	}
	return a.NewApplication(fn, arg), nil
}

// DecodeBytes parses one BLC term from packed bytes.
func DecodeBytes(a *term.Arena, data []byte) (term.Handle, error) {
	return decodeTerm(a, &byteBitSource{data: data}, 0)
}

// DecodeText parses one BLC term out of text encoded with alphabet's
// markers. Non-marker characters between bits are skipped, so text
// encoded with ZeroWidthAlphabet can be embedded in ordinary prose.
func DecodeText(a *term.Arena, text string, alphabet Alphabet) (term.Handle, error) {
	if err := alphabet.validate(); err != nil {
		return 0, err
	}
	return decodeTerm(a, &textBitSource{text: text, zero: alphabet.Zero, one: alphabet.One}, 0)
}
