package blc

import (
	"strings"

	"github.com/lc-lang/golc/internal/term"
)

// encodeBits walks h and emits its BLC bitstream: "1^k 0" for a
// Variable of index k, "00" + body for a Lambda, "01" + fn + arg for
// an Application. There is no need for the identity-optimization
// machinery internal/term's Visitor protocol exists for — encoding
// only reads the term, it never builds a new one — so this recurses
// directly over Arena.Unpack like internal/printer does.
func encodeBits(a *term.Arena, h term.Handle, emit func(bit byte)) {
	n := a.Unpack(h)
	switch n.Kind {
	case term.KindVariable:
		for i := uint64(0); i < n.Index; i++ {
			emit(1)
		}
		emit(0)
	case term.KindLambda:
		emit(0)
		emit(0)
		encodeBits(a, n.Left, emit)
	case term.KindApplication:
		emit(0)
		emit(1)
		encodeBits(a, n.Left, emit)
		encodeBits(a, n.Right, emit)
	}
}

// EncodeText renders h as BLC text using alphabet's zero/one markers,
// e.g. EncodeText(a, identity, DefaultAlphabet) == "0010".
func EncodeText(a *term.Arena, h term.Handle, alphabet Alphabet) (string, error) {
	if err := alphabet.validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	encodeBits(a, h, func(bit byte) {
		if bit == 0 {
			b.WriteString(alphabet.Zero)
		} else {
			b.WriteString(alphabet.One)
		}
	})
	return b.String(), nil
}

// bitPacker buffers bits MSB-first into bytes, zero-padding the final
// partial byte.
type bitPacker struct {
	buf  []byte
	cur  byte
	fill int
}

func (p *bitPacker) push(bit byte) {
	p.cur = p.cur<<1 | bit
	p.fill++
	if p.fill == 8 {
		p.buf = append(p.buf, p.cur)
		p.cur = 0
		p.fill = 0
	}
}

func (p *bitPacker) bytes() []byte {
	if p.fill > 0 {
		p.buf = append(p.buf, p.cur<<(8-p.fill))
	}
	return p.buf
}

// EncodeBytes renders h as packed BLC bytes, e.g. EncodeBytes(a,
// identity) == []byte{0x20} (bits "0010" followed by four padding
// zero bits).
func EncodeBytes(a *term.Arena, h term.Handle) []byte {
	p := &bitPacker{}
	encodeBits(a, h, p.push)
	return p.bytes()
}
