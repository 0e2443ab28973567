// Package term implements the arena-allocated, bit-packed term
// representation described for the evaluator core: three immutable
// term shapes (Variable, Lambda, Application) addressed by a single
// machine-word handle, plus the shift and substitute transforms that
// operate directly on that representation.
//
// The handle layout mirrors the packing style of the Rust prototype
// this module was distilled from (see original_source/src/expr.rs):
// a tag bit picks out an inline Variable from a pointer into the
// arena, and a cell's two fields double up to encode either an
// Application (both fields are handles) or a Lambda (the second field
// packs an interned parameter name's length and index instead).
package term

import "github.com/golang/glog"

// Handle is the public reference to a term: a single machine word,
// never zero. Its top bit distinguishes an inline Variable from a
// pointer into the arena.
type Handle uint64

const (
	variableTag uint64 = 1 << 63

	// A non-variable Handle packs an arena cell index (biased by one,
	// so the zero handle is never produced) into its low 48 bits.
	// Bits 48-62 are always zero for such handles, which is what lets
	// an Application cell's "right" slot be told apart from a Lambda
	// cell's packed name length (see (*Arena).Unpack).
	pointerMask  uint64 = (1 << 48) - 1
	lengthShift         = 48
	lengthMask   uint64 = 0x7fff << lengthShift

	// MaxVariableIndex is the largest de Bruijn index a Handle can
	// carry: 63 bits are available once the tag bit is reserved.
	MaxVariableIndex uint64 = variableTag - 1

	// MaxNameLength is the largest number of bytes a Lambda's cosmetic
	// parameter name may occupy, per the 15-bit length field packed
	// into bits 48-62 of a Lambda cell's right slot.
	MaxNameLength = 0x7fff
)

// IsVariable reports whether h is an inline Variable handle.
func (h Handle) IsVariable() bool {
	return uint64(h)&variableTag != 0
}

// index returns the de Bruijn index of a Variable handle. Callers
// must check IsVariable first.
func (h Handle) index() uint64 {
	return uint64(h) &^ variableTag
}

func (h Handle) cellIndex() int {
	return int(uint64(h)&pointerMask) - 1
}

func newPointerHandle(cellIndex int) Handle {
	if uint64(cellIndex+1) > pointerMask {
		glog.Fatalf("term: arena exhausted the 48-bit cell index space at %d cells", cellIndex)
	}
	return Handle(uint64(cellIndex+1) & pointerMask)
}

// NewVariable returns an inline handle naming the i-th enclosing
// binder. It is a programmer error to pass i == 0 or an index that
// does not fit in 63 bits.
func NewVariable(i uint64) Handle {
	if i == 0 {
		glog.Fatalf("term: variable index must be >= 1, got 0")
	}
	if i > MaxVariableIndex {
		glog.Fatalf("term: variable index %d exceeds the 63-bit handle budget", i)
	}
	return Handle(variableTag | i)
}
