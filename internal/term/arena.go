package term

import "github.com/golang/glog"

// cell is the 16-byte payload every non-inline Handle points at. Its
// two slots double up to encode either an Application (both slots are
// handles) or a Lambda (the right slot instead packs an interned
// parameter name). Cells are never mutated after construction and are
// never freed individually; the whole Arena is reclaimed at once.
type cell struct {
	left  uint64
	right uint64
}

// Arena is a bump allocator for term cells. A zero Arena is not ready
// to use; call NewArena. Allocation is O(1) amortized, cells never
// move once allocated, and dropping the Arena invalidates every
// Handle it issued.
//
// The executor façade (internal/lang, via internal/symtab) keeps a
// single Arena alive for an entire interpreter session: global
// assignments, their interned names, the Church-numeral cache, and
// every evaluation's transient terms all share it, since a Handle
// minted from one Arena's cell slice is meaningless against another's
// (see SPEC_FULL.md's Open Questions entry on the dual-allocator
// collapse). Every cell stays in the Arena's cell slice until the
// Arena itself is dropped: cells are not released per evaluation or
// when a result goes out of scope, so the Arena grows for the whole
// session.
type Arena struct {
	cells []cell
	names *stringArena
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{names: newStringArena()}
}

// NewApplication allocates an Application cell pairing a function
// handle with an argument handle.
func (a *Arena) NewApplication(fn, arg Handle) Handle {
	if fn == 0 || arg == 0 {
		glog.Fatalf("term: application of a zero handle (fn=%d arg=%d)", fn, arg)
	}
	idx := len(a.cells)
	a.cells = append(a.cells, cell{left: uint64(fn), right: uint64(arg)})
	return newPointerHandle(idx)
}

// NewLambda allocates a Lambda cell. name is interned into the
// arena's string table and must outlive every term that references
// the returned handle, which holds as long as this Arena is alive.
func (a *Arena) NewLambda(name string, body Handle) Handle {
	if body == 0 {
		glog.Fatalf("term: lambda body is a zero handle")
	}
	nameID := a.names.intern(name)
	right := (uint64(len(name)) << lengthShift) | (nameID & pointerMask)
	idx := len(a.cells)
	a.cells = append(a.cells, cell{left: uint64(body), right: right})
	return newPointerHandle(idx)
}

// Kind discriminates the three term shapes returned by Unpack.
type Kind int

const (
	KindVariable Kind = iota
	KindLambda
	KindApplication
)

// Node is the unpacked view of a Handle: the tag inspected once, with
// only the fields relevant to its Kind populated.
type Node struct {
	Kind Kind

	// Valid when Kind == KindVariable.
	Index uint64

	// Valid when Kind == KindLambda: Name is the cosmetic parameter
	// name and Left is the body handle.
	Name string

	// Valid when Kind == KindApplication: Left is the function handle
	// and Right is the argument handle. For KindLambda, Left is the
	// body handle and Right is unused.
	Left  Handle
	Right Handle
}

// Unpack inspects h's tag and returns its shape. Disambiguating a
// pointer-tagged handle between Application and Lambda rests on the
// cell's right slot: a plain handle (Application's argument) is
// either an inline Variable, which has the top tag bit set, or a
// pointer handle, which has bits 48-63 zero because cell indices fit
// in the low 48 bits and the allocator never sets the upper bits on
// them, whereas a
// Lambda's packed name length occupies exactly those bits and is
// always >= 1 (NewLambda rejects empty names). See design note in
// spec §9 — the invariant that Application's right slot is always a
// handle (never zero, per NewApplication's checks) is what makes this
// discriminator sound.
func (a *Arena) Unpack(h Handle) Node {
	if h == 0 {
		glog.Fatalf("term: unpack of a zero handle")
	}
	if h.IsVariable() {
		return Node{Kind: KindVariable, Index: h.index()}
	}
	c := a.cells[h.cellIndex()]
	if c.right&variableTag != 0 || c.right&lengthMask == 0 {
		return Node{Kind: KindApplication, Left: Handle(c.left), Right: Handle(c.right)}
	}
	length := int((c.right & lengthMask) >> lengthShift)
	nameID := c.right & pointerMask
	return Node{Kind: KindLambda, Name: a.names.lookup(nameID, length), Left: Handle(c.left)}
}
