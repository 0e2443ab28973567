package term

import (
	"unicode/utf8"

	"github.com/golang/glog"
)

// stringArena interns parameter-name bytes outside the term cell
// arena. Interned strings are never freed individually; they live as
// long as the Arena that owns them, which is what lets a cell's right
// slot hold a bare index into this table.
type stringArena struct {
	names []string
}

func newStringArena() *stringArena {
	return &stringArena{}
}

func (s *stringArena) intern(name string) uint64 {
	if len(name) == 0 {
		glog.Fatalf("term: lambda parameter name must not be empty")
	}
	if len(name) > MaxNameLength {
		glog.Fatalf("term: lambda parameter name %q exceeds %d bytes", name, MaxNameLength)
	}
	if !utf8.ValidString(name) {
		glog.Fatalf("term: lambda parameter name %q is not valid UTF-8", name)
	}
	id := uint64(len(s.names))
	if id > pointerMask {
		glog.Fatalf("term: string arena exhausted the 48-bit name index space")
	}
	s.names = append(s.names, name)
	return id
}

func (s *stringArena) lookup(id uint64, length int) string {
	name := s.names[id]
	if len(name) != length {
		glog.Fatalf("term: interned name length mismatch: stored %d, cell said %d", len(name), length)
	}
	return name
}
