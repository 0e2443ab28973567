package symtab

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Offset is a byte offset into a source string, kept as a distinct
// type rather than a bare int/uint64 so a caller can't pass a line
// number or an index into the wrong kind of position by accident
// (mirrors original_source/src/symbol_table.rs's Offset newtype).
type Offset uint64

// LineNumber is a 1-based line, with an optional 0-based column within
// that line. Diagnostics resolves every offset to both a line and a
// column; a diagnostic recorded before any SetSource call has no
// LineNumber at all.
type LineNumber struct {
	Line   int
	Column *int
}

func (l LineNumber) String() string {
	if l.Column != nil {
		return fmt.Sprintf("%d:%d", l.Line, *l.Column)
	}
	return fmt.Sprintf("%d", l.Line)
}

// Severity distinguishes a Warning (shadowing) from an Error (unknown
// name, duplicate global); only Error causes HasErrors to report true.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Message is one collected diagnostic.
type Message struct {
	Severity Severity
	Text     string
	Line     *LineNumber
}

func (m Message) IsError() bool { return m.Severity == SeverityError }

// Diagnostics accumulates warnings and errors during parsing/binding
// and renders them the way original_source/src/symbol_table.rs's
// CompilerMessage::print does, with a column added: "<colored prefix>:
// <message> (on line <n>:<column>)". Binding never aborts on an error — it records the diagnostic
// and keeps going so the rest of the program still gets checked.
type Diagnostics struct {
	messages []Message
	starts   []int // byte offset each source line starts at
}

// SetSource indexes a source string's line starts so subsequent
// Warning/Error calls can resolve an Offset to a line number.
func (d *Diagnostics) SetSource(source string) {
	d.starts = d.starts[:0]
	pos := 0
	for _, line := range strings.Split(source, "\n") {
		d.starts = append(d.starts, pos)
		pos += len(line) + 1
	}
}

func (d *Diagnostics) lineFor(offset Offset) *LineNumber {
	if len(d.starts) == 0 {
		return nil
	}
	o := int(offset)
	i := sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > o }) - 1
	if i < 0 {
		return nil
	}
	col := o - d.starts[i]
	return &LineNumber{Line: i + 1, Column: &col}
}

// Warning records a non-fatal diagnostic, e.g. a shadowed binder.
func (d *Diagnostics) Warning(text string, offset Offset) {
	d.messages = append(d.messages, Message{Severity: SeverityWarning, Text: text, Line: d.lineFor(offset)})
}

// Error records a fatal-to-the-name diagnostic (unknown name,
// duplicate global); binding still produces a placeholder term so
// parsing can continue.
func (d *Diagnostics) Error(text string, offset Offset) {
	d.messages = append(d.messages, Message{Severity: SeverityError, Text: text, Line: d.lineFor(offset)})
}

// HasErrors reports whether any recorded message is an Error (as
// opposed to only Warnings).
func (d *Diagnostics) HasErrors() bool {
	for _, m := range d.messages {
		if m.IsError() {
			return true
		}
	}
	return false
}

// Messages returns every diagnostic collected so far, in order.
func (d *Diagnostics) Messages() []Message {
	return d.messages
}

// Reset discards every collected message, keeping the line-offset
// index. The REPL calls this between statements so one bad line's
// diagnostics don't keep reappearing on every subsequent Print.
func (d *Diagnostics) Reset() {
	d.messages = nil
}

// Print renders every collected message to w, one per line (or one
// per line of a multi-line message body, with the "(on line N)"
// suffix attached only to the first).
func (d *Diagnostics) Print(w io.Writer) {
	for _, m := range d.messages {
		prefix := color.YellowString("Warning")
		if m.IsError() {
			prefix = color.RedString("Error")
		}
		lines := strings.Split(m.Text, "\n")
		if m.Line != nil {
			fmt.Fprintf(w, "%s: %s (on line %s)\n", prefix, lines[0], m.Line)
		} else {
			fmt.Fprintf(w, "%s: %s\n", prefix, lines[0])
		}
		for _, rest := range lines[1:] {
			fmt.Fprintln(w, rest)
		}
	}
}
