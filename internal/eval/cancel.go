package eval

import "sync/atomic"

// CancelFlag is the word-sized, advisory cancellation flag described
// in spec §5: a signal handler (installed only by the REPL) sets it
// from another goroutine, and Normalize polls it once per outer
// iteration. There is no synchronization beyond what atomic.Bool
// already gives a single flag read/write — the effect is advisory, so
// a racy observation only delays the interruption by one more step,
// never corrupts state.
type CancelFlag struct {
	flag atomic.Bool
}

// Set requests cancellation of the evaluation(s) watching this flag.
func (c *CancelFlag) Set() {
	c.flag.Store(true)
}

// Reset clears the flag, typically done before starting a new
// evaluation so a stale Ctrl+C doesn't interrupt it immediately.
func (c *CancelFlag) Reset() {
	c.flag.Store(false)
}

// IsSet reports whether cancellation has been requested.
func (c *CancelFlag) IsSet() bool {
	return c.flag.Load()
}
