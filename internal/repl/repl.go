// Package repl implements the interactive loop described in spec §6:
// a chzyer/readline-backed prompt recognizing a handful of `:`
// commands, with any other input parsed and evaluated as a statement.
package repl

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/golang/glog"

	"github.com/lc-lang/golc/internal/eval"
	"github.com/lc-lang/golc/internal/lang"
	"github.com/lc-lang/golc/internal/printer"
	"github.com/lc-lang/golc/internal/term"
)

// REPL drives one interactive session against an Executor.
type REPL struct {
	exec   *lang.Executor
	rl     *readline.Instance
	out    io.Writer
	cancel *eval.CancelFlag
	trace  bool

	sigCh chan os.Signal
}

// New builds a REPL reading from the terminal and writing prompts and
// results to out.
func New(exec *lang.Executor, out io.Writer) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("repl: %w", err)
	}
	r := &REPL{
		exec:   exec,
		rl:     rl,
		out:    out,
		cancel: &eval.CancelFlag{},
		sigCh:  make(chan os.Signal, 1),
	}
	// Once a readline.Readline() call returns control to us, the
	// terminal is back in cooked mode, so a Ctrl+C pressed while an
	// evaluation is running arrives here as a genuine SIGINT rather
	// than through readline's own raw-mode interrupt handling. This
	// goroutine is the only signal handler in the program, matching
	// spec §5's "only the REPL installs such a handler".
	signal.Notify(r.sigCh, os.Interrupt)
	go func() {
		for range r.sigCh {
			r.cancel.Set()
		}
	}()
	return r, nil
}

// SetTrace sets the initial :steps state, e.g. from the run
// command's -s flag when it falls through into an interactive
// session.
func (r *REPL) SetTrace(trace bool) {
	r.trace = trace
}

// Close releases the readline instance and stops watching for
// SIGINT.
func (r *REPL) Close() error {
	signal.Stop(r.sigCh)
	close(r.sigCh)
	return r.rl.Close()
}

// Run reads and executes lines until EOF or two consecutive Ctrl+C at
// the prompt.
func (r *REPL) Run() {
	interrupts := 0
	for {
		line, err := r.rl.Readline()
		switch {
		case err == readline.ErrInterrupt:
			interrupts++
			if interrupts >= 2 {
				fmt.Fprintln(r.out, "Goodbye.")
				return
			}
			fmt.Fprintln(r.out, "(Ctrl+C again to exit)")
			continue
		case err == io.EOF:
			fmt.Fprintln(r.out, "Goodbye.")
			return
		case err != nil:
			glog.Errorf("repl: readline: %v", err)
			return
		}
		interrupts = 0
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.dispatch(line)
	}
}

func (r *REPL) dispatch(line string) {
	fields := strings.Fields(line)
	if !strings.HasPrefix(fields[0], ":") {
		r.evalStatement(line)
		return
	}

	switch fields[0] {
	case ":exit", ":quit":
		fmt.Fprintln(r.out, "Goodbye.")
		os.Exit(0)
	case ":help":
		r.printHelp()
	case ":all":
		r.printAll()
	case ":load":
		if len(fields) < 2 {
			r.errorf("%s", ":load requires a PATH")
			return
		}
		r.loadFile(fields[1])
	case ":print":
		expr := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		r.printExpr(expr)
	case ":steps":
		r.setSteps(fields[1:])
	default:
		r.errorf("unknown command %s", fields[0])
	}
}

func (r *REPL) errorf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s: %s\n", color.RedString("Error"), fmt.Sprintf(format, args...))
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, ":exit, :quit       leave the REPL")
	fmt.Fprintln(r.out, ":help              show this message")
	fmt.Fprintln(r.out, ":all               print every bound global")
	fmt.Fprintln(r.out, ":load PATH         load and evaluate a file")
	fmt.Fprintln(r.out, ":print EXPR        evaluate a bare expression")
	fmt.Fprintln(r.out, ":steps [on|off]    toggle per-step tracing")
	fmt.Fprintln(r.out, "anything else is parsed as NAME = EXPR; or EXPR;")
}

func (r *REPL) printAll() {
	globals := r.exec.Globals()
	names := make([]string, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "%s = %s\n", name, printer.Print(r.exec.Arena(), globals[name]))
	}
}

func (r *REPL) loadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.errorf("%v", err)
		return
	}
	r.exec.Diagnostics().Reset()
	pending, err := r.exec.Load(string(data), path)
	r.exec.Diagnostics().Print(r.out)
	if err != nil {
		return
	}
	for _, h := range pending {
		r.evaluateAndPrint(h)
	}
}

func (r *REPL) evalStatement(line string) {
	r.exec.Diagnostics().Reset()
	h, ok, err := r.exec.LoadStatement(line)
	if err != nil {
		r.exec.Diagnostics().Print(r.out)
		return
	}
	r.exec.Diagnostics().Print(r.out)
	if !ok {
		return
	}
	r.evaluateAndPrint(h)
}

func (r *REPL) printExpr(src string) {
	r.exec.Diagnostics().Reset()
	h, err := r.exec.LoadExpression(src)
	if err != nil {
		r.exec.Diagnostics().Print(r.out)
		return
	}
	r.evaluateAndPrint(h)
}

func (r *REPL) evaluateAndPrint(h term.Handle) {
	var trace io.Writer
	if r.trace {
		trace = r.out
	}
	r.cancel.Reset()
	result := r.exec.Evaluate(h, trace, r.cancel)
	if result.Interrupted {
		fmt.Fprintln(r.out, "Interrupted")
		return
	}
	fmt.Fprintln(r.out, printer.Print(r.exec.Arena(), result.Term))
}

func (r *REPL) setSteps(args []string) {
	if len(args) == 0 {
		r.trace = !r.trace
	} else {
		switch strings.ToLower(args[0]) {
		case "on", "1", "true":
			r.trace = true
		case "off", "0", "false":
			r.trace = false
		default:
			r.errorf("unrecognized :steps argument %q", args[0])
			return
		}
	}
	fmt.Fprintf(r.out, "steps: %v\n", r.trace)
}
