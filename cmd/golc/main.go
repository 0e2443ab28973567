// Command golc is the CLI entry point described in spec §6: it loads
// the prelude and dispatches to the run, encode, and decode
// subcommands.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/urfave/cli"

	"github.com/lc-lang/golc/internal/blc"
	"github.com/lc-lang/golc/internal/lang"
	"github.com/lc-lang/golc/internal/printer"
	"github.com/lc-lang/golc/internal/repl"
	"github.com/lc-lang/golc/internal/term"
)

func main() {
	glog.InitFlags(nil)
	flag.Parse()
	defer glog.Flush()

	app := cli.NewApp()
	app.Name = "golc"
	app.Usage = "an untyped lambda calculus engine"
	app.Commands = []cli.Command{
		runCommand(),
		encodeCommand(),
		decodeCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "golc: %v\n", err)
		os.Exit(1)
	}
}

// loadPrelude is shared by the subcommands that bind globals: run and
// encode need the prelude's combinators available before anything a
// user supplies. decode binds no globals and does not call it.
func loadPrelude(exec *lang.Executor) error {
	if _, err := exec.Load(lang.Prelude, "prelude"); err != nil {
		exec.Diagnostics().Print(os.Stderr)
		return fmt.Errorf("failed to load prelude: %w", err)
	}
	return nil
}

func runCommand() cli.Command {
	return cli.Command{
		Name:      "run",
		Usage:     "load the prelude and files, printing each top-level expression's normal form",
		ArgsUsage: "[FILES...]",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "i", Usage: "enter the REPL after loading files"},
			cli.BoolFlag{Name: "s", Usage: "trace each reduction step to stderr"},
		},
		Action: func(c *cli.Context) error {
			interactive := c.Bool("i")
			steps := c.Bool("s")
			files := c.Args()

			exec := lang.NewExecutor()
			if err := loadPrelude(exec); err != nil {
				return fmt.Errorf("run: %w", err)
			}

			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
				exec.Diagnostics().Reset()
				pending, err := exec.Load(string(data), path)
				exec.Diagnostics().Print(os.Stderr)
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
				for _, h := range pending {
					var trace io.Writer
					if steps {
						trace = os.Stderr
					}
					result := exec.Evaluate(h, trace, nil)
					fmt.Println(printer.Print(exec.Arena(), result.Term))
				}
			}

			if interactive || len(files) == 0 {
				r, err := repl.New(exec, os.Stdout)
				if err != nil {
					return fmt.Errorf("run: %w", err)
				}
				defer r.Close()
				r.SetTrace(steps)
				r.Run()
			}
			return nil
		},
	}
}

func textAlphabet(zeroWidth bool, zero, one string) blc.Alphabet {
	alphabet := blc.DefaultAlphabet
	if zeroWidth {
		alphabet = blc.ZeroWidthAlphabet
	}
	if zero != "" {
		alphabet.Zero = zero
	}
	if one != "" {
		alphabet.One = one
	}
	return alphabet
}

func encodeCommand() cli.Command {
	return cli.Command{
		Name:      "encode",
		Usage:     "encode a global as Binary Lambda Calculus",
		ArgsUsage: "FILES...",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "t", Usage: "name of the global to encode"},
			cli.BoolFlag{Name: "e", Usage: "evaluate before encoding"},
			cli.BoolFlag{Name: "b", Usage: "emit packed bytes instead of text"},
			cli.BoolFlag{Name: "z", Usage: "emit zero-width unicode text"},
			cli.StringFlag{Name: "zero", Usage: "text marker for a 0 bit"},
			cli.StringFlag{Name: "one", Usage: "text marker for a 1 bit"},
		},
		Action: func(c *cli.Context) error {
			name := c.String("t")
			if name == "" {
				return fmt.Errorf("encode: -t NAME is required")
			}
			binary := c.Bool("b")
			zeroWidth := c.Bool("z")
			if binary && zeroWidth {
				return fmt.Errorf("encode: -b and -z are mutually exclusive")
			}
			files := c.Args()
			if len(files) == 0 {
				return fmt.Errorf("encode: at least one FILE is required")
			}

			exec := lang.NewExecutor()
			if err := loadPrelude(exec); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				exec.Diagnostics().Reset()
				_, err = exec.Load(string(data), path)
				exec.Diagnostics().Print(os.Stderr)
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}

			h, ok := exec.Globals()[name]
			if !ok {
				return fmt.Errorf("encode: no such global %q", name)
			}
			if c.Bool("e") {
				h = exec.Evaluate(h, nil, nil).Term
			}

			if binary {
				if _, err := os.Stdout.Write(blc.EncodeBytes(exec.Arena(), h)); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				return nil
			}
			text, err := blc.EncodeText(exec.Arena(), h, textAlphabet(zeroWidth, c.String("zero"), c.String("one")))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(text)
			return nil
		},
	}
}

func decodeCommand() cli.Command {
	return cli.Command{
		Name:      "decode",
		Usage:     "decode a Binary Lambda Calculus term",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "e", Usage: "evaluate after decoding"},
			cli.BoolFlag{Name: "b", Usage: "read packed bytes instead of text"},
			cli.BoolFlag{Name: "z", Usage: "read zero-width unicode text"},
			cli.StringFlag{Name: "zero", Usage: "text marker for a 0 bit"},
			cli.StringFlag{Name: "one", Usage: "text marker for a 1 bit"},
		},
		Action: func(c *cli.Context) error {
			binary := c.Bool("b")
			zeroWidth := c.Bool("z")
			if binary && zeroWidth {
				return fmt.Errorf("decode: -b and -z are mutually exclusive")
			}

			files := c.Args()
			if len(files) > 1 {
				return fmt.Errorf("decode: at most one FILE is accepted")
			}
			var reader io.Reader = os.Stdin
			if len(files) == 1 {
				f, err := os.Open(files[0])
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				defer f.Close()
				reader = f
			}

			exec := lang.NewExecutor()
			var h term.Handle
			if binary {
				data, err := io.ReadAll(reader)
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				h, err = blc.DecodeBytes(exec.Arena(), data)
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
			} else {
				data, err := io.ReadAll(reader)
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				h, err = blc.DecodeText(exec.Arena(), string(data), textAlphabet(zeroWidth, c.String("zero"), c.String("one")))
				if err != nil {
					return fmt.Errorf("decode: %w", err)
				}
			}

			if c.Bool("e") {
				h = exec.Evaluate(h, nil, nil).Term
			}
			fmt.Println(printer.Print(exec.Arena(), h))
			return nil
		},
	}
}
