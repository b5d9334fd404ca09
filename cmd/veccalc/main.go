// Command veccalc is an interactive vector and matrix calculator. It edits
// an optional document file in place: :sel and :line pick operands from it,
// and the append and replace menu entries write results back.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/woozymasta/veccalc"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "veccalc: %v\n", err)
		os.Exit(1)
	}
}

// run parses flags, loads configuration and starts the REPL.
func run(args []string) error {
	fs := flag.NewFlagSet("veccalc", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "path to config.toml")
	trace := fs.Bool("trace", false, "force trace logging to stderr")
	quiet := fs.Bool("quiet", false, "disable trace logging")
	noWatch := fs.Bool("no-watch", false, "do not reload the document on external changes")
	eol := fs.String("eol", "", "line terminator for appends: auto, lf or crlf")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: veccalc [flags] [document]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return errors.New("at most one document may be given")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *trace {
		cfg.Trace = true
	}
	if *quiet {
		cfg.Trace = false
	}
	if *noWatch {
		cfg.Watch = false
	}
	if *eol != "" {
		cfg.LineTerminator = *eol
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Trace {
		logger = log.New(os.Stderr, "veccalc: ", 0)
	}

	doc, err := openDocument(fs.Arg(0), cfg.LineTerminator, newClipboard(cfg.Clipboard, os.Stdout), logger)
	if err != nil {
		return err
	}
	if cfg.Watch {
		w, err := doc.watch()
		if err != nil {
			return err
		}
		defer w.Close()
	}

	r := &repl{
		sess: veccalc.NewSession(doc, &veccalc.SessionOptions{
			Logger:         logger,
			DisableHexMode: !cfg.HexMode,
		}),
		doc:   doc,
		out:   os.Stdout,
		width: terminalWidth(os.Stdout),
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return r.run(scanReader{sc: bufio.NewScanner(os.Stdin)})
	}

	return runInteractive(r, cfg.historyPath())
}

// runInteractive runs the REPL on a liner prompt with persistent history.
func runInteractive(r *repl, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(r.complete)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(r.out, "veccalc: type :help for commands, Ctrl-D to exit")

	return r.run(linerReader{ln: ln})
}

// terminalWidth returns the width of f, or 80 when it is not a terminal.
func terminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}

	return 80
}
