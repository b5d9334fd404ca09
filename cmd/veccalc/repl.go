package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/veccalc"
)

const helpText = `Enter a vector or matrix literal, e.g. [1, 2, 3] or [[1,0],[0,1]].
While a menu is shown, pick an entry by name or number; an empty line cancels.

Commands:
  :sel START END   Use document bytes [START,END) as the operand
  :line N          Use document line N as the operand
  :const [NAME]    Use a named constant, or list them
  :stack           Print the auxiliary stack
  :doc             Print the document
  :rules           List diagnostic codes
  :cancel          Abandon the current chain
  :help            Show this text
  :quit            Exit
`

// errAborted is returned by a lineReader when the user presses Ctrl-C.
var errAborted = errors.New("aborted")

// lineReader supplies REPL input one line at a time.
type lineReader interface {
	readLine(prompt string) (string, error)
}

// linerReader reads from an interactive terminal with history.
type linerReader struct {
	ln *liner.State
}

func (r linerReader) readLine(prompt string) (string, error) {
	line, err := r.ln.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", errAborted
	}
	if err == nil && strings.TrimSpace(line) != "" {
		r.ln.AppendHistory(line)
	}

	return line, err
}

// scanReader reads piped input without prompts.
type scanReader struct {
	sc *bufio.Scanner
}

func (r scanReader) readLine(string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// repl drives a Session from text commands.
type repl struct {
	sess  *veccalc.Session
	doc   *document
	out   io.Writer
	width int // Menu wrap width
}

// run reads lines until EOF or :quit.
func (r *repl) run(in lineReader) error {
	for {
		line, err := in.readLine(r.prompt())
		switch {
		case errors.Is(err, errAborted):
			r.sess.Cancel()
			fmt.Fprintln(r.out, "cancelled")
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if r.handle(line) {
			return nil
		}
	}
}

// prompt returns the prompt for the current state.
func (r *repl) prompt() string {
	switch r.sess.State() {
	case veccalc.StateShowingMenu:
		return "op> "
	case veccalc.StateAwaitingOperand:
		return "operand> "
	default:
		return "> "
	}
}

// handle processes one input line and reports whether to exit.
func (r *repl) handle(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		return r.command(strings.Fields(line[1:]))
	}

	if r.sess.State() == veccalc.StateShowingMenu {
		if line == "" {
			r.sess.Cancel()
			fmt.Fprintln(r.out, "cancelled")
			return false
		}
		op, ok := r.choice(line)
		if !ok {
			fmt.Fprintf(r.out, "error: unknown choice %q\n", line)
			return false
		}
		r.show(r.sess.Choose(op))
		return false
	}

	if line != "" {
		r.show(r.sess.Submit(line))
	}

	return false
}

// command runs a colon command.
func (r *repl) command(args []string) bool {
	if len(args) == 0 {
		fmt.Fprint(r.out, helpText)
		return false
	}

	switch args[0] {
	case "quit", "q":
		return true

	case "help", "h":
		fmt.Fprint(r.out, helpText)

	case "cancel":
		r.sess.Cancel()
		fmt.Fprintln(r.out, "cancelled")

	case "sel":
		if len(args) != 3 {
			fmt.Fprintln(r.out, "usage: :sel START END")
			return false
		}
		begin, err1 := strconv.Atoi(args[1])
		end, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(r.out, "error: START and END must be integers")
			return false
		}
		r.show(r.sess.SubmitRange(veccalc.Range{Begin: begin, End: end}))

	case "line":
		if len(args) != 2 {
			fmt.Fprintln(r.out, "usage: :line N")
			return false
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintln(r.out, "error: N must be an integer")
			return false
		}
		rng, err := r.doc.Line(n)
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			return false
		}
		r.show(r.sess.SubmitRange(rng))

	case "const":
		if len(args) == 1 {
			fmt.Fprintln(r.out, strings.Join(r.sess.ConstantNames(), " "))
			return false
		}
		r.show(r.sess.SubmitConstant(args[1]))

	case "stack":
		r.printStack()

	case "doc":
		fmt.Fprintln(r.out, r.doc.Text())

	case "rules":
		r.printRules()

	default:
		fmt.Fprintf(r.out, "error: unknown command :%s\n", args[0])
	}

	return false
}

// choice resolves a menu entry by 1-based number or name.
func (r *repl) choice(s string) (veccalc.Operator, bool) {
	menu := r.sess.Menu()
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(menu) {
			return veccalc.Operator{}, false
		}
		return menu[n-1], true
	}

	return veccalc.ParseOperator(s)
}

// show prints the outcome of a Session call.
func (r *repl) show(st veccalc.Step, err error) {
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}

	switch st.State {
	case veccalc.StateShowingMenu:
		fmt.Fprintf(r.out, "= %s\n", st.Text)
		r.printMenu(st.Menu)
	case veccalc.StateAwaitingOperand:
		fmt.Fprintln(r.out, "enter the second operand")
	default:
		if st.Text != "" {
			fmt.Fprintf(r.out, "done %s\n", st.Text)
		}
	}
}

// printMenu lists the menu as numbered entries wrapped to the width.
func (r *repl) printMenu(menu []veccalc.Operator) {
	var b strings.Builder
	col := 0
	for i, op := range menu {
		item := fmt.Sprintf("%d:%s", i+1, op)
		if col > 0 && col+1+len(item) > r.width {
			b.WriteByte('\n')
			col = 0
		}
		if col > 0 {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(item)
		col += len(item)
	}
	b.WriteByte('\n')

	fmt.Fprint(r.out, b.String())
}

// printStack writes the auxiliary stack as YAML, top last.
func (r *repl) printStack() {
	stack := r.sess.Stack()
	if len(stack) == 0 {
		fmt.Fprintln(r.out, "stack is empty")
		return
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(stack); err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
	}
	_ = enc.Close()
}

// printRules lists the diagnostic code catalog.
func (r *repl) printRules() {
	rules, err := veccalc.DiagnosticRules()
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	for _, rule := range rules {
		fmt.Fprintf(r.out, "%s %-7s %s (%s)\n", rule.Code, rule.DefaultSeverity, rule.Message, rule.ID)
	}
}

// complete returns completions for the liner prompt.
func (r *repl) complete(line string) []string {
	var words []string
	switch {
	case strings.HasPrefix(line, ":const "):
		for _, name := range r.sess.ConstantNames() {
			words = append(words, ":const "+name)
		}
	case strings.HasPrefix(line, ":"):
		words = []string{":sel ", ":line ", ":const ", ":stack", ":doc", ":rules", ":cancel", ":help", ":quit"}
	case r.sess.State() == veccalc.StateShowingMenu:
		for _, op := range r.sess.Menu() {
			words = append(words, op.String())
		}
	}

	out := words[:0]
	for _, w := range words {
		if strings.HasPrefix(w, line) {
			out = append(out, w)
		}
	}

	return out
}
