package main

import (
	"bufio"
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/woozymasta/veccalc"
)

func newTestRepl(t *testing.T, text string) (*repl, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	doc, clip := openTestDocument(t, text, "auto")
	out := &bytes.Buffer{}

	return &repl{
		sess:  veccalc.NewSession(doc, nil),
		doc:   doc,
		out:   out,
		width: 40,
	}, out, clip
}

func runScript(t *testing.T, r *repl, script string) {
	t.Helper()

	if err := r.run(scanReader{sc: bufio.NewScanner(strings.NewReader(script))}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestReplLengthReplace(t *testing.T) {
	r, out, _ := newTestRepl(t, "[1, 2, 3]\n")

	runScript(t, r, ":line 1\nlength\nreplace\n:quit\n")

	want := veccalc.Scalar(math.Sqrt(14)).Text(veccalc.ModeDecimal)
	if got := readBack(t, r.doc); got != want+"\n" {
		t.Fatalf("document %q, want %q", got, want+"\n")
	}
	if !strings.Contains(out.String(), "= (1, 2, 3)") {
		t.Fatalf("selection not shown:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "done "+want) {
		t.Fatalf("result not shown:\n%s", out.String())
	}
}

func TestReplBinaryChain(t *testing.T) {
	r, out, clip := newTestRepl(t, "")

	runScript(t, r, "2\nadd\n3\ncopy\n")

	if !strings.Contains(out.String(), "enter the second operand") {
		t.Fatalf("no operand prompt:\n%s", out.String())
	}
	if !strings.Contains(clip.String(), "5") {
		t.Fatalf("clipboard got %q", clip.String())
	}
	if r.sess.State() != veccalc.StateIdle {
		t.Fatalf("state %s after copy", r.sess.State())
	}
}

func TestReplChoiceByNumber(t *testing.T) {
	r, _, clip := newTestRepl(t, "")

	runScript(t, r, "[4, 5]\n1\n")

	if !strings.Contains(clip.String(), "(4, 5)") {
		t.Fatalf("clipboard got %q", clip.String())
	}
}

func TestReplMenuErrors(t *testing.T) {
	r, out, _ := newTestRepl(t, "")

	runScript(t, r, "[1, 2]\n99\nbogus\ncross\n")

	text := out.String()
	if strings.Count(text, "unknown choice") != 2 {
		t.Fatalf("expected two unknown choices:\n%s", text)
	}
	if !strings.Contains(text, "error: ") || r.sess.State() != veccalc.StateIdle {
		t.Fatalf("cross on a 2-vector should fail and reset:\n%s", text)
	}
}

func TestReplEmptyLineCancels(t *testing.T) {
	r, out, _ := newTestRepl(t, "")

	runScript(t, r, "[1, 2]\n\n")

	if r.sess.State() != veccalc.StateIdle || !strings.Contains(out.String(), "cancelled") {
		t.Fatalf("empty line did not cancel:\n%s", out.String())
	}
}

func TestReplStackAndConstants(t *testing.T) {
	r, out, _ := newTestRepl(t, "")

	runScript(t, r, ":stack\n[1, 2]\npush\n:const\n:stack\n:const pop\n")

	text := out.String()
	if !strings.Contains(text, "stack is empty") {
		t.Fatalf("empty stack not reported:\n%s", text)
	}
	if !strings.Contains(text, "pi e epsilon") || !strings.Contains(text, " pop") {
		t.Fatalf("constant list missing entries:\n%s", text)
	}
	if !strings.Contains(text, "rows: 2") {
		t.Fatalf("stack yaml missing:\n%s", text)
	}
	if sel, ok := r.sess.Selection(); !ok || !sel.Equal(veccalc.Vec(1, 2)) {
		t.Fatalf("pop selection %v", sel.Numbers())
	}
}

func TestReplAppendAndSel(t *testing.T) {
	r, _, _ := newTestRepl(t, "a [2, 0]")

	runScript(t, r, ":sel 2 8\nnormalize\nappend\n")

	if got := readBack(t, r.doc); got != "a [2, 0]\n(1, 0)" {
		t.Fatalf("document %q", got)
	}
}

func TestReplCommands(t *testing.T) {
	r, out, _ := newTestRepl(t, "[1]\n")

	for _, line := range []string{":", ":help", ":sel 1", ":sel a b", ":line", ":line x", ":line 9", ":doc", ":rules", ":nope", "[1]", ":cancel"} {
		if r.handle(line) {
			t.Fatalf("%q requested exit", line)
		}
	}
	if !r.handle(":q") {
		t.Fatal(":q did not exit")
	}

	text := out.String()
	for _, want := range []string{"Commands:", "usage: :sel", "must be integers", "usage: :line", "must be an integer", "range outside document", "unknown command :nope", "cancelled", "VEC2003 error   vector lengths differ (veccalc.shape.vector-lengths-differ)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
	if r.sess.State() != veccalc.StateIdle {
		t.Fatalf("state %s after :cancel", r.sess.State())
	}
}

func TestReplPrompt(t *testing.T) {
	r, _, _ := newTestRepl(t, "")

	if r.prompt() != "> " {
		t.Fatalf("idle prompt %q", r.prompt())
	}
	r.handle("[1, 2]")
	if r.prompt() != "op> " {
		t.Fatalf("menu prompt %q", r.prompt())
	}
	r.handle("dot")
	if r.prompt() != "operand> " {
		t.Fatalf("operand prompt %q", r.prompt())
	}
}

func TestReplComplete(t *testing.T) {
	r, _, _ := newTestRepl(t, "")

	if got := r.complete(":st"); len(got) != 1 || got[0] != ":stack" {
		t.Fatalf("command completion %v", got)
	}
	if got := r.complete(":const s"); len(got) != 2 {
		t.Fatalf("constant completion %v", got)
	}
	if got := r.complete("len"); len(got) != 0 {
		t.Fatalf("idle completion %v", got)
	}

	r.handle("[1, 2, 3]")
	got := r.complete("len")
	if len(got) != 1 || got[0] != "length" {
		t.Fatalf("menu completion %v", got)
	}
}

func TestPrintMenuWraps(t *testing.T) {
	r, out, _ := newTestRepl(t, "")
	r.width = 20

	r.printMenu([]veccalc.Operator{
		veccalc.Op(veccalc.OpCopy),
		veccalc.Op(veccalc.OpPush),
		veccalc.Op(veccalc.OpAppend),
		veccalc.Op(veccalc.OpLength),
	})

	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if len(line) > 20 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if !strings.Contains(out.String(), "4:length") {
		t.Fatalf("menu %q", out.String())
	}
}
