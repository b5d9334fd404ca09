package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// clipboard receives copied results.
type clipboard interface {
	copy(text string) error
}

// osc52Clipboard sets the terminal's clipboard with an OSC 52 sequence.
type osc52Clipboard struct {
	w io.Writer
}

func (c osc52Clipboard) copy(text string) error {
	_, err := fmt.Fprintf(c.w, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// writerClipboard prints copied text.
type writerClipboard struct {
	w io.Writer
}

func (c writerClipboard) copy(text string) error {
	_, err := fmt.Fprintf(c.w, "copied: %s\n", text)
	return err
}

// fileClipboard overwrites a file with copied text.
type fileClipboard struct {
	path string
}

func (c fileClipboard) copy(text string) error {
	return os.WriteFile(c.path, []byte(text), 0o600)
}

// newClipboard builds the clipboard named by setting. OSC 52 falls back to
// printing when out is not a terminal.
func newClipboard(setting string, out *os.File) clipboard {
	switch {
	case strings.HasPrefix(setting, "file:"):
		return fileClipboard{path: strings.TrimPrefix(setting, "file:")}
	case setting == "osc52" && term.IsTerminal(int(out.Fd())):
		return osc52Clipboard{w: out}
	default:
		return writerClipboard{w: out}
	}
}
