package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/woozymasta/veccalc"
)

// errRange reports a range or line outside the document.
var errRange = errors.New("range outside document")

// document is a text file edited in memory and written back on change. It
// implements veccalc.Host with byte offsets as range positions.
type document struct {
	mu   sync.Mutex
	path string // Absolute path, empty for a scratch buffer
	text string
	eol  string
	mode string // auto, lf or crlf
	clip clipboard
	log  *log.Logger
}

// openDocument loads path. An empty path gives an unsaved scratch buffer.
func openDocument(path, eolMode string, clip clipboard, logger *log.Logger) (*document, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	d := &document{mode: eolMode, clip: clip, log: logger}
	if path == "" {
		d.eol = detectLineTerminator("", eolMode)
		return d, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}
	d.path = abs

	data, err := os.ReadFile(abs)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}
	d.text = string(data)
	d.eol = detectLineTerminator(d.text, eolMode)

	return d, nil
}

// detectLineTerminator picks the terminator for text under mode.
func detectLineTerminator(text, mode string) string {
	switch mode {
	case "crlf":
		return "\r\n"
	case "lf":
		return "\n"
	}

	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return "\r\n"
	}

	return "\n"
}

// CopyText hands text to the clipboard.
func (d *document) CopyText(text string) error {
	if d.clip == nil {
		return errors.New("no clipboard")
	}

	return d.clip.copy(text)
}

// ReadRange returns the text in r.
func (d *document) ReadRange(r veccalc.Range) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.check(r); err != nil {
		return "", err
	}

	return d.text[r.Begin:r.End], nil
}

// ReplaceRange overwrites r with text and saves.
func (d *document) ReplaceRange(r veccalc.Range, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.check(r); err != nil {
		return err
	}
	d.text = d.text[:r.Begin] + text + d.text[r.End:]

	return d.save()
}

// AppendText adds text at the end and saves.
func (d *document) AppendText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.text += text

	return d.save()
}

// LineTerminator returns the document's line terminator.
func (d *document) LineTerminator() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.eol
}

// Text returns the whole document.
func (d *document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.text
}

// Line returns the range of 1-based line n without its terminator.
func (d *document) Line(n int) (veccalc.Range, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n < 1 {
		return veccalc.Range{}, fmt.Errorf("%w: line %d", errRange, n)
	}

	begin := 0
	for i := 1; i < n; i++ {
		j := strings.IndexByte(d.text[begin:], '\n')
		if j < 0 {
			return veccalc.Range{}, fmt.Errorf("%w: line %d", errRange, n)
		}
		begin += j + 1
	}
	if begin >= len(d.text) && n > 1 {
		return veccalc.Range{}, fmt.Errorf("%w: line %d", errRange, n)
	}

	end := len(d.text)
	if j := strings.IndexByte(d.text[begin:], '\n'); j >= 0 {
		end = begin + j
	}
	if end > begin && d.text[end-1] == '\r' {
		end--
	}

	return veccalc.Range{Begin: begin, End: end}, nil
}

// reload rereads the file. It reports whether the text changed. The read
// happens under mu so it never observes a save in progress.
func (d *document) reload() (bool, error) {
	if d.path == "" {
		return false, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		return false, fmt.Errorf("reload %s: %w", d.path, err)
	}
	if string(data) == d.text {
		return false, nil
	}
	d.text = string(data)
	d.eol = detectLineTerminator(d.text, d.mode)

	return true, nil
}

// watch reloads the document whenever its file is written or recreated.
// The parent directory is watched so editors that replace the file by
// rename are followed.
func (d *document) watch() (io.Closer, error) {
	if d.path == "" {
		return nopCloser{}, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", d.path, err)
	}
	if err := w.Add(filepath.Dir(d.path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", d.path, err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != d.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				changed, err := d.reload()
				if err != nil {
					d.log.Printf("watch: %v", err)
					continue
				}
				if changed {
					d.log.Printf("reloaded %s", d.path)
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				d.log.Printf("watch: %v", err)
			}
		}
	}()

	return w, nil
}

// check validates r against the current text. Caller holds mu.
func (d *document) check(r veccalc.Range) error {
	if r.Begin < 0 || r.End < r.Begin || r.End > len(d.text) {
		return fmt.Errorf("%w: [%d,%d) of %d bytes", errRange, r.Begin, r.End, len(d.text))
	}

	return nil
}

// save writes the text to a temporary file beside the document and renames
// it into place, keeping the file's permissions. Caller holds mu.
func (d *document) save() error {
	if d.path == "" {
		return nil
	}

	perm := os.FileMode(0o600)
	if fi, err := os.Stat(d.path); err == nil {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "."+filepath.Base(d.path)+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", d.path, err)
	}
	name := tmp.Name()

	_, werr := tmp.WriteString(d.text)
	if err := errors.Join(werr, tmp.Close(), os.Chmod(name, perm)); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("save %s: %w", d.path, err)
	}
	if err := os.Rename(name, d.path); err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("save %s: %w", d.path, err)
	}

	return nil
}

// nopCloser is the watcher of a scratch buffer.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
