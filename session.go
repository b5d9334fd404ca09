package veccalc

import (
	"errors"
	"fmt"
)

// State is the phase of a calculation chain.
type State int

const (
	// StateIdle has no selection and nothing pending.
	StateIdle State = iota
	// StateAwaitingOperand holds a pending operand and binary operator.
	StateAwaitingOperand
	// StateShowingMenu holds a selection and the operators legal for it.
	StateShowingMenu
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingOperand:
		return "awaiting operand"
	case StateShowingMenu:
		return "showing menu"
	default:
		return "unknown"
	}
}

// Range is a span of the host document, in host-defined offsets.
type Range struct {
	Begin int `json:"begin" yaml:"begin"` // First offset
	End   int `json:"end" yaml:"end"`     // Offset just past the end
}

// Host performs the side effects a chain can end with. Hosts that deliver
// events from several sources must serialize calls into the Session.
type Host interface {
	// CopyText delivers text to the clipboard.
	CopyText(text string) error
	// ReadRange returns the current document text in r.
	ReadRange(r Range) (string, error)
	// ReplaceRange overwrites r with text.
	ReplaceRange(r Range, text string) error
	// AppendText inserts text at the end of the document.
	AppendText(text string) error
	// LineTerminator returns the document's native line terminator.
	LineTerminator() string
}

// Step is the outcome of a Session call.
type Step struct {
	Selection Value      // Current selection, or the final result of an output
	Text      string     // Selection formatted in the current mode
	Menu      []Operator // Legal next operators when State is StateShowingMenu
	State     State      // State after the call
}

// source is the first operand's document range and its text at capture time.
type source struct {
	r    Range
	text string
}

// Session is a calculation chain over one host. It is not safe for
// concurrent use.
type Session struct {
	host      Host
	opt       SessionOptions
	selection Value
	pending   Value
	pendingOp Operator
	source    *source
	menu      []Operator
	stack     []Value
	state     State
	mode      DisplayMode
	allHex    bool
}

// NewSession creates an idle session. host may be nil, in which case copy,
// append and replace fail with ErrHostIO.
func NewSession(host Host, opt *SessionOptions) *Session {
	return &Session{host: host, opt: opt.normalize()}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Mode returns the current display mode.
func (s *Session) Mode() DisplayMode { return s.mode }

// Selection returns the current selection while a menu is shown.
func (s *Session) Selection() (Value, bool) {
	return s.selection, s.state == StateShowingMenu
}

// Menu returns the operators offered for the current selection.
func (s *Session) Menu() []Operator {
	out := make([]Operator, len(s.menu))
	copy(out, s.menu)

	return out
}

// Stack returns a copy of the auxiliary stack, bottom first.
func (s *Session) Stack() []Value {
	out := make([]Value, len(s.stack))
	copy(out, s.stack)

	return out
}

// ConstantNames returns the names SubmitConstant accepts right now.
func (s *Session) ConstantNames() []string {
	out := make([]string, 0, len(constants)+1)
	for _, c := range constants {
		out = append(out, c.Name)
	}
	if len(s.stack) > 0 {
		out = append(out, PopName)
	}

	return out
}

// Submit parses text and supplies it as the next operand.
func (s *Session) Submit(text string) (Step, error) {
	return s.submitText(text, nil)
}

// SubmitRange reads r from the host and supplies its text as the next
// operand. When this starts a chain, r and its text are captured for replace.
func (s *Session) SubmitRange(r Range) (Step, error) {
	if s.host == nil {
		return s.fail(fmt.Errorf("%w: no host document", ErrHostIO))
	}
	text, err := s.host.ReadRange(r)
	if err != nil {
		return s.fail(fmt.Errorf("%w: read range: %w", ErrHostIO, err))
	}

	return s.submitText(text, &source{r: r, text: text})
}

// SubmitConstant supplies a catalogue constant, or pops the auxiliary stack
// for PopName.
func (s *Session) SubmitConstant(name string) (Step, error) {
	if name == PopName {
		if len(s.stack) == 0 {
			return s.fail(ErrEmptyStack)
		}
		v := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		return s.submit(v, false, nil)
	}

	v, ok := LookupConstant(name)
	if !ok {
		return s.fail(fmt.Errorf("%w: %q", ErrUnknownConstant, name))
	}

	return s.submit(v, false, nil)
}

// SubmitValue supplies an already built Value as the next operand.
func (s *Session) SubmitValue(v Value) (Step, error) {
	if !v.IsValid() {
		return s.fail(fmt.Errorf("%w: invalid value", ErrParse))
	}

	return s.submit(v, false, nil)
}

// Choose selects a menu entry. OpNone cancels the chain.
func (s *Session) Choose(op Operator) (Step, error) {
	if op.Kind == OpNone {
		s.Cancel()
		return Step{State: StateIdle}, nil
	}
	if s.state != StateShowingMenu || !menuContains(s.menu, op) {
		return s.fail(fmt.Errorf("%w: %s in state %s", ErrUnavailable, op, s.state))
	}

	switch {
	case op.IsMode():
		s.mode = ModeDecimal
		if op.Kind == OpHex {
			s.mode = ModeHex
		}
		s.rebuildMenu()
		return s.step(), nil

	case op.IsUnary():
		r := op.Apply(s.selection, Invalid)
		if !r.IsValid() {
			return s.fail(s.shapeError(op, s.selection, Invalid))
		}
		s.tracef("%s %s = %s", op, s.format(s.selection), s.format(r))
		s.selection = r
		s.rebuildMenu()
		return s.step(), nil

	case op.IsBinary():
		s.pending, s.pendingOp = s.selection, op
		s.selection, s.menu = Invalid, nil
		s.state = StateAwaitingOperand
		return s.step(), nil

	default:
		return s.output(op)
	}
}

// Cancel clears the chain. The auxiliary stack is kept.
func (s *Session) Cancel() {
	s.reset()
}

// submitText parses text and submits the flattened value.
func (s *Session) submitText(text string, src *source) (Step, error) {
	tree := Parse(text, s.opt.Parse)
	v := tree.Value()
	if !v.IsValid() {
		return s.fail(fmt.Errorf("%w: no numbers in %q", ErrParse, text))
	}

	return s.submit(v, tree.AllHex(), src)
}

// submit starts a chain with v or completes the pending binary operation.
func (s *Session) submit(v Value, hex bool, src *source) (Step, error) {
	if s.state != StateAwaitingOperand {
		s.reset()
		s.source = src
		s.allHex = hex
		if hex {
			s.mode = ModeHex
		}
		s.selection = v
		s.tracef("Select %s", s.format(v))
		s.rebuildMenu()
		return s.step(), nil
	}

	s.allHex = s.allHex && hex
	if !s.allHex {
		s.mode = ModeDecimal
	}

	a, op := s.pending, s.pendingOp
	r := op.Apply(a, v)
	if !r.IsValid() {
		return s.fail(s.shapeError(op, a, v))
	}
	s.tracef("%s %s %s = %s", s.format(a), op, s.format(v), s.format(r))

	s.pending, s.pendingOp = Invalid, Operator{}
	s.selection = r
	s.rebuildMenu()

	return s.step(), nil
}

// output performs an output effect and ends the chain.
func (s *Session) output(op Operator) (Step, error) {
	v := s.selection
	text := s.format(v)
	done := Step{Selection: v, Text: text, State: StateIdle}

	var err error
	switch op.Kind {
	case OpPush:
		s.stack = append(s.stack, v)
	case OpCopy:
		err = s.hostDo(func(h Host) error { return h.CopyText(text) })
	case OpAppend:
		err = s.hostDo(func(h Host) error { return h.AppendText(h.LineTerminator() + text) })
	case OpReplace:
		err = s.replace(text)
	}
	if err != nil {
		return s.fail(err)
	}

	s.reset()
	return done, nil
}

// replace overwrites the captured source range after checking it is unchanged.
func (s *Session) replace(text string) error {
	src := s.source
	if src == nil {
		return fmt.Errorf("%w: no source range", ErrUnavailable)
	}

	return s.hostDo(func(h Host) error {
		cur, err := h.ReadRange(src.r)
		if err != nil {
			return err
		}
		if cur != src.text {
			return fmt.Errorf("%w: range %d-%d now holds %q, captured %q", ErrStaleSource, src.r.Begin, src.r.End, cur, src.text)
		}
		return h.ReplaceRange(src.r, text)
	})
}

// hostDo runs f against the host, wrapping host failures in ErrHostIO.
func (s *Session) hostDo(f func(Host) error) error {
	if s.host == nil {
		return fmt.Errorf("%w: no host", ErrHostIO)
	}
	err := f(s.host)
	if err == nil || errors.Is(err, ErrStaleSource) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrHostIO, err)
}

// fail reports err, resets the chain and returns an idle step.
func (s *Session) fail(err error) (Step, error) {
	s.opt.Logger.Printf("error: %v", err)
	s.reset()

	return Step{State: StateIdle}, err
}

// shapeError builds an ErrShapeMismatch with the reasons from Explain.
func (s *Session) shapeError(op Operator, a, b Value) error {
	if issues := Explain(op, a, b); len(issues) > 0 {
		return fmt.Errorf("%w: %s", ErrShapeMismatch, joinIssues(issues))
	}

	return fmt.Errorf("%w: %s", ErrShapeMismatch, op)
}

// reset returns to Idle. The auxiliary stack survives.
func (s *Session) reset() {
	s.state = StateIdle
	s.selection, s.pending = Invalid, Invalid
	s.pendingOp = Operator{}
	s.source = nil
	s.menu = nil
	s.mode = ModeDecimal
	s.allHex = false
}

// rebuildMenu enters StateShowingMenu with the menu for the selection.
func (s *Session) rebuildMenu() {
	s.state = StateShowingMenu
	s.menu = buildMenu(s.selection, menuState{
		mode:           s.mode,
		hasSource:      s.source != nil,
		disableHexMode: s.opt.DisableHexMode,
	})
}

// step snapshots the session for a caller.
func (s *Session) step() Step {
	st := Step{State: s.state, Menu: s.Menu()}
	if s.state == StateShowingMenu {
		st.Selection = s.selection
		st.Text = s.format(s.selection)
	}

	return st
}

// format renders v in the current display mode.
func (s *Session) format(v Value) string {
	return v.Text(s.mode)
}

// tracef writes a trace line to the logger.
func (s *Session) tracef(format string, args ...any) {
	s.opt.Logger.Printf(format, args...)
}
