/*
Package veccalc treats numeric literals embedded in plain text as operands of
an interactive linear-algebra calculator.

It parses a line of text into scalars, vectors and matrices, applies
broadcasting-aware arithmetic and linear-algebra operators, and runs a
two-operand chaining session that a host (an editor, a terminal) drives one
event at a time.

Parser example:

	n := veccalc.Parse("basis = ((1,0),(0,1));", nil)
	if n.Kind == veccalc.NodeMatrix {
		_ = n.Value() // 2x2, columns (1, 0) and (0, 1)
	}

Operator example:

	v := veccalc.Cross(veccalc.Vec(1, 2, 3), veccalc.Vec(0, 1, 0))
	if v.IsValid() {
		_ = v.String() // "(-3, 0, 1)"
	}

Session example:

	s := veccalc.NewSession(host, &veccalc.SessionOptions{Logger: log.Default()})
	if _, err := s.Submit("3"); err != nil {
		// handle error
	}
	if _, err := s.Choose(veccalc.Op(veccalc.OpAdd)); err != nil {
		// handle error
	}
	step, err := s.Submit("4")
	if err != nil {
		// handle error
	}
	_ = step.Text // "7", logged as "3 add 4 = 7"

Every operator is a pure function returning Invalid on a shape mismatch.
The Session is the only place that inspects validity; any failure resets it
to idle and is returned as an error wrapping one of the package sentinels.
*/
package veccalc
