package veccalc

// menuState carries what buildMenu needs besides the selection.
type menuState struct {
	mode           DisplayMode
	hasSource      bool
	disableHexMode bool
}

// binaryOps are offered for every selection.
var binaryOps = []OpKind{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// elementwiseOps are offered for every selection.
var elementwiseOps = []OpKind{
	OpSquare, OpSqrt, OpReciprocal, OpNegate, OpAbs,
	OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan,
	OpLog, OpExp2, OpExp, OpDegrees, OpRadians,
}

// buildMenu returns the legal operators for a selection, outputs first.
func buildMenu(v Value, st menuState) []Operator {
	out := []Operator{Op(OpCopy), Op(OpPush), Op(OpAppend)}
	if st.hasSource {
		out = append(out, Op(OpReplace))
	}

	if !st.disableHexMode {
		switch {
		case st.mode == ModeHex:
			out = append(out, Op(OpDecimal))
		case v.HexEligible():
			out = append(out, Op(OpHex))
		}
	}

	switch {
	case v.IsVector():
		n := v.Len()
		for i := 0; i < n && i < len(axisNames); i++ {
			out = append(out, Operator{Kind: OpComponent, Index: i})
		}
		if n > 3 {
			out = append(out, Op(OpXYZ))
		}
		out = append(out, Op(OpLength), Op(OpNormalize), Op(OpDot), Op(OpProject), Op(OpReject))
		if n >= 3 {
			out = append(out, Op(OpCross))
		}
		if (n == 2 || n == 3) && !v.IsZero() {
			out = append(out, Op(OpAngle))
		}
		if n >= 3 {
			out = append(out, Op(OpPlane), Op(OpPlaneDistance))
		}
	case v.IsMatrix():
		for c := 0; c < v.Cols(); c++ {
			out = append(out, Operator{Kind: OpColumn, Index: c})
		}
		out = append(out, Op(OpTranspose))
	}

	for _, k := range binaryOps {
		out = append(out, Op(k))
	}
	for _, k := range elementwiseOps {
		out = append(out, Op(k))
	}

	return out
}

// menuContains reports whether op is one of the offered entries.
func menuContains(menu []Operator, op Operator) bool {
	for _, m := range menu {
		if m == op {
			return true
		}
	}

	return false
}
