package veccalc

import (
	"strconv"
	"strings"
)

// OpKind enumerates every menu entry the engine can offer.
type OpKind int

// Operator kinds.
const (
	OpNone OpKind = iota // No selection, cancels the chain

	// Outputs end the chain.
	OpCopy    // Copy the result to the clipboard
	OpPush    // Push the result on the auxiliary stack
	OpAppend  // Append the result to the document
	OpReplace // Replace the source range with the result

	// Mode toggles.
	OpDecimal // Switch to decimal display
	OpHex     // Switch to hex32 display

	// Unary operators replace the selection immediately.
	OpComponent // Vector component, Index selects x/y/z/w
	OpXYZ       // First three components
	OpLength    // Euclidean norm
	OpNormalize // Unit vector
	OpTranspose // Row/column swap
	OpColumn    // Matrix column, Index selects the column
	OpSquare
	OpSqrt
	OpReciprocal
	OpNegate
	OpAbs
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpLog
	OpExp2
	OpExp
	OpDegrees
	OpRadians

	// Binary operators suspend the chain until a second operand arrives.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpDot
	OpCross
	OpProject
	OpReject
	OpAngle
	OpPlane
	OpPlaneDistance

	opKindCount
)

// kindNames maps fixed-name kinds to their labels.
var kindNames = [opKindCount]string{
	OpNone:          "none",
	OpCopy:          "copy",
	OpPush:          "push",
	OpAppend:        "append",
	OpReplace:       "replace",
	OpDecimal:       "decimal",
	OpHex:           "hex",
	OpComponent:     "component",
	OpXYZ:           "xyz",
	OpLength:        "length",
	OpNormalize:     "normalize",
	OpTranspose:     "transpose",
	OpColumn:        "col",
	OpSquare:        "square",
	OpSqrt:          "sqrt",
	OpReciprocal:    "reciprocal",
	OpNegate:        "negate",
	OpAbs:           "abs",
	OpSin:           "sin",
	OpCos:           "cos",
	OpTan:           "tan",
	OpAsin:          "asin",
	OpAcos:          "acos",
	OpAtan:          "atan",
	OpLog:           "log",
	OpExp2:          "exp2",
	OpExp:           "exp",
	OpDegrees:       "degrees",
	OpRadians:       "radians",
	OpAdd:           "add",
	OpSubtract:      "subtract",
	OpMultiply:      "multiply",
	OpDivide:        "divide",
	OpPower:         "power",
	OpDot:           "dot",
	OpCross:         "cross",
	OpProject:       "project",
	OpReject:        "reject",
	OpAngle:         "angle",
	OpPlane:         "plane",
	OpPlaneDistance: "planeDistance",
}

// axisNames labels the component selectors.
const axisNames = "xyzw"

// Operator is a menu entry. Index is the zero-based component or column for
// OpComponent and OpColumn and is zero otherwise.
type Operator struct {
	Kind  OpKind
	Index int
}

// Op returns the parameterless operator of kind k.
func Op(k OpKind) Operator { return Operator{Kind: k} }

// String returns the menu and trace label, e.g. "add", "y" or "col2".
func (o Operator) String() string {
	switch o.Kind {
	case OpComponent:
		if o.Index >= 0 && o.Index < len(axisNames) {
			return axisNames[o.Index : o.Index+1]
		}
		return "component" + strconv.Itoa(o.Index)
	case OpColumn:
		return "col" + strconv.Itoa(o.Index+1)
	}
	if o.Kind >= 0 && o.Kind < opKindCount {
		return kindNames[o.Kind]
	}

	return "unknown"
}

// ParseOperator maps a label produced by String back to an Operator.
func ParseOperator(name string) (Operator, bool) {
	if len(name) == 1 {
		if i := strings.IndexByte(axisNames, name[0]); i >= 0 {
			return Operator{Kind: OpComponent, Index: i}, true
		}
	}
	if rest, ok := strings.CutPrefix(name, "col"); ok && rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return Operator{}, false
		}
		return Operator{Kind: OpColumn, Index: n - 1}, true
	}
	for k, s := range kindNames {
		if s == name && OpKind(k) != OpComponent && OpKind(k) != OpColumn {
			return Op(OpKind(k)), true
		}
	}

	return Operator{}, false
}

// IsOutput reports whether o ends the chain with an external effect.
func (o Operator) IsOutput() bool { return o.Kind >= OpCopy && o.Kind <= OpReplace }

// IsMode reports whether o toggles the display mode.
func (o Operator) IsMode() bool { return o.Kind == OpDecimal || o.Kind == OpHex }

// IsUnary reports whether o transforms the selection in place.
func (o Operator) IsUnary() bool { return o.Kind >= OpComponent && o.Kind <= OpRadians }

// IsBinary reports whether o needs a second operand.
func (o Operator) IsBinary() bool { return o.Kind >= OpAdd && o.Kind <= OpPlaneDistance }

// unaryFuncs holds the parameterless unary operators.
var unaryFuncs = map[OpKind]func(Value) Value{
	OpXYZ:        XYZ,
	OpLength:     Magnitude,
	OpNormalize:  Normalize,
	OpTranspose:  Transpose,
	OpSquare:     Square,
	OpSqrt:       Sqrt,
	OpReciprocal: Reciprocal,
	OpNegate:     Negate,
	OpAbs:        Abs,
	OpSin:        Sin,
	OpCos:        Cos,
	OpTan:        Tan,
	OpAsin:       Asin,
	OpAcos:       Acos,
	OpAtan:       Atan,
	OpLog:        Log,
	OpExp2:       Exp2,
	OpExp:        Exp,
	OpDegrees:    Degrees,
	OpRadians:    Radians,
}

// binaryFuncs holds the binary operators.
var binaryFuncs = map[OpKind]func(Value, Value) Value{
	OpAdd:           Add,
	OpSubtract:      Subtract,
	OpMultiply:      Multiply,
	OpDivide:        Divide,
	OpPower:         Power,
	OpDot:           Dot,
	OpCross:         Cross,
	OpProject:       Project,
	OpReject:        Reject,
	OpAngle:         Angle,
	OpPlane:         Plane,
	OpPlaneDistance: PointPlaneDistance,
}

// Apply evaluates o. Unary operators ignore b. Outputs, mode toggles and
// unknown kinds return Invalid.
func (o Operator) Apply(a, b Value) Value {
	switch o.Kind {
	case OpComponent:
		return Component(a, o.Index)
	case OpColumn:
		return Column(a, o.Index)
	}
	if f, ok := unaryFuncs[o.Kind]; ok {
		return f(a)
	}
	if f, ok := binaryFuncs[o.Kind]; ok {
		return f(a, b)
	}

	return Invalid
}
