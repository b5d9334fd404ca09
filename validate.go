package veccalc

import (
	"fmt"
	"strings"

	"github.com/woozymasta/lintkit/lint"
)

// IssueLevel represents severity of a diagnostic.
type IssueLevel string

const (
	// IssueError indicates the operator cannot be applied.
	IssueError IssueLevel = "error"
	// IssueWarning indicates the result is defined but degenerate.
	IssueWarning IssueLevel = "warning"
)

// Issue describes why an operator rejected its operands.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    lint.Code  `json:"code,omitempty" yaml:"code,omitempty"` // Stable catalog code
	Message string     `json:"message" yaml:"message"`               // Issue message
}

// Issue codes. The public form carries the catalog prefix, e.g. VEC2003.
const (
	CodeInvalidOperand lint.Code = 2001
	CodeNotVector      lint.Code = 2002
	CodeLength         lint.Code = 2003
	CodeShape          lint.Code = 2004
	CodeTooShort       lint.Code = 2005
	CodeZero           lint.Code = 2006
	CodeNotMatrix      lint.Code = 2007
	CodeIndex          lint.Code = 2008
)

// stageShape scopes operand shape diagnostics.
const stageShape lint.Stage = "shape"

// diagnosticCatalog maps issue codes to lint rule metadata.
var diagnosticCatalog = lint.NewCodeCatalogHandle(lint.CodeCatalogConfig{
	Module:            "veccalc",
	CodePrefix:        "VEC",
	ModuleName:        "veccalc",
	ModuleDescription: "Operand shape checks for vector and matrix operators.",
	ScopeDescriptions: map[lint.Stage]string{stageShape: "Operand shape diagnostics."},
}, []lint.CodeSpec{
	lint.ErrorCodeSpec(CodeInvalidOperand, stageShape, "invalid operand"),
	lint.ErrorCodeSpec(CodeNotVector, stageShape, "operand is not a vector"),
	lint.ErrorCodeSpec(CodeLength, stageShape, "vector lengths differ"),
	lint.ErrorCodeSpec(CodeShape, stageShape, "incompatible operand shapes"),
	lint.ErrorCodeSpec(CodeTooShort, stageShape, "vector too short"),
	lint.ErrorCodeSpec(CodeZero, stageShape, "zero vector"),
	lint.ErrorCodeSpec(CodeNotMatrix, stageShape, "operand is not a matrix"),
	lint.ErrorCodeSpec(CodeIndex, stageShape, "index out of range"),
})

// DiagnosticRules returns lint rule metadata for every issue code.
func DiagnosticRules() ([]lint.RuleSpec, error) {
	catalog, err := diagnosticCatalog.Catalog()
	if err != nil {
		return nil, err
	}

	return catalog.RuleSpecs(), nil
}

// PublicCode returns the prefixed code, e.g. VEC2003.
func (is Issue) PublicCode() string {
	catalog, err := diagnosticCatalog.Catalog()
	if err != nil {
		return lint.FormatCode(is.Code)
	}

	return catalog.PublicCode(is.Code)
}

// Diagnostic converts the issue to a lint diagnostic.
func (is Issue) Diagnostic() lint.Diagnostic {
	return lint.Diagnostic{
		RuleID:   diagnosticCatalog.RuleIDOrUnknown(is.Code),
		Code:     is.PublicCode(),
		Severity: lint.Severity(is.Level),
		Message:  is.Message,
	}
}

// Diagnostics converts issues to lint diagnostics.
func Diagnostics(issues []Issue) []lint.Diagnostic {
	out := make([]lint.Diagnostic, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Diagnostic())
	}

	return out
}

// Explain returns the reasons op cannot be applied to a (and b for binary
// operators). It returns nil when op.Apply(a, b) is valid.
func Explain(op Operator, a, b Value) []Issue {
	if op.Apply(a, b).IsValid() {
		return nil
	}

	var out []Issue
	add := func(code lint.Code, format string, args ...any) {
		out = append(out, Issue{Level: IssueError, Code: code, Message: op.String() + ": " + fmt.Sprintf(format, args...)})
	}

	if !a.IsValid() {
		add(CodeInvalidOperand, "first operand is invalid")
		return out
	}
	if op.IsBinary() && !b.IsValid() {
		add(CodeInvalidOperand, "second operand is invalid")
		return out
	}

	switch op.Kind {
	case OpAdd, OpSubtract, OpDivide, OpPower, OpMultiply:
		if op.Kind == OpMultiply && (a.IsMatrix() || b.IsMatrix()) {
			left, right := a, b
			if !a.IsMatrix() {
				left, right = b, a
			}
			add(CodeShape, "cannot multiply %s by %s: %d columns against %d rows",
				describe(left), describe(right), left.Cols(), right.Rows())
			break
		}
		add(CodeShape, "cannot combine %s with %s elementwise", describe(a), describe(b))
	case OpDot:
		requireVectors(add, a, b)
		if a.IsVector() && b.IsVector() {
			add(CodeLength, "lengths differ (%d and %d)", a.Len(), b.Len())
		}
	case OpCross:
		requireVectors(add, a, b)
		if a.IsVector() && b.IsVector() {
			add(CodeTooShort, "needs at least 3 components, got %d and %d", a.Len(), b.Len())
		}
	case OpProject, OpReject:
		requireVectors(add, a, b)
		if a.IsVector() && b.IsVector() {
			add(CodeLength, "lengths differ (%d and %d)", a.Len(), b.Len())
		}
	case OpAngle:
		requireVectors(add, a, b)
		switch {
		case !a.IsVector() || !b.IsVector():
		case a.Len() != b.Len():
			add(CodeLength, "lengths differ (%d and %d)", a.Len(), b.Len())
		case a.Len() != 2 && a.Len() != 3:
			add(CodeShape, "needs 2 or 3 components, got %d", a.Len())
		default:
			add(CodeZero, "undefined for a zero vector")
		}
	case OpPlane:
		if a.Len() < 3 || b.Len() < 3 {
			add(CodeTooShort, "needs at least 3 components, got %d and %d", a.Len(), b.Len())
		} else {
			add(CodeZero, "direction is a zero vector")
		}
	case OpPlaneDistance:
		if a.Len() < 3 {
			add(CodeTooShort, "point needs at least 3 components, got %d", a.Len())
		}
		if b.Len() < 4 {
			add(CodeTooShort, "plane needs at least 4 components, got %d", b.Len())
		}
	case OpLength, OpNormalize, OpXYZ:
		if !a.IsVector() {
			add(CodeNotVector, "needs a vector, got %s", describe(a))
		} else {
			add(CodeTooShort, "needs at least 3 components, got %d", a.Len())
		}
	case OpComponent:
		if !a.IsVector() {
			add(CodeNotVector, "needs a vector, got %s", describe(a))
		} else {
			add(CodeIndex, "component %d of %s", op.Index, describe(a))
		}
	case OpColumn:
		if !a.IsMatrix() {
			add(CodeNotMatrix, "needs a matrix, got %s", describe(a))
		} else {
			add(CodeIndex, "column %d of %s", op.Index+1, describe(a))
		}
	default:
		add(CodeShape, "cannot be applied to %s", describe(a))
	}

	return out
}

// requireVectors reports each operand that is not a vector.
func requireVectors(add func(code lint.Code, format string, args ...any), a, b Value) {
	if !a.IsVector() {
		add(CodeNotVector, "first operand must be a vector, got %s", describe(a))
	}
	if !b.IsVector() {
		add(CodeNotVector, "second operand must be a vector, got %s", describe(b))
	}
}

// describe names the shape of v.
func describe(v Value) string {
	switch v.Dims() {
	case 0:
		return "scalar"
	case 1:
		return fmt.Sprintf("%d-vector", v.Len())
	case 2:
		return fmt.Sprintf("%dx%d matrix", v.Rows(), v.Cols())
	default:
		return "invalid value"
	}
}

// joinIssues renders issues as a single message.
func joinIssues(issues []Issue) string {
	msgs := make([]string, 0, len(issues))
	for _, is := range issues {
		msgs = append(msgs, "["+is.PublicCode()+"] "+is.Message)
	}

	return strings.Join(msgs, "; ")
}
