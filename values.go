package veccalc

import (
	"encoding/json"
	"math"
)

// Value is a scalar, vector, or matrix stored as a flat sequence of numbers
// plus a row count. Matrices are column-major: column c occupies
// [c*rows, c*rows+rows). Values are immutable once constructed.
type Value struct {
	nums []float64 // Components, column-major
	rows int       // Row count
}

// Invalid is the value every operator returns when its shape contract is
// violated. It has no rows and no components and is never a zero vector.
var Invalid = Value{}

// NewValue creates a Value from a copy of nums with the given row count. A
// single component is always a scalar with one row.
func NewValue(nums []float64, rows int) Value {
	if len(nums) == 0 || rows <= 0 {
		return Invalid
	}
	if len(nums) == 1 {
		rows = 1
	}

	out := make([]float64, len(nums))
	copy(out, nums)

	return Value{nums: out, rows: rows}
}

// Scalar creates a one-component Value.
func Scalar(x float64) Value {
	return Value{nums: []float64{x}, rows: 1}
}

// Vec creates a Value with one row per component.
func Vec(xs ...float64) Value {
	return NewValue(xs, len(xs))
}

// Len returns the number of components.
func (v Value) Len() int { return len(v.nums) }

// Rows returns the row count.
func (v Value) Rows() int { return v.rows }

// Cols returns the column count.
func (v Value) Cols() int {
	if v.rows <= 0 {
		return 0
	}

	return len(v.nums) / v.rows
}

// Dims returns 0 for a scalar, 1 for a vector, 2 for a matrix and -1 when the
// length and row count do not describe a valid shape.
func (v Value) Dims() int {
	n := len(v.nums)
	switch {
	case v.rows <= 0 || n == 0:
		return -1
	case n == 1:
		return 0
	case n == v.rows:
		return 1
	case n > v.rows && n%v.rows == 0:
		// A 1xN matrix is the transpose of an N-vector.
		return 2
	default:
		return -1
	}
}

// IsValid reports whether v has a valid shape.
func (v Value) IsValid() bool { return v.Dims() >= 0 }

// IsScalar reports whether v is a scalar.
func (v Value) IsScalar() bool { return v.Dims() == 0 }

// IsVector reports whether v is a vector.
func (v Value) IsVector() bool { return v.Dims() == 1 }

// IsMatrix reports whether v is a matrix.
func (v Value) IsMatrix() bool { return v.Dims() == 2 }

// At returns component i in storage order.
func (v Value) At(i int) float64 { return v.nums[i] }

// Entry returns the matrix entry at row, col.
func (v Value) Entry(row, col int) float64 { return v.nums[col*v.rows+row] }

// Col returns column i as a vector, or Invalid when i is out of range.
func (v Value) Col(i int) Value {
	if !v.IsValid() || i < 0 || i >= v.Cols() {
		return Invalid
	}

	return NewValue(v.nums[i*v.rows:i*v.rows+v.rows], v.rows)
}

// Numbers returns a copy of the components in storage order.
func (v Value) Numbers() []float64 {
	out := make([]float64, len(v.nums))
	copy(out, v.nums)

	return out
}

// IsZero reports whether v is valid and every component is zero.
func (v Value) IsZero() bool {
	if !v.IsValid() {
		return false
	}
	for _, x := range v.nums {
		if x != 0 {
			return false
		}
	}

	return true
}

// HexEligible reports whether every component is a non-negative integer
// that fits in 32 bits.
func (v Value) HexEligible() bool {
	if !v.IsValid() {
		return false
	}
	for _, x := range v.nums {
		if x < 0 || x > math.MaxUint32 || x != math.Trunc(x) {
			return false
		}
	}

	return true
}

// Equal reports whether v and o have the same shape and components.
func (v Value) Equal(o Value) bool {
	if v.rows != o.rows || len(v.nums) != len(o.nums) {
		return false
	}
	for i := range v.nums {
		if v.nums[i] != o.nums[i] {
			return false
		}
	}

	return true
}

// String formats v in decimal mode.
func (v Value) String() string {
	return FormatValue(v, nil)
}

// valueDoc is the serialized form of a Value.
type valueDoc struct {
	Rows   int       `json:"rows" yaml:"rows"`                     // Row count
	Values []float64 `json:"values" yaml:"values,flow"`            // Components, column-major
	Text   string    `json:"text,omitempty" yaml:"text,omitempty"` // Decimal rendering
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.doc(), nil
}

// doc builds the serialized form.
func (v Value) doc() valueDoc {
	nums := v.Numbers()
	if nums == nil {
		nums = []float64{}
	}

	return valueDoc{Rows: v.rows, Values: nums, Text: v.String()}
}
