package veccalc

import "math"

// PopName is the catalogue entry that supplies the top of the auxiliary stack.
const PopName = "pop"

// Constant is a named value offered outside the document.
type Constant struct {
	Name  string `json:"name" yaml:"name"`   // Catalogue name
	Value Value  `json:"value" yaml:"value"` // Constant value
}

// constants is the fixed catalogue, in menu order.
var constants = []Constant{
	{Name: "pi", Value: Scalar(math.Pi)},
	{Name: "e", Value: Scalar(math.E)},
	{Name: "epsilon", Value: Scalar(math.Ldexp(1, -23))},
	{Name: "sqrt2", Value: Scalar(math.Sqrt2)},
	{Name: "sqrt3", Value: Scalar(math.Sqrt(3))},
	{Name: "i", Value: Vec(1, 0, 0)},
	{Name: "j", Value: Vec(0, 1, 0)},
	{Name: "k", Value: Vec(0, 0, 1)},
}

// Constants returns the fixed constant catalogue.
func Constants() []Constant {
	out := make([]Constant, len(constants))
	copy(out, constants)

	return out
}

// LookupConstant returns the catalogue value for name.
func LookupConstant(name string) (Value, bool) {
	for _, c := range constants {
		if c.Name == name {
			return c.Value, true
		}
	}

	return Invalid, false
}
