package veccalc

import "errors"

var (
	// ErrShapeMismatch indicates operand shapes are incompatible with the requested operator.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrParse indicates submitted text yields no numeric structure.
	ErrParse = errors.New("parse error")

	// ErrStaleSource indicates the range backing a replace no longer holds its captured text.
	ErrStaleSource = errors.New("stale source")

	// ErrHostIO indicates the host declined or failed a requested effect.
	ErrHostIO = errors.New("host i/o failure")

	// ErrUnavailable indicates an operator that is not offered in the current state.
	ErrUnavailable = errors.New("operator unavailable")

	// ErrEmptyStack indicates a pop from an empty auxiliary stack.
	ErrEmptyStack = errors.New("empty stack")

	// ErrUnknownConstant indicates a constant name missing from the catalogue.
	ErrUnknownConstant = errors.New("unknown constant")
)
