package veccalc

import (
	"io"
	"log"
)

// ParseOptions controls literal recognition.
type ParseOptions struct {
	// DisableHex disables 0x-prefixed hexadecimal literals.
	DisableHex bool
	// DisableFloatSuffix disables the trailing f/F suffix on decimal literals.
	DisableFloatSuffix bool
	// DisableLeadingDecimal disables literals without an integer part (".5").
	DisableLeadingDecimal bool
}

// FormatOptions controls value formatting.
type FormatOptions struct {
	// Mode selects decimal or hex32 output for components.
	Mode DisplayMode
	// Separator joins vector components and matrix columns (default is ", ").
	Separator string
}

// SessionOptions controls a calculation session.
type SessionOptions struct {
	// Logger receives trace lines. A nil logger discards them.
	Logger *log.Logger
	// Parse is passed to Parse for every submitted operand.
	Parse *ParseOptions
	// DisableHexMode never offers the decimal/hex32 mode toggles.
	DisableHexMode bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Separator: ", "}
	}

	out := *o
	if out.Separator == "" {
		out.Separator = ", "
	}

	return out
}

// normalize normalizes the SessionOptions.
func (o *SessionOptions) normalize() SessionOptions {
	if o == nil {
		return SessionOptions{Logger: log.New(io.Discard, "", 0)}
	}

	out := *o
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}

	return out
}
