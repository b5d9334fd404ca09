package veccalc

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"
)

// DisplayMode selects how components are rendered.
type DisplayMode int

const (
	// ModeDecimal renders components as decimal numbers.
	ModeDecimal DisplayMode = iota
	// ModeHex renders components as 0x-prefixed, 8-digit unsigned 32-bit hex.
	ModeHex
)

// String returns the name of the mode.
func (m DisplayMode) String() string {
	if m == ModeHex {
		return "hex"
	}

	return "decimal"
}

// Encode writes the formatted Value to w.
func Encode(w io.Writer, v Value, opt *FormatOptions) error {
	fopt := opt.normalize()
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, mode: fopt.Mode, sep: fopt.Separator}
	if err := wr.writeValue(v); err != nil {
		return err
	}

	return bw.Flush()
}

// FormatValue renders a Value. A scalar is a bare number, a vector is its
// parenthesized components, and a matrix is the parenthesized list of its
// columns, each rendered as a vector.
func FormatValue(v Value, opt *FormatOptions) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = Encode(&b, v, opt)

	return b.String()
}

// Text formats v with the given display mode.
func (v Value) Text(mode DisplayMode) string {
	return FormatValue(v, &FormatOptions{Mode: mode})
}

// writer renders Values to a writer.
type writer struct {
	w    io.Writer   // Writer to write to
	sep  string      // Component separator
	mode DisplayMode // Number rendering mode
}

// writeValue writes a Value according to its shape.
func (w *writer) writeValue(v Value) error {
	switch v.Dims() {
	case 0:
		return w.writeNumber(v.nums[0])
	case 1:
		return w.writeVector(v.nums)
	case 2:
		if err := w.writeString("("); err != nil {
			return err
		}
		for c := 0; c < v.Cols(); c++ {
			if c > 0 {
				if err := w.writeString(w.sep); err != nil {
					return err
				}
			}
			if err := w.writeVector(v.nums[c*v.rows : c*v.rows+v.rows]); err != nil {
				return err
			}
		}
		return w.writeString(")")
	default:
		return w.writeString("invalid")
	}
}

// writeVector writes parenthesized components.
func (w *writer) writeVector(vals []float64) error {
	if err := w.writeString("("); err != nil {
		return err
	}
	for i, x := range vals {
		if i > 0 {
			if err := w.writeString(w.sep); err != nil {
				return err
			}
		}
		if err := w.writeNumber(x); err != nil {
			return err
		}
	}

	return w.writeString(")")
}

// writeNumber writes a single component.
func (w *writer) writeNumber(x float64) error {
	var buf [32]byte
	var b []byte
	if w.mode == ModeHex {
		b = appendHex32(buf[:0], x)
	} else {
		b = appendDecimal(buf[:0], x)
	}
	_, err := w.w.Write(b)

	return err
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// appendDecimal appends x the way JavaScript's Number.prototype.toString
// renders it: shortest round-trip digits, plain notation for magnitudes in
// [1e-6, 1e21), otherwise exponent notation with a signed, unpadded exponent
// (1e-7, 1.5e+21). Zero prints as 0, non-finite values as NaN, Infinity and
// -Infinity.
func appendDecimal(dst []byte, x float64) []byte {
	switch {
	case x == 0:
		return append(dst, '0')
	case math.IsNaN(x):
		return append(dst, "NaN"...)
	case math.IsInf(x, 1):
		return append(dst, "Infinity"...)
	case math.IsInf(x, -1):
		return append(dst, "-Infinity"...)
	}

	if abs := math.Abs(x); abs >= 1e-6 && abs < 1e21 {
		return strconv.AppendFloat(dst, x, 'f', -1, 64)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, x, 'e', -1, 64)
	// strconv pads the exponent to two digits.
	e := start + bytes.IndexByte(dst[start:], 'e')
	if len(dst) > e+3 && dst[e+2] == '0' {
		dst = append(dst[:e+2], dst[e+3:]...)
	}

	return dst
}

// appendHex32 appends x cast to an unsigned 32-bit integer as 0x%08x.
func appendHex32(dst []byte, x float64) []byte {
	u := uint32(int64(x))
	dst = append(dst, "0x"...)
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, "0123456789abcdef"[(u>>uint(shift))&0xF])
	}

	return dst
}
