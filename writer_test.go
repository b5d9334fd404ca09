package veccalc

import (
	"bytes"
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    Value
		mode DisplayMode
		want string
	}{
		{Scalar(7), ModeDecimal, "7"},
		{Scalar(-0.5), ModeDecimal, "-0.5"},
		{Scalar(123456789012), ModeDecimal, "123456789012"},
		{Scalar(1e21), ModeDecimal, "1e+21"},
		{Scalar(math.Ldexp(1, -23)), ModeDecimal, "1.1920928955078125e-7"},
		{Scalar(1e-8), ModeDecimal, "1e-8"},
		{Scalar(1e-6), ModeDecimal, "0.000001"},
		{Scalar(-2.5e-7), ModeDecimal, "-2.5e-7"},
		{Scalar(1.5e21), ModeDecimal, "1.5e+21"},
		{Scalar(1e300), ModeDecimal, "1e+300"},
		{Scalar(1.2345678901234568e20), ModeDecimal, "123456789012345680000"},
		{Scalar(math.Copysign(0, -1)), ModeDecimal, "0"},
		{Scalar(math.NaN()), ModeDecimal, "NaN"},
		{Scalar(math.Inf(1)), ModeDecimal, "Infinity"},
		{Scalar(math.Inf(-1)), ModeDecimal, "-Infinity"},
		{Vec(1, 2, 3), ModeDecimal, "(1, 2, 3)"},
		{NewValue([]float64{1, 0, 0, 1}, 2), ModeDecimal, "((1, 0), (0, 1))"},
		{NewValue([]float64{1, 2, 3, 4, 5, 6}, 3), ModeDecimal, "((1, 2, 3), (4, 5, 6))"},
		{NewValue([]float64{1, 2, 3}, 1), ModeDecimal, "((1), (2), (3))"},
		{Scalar(42), ModeHex, "0x0000002a"},
		{Scalar(0xFFFFFFFF), ModeHex, "0xffffffff"},
		{Scalar(-1), ModeHex, "0xffffffff"},
		{Vec(1, 255), ModeHex, "(0x00000001, 0x000000ff)"},
		{Invalid, ModeDecimal, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.v.Text(tt.mode); got != tt.want {
			t.Fatalf("%v in %s: got %q, want %q", tt.v.Numbers(), tt.mode, got, tt.want)
		}
	}
}

func TestFormatSeparator(t *testing.T) {
	got := FormatValue(Vec(1, 2), &FormatOptions{Separator: ","})
	if got != "(1,2)" {
		t.Fatalf("got %q", got)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Vec(1.5, -2), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != "(1.5, -2)" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestHexRoundTrip(t *testing.T) {
	src := "0x0000002a"
	v := Parse(src, nil).Value()
	if got := v.Text(ModeHex); got != src {
		t.Fatalf("round trip %q -> %q", src, got)
	}
	if !v.Equal(Parse("42", nil).Value()) {
		t.Fatalf("0x2a and 42 differ")
	}
	if !Parse("0x2a", nil).Value().Equal(Scalar(42)) {
		t.Fatalf("0x2a is not 42")
	}
}
