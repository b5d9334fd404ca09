package veccalc

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func nearValue(a, b Value) bool {
	if a.Rows() != b.Rows() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !near(a.At(i), b.At(i)) {
			return false
		}
	}

	return true
}

func TestOpPairsBroadcast(t *testing.T) {
	v := Vec(1, 2, 3)
	s := Scalar(10)
	sub := func(x, y float64) float64 { return x - y }

	if got := OpPairs(v, s, sub); !got.Equal(Vec(-9, -8, -7)) {
		t.Fatalf("vector-scalar: %v", got)
	}
	if got := OpPairs(s, v, sub); !got.Equal(Vec(9, 8, 7)) {
		t.Fatalf("scalar-vector: %v", got)
	}
	if got := OpPairs(v, Vec(1, 1, 1), sub); !got.Equal(Vec(0, 1, 2)) {
		t.Fatalf("vector-vector: %v", got)
	}
	if got := OpPairs(v, Vec(1, 2), sub); got.IsValid() {
		t.Fatalf("length mismatch should be invalid, got %v", got)
	}
	m := NewValue([]float64{1, 2, 3, 4}, 2)
	if got := OpPairs(m, Vec(1, 2, 3, 4), sub); got.IsValid() {
		t.Fatalf("row mismatch should be invalid, got %v", got)
	}
	if got := OpPairs(Invalid, s, sub); got.IsValid() {
		t.Fatalf("invalid operand should stay invalid")
	}
	if got := Add(m, Scalar(1)); !got.Equal(NewValue([]float64{2, 3, 4, 5}, 2)) {
		t.Fatalf("matrix+scalar: %v", got)
	}
}

func TestElementwise(t *testing.T) {
	if got := Power(Vec(2, 3), Scalar(2)); !got.Equal(Vec(4, 9)) {
		t.Fatalf("power: %v", got)
	}
	if got := Divide(Scalar(1), Vec(2, 4)); !got.Equal(Vec(0.5, 0.25)) {
		t.Fatalf("divide: %v", got)
	}
	if got := Multiply(Vec(1, 2), Vec(3, 4)); !got.Equal(Vec(3, 8)) {
		t.Fatalf("multiply: %v", got)
	}
}

func TestMatrixMultiply(t *testing.T) {
	identity := Parse("((1,0),(0,1))", nil).Value()
	v := Vec(3, -4)

	if got := MatrixMultiply(identity, v); !got.Equal(v) {
		t.Fatalf("identity*v = %v", got)
	}
	if got := Multiply(identity, v); !got.Equal(v) {
		t.Fatalf("multiply identity*v = %v", got)
	}
	if got := Multiply(v, identity); !got.Equal(v) {
		t.Fatalf("multiply v*identity = %v", got)
	}
	if got := MatrixMultiply(identity, Vec(1, 2, 3)); got.IsValid() {
		t.Fatalf("cols != rows should be invalid, got %v", got)
	}

	// Columns (1,3) and (2,4): rows (1 2) and (3 4).
	a := NewValue([]float64{1, 3, 2, 4}, 2)
	if got := Multiply(a, a); !got.Equal(NewValue([]float64{7, 15, 10, 22}, 2)) {
		t.Fatalf("a*a = %v", got)
	}
	if got := Multiply(a, Scalar(2)); !got.Equal(NewValue([]float64{2, 6, 4, 8}, 2)) {
		t.Fatalf("a*2 = %v", got)
	}

	// Row vector times column vector is their dot product.
	row := Transpose(Vec(1, 2, 3))
	if got := Multiply(row, Vec(4, 5, 6)); !got.Equal(Scalar(32)) {
		t.Fatalf("row*col = %v", got)
	}
}

func TestDotCross(t *testing.T) {
	if got := Dot(Vec(1, 2, 3), Vec(4, 5, 6)); !got.Equal(Scalar(32)) {
		t.Fatalf("dot: %v", got)
	}
	if got := Dot(Vec(1, 2), Vec(1, 2, 3)); got.IsValid() {
		t.Fatalf("dot of unequal lengths should be invalid")
	}
	if got := Dot(Scalar(1), Scalar(2)); got.IsValid() {
		t.Fatalf("dot of scalars should be invalid")
	}
	if got := Cross(Vec(1, 2, 3), Vec(0, 1, 0)); !got.Equal(Vec(-3, 0, 1)) {
		t.Fatalf("cross: %v", got)
	}
	if got := Cross(Vec(1, 2, 3, 9), Vec(0, 1, 0, 9)); !got.Equal(Vec(-3, 0, 1)) {
		t.Fatalf("cross of 4-vectors should use xyz: %v", got)
	}
	if got := Cross(Vec(1, 2), Vec(0, 1)); got.IsValid() {
		t.Fatalf("cross of 2-vectors should be invalid")
	}
}

func TestMagnitudeNormalize(t *testing.T) {
	if got := Magnitude(Vec(3, 4)); !got.Equal(Scalar(5)) {
		t.Fatalf("magnitude: %v", got)
	}
	for _, v := range []Value{Vec(3, 4), Vec(1, 2, 3), Vec(-0.001, 5, 7, 1e3)} {
		n := Normalize(v)
		if m := Magnitude(n).At(0); math.Abs(m-1) > 1e-9 {
			t.Fatalf("normalize(%v) has magnitude %v", v, m)
		}
	}
	if !math.IsNaN(Normalize(Vec(0, 0)).At(0)) {
		t.Fatalf("normalize of zero vector should yield NaN")
	}
	if Magnitude(Scalar(2)).IsValid() {
		t.Fatalf("magnitude of scalar should be invalid")
	}
}

func TestTranspose(t *testing.T) {
	if got := Transpose(Scalar(2)); !got.Equal(Scalar(2)) {
		t.Fatalf("scalar: %v", got)
	}
	row := Transpose(Vec(1, 2, 3))
	if row.Rows() != 1 || row.Cols() != 3 || !row.IsMatrix() {
		t.Fatalf("vector transpose shape %dx%d", row.Rows(), row.Cols())
	}
	if got := Transpose(row); !got.Equal(Vec(1, 2, 3)) {
		t.Fatalf("double transpose: %v", got)
	}
	m := NewValue([]float64{1, 2, 3, 4, 5, 6}, 3)
	tm := Transpose(m)
	if tm.Rows() != 2 || tm.Cols() != 3 || tm.Entry(1, 0) != 4 || tm.Entry(0, 2) != 3 {
		t.Fatalf("transpose: %v", tm)
	}
}

func TestProjectReject(t *testing.T) {
	a, b := Vec(2, 3), Vec(1, 0)
	if got := Project(a, b); !got.Equal(Vec(2, 0)) {
		t.Fatalf("project: %v", got)
	}
	if got := Reject(a, b); !got.Equal(Vec(0, 3)) {
		t.Fatalf("reject: %v", got)
	}
	if got := Project(Vec(0, 5, 0), Vec(1, 0, 0)); !got.Equal(Vec(0, 0, 0)) {
		t.Fatalf("orthogonal project: %v", got)
	}
	if got := Project(Vec(1, 2), Vec(0, 0)); !got.Equal(Vec(0, 0)) {
		t.Fatalf("project onto zero vector: %v", got)
	}
	if Project(Vec(1, 2), Vec(1, 2, 3)).IsValid() || Reject(Vec(1, 2), Scalar(1)).IsValid() {
		t.Fatalf("mismatched project/reject should be invalid")
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		a, b Value
		want float64
	}{
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(1, 0), Vec(1, 1), math.Pi / 4},
		{Vec(1, 0), Vec(1, 1e-9), 1e-9},
		{Vec(1, 0), Vec(-1, 1e-9), math.Pi - 1e-9},
		{Vec(1, 0, 0), Vec(1, 1, 0), math.Pi / 4},
		{Vec(0, 0, 2), Vec(0, 0, 5), 0},
		{Vec(1, 0, 0), Vec(-1, 0, 0), math.Pi},
		{Vec(1, 1, 0), Vec(0, -3, 0), 3 * math.Pi / 4},
	}
	for _, tt := range tests {
		got := Angle(tt.a, tt.b)
		if !got.IsScalar() || math.Abs(got.At(0)-tt.want) > 1e-12 || got.At(0) < 0 {
			t.Fatalf("angle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	for _, bad := range [][2]Value{
		{Vec(1, 0), Vec(1, 0, 0)},
		{Vec(1, 0, 0, 0), Vec(0, 1, 0, 0)},
		{Vec(0, 0), Vec(1, 0)},
		{Scalar(1), Scalar(2)},
	} {
		if got := Angle(bad[0], bad[1]); got.IsValid() {
			t.Fatalf("angle(%v, %v) should be invalid, got %v", bad[0], bad[1], got)
		}
	}
}

func TestPlane(t *testing.T) {
	p := Plane(Vec(0, 0, 2), Vec(5, 5, 3))
	if !nearValue(p, Vec(0, 0, 1, -3)) {
		t.Fatalf("plane: %v", p)
	}
	if got := PointPlaneDistance(Vec(1, 1, 10), p); !nearValue(got, Scalar(7)) {
		t.Fatalf("distance: %v", got)
	}
	if got := PointPlaneDistance(Vec(1, 1, 10, 99), p); !nearValue(got, Scalar(7)) {
		t.Fatalf("distance with 4-vector point: %v", got)
	}
	if Plane(Vec(0, 0, 0), Vec(1, 2, 3)).IsValid() {
		t.Fatalf("zero direction should be invalid")
	}
	if Plane(Vec(1, 0), Vec(1, 2, 3)).IsValid() {
		t.Fatalf("short direction should be invalid")
	}
	if PointPlaneDistance(Vec(1, 2, 3), Vec(0, 0, 1)).IsValid() {
		t.Fatalf("short plane should be invalid")
	}
}

func TestSelectors(t *testing.T) {
	v := Vec(1, 2, 3, 4)
	if got := Component(v, 3); !got.Equal(Scalar(4)) {
		t.Fatalf("w: %v", got)
	}
	if Component(v, 4).IsValid() {
		t.Fatalf("out of range component should be invalid")
	}
	if got := XYZ(v); !got.Equal(Vec(1, 2, 3)) {
		t.Fatalf("xyz: %v", got)
	}
	m := NewValue([]float64{1, 2, 3, 4}, 2)
	if got := Column(m, 1); !got.Equal(Vec(3, 4)) {
		t.Fatalf("col2: %v", got)
	}
	if Column(v, 0).IsValid() {
		t.Fatalf("column of vector should be invalid")
	}
}

func TestUnaryFamily(t *testing.T) {
	m := NewValue([]float64{1, 4, 9, 16}, 2)
	if got := Sqrt(m); !got.Equal(NewValue([]float64{1, 2, 3, 4}, 2)) {
		t.Fatalf("sqrt keeps shape: %v", got)
	}
	if got := Square(Vec(-2, 3)); !got.Equal(Vec(4, 9)) {
		t.Fatalf("square: %v", got)
	}
	if got := Reciprocal(Scalar(4)); !got.Equal(Scalar(0.25)) {
		t.Fatalf("reciprocal: %v", got)
	}
	if got := Negate(Vec(1, -1)); !got.Equal(Vec(-1, 1)) {
		t.Fatalf("negate: %v", got)
	}
	if got := Abs(Vec(-1, 2)); !got.Equal(Vec(1, 2)) {
		t.Fatalf("abs: %v", got)
	}
	if got := Exp2(Scalar(10)); !nearValue(got, Scalar(1024)) {
		t.Fatalf("exp2: %v", got)
	}
	if got := Log(Exp(Scalar(2))); !nearValue(got, Scalar(2)) {
		t.Fatalf("log(exp): %v", got)
	}
	if got := Degrees(Scalar(math.Pi)); !nearValue(got, Scalar(180)) {
		t.Fatalf("degrees: %v", got)
	}
	if got := Radians(Scalar(90)); !nearValue(got, Scalar(math.Pi/2)) {
		t.Fatalf("radians: %v", got)
	}
	if got := Atan(Tan(Scalar(0.5))); !nearValue(got, Scalar(0.5)) {
		t.Fatalf("atan(tan): %v", got)
	}
	if got := Asin(Sin(Scalar(0.5))); !nearValue(got, Scalar(0.5)) {
		t.Fatalf("asin(sin): %v", got)
	}
	if got := Acos(Cos(Scalar(0.5))); !nearValue(got, Scalar(0.5)) {
		t.Fatalf("acos(cos): %v", got)
	}
	if Sqrt(Invalid).IsValid() {
		t.Fatalf("unary on invalid should stay invalid")
	}
}
