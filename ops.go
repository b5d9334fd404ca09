package veccalc

import "math"

// Operator library. Every function is pure and signals a shape violation by
// returning Invalid.

// OpPairs combines a and b elementwise. Operands must both be scalars, include
// at least one scalar, or share both length and row count. A scalar operand is
// broadcast across every position of the other.
func OpPairs(a, b Value, f func(x, y float64) float64) Value {
	if !a.IsValid() || !b.IsValid() {
		return Invalid
	}
	if !a.IsScalar() && !b.IsScalar() && (a.Len() != b.Len() || a.rows != b.rows) {
		return Invalid
	}

	n := max(a.Len(), b.Len())
	out := make([]float64, n)
	for i := range out {
		out[i] = f(a.nums[i%a.Len()], b.nums[i%b.Len()])
	}

	return Value{nums: out, rows: max(a.rows, b.rows)}
}

// Map applies f to every component, preserving shape.
func Map(v Value, f func(x float64) float64) Value {
	if !v.IsValid() {
		return Invalid
	}

	out := make([]float64, v.Len())
	for i, x := range v.nums {
		out[i] = f(x)
	}

	return Value{nums: out, rows: v.rows}
}

// Add returns a + b elementwise.
func Add(a, b Value) Value {
	return OpPairs(a, b, func(x, y float64) float64 { return x + y })
}

// Subtract returns a - b elementwise.
func Subtract(a, b Value) Value {
	return OpPairs(a, b, func(x, y float64) float64 { return x - y })
}

// Divide returns a / b elementwise.
func Divide(a, b Value) Value {
	return OpPairs(a, b, func(x, y float64) float64 { return x / y })
}

// Power returns a raised to b elementwise.
func Power(a, b Value) Value {
	return OpPairs(a, b, math.Pow)
}

// Multiply performs a matrix product when one operand is a matrix and the
// other is not a scalar, and an elementwise product otherwise. A matrix on the
// right is swapped to the left, so vector times matrix works.
func Multiply(a, b Value) Value {
	switch {
	case a.IsMatrix() && !b.IsScalar():
		return MatrixMultiply(a, b)
	case b.IsMatrix() && !a.IsScalar():
		return MatrixMultiply(b, a)
	default:
		return OpPairs(a, b, func(x, y float64) float64 { return x * y })
	}
}

// MatrixMultiply returns the matrix product left*right. It requires
// left.Cols() == right.Rows().
func MatrixMultiply(left, right Value) Value {
	if !left.IsValid() || !right.IsValid() || left.Cols() != right.rows {
		return Invalid
	}

	rows, cols, inner := left.rows, right.Cols(), left.Cols()
	out := make([]float64, rows*cols)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += left.Entry(row, k) * right.Entry(k, col)
			}
			out[col*rows+row] = sum
		}
	}

	return Value{nums: out, rows: rows}
}

// Dot returns the scalar dot product of two vectors of equal length.
func Dot(a, b Value) Value {
	if !a.IsVector() || !b.IsVector() || a.Len() != b.Len() {
		return Invalid
	}

	sum := 0.0
	for i := range a.nums {
		sum += a.nums[i] * b.nums[i]
	}

	return Scalar(sum)
}

// Cross returns the cross product of two vectors. Vectors longer than three
// contribute only their first three components.
func Cross(a, b Value) Value {
	if !a.IsVector() || !b.IsVector() || a.Len() < 3 || b.Len() < 3 {
		return Invalid
	}

	ax, ay, az := a.nums[0], a.nums[1], a.nums[2]
	bx, by, bz := b.nums[0], b.nums[1], b.nums[2]

	return Vec(ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
}

// Magnitude returns the Euclidean norm of a vector.
func Magnitude(v Value) Value {
	if !v.IsVector() {
		return Invalid
	}

	sum := 0.0
	for _, x := range v.nums {
		sum += x * x
	}

	return Scalar(math.Sqrt(sum))
}

// Normalize divides a vector by its magnitude. A zero vector yields NaN
// components.
func Normalize(v Value) Value {
	m := Magnitude(v)
	if !m.IsValid() {
		return Invalid
	}

	return Divide(v, m)
}

// Transpose swaps rows and columns. A scalar transposes to itself and an
// N-vector becomes a 1xN matrix.
func Transpose(v Value) Value {
	if !v.IsValid() {
		return Invalid
	}
	if v.IsScalar() {
		return v
	}

	rows, cols := v.rows, v.Cols()
	out := make([]float64, v.Len())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r*cols+c] = v.Entry(r, c)
		}
	}

	return Value{nums: out, rows: cols}
}

// Project returns the projection of a onto b. When a is orthogonal to b the
// result is a zero vector shaped like a.
func Project(a, b Value) Value {
	ab := Dot(a, b)
	if !ab.IsValid() {
		return Invalid
	}
	if ab.nums[0] == 0 {
		return Value{nums: make([]float64, a.Len()), rows: a.rows}
	}

	return Multiply(b, Divide(ab, Dot(b, b)))
}

// Reject returns the component of a orthogonal to b.
func Reject(a, b Value) Value {
	return Subtract(a, Project(a, b))
}

// Angle returns the non-negative angle in radians between two nonzero vectors
// of equal length 2 or 3.
func Angle(a, b Value) Value {
	if !a.IsVector() || !b.IsVector() || a.Len() != b.Len() {
		return Invalid
	}
	if n := a.Len(); n != 2 && n != 3 {
		return Invalid
	}
	if a.IsZero() || b.IsZero() {
		return Invalid
	}

	na, nb := Normalize(a), Normalize(b)
	cos := Dot(na, nb).nums[0]
	if math.Abs(cos) <= math.Sqrt2/2 {
		return Scalar(math.Acos(cos))
	}

	// Near-parallel vectors use the arcsine of the sine.
	var sin float64
	if a.Len() == 2 {
		sin = math.Abs(na.nums[0]*nb.nums[1] - na.nums[1]*nb.nums[0])
	} else {
		sin = Magnitude(Cross(na, nb)).nums[0]
	}
	angle := math.Asin(math.Min(sin, 1))
	if cos < 0 {
		angle = math.Pi - angle
	}

	return Scalar(angle)
}

// Plane builds the plane (nx, ny, nz, d) through position with normal
// direction. Only the first three components of each input are used.
func Plane(direction, position Value) Value {
	if !direction.IsValid() || !position.IsValid() || direction.Len() < 3 || position.Len() < 3 {
		return Invalid
	}

	n := Normalize(Vec(direction.nums[:3]...))
	if !n.IsValid() || Vec(direction.nums[:3]...).IsZero() {
		return Invalid
	}
	d := -Dot(n, Vec(position.nums[:3]...)).nums[0]

	return Vec(n.nums[0], n.nums[1], n.nums[2], d)
}

// PointPlaneDistance returns the signed distance from point to a plane built
// by Plane, dot((x, y, z, 1), plane).
func PointPlaneDistance(point, plane Value) Value {
	if !point.IsValid() || !plane.IsValid() || point.Len() < 3 || plane.Len() < 4 {
		return Invalid
	}

	p := point.nums
	return Dot(Vec(p[0], p[1], p[2], 1), Vec(plane.nums[:4]...))
}

// Component returns component i of a vector as a scalar.
func Component(v Value, i int) Value {
	if !v.IsVector() || i < 0 || i >= v.Len() {
		return Invalid
	}

	return Scalar(v.nums[i])
}

// XYZ truncates a vector to its first three components.
func XYZ(v Value) Value {
	if !v.IsVector() || v.Len() < 3 {
		return Invalid
	}

	return Vec(v.nums[:3]...)
}

// Column returns column i of a matrix.
func Column(v Value, i int) Value {
	if !v.IsMatrix() {
		return Invalid
	}

	return v.Col(i)
}

// Elementwise unary family.

// Square returns x*x componentwise.
func Square(v Value) Value { return Map(v, func(x float64) float64 { return x * x }) }

// Sqrt returns the square root componentwise.
func Sqrt(v Value) Value { return Map(v, math.Sqrt) }

// Reciprocal returns 1/x componentwise.
func Reciprocal(v Value) Value { return Map(v, func(x float64) float64 { return 1 / x }) }

// Negate returns -x componentwise.
func Negate(v Value) Value { return Map(v, func(x float64) float64 { return -x }) }

// Abs returns |x| componentwise.
func Abs(v Value) Value { return Map(v, math.Abs) }

// Sin returns the sine componentwise.
func Sin(v Value) Value { return Map(v, math.Sin) }

// Cos returns the cosine componentwise.
func Cos(v Value) Value { return Map(v, math.Cos) }

// Tan returns the tangent componentwise.
func Tan(v Value) Value { return Map(v, math.Tan) }

// Asin returns the arcsine componentwise.
func Asin(v Value) Value { return Map(v, math.Asin) }

// Acos returns the arccosine componentwise.
func Acos(v Value) Value { return Map(v, math.Acos) }

// Atan returns the arctangent componentwise.
func Atan(v Value) Value { return Map(v, math.Atan) }

// Log returns the natural logarithm componentwise.
func Log(v Value) Value { return Map(v, math.Log) }

// Exp2 returns 2**x componentwise.
func Exp2(v Value) Value { return Map(v, math.Exp2) }

// Exp returns e**x componentwise.
func Exp(v Value) Value { return Map(v, math.Exp) }

// Degrees converts radians to degrees componentwise.
func Degrees(v Value) Value { return Map(v, func(x float64) float64 { return x * 180 / math.Pi }) }

// Radians converts degrees to radians componentwise.
func Radians(v Value) Value { return Map(v, func(x float64) float64 { return x * math.Pi / 180 }) }
