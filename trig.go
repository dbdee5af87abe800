package rattrig

// Quadrance returns the squared distance between two points, the sum
// of the squared axis differences. It never goes negative for real
// inputs and needs no division, so every scalar domain, including the
// unsigned ones, gets the same result.
func Quadrance[T Scalar](p1, p2 Point[T]) T {
	dx := absDiff(p1.X, p2.X)
	dy := absDiff(p1.Y, p2.Y)
	return dx*dx + dy*dy
}

// Quadrance3 is [Quadrance] for 3D points.
func Quadrance3[T Scalar](p1, p2 Point3[T]) T {
	dx := absDiff(p1.X, p2.X)
	dy := absDiff(p1.Y, p2.Y)
	dz := absDiff(p1.Z, p2.Z)
	return dx*dx + dy*dy + dz*dz
}

// Dot returns the dot product of two vectors.
func Dot[T Scalar](v1, v2 Vector[T]) T {
	return v1.X*v2.X + v1.Y*v2.Y
}

// Dot3 is [Dot] for 3D vectors.
func Dot3[T Scalar](v1, v2 Vector3[T]) T {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// Cross returns the signed 2D cross product of two vectors,
// proportional to twice the signed area of the triangle they span
// from a shared origin.
func Cross[T Signed](v1, v2 Vector[T]) T {
	return v1.X*v2.Y - v1.Y*v2.X
}

// AbsCross returns the absolute value of the 2D cross product,
// computed as the absolute difference of the two cross terms. This is
// the cross product available to unsigned domains: the magnitude is
// exact but the orientation is lost, so AbsCross is always ≥ 0.
func AbsCross[T Scalar](v1, v2 Vector[T]) T {
	return absDiff(v1.X*v2.Y, v1.Y*v2.X)
}

// Cross3 returns the 3D vector cross product of two vectors.
func Cross3[T Signed](v1, v2 Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v1.Y*v2.Z - v1.Z*v2.Y,
		Y: v1.Z*v2.X - v1.X*v2.Z,
		Z: v1.X*v2.Y - v1.Y*v2.X,
	}
}

// Spread returns the squared sine of the angle between two vectors,
// 1 - dot²/(q1·q2), without computing the sine.
//
// Spread is undefined when either vector is the zero vector. This
// entry point performs the raw division and lets the scalar type's
// own semantics surface: floats produce NaN or Inf, integers panic.
// Callers that cannot guarantee non-zero vectors should use
// [SafeSpread]. Integer domains additionally truncate the quotient;
// the exact spread needs a field, such as floats or the rationals of
// the field subpackage.
func Spread[T Scalar](v1, v2 Vector[T]) T {
	d := Dot(v1, v2)
	return 1 - d*d/(v1.Quadrance()*v2.Quadrance())
}

// Spread3 is [Spread] for 3D vectors.
func Spread3[T Scalar](v1, v2 Vector3[T]) T {
	d := Dot3(v1, v2)
	return 1 - d*d/(v1.Quadrance()*v2.Quadrance())
}

// Archimedes returns the quadrea of a triangle with side quadrances
// q1, q2, q3: 4·q1·q2 - (q1+q2-q3)². The quadrea equals 16 times the
// squared area when the three quadrances are the genuine, metrically
// consistent quadrances of a real triangle.
//
// The inner term is taken as an absolute difference before squaring
// so unsigned domains participate; they still require metrically
// consistent inputs, since a negative quadrea is unrepresentable for
// them.
func Archimedes[T Scalar](q1, q2, q3 T) T {
	t := absDiff(q1+q2, q3)
	return 4*q1*q2 - t*t
}

// LineQuadrance returns the quadrance from a point to a line,
// (a·x + b·y + c)² / (a² + b²).
//
// The division is raw; a degenerate line with (a, b) = (0, 0) follows
// the scalar type's own division-by-zero semantics. Use
// [SafeLineQuadrance] to get a fault instead.
func LineQuadrance[T Scalar](p Point[T], l Line[T]) T {
	e := l.A*p.X + l.B*p.Y + l.C
	return e * e / (l.A*l.A + l.B*l.B)
}

// LineSpread returns the spread between two lines, the squared cross
// product of their normals over the product of the normals'
// quadrances. Parallel lines have spread 0 and perpendicular lines
// spread 1.
//
// The division is raw; see [LineQuadrance]. Use [SafeLineSpread] to
// get a fault instead.
func LineSpread[T Scalar](l1, l2 Line[T]) T {
	c := absDiff(l1.A*l2.B, l1.B*l2.A)
	return c * c / ((l1.A*l1.A + l1.B*l1.B) * (l2.A*l2.A + l2.B*l2.B))
}

// LineCross returns the signed cross product of the normals of two
// lines. It is zero exactly when the lines are parallel.
func LineCross[T Signed](l1, l2 Line[T]) T {
	return l1.A*l2.B - l1.B*l2.A
}

// Quadrances returns the three side quadrances of the triangle
// p1 p2 p3, each named for the vertex opposite it: q1 spans p2 p3, q2
// spans p1 p3, and q3 spans p1 p2.
func Quadrances[T Scalar](p1, p2, p3 Point[T]) (q1, q2, q3 T) {
	return Quadrance(p2, p3), Quadrance(p1, p3), Quadrance(p1, p2)
}

// Quadrances3 is [Quadrances] for 3D points.
func Quadrances3[T Scalar](p1, p2, p3 Point3[T]) (q1, q2, q3 T) {
	return Quadrance3(p2, p3), Quadrance3(p1, p3), Quadrance3(p1, p2)
}

// crossLaw returns the spread opposite q1 in a triangle with side
// quadrances q1, q2, q3: 1 - (q2+q3-q1)²/(4·q2·q3). Raw division.
func crossLaw[T Scalar](q1, q2, q3 T) T {
	t := absDiff(q2+q3, q1)
	return 1 - t*t/(4*q2*q3)
}

// Spreads returns the three vertex spreads of the triangle p1 p2 p3
// via the cross law, each named for its vertex.
//
// The divisions are raw; a degenerate side makes the corresponding
// spreads follow the scalar type's division-by-zero semantics. Use
// [SafeSpreads] to get a fault instead.
func Spreads[T Scalar](p1, p2, p3 Point[T]) (s1, s2, s3 T) {
	q1, q2, q3 := Quadrances(p1, p2, p3)
	return crossLaw(q1, q2, q3), crossLaw(q2, q1, q3), crossLaw(q3, q1, q2)
}

// Twist returns twice the signed area of the triangle p1 p2 p3, the
// cross product of the edge vectors p2-p1 and p3-p1. A positive twist
// means counter-clockwise vertex order, zero means the points are
// collinear.
func Twist[T Signed](p1, p2, p3 Point[T]) T {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
}

// Turn returns the spread between the edge vectors p2-p1 and p3-p2
// together with the turn direction: ccw is true when the cross
// product of the edges is ≥ 0, resolving the straight-line tie toward
// counter-clockwise.
//
// The spread division is raw; see [Spread].
func Turn[T Signed](p1, p2, p3 Point[T]) (spread T, ccw bool) {
	u := p2.Vec().Sub(p1.Vec())
	w := p3.Vec().Sub(p2.Vec())
	return Spread(u, w), Cross(u, w) >= 0
}

// Dilatation returns the squared scale factor between two vectors,
// Q(v2)/Q(v1). When v1 is the zero vector it returns zero; that is an
// explicit special case of this entry point, not a fault. Use
// [SafeDilatation] to get a fault instead.
func Dilatation[T Scalar](v1, v2 Vector[T]) T {
	q := v1.Quadrance()
	if q == 0 {
		return 0
	}
	return v2.Quadrance() / q
}

// CosineLaw returns the spread opposite q1 in a triangle with side
// quadrances q1, q2, q3. When q2 or q3 is zero it returns zero; use
// [SafeCosineLaw] to get a fault instead.
func CosineLaw[T Scalar](q1, q2, q3 T) T {
	if q2 == 0 || q3 == 0 {
		return 0
	}
	return crossLaw(q1, q2, q3)
}
