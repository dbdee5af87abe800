// Package validate classifies geometric configurations built from the
// rattrig formulas: collinearity, triangle validity and shape, line
// relationships, and containment. Everything here interprets formula
// results as booleans; nothing computes a new kind of quantity.
package validate

import "deedles.dev/rattrig"

// Collinear reports whether the three points lie on one line, i.e.
// whether their twist is zero.
func Collinear[T rattrig.Signed](p1, p2, p3 rattrig.Point[T]) bool {
	return rattrig.Twist(p1, p2, p3) == 0
}

// ValidTriangle reports whether the three points form a
// non-degenerate triangle.
func ValidTriangle[T rattrig.Signed](p1, p2, p3 rattrig.Point[T]) bool {
	return !Collinear(p1, p2, p3)
}

// TriangleInequality reports whether each of the squared quadrances
// is smaller than the sum of the other two. Note that the comparison
// is between squares of quadrances, not side lengths; it is a
// conservative necessary condition inherited from the original
// formulation, not the exact triple quad condition.
func TriangleInequality[T rattrig.Scalar](q1, q2, q3 T) bool {
	a, b, c := q1*q1, q2*q2, q3*q3
	return a < b+c && b < a+c && c < a+b
}

// ValidQuadrance reports whether q is a possible quadrance, i.e.
// non-negative. The formulas themselves never enforce this; over
// domains without an order it is not even defined.
func ValidQuadrance[T rattrig.Scalar](q T) bool {
	return q >= 0
}

// ValidSpread reports whether s lies in [0, 1], the range of spreads
// of real vector pairs.
func ValidSpread[T rattrig.Scalar](s T) bool {
	return s >= 0 && s <= 1
}

// PerimeterSquared returns the square of the sum of the squared
// quadrances. Like [TriangleInequality] it operates on squares of
// quadrances, inherited as-is from the original formulation.
func PerimeterSquared[T rattrig.Scalar](q1, q2, q3 T) T {
	sum := q1*q1 + q2*q2 + q3*q3
	return sum * sum
}

// Acute reports whether a triangle with the given vertex spreads is
// acute-angled: every spread below 1.
func Acute[T rattrig.Scalar](s1, s2, s3 T) bool {
	return s1 < 1 && s2 < 1 && s3 < 1
}

// Right reports whether a triangle with the given vertex spreads is
// right-angled: some spread exactly 1.
func Right[T rattrig.Scalar](s1, s2, s3 T) bool {
	return s1 == 1 || s2 == 1 || s3 == 1
}

// Obtuse reports whether some spread exceeds 1/2. The check doubles
// the spread instead of halving one, so it stays exact over integer
// domains.
func Obtuse[T rattrig.Scalar](s1, s2, s3 T) bool {
	return s1+s1 > 1 || s2+s2 > 1 || s3+s3 > 1
}

// Parallel reports whether two lines are parallel: the cross product
// of their normals is zero.
func Parallel[T rattrig.Scalar](l1, l2 rattrig.Line[T]) bool {
	return rattrig.AbsCross(rattrig.Vec(l1.A, l1.B), rattrig.Vec(l2.A, l2.B)) == 0
}

// Perpendicular reports whether two lines are perpendicular: the dot
// product of their normals is zero.
func Perpendicular[T rattrig.Scalar](l1, l2 rattrig.Line[T]) bool {
	return rattrig.Dot(rattrig.Vec(l1.A, l1.B), rattrig.Vec(l2.A, l2.B)) == 0
}

// OnLine reports whether the point satisfies the line equation
// a·x + b·y + c = 0.
func OnLine[T rattrig.Signed](p rattrig.Point[T], l rattrig.Line[T]) bool {
	return l.A*p.X+l.B*p.Y+l.C == 0
}

// InTriangle reports whether the point lies inside or on the boundary
// of the triangle, via barycentric coordinates divided by the
// precomputed determinant. A degenerate triangle contains nothing.
//
// The divisions are exact only over fields; integer inputs truncate
// the coordinates and can misclassify points near the boundary.
func InTriangle[T rattrig.Signed](p rattrig.Point[T], t rattrig.Triangle[T]) bool {
	d := (t.P2.Y-t.P3.Y)*(t.P1.X-t.P3.X) + (t.P3.X-t.P2.X)*(t.P1.Y-t.P3.Y)
	if d == 0 {
		return false
	}

	a := ((t.P2.Y-t.P3.Y)*(p.X-t.P3.X) + (t.P3.X-t.P2.X)*(p.Y-t.P3.Y)) / d
	b := ((t.P3.Y-t.P1.Y)*(p.X-t.P3.X) + (t.P1.X-t.P3.X)*(p.Y-t.P3.Y)) / d
	c := 1 - a - b
	return a >= 0 && b >= 0 && c >= 0
}
