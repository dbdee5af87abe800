// Package field defines the algebraic capability a numeric type needs
// to participate in rational trigonometry, together with the formulas
// written once against that capability.
//
// The root package's constraint generics cover the machine scalars;
// this package covers everything else. [Rat] adapts math/big rationals
// for bit-exact results, [Dec] adapts cockroachdb/apd decimals, and
// any caller-supplied type implementing [Ring] or [Field] works the
// same way. [Int64] and [Float64] adapt the machine types so the two
// paths can be held equivalent.
package field

import "deedles.dev/rattrig"

// Ring is the capability required by the division-free formulas:
// the three ring operations plus the two identities, from which the
// constant four is materialized without any literal-conversion
// capability. Implementations must treat values as immutable and
// return fresh results.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Zero() T
	One() T
}

// Field adds division, required by the spread family. Division by the
// implementation's zero follows the implementation's own semantics;
// the Safe variants check first and never reach it.
type Field[T any] interface {
	Ring[T]
	Div(T) T
}

// Exact adds the equality comparison that the fault-checked variants
// and the guarded formulas need. The raw formulas never require it.
type Exact[T any] interface {
	Field[T]
	Eq(T) bool
}

// Point is a 2D point over a capability type.
type Point[T any] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T any](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Vector is a 2D displacement over a capability type.
type Vector[T any] struct {
	X, Y T
}

// Vec is shorthand for Vector[T]{x, y}.
func Vec[T any](x, y T) Vector[T] {
	return Vector[T]{x, y}
}

// Line is the line a·x + b·y + c = 0 over a capability type.
type Line[T any] struct {
	A, B, C T
}

// Ln is shorthand for Line[T]{a, b, c}.
func Ln[T any](a, b, c T) Line[T] {
	return Line[T]{a, b, c}
}

// Quadrance returns the squared distance between two points.
func Quadrance[T Ring[T]](p1, p2 Point[T]) T {
	dx := p1.X.Sub(p2.X)
	dy := p1.Y.Sub(p2.Y)
	return dx.Mul(dx).Add(dy.Mul(dy))
}

// Dot returns the dot product of two vectors.
func Dot[T Ring[T]](v1, v2 Vector[T]) T {
	return v1.X.Mul(v2.X).Add(v1.Y.Mul(v2.Y))
}

// Cross returns the signed 2D cross product of two vectors.
func Cross[T Ring[T]](v1, v2 Vector[T]) T {
	return v1.X.Mul(v2.Y).Sub(v1.Y.Mul(v2.X))
}

// quadrance is the quadrance of a vector from the origin.
func quadrance[T Ring[T]](v Vector[T]) T {
	return v.X.Mul(v.X).Add(v.Y.Mul(v.Y))
}

// four materializes the constant 4 as 1+1+1+1, so any type with the
// identities participates without a from-integer capability.
func four[T Ring[T]](witness T) T {
	two := witness.One().Add(witness.One())
	return two.Add(two)
}

// Archimedes returns the quadrea of a triangle with side quadrances
// q1, q2, q3: 4·q1·q2 - (q1+q2-q3)².
func Archimedes[T Ring[T]](q1, q2, q3 T) T {
	t := q1.Add(q2).Sub(q3)
	return four(q1).Mul(q1).Mul(q2).Sub(t.Mul(t))
}

// Spread returns the squared sine of the angle between two vectors,
// 1 - dot²/(q1·q2). The division is raw; a zero vector follows the
// implementation's division semantics. Use [SafeSpread] to get a
// fault instead.
func Spread[T Field[T]](v1, v2 Vector[T]) T {
	d := Dot(v1, v2)
	q := quadrance(v1).Mul(quadrance(v2))
	return d.One().Sub(d.Mul(d).Div(q))
}

// LineQuadrance returns the quadrance from a point to a line,
// (a·x + b·y + c)² / (a² + b²). The division is raw; use
// [SafeLineQuadrance] to get a fault instead.
func LineQuadrance[T Field[T]](p Point[T], l Line[T]) T {
	e := l.A.Mul(p.X).Add(l.B.Mul(p.Y)).Add(l.C)
	return e.Mul(e).Div(l.A.Mul(l.A).Add(l.B.Mul(l.B)))
}

// LineSpread returns the spread between two lines. The division is
// raw; use [SafeLineSpread] to get a fault instead.
func LineSpread[T Field[T]](l1, l2 Line[T]) T {
	c := Cross(Vec(l1.A, l1.B), Vec(l2.A, l2.B))
	q1 := quadrance(Vec(l1.A, l1.B))
	q2 := quadrance(Vec(l2.A, l2.B))
	return c.Mul(c).Div(q1.Mul(q2))
}

// Quadrances returns the three side quadrances of the triangle
// p1 p2 p3, each named for the vertex opposite it.
func Quadrances[T Ring[T]](p1, p2, p3 Point[T]) (q1, q2, q3 T) {
	return Quadrance(p2, p3), Quadrance(p1, p3), Quadrance(p1, p2)
}

// crossLaw returns the spread opposite q1: 1 - (q2+q3-q1)²/(4·q2·q3).
func crossLaw[T Field[T]](q1, q2, q3 T) T {
	t := q2.Add(q3).Sub(q1)
	return q1.One().Sub(t.Mul(t).Div(four(q1).Mul(q2).Mul(q3)))
}

// Spreads returns the three vertex spreads of the triangle p1 p2 p3
// via the cross law. The divisions are raw; coincident points follow
// the implementation's division semantics.
func Spreads[T Field[T]](p1, p2, p3 Point[T]) (s1, s2, s3 T) {
	q1, q2, q3 := Quadrances(p1, p2, p3)
	return crossLaw(q1, q2, q3), crossLaw(q2, q1, q3), crossLaw(q3, q1, q2)
}

// Twist returns twice the signed area of the triangle p1 p2 p3.
func Twist[T Ring[T]](p1, p2, p3 Point[T]) T {
	return Cross(
		Vec(p2.X.Sub(p1.X), p2.Y.Sub(p1.Y)),
		Vec(p3.X.Sub(p1.X), p3.Y.Sub(p1.Y)),
	)
}

// CosineLaw returns the spread opposite q1 in a triangle with side
// quadrances q1, q2, q3, or zero when q2 or q3 is zero. Equality is
// the one capability beyond Field this guard needs.
func CosineLaw[T Exact[T]](q1, q2, q3 T) T {
	if q2.Eq(q2.Zero()) || q3.Eq(q3.Zero()) {
		return q1.Zero()
	}
	return crossLaw(q1, q2, q3)
}

// Dilatation returns the squared scale factor between two vectors,
// Q(v2)/Q(v1), or zero when v1 is the zero vector.
func Dilatation[T Exact[T]](v1, v2 Vector[T]) T {
	q := quadrance(v1)
	if q.Eq(q.Zero()) {
		return q.Zero()
	}
	return quadrance(v2).Div(q)
}

// SafeSpread is [Spread] with a zero-denominator check, returning
// rattrig.ErrDivisionByZero when either vector is the zero vector.
func SafeSpread[T Exact[T]](v1, v2 Vector[T]) (T, error) {
	q1, q2 := quadrance(v1), quadrance(v2)
	if q1.Eq(q1.Zero()) || q2.Eq(q2.Zero()) {
		return q1.Zero(), rattrig.ErrDivisionByZero
	}
	d := Dot(v1, v2)
	return d.One().Sub(d.Mul(d).Div(q1.Mul(q2))), nil
}

// SafeLineQuadrance is [LineQuadrance] with a zero-denominator check.
func SafeLineQuadrance[T Exact[T]](p Point[T], l Line[T]) (T, error) {
	q := l.A.Mul(l.A).Add(l.B.Mul(l.B))
	if q.Eq(q.Zero()) {
		return q.Zero(), rattrig.ErrDivisionByZero
	}
	e := l.A.Mul(p.X).Add(l.B.Mul(p.Y)).Add(l.C)
	return e.Mul(e).Div(q), nil
}

// SafeLineSpread is [LineSpread] with a zero-denominator check.
func SafeLineSpread[T Exact[T]](l1, l2 Line[T]) (T, error) {
	q1 := quadrance(Vec(l1.A, l1.B))
	q2 := quadrance(Vec(l2.A, l2.B))
	if q1.Eq(q1.Zero()) || q2.Eq(q2.Zero()) {
		return q1.Zero(), rattrig.ErrDivisionByZero
	}
	c := Cross(Vec(l1.A, l1.B), Vec(l2.A, l2.B))
	return c.Mul(c).Div(q1.Mul(q2)), nil
}

// SafeDilatation is [Dilatation] with a fault instead of the silent
// zero.
func SafeDilatation[T Exact[T]](v1, v2 Vector[T]) (T, error) {
	q := quadrance(v1)
	if q.Eq(q.Zero()) {
		return q.Zero(), rattrig.ErrDivisionByZero
	}
	return quadrance(v2).Div(q), nil
}

// SafeCosineLaw is [CosineLaw] with a fault instead of the silent
// zero.
func SafeCosineLaw[T Exact[T]](q1, q2, q3 T) (T, error) {
	if q2.Eq(q2.Zero()) || q3.Eq(q3.Zero()) {
		return q1.Zero(), rattrig.ErrDivisionByZero
	}
	return crossLaw(q1, q2, q3), nil
}
