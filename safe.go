package rattrig

// The fault-checked twins of the divide-dependent formulas. Each
// compares its denominators to zero before computing anything and
// returns ErrDivisionByZero instead of dividing, so degenerate input
// never produces a silent zero or a runtime division fault.

// SafeSpread is [Spread] with a zero-denominator check. It returns
// ErrDivisionByZero when either vector is the zero vector.
func SafeSpread[T Scalar](v1, v2 Vector[T]) (T, error) {
	q1, q2 := v1.Quadrance(), v2.Quadrance()
	if q1 == 0 || q2 == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	d := Dot(v1, v2)
	return 1 - d*d/(q1*q2), nil
}

// SafeSpread3 is [Spread3] with a zero-denominator check.
func SafeSpread3[T Scalar](v1, v2 Vector3[T]) (T, error) {
	q1, q2 := v1.Quadrance(), v2.Quadrance()
	if q1 == 0 || q2 == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	d := Dot3(v1, v2)
	return 1 - d*d/(q1*q2), nil
}

// SafeSpreads is [Spreads] with a zero-denominator check. It returns
// ErrDivisionByZero when any side of the triangle has zero quadrance,
// which happens exactly when two of the points coincide.
func SafeSpreads[T Scalar](p1, p2, p3 Point[T]) (s1, s2, s3 T, err error) {
	q1, q2, q3 := Quadrances(p1, p2, p3)
	if q1 == 0 || q2 == 0 || q3 == 0 {
		var zero T
		return zero, zero, zero, ErrDivisionByZero
	}
	return crossLaw(q1, q2, q3), crossLaw(q2, q1, q3), crossLaw(q3, q1, q2), nil
}

// SafeLineQuadrance is [LineQuadrance] with a zero-denominator check.
// It returns ErrDivisionByZero for a degenerate line, one with
// (a, b) = (0, 0).
func SafeLineQuadrance[T Scalar](p Point[T], l Line[T]) (T, error) {
	q := l.A*l.A + l.B*l.B
	if q == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	e := l.A*p.X + l.B*p.Y + l.C
	return e * e / q, nil
}

// SafeLineSpread is [LineSpread] with a zero-denominator check. It
// returns ErrDivisionByZero when either line is degenerate.
func SafeLineSpread[T Scalar](l1, l2 Line[T]) (T, error) {
	q1 := l1.A*l1.A + l1.B*l1.B
	q2 := l2.A*l2.A + l2.B*l2.B
	if q1 == 0 || q2 == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	c := absDiff(l1.A*l2.B, l1.B*l2.A)
	return c * c / (q1 * q2), nil
}

// SafeDilatation is [Dilatation] with a zero-denominator check. It
// returns ErrDivisionByZero when v1 is the zero vector, where the
// unchecked variant returns zero.
func SafeDilatation[T Scalar](v1, v2 Vector[T]) (T, error) {
	q := v1.Quadrance()
	if q == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	return v2.Quadrance() / q, nil
}

// SafeCosineLaw is [CosineLaw] with a zero-denominator check. It
// returns ErrDivisionByZero when q2 or q3 is zero, where the
// unchecked variant returns zero.
func SafeCosineLaw[T Scalar](q1, q2, q3 T) (T, error) {
	if q2 == 0 || q3 == 0 {
		var zero T
		return zero, ErrDivisionByZero
	}
	return crossLaw(q1, q2, q3), nil
}
